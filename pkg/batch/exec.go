// Copyright © 2025 Plexus Chain, Inc.
//
// SPDX-License-Identifier: Apache-2.0
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package batch

import (
	"context"

	"github.com/hyperledger/firefly-common/pkg/fftypes"
	"github.com/hyperledger/firefly-common/pkg/i18n"
	"github.com/hyperledger/firefly-common/pkg/log"

	"github.com/plexus-chain/agent-toolserver/internal/atmsgs"
	"github.com/plexus-chain/agent-toolserver/pkg/apitypes"
	"github.com/plexus-chain/agent-toolserver/pkg/chainapi"
)

// ExecuteTransaction submits a single administrative transaction and waits for
// it to be mined. Single operations always run on nonce key 0, the account's
// standard sequential counter, leaving keys 1-255 free for payment batches.
func (e *Engine) ExecuteTransaction(ctx context.Context, to, method string, params []*fftypes.JSONAny) (*apitypes.TransactionResult, error) {
	gasPrice, err := e.getGasPrice(ctx)
	if err != nil {
		return nil, err
	}

	nonceRes, _, err := e.connector.NextNonceForKey(ctx, &chainapi.NextNonceForKeyRequest{
		Signer:   e.signer,
		NonceKey: 0,
	})
	if err != nil {
		return nil, i18n.WrapError(ctx, err, atmsgs.MsgNonceReadFailed, 0, err.Error())
	}

	headers := chainapi.TransactionHeaders{
		From:     e.signer,
		To:       to,
		Nonce:    nonceRes.Nonce,
		NonceKey: 0,
	}
	prepared, _, err := e.connector.TransactionPrepare(ctx, &chainapi.TransactionPrepareRequest{
		TransactionHeaders: headers,
		Method:             method,
		Params:             params,
	})
	if err != nil {
		return nil, err
	}

	headers.Gas = prepared.Gas
	sendRes, _, err := e.connector.TransactionSend(ctx, &chainapi.TransactionSendRequest{
		TransactionHeaders: headers,
		GasPrice:           gasPrice,
		TransactionData:    prepared.TransactionData,
	})
	if err != nil {
		return nil, i18n.WrapError(ctx, err, atmsgs.MsgTransactionSendFailed, err.Error())
	}
	e.metrics.IncCounterMetricWithLabels(ctx, metricsTransactionsTotal, map[string]string{metricsLabelNameMethod: method})
	log.L(ctx).Infof("Submitted %s transaction to %s: %s", method, to, sendRes.TransactionHash)

	waitRes, _, err := e.connector.TransactionWait(ctx, &chainapi.TransactionWaitRequest{
		TransactionHash: sendRes.TransactionHash,
	})
	if err != nil {
		return &apitypes.TransactionResult{
			TransactionHash: sendRes.TransactionHash,
			Status:          apitypes.PaymentStatusFailed,
			Error:           err.Error(),
		}, nil
	}
	if !waitRes.Receipt.Success {
		return &apitypes.TransactionResult{
			TransactionHash: sendRes.TransactionHash,
			Status:          apitypes.PaymentStatusFailed,
			BlockNumber:     waitRes.Receipt.BlockNumber,
			Error:           i18n.NewError(ctx, atmsgs.MsgTransactionReverted, sendRes.TransactionHash).Error(),
		}, nil
	}
	return &apitypes.TransactionResult{
		TransactionHash: sendRes.TransactionHash,
		Status:          apitypes.PaymentStatusConfirmed,
		BlockNumber:     waitRes.Receipt.BlockNumber,
	}, nil
}

// QueryContract runs a read-only method against a contract
func (e *Engine) QueryContract(ctx context.Context, to, method string, params []*fftypes.JSONAny) (*fftypes.JSONAny, error) {
	res, _, err := e.connector.QueryInvoke(ctx, &chainapi.QueryInvokeRequest{
		TransactionHeaders: chainapi.TransactionHeaders{
			From: e.signer,
			To:   to,
		},
		Method: method,
		Params: params,
	})
	if err != nil {
		return nil, i18n.WrapError(ctx, err, atmsgs.MsgQueryInvokeFailed, method, err.Error())
	}
	return res.Outputs, nil
}
