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

package evmconnect

import (
	"context"
	"encoding/json"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/hyperledger/firefly-common/pkg/fftypes"
	"github.com/hyperledger/firefly-common/pkg/i18n"
	"github.com/hyperledger/firefly-common/pkg/log"

	"github.com/plexus-chain/agent-toolserver/internal/atmsgs"
	"github.com/plexus-chain/agent-toolserver/pkg/chainapi"
)

// The gas price from the engine is opaque JSON: either a plain value for a
// legacy transaction, or an EIP-1559 structure
type eip1559GasPrice struct {
	MaxPriorityFeePerGas *fftypes.FFBigInt `json:"maxPriorityFeePerGas,omitempty"`
	MaxFeePerGas         *fftypes.FFBigInt `json:"maxFeePerGas,omitempty"`
}

// TransactionSend signs the prepared calldata under the packed nonce
// key<<56|counter and submits it to the transaction pool
func (c *Connector) TransactionSend(ctx context.Context, req *chainapi.TransactionSendRequest) (*chainapi.TransactionSendResponse, chainapi.ErrorReason, error) {
	if !common.IsHexAddress(req.To) {
		return nil, chainapi.ErrorReasonInvalidInputs, i18n.NewError(ctx, atmsgs.MsgInvalidAddress, req.To)
	}
	to := common.HexToAddress(req.To)
	data, err := hexutil.Decode(req.TransactionData)
	if err != nil {
		return nil, chainapi.ErrorReasonInvalidInputs, err
	}

	nonce := packNonce(req.NonceKey, req.Nonce.Int().Uint64())
	gas := c.gasLimit
	if req.Gas != nil && req.Gas.Int().Sign() > 0 {
		gas = req.Gas.Int().Uint64()
	}
	value := big.NewInt(0)
	if req.Value != nil {
		value = req.Value.Int()
	}

	txData, err := c.buildTxData(ctx, req.GasPrice, nonce, &to, value, gas, data)
	if err != nil {
		return nil, chainapi.ErrorReasonInvalidInputs, err
	}
	signed, err := types.SignTx(types.NewTx(txData), types.LatestSignerForChainID(c.chainID), c.signerKey)
	if err != nil {
		return nil, "", err
	}

	if err := c.client.SendTransaction(ctx, signed); err != nil {
		reason := mapError(err)
		if reason == chainapi.ErrorKnownTransaction {
			// The pool already has this exact transaction - a benign outcome for a
			// retried submission, the hash is still the right answer
			log.L(ctx).Debugf("Transaction %s already known", signed.Hash())
			return &chainapi.TransactionSendResponse{TransactionHash: signed.Hash().Hex()}, "", nil
		}
		return nil, reason, i18n.WrapError(ctx, err, atmsgs.MsgTransactionSendFailed, err.Error())
	}
	log.L(ctx).Debugf("Sent transaction %s (nonceKey=%d counter=%d)", signed.Hash(), req.NonceKey, req.Nonce.Int().Uint64())
	return &chainapi.TransactionSendResponse{TransactionHash: signed.Hash().Hex()}, "", nil
}

func (c *Connector) buildTxData(ctx context.Context, gasPrice *fftypes.JSONAny, nonce uint64, to *common.Address, value *big.Int, gas uint64, data []byte) (types.TxData, error) {
	if gasPrice.IsNil() {
		suggested, err := c.client.SuggestGasPrice(ctx)
		if err != nil {
			return nil, err
		}
		return &types.LegacyTx{Nonce: nonce, To: to, Value: value, Gas: gas, GasPrice: suggested, Data: data}, nil
	}

	var eip1559 eip1559GasPrice
	if err := json.Unmarshal(gasPrice.Bytes(), &eip1559); err == nil && eip1559.MaxFeePerGas != nil {
		tipCap := big.NewInt(0)
		if eip1559.MaxPriorityFeePerGas != nil {
			tipCap = eip1559.MaxPriorityFeePerGas.Int()
		}
		return &types.DynamicFeeTx{
			ChainID:   c.chainID,
			Nonce:     nonce,
			To:        to,
			Value:     value,
			Gas:       gas,
			GasFeeCap: eip1559.MaxFeePerGas.Int(),
			GasTipCap: tipCap,
			Data:      data,
		}, nil
	}

	var simple fftypes.FFBigInt
	if err := json.Unmarshal(gasPrice.Bytes(), &simple); err != nil {
		return nil, i18n.NewError(ctx, atmsgs.MsgInvalidAmount, gasPrice.String())
	}
	return &types.LegacyTx{Nonce: nonce, To: to, Value: value, Gas: gas, GasPrice: simple.Int(), Data: data}, nil
}
