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

package toolserver

import (
	"context"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/hyperledger/firefly-common/pkg/fftypes"
	"github.com/hyperledger/firefly-common/pkg/i18n"

	"github.com/plexus-chain/agent-toolserver/internal/atmsgs"
	"github.com/plexus-chain/agent-toolserver/pkg/apitypes"
)

func validatePayments(ctx context.Context, payments []*apitypes.PaymentRequest) error {
	for i, p := range payments {
		switch {
		case p == nil || p.Token == "":
			return i18n.NewError(ctx, atmsgs.MsgMissingRequiredField, fmt.Sprintf("payments[%d].token", i))
		case p.Recipient == "":
			return i18n.NewError(ctx, atmsgs.MsgMissingRequiredField, fmt.Sprintf("payments[%d].recipient", i))
		case p.Amount == nil:
			return i18n.NewError(ctx, atmsgs.MsgMissingRequiredField, fmt.Sprintf("payments[%d].amount", i))
		}
	}
	return nil
}

// runBatchPayments is the core tool: payments are fanned out across nonce keys
// by the engine, and the aggregated result is pushed to WebSocket subscribers
// as well as returned to the caller.
func (m *manager) runBatchPayments(ctx context.Context, req *apitypes.BatchPaymentRequest) (*apitypes.BatchPaymentResult, error) {
	if err := validatePayments(ctx, req.Payments); err != nil {
		return nil, err
	}
	result, err := m.engine.RunBatch(ctx, req)
	if err != nil {
		return nil, err
	}
	m.wsServer.Broadcast(ctx, &apitypes.Event{
		Type:  apitypes.EventTypeBatchComplete,
		Time:  fftypes.Now(),
		Batch: result,
	})
	return result, nil
}

// distributeRewards reshapes a reward distribution into a payment batch - each
// recipient becomes one payment from the same token contract.
func (m *manager) distributeRewards(ctx context.Context, req *apitypes.RewardDistributionRequest) (*apitypes.BatchPaymentResult, error) {
	if req.Token == "" {
		return nil, i18n.NewError(ctx, atmsgs.MsgMissingRequiredField, "token")
	}
	if len(req.Recipients) == 0 {
		return nil, i18n.NewError(ctx, atmsgs.MsgRewardsNoRecipients)
	}
	payments := make([]*apitypes.PaymentRequest, len(req.Recipients))
	for i, r := range req.Recipients {
		payments[i] = &apitypes.PaymentRequest{
			Token:     req.Token,
			Recipient: r.Recipient,
			Amount:    r.Amount,
			Memo:      req.Memo,
		}
	}
	return m.runBatchPayments(ctx, &apitypes.BatchPaymentRequest{
		Payments:            payments,
		StartNonceKey:       req.StartNonceKey,
		WaitForConfirmation: req.WaitForConfirmation,
	})
}

// getNonceKeys scans the 256 nonce-key counters of an account. With no account
// supplied the server's own signing account is scanned.
func (m *manager) getNonceKeys(ctx context.Context, account string) (*apitypes.NonceKeysResult, error) {
	if account == "" {
		account = m.engine.Signer()
	} else if !common.IsHexAddress(account) {
		return nil, i18n.NewError(ctx, atmsgs.MsgInvalidAddress, account)
	}
	return m.engine.ListActiveNonceKeys(ctx, account)
}
