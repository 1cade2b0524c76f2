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

	"github.com/hyperledger/firefly-common/pkg/i18n"
	"github.com/hyperledger/firefly-common/pkg/log"

	"github.com/plexus-chain/agent-toolserver/internal/atmsgs"
	"github.com/plexus-chain/agent-toolserver/pkg/apitypes"
	"github.com/plexus-chain/agent-toolserver/pkg/chainapi"
)

// confirmPayment blocks until the payment's transaction is mined, or the
// connector's confirmation timeout expires. A timeout is reported as Failed,
// but the transaction may still mine later - the caller can recover it through
// the receipt endpoint using the hash already recorded in the outcome.
func (e *Engine) confirmPayment(ctx context.Context, outcome *apitypes.PaymentOutcome) {
	res, reason, err := e.connector.TransactionWait(ctx, &chainapi.TransactionWaitRequest{
		TransactionHash: outcome.TransactionHash,
	})
	if err != nil {
		outcome.Status = apitypes.PaymentStatusFailed
		outcome.Error = err.Error()
		if reason == chainapi.ErrorReasonTimeout {
			log.L(ctx).Warnf("Confirmation timeout for %s on nonce key %d", outcome.TransactionHash, outcome.NonceKey)
		}
		return
	}
	if !res.Receipt.Success {
		outcome.Status = apitypes.PaymentStatusFailed
		outcome.Error = i18n.NewError(ctx, atmsgs.MsgTransactionReverted, outcome.TransactionHash).Error()
		return
	}
	outcome.Status = apitypes.PaymentStatusConfirmed
}
