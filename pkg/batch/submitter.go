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
	"sync"
	"time"

	"github.com/hyperledger/firefly-common/pkg/fftypes"
	"github.com/hyperledger/firefly-common/pkg/log"

	"github.com/plexus-chain/agent-toolserver/pkg/apitypes"
	"github.com/plexus-chain/agent-toolserver/pkg/chainapi"
)

// processChunk runs one chunk through up to three concurrent phases:
//  1. a fresh nonce read for every key the chunk is about to use
//  2. prepare+send for every payment whose nonce resolved
//  3. (only if requested) wait for each submitted transaction to be mined
//
// Each goroutine writes only its own outcome slot, so no locking is needed.
// A failure in any phase parks that payment as Failed and never disturbs its
// neighbours.
func (e *Engine) processChunk(ctx context.Context, c *chunk, waitForConfirmation bool, outcomes []*apitypes.PaymentOutcome) {
	chunkStart := time.Now()
	gasPrice, gasErr := e.getGasPrice(ctx)

	nonces := make([]*fftypes.FFBigInt, len(c.payments))
	var wg sync.WaitGroup
	for i := range c.payments {
		outcome := &apitypes.PaymentOutcome{NonceKey: c.startKey + i}
		outcomes[c.start+i] = outcome
		if gasErr != nil {
			outcome.Status = apitypes.PaymentStatusFailed
			outcome.Error = gasErr.Error()
			continue
		}
		wg.Add(1)
		go func(i int, outcome *apitypes.PaymentOutcome) {
			defer wg.Done()
			res, _, err := e.connector.NextNonceForKey(ctx, &chainapi.NextNonceForKeyRequest{
				Signer:   e.signer,
				NonceKey: outcome.NonceKey,
			})
			if err != nil {
				outcome.Status = apitypes.PaymentStatusFailed
				outcome.Error = err.Error()
				return
			}
			nonces[i] = res.Nonce
		}(i, outcome)
	}
	wg.Wait()

	for i, payment := range c.payments {
		outcome := outcomes[c.start+i]
		if outcome.Status == apitypes.PaymentStatusFailed {
			continue
		}
		wg.Add(1)
		go func(payment *apitypes.PaymentRequest, outcome *apitypes.PaymentOutcome, nonce *fftypes.FFBigInt) {
			defer wg.Done()
			e.submitPayment(ctx, payment, outcome, nonce, gasPrice)
		}(payment, outcome, nonces[i])
	}
	wg.Wait()

	if waitForConfirmation {
		for i := range c.payments {
			outcome := outcomes[c.start+i]
			if outcome.Status != apitypes.PaymentStatusSubmitted {
				continue
			}
			wg.Add(1)
			go func(outcome *apitypes.PaymentOutcome) {
				defer wg.Done()
				e.confirmPayment(ctx, outcome)
			}(outcome)
		}
		wg.Wait()
	}

	e.logChunkSummary(ctx, c, outcomes, time.Since(chunkStart))
}

func (e *Engine) submitPayment(ctx context.Context, payment *apitypes.PaymentRequest, outcome *apitypes.PaymentOutcome, nonce *fftypes.FFBigInt, gasPrice *fftypes.JSONAny) {
	headers := chainapi.TransactionHeaders{
		From:     e.signer,
		To:       payment.Token,
		Nonce:    nonce,
		NonceKey: outcome.NonceKey,
	}
	prepared, _, err := e.connector.TransactionPrepare(ctx, &chainapi.TransactionPrepareRequest{
		TransactionHeaders: headers,
		Method:             chainapi.MethodTokenTransfer,
		Params: []*fftypes.JSONAny{
			fftypes.JSONAnyPtr(`"` + payment.Recipient + `"`),
			fftypes.JSONAnyPtr(`"` + payment.Amount.Int().String() + `"`),
		},
	})
	if err != nil {
		outcome.Status = apitypes.PaymentStatusFailed
		outcome.Error = err.Error()
		return
	}

	headers.Gas = prepared.Gas
	res, _, err := e.connector.TransactionSend(ctx, &chainapi.TransactionSendRequest{
		TransactionHeaders: headers,
		GasPrice:           gasPrice,
		TransactionData:    prepared.TransactionData,
	})
	if err != nil {
		outcome.Status = apitypes.PaymentStatusFailed
		outcome.Error = err.Error()
		return
	}
	outcome.TransactionHash = res.TransactionHash
	outcome.Status = apitypes.PaymentStatusSubmitted
	log.L(ctx).Debugf("Payment to %s submitted on nonce key %d: %s", payment.Recipient, outcome.NonceKey, outcome.TransactionHash)
}

func (e *Engine) logChunkSummary(ctx context.Context, c *chunk, outcomes []*apitypes.PaymentOutcome, elapsed time.Duration) {
	confirmed, failed, pending := 0, 0, 0
	for i := range c.payments {
		switch outcomes[c.start+i].Status {
		case apitypes.PaymentStatusConfirmed:
			confirmed++
		case apitypes.PaymentStatusFailed:
			failed++
		default:
			pending++
		}
	}
	log.L(ctx).Infof("Chunk %d complete: keys %d-%d confirmed=%d failed=%d pending=%d elapsed=%.2fs",
		c.index, c.startKey, c.startKey+len(c.payments)-1, confirmed, failed, pending, elapsed.Seconds())
}
