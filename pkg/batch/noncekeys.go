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

	"github.com/hyperledger/firefly-common/pkg/fftypes"
	"github.com/hyperledger/firefly-common/pkg/i18n"

	"github.com/plexus-chain/agent-toolserver/internal/atmsgs"
	"github.com/plexus-chain/agent-toolserver/pkg/apitypes"
	"github.com/plexus-chain/agent-toolserver/pkg/chainapi"
)

// ListActiveNonceKeys scans all 256 counters of an account, keyScanBatchSize
// keys at a time, and reports those that have ever been used. A full scan is
// 256 reads, so this is a diagnostic endpoint rather than something the batch
// engine depends on - batches always read only the keys they are about to use.
func (e *Engine) ListActiveNonceKeys(ctx context.Context, account string) (*apitypes.NonceKeysResult, error) {
	if account == "" {
		account = e.signer
	}
	counters := make([]*fftypes.FFBigInt, NonceKeyCount)
	errs := make([]error, NonceKeyCount)

	window := e.keyScanBatchSize
	if window <= 0 {
		window = NonceKeyCount
	}
	for start := 0; start < NonceKeyCount; start += window {
		end := start + window
		if end > NonceKeyCount {
			end = NonceKeyCount
		}
		var wg sync.WaitGroup
		for key := start; key < end; key++ {
			wg.Add(1)
			go func(key int) {
				defer wg.Done()
				res, _, err := e.connector.NextNonceForKey(ctx, &chainapi.NextNonceForKeyRequest{
					Signer:   account,
					NonceKey: key,
				})
				if err != nil {
					errs[key] = err
					return
				}
				counters[key] = res.Nonce
			}(key)
		}
		wg.Wait()
		for key := start; key < end; key++ {
			if errs[key] != nil {
				return nil, i18n.WrapError(ctx, errs[key], atmsgs.MsgNonceReadFailed, key, errs[key].Error())
			}
		}
	}

	result := &apitypes.NonceKeysResult{
		Account:    account,
		ActiveKeys: []*apitypes.NonceKeyStatus{},
	}
	for key, counter := range counters {
		if counter != nil && counter.Int().Sign() > 0 {
			result.ActiveKeys = append(result.ActiveKeys, &apitypes.NonceKeyStatus{
				NonceKey: key,
				Counter:  counter,
			})
		}
	}
	return result, nil
}
