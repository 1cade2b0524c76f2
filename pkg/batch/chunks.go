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
	"github.com/plexus-chain/agent-toolserver/pkg/apitypes"
)

// chunk is a contiguous slice of a batch that is submitted concurrently.
// start is the offset of the first payment within the batch, and startKey the
// nonce key assigned to it - payment i of the chunk uses key startKey+i.
type chunk struct {
	index    int
	start    int
	startKey int
	payments []*apitypes.PaymentRequest
}

// planChunks splits the payments into ceil(N/chunkSize) chunks in batch order.
// A chunkSize of zero or less disables chunking and yields a single chunk.
func planChunks(payments []*apitypes.PaymentRequest, startNonceKey, chunkSize int) []*chunk {
	if chunkSize <= 0 {
		chunkSize = len(payments)
	}
	chunks := make([]*chunk, 0, (len(payments)+chunkSize-1)/chunkSize)
	for start := 0; start < len(payments); start += chunkSize {
		end := start + chunkSize
		if end > len(payments) {
			end = len(payments)
		}
		chunks = append(chunks, &chunk{
			index:    len(chunks),
			start:    start,
			startKey: startNonceKey + start,
			payments: payments[start:end],
		})
	}
	return chunks
}
