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

package chainapi

import (
	"github.com/hyperledger/firefly-common/pkg/fftypes"
)

// TransactionPrepareRequest is used to prepare a set of JSON formatted method
// and parameters for encoding, prior to signing and submission.
//
// The method names are logical contract operations ("transfer", "mint" etc.) -
// the mapping to a contract function signature, and the binary parameter
// encoding, are owned by the connector.
//
// This is a deliberate separation from TransactionSend, so that the nonce
// assignment performed by the caller happens against a request that has already
// been validated. A failure here is always classified invalid_inputs, and is
// guaranteed not to have consumed a nonce.
type TransactionPrepareRequest struct {
	TransactionHeaders
	Method string             `json:"method"`
	Params []*fftypes.JSONAny `json:"params"`
}

type TransactionPrepareResponse struct {
	Gas             *fftypes.FFBigInt `json:"gas"`
	TransactionData string            `json:"transactionData"`
}
