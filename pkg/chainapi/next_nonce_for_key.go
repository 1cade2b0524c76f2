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

// NextNonceForKeyRequest is used to query the next available nonce for one of
// the 256 independent counters of a signing address. The response reflects the
// chain state at the time of the call. The caller owns any in-flight offsetting,
// and must not cache the result across chunks of work.
type NextNonceForKeyRequest struct {
	Signer   string `json:"signer"`
	NonceKey int    `json:"nonceKey"`
}

type NextNonceForKeyResponse struct {
	Nonce *fftypes.FFBigInt `json:"nonce"`
}
