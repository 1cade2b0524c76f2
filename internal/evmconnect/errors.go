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
	"strings"

	"github.com/plexus-chain/agent-toolserver/pkg/chainapi"
)

// mapError classifies node errors onto the standard reasons the layers above
// act on. Matching is on the error text, as the JSON/RPC errors of EVM nodes
// carry no stable machine-readable code for these conditions.
func mapError(err error) chainapi.ErrorReason {
	errString := strings.ToLower(err.Error())
	switch {
	case strings.Contains(errString, "nonce too low"):
		return chainapi.ErrorReasonNonceTooLow
	case strings.Contains(errString, "insufficient funds"):
		return chainapi.ErrorReasonInsufficientFunds
	case strings.Contains(errString, "known transaction"), strings.Contains(errString, "already known"):
		return chainapi.ErrorKnownTransaction
	case strings.Contains(errString, "execution reverted"):
		return chainapi.ErrorReasonTransactionReverted
	case strings.Contains(errString, "not found"):
		return chainapi.ErrorReasonNotFound
	default:
		return ""
	}
}
