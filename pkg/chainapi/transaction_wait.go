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

// TransactionWaitRequest blocks until the transaction is mined, or the
// connector's configured confirmation timeout expires. On timeout the
// connector returns the timeout ErrorReason - the transaction may still
// be mined later, and its receipt remains queryable.
type TransactionWaitRequest struct {
	TransactionHash string `json:"transactionHash"`
}

type TransactionWaitResponse struct {
	Receipt *TransactionReceiptResponse `json:"receipt"`
}
