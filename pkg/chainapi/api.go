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
	"context"

	"github.com/hyperledger/firefly-common/pkg/fftypes"
)

// API is the interface to the chain-specific connector, from the tool server and
// the batch payment engine.
//
// The functions follow a consistent pattern of request/response objects, to allow
// extensibility of the inputs/outputs with minimal code change to existing connector
// implementations.
type API interface {

	// SignerAddress returns the address of the account the connector signs with
	SignerAddress(ctx context.Context) (string, error)

	// NextNonceForKey resolves the current counter for one of the account's 256
	// independent nonce-key sequences. Key 0 is the account's standard sequential
	// nonce; keys 1-255 are the parallel counters. Exactly one network round trip,
	// no side effects, safe to call concurrently for distinct keys.
	NextNonceForKey(ctx context.Context, req *NextNonceForKeyRequest) (*NextNonceForKeyResponse, ErrorReason, error)

	// GasPriceEstimate provides a chain-specific gas price estimate
	GasPriceEstimate(ctx context.Context, req *GasPriceEstimateRequest) (*GasPriceEstimateResponse, ErrorReason, error)

	// TransactionPrepare validates the method and parameters and performs the binary
	// encoding required prior to signing. ABI knowledge lives entirely behind this call.
	TransactionPrepare(ctx context.Context, req *TransactionPrepareRequest) (*TransactionPrepareResponse, ErrorReason, error)

	// TransactionSend signs a previously prepared transaction with the supplied
	// nonce/nonce-key and submits it to the transaction pool of the chain
	TransactionSend(ctx context.Context, req *TransactionSendRequest) (*TransactionSendResponse, ErrorReason, error)

	// TransactionReceipt queries to see if a receipt is available for a given transaction hash
	TransactionReceipt(ctx context.Context, req *TransactionReceiptRequest) (*TransactionReceiptResponse, ErrorReason, error)

	// TransactionWait blocks until the transaction is mined, the connector-configured
	// confirmation timeout expires, or the context is cancelled
	TransactionWait(ctx context.Context, req *TransactionWaitRequest) (*TransactionWaitResponse, ErrorReason, error)

	// QueryInvoke executes a read-only method on a contract without affecting chain state
	QueryInvoke(ctx context.Context, req *QueryInvokeRequest) (*QueryInvokeResponse, ErrorReason, error)
}

// ErrorReason are a set of standard error conditions that a connector can return
// from execution, that affect the action taken by the layer above.
// It is important that error mapping is performed for each of these classifications.
type ErrorReason string

const (
	// ErrorReasonInvalidInputs the inputs could not be parsed by the connector (nothing was sent to the chain)
	ErrorReasonInvalidInputs ErrorReason = "invalid_inputs"
	// ErrorReasonTransactionReverted on-chain execution failed
	ErrorReasonTransactionReverted ErrorReason = "transaction_reverted"
	// ErrorReasonNonceTooLow on submission, if the nonce has already been used on the canonical chain
	ErrorReasonNonceTooLow ErrorReason = "nonce_too_low"
	// ErrorReasonInsufficientFunds the signing account does not hold enough of the network coin
	ErrorReasonInsufficientFunds ErrorReason = "insufficient_funds"
	// ErrorReasonNotFound the requested object (receipt/block etc.) was not found
	ErrorReasonNotFound ErrorReason = "not_found"
	// ErrorKnownTransaction the exact transaction is already known to the node
	ErrorKnownTransaction ErrorReason = "known_transaction"
	// ErrorReasonTimeout the operation did not complete within the connector-configured window
	ErrorReasonTimeout ErrorReason = "timeout"
)

// TransactionHeaders is the standard set of parameters that accompany every
// transaction submission. Numeric values are string-encoded base-10 integers.
type TransactionHeaders struct {
	From     string            `json:"from,omitempty"`
	To       string            `json:"to,omitempty"`
	Nonce    *fftypes.FFBigInt `json:"nonce,omitempty"`
	NonceKey int               `json:"nonceKey"`
	Gas      *fftypes.FFBigInt `json:"gas,omitempty"`
	Value    *fftypes.FFBigInt `json:"value,omitempty"`
}
