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

package apitypes

import (
	"github.com/hyperledger/firefly-common/pkg/fftypes"
)

// PaymentStatus is the lifecycle state of an individual payment within a batch
type PaymentStatus string

const (
	// PaymentStatusSubmitted the payment transaction was accepted into the transaction pool,
	// but the batch did not wait for it to be mined
	PaymentStatusSubmitted PaymentStatus = "Submitted"
	// PaymentStatusConfirmed the payment transaction was mined and executed successfully
	PaymentStatusConfirmed PaymentStatus = "Confirmed"
	// PaymentStatusFailed the payment failed - at nonce resolution, submission, or on-chain
	PaymentStatusFailed PaymentStatus = "Failed"
)

// PaymentRequest is a single token transfer within a batch
type PaymentRequest struct {
	Token     string            `json:"token"`
	Recipient string            `json:"recipient"`
	Amount    *fftypes.FFBigInt `json:"amount"`
	Memo      string            `json:"memo,omitempty"`
}

// PaymentOutcome is the result of one payment, in the same position as its
// request in the batch. NonceKey records which of the 256 parallel counters
// carried the transaction.
type PaymentOutcome struct {
	NonceKey        int           `json:"nonceKey"`
	TransactionHash string        `json:"transactionHash,omitempty"`
	Status          PaymentStatus `json:"status"`
	Error           string        `json:"error,omitempty"`
}

// BatchPaymentRequest submits up to 256 payments for parallel execution, each
// on its own nonce key starting at StartNonceKey. Omitting startNonceKey runs
// the batch from key 0 - callers retrying or interleaving batches must pick
// the start key explicitly so pending transactions never share a key.
type BatchPaymentRequest struct {
	Payments            []*PaymentRequest `json:"payments"`
	StartNonceKey       int               `json:"startNonceKey"`
	WaitForConfirmation bool              `json:"waitForConfirmation"`
}

// BatchPaymentResult aggregates the per-payment outcomes of a batch.
// Success is true only when no payment failed - payments still pending
// (submitted without waiting) do not count against success.
type BatchPaymentResult struct {
	Success           bool              `json:"success"`
	TotalPayments     int               `json:"totalPayments"`
	ConfirmedPayments int               `json:"confirmedPayments"`
	FailedPayments    int               `json:"failedPayments"`
	PendingPayments   int               `json:"pendingPayments"`
	ChunksProcessed   int               `json:"chunksProcessed"`
	Outcomes          []*PaymentOutcome `json:"outcomes"`
	Elapsed           fftypes.FFDuration `json:"elapsed"`
}
