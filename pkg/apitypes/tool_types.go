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

// TransactionResult is the common response for tools that submit a single
// transaction and wait for it to be mined.
type TransactionResult struct {
	TransactionHash string            `json:"transactionHash"`
	Status          PaymentStatus     `json:"status"`
	BlockNumber     *fftypes.FFBigInt `json:"blockNumber,omitempty"`
	Error           string            `json:"error,omitempty"`
}

// TokenMintRequest mints tokens to a recipient
type TokenMintRequest struct {
	Token     string            `json:"token"`
	Recipient string            `json:"recipient"`
	Amount    *fftypes.FFBigInt `json:"amount"`
}

// TokenBurnRequest burns tokens from an account
type TokenBurnRequest struct {
	Token   string            `json:"token"`
	Account string            `json:"account"`
	Amount  *fftypes.FFBigInt `json:"amount"`
}

// RoleChangeRequest grants or revokes a named registry role for an account
type RoleChangeRequest struct {
	Account string `json:"account"`
	Role    string `json:"role"`
}

// RolesResult lists the roles held by an account
type RolesResult struct {
	Account string   `json:"account"`
	Roles   []string `json:"roles"`
}

// PolicyUpdateRequest sets the parameter document of a named compliance policy
type PolicyUpdateRequest struct {
	Parameters *fftypes.JSONAny `json:"parameters"`
}

// PolicyResult is the stored state of a named compliance policy
type PolicyResult struct {
	PolicyName      string           `json:"policyName"`
	Parameters      *fftypes.JSONAny `json:"parameters"`
	TransactionHash string           `json:"transactionHash,omitempty"`
}

// RewardRecipient is one recipient of a reward distribution
type RewardRecipient struct {
	Recipient string            `json:"recipient"`
	Amount    *fftypes.FFBigInt `json:"amount"`
}

// RewardDistributionRequest distributes rewards to a set of recipients. The
// distribution is executed through the parallel batch engine.
type RewardDistributionRequest struct {
	Token               string             `json:"token"`
	Recipients          []*RewardRecipient `json:"recipients"`
	StartNonceKey       int                `json:"startNonceKey"`
	WaitForConfirmation bool               `json:"waitForConfirmation"`
	Memo                string             `json:"memo,omitempty"`
}

// SponsorshipRequest registers fee sponsorship for an address
type SponsorshipRequest struct {
	SponsoredAddress string            `json:"sponsoredAddress"`
	SpendLimit       *fftypes.FFBigInt `json:"spendLimit,omitempty"`
}

// AccessKeyRequest grants a delegated access key with a scoped permission set
type AccessKeyRequest struct {
	KeyAddress  string          `json:"keyAddress"`
	Permissions []string        `json:"permissions"`
	ExpiryTime  *fftypes.FFTime `json:"expiryTime,omitempty"`
}

// NonceKeyStatus is the state of one of the 256 parallel counters of an account
type NonceKeyStatus struct {
	NonceKey int               `json:"nonceKey"`
	Counter  *fftypes.FFBigInt `json:"counter"`
}

// NonceKeysResult reports the nonce keys of an account that have a non-zero
// counter, from a fresh scan of the chain state
type NonceKeysResult struct {
	Account    string            `json:"account"`
	ActiveKeys []*NonceKeyStatus `json:"activeKeys"`
}

// ToolDescriptor is one entry in the machine-readable tool catalog served to
// agent callers
type ToolDescriptor struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Method      string `json:"method"`
	Path        string `json:"path"`
}
