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

package atmsgs

import (
	"github.com/hyperledger/firefly-common/pkg/i18n"
	"golang.org/x/text/language"
)

var ffm = func(key, translation string) i18n.MessageKey {
	return i18n.FFM(language.AmericanEnglish, key, translation)
}

//revive:disable
var (
	APIEndpointPostBatchPayments = ffm("api.endpoints.post.batchpayments", "Submit a batch of token payments in parallel across nonce keys. Omitting startNonceKey starts from key 0. Retrying a partially-failed batch is the caller's responsibility, and must use a fresh startNonceKey to avoid colliding with still-pending transactions from the prior attempt")
	APIEndpointGetNonceKeys      = ffm("api.endpoints.get.noncekeys", "List the nonce keys with a non-zero counter for an account (diagnostic, read-only)")
	APIEndpointPostTokenMint     = ffm("api.endpoints.post.tokens.mint", "Mint tokens to a recipient")
	APIEndpointPostTokenBurn     = ffm("api.endpoints.post.tokens.burn", "Burn tokens from an account")
	APIEndpointPostRoleGrant     = ffm("api.endpoints.post.roles.grant", "Grant a registry role to an account")
	APIEndpointPostRoleRevoke    = ffm("api.endpoints.post.roles.revoke", "Revoke a registry role from an account")
	APIEndpointGetRoles          = ffm("api.endpoints.get.roles", "Query the roles held by an account")
	APIEndpointPutPolicy         = ffm("api.endpoints.put.policy", "Set the parameters of a named compliance policy")
	APIEndpointGetPolicy         = ffm("api.endpoints.get.policy", "Read the parameters of a named compliance policy")
	APIEndpointPostRewards       = ffm("api.endpoints.post.rewards", "Distribute rewards to a set of recipients, submitted in parallel through the batch engine")
	APIEndpointPostSchedule      = ffm("api.endpoints.post.schedules", "Create a scheduled payment (one-shot or recurring). Schedules are held in memory only and do not survive a restart")
	APIEndpointGetSchedules      = ffm("api.endpoints.get.schedules", "List scheduled payments")
	APIEndpointGetSchedule       = ffm("api.endpoints.get.schedule", "Get a scheduled payment")
	APIEndpointDeleteSchedule    = ffm("api.endpoints.delete.schedule", "Cancel a scheduled payment")
	APIEndpointPostSponsorship   = ffm("api.endpoints.post.sponsorships", "Register fee sponsorship for an address, so its transactions are paid by the sponsor account")
	APIEndpointDeleteSponsorship = ffm("api.endpoints.delete.sponsorship", "Remove fee sponsorship for an address")
	APIEndpointPostAccessKey     = ffm("api.endpoints.post.accesskeys", "Grant a delegated access key with a scoped permission set")
	APIEndpointDeleteAccessKey   = ffm("api.endpoints.delete.accesskey", "Revoke a delegated access key")
	APIEndpointGetReceipt        = ffm("api.endpoints.get.receipt", "Get the receipt for a transaction hash")
	APIEndpointGetTools          = ffm("api.endpoints.get.tools", "Machine-readable catalog of the tools exposed by this server, for agent callers")
	APIEndpointGetStatusLive     = ffm("api.endpoints.get.status.live", "Get the liveness status of the tool server")
	APIEndpointGetStatusReady    = ffm("api.endpoints.get.status.ready", "Get the readiness status of the tool server")

	APIParamAddress         = ffm("api.params.address", "Account address (defaults to the tool server's own signing account)")
	APIParamPolicyName      = ffm("api.params.policyName", "Compliance policy name")
	APIParamScheduleID      = ffm("api.params.scheduleId", "Schedule ID")
	APIParamSponsoredAddr   = ffm("api.params.sponsoredAddress", "Sponsored account address")
	APIParamKeyAddress      = ffm("api.params.keyAddress", "Access key address")
	APIParamTransactionHash = ffm("api.params.transactionHash", "Transaction hash")
)
