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

// Logical method names accepted by TransactionPrepare and QueryInvoke. The
// mapping to concrete contract function signatures is owned by the connector.
const (
	MethodTokenTransfer = "transfer"
	MethodTokenMint     = "mint"
	MethodTokenBurn     = "burn"

	MethodRoleGrant  = "grantRole"
	MethodRoleRevoke = "revokeRole"
	MethodRolesOf    = "rolesOf"

	MethodPolicySet = "setPolicy"
	MethodPolicyGet = "getPolicy"

	MethodSponsorshipSet    = "setSponsorship"
	MethodSponsorshipRemove = "removeSponsorship"

	MethodAccessKeyGrant  = "grantAccessKey"
	MethodAccessKeyRevoke = "revokeAccessKey"
)
