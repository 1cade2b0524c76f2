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

package toolserver

import (
	"github.com/hyperledger/firefly-common/pkg/ffapi"
)

func (m *manager) routes() []*ffapi.Route {
	return []*ffapi.Route{
		postBatchPayments(m),
		postRewardsDistribute(m),
		getNonceKeys(m),
		postTokenMint(m),
		postTokenBurn(m),
		postRoleGrant(m),
		postRoleRevoke(m),
		getRoles(m),
		putPolicy(m),
		getPolicy(m),
		postSchedule(m),
		getSchedules(m),
		getSchedule(m),
		deleteSchedule(m),
		postSponsorship(m),
		deleteSponsorship(m),
		postAccessKey(m),
		deleteAccessKey(m),
		getTransactionReceipt(m),
		getTools(m),
	}
}

func (m *manager) monitoringRoutes() []*ffapi.Route {
	return []*ffapi.Route{
		getLiveness(m),
		getReadiness(m),
	}
}
