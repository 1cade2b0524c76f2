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
	"net/http"

	"github.com/hyperledger/firefly-common/pkg/ffapi"

	"github.com/plexus-chain/agent-toolserver/internal/atmsgs"
	"github.com/plexus-chain/agent-toolserver/pkg/apitypes"
)

var deleteAccessKey = func(m *manager) *ffapi.Route {
	return &ffapi.Route{
		Name:   "deleteAccessKey",
		Path:   "/access-keys/{keyAddress}",
		Method: http.MethodDelete,
		PathParams: []*ffapi.PathParam{
			{Name: "keyAddress", Description: atmsgs.APIParamKeyAddress},
		},
		QueryParams:     nil,
		Description:     atmsgs.APIEndpointDeleteAccessKey,
		JSONInputValue:  nil,
		JSONOutputValue: func() interface{} { return &apitypes.TransactionResult{} },
		JSONOutputCodes: []int{http.StatusOK},
		JSONHandler: func(r *ffapi.APIRequest) (output interface{}, err error) {
			return m.revokeAccessKey(r.Req.Context(), r.PP["keyAddress"])
		},
	}
}
