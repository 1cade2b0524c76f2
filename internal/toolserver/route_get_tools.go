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

// A func declaration rather than the var style of the other routes: the
// catalog handler reaches back through m.routes() to this route, and a var
// here would be an initialization cycle
func getTools(m *manager) *ffapi.Route {
	return &ffapi.Route{
		Name:            "getTools",
		Path:            "/tools",
		Method:          http.MethodGet,
		PathParams:      nil,
		QueryParams:     nil,
		Description:     atmsgs.APIEndpointGetTools,
		JSONInputValue:  nil,
		JSONOutputValue: func() interface{} { return []*apitypes.ToolDescriptor{} },
		JSONOutputCodes: []int{http.StatusOK},
		JSONHandler: func(r *ffapi.APIRequest) (output interface{}, err error) {
			return m.toolCatalog(r.Req.Context()), nil
		},
	}
}
