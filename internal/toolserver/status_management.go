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
	"context"

	"github.com/hyperledger/firefly-common/pkg/i18n"

	"github.com/plexus-chain/agent-toolserver/internal/atmsgs"
	"github.com/plexus-chain/agent-toolserver/pkg/apitypes"
	"github.com/plexus-chain/agent-toolserver/pkg/chainapi"
)

func (m *manager) getLiveStatus(_ context.Context) (*apitypes.LiveStatus, error) {
	return &apitypes.LiveStatus{Up: true}, nil
}

func (m *manager) getReadyStatus(ctx context.Context) (*apitypes.ReadyStatus, error) {
	if m.ctx.Err() != nil {
		return nil, i18n.NewError(ctx, atmsgs.MsgShuttingDown)
	}
	if !m.started {
		return nil, i18n.NewError(ctx, atmsgs.MsgNotStarted)
	}
	return &apitypes.ReadyStatus{
		Ready:  true,
		Signer: m.engine.Signer(),
	}, nil
}

func (m *manager) getTransactionReceipt(ctx context.Context, transactionHash string) (*chainapi.TransactionReceiptResponse, error) {
	res, _, err := m.connector.TransactionReceipt(ctx, &chainapi.TransactionReceiptRequest{
		TransactionHash: transactionHash,
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}

// toolCatalog renders the API routes as a machine-readable tool list, so agent
// callers can discover the surface without parsing the OpenAPI document
func (m *manager) toolCatalog(ctx context.Context) []*apitypes.ToolDescriptor {
	routes := m.routes()
	tools := make([]*apitypes.ToolDescriptor, len(routes))
	for i, r := range routes {
		tools[i] = &apitypes.ToolDescriptor{
			Name:        r.Name,
			Description: i18n.Expand(ctx, r.Description),
			Method:      r.Method,
			Path:        r.Path,
		}
	}
	return tools
}
