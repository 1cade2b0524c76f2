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

	"github.com/hyperledger/firefly-common/pkg/fftypes"
	"github.com/hyperledger/firefly-common/pkg/i18n"

	"github.com/plexus-chain/agent-toolserver/internal/atmsgs"
	"github.com/plexus-chain/agent-toolserver/pkg/apitypes"
	"github.com/plexus-chain/agent-toolserver/pkg/chainapi"
)

func (m *manager) mintTokens(ctx context.Context, req *apitypes.TokenMintRequest) (*apitypes.TransactionResult, error) {
	switch {
	case req.Token == "":
		return nil, i18n.NewError(ctx, atmsgs.MsgMissingRequiredField, "token")
	case req.Recipient == "":
		return nil, i18n.NewError(ctx, atmsgs.MsgMissingRequiredField, "recipient")
	case req.Amount == nil:
		return nil, i18n.NewError(ctx, atmsgs.MsgMissingRequiredField, "amount")
	}
	return m.engine.ExecuteTransaction(ctx, req.Token, chainapi.MethodTokenMint, []*fftypes.JSONAny{
		strParam(req.Recipient),
		bigParam(req.Amount),
	})
}

func (m *manager) burnTokens(ctx context.Context, req *apitypes.TokenBurnRequest) (*apitypes.TransactionResult, error) {
	switch {
	case req.Token == "":
		return nil, i18n.NewError(ctx, atmsgs.MsgMissingRequiredField, "token")
	case req.Account == "":
		return nil, i18n.NewError(ctx, atmsgs.MsgMissingRequiredField, "account")
	case req.Amount == nil:
		return nil, i18n.NewError(ctx, atmsgs.MsgMissingRequiredField, "amount")
	}
	return m.engine.ExecuteTransaction(ctx, req.Token, chainapi.MethodTokenBurn, []*fftypes.JSONAny{
		strParam(req.Account),
		bigParam(req.Amount),
	})
}
