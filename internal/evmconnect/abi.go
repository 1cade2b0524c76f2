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

package evmconnect

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/hyperledger/firefly-common/pkg/fftypes"
	"github.com/hyperledger/firefly-common/pkg/i18n"

	"github.com/plexus-chain/agent-toolserver/internal/atmsgs"
	"github.com/plexus-chain/agent-toolserver/pkg/chainapi"
)

// The token contract carries the value operations, and the account registry
// contract carries roles, compliance policies, fee sponsorships and delegated
// access keys. Both are fixed interfaces of the chain's standard contracts.
const tokenABIJSON = `[
	{"type":"function","name":"transfer","stateMutability":"nonpayable","inputs":[{"name":"to","type":"address"},{"name":"amount","type":"uint256"}],"outputs":[{"type":"bool"}]},
	{"type":"function","name":"mint","stateMutability":"nonpayable","inputs":[{"name":"to","type":"address"},{"name":"amount","type":"uint256"}],"outputs":[]},
	{"type":"function","name":"burn","stateMutability":"nonpayable","inputs":[{"name":"from","type":"address"},{"name":"amount","type":"uint256"}],"outputs":[]}
]`

const registryABIJSON = `[
	{"type":"function","name":"grantRole","stateMutability":"nonpayable","inputs":[{"name":"account","type":"address"},{"name":"role","type":"string"}],"outputs":[]},
	{"type":"function","name":"revokeRole","stateMutability":"nonpayable","inputs":[{"name":"account","type":"address"},{"name":"role","type":"string"}],"outputs":[]},
	{"type":"function","name":"rolesOf","stateMutability":"view","inputs":[{"name":"account","type":"address"}],"outputs":[{"name":"roles","type":"string[]"}]},
	{"type":"function","name":"setPolicy","stateMutability":"nonpayable","inputs":[{"name":"name","type":"string"},{"name":"parameters","type":"string"}],"outputs":[]},
	{"type":"function","name":"getPolicy","stateMutability":"view","inputs":[{"name":"name","type":"string"}],"outputs":[{"name":"parameters","type":"string"}]},
	{"type":"function","name":"setSponsorship","stateMutability":"nonpayable","inputs":[{"name":"sponsored","type":"address"},{"name":"spendLimit","type":"uint256"}],"outputs":[]},
	{"type":"function","name":"removeSponsorship","stateMutability":"nonpayable","inputs":[{"name":"sponsored","type":"address"}],"outputs":[]},
	{"type":"function","name":"grantAccessKey","stateMutability":"nonpayable","inputs":[{"name":"key","type":"address"},{"name":"permissions","type":"string[]"},{"name":"expiry","type":"uint64"}],"outputs":[]},
	{"type":"function","name":"revokeAccessKey","stateMutability":"nonpayable","inputs":[{"name":"key","type":"address"}],"outputs":[]}
]`

const noncePrecompileABIJSON = `[
	{"type":"function","name":"nonceOfKey","stateMutability":"view","inputs":[{"name":"account","type":"address"},{"name":"key","type":"uint8"}],"outputs":[{"name":"counter","type":"uint64"}]}
]`

func mustParseABI(abiJSON string) abi.ABI {
	parsed, err := abi.JSON(strings.NewReader(abiJSON))
	if err != nil {
		panic(err)
	}
	return parsed
}

var tokenABI = mustParseABI(tokenABIJSON)
var registryABI = mustParseABI(registryABIJSON)
var noncePrecompileABI = mustParseABI(noncePrecompileABIJSON)

type methodDef struct {
	abi  *abi.ABI
	name string
}

func buildMethodTable() map[string]*methodDef {
	return map[string]*methodDef{
		chainapi.MethodTokenTransfer: {abi: &tokenABI, name: "transfer"},
		chainapi.MethodTokenMint:     {abi: &tokenABI, name: "mint"},
		chainapi.MethodTokenBurn:     {abi: &tokenABI, name: "burn"},

		chainapi.MethodRoleGrant:  {abi: &registryABI, name: "grantRole"},
		chainapi.MethodRoleRevoke: {abi: &registryABI, name: "revokeRole"},
		chainapi.MethodRolesOf:    {abi: &registryABI, name: "rolesOf"},

		chainapi.MethodPolicySet: {abi: &registryABI, name: "setPolicy"},
		chainapi.MethodPolicyGet: {abi: &registryABI, name: "getPolicy"},

		chainapi.MethodSponsorshipSet:    {abi: &registryABI, name: "setSponsorship"},
		chainapi.MethodSponsorshipRemove: {abi: &registryABI, name: "removeSponsorship"},

		chainapi.MethodAccessKeyGrant:  {abi: &registryABI, name: "grantAccessKey"},
		chainapi.MethodAccessKeyRevoke: {abi: &registryABI, name: "revokeAccessKey"},
	}
}

// convertParams maps the JSON parameters of a request onto the Go types the
// ABI encoder expects for the method's inputs
func (c *Connector) convertParams(ctx context.Context, m *methodDef, params []*fftypes.JSONAny) ([]interface{}, error) {
	inputs := m.abi.Methods[m.name].Inputs
	if len(params) != len(inputs) {
		return nil, i18n.NewError(ctx, atmsgs.MsgInvalidParamCount, m.name, len(inputs), len(params))
	}
	args := make([]interface{}, len(inputs))
	for i, input := range inputs {
		raw := []byte(params[i].String())
		switch input.Type.String() {
		case "address":
			var s string
			if err := json.Unmarshal(raw, &s); err != nil || !common.IsHexAddress(s) {
				return nil, i18n.NewError(ctx, atmsgs.MsgInvalidAddress, params[i].String())
			}
			args[i] = common.HexToAddress(s)
		case "uint256":
			var v fftypes.FFBigInt
			if err := json.Unmarshal(raw, &v); err != nil {
				return nil, i18n.NewError(ctx, atmsgs.MsgInvalidAmount, params[i].String())
			}
			args[i] = v.Int()
		case "uint64":
			var v fftypes.FFBigInt
			if err := json.Unmarshal(raw, &v); err != nil {
				return nil, i18n.NewError(ctx, atmsgs.MsgInvalidParam, i, m.name, err)
			}
			args[i] = v.Int().Uint64()
		case "uint8":
			var v fftypes.FFBigInt
			if err := json.Unmarshal(raw, &v); err != nil {
				return nil, i18n.NewError(ctx, atmsgs.MsgInvalidParam, i, m.name, err)
			}
			args[i] = uint8(v.Int().Uint64())
		case "string":
			var s string
			if err := json.Unmarshal(raw, &s); err != nil {
				return nil, i18n.NewError(ctx, atmsgs.MsgInvalidParam, i, m.name, err)
			}
			args[i] = s
		case "string[]":
			var ss []string
			if err := json.Unmarshal(raw, &ss); err != nil {
				return nil, i18n.NewError(ctx, atmsgs.MsgInvalidParam, i, m.name, err)
			}
			args[i] = ss
		default:
			return nil, i18n.NewError(ctx, atmsgs.MsgInvalidParam, i, m.name, input.Type.String())
		}
	}
	return args, nil
}

// TransactionPrepare validates the method and parameters, and encodes the
// calldata. Nothing is sent to the chain, and no nonce is consumed - a failure
// here is always safe to surface straight back to the caller.
func (c *Connector) TransactionPrepare(ctx context.Context, req *chainapi.TransactionPrepareRequest) (*chainapi.TransactionPrepareResponse, chainapi.ErrorReason, error) {
	m, ok := c.methods[req.Method]
	if !ok {
		return nil, chainapi.ErrorReasonInvalidInputs, i18n.NewError(ctx, atmsgs.MsgUnknownMethod, req.Method)
	}
	if !common.IsHexAddress(req.To) {
		return nil, chainapi.ErrorReasonInvalidInputs, i18n.NewError(ctx, atmsgs.MsgInvalidAddress, req.To)
	}
	args, err := c.convertParams(ctx, m, req.Params)
	if err != nil {
		return nil, chainapi.ErrorReasonInvalidInputs, err
	}
	data, err := m.abi.Pack(m.name, args...)
	if err != nil {
		return nil, chainapi.ErrorReasonInvalidInputs, err
	}
	gas := req.Gas
	if gas == nil || gas.Int().Sign() <= 0 {
		gas = fftypes.NewFFBigInt(int64(c.gasLimit))
	}
	return &chainapi.TransactionPrepareResponse{
		Gas:             gas,
		TransactionData: hexutil.Encode(data),
	}, "", nil
}
