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
	"math/big"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/hyperledger/firefly-common/pkg/fftypes"
	"github.com/hyperledger/firefly-common/pkg/i18n"

	"github.com/plexus-chain/agent-toolserver/internal/atmsgs"
	"github.com/plexus-chain/agent-toolserver/pkg/chainapi"
)

// QueryInvoke executes a read-only method via eth_call and returns the decoded
// outputs as JSON. A single output is returned bare, multiple outputs as an
// array.
func (c *Connector) QueryInvoke(ctx context.Context, req *chainapi.QueryInvokeRequest) (*chainapi.QueryInvokeResponse, chainapi.ErrorReason, error) {
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

	to := common.HexToAddress(req.To)
	res, err := c.client.CallContract(ctx, ethereum.CallMsg{From: c.signer, To: &to, Data: data}, nil)
	if err != nil {
		return nil, mapError(err), i18n.WrapError(ctx, err, atmsgs.MsgQueryInvokeFailed, req.Method, err.Error())
	}
	out, err := m.abi.Unpack(m.name, res)
	if err != nil {
		return nil, "", i18n.WrapError(ctx, err, atmsgs.MsgQueryInvokeFailed, req.Method, err.Error())
	}

	var outJSON []byte
	switch len(out) {
	case 0:
		outJSON = []byte(fftypes.NullString)
	case 1:
		outJSON, err = json.Marshal(jsonValue(out[0]))
	default:
		values := make([]interface{}, len(out))
		for i, v := range out {
			values[i] = jsonValue(v)
		}
		outJSON, err = json.Marshal(values)
	}
	if err != nil {
		return nil, "", err
	}
	return &chainapi.QueryInvokeResponse{Outputs: fftypes.JSONAnyPtrBytes(outJSON)}, "", nil
}

// jsonValue maps ABI output values onto JSON friendly types - big integers as
// strings, so precision is never lost in a float round trip
func jsonValue(v interface{}) interface{} {
	switch tv := v.(type) {
	case *big.Int:
		return tv.String()
	case common.Address:
		return tv.Hex()
	case [32]byte:
		return common.BytesToHash(tv[:]).Hex()
	default:
		return tv
	}
}
