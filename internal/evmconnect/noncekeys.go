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

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/hyperledger/firefly-common/pkg/fftypes"
	"github.com/hyperledger/firefly-common/pkg/i18n"

	"github.com/plexus-chain/agent-toolserver/internal/atmsgs"
	"github.com/plexus-chain/agent-toolserver/pkg/chainapi"
)

// The chain packs the nonce key into the top byte of the 64-bit wire nonce,
// leaving a 56-bit counter per key. The per-key counters for keys 1-255 are
// exposed by the nonce registry precompile; key 0 is the standard transaction
// count, so its counter is readable as eth_getTransactionCount.
var noncePrecompileAddress = common.HexToAddress("0x0000000000000000000000000000000000000100")

const nonceKeyShift = 56

func packNonce(nonceKey int, counter uint64) uint64 {
	return uint64(nonceKey)<<nonceKeyShift | counter
}

// NextNonceForKey reads the current counter of one nonce key, fresh from the
// node. One RPC round trip, no local caching - the submitter layers above rely
// on this never returning stale state.
func (c *Connector) NextNonceForKey(ctx context.Context, req *chainapi.NextNonceForKeyRequest) (*chainapi.NextNonceForKeyResponse, chainapi.ErrorReason, error) {
	if req.NonceKey < 0 || req.NonceKey >= 256 {
		return nil, chainapi.ErrorReasonInvalidInputs, i18n.NewError(ctx, atmsgs.MsgNonceKeyOutOfRange, req.NonceKey)
	}
	account := c.signer
	if req.Signer != "" {
		if !common.IsHexAddress(req.Signer) {
			return nil, chainapi.ErrorReasonInvalidInputs, i18n.NewError(ctx, atmsgs.MsgInvalidAddress, req.Signer)
		}
		account = common.HexToAddress(req.Signer)
	}

	var counter uint64
	if req.NonceKey == 0 {
		n, err := c.client.PendingNonceAt(ctx, account)
		if err != nil {
			return nil, mapError(err), err
		}
		counter = n
	} else {
		data, err := noncePrecompileABI.Pack("nonceOfKey", account, uint8(req.NonceKey))
		if err != nil {
			return nil, chainapi.ErrorReasonInvalidInputs, err
		}
		res, err := c.client.CallContract(ctx, ethereum.CallMsg{To: &noncePrecompileAddress, Data: data}, nil)
		if err != nil {
			return nil, mapError(err), err
		}
		out, err := noncePrecompileABI.Unpack("nonceOfKey", res)
		if err != nil {
			return nil, "", err
		}
		counter = out[0].(uint64)
	}

	return &chainapi.NextNonceForKeyResponse{
		Nonce: fftypes.NewFFBigInt(int64(counter)),
	}, "", nil
}
