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
	"errors"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/hyperledger/firefly-common/pkg/fftypes"
	"github.com/hyperledger/firefly-common/pkg/i18n"

	"github.com/plexus-chain/agent-toolserver/internal/atmsgs"
	"github.com/plexus-chain/agent-toolserver/pkg/chainapi"
)

// TransactionReceipt looks up the receipt for a transaction hash. Mined
// receipts are immutable so they are served from the LRU cache on repeat
// lookups - the agent calling back to check an earlier payment costs nothing.
func (c *Connector) TransactionReceipt(ctx context.Context, req *chainapi.TransactionReceiptRequest) (*chainapi.TransactionReceiptResponse, chainapi.ErrorReason, error) {
	if cached, ok := c.receiptCache.Get(req.TransactionHash); ok {
		return cached, "", nil
	}

	receipt, err := c.client.TransactionReceipt(ctx, common.HexToHash(req.TransactionHash))
	if err != nil {
		if errors.Is(err, ethereum.NotFound) {
			return nil, chainapi.ErrorReasonNotFound, i18n.NewError(ctx, atmsgs.MsgReceiptNotAvailable, req.TransactionHash)
		}
		return nil, mapError(err), err
	}

	res := &chainapi.TransactionReceiptResponse{
		BlockNumber:      fftypes.NewFFBigInt(receipt.BlockNumber.Int64()),
		TransactionIndex: fftypes.NewFFBigInt(int64(receipt.TransactionIndex)),
		BlockHash:        receipt.BlockHash.Hex(),
		Success:          receipt.Status == types.ReceiptStatusSuccessful,
		GasUsed:          fftypes.NewFFBigInt(int64(receipt.GasUsed)),
	}
	c.receiptCache.Add(req.TransactionHash, res)
	return res, "", nil
}

// TransactionWait polls for the receipt until the transaction is mined, the
// configured confirmation timeout passes, or the context is cancelled
func (c *Connector) TransactionWait(ctx context.Context, req *chainapi.TransactionWaitRequest) (*chainapi.TransactionWaitResponse, chainapi.ErrorReason, error) {
	deadline := time.Now().Add(c.confirmationTimeout)
	ticker := time.NewTicker(c.receiptPollingInterval)
	defer ticker.Stop()
	for {
		receipt, reason, err := c.TransactionReceipt(ctx, &chainapi.TransactionReceiptRequest{
			TransactionHash: req.TransactionHash,
		})
		if err == nil {
			return &chainapi.TransactionWaitResponse{Receipt: receipt}, "", nil
		}
		if reason != chainapi.ErrorReasonNotFound {
			return nil, reason, err
		}
		if time.Now().After(deadline) {
			return nil, chainapi.ErrorReasonTimeout, i18n.NewError(ctx, atmsgs.MsgConfirmationTimeout, req.TransactionHash, c.confirmationTimeout.Seconds())
		}
		select {
		case <-ticker.C:
		case <-ctx.Done():
			return nil, "", i18n.NewError(ctx, i18n.MsgContextCanceled)
		}
	}
}
