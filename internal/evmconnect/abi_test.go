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
	"testing"

	"github.com/hyperledger/firefly-common/pkg/fftypes"
	"github.com/stretchr/testify/assert"

	"github.com/plexus-chain/agent-toolserver/pkg/chainapi"
)

const testRecipient = "0x05A8f522cD8C1d771Aa1460E04eaF35f5d2a1026"
const testContract = "0x1932c48b2bF8102Ba33B4A6B545C32236e342f34"

func newTestConnector() *Connector {
	return &Connector{
		gasLimit: 200000,
		methods:  buildMethodTable(),
	}
}

func TestTransactionPrepareTransfer(t *testing.T) {
	c := newTestConnector()

	res, reason, err := c.TransactionPrepare(context.Background(), &chainapi.TransactionPrepareRequest{
		TransactionHeaders: chainapi.TransactionHeaders{To: testContract},
		Method:             chainapi.MethodTokenTransfer,
		Params: []*fftypes.JSONAny{
			fftypes.JSONAnyPtr(`"` + testRecipient + `"`),
			fftypes.JSONAnyPtr(`"1000"`),
		},
	})
	assert.NoError(t, err)
	assert.Empty(t, reason)

	// 4-byte selector of transfer(address,uint256)
	assert.Regexp(t, "^0xa9059cbb", res.TransactionData)
	assert.Equal(t, int64(200000), res.Gas.Int64())
}

func TestTransactionPrepareExplicitGas(t *testing.T) {
	c := newTestConnector()

	res, _, err := c.TransactionPrepare(context.Background(), &chainapi.TransactionPrepareRequest{
		TransactionHeaders: chainapi.TransactionHeaders{
			To:  testContract,
			Gas: fftypes.NewFFBigInt(55555),
		},
		Method: chainapi.MethodTokenMint,
		Params: []*fftypes.JSONAny{
			fftypes.JSONAnyPtr(`"` + testRecipient + `"`),
			fftypes.JSONAnyPtr(`"1000"`),
		},
	})
	assert.NoError(t, err)
	assert.Equal(t, int64(55555), res.Gas.Int64())
}

func TestTransactionPrepareAccessKeyGrant(t *testing.T) {
	c := newTestConnector()

	res, _, err := c.TransactionPrepare(context.Background(), &chainapi.TransactionPrepareRequest{
		TransactionHeaders: chainapi.TransactionHeaders{To: testContract},
		Method:             chainapi.MethodAccessKeyGrant,
		Params: []*fftypes.JSONAny{
			fftypes.JSONAnyPtr(`"` + testRecipient + `"`),
			fftypes.JSONAnyPtr(`["payments:send","tokens:mint"]`),
			fftypes.JSONAnyPtr(`1767225600`),
		},
	})
	assert.NoError(t, err)
	assert.NotEmpty(t, res.TransactionData)
}

func TestTransactionPrepareUnknownMethod(t *testing.T) {
	c := newTestConnector()

	_, reason, err := c.TransactionPrepare(context.Background(), &chainapi.TransactionPrepareRequest{
		TransactionHeaders: chainapi.TransactionHeaders{To: testContract},
		Method:             "selfdestruct",
	})
	assert.Regexp(t, "AT01018", err)
	assert.Equal(t, chainapi.ErrorReasonInvalidInputs, reason)
}

func TestTransactionPrepareBadToAddress(t *testing.T) {
	c := newTestConnector()

	_, reason, err := c.TransactionPrepare(context.Background(), &chainapi.TransactionPrepareRequest{
		TransactionHeaders: chainapi.TransactionHeaders{To: "not-an-address"},
		Method:             chainapi.MethodTokenMint,
	})
	assert.Regexp(t, "AT01016", err)
	assert.Equal(t, chainapi.ErrorReasonInvalidInputs, reason)
}

func TestTransactionPrepareWrongParamCount(t *testing.T) {
	c := newTestConnector()

	_, reason, err := c.TransactionPrepare(context.Background(), &chainapi.TransactionPrepareRequest{
		TransactionHeaders: chainapi.TransactionHeaders{To: testContract},
		Method:             chainapi.MethodTokenMint,
		Params: []*fftypes.JSONAny{
			fftypes.JSONAnyPtr(`"` + testRecipient + `"`),
		},
	})
	assert.Regexp(t, "AT01044", err)
	assert.Equal(t, chainapi.ErrorReasonInvalidInputs, reason)
}

func TestTransactionPrepareBadAddressParam(t *testing.T) {
	c := newTestConnector()

	_, _, err := c.TransactionPrepare(context.Background(), &chainapi.TransactionPrepareRequest{
		TransactionHeaders: chainapi.TransactionHeaders{To: testContract},
		Method:             chainapi.MethodTokenMint,
		Params: []*fftypes.JSONAny{
			fftypes.JSONAnyPtr(`"0xshort"`),
			fftypes.JSONAnyPtr(`"1000"`),
		},
	})
	assert.Regexp(t, "AT01016", err)
}

func TestTransactionPrepareBadAmountParam(t *testing.T) {
	c := newTestConnector()

	_, _, err := c.TransactionPrepare(context.Background(), &chainapi.TransactionPrepareRequest{
		TransactionHeaders: chainapi.TransactionHeaders{To: testContract},
		Method:             chainapi.MethodTokenMint,
		Params: []*fftypes.JSONAny{
			fftypes.JSONAnyPtr(`"` + testRecipient + `"`),
			fftypes.JSONAnyPtr(`{"not":"a number"}`),
		},
	})
	assert.Regexp(t, "AT01017", err)
}

func TestTransactionPrepareBadStringParam(t *testing.T) {
	c := newTestConnector()

	_, _, err := c.TransactionPrepare(context.Background(), &chainapi.TransactionPrepareRequest{
		TransactionHeaders: chainapi.TransactionHeaders{To: testContract},
		Method:             chainapi.MethodRoleGrant,
		Params: []*fftypes.JSONAny{
			fftypes.JSONAnyPtr(`"` + testRecipient + `"`),
			fftypes.JSONAnyPtr(`12345`),
		},
	})
	assert.Regexp(t, "AT01045", err)
}

func TestTransactionPrepareBadStringArrayParam(t *testing.T) {
	c := newTestConnector()

	_, _, err := c.TransactionPrepare(context.Background(), &chainapi.TransactionPrepareRequest{
		TransactionHeaders: chainapi.TransactionHeaders{To: testContract},
		Method:             chainapi.MethodAccessKeyGrant,
		Params: []*fftypes.JSONAny{
			fftypes.JSONAnyPtr(`"` + testRecipient + `"`),
			fftypes.JSONAnyPtr(`"not-an-array"`),
			fftypes.JSONAnyPtr(`0`),
		},
	})
	assert.Regexp(t, "AT01045", err)
}
