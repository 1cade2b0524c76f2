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
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/plexus-chain/agent-toolserver/internal/atconfig"
	"github.com/plexus-chain/agent-toolserver/pkg/chainapi"
)

func TestNewConnectorMissingURL(t *testing.T) {
	atconfig.Reset()
	InitConfig(atconfig.ConnectorConfig)

	_, err := NewConnector(context.Background(), atconfig.ConnectorConfig)
	assert.Regexp(t, "AT01010.*connector.url", err)
}

func TestNewConnectorMissingSigningKey(t *testing.T) {
	atconfig.Reset()
	InitConfig(atconfig.ConnectorConfig)
	atconfig.ConnectorConfig.Set(ConfigURL, "http://localhost:8545")

	_, err := NewConnector(context.Background(), atconfig.ConnectorConfig)
	assert.Regexp(t, "AT01010.*connector.signingKey", err)
}

func TestNewConnectorBadSigningKey(t *testing.T) {
	atconfig.Reset()
	InitConfig(atconfig.ConnectorConfig)
	atconfig.ConnectorConfig.Set(ConfigURL, "http://localhost:8545")
	atconfig.ConnectorConfig.Set(ConfigSigningKey, "0xnothex")

	_, err := NewConnector(context.Background(), atconfig.ConnectorConfig)
	assert.Regexp(t, "AT01015", err)
}

func TestNewConnectorBadURL(t *testing.T) {
	atconfig.Reset()
	InitConfig(atconfig.ConnectorConfig)
	atconfig.ConnectorConfig.Set(ConfigURL, ":::::")
	atconfig.ConnectorConfig.Set(ConfigSigningKey, "8d018b0866a578eb7a1afa517357564ff9ef6f26ad3d8ebdffbbaf75e1c17bb2")

	_, err := NewConnector(context.Background(), atconfig.ConnectorConfig)
	assert.Regexp(t, "AT01014", err)
}

func TestPackNonce(t *testing.T) {
	assert.Equal(t, uint64(42), packNonce(0, 42))
	assert.Equal(t, uint64(1)<<56|7, packNonce(1, 7))
	assert.Equal(t, uint64(255)<<56, packNonce(255, 0))
}

func TestMapError(t *testing.T) {
	assert.Equal(t, chainapi.ErrorReasonNonceTooLow, mapError(fmt.Errorf("Nonce too low")))
	assert.Equal(t, chainapi.ErrorReasonInsufficientFunds, mapError(fmt.Errorf("insufficient funds for gas * price + value")))
	assert.Equal(t, chainapi.ErrorKnownTransaction, mapError(fmt.Errorf("already known")))
	assert.Equal(t, chainapi.ErrorKnownTransaction, mapError(fmt.Errorf("known transaction: 0xaaaa")))
	assert.Equal(t, chainapi.ErrorReasonTransactionReverted, mapError(fmt.Errorf("execution reverted: Policy violation")))
	assert.Equal(t, chainapi.ErrorReasonNotFound, mapError(fmt.Errorf("transaction not found")))
	assert.Equal(t, chainapi.ErrorReason(""), mapError(fmt.Errorf("pop")))
}
