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
	"fmt"
	"net"
	"strings"
	"testing"

	"github.com/hyperledger/firefly-common/pkg/config"
	"github.com/hyperledger/firefly-common/pkg/fftypes"
	"github.com/hyperledger/firefly-common/pkg/httpserver"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/plexus-chain/agent-toolserver/internal/atconfig"
	"github.com/plexus-chain/agent-toolserver/internal/metrics"
	"github.com/plexus-chain/agent-toolserver/internal/schedule"
	"github.com/plexus-chain/agent-toolserver/mocks/chainapimocks"
	"github.com/plexus-chain/agent-toolserver/pkg/batch"
	"github.com/plexus-chain/agent-toolserver/pkg/chainapi"
)

const testSigner = "0x7e3bb0Ef4fB2EE8EbEEa394ff6a4bbdF1f898b29"
const testRegistry = "0x49f072d837193bD1dCd57662E66bf9e45B1b462D"
const testToken = "0x1932c48b2bF8102Ba33B4A6B545C32236e342f34"

func testServerPort(t *testing.T) string {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	assert.NoError(t, err)
	port := strings.Split(ln.Addr().String(), ":")[1]
	ln.Close()
	return port
}

func initTestConfig(t *testing.T) {
	atconfig.Reset()
	metrics.Clear()
	t.Cleanup(metrics.Clear)
	config.Set(atconfig.MetricsEnabled, false)
	config.Set(atconfig.ContractsRegistry, testRegistry)
	batch.InitConfig(atconfig.BatchConfig)
	schedule.InitConfig(atconfig.SchedulesConfig)
	atconfig.BatchConfig.Set(batch.InterChunkDelay, "0")
	atconfig.BatchConfig.Set(batch.FixedGasPrice, "1000000000")
	atconfig.BatchConfig.SubSection(batch.GasOracleConfig).Set(batch.GasOracleMode, batch.GasOracleModeDisabled)

	atconfig.APIConfig.Set(httpserver.HTTPConfPort, testServerPort(t))
	atconfig.APIConfig.Set(httpserver.HTTPConfAddress, "127.0.0.1")
}

func newTestManager(t *testing.T) (string, *manager, *chainapimocks.API, func()) {
	initTestConfig(t)

	mc := &chainapimocks.API{}
	mc.On("SignerAddress", mock.Anything).Return(testSigner, nil)
	mm, err := NewManager(context.Background(), mc)
	assert.NoError(t, err)
	m := mm.(*manager)
	err = m.Start()
	assert.NoError(t, err)

	return fmt.Sprintf("http://127.0.0.1:%s", atconfig.APIConfig.GetString(httpserver.HTTPConfPort)),
		m, mc, m.Close
}

// mockTxSubmission wires the full submit path of the connector mock, with the
// transaction hash derived from the nonce key for easy assertions
func mockTxSubmission(mc *chainapimocks.API) {
	mc.On("NextNonceForKey", mock.Anything, mock.Anything).Return(
		func(ctx context.Context, req *chainapi.NextNonceForKeyRequest) *chainapi.NextNonceForKeyResponse {
			return &chainapi.NextNonceForKeyResponse{Nonce: fftypes.NewFFBigInt(int64(req.NonceKey))}
		}, chainapi.ErrorReason(""), nil)
	mc.On("TransactionPrepare", mock.Anything, mock.Anything).Return(&chainapi.TransactionPrepareResponse{
		Gas:             fftypes.NewFFBigInt(100000),
		TransactionData: "0xfeedbeef",
	}, chainapi.ErrorReason(""), nil)
	mc.On("TransactionSend", mock.Anything, mock.Anything).Return(
		func(ctx context.Context, req *chainapi.TransactionSendRequest) *chainapi.TransactionSendResponse {
			return &chainapi.TransactionSendResponse{TransactionHash: fmt.Sprintf("0x%064x", req.NonceKey)}
		}, chainapi.ErrorReason(""), nil)
}

func mockTxConfirmed(mc *chainapimocks.API) {
	mc.On("TransactionWait", mock.Anything, mock.Anything).Return(&chainapi.TransactionWaitResponse{
		Receipt: &chainapi.TransactionReceiptResponse{
			BlockNumber: fftypes.NewFFBigInt(12345),
			Success:     true,
		},
	}, chainapi.ErrorReason(""), nil)
}

func TestNewManagerMissingRegistryAddress(t *testing.T) {
	initTestConfig(t)
	config.Set(atconfig.ContractsRegistry, "")

	mc := &chainapimocks.API{}
	_, err := NewManager(context.Background(), mc)
	assert.Regexp(t, "AT01010.*contracts.registry", err)
}

func TestNewManagerBadHTTPConfig(t *testing.T) {
	initTestConfig(t)
	atconfig.APIConfig.Set(httpserver.HTTPConfAddress, "::::")

	mc := &chainapimocks.API{}
	mc.On("SignerAddress", mock.Anything).Return(testSigner, nil)
	_, err := NewManager(context.Background(), mc)
	assert.Regexp(t, "FF00151", err)
}

func TestNewManagerEngineInitFails(t *testing.T) {
	initTestConfig(t)
	atconfig.BatchConfig.Set(batch.FixedGasPrice, nil)
	atconfig.BatchConfig.SubSection(batch.GasOracleConfig).Set(batch.GasOracleMode, batch.GasOracleModeDisabled)

	mc := &chainapimocks.API{}
	mc.On("SignerAddress", mock.Anything).Return(testSigner, nil)
	_, err := NewManager(context.Background(), mc)
	assert.Regexp(t, "AT01030", err)
}

func TestManagerStartClose(t *testing.T) {
	_, m, _, done := newTestManager(t)
	done()
	assert.False(t, m.started)
}
