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

package batch

import (
	"net/http"

	"github.com/hyperledger/firefly-common/pkg/config"
	"github.com/hyperledger/firefly-common/pkg/ffresty"
)

const (
	ChunkSize        = "chunkSize"        // maximum number of payments submitted concurrently before the engine pauses
	InterChunkDelay  = "interChunkDelay"  // pause between chunks, protecting the RPC endpoint from request bursts
	KeyScanBatchSize = "keyScanBatchSize" // parallel window width when scanning the 256 nonce-key counters

	FixedGasPrice          = "fixedGasPrice" // when not using a gas oracle - raw JSON, so can be numeric 123, string "123", or object {"maxPriorityFeePerGas":123}
	GasOracleConfig        = "gasOracle"
	GasOracleMode          = "mode"
	GasOracleMethod        = "method"
	GasOracleTemplate      = "template"
	GasOracleQueryInterval = "queryInterval"
)

const (
	GasOracleModeDisabled  = "disabled"
	GasOracleModeRESTAPI   = "restapi"
	GasOracleModeConnector = "connector"

	defaultChunkSize        = 50
	defaultInterChunkDelay  = "500ms"
	defaultKeyScanBatchSize = 32

	defaultGasOracleQueryInterval = "5m"
	defaultGasOracleMethod        = http.MethodGet
	defaultGasOracleMode          = GasOracleModeConnector
)

// NonceKeyCount is the number of independent nonce counters each account holds
// on the chain. Key 0 is the standard sequential nonce.
const NonceKeyCount = 256

func InitConfig(conf config.Section) {
	conf.AddKnownKey(ChunkSize, defaultChunkSize)
	conf.AddKnownKey(InterChunkDelay, defaultInterChunkDelay)
	conf.AddKnownKey(KeyScanBatchSize, defaultKeyScanBatchSize)
	conf.AddKnownKey(FixedGasPrice)

	gasOracleConfig := conf.SubSection(GasOracleConfig)
	ffresty.InitConfig(gasOracleConfig)
	gasOracleConfig.AddKnownKey(GasOracleMethod, defaultGasOracleMethod)
	gasOracleConfig.AddKnownKey(GasOracleMode, defaultGasOracleMode)
	gasOracleConfig.AddKnownKey(GasOracleQueryInterval, defaultGasOracleQueryInterval)
	gasOracleConfig.AddKnownKey(GasOracleTemplate)
}
