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

package atmsgs

import (
	"github.com/hyperledger/firefly-common/pkg/i18n"
	"golang.org/x/text/language"
)

var ffc = func(key, translation, fieldType string) i18n.ConfigMessageKey {
	return i18n.FFC(language.AmericanEnglish, key, translation, fieldType)
}

//revive:disable
var (
	ConfigAPIDefaultRequestTimeout = ffc("config.api.defaultRequestTimeout", "Default server-side request timeout for API calls", i18n.TimeDurationType)
	ConfigAPIMaxRequestTimeout     = ffc("config.api.maxRequestTimeout", "Maximum server-side request timeout a caller can request with a Request-Timeout header", i18n.TimeDurationType)

	ConfigConnectorURL                    = ffc("config.connector.url", "JSON/RPC endpoint of the chain node", i18n.StringType)
	ConfigConnectorChainID                = ffc("config.connector.chainId", "Chain ID used when signing transactions", i18n.IntType)
	ConfigConnectorSigningKey             = ffc("config.connector.signingKey", "Hex-encoded private key for the tool server's signing account", i18n.StringType)
	ConfigConnectorGasLimit               = ffc("config.connector.gasLimit", "Gas limit applied to transactions submitted by the tool server", i18n.IntType)
	ConfigConnectorReceiptPollingInterval = ffc("config.connector.receiptPollingInterval", "Interval between receipt polls while waiting for a transaction to be mined", i18n.TimeDurationType)
	ConfigConnectorConfirmationTimeout    = ffc("config.connector.confirmationTimeout", "Maximum time to wait for a submitted transaction to be mined before reporting a timeout", i18n.TimeDurationType)
	ConfigConnectorReceiptCacheSize       = ffc("config.connector.receiptCacheSize", "Maximum number of mined receipts to keep in the in-process cache", i18n.IntType)

	ConfigBatchChunkSize            = ffc("config.batch.chunkSize", "Maximum number of payments submitted concurrently before the engine pauses between chunks", i18n.IntType)
	ConfigBatchInterChunkDelay      = ffc("config.batch.interChunkDelay", "Delay between successive chunks of a batch, protecting the RPC endpoint from request bursts", i18n.TimeDurationType)
	ConfigBatchKeyScanBatchSize     = ffc("config.batch.keyScanBatchSize", "Number of nonce-key counters to read in parallel when scanning the key space", i18n.IntType)
	ConfigBatchFixedGasPrice        = ffc("config.batch.fixedGasPrice", "A fixed gasPrice value/structure to pass to the connector", "Raw JSON")
	ConfigBatchGasOracleMode        = ffc("config.batch.gasOracle.mode", "The gas oracle mode", "'connector', 'restapi', or 'fixed'")
	ConfigBatchGasOracleMethod      = ffc("config.batch.gasOracle.method", "The HTTP Method to use when invoking the gas oracle REST API", i18n.StringType)
	ConfigBatchGasOracleTemplate    = ffc("config.batch.gasOracle.template", "REST API gas oracle: a Go template to execute against the result from the gas oracle, to create the JSON gas price passed to the connector", i18n.GoTemplateType)
	ConfigBatchGasOracleQueryInterval = ffc("config.batch.gasOracle.queryInterval", "The minimum interval between queries to the gas oracle", i18n.TimeDurationType)

	ConfigSchedulesCheckInterval = ffc("config.schedules.checkInterval", "Interval at which the scheduler loop evaluates due scheduled payments", i18n.TimeDurationType)

	ConfigMetricsEnabled = ffc("config.metrics.enabled", "Enables the metrics monitoring server", i18n.BooleanType)

	ConfigContractsRegistry = ffc("config.contracts.registry", "Address of the on-chain registry contract for roles, policies, sponsorships and access keys", i18n.StringType)
)
