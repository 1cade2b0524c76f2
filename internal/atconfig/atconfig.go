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

package atconfig

import (
	"github.com/hyperledger/firefly-common/pkg/config"
	"github.com/hyperledger/firefly-common/pkg/httpserver"
	"github.com/spf13/viper"
)

var ffc = config.AddRootKey

var (
	// APIDefaultRequestTimeout is the default server-side timeout for API calls (API requests also support a Request-Timeout header)
	APIDefaultRequestTimeout = ffc("api.defaultRequestTimeout")
	// APIMaxRequestTimeout the maximum timeout an API client can request via a Request-Timeout header
	APIMaxRequestTimeout = ffc("api.maxRequestTimeout")
	// MetricsEnabled enables the metrics monitoring server
	MetricsEnabled = ffc("metrics.enabled")
	// ContractsRegistry is the address of the on-chain registry contract that holds
	// roles, compliance policies, fee sponsorships and delegated access keys
	ContractsRegistry = ffc("contracts.registry")
)

var (
	// APIConfig is the HTTP server config for the tool API
	APIConfig config.Section
	// CorsConfig is the CORS configuration for the tool API
	CorsConfig config.Section
	// MonitoringConfig is the HTTP server config for the metrics/health endpoints
	MonitoringConfig config.Section
	// ConnectorConfig is the section passed to the chain connector
	ConnectorConfig config.Section
	// BatchConfig is the section for the parallel batch payment engine
	BatchConfig config.Section
	// SchedulesConfig is the section for the scheduled payment loop
	SchedulesConfig config.Section
)

func setDefaults() {
	viper.SetDefault(string(APIDefaultRequestTimeout), "30s")
	viper.SetDefault(string(APIMaxRequestTimeout), "10m")
	viper.SetDefault(string(MetricsEnabled), true)
}

// Reset initializes the config to its defaults. Called on startup, and by tests
// that need a clean config state.
func Reset() {
	config.RootConfigReset(setDefaults)

	APIConfig = config.RootSection("api")
	httpserver.InitHTTPConfig(APIConfig, 5200)

	CorsConfig = config.RootSection("cors")
	httpserver.InitCORSConfig(CorsConfig)

	MonitoringConfig = config.RootSection("monitoring")
	httpserver.InitHTTPConfig(MonitoringConfig, 6200)

	ConnectorConfig = config.RootSection("connector")
	BatchConfig = config.RootSection("batch")
	SchedulesConfig = config.RootSection("schedules")
}
