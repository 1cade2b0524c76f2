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
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/hyperledger/firefly-common/pkg/config"
	"github.com/hyperledger/firefly-common/pkg/ffresty"
	"github.com/hyperledger/firefly-common/pkg/fftypes"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/plexus-chain/agent-toolserver/internal/atconfig"
	"github.com/plexus-chain/agent-toolserver/internal/metrics"
	"github.com/plexus-chain/agent-toolserver/mocks/chainapimocks"
	"github.com/plexus-chain/agent-toolserver/pkg/chainapi"
)

func newGasOracleTestEngine(t *testing.T, mode string, setConf func(conf config.Section)) (*Engine, *chainapimocks.API, error) {
	atconfig.Reset()
	config.Set(atconfig.MetricsEnabled, false)
	InitConfig(atconfig.BatchConfig)
	atconfig.BatchConfig.SubSection(GasOracleConfig).Set(GasOracleMode, mode)
	if setConf != nil {
		setConf(atconfig.BatchConfig)
	}

	mc := &chainapimocks.API{}
	mc.On("SignerAddress", mock.Anything).Return(testSigner, nil)
	e, err := NewEngine(context.Background(), atconfig.BatchConfig, mc, metrics.NewMetricsManager(context.Background()))
	return e, mc, err
}

func TestGasPriceFixed(t *testing.T) {
	e, _, err := newGasOracleTestEngine(t, GasOracleModeDisabled, func(conf config.Section) {
		conf.Set(FixedGasPrice, `{
			"maxPriorityFeePerGas": 12345,
			"maxFeePerGas": 23456
		}`)
	})
	assert.NoError(t, err)

	gasPrice, err := e.getGasPrice(context.Background())
	assert.NoError(t, err)
	assert.NotNil(t, gasPrice.JSONObject().GetObject("maxPriorityFeePerGas"))
}

func TestNewEngineNoGasConfig(t *testing.T) {
	_, _, err := newGasOracleTestEngine(t, GasOracleModeDisabled, nil)
	assert.Regexp(t, "AT01030", err)
}

func TestGasPriceConnector(t *testing.T) {
	e, mc, err := newGasOracleTestEngine(t, GasOracleModeConnector, nil)
	assert.NoError(t, err)

	mc.On("GasPriceEstimate", mock.Anything, mock.Anything).Return(&chainapi.GasPriceEstimateResponse{
		GasPrice: fftypes.JSONAnyPtr(`"12345"`),
	}, chainapi.ErrorReason(""), nil).Once()

	gasPrice, err := e.getGasPrice(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, `"12345"`, gasPrice.String())

	// Second call within the query interval is served from the cache
	gasPrice, err = e.getGasPrice(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, `"12345"`, gasPrice.String())
	mc.AssertExpectations(t)
}

func TestGasOracleRESTAPI(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"safeLow": {"maxPriorityFee": 31.235, "maxFee": 31.24},
			"standard": {"maxPriorityFee": 33.59, "maxFee": 33.6},
			"fast": {"maxPriorityFee": 38.09, "maxFee": 38.1}
		}`))
	}))
	defer server.Close()

	e, _, err := newGasOracleTestEngine(t, GasOracleModeRESTAPI, func(conf config.Section) {
		gasOracleConfig := conf.SubSection(GasOracleConfig)
		gasOracleConfig.Set(ffresty.HTTPConfigURL, server.URL)
		gasOracleConfig.Set(GasOracleTemplate, `{
			"maxPriorityFeePerGas": {{ .standard.maxPriorityFee | mulf 1000000000.0 | int }},
			"maxFeePerGas": {{ .standard.maxFee | mulf 1000000000.0 | int }}
		}`)
	})
	assert.NoError(t, err)

	gasPrice, err := e.getGasPrice(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, int64(33590000000), gasPrice.JSONObject().GetInt64("maxPriorityFeePerGas"))
	assert.Equal(t, int64(33600000000), gasPrice.JSONObject().GetInt64("maxFeePerGas"))
}

func TestGasOracleRESTAPIErrorResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	e, _, err := newGasOracleTestEngine(t, GasOracleModeRESTAPI, func(conf config.Section) {
		gasOracleConfig := conf.SubSection(GasOracleConfig)
		gasOracleConfig.Set(ffresty.HTTPConfigURL, server.URL)
		gasOracleConfig.Set(GasOracleTemplate, `{{ .gasPrice }}`)
	})
	assert.NoError(t, err)

	_, err = e.getGasPrice(context.Background())
	assert.Regexp(t, "AT01027", err)
}

func TestGasOracleRESTAPINonJSON(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`not json`))
	}))
	defer server.Close()

	e, _, err := newGasOracleTestEngine(t, GasOracleModeRESTAPI, func(conf config.Section) {
		gasOracleConfig := conf.SubSection(GasOracleConfig)
		gasOracleConfig.Set(ffresty.HTTPConfigURL, server.URL)
		gasOracleConfig.Set(GasOracleTemplate, `{{ .gasPrice }}`)
	})
	assert.NoError(t, err)

	_, err = e.getGasPrice(context.Background())
	assert.Regexp(t, "AT01028", err)
}

func TestGasOracleRESTAPITemplateExecuteFail(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{}`))
	}))
	defer server.Close()

	e, _, err := newGasOracleTestEngine(t, GasOracleModeRESTAPI, func(conf config.Section) {
		gasOracleConfig := conf.SubSection(GasOracleConfig)
		gasOracleConfig.Set(ffresty.HTTPConfigURL, server.URL)
		gasOracleConfig.Set(GasOracleTemplate, `{{ fail "pop" }}`)
	})
	assert.NoError(t, err)

	_, err = e.getGasPrice(context.Background())
	assert.Regexp(t, "AT01029", err)
}

func TestGasOracleMissingTemplate(t *testing.T) {
	_, _, err := newGasOracleTestEngine(t, GasOracleModeRESTAPI, nil)
	assert.Regexp(t, "AT01025", err)
}

func TestGasOracleBadTemplate(t *testing.T) {
	_, _, err := newGasOracleTestEngine(t, GasOracleModeRESTAPI, func(conf config.Section) {
		conf.SubSection(GasOracleConfig).Set(GasOracleTemplate, "{{!!! not a template")
	})
	assert.Regexp(t, "AT01026", err)
}

func TestGasOracleConnectorError(t *testing.T) {
	e, mc, err := newGasOracleTestEngine(t, GasOracleModeConnector, nil)
	assert.NoError(t, err)

	mc.On("GasPriceEstimate", mock.Anything, mock.Anything).Return(nil, chainapi.ErrorReason(""), fmt.Errorf("pop"))

	_, err = e.getGasPrice(context.Background())
	assert.Regexp(t, "pop", err)
}
