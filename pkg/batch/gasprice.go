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
	"bytes"
	"context"
	"encoding/json"
	"time"

	"github.com/hyperledger/firefly-common/pkg/fftypes"
	"github.com/hyperledger/firefly-common/pkg/i18n"

	"github.com/plexus-chain/agent-toolserver/internal/atmsgs"
	"github.com/plexus-chain/agent-toolserver/pkg/chainapi"
)

// getGasPrice either uses a fixed gas price, or invokes a gas station API.
// Oracle results are cached for the configured query interval, so a chunk of
// 50 concurrent submissions costs at most one oracle query.
func (e *Engine) getGasPrice(ctx context.Context) (gasPrice *fftypes.JSONAny, err error) {
	e.gasOracleMux.Lock()
	defer e.gasOracleMux.Unlock()
	if e.gasOracleQueryValue != nil && e.gasOracleLastQueryTime != nil &&
		time.Since(*e.gasOracleLastQueryTime.Time()) < e.gasOracleQueryInterval {
		return e.gasOracleQueryValue, nil
	}
	switch e.gasOracleMode {
	case GasOracleModeRESTAPI:
		// Make a REST call against an endpoint, and extract a value/structure to pass to the connector
		gasPrice, err := e.getGasPriceAPI(ctx)
		if err != nil {
			return nil, err
		}
		e.gasOracleQueryValue = gasPrice
		e.gasOracleLastQueryTime = fftypes.Now()
		return e.gasOracleQueryValue, nil
	case GasOracleModeConnector:
		// Call the connector
		res, _, err := e.connector.GasPriceEstimate(ctx, &chainapi.GasPriceEstimateRequest{})
		if err != nil {
			return nil, err
		}
		e.gasOracleQueryValue = res.GasPrice
		e.gasOracleLastQueryTime = fftypes.Now()
		return e.gasOracleQueryValue, nil
	default:
		// Disabled - just a fixed value - note that the fixed value can be any JSON structure,
		// as interpreted by the connector. For example a simple value, or a post EIP-1559 structure.
		return e.fixedGasPrice, nil
	}
}

func (e *Engine) getGasPriceAPI(ctx context.Context) (gasPrice *fftypes.JSONAny, err error) {
	res, err := e.gasOracleClient.R().
		Execute(e.gasOracleMethod, "")
	if err != nil {
		return nil, i18n.WrapError(ctx, err, atmsgs.MsgErrorQueryingGasOracleAPI, -1, err.Error())
	}
	if res.IsError() {
		return nil, i18n.NewError(ctx, atmsgs.MsgErrorQueryingGasOracleAPI, res.StatusCode(), res.RawResponse)
	}
	// Parse the response body as JSON
	var data map[string]interface{}
	err = json.Unmarshal(res.Body(), &data)
	if err != nil {
		return nil, i18n.WrapError(ctx, err, atmsgs.MsgInvalidJSONGasObject)
	}
	buff := new(bytes.Buffer)
	err = e.gasOracleTemplate.Execute(buff, data)
	if err != nil {
		return nil, i18n.WrapError(ctx, err, atmsgs.MsgGasOracleResultError)
	}
	return fftypes.JSONAnyPtr(buff.String()), nil
}
