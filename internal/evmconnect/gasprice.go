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

	"github.com/hyperledger/firefly-common/pkg/fftypes"

	"github.com/plexus-chain/agent-toolserver/pkg/chainapi"
)

func (c *Connector) GasPriceEstimate(ctx context.Context, _ *chainapi.GasPriceEstimateRequest) (*chainapi.GasPriceEstimateResponse, chainapi.ErrorReason, error) {
	gasPrice, err := c.client.SuggestGasPrice(ctx)
	if err != nil {
		return nil, mapError(err), err
	}
	return &chainapi.GasPriceEstimateResponse{
		GasPrice: fftypes.JSONAnyPtr(`"` + gasPrice.String() + `"`),
	}, "", nil
}
