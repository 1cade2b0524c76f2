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

package metrics

import (
	"context"
	"testing"

	"github.com/hyperledger/firefly-common/pkg/config"
	"github.com/stretchr/testify/assert"

	"github.com/plexus-chain/agent-toolserver/internal/atconfig"
)

func newTestMetricsManager(t *testing.T, enabled bool) Metrics {
	Clear()
	atconfig.Reset()
	config.Set(atconfig.MetricsEnabled, enabled)
	t.Cleanup(Clear)
	return NewMetricsManager(context.Background())
}

func TestMetricsEnabledFlag(t *testing.T) {
	mm := newTestMetricsManager(t, true)
	assert.True(t, mm.IsMetricsEnabled())

	mm = newTestMetricsManager(t, false)
	assert.False(t, mm.IsMetricsEnabled())
}

func TestCounterMetric(t *testing.T) {
	mm := newTestMetricsManager(t, true)
	ctx := context.Background()

	mm.InitCounterMetric(ctx, "tx_process", "Transactions processed")
	assert.Contains(t, engineMetrics, "pc_at_tx_process_counter")

	mm.IncCounterMetric(ctx, "tx_process")
	mm.IncCounterMetric(ctx, "tx_not_init") // logged and ignored
}

func TestCounterMetricWithLabels(t *testing.T) {
	mm := newTestMetricsManager(t, true)
	ctx := context.Background()

	mm.InitCounterMetricWithLabels(ctx, "tx_process", "Transactions processed", []string{"status"})
	assert.Contains(t, engineMetrics, "pc_at_tx_process_counterVec")

	mm.IncCounterMetricWithLabels(ctx, "tx_process", map[string]string{"status": "confirmed"})
}

func TestGaugeMetric(t *testing.T) {
	mm := newTestMetricsManager(t, true)
	ctx := context.Background()

	mm.InitGaugeMetric(ctx, "tx_stalled", "Transactions stalled")
	assert.Contains(t, engineMetrics, "pc_at_tx_stalled_gauge")

	mm.SetGaugeMetric(ctx, "tx_stalled", 2)
	mm.SetGaugeMetric(ctx, "tx_not_init", 1)
}

func TestHistogramMetric(t *testing.T) {
	mm := newTestMetricsManager(t, true)
	ctx := context.Background()

	mm.InitHistogramMetric(ctx, "tx_timetaken", "Time taken to process a transaction", []float64{0.1, 1, 10})
	assert.Contains(t, engineMetrics, "pc_at_tx_timetaken_histogram")

	mm.ObserveHistogramMetric(ctx, "tx_timetaken", 0.5)
}

func TestInitMetricBadName(t *testing.T) {
	mm := newTestMetricsManager(t, true)

	mm.InitCounterMetric(context.Background(), "Bad-Name!", "help")
	assert.Empty(t, engineMetrics)
}

func TestInitMetricDuplicateName(t *testing.T) {
	mm := newTestMetricsManager(t, true)
	ctx := context.Background()

	mm.InitCounterMetric(ctx, "tx_process", "help")
	mm.InitGaugeMetric(ctx, "tx_process", "help")
	assert.Len(t, engineMetrics, 1)
}

func TestInitMetricMissingHelpText(t *testing.T) {
	mm := newTestMetricsManager(t, true)

	mm.InitCounterMetric(context.Background(), "tx_process", "")
	assert.Empty(t, engineMetrics)
}

func TestMetricsDisabledNoOp(t *testing.T) {
	mm := newTestMetricsManager(t, false)
	ctx := context.Background()

	mm.InitCounterMetric(ctx, "tx_process", "help")
	assert.Empty(t, engineMetrics)

	// Emitting against a disabled manager is silently dropped
	mm.IncCounterMetric(ctx, "tx_process")
}

func TestRegistrySingleton(t *testing.T) {
	newTestMetricsManager(t, true)
	assert.Same(t, Registry(), Registry())
}

func TestAPIServerInstrumentationSingleton(t *testing.T) {
	newTestMetricsManager(t, true)
	assert.Same(t, GetAPIServerInstrumentation(), GetAPIServerInstrumentation())
}
