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

	"github.com/hyperledger/firefly-common/pkg/config"

	"github.com/plexus-chain/agent-toolserver/internal/atconfig"
)

type metricsManager struct {
	ctx            context.Context
	metricsEnabled bool
}

func NewMetricsManager(ctx context.Context) Metrics {
	return &metricsManager{
		ctx:            ctx,
		metricsEnabled: config.GetBool(atconfig.MetricsEnabled),
	}
}

func (mm *metricsManager) IsMetricsEnabled() bool {
	return mm.metricsEnabled
}

type Metrics interface {
	IsMetricsEnabled() bool

	// functions for the engine and scheduler to define and emit metrics
	EngineMetrics
}

// EngineMetrics are defined and emitted by the components that process
// transactions - the batch payment engine and the schedule dispatcher
type EngineMetrics interface {
	// functions for declaring new metrics
	InitCounterMetric(ctx context.Context, metricName string, helpText string)
	InitCounterMetricWithLabels(ctx context.Context, metricName string, helpText string, labelNames []string)
	InitGaugeMetric(ctx context.Context, metricName string, helpText string)
	InitHistogramMetric(ctx context.Context, metricName string, helpText string, buckets []float64)

	// functions for use of existing metrics
	IncCounterMetric(ctx context.Context, metricName string)
	IncCounterMetricWithLabels(ctx context.Context, metricName string, labels map[string]string)
	SetGaugeMetric(ctx context.Context, metricName string, number float64)
	ObserveHistogramMetric(ctx context.Context, metricName string, number float64)
}

func (mm *metricsManager) InitCounterMetric(ctx context.Context, metricName string, helpText string) {
	if mm.metricsEnabled {
		InitCounterMetric(ctx, metricName, helpText)
	}
}

func (mm *metricsManager) InitCounterMetricWithLabels(ctx context.Context, metricName string, helpText string, labelNames []string) {
	if mm.metricsEnabled {
		InitCounterMetricWithLabels(ctx, metricName, helpText, labelNames)
	}
}

func (mm *metricsManager) InitGaugeMetric(ctx context.Context, metricName string, helpText string) {
	if mm.metricsEnabled {
		InitGaugeMetric(ctx, metricName, helpText)
	}
}

func (mm *metricsManager) InitHistogramMetric(ctx context.Context, metricName string, helpText string, buckets []float64) {
	if mm.metricsEnabled {
		InitHistogramMetric(ctx, metricName, helpText, buckets)
	}
}

func (mm *metricsManager) IncCounterMetric(ctx context.Context, metricName string) {
	if mm.metricsEnabled {
		IncCounterMetric(ctx, metricName)
	}
}

func (mm *metricsManager) IncCounterMetricWithLabels(ctx context.Context, metricName string, labels map[string]string) {
	if mm.metricsEnabled {
		IncCounterMetricWithLabels(ctx, metricName, labels)
	}
}

func (mm *metricsManager) SetGaugeMetric(ctx context.Context, metricName string, number float64) {
	if mm.metricsEnabled {
		SetGaugeMetric(ctx, metricName, number)
	}
}

func (mm *metricsManager) ObserveHistogramMetric(ctx context.Context, metricName string, number float64) {
	if mm.metricsEnabled {
		ObserveHistogramMetric(ctx, metricName, number)
	}
}
