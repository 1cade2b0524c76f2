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
	"regexp"

	"github.com/hyperledger/firefly-common/pkg/i18n"
	"github.com/hyperledger/firefly-common/pkg/log"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/plexus-chain/agent-toolserver/internal/atmsgs"
)

var allowedNameStringRegex = `^[a-z_]+$`
var prefix = `pc_at_`

var engineMetrics = make(map[string]prometheus.Collector)

var supportedTypes = []string{"counter", "counterVec", "gauge", "histogram"}

type regInfo struct {
	Type       string
	Name       string
	HelpText   string
	LabelNames []string  // should only be provided for metrics types with vectors
	Buckets    []float64 // only applicable for histogram
}

func initEngineMetric(ctx context.Context, mr regInfo) {

	nameRegex := regexp.MustCompile(allowedNameStringRegex)

	isValidNameString := nameRegex.MatchString(mr.Name)
	if !isValidNameString {
		err := i18n.NewError(ctx, atmsgs.MsgMetricsInvalidName, mr.Name)
		log.L(ctx).Warnf("Failed to initialize metric %s due to error: %s", mr.Name, err.Error())
		return
	}

	for _, typeName := range supportedTypes {
		if _, ok := engineMetrics[prefix+mr.Name+"_"+typeName]; ok {
			err := i18n.NewError(ctx, atmsgs.MsgMetricsDuplicateName, mr.Name)
			log.L(ctx).Warnf("Failed to initialize metric %s due to error: %s", mr.Name, err.Error())
			return
		}
	}
	if mr.HelpText == "" {
		err := i18n.NewError(ctx, atmsgs.MsgMetricsHelpTextMissing)
		log.L(ctx).Warnf("Failed to initialize metric %s due to error: %s", mr.Name, err.Error())
		return
	}
	switch mr.Type {
	case "counter":
		engineMetrics[prefix+mr.Name+"_"+mr.Type] = prometheus.NewCounter(prometheus.CounterOpts{
			Name: mr.Name,
			Help: mr.HelpText,
		})
	case "counterVec":
		engineMetrics[prefix+mr.Name+"_"+mr.Type] = prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: mr.Name,
			Help: mr.HelpText,
		}, mr.LabelNames)
	case "gauge":
		engineMetrics[prefix+mr.Name+"_"+mr.Type] = prometheus.NewGauge(prometheus.GaugeOpts{
			Name: mr.Name,
			Help: mr.HelpText,
		})
	case "histogram":
		engineMetrics[prefix+mr.Name+"_"+mr.Type] = prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    mr.Name,
			Help:    mr.HelpText,
			Buckets: mr.Buckets,
		})
	}
}

func InitCounterMetric(ctx context.Context, metricName string, helpText string) {
	initEngineMetric(ctx, regInfo{
		Type:     "counter",
		Name:     metricName,
		HelpText: helpText,
	})
}

func InitCounterMetricWithLabels(ctx context.Context, metricName string, helpText string, labelNames []string) {
	initEngineMetric(ctx, regInfo{
		Type:       "counterVec",
		Name:       metricName,
		HelpText:   helpText,
		LabelNames: labelNames,
	})
}

func InitGaugeMetric(ctx context.Context, metricName string, helpText string) {
	initEngineMetric(ctx, regInfo{
		Type:     "gauge",
		Name:     metricName,
		HelpText: helpText,
	})
}

func InitHistogramMetric(ctx context.Context, metricName string, helpText string, buckets []float64) {
	initEngineMetric(ctx, regInfo{
		Type:     "histogram",
		Name:     metricName,
		HelpText: helpText,
		Buckets:  buckets,
	})
}

func IncCounterMetric(ctx context.Context, metricName string) {
	collector, ok := engineMetrics[prefix+metricName+"_counter"]
	if !ok {
		log.L(ctx).Warnf("Metric with name: '%s' and type: '%s' is not found", metricName, "counter")
	} else {
		collector.(prometheus.Counter).Inc()
	}
}

func IncCounterMetricWithLabels(ctx context.Context, metricName string, labels map[string]string) {
	collector, ok := engineMetrics[prefix+metricName+"_counterVec"]
	if !ok {
		log.L(ctx).Warnf("Metric with name: '%s' and type: '%s' is not found", metricName, "counterVec")
	} else {
		collector.(*prometheus.CounterVec).With(labels).Inc()
	}
}

func SetGaugeMetric(ctx context.Context, metricName string, number float64) {
	collector, ok := engineMetrics[prefix+metricName+"_gauge"]
	if !ok {
		log.L(ctx).Warnf("Metric with name: '%s' and type: '%s' is not found", metricName, "gauge")
	} else {
		collector.(prometheus.Gauge).Set(number)
	}
}

func ObserveHistogramMetric(ctx context.Context, metricName string, number float64) {
	collector, ok := engineMetrics[prefix+metricName+"_histogram"]
	if !ok {
		log.L(ctx).Warnf("Metric with name: '%s' and type: '%s' is not found", metricName, "histogram")
	} else {
		collector.(prometheus.Histogram).Observe(number)
	}
}

func RegisterEngineMetrics() {
	for _, collector := range engineMetrics {
		registry.MustRegister(collector)
	}
}
