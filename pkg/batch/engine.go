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
	"sync"
	"text/template"
	"time"

	"github.com/Masterminds/sprig/v3"
	"github.com/go-resty/resty/v2"
	"github.com/hyperledger/firefly-common/pkg/config"
	"github.com/hyperledger/firefly-common/pkg/ffresty"
	"github.com/hyperledger/firefly-common/pkg/fftypes"
	"github.com/hyperledger/firefly-common/pkg/i18n"
	"github.com/hyperledger/firefly-common/pkg/log"

	"github.com/plexus-chain/agent-toolserver/internal/atmsgs"
	"github.com/plexus-chain/agent-toolserver/pkg/apitypes"
	"github.com/plexus-chain/agent-toolserver/pkg/chainapi"
)

const metricsPaymentBatchesTotal = "payment_batches_total"
const metricsPaymentBatchesTotalDescription = "Number of payment batches processed"

const metricsPaymentsTotal = "payments_total"
const metricsPaymentsTotalDescription = "Number of individual payments processed, grouped by final status"

const metricsBatchDuration = "payment_batch_duration_seconds"
const metricsBatchDurationDescription = "End to end duration of payment batch processing"

const metricsTransactionsTotal = "tool_transactions_total"
const metricsTransactionsTotalDescription = "Number of single tool transactions submitted, grouped by method"

const metricsLabelNameStatus = "status"
const metricsLabelNameMethod = "method"

// Metrics are the hooks the engine emits through, implemented by the
// monitoring layer
type Metrics interface {
	InitCounterMetric(ctx context.Context, metricName string, helpText string)
	InitCounterMetricWithLabels(ctx context.Context, metricName string, helpText string, labelNames []string)
	InitHistogramMetric(ctx context.Context, metricName string, helpText string, buckets []float64)
	IncCounterMetric(ctx context.Context, metricName string)
	IncCounterMetricWithLabels(ctx context.Context, metricName string, labels map[string]string)
	ObserveHistogramMetric(ctx context.Context, metricName string, number float64)
}

// Engine executes payment batches in parallel across the 256 per-account
// nonce-key counters of the chain. Each payment in a batch is assigned its own
// key, so the transactions are independent in the pool and mine in any order.
//
// The engine holds no local nonce state at all. Every chunk performs fresh
// chain reads for the keys it is about to use, so a restart (or a competing
// submitter on the same account) never leaves it working from stale counters.
type Engine struct {
	connector chainapi.API
	metrics   Metrics
	signer    string

	chunkSize        int
	interChunkDelay  time.Duration
	keyScanBatchSize int

	fixedGasPrice          *fftypes.JSONAny
	gasOracleMode          string
	gasOracleClient        *resty.Client
	gasOracleMethod        string
	gasOracleTemplate      *template.Template
	gasOracleQueryInterval time.Duration
	gasOracleMux           sync.Mutex
	gasOracleQueryValue    *fftypes.JSONAny
	gasOracleLastQueryTime *fftypes.FFTime
}

func NewEngine(ctx context.Context, conf config.Section, connector chainapi.API, metrics Metrics) (*Engine, error) {
	gasOracleConfig := conf.SubSection(GasOracleConfig)
	e := &Engine{
		connector: connector,
		metrics:   metrics,

		chunkSize:        conf.GetInt(ChunkSize),
		interChunkDelay:  conf.GetDuration(InterChunkDelay),
		keyScanBatchSize: conf.GetInt(KeyScanBatchSize),

		fixedGasPrice:          fftypes.JSONAnyPtr(conf.GetString(FixedGasPrice)),
		gasOracleMethod:        gasOracleConfig.GetString(GasOracleMethod),
		gasOracleQueryInterval: gasOracleConfig.GetDuration(GasOracleQueryInterval),
		gasOracleMode:          gasOracleConfig.GetString(GasOracleMode),
	}

	signer, err := connector.SignerAddress(ctx)
	if err != nil {
		return nil, err
	}
	e.signer = signer

	switch e.gasOracleMode {
	case GasOracleModeConnector:
		// No initialization required
	case GasOracleModeRESTAPI:
		e.gasOracleClient, err = ffresty.New(ctx, gasOracleConfig)
		if err != nil {
			return nil, err
		}
		templateString := gasOracleConfig.GetString(GasOracleTemplate)
		if templateString == "" {
			return nil, i18n.NewError(ctx, atmsgs.MsgMissingGOTemplate)
		}
		template, err := template.New("").Funcs(sprig.FuncMap()).Parse(templateString)
		if err != nil {
			return nil, i18n.NewError(ctx, atmsgs.MsgBadGOTemplate, err)
		}
		e.gasOracleTemplate = template
	default:
		if e.fixedGasPrice.IsNil() {
			return nil, i18n.NewError(ctx, atmsgs.MsgNoGasConfigSetForEngine)
		}
	}

	e.initMetrics(ctx)
	return e, nil
}

func (e *Engine) initMetrics(ctx context.Context) {
	e.metrics.InitCounterMetric(ctx, metricsPaymentBatchesTotal, metricsPaymentBatchesTotalDescription)
	e.metrics.InitCounterMetricWithLabels(ctx, metricsPaymentsTotal, metricsPaymentsTotalDescription, []string{metricsLabelNameStatus})
	e.metrics.InitHistogramMetric(ctx, metricsBatchDuration, metricsBatchDurationDescription, []float64{} /* fallback to default buckets */)
	e.metrics.InitCounterMetricWithLabels(ctx, metricsTransactionsTotal, metricsTransactionsTotalDescription, []string{metricsLabelNameMethod})
}

// Signer is the address of the account all payments are submitted from
func (e *Engine) Signer() string {
	return e.signer
}

// RunBatch validates and executes a payment batch. Payments are processed in
// chunks of chunkSize, each payment on its own nonce key counting up from
// StartNonceKey, so positions in Outcomes line up with positions in Payments.
//
// Only validation failures return an error. Once submission starts, every
// per-payment failure is isolated into its outcome and the batch keeps going.
func (e *Engine) RunBatch(ctx context.Context, req *apitypes.BatchPaymentRequest) (*apitypes.BatchPaymentResult, error) {
	startTime := time.Now()

	if len(req.Payments) == 0 {
		return nil, i18n.NewError(ctx, atmsgs.MsgBatchNoPayments)
	}
	if req.StartNonceKey < 0 || req.StartNonceKey >= NonceKeyCount {
		return nil, i18n.NewError(ctx, atmsgs.MsgNonceKeyOutOfRange, req.StartNonceKey)
	}
	if req.StartNonceKey+len(req.Payments) > NonceKeyCount {
		return nil, i18n.NewError(ctx, atmsgs.MsgInsufficientNonceKeys, len(req.Payments), req.StartNonceKey, NonceKeyCount-req.StartNonceKey)
	}

	chunks := planChunks(req.Payments, req.StartNonceKey, e.chunkSize)
	log.L(ctx).Infof("Processing batch of %d payments in %d chunks from nonce key %d (waitForConfirmation=%t)",
		len(req.Payments), len(chunks), req.StartNonceKey, req.WaitForConfirmation)

	outcomes := make([]*apitypes.PaymentOutcome, len(req.Payments))
	chunksProcessed := 0
	for i, c := range chunks {
		if i > 0 && e.interChunkDelay > 0 {
			select {
			case <-time.After(e.interChunkDelay):
			case <-ctx.Done():
			}
		}
		if ctx.Err() != nil {
			failUnprocessed(ctx, chunks[i:], outcomes)
			break
		}
		e.processChunk(ctx, c, req.WaitForConfirmation, outcomes)
		chunksProcessed++
	}

	result := &apitypes.BatchPaymentResult{
		TotalPayments:   len(req.Payments),
		ChunksProcessed: chunksProcessed,
		Outcomes:        outcomes,
		Elapsed:         fftypes.FFDuration(time.Since(startTime)),
	}
	for _, o := range outcomes {
		switch o.Status {
		case apitypes.PaymentStatusConfirmed:
			result.ConfirmedPayments++
		case apitypes.PaymentStatusFailed:
			result.FailedPayments++
		default:
			result.PendingPayments++
		}
		e.metrics.IncCounterMetricWithLabels(ctx, metricsPaymentsTotal, map[string]string{metricsLabelNameStatus: string(o.Status)})
	}
	result.Success = result.FailedPayments == 0

	e.metrics.IncCounterMetric(ctx, metricsPaymentBatchesTotal)
	e.metrics.ObserveHistogramMetric(ctx, metricsBatchDuration, time.Since(startTime).Seconds())
	log.L(ctx).Infof("Batch complete: success=%t confirmed=%d failed=%d pending=%d elapsed=%.2fs",
		result.Success, result.ConfirmedPayments, result.FailedPayments, result.PendingPayments, time.Since(startTime).Seconds())
	return result, nil
}

// failUnprocessed fills in Failed outcomes for payments in chunks the engine
// never reached, when the context was cancelled mid-batch
func failUnprocessed(ctx context.Context, chunks []*chunk, outcomes []*apitypes.PaymentOutcome) {
	for _, c := range chunks {
		for i := range c.payments {
			if outcomes[c.start+i] == nil {
				outcomes[c.start+i] = &apitypes.PaymentOutcome{
					NonceKey: c.startKey + i,
					Status:   apitypes.PaymentStatusFailed,
					Error:    ctx.Err().Error(),
				}
			}
		}
	}
}
