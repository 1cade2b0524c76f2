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

package schedule

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/hyperledger/firefly-common/pkg/config"
	"github.com/hyperledger/firefly-common/pkg/fftypes"
	"github.com/hyperledger/firefly-common/pkg/i18n"
	"github.com/hyperledger/firefly-common/pkg/log"

	"github.com/plexus-chain/agent-toolserver/internal/atmsgs"
	"github.com/plexus-chain/agent-toolserver/pkg/apitypes"
)

const metricsSchedulesActive = "schedules_active"
const metricsSchedulesActiveDescription = "Number of schedules currently waiting for their next run"

const metricsScheduleRunsTotal = "schedule_runs_total"
const metricsScheduleRunsTotalDescription = "Number of scheduled payment dispatches, grouped by outcome"

const metricsLabelNameOutcome = "outcome"

// PaymentRunner is the slice of the batch engine the scheduler needs
type PaymentRunner interface {
	RunBatch(ctx context.Context, req *apitypes.BatchPaymentRequest) (*apitypes.BatchPaymentResult, error)
}

// Broadcaster pushes schedule outcome events to WebSocket subscribers
type Broadcaster interface {
	Broadcast(ctx context.Context, payload interface{})
}

// Metrics is the subset of the monitoring layer the scheduler emits through
type Metrics interface {
	InitGaugeMetric(ctx context.Context, metricName string, helpText string)
	InitCounterMetricWithLabels(ctx context.Context, metricName string, helpText string, labelNames []string)
	SetGaugeMetric(ctx context.Context, metricName string, number float64)
	IncCounterMetricWithLabels(ctx context.Context, metricName string, labels map[string]string)
}

// Manager holds scheduled payments in memory and dispatches them through the
// batch engine when they fall due. There is no persistence: a restart drops
// all schedules, and callers are expected to re-register them.
type Manager struct {
	ctx           context.Context
	cancelCtx     context.CancelFunc
	runner        PaymentRunner
	metrics       Metrics
	broadcast     Broadcaster
	checkInterval time.Duration

	mux       sync.Mutex
	schedules map[string]*apitypes.Schedule

	done chan struct{}
}

func NewManager(bgCtx context.Context, conf config.Section, runner PaymentRunner, metrics Metrics, broadcast Broadcaster) *Manager {
	ctx, cancelCtx := context.WithCancel(bgCtx)
	m := &Manager{
		ctx:           ctx,
		cancelCtx:     cancelCtx,
		runner:        runner,
		metrics:       metrics,
		broadcast:     broadcast,
		checkInterval: conf.GetDuration(CheckInterval),
		schedules:     make(map[string]*apitypes.Schedule),
		done:          make(chan struct{}),
	}
	m.metrics.InitGaugeMetric(ctx, metricsSchedulesActive, metricsSchedulesActiveDescription)
	m.metrics.InitCounterMetricWithLabels(ctx, metricsScheduleRunsTotal, metricsScheduleRunsTotalDescription, []string{metricsLabelNameOutcome})
	return m
}

func (m *Manager) Start() {
	go m.loop()
}

func (m *Manager) Close() {
	m.cancelCtx()
	<-m.done
}

// CreateSchedule validates and registers a new scheduled payment. The interval
// is a Go duration string; empty means one-shot.
func (m *Manager) CreateSchedule(ctx context.Context, req *apitypes.ScheduleRequest) (*apitypes.Schedule, error) {
	if req.Payment == nil || req.Payment.Token == "" || req.Payment.Recipient == "" || req.Payment.Amount == nil {
		return nil, i18n.NewError(ctx, atmsgs.MsgMissingRequiredField, "payment")
	}
	if req.FirstRun == nil {
		return nil, i18n.NewError(ctx, atmsgs.MsgMissingRequiredField, "firstRun")
	}
	if req.FirstRun.Time().Before(time.Now()) {
		return nil, i18n.NewError(ctx, atmsgs.MsgScheduleInPast, req.FirstRun)
	}
	if req.Interval != "" {
		interval, err := time.ParseDuration(req.Interval)
		if err != nil || interval <= 0 {
			return nil, i18n.NewError(ctx, atmsgs.MsgScheduleInvalidInterval, req.Interval, err)
		}
	}

	s := &apitypes.Schedule{
		ID:       apitypes.NewULID(),
		Created:  fftypes.Now(),
		Payment:  req.Payment,
		NextRun:  req.FirstRun,
		Interval: req.Interval,
		MaxRuns:  req.MaxRuns,
		Status:   apitypes.ScheduleStatusActive,
	}
	m.mux.Lock()
	m.schedules[s.ID.String()] = s
	active := m.countActiveLocked()
	m.mux.Unlock()
	m.metrics.SetGaugeMetric(ctx, metricsSchedulesActive, float64(active))
	log.L(ctx).Infof("Created schedule %s: %s -> %s firstRun=%s interval=%s", s.ID, s.Payment.Token, s.Payment.Recipient, s.NextRun, s.Interval)
	return s, nil
}

func (m *Manager) GetSchedule(ctx context.Context, id string) (*apitypes.Schedule, error) {
	m.mux.Lock()
	defer m.mux.Unlock()
	s, ok := m.schedules[id]
	if !ok {
		return nil, i18n.NewError(ctx, atmsgs.MsgScheduleNotFound, id)
	}
	return s, nil
}

// ListSchedules returns all schedules. ULIDs sort lexically by creation time,
// so the list is in creation order.
func (m *Manager) ListSchedules(_ context.Context) []*apitypes.Schedule {
	m.mux.Lock()
	defer m.mux.Unlock()
	list := make([]*apitypes.Schedule, 0, len(m.schedules))
	for _, s := range m.schedules {
		list = append(list, s)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].ID.String() < list[j].ID.String() })
	return list
}

// CancelSchedule cancels and removes a schedule. A dispatch already in flight
// for this tick is not interrupted.
func (m *Manager) CancelSchedule(ctx context.Context, id string) (*apitypes.Schedule, error) {
	m.mux.Lock()
	s, ok := m.schedules[id]
	if ok {
		s.Status = apitypes.ScheduleStatusCancelled
		s.NextRun = nil
		delete(m.schedules, id)
	}
	active := m.countActiveLocked()
	m.mux.Unlock()
	if !ok {
		return nil, i18n.NewError(ctx, atmsgs.MsgScheduleNotFound, id)
	}
	m.metrics.SetGaugeMetric(ctx, metricsSchedulesActive, float64(active))
	log.L(ctx).Infof("Cancelled schedule %s", id)
	return s, nil
}

func (m *Manager) countActiveLocked() int {
	count := 0
	for _, s := range m.schedules {
		if s.Status == apitypes.ScheduleStatusActive {
			count++
		}
	}
	return count
}

func (m *Manager) loop() {
	defer close(m.done)
	ticker := time.NewTicker(m.checkInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			m.dispatchDue()
		case <-m.ctx.Done():
			log.L(m.ctx).Infof("Scheduler loop exiting")
			return
		}
	}
}

func (m *Manager) dispatchDue() {
	now := time.Now()
	m.mux.Lock()
	due := make([]*apitypes.Schedule, 0)
	for _, s := range m.schedules {
		if s.Status == apitypes.ScheduleStatusActive && s.NextRun != nil && !s.NextRun.Time().After(now) {
			due = append(due, s)
		}
	}
	m.mux.Unlock()

	for _, s := range due {
		m.dispatch(s)
	}
}

// dispatch runs one scheduled payment through the batch engine as a
// single-payment batch on the sequential key, then advances or completes the
// schedule
func (m *Manager) dispatch(s *apitypes.Schedule) {
	ctx := log.WithLogField(m.ctx, "schedule", s.ID.String())
	result, err := m.runner.RunBatch(ctx, &apitypes.BatchPaymentRequest{
		Payments:            []*apitypes.PaymentRequest{s.Payment},
		StartNonceKey:       0,
		WaitForConfirmation: true,
	})

	outcome := "success"
	m.mux.Lock()
	s.RunCount++
	switch {
	case err != nil:
		s.LastError = err.Error()
		outcome = "error"
	case !result.Success:
		s.LastError = result.Outcomes[0].Error
		outcome = "failed"
	default:
		s.LastError = ""
	}
	if s.Interval == "" || (s.MaxRuns > 0 && s.RunCount >= s.MaxRuns) {
		s.Status = apitypes.ScheduleStatusCompleted
		s.NextRun = nil
	} else {
		interval, _ := time.ParseDuration(s.Interval)
		next := fftypes.FFTime(s.NextRun.Time().Add(interval))
		s.NextRun = &next
	}
	active := m.countActiveLocked()
	m.mux.Unlock()

	m.metrics.IncCounterMetricWithLabels(ctx, metricsScheduleRunsTotal, map[string]string{metricsLabelNameOutcome: outcome})
	m.metrics.SetGaugeMetric(ctx, metricsSchedulesActive, float64(active))
	log.L(ctx).Infof("Dispatched schedule %s (run %d): %s", s.ID, s.RunCount, outcome)

	if m.broadcast != nil {
		m.broadcast.Broadcast(ctx, &apitypes.Event{
			Type:     apitypes.EventTypeScheduleRun,
			Time:     fftypes.Now(),
			Schedule: s,
		})
	}
}
