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

package toolserver

import (
	"context"

	"github.com/hyperledger/firefly-common/pkg/config"
	"github.com/hyperledger/firefly-common/pkg/httpserver"
	"github.com/hyperledger/firefly-common/pkg/i18n"

	"github.com/plexus-chain/agent-toolserver/internal/atconfig"
	"github.com/plexus-chain/agent-toolserver/internal/atmsgs"
	"github.com/plexus-chain/agent-toolserver/internal/metrics"
	"github.com/plexus-chain/agent-toolserver/internal/schedule"
	"github.com/plexus-chain/agent-toolserver/internal/ws"
	"github.com/plexus-chain/agent-toolserver/pkg/batch"
	"github.com/plexus-chain/agent-toolserver/pkg/chainapi"
)

type Manager interface {
	Start() error
	Close()
}

type manager struct {
	ctx       context.Context
	cancelCtx func()
	connector chainapi.API
	engine    *batch.Engine
	scheduler *schedule.Manager
	wsServer  ws.WebSocketServer

	metricsManager   metrics.Metrics
	apiServer        httpserver.HTTPServer
	monitoringServer httpserver.HTTPServer

	registryAddress string

	started              bool
	apiServerDone        chan error
	monitoringServerDone chan error
}

func NewManager(ctx context.Context, connector chainapi.API) (Manager, error) {
	var err error
	m := &manager{
		connector:            connector,
		apiServerDone:        make(chan error),
		monitoringServerDone: make(chan error),

		registryAddress: config.GetString(atconfig.ContractsRegistry),
	}
	m.ctx, m.cancelCtx = context.WithCancel(ctx)
	if m.registryAddress == "" {
		return nil, i18n.NewError(ctx, atmsgs.MsgConfigParamNotSet, atconfig.ContractsRegistry)
	}
	m.metricsManager = metrics.NewMetricsManager(ctx)
	m.wsServer = ws.NewWebSocketServer(m.ctx)
	m.engine, err = batch.NewEngine(ctx, atconfig.BatchConfig, connector, m.metricsManager)
	if err != nil {
		return nil, err
	}
	m.scheduler = schedule.NewManager(m.ctx, atconfig.SchedulesConfig, m.engine, m.metricsManager, m.wsServer)
	m.apiServer, err = httpserver.NewHTTPServer(ctx, "api", m.router(), m.apiServerDone, atconfig.APIConfig, atconfig.CorsConfig)
	if err != nil {
		return nil, err
	}
	if m.metricsManager.IsMetricsEnabled() {
		m.monitoringServer, err = httpserver.NewHTTPServer(ctx, "monitoring", m.monitoringRouter(), m.monitoringServerDone, atconfig.MonitoringConfig, atconfig.CorsConfig)
		if err != nil {
			return nil, err
		}
	}
	return m, nil
}

func (m *manager) Start() error {
	go m.runAPIServer()
	if m.monitoringServer != nil {
		go m.runMonitoringServer()
	}
	m.scheduler.Start()
	m.started = true
	return nil
}

func (m *manager) Close() {
	m.cancelCtx()
	if m.started {
		m.started = false
		m.scheduler.Close()
		m.wsServer.Close()
		<-m.apiServerDone
		if m.monitoringServer != nil {
			<-m.monitoringServerDone
		}
	}
}
