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

package ws

import (
	"context"
	"net/http"
	"sync"

	ws "github.com/gorilla/websocket"
	"github.com/hyperledger/firefly-common/pkg/log"
)

// WebSocketServer pushes batch and schedule outcome events to any connected
// agent clients. Delivery is fire-and-forget: a slow consumer has events
// dropped rather than backpressuring the engine.
type WebSocketServer interface {
	Handler(w http.ResponseWriter, r *http.Request)
	Broadcast(ctx context.Context, payload interface{})
	Close()
}

type webSocketServer struct {
	ctx         context.Context
	mux         sync.Mutex
	upgrader    *ws.Upgrader
	connections map[string]*webSocketConnection
}

func NewWebSocketServer(bgCtx context.Context) WebSocketServer {
	return &webSocketServer{
		ctx: bgCtx,
		upgrader: &ws.Upgrader{
			ReadBufferSize:  int(64 * 1024),
			WriteBufferSize: int(64 * 1024),
		},
		connections: make(map[string]*webSocketConnection),
	}
}

func (s *webSocketServer) Handler(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.L(s.ctx).Errorf("WebSocket upgrade failed: %s", err)
		return
	}
	c := newConnection(s.ctx, s, conn)
	s.mux.Lock()
	s.connections[c.id] = c
	s.mux.Unlock()
}

func (s *webSocketServer) Broadcast(ctx context.Context, payload interface{}) {
	s.mux.Lock()
	conns := make([]*webSocketConnection, 0, len(s.connections))
	for _, c := range s.connections {
		conns = append(conns, c)
	}
	s.mux.Unlock()

	for _, c := range conns {
		select {
		case c.broadcast <- payload:
		default:
			log.L(ctx).Warnf("WebSocket connection %s too slow, dropped event", c.id)
		}
	}
}

func (s *webSocketServer) connectionClosed(c *webSocketConnection) {
	s.mux.Lock()
	delete(s.connections, c.id)
	s.mux.Unlock()
}

func (s *webSocketServer) Close() {
	s.mux.Lock()
	conns := make([]*webSocketConnection, 0, len(s.connections))
	for _, c := range s.connections {
		conns = append(conns, c)
	}
	s.mux.Unlock()
	for _, c := range conns {
		c.close()
	}
}
