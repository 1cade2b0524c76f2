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

package apitypes

import (
	"github.com/hyperledger/firefly-common/pkg/fftypes"
)

// ScheduleStatus is the lifecycle state of a scheduled payment
type ScheduleStatus string

const (
	// ScheduleStatusActive the schedule is waiting for its next run time
	ScheduleStatusActive ScheduleStatus = "Active"
	// ScheduleStatusCompleted a one-shot schedule that has run
	ScheduleStatusCompleted ScheduleStatus = "Completed"
	// ScheduleStatusCancelled the schedule was cancelled before (or between) runs
	ScheduleStatusCancelled ScheduleStatus = "Cancelled"
)

// ScheduleRequest creates a scheduled payment. Interval empty means one-shot.
// Schedules are held in memory only, and are lost on restart.
type ScheduleRequest struct {
	Payment   *PaymentRequest `json:"payment"`
	FirstRun  *fftypes.FFTime `json:"firstRun"`
	Interval  string          `json:"interval,omitempty"`
	MaxRuns   int             `json:"maxRuns,omitempty"`
}

// Schedule is the stored state of a scheduled payment
type Schedule struct {
	ID        *fftypes.UUID   `json:"id"`
	Created   *fftypes.FFTime `json:"created"`
	Payment   *PaymentRequest `json:"payment"`
	NextRun   *fftypes.FFTime `json:"nextRun,omitempty"`
	Interval  string          `json:"interval,omitempty"`
	MaxRuns   int             `json:"maxRuns,omitempty"`
	RunCount  int             `json:"runCount"`
	Status    ScheduleStatus  `json:"status"`
	LastError string          `json:"lastError,omitempty"`
}
