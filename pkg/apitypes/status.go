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

// LiveStatus reports that the process is up and serving requests
type LiveStatus struct {
	Up bool `json:"up"`
}

// ReadyStatus reports that the server has completed startup and holds a
// working chain connection
type ReadyStatus struct {
	Ready  bool   `json:"ready"`
	Signer string `json:"signer,omitempty"`
}
