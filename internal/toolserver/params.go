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
	"encoding/json"
	"strconv"

	"github.com/hyperledger/firefly-common/pkg/fftypes"
)

// Helpers to build the JSON parameter list handed to the connector for
// encoding. Numbers go as string-encoded base-10 integers, which the
// connector accepts for all its integer widths.

func strParam(s string) *fftypes.JSONAny {
	b, _ := json.Marshal(s)
	return fftypes.JSONAnyPtr(string(b))
}

func bigParam(v *fftypes.FFBigInt) *fftypes.JSONAny {
	return fftypes.JSONAnyPtr(`"` + v.Int().String() + `"`)
}

func uintParam(v uint64) *fftypes.JSONAny {
	return fftypes.JSONAnyPtr(`"` + strconv.FormatUint(v, 10) + `"`)
}

func strSliceParam(ss []string) *fftypes.JSONAny {
	b, _ := json.Marshal(ss)
	return fftypes.JSONAnyPtr(string(b))
}
