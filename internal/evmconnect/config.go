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

package evmconnect

import (
	"github.com/hyperledger/firefly-common/pkg/config"
)

const (
	ConfigURL                    = "url"
	ConfigChainID                = "chainId"
	ConfigSigningKey             = "signingKey"
	ConfigGasLimit               = "gasLimit"
	ConfigReceiptPollingInterval = "receiptPollingInterval"
	ConfigConfirmationTimeout    = "confirmationTimeout"
	ConfigReceiptCacheSize       = "receiptCacheSize"
)

const (
	defaultGasLimit               = 200000
	defaultReceiptPollingInterval = "1s"
	defaultConfirmationTimeout    = "30s"
	defaultReceiptCacheSize       = 250
)

func InitConfig(conf config.Section) {
	conf.AddKnownKey(ConfigURL)
	conf.AddKnownKey(ConfigChainID)
	conf.AddKnownKey(ConfigSigningKey)
	conf.AddKnownKey(ConfigGasLimit, defaultGasLimit)
	conf.AddKnownKey(ConfigReceiptPollingInterval, defaultReceiptPollingInterval)
	conf.AddKnownKey(ConfigConfirmationTimeout, defaultConfirmationTimeout)
	conf.AddKnownKey(ConfigReceiptCacheSize, defaultReceiptCacheSize)
}
