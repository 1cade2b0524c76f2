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

package atmsgs

import (
	"net/http"

	"github.com/hyperledger/firefly-common/pkg/i18n"
	"golang.org/x/text/language"
)

// The prefix must be registered before the first FFE call below - package var
// initialization runs before init(), so this has to be a var too
var _ = func() bool {
	i18n.RegisterPrefix("AT01", "agent-toolserver")
	return true
}()

var ffe = func(key, translation string, statusHint ...int) i18n.ErrorMessageKey {
	return i18n.FFE(language.AmericanEnglish, key, translation, statusHint...)
}

//revive:disable
var (
	MsgConfigParamNotSet         = ffe("AT01010", "Configuration parameter '%s' must be set")
	MsgBatchNoPayments           = ffe("AT01011", "Batch contains no payments", http.StatusBadRequest)
	MsgNonceKeyOutOfRange        = ffe("AT01012", "Nonce key %d is out of range [0,255]", http.StatusBadRequest)
	MsgInsufficientNonceKeys     = ffe("AT01013", "Not enough free nonce keys for %d payments starting at key %d: maximum allowed is %d", http.StatusBadRequest)
	MsgConnectFailed             = ffe("AT01014", "Failed to connect to chain RPC endpoint: %s")
	MsgInvalidSigningKey         = ffe("AT01015", "Invalid signing key configuration: %s")
	MsgInvalidAddress            = ffe("AT01016", "Invalid address '%s'", http.StatusBadRequest)
	MsgInvalidAmount             = ffe("AT01017", "Invalid amount '%s'", http.StatusBadRequest)
	MsgUnknownMethod             = ffe("AT01018", "Method '%s' is not known to the connector", http.StatusBadRequest)
	MsgTransactionSendFailed     = ffe("AT01019", "Transaction submission failed: %s")
	MsgTransactionReverted       = ffe("AT01020", "Transaction %s reverted on-chain")
	MsgReceiptNotAvailable       = ffe("AT01021", "Receipt not available for transaction %s", http.StatusNotFound)
	MsgConfirmationTimeout       = ffe("AT01022", "Transaction %s was not confirmed after %.2fs")
	MsgQueryInvokeFailed         = ffe("AT01023", "Contract query '%s' failed: %s")
	MsgNonceReadFailed           = ffe("AT01024", "Failed to read nonce counter for key %d: %s")
	MsgMissingGOTemplate         = ffe("AT01025", "Missing template for processing response from gas oracle REST API")
	MsgBadGOTemplate             = ffe("AT01026", "Invalid gas oracle Go template: %s")
	MsgErrorQueryingGasOracleAPI = ffe("AT01027", "Error from gas oracle API [%d]: %s")
	MsgInvalidJSONGasObject      = ffe("AT01028", "Failed to parse response from gas oracle REST API as a JSON object")
	MsgGasOracleResultError      = ffe("AT01029", "Error processing result from gas oracle API via template")
	MsgNoGasConfigSetForEngine   = ffe("AT01030", "A fixed gas price must be set when not using a gas oracle")
	MsgMissingRequiredField      = ffe("AT01031", "Field '%s' is required for this tool", http.StatusBadRequest)
	MsgScheduleNotFound          = ffe("AT01032", "Schedule '%s' not found", http.StatusNotFound)
	MsgScheduleInvalidInterval   = ffe("AT01033", "Invalid schedule interval '%s': %s", http.StatusBadRequest)
	MsgScheduleInPast            = ffe("AT01034", "Schedule first run time %s is in the past", http.StatusBadRequest)
	MsgNotStarted                = ffe("AT01035", "Tool server has not fully started yet", http.StatusServiceUnavailable)
	MsgShuttingDown              = ffe("AT01036", "Tool server shutdown initiated", http.StatusInternalServerError)
	MsgAccessKeyNoPermissions    = ffe("AT01037", "Access key grant requires at least one permission", http.StatusBadRequest)
	MsgInvalidPolicyDocument     = ffe("AT01038", "Invalid policy parameter document: %s", http.StatusBadRequest)
	MsgRewardsNoRecipients       = ffe("AT01039", "Reward distribution requires at least one recipient", http.StatusBadRequest)
	MsgTransactionFailed         = ffe("AT01040", "Transaction execution failed: %s")
	MsgMetricsInvalidName        = ffe("AT01041", "Metric name '%s' is invalid, must match ^[a-z_]+$")
	MsgMetricsDuplicateName      = ffe("AT01042", "Metric with name '%s' is already registered")
	MsgMetricsHelpTextMissing    = ffe("AT01043", "Metric help text must be provided")
	MsgInvalidParamCount         = ffe("AT01044", "Method '%s' requires %d parameters, but %d were supplied", http.StatusBadRequest)
	MsgInvalidParam              = ffe("AT01045", "Parameter %d of method '%s' is invalid: %s", http.StatusBadRequest)
)
