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
	"testing"
	"time"

	"github.com/hyperledger/firefly-common/pkg/fftypes"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/plexus-chain/agent-toolserver/pkg/apitypes"
	"github.com/plexus-chain/agent-toolserver/pkg/chainapi"
)

const testAccount = "0x05A8f522cD8C1d771Aa1460E04eaF35f5d2a1026"

func TestGrantRole(t *testing.T) {
	_, m, mc, done := newTestManager(t)
	defer done()
	mockTxSubmission(mc)
	mockTxConfirmed(mc)

	result, err := m.grantRole(context.Background(), &apitypes.RoleChangeRequest{
		Account: testAccount,
		Role:    "minter",
	})
	assert.NoError(t, err)
	assert.Equal(t, apitypes.PaymentStatusConfirmed, result.Status)

	// Registry writes go to the configured registry contract
	mc.AssertCalled(t, "TransactionPrepare", mock.Anything, mock.MatchedBy(func(req *chainapi.TransactionPrepareRequest) bool {
		return req.To == testRegistry && req.Method == chainapi.MethodRoleGrant
	}))
}

func TestGrantRoleMissingFields(t *testing.T) {
	_, m, _, done := newTestManager(t)
	defer done()

	_, err := m.grantRole(context.Background(), &apitypes.RoleChangeRequest{Role: "minter"})
	assert.Regexp(t, "AT01031.*account", err)

	_, err = m.revokeRole(context.Background(), &apitypes.RoleChangeRequest{Account: testAccount})
	assert.Regexp(t, "AT01031.*role", err)
}

func TestGetRoles(t *testing.T) {
	_, m, mc, done := newTestManager(t)
	defer done()
	mc.On("QueryInvoke", mock.Anything, mock.MatchedBy(func(req *chainapi.QueryInvokeRequest) bool {
		return req.Method == chainapi.MethodRolesOf && req.To == testRegistry
	})).Return(&chainapi.QueryInvokeResponse{
		Outputs: fftypes.JSONAnyPtr(`["minter","compliance_officer"]`),
	}, chainapi.ErrorReason(""), nil)

	result, err := m.getRoles(context.Background(), testAccount)
	assert.NoError(t, err)
	assert.Equal(t, testAccount, result.Account)
	assert.Equal(t, []string{"minter", "compliance_officer"}, result.Roles)
}

func TestGetRolesDefaultsToSigner(t *testing.T) {
	_, m, mc, done := newTestManager(t)
	defer done()
	mc.On("QueryInvoke", mock.Anything, mock.Anything).Return(&chainapi.QueryInvokeResponse{
		Outputs: fftypes.JSONAnyPtr(`[]`),
	}, chainapi.ErrorReason(""), nil)

	result, err := m.getRoles(context.Background(), "")
	assert.NoError(t, err)
	assert.Equal(t, testSigner, result.Account)
	assert.Empty(t, result.Roles)
}

func TestSetPolicy(t *testing.T) {
	_, m, mc, done := newTestManager(t)
	defer done()
	mockTxSubmission(mc)
	mockTxConfirmed(mc)

	doc := fftypes.JSONAnyPtr(`{"maxDailyAmount":"1000000","requiresKYC":true}`)
	result, err := m.setPolicy(context.Background(), "transfer_limits", &apitypes.PolicyUpdateRequest{
		Parameters: doc,
	})
	assert.NoError(t, err)
	assert.Equal(t, "transfer_limits", result.PolicyName)
	assert.Equal(t, doc, result.Parameters)
	assert.NotEmpty(t, result.TransactionHash)
}

func TestSetPolicyRejectsNonObject(t *testing.T) {
	_, m, _, done := newTestManager(t)
	defer done()

	_, err := m.setPolicy(context.Background(), "transfer_limits", &apitypes.PolicyUpdateRequest{
		Parameters: fftypes.JSONAnyPtr(`"just a string"`),
	})
	assert.Regexp(t, "AT01038", err)

	_, err = m.setPolicy(context.Background(), "transfer_limits", &apitypes.PolicyUpdateRequest{})
	assert.Regexp(t, "AT01038", err)
}

func TestSetPolicyTransactionFails(t *testing.T) {
	_, m, mc, done := newTestManager(t)
	defer done()
	mockTxSubmission(mc)
	mc.On("TransactionWait", mock.Anything, mock.Anything).Return(&chainapi.TransactionWaitResponse{
		Receipt: &chainapi.TransactionReceiptResponse{Success: false},
	}, chainapi.ErrorReason(""), nil)

	_, err := m.setPolicy(context.Background(), "transfer_limits", &apitypes.PolicyUpdateRequest{
		Parameters: fftypes.JSONAnyPtr(`{"maxDailyAmount":"1000000"}`),
	})
	assert.Regexp(t, "AT01040", err)
}

func TestGetPolicy(t *testing.T) {
	_, m, mc, done := newTestManager(t)
	defer done()
	mc.On("QueryInvoke", mock.Anything, mock.MatchedBy(func(req *chainapi.QueryInvokeRequest) bool {
		return req.Method == chainapi.MethodPolicyGet
	})).Return(&chainapi.QueryInvokeResponse{
		Outputs: fftypes.JSONAnyPtr(`"{\"maxDailyAmount\":\"1000000\"}"`),
	}, chainapi.ErrorReason(""), nil)

	result, err := m.getPolicy(context.Background(), "transfer_limits")
	assert.NoError(t, err)
	assert.Equal(t, "transfer_limits", result.PolicyName)
	assert.Equal(t, `{"maxDailyAmount":"1000000"}`, result.Parameters.String())
}

func TestGetPolicyNotSet(t *testing.T) {
	_, m, mc, done := newTestManager(t)
	defer done()
	mc.On("QueryInvoke", mock.Anything, mock.Anything).Return(&chainapi.QueryInvokeResponse{
		Outputs: fftypes.JSONAnyPtr(`""`),
	}, chainapi.ErrorReason(""), nil)

	result, err := m.getPolicy(context.Background(), "unset_policy")
	assert.NoError(t, err)
	assert.Nil(t, result.Parameters)
}

func TestSetSponsorship(t *testing.T) {
	_, m, mc, done := newTestManager(t)
	defer done()
	mockTxSubmission(mc)
	mockTxConfirmed(mc)

	result, err := m.setSponsorship(context.Background(), &apitypes.SponsorshipRequest{
		SponsoredAddress: testAccount,
		SpendLimit:       fftypes.NewFFBigInt(500000),
	})
	assert.NoError(t, err)
	assert.Equal(t, apitypes.PaymentStatusConfirmed, result.Status)
}

func TestSetSponsorshipNoLimit(t *testing.T) {
	_, m, mc, done := newTestManager(t)
	defer done()
	mockTxSubmission(mc)
	mockTxConfirmed(mc)

	// No spend limit becomes the registry's zero sentinel
	_, err := m.setSponsorship(context.Background(), &apitypes.SponsorshipRequest{
		SponsoredAddress: testAccount,
	})
	assert.NoError(t, err)
	mc.AssertCalled(t, "TransactionPrepare", mock.Anything, mock.MatchedBy(func(req *chainapi.TransactionPrepareRequest) bool {
		return req.Method == chainapi.MethodSponsorshipSet && req.Params[1].String() == `"0"`
	}))
}

func TestSetSponsorshipMissingAddress(t *testing.T) {
	_, m, _, done := newTestManager(t)
	defer done()

	_, err := m.setSponsorship(context.Background(), &apitypes.SponsorshipRequest{})
	assert.Regexp(t, "AT01031.*sponsoredAddress", err)
}

func TestRemoveSponsorship(t *testing.T) {
	_, m, mc, done := newTestManager(t)
	defer done()
	mockTxSubmission(mc)
	mockTxConfirmed(mc)

	result, err := m.removeSponsorship(context.Background(), testAccount)
	assert.NoError(t, err)
	assert.Equal(t, apitypes.PaymentStatusConfirmed, result.Status)
}

func TestGrantAccessKey(t *testing.T) {
	_, m, mc, done := newTestManager(t)
	defer done()
	mockTxSubmission(mc)
	mockTxConfirmed(mc)

	expiry := fftypes.FFTime(time.Unix(1790000000, 0))
	result, err := m.grantAccessKey(context.Background(), &apitypes.AccessKeyRequest{
		KeyAddress:  testAccount,
		Permissions: []string{"payments:send", "tokens:mint"},
		ExpiryTime:  &expiry,
	})
	assert.NoError(t, err)
	assert.Equal(t, apitypes.PaymentStatusConfirmed, result.Status)

	mc.AssertCalled(t, "TransactionPrepare", mock.Anything, mock.MatchedBy(func(req *chainapi.TransactionPrepareRequest) bool {
		return req.Method == chainapi.MethodAccessKeyGrant && req.Params[2].String() == `"1790000000"`
	}))
}

func TestGrantAccessKeyValidation(t *testing.T) {
	_, m, _, done := newTestManager(t)
	defer done()

	_, err := m.grantAccessKey(context.Background(), &apitypes.AccessKeyRequest{
		Permissions: []string{"payments:send"},
	})
	assert.Regexp(t, "AT01031.*keyAddress", err)

	_, err = m.grantAccessKey(context.Background(), &apitypes.AccessKeyRequest{
		KeyAddress: testAccount,
	})
	assert.Regexp(t, "AT01037", err)
}

func TestRevokeAccessKey(t *testing.T) {
	_, m, mc, done := newTestManager(t)
	defer done()
	mockTxSubmission(mc)
	mockTxConfirmed(mc)

	result, err := m.revokeAccessKey(context.Background(), testAccount)
	assert.NoError(t, err)
	assert.Equal(t, apitypes.PaymentStatusConfirmed, result.Status)
}
