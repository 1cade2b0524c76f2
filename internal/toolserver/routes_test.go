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
	"fmt"
	"testing"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/hyperledger/firefly-common/pkg/config"
	"github.com/hyperledger/firefly-common/pkg/fftypes"
	"github.com/hyperledger/firefly-common/pkg/httpserver"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/plexus-chain/agent-toolserver/internal/atconfig"
	"github.com/plexus-chain/agent-toolserver/mocks/chainapimocks"
	"github.com/plexus-chain/agent-toolserver/pkg/apitypes"
	"github.com/plexus-chain/agent-toolserver/pkg/chainapi"
)

func testBatchPayments(n int) []*apitypes.PaymentRequest {
	payments := make([]*apitypes.PaymentRequest, n)
	for i := range payments {
		payments[i] = &apitypes.PaymentRequest{
			Token:     testToken,
			Recipient: fmt.Sprintf("0x%040x", i+1),
			Amount:    fftypes.NewFFBigInt(int64(100 + i)),
		}
	}
	return payments
}

func TestPostBatchPaymentsFireAndForget(t *testing.T) {
	url, _, mc, done := newTestManager(t)
	defer done()
	mockTxSubmission(mc)

	var result apitypes.BatchPaymentResult
	res, err := resty.New().R().
		SetBody(&apitypes.BatchPaymentRequest{
			Payments:      testBatchPayments(3),
			StartNonceKey: 1,
		}).
		SetResult(&result).
		Post(url + "/batch-payments")
	assert.NoError(t, err)
	assert.Equal(t, 200, res.StatusCode())

	assert.True(t, result.Success)
	assert.Equal(t, 3, result.TotalPayments)
	assert.Equal(t, 3, result.PendingPayments)
	assert.Len(t, result.Outcomes, 3)
	for i, o := range result.Outcomes {
		assert.Equal(t, 1+i, o.NonceKey)
		assert.Equal(t, apitypes.PaymentStatusSubmitted, o.Status)
	}
	mc.AssertNotCalled(t, "TransactionWait", mock.Anything, mock.Anything)
}

func TestPostBatchPaymentsMissingAmount(t *testing.T) {
	url, _, mc, done := newTestManager(t)
	defer done()

	res, err := resty.New().R().
		SetBody(&apitypes.BatchPaymentRequest{
			Payments: []*apitypes.PaymentRequest{
				{Token: testToken, Recipient: "0x05A8f522cD8C1d771Aa1460E04eaF35f5d2a1026"},
			},
		}).
		Post(url + "/batch-payments")
	assert.NoError(t, err)
	assert.Equal(t, 400, res.StatusCode())
	assert.Regexp(t, "AT01031.*payments\\[0\\].amount", string(res.Body()))

	mc.AssertNotCalled(t, "NextNonceForKey", mock.Anything, mock.Anything)
}

func TestPostBatchPaymentsKeySpaceOverflow(t *testing.T) {
	url, _, _, done := newTestManager(t)
	defer done()

	res, err := resty.New().R().
		SetBody(&apitypes.BatchPaymentRequest{
			Payments:      testBatchPayments(20),
			StartNonceKey: 250,
		}).
		Post(url + "/batch-payments")
	assert.NoError(t, err)
	assert.Equal(t, 400, res.StatusCode())
	assert.Regexp(t, "AT01013", string(res.Body()))
}

func TestPostRewardsDistribute(t *testing.T) {
	url, _, mc, done := newTestManager(t)
	defer done()
	mockTxSubmission(mc)
	mockTxConfirmed(mc)

	var result apitypes.BatchPaymentResult
	res, err := resty.New().R().
		SetBody(&apitypes.RewardDistributionRequest{
			Token: testToken,
			Recipients: []*apitypes.RewardRecipient{
				{Recipient: "0x05A8f522cD8C1d771Aa1460E04eaF35f5d2a1026", Amount: fftypes.NewFFBigInt(10)},
				{Recipient: "0x49f072d837193bD1dCd57662E66bf9e45B1b462D", Amount: fftypes.NewFFBigInt(20)},
			},
			StartNonceKey:       100,
			WaitForConfirmation: true,
			Memo:                "july rewards",
		}).
		SetResult(&result).
		Post(url + "/rewards/distribute")
	assert.NoError(t, err)
	assert.Equal(t, 200, res.StatusCode())

	assert.True(t, result.Success)
	assert.Equal(t, 2, result.ConfirmedPayments)
	assert.Equal(t, 100, result.Outcomes[0].NonceKey)
	assert.Equal(t, 101, result.Outcomes[1].NonceKey)
}

func TestPostRewardsDistributeNoRecipients(t *testing.T) {
	url, _, _, done := newTestManager(t)
	defer done()

	res, err := resty.New().R().
		SetBody(&apitypes.RewardDistributionRequest{Token: testToken}).
		Post(url + "/rewards/distribute")
	assert.NoError(t, err)
	assert.Equal(t, 400, res.StatusCode())
	assert.Regexp(t, "AT01039", string(res.Body()))
}

func TestPostTokenMint(t *testing.T) {
	url, _, mc, done := newTestManager(t)
	defer done()
	mockTxSubmission(mc)
	mockTxConfirmed(mc)

	var result apitypes.TransactionResult
	res, err := resty.New().R().
		SetBody(&apitypes.TokenMintRequest{
			Token:     testToken,
			Recipient: "0x05A8f522cD8C1d771Aa1460E04eaF35f5d2a1026",
			Amount:    fftypes.NewFFBigInt(1000),
		}).
		SetResult(&result).
		Post(url + "/tokens/mint")
	assert.NoError(t, err)
	assert.Equal(t, 200, res.StatusCode())

	assert.Equal(t, apitypes.PaymentStatusConfirmed, result.Status)
	assert.NotEmpty(t, result.TransactionHash)
}

func TestPostTokenMintMissingToken(t *testing.T) {
	url, _, _, done := newTestManager(t)
	defer done()

	res, err := resty.New().R().
		SetBody(&apitypes.TokenMintRequest{
			Recipient: "0x05A8f522cD8C1d771Aa1460E04eaF35f5d2a1026",
			Amount:    fftypes.NewFFBigInt(1000),
		}).
		Post(url + "/tokens/mint")
	assert.NoError(t, err)
	assert.Equal(t, 400, res.StatusCode())
	assert.Regexp(t, "AT01031.*token", string(res.Body()))
}

func TestGetNonceKeys(t *testing.T) {
	url, _, mc, done := newTestManager(t)
	defer done()
	mc.On("NextNonceForKey", mock.Anything, mock.Anything).Return(
		func(ctx context.Context, req *chainapi.NextNonceForKeyRequest) *chainapi.NextNonceForKeyResponse {
			var counter int64
			if req.NonceKey == 7 {
				counter = 42
			}
			return &chainapi.NextNonceForKeyResponse{Nonce: fftypes.NewFFBigInt(counter)}
		}, chainapi.ErrorReason(""), nil)

	var result apitypes.NonceKeysResult
	res, err := resty.New().R().
		SetResult(&result).
		Get(url + "/nonce-keys")
	assert.NoError(t, err)
	assert.Equal(t, 200, res.StatusCode())

	// No account queried means the server's own signer
	assert.Equal(t, testSigner, result.Account)
	assert.Len(t, result.ActiveKeys, 1)
	assert.Equal(t, 7, result.ActiveKeys[0].NonceKey)
	assert.Equal(t, int64(42), result.ActiveKeys[0].Counter.Int64())
}

func TestGetNonceKeysBadAccount(t *testing.T) {
	url, _, _, done := newTestManager(t)
	defer done()

	res, err := resty.New().R().
		Get(url + "/nonce-keys?account=bananas")
	assert.NoError(t, err)
	assert.Equal(t, 400, res.StatusCode())
	assert.Regexp(t, "AT01016", string(res.Body()))
}

func TestScheduleLifecycle(t *testing.T) {
	url, _, _, done := newTestManager(t)
	defer done()
	client := resty.New()

	firstRun := fftypes.FFTime(time.Now().Add(time.Hour))
	var created apitypes.Schedule
	res, err := client.R().
		SetBody(&apitypes.ScheduleRequest{
			Payment: &apitypes.PaymentRequest{
				Token:     testToken,
				Recipient: "0x05A8f522cD8C1d771Aa1460E04eaF35f5d2a1026",
				Amount:    fftypes.NewFFBigInt(100),
			},
			FirstRun: &firstRun,
			Interval: "24h",
		}).
		SetResult(&created).
		Post(url + "/schedules")
	assert.NoError(t, err)
	assert.Equal(t, 201, res.StatusCode())
	assert.Equal(t, apitypes.ScheduleStatusActive, created.Status)

	var list []*apitypes.Schedule
	res, err = client.R().SetResult(&list).Get(url + "/schedules")
	assert.NoError(t, err)
	assert.Equal(t, 200, res.StatusCode())
	assert.Len(t, list, 1)

	var got apitypes.Schedule
	res, err = client.R().SetResult(&got).Get(url + "/schedules/" + created.ID.String())
	assert.NoError(t, err)
	assert.Equal(t, 200, res.StatusCode())
	assert.Equal(t, created.ID, got.ID)

	var cancelled apitypes.Schedule
	res, err = client.R().SetResult(&cancelled).Delete(url + "/schedules/" + created.ID.String())
	assert.NoError(t, err)
	assert.Equal(t, 200, res.StatusCode())
	assert.Equal(t, apitypes.ScheduleStatusCancelled, cancelled.Status)

	res, err = client.R().Get(url + "/schedules/" + created.ID.String())
	assert.NoError(t, err)
	assert.Equal(t, 404, res.StatusCode())
}

func TestGetTransactionReceipt(t *testing.T) {
	url, _, mc, done := newTestManager(t)
	defer done()
	mc.On("TransactionReceipt", mock.Anything, mock.MatchedBy(func(req *chainapi.TransactionReceiptRequest) bool {
		return req.TransactionHash == "0xaaaa"
	})).Return(&chainapi.TransactionReceiptResponse{
		BlockNumber: fftypes.NewFFBigInt(12345),
		Success:     true,
	}, chainapi.ErrorReason(""), nil)

	var receipt chainapi.TransactionReceiptResponse
	res, err := resty.New().R().
		SetResult(&receipt).
		Get(url + "/transactions/0xaaaa/receipt")
	assert.NoError(t, err)
	assert.Equal(t, 200, res.StatusCode())
	assert.True(t, receipt.Success)
	assert.Equal(t, int64(12345), receipt.BlockNumber.Int64())
}

func TestGetToolCatalog(t *testing.T) {
	url, _, _, done := newTestManager(t)
	defer done()

	var tools []*apitypes.ToolDescriptor
	res, err := resty.New().R().
		SetResult(&tools).
		Get(url + "/tools")
	assert.NoError(t, err)
	assert.Equal(t, 200, res.StatusCode())

	byName := make(map[string]*apitypes.ToolDescriptor)
	for _, tool := range tools {
		assert.NotEmpty(t, tool.Description, "tool %s has no description", tool.Name)
		byName[tool.Name] = tool
	}
	assert.Equal(t, "POST", byName["postBatchPayments"].Method)
	assert.Equal(t, "/batch-payments", byName["postBatchPayments"].Path)
	assert.Contains(t, byName, "getNonceKeys")
	assert.Contains(t, byName, "putPolicy")
	assert.Contains(t, byName, "postAccessKey")
}

func TestOpenAPIEndpoints(t *testing.T) {
	url, _, _, done := newTestManager(t)
	defer done()
	client := resty.New()

	res, err := client.R().Get(url + "/api/spec.yaml")
	assert.NoError(t, err)
	assert.Equal(t, 200, res.StatusCode())

	res, err = client.R().Get(url + "/api/spec.json")
	assert.NoError(t, err)
	assert.Equal(t, 200, res.StatusCode())

	res, err = client.R().Get(url + "/api")
	assert.NoError(t, err)
	assert.Equal(t, 200, res.StatusCode())
}

func TestNotFoundRoute(t *testing.T) {
	url, _, _, done := newTestManager(t)
	defer done()

	res, err := resty.New().R().Get(url + "/wrong")
	assert.NoError(t, err)
	assert.Equal(t, 404, res.StatusCode())
}

func TestMonitoringServer(t *testing.T) {
	initTestConfig(t)
	config.Set(atconfig.MetricsEnabled, true)
	atconfig.MonitoringConfig.Set(httpserver.HTTPConfPort, testServerPort(t))
	atconfig.MonitoringConfig.Set(httpserver.HTTPConfAddress, "127.0.0.1")
	monitoringURL := fmt.Sprintf("http://127.0.0.1:%s", atconfig.MonitoringConfig.GetString(httpserver.HTTPConfPort))

	mc := &chainapimocks.API{}
	mc.On("SignerAddress", mock.Anything).Return(testSigner, nil)
	mm, err := NewManager(context.Background(), mc)
	assert.NoError(t, err)
	m := mm.(*manager)
	assert.NoError(t, m.Start())
	defer m.Close()
	client := resty.New()

	var live apitypes.LiveStatus
	res, err := client.R().SetResult(&live).Get(monitoringURL + "/livez")
	assert.NoError(t, err)
	assert.Equal(t, 200, res.StatusCode())
	assert.True(t, live.Up)

	var ready apitypes.ReadyStatus
	res, err = client.R().SetResult(&ready).Get(monitoringURL + "/readyz")
	assert.NoError(t, err)
	assert.Equal(t, 200, res.StatusCode())
	assert.True(t, ready.Ready)
	assert.Equal(t, testSigner, ready.Signer)

	res, err = client.R().Get(monitoringURL + "/metrics")
	assert.NoError(t, err)
	assert.Equal(t, 200, res.StatusCode())
}

func TestReadyStatusBeforeStart(t *testing.T) {
	initTestConfig(t)

	mc := &chainapimocks.API{}
	mc.On("SignerAddress", mock.Anything).Return(testSigner, nil)
	mm, err := NewManager(context.Background(), mc)
	assert.NoError(t, err)
	m := mm.(*manager)

	_, err = m.getReadyStatus(context.Background())
	assert.Regexp(t, "AT01035", err)

	m.cancelCtx()
	_, err = m.getReadyStatus(context.Background())
	assert.Regexp(t, "AT01036", err)
}
