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
	"encoding/json"

	"github.com/hyperledger/firefly-common/pkg/fftypes"
	"github.com/hyperledger/firefly-common/pkg/i18n"

	"github.com/plexus-chain/agent-toolserver/internal/atmsgs"
	"github.com/plexus-chain/agent-toolserver/pkg/apitypes"
	"github.com/plexus-chain/agent-toolserver/pkg/chainapi"
)

// The registry tools all write to (or read from) the single configured account
// registry contract, on nonce key 0 via the engine's single-transaction path.

func (m *manager) grantRole(ctx context.Context, req *apitypes.RoleChangeRequest) (*apitypes.TransactionResult, error) {
	if err := validateRoleChange(ctx, req); err != nil {
		return nil, err
	}
	return m.engine.ExecuteTransaction(ctx, m.registryAddress, chainapi.MethodRoleGrant, []*fftypes.JSONAny{
		strParam(req.Account),
		strParam(req.Role),
	})
}

func (m *manager) revokeRole(ctx context.Context, req *apitypes.RoleChangeRequest) (*apitypes.TransactionResult, error) {
	if err := validateRoleChange(ctx, req); err != nil {
		return nil, err
	}
	return m.engine.ExecuteTransaction(ctx, m.registryAddress, chainapi.MethodRoleRevoke, []*fftypes.JSONAny{
		strParam(req.Account),
		strParam(req.Role),
	})
}

func validateRoleChange(ctx context.Context, req *apitypes.RoleChangeRequest) error {
	switch {
	case req.Account == "":
		return i18n.NewError(ctx, atmsgs.MsgMissingRequiredField, "account")
	case req.Role == "":
		return i18n.NewError(ctx, atmsgs.MsgMissingRequiredField, "role")
	}
	return nil
}

func (m *manager) getRoles(ctx context.Context, account string) (*apitypes.RolesResult, error) {
	if account == "" {
		account = m.engine.Signer()
	}
	outputs, err := m.engine.QueryContract(ctx, m.registryAddress, chainapi.MethodRolesOf, []*fftypes.JSONAny{
		strParam(account),
	})
	if err != nil {
		return nil, err
	}
	roles := []string{}
	if outputs != nil {
		if err := json.Unmarshal([]byte(outputs.String()), &roles); err != nil {
			return nil, i18n.WrapError(ctx, err, atmsgs.MsgQueryInvokeFailed, chainapi.MethodRolesOf, err.Error())
		}
	}
	return &apitypes.RolesResult{
		Account: account,
		Roles:   roles,
	}, nil
}

func (m *manager) setPolicy(ctx context.Context, policyName string, req *apitypes.PolicyUpdateRequest) (*apitypes.PolicyResult, error) {
	var doc map[string]interface{}
	if req.Parameters.IsNil() || json.Unmarshal([]byte(req.Parameters.String()), &doc) != nil {
		return nil, i18n.NewError(ctx, atmsgs.MsgInvalidPolicyDocument, "must be a JSON object")
	}
	res, err := m.engine.ExecuteTransaction(ctx, m.registryAddress, chainapi.MethodPolicySet, []*fftypes.JSONAny{
		strParam(policyName),
		strParam(req.Parameters.String()),
	})
	if err != nil {
		return nil, err
	}
	if res.Status == apitypes.PaymentStatusFailed {
		return nil, i18n.NewError(ctx, atmsgs.MsgTransactionFailed, res.Error)
	}
	return &apitypes.PolicyResult{
		PolicyName:      policyName,
		Parameters:      req.Parameters,
		TransactionHash: res.TransactionHash,
	}, nil
}

func (m *manager) getPolicy(ctx context.Context, policyName string) (*apitypes.PolicyResult, error) {
	outputs, err := m.engine.QueryContract(ctx, m.registryAddress, chainapi.MethodPolicyGet, []*fftypes.JSONAny{
		strParam(policyName),
	})
	if err != nil {
		return nil, err
	}
	result := &apitypes.PolicyResult{PolicyName: policyName}
	if outputs != nil {
		var stored string
		if err := json.Unmarshal([]byte(outputs.String()), &stored); err != nil {
			return nil, i18n.WrapError(ctx, err, atmsgs.MsgQueryInvokeFailed, chainapi.MethodPolicyGet, err.Error())
		}
		if stored != "" {
			result.Parameters = fftypes.JSONAnyPtr(stored)
		}
	}
	return result, nil
}

func (m *manager) setSponsorship(ctx context.Context, req *apitypes.SponsorshipRequest) (*apitypes.TransactionResult, error) {
	if req.SponsoredAddress == "" {
		return nil, i18n.NewError(ctx, atmsgs.MsgMissingRequiredField, "sponsoredAddress")
	}
	spendLimit := req.SpendLimit
	if spendLimit == nil {
		// Zero is the registry's "no limit" sentinel
		spendLimit = fftypes.NewFFBigInt(0)
	}
	return m.engine.ExecuteTransaction(ctx, m.registryAddress, chainapi.MethodSponsorshipSet, []*fftypes.JSONAny{
		strParam(req.SponsoredAddress),
		bigParam(spendLimit),
	})
}

func (m *manager) removeSponsorship(ctx context.Context, sponsoredAddress string) (*apitypes.TransactionResult, error) {
	return m.engine.ExecuteTransaction(ctx, m.registryAddress, chainapi.MethodSponsorshipRemove, []*fftypes.JSONAny{
		strParam(sponsoredAddress),
	})
}

func (m *manager) grantAccessKey(ctx context.Context, req *apitypes.AccessKeyRequest) (*apitypes.TransactionResult, error) {
	if req.KeyAddress == "" {
		return nil, i18n.NewError(ctx, atmsgs.MsgMissingRequiredField, "keyAddress")
	}
	if len(req.Permissions) == 0 {
		return nil, i18n.NewError(ctx, atmsgs.MsgAccessKeyNoPermissions)
	}
	expiry := uint64(0)
	if req.ExpiryTime != nil {
		expiry = uint64(req.ExpiryTime.Time().Unix())
	}
	return m.engine.ExecuteTransaction(ctx, m.registryAddress, chainapi.MethodAccessKeyGrant, []*fftypes.JSONAny{
		strParam(req.KeyAddress),
		strSliceParam(req.Permissions),
		uintParam(expiry),
	})
}

func (m *manager) revokeAccessKey(ctx context.Context, keyAddress string) (*apitypes.TransactionResult, error) {
	return m.engine.ExecuteTransaction(ctx, m.registryAddress, chainapi.MethodAccessKeyRevoke, []*fftypes.JSONAny{
		strParam(keyAddress),
	})
}
