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
	"context"
	"crypto/ecdsa"
	"math/big"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/ethclient"
	gethrpc "github.com/ethereum/go-ethereum/rpc"
	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/hyperledger/firefly-common/pkg/config"
	"github.com/hyperledger/firefly-common/pkg/i18n"
	"github.com/hyperledger/firefly-common/pkg/log"

	"github.com/plexus-chain/agent-toolserver/internal/atmsgs"
	"github.com/plexus-chain/agent-toolserver/pkg/chainapi"
)

// Connector implements chainapi.API against an EVM compatible chain that
// carries the 256 nonce-key counters in the top byte of the 64-bit nonce.
// Keys 1-255 are read through the nonce registry precompile; key 0 is the
// standard transaction count.
type Connector struct {
	rpc       *gethrpc.Client
	client    *ethclient.Client
	chainID   *big.Int
	signerKey *ecdsa.PrivateKey
	signer    common.Address

	gasLimit               uint64
	receiptPollingInterval time.Duration
	confirmationTimeout    time.Duration
	receiptCache           *lru.Cache[string, *chainapi.TransactionReceiptResponse]

	methods map[string]*methodDef
}

func NewConnector(ctx context.Context, conf config.Section) (*Connector, error) {
	url := conf.GetString(ConfigURL)
	if url == "" {
		return nil, i18n.NewError(ctx, atmsgs.MsgConfigParamNotSet, "connector.url")
	}
	keyHex := conf.GetString(ConfigSigningKey)
	if keyHex == "" {
		return nil, i18n.NewError(ctx, atmsgs.MsgConfigParamNotSet, "connector.signingKey")
	}
	signerKey, err := crypto.HexToECDSA(strings.TrimPrefix(keyHex, "0x"))
	if err != nil {
		return nil, i18n.WrapError(ctx, err, atmsgs.MsgInvalidSigningKey, err.Error())
	}

	rpcClient, err := gethrpc.DialContext(ctx, url)
	if err != nil {
		return nil, i18n.WrapError(ctx, err, atmsgs.MsgConnectFailed, err.Error())
	}

	receiptCache, err := lru.New[string, *chainapi.TransactionReceiptResponse](conf.GetInt(ConfigReceiptCacheSize))
	if err != nil {
		rpcClient.Close()
		return nil, err
	}

	c := &Connector{
		rpc:       rpcClient,
		client:    ethclient.NewClient(rpcClient),
		chainID:   big.NewInt(conf.GetInt64(ConfigChainID)),
		signerKey: signerKey,
		signer:    crypto.PubkeyToAddress(signerKey.PublicKey),

		gasLimit:               uint64(conf.GetInt64(ConfigGasLimit)),
		receiptPollingInterval: conf.GetDuration(ConfigReceiptPollingInterval),
		confirmationTimeout:    conf.GetDuration(ConfigConfirmationTimeout),
		receiptCache:           receiptCache,

		methods: buildMethodTable(),
	}
	log.L(ctx).Infof("Connected to %s as %s (chainId=%d)", url, c.signer, c.chainID)
	return c, nil
}

func (c *Connector) SignerAddress(_ context.Context) (string, error) {
	return c.signer.Hex(), nil
}

// Close releases the RPC connection
func (c *Connector) Close() {
	c.rpc.Close()
}
