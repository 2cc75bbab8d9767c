// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package api

import (
	"context"
	"fmt"

	"github.com/LAVASoftWorks/vkct-core/api"
	"github.com/LAVASoftWorks/vkct-core/ids"
	"github.com/LAVASoftWorks/vkct-core/utils/formatting"
	"github.com/LAVASoftWorks/vkct-core/utils/rpc"
	"github.com/LAVASoftWorks/vkct-core/vms/components/ledger"
	"github.com/LAVASoftWorks/vkct-core/vms/registryvm/state"
	"github.com/LAVASoftWorks/vkct-core/vms/registryvm/txs"

	cjson "github.com/LAVASoftWorks/vkct-core/utils/json"
)

var _ Client = (*client)(nil)

// Client for interacting with the registry API
type Client interface {
	// IssueTx issues a signed transaction and returns its ID once committed
	IssueTx(ctx context.Context, tx *txs.Tx, options ...rpc.Option) (ids.ID, error)
	// GetRegistry returns the current record of the [kind] registry
	GetRegistry(ctx context.Context, kind state.Kind, options ...rpc.Option) (*state.Record, error)
	// GetWithdrawalStatus reports whether withdrawals are paused
	GetWithdrawalStatus(ctx context.Context, options ...rpc.Option) (bool, error)
	// DeriveAddress returns the derived addresses of the deployment and, if
	// [vaultNFT] is set, the vault authority of that NFT
	DeriveAddress(ctx context.Context, vaultNFT *ids.ID, options ...rpc.Option) (*DeriveAddressReply, error)
	GetNonce(ctx context.Context, addr ids.ID, options ...rpc.Option) (uint64, error)
	GetBalance(ctx context.Context, addr ids.ID, options ...rpc.Option) (uint64, error)
	GetAccount(ctx context.Context, addr ids.ID, options ...rpc.Option) (*ledger.Account, error)
	// Airdrop credits [amount] to [addr] on development networks
	Airdrop(ctx context.Context, addr ids.ID, amount uint64, options ...rpc.Option) error
}

type client struct {
	requester rpc.EndpointRequester
}

// NewClient returns a client for the registry API served by the node at
// [uri].
func NewClient(uri string) Client {
	return &client{requester: rpc.NewEndpointRequester(
		uri+Endpoint,
		ServiceName,
	)}
}

func (c *client) IssueTx(ctx context.Context, tx *txs.Tx, options ...rpc.Option) (ids.ID, error) {
	txBytes, err := tx.Bytes()
	if err != nil {
		return ids.Empty, err
	}
	txStr, err := formatting.Encode(formatting.Hex, txBytes)
	if err != nil {
		return ids.Empty, err
	}

	res := &api.JSONTxID{}
	err = c.requester.SendRequest(ctx, "issueTx", &IssueTxArgs{
		Tx:       txStr,
		Encoding: formatting.Hex,
	}, res, options...)
	return res.TxID, err
}

func (c *client) GetRegistry(ctx context.Context, kind state.Kind, options ...rpc.Option) (*state.Record, error) {
	var method string
	switch kind {
	case state.TokenKind:
		method = "getTokenRegistry"
	case state.CollectionKind:
		method = "getCollectionRegistry"
	default:
		return nil, fmt.Errorf("unknown registry kind %d", kind)
	}

	res := &GetRegistryReply{}
	if err := c.requester.SendRequest(ctx, method, struct{}{}, res, options...); err != nil {
		return nil, err
	}
	entries := res.Entries
	if entries == nil {
		entries = []ids.ID{}
	}
	return &state.Record{
		Kind:     kind,
		Admin:    res.Admin,
		Capacity: uint32(res.Capacity),
		Entries:  entries,
		Paused:   res.Paused,
	}, nil
}

func (c *client) GetWithdrawalStatus(ctx context.Context, options ...rpc.Option) (bool, error) {
	res := &GetWithdrawalStatusReply{}
	err := c.requester.SendRequest(ctx, "getWithdrawalStatus", struct{}{}, res, options...)
	return res.Paused, err
}

func (c *client) DeriveAddress(ctx context.Context, vaultNFT *ids.ID, options ...rpc.Option) (*DeriveAddressReply, error) {
	res := &DeriveAddressReply{}
	err := c.requester.SendRequest(ctx, "deriveAddress", &DeriveAddressArgs{
		VaultNFT: vaultNFT,
	}, res, options...)
	return res, err
}

func (c *client) GetNonce(ctx context.Context, addr ids.ID, options ...rpc.Option) (uint64, error) {
	res := &GetNonceReply{}
	err := c.requester.SendRequest(ctx, "getNonce", &api.JSONAddress{
		Address: addr,
	}, res, options...)
	return uint64(res.Nonce), err
}

func (c *client) GetBalance(ctx context.Context, addr ids.ID, options ...rpc.Option) (uint64, error) {
	res := &GetBalanceReply{}
	err := c.requester.SendRequest(ctx, "getBalance", &api.JSONAddress{
		Address: addr,
	}, res, options...)
	return uint64(res.Balance), err
}

func (c *client) GetAccount(ctx context.Context, addr ids.ID, options ...rpc.Option) (*ledger.Account, error) {
	res := &GetAccountReply{}
	err := c.requester.SendRequest(ctx, "getAccount", &GetAccountArgs{
		Address:  addr,
		Encoding: formatting.Hex,
	}, res, options...)
	if err != nil {
		return nil, err
	}
	data, err := formatting.Decode(res.Encoding, res.Data)
	if err != nil {
		return nil, err
	}
	return &ledger.Account{
		Owner:   res.Owner,
		Deposit: uint64(res.Deposit),
		Data:    data,
	}, nil
}

func (c *client) Airdrop(ctx context.Context, addr ids.ID, amount uint64, options ...rpc.Option) error {
	return c.requester.SendRequest(ctx, "airdrop", &AirdropArgs{
		Address: addr,
		Amount:  cjson.Uint64(amount),
	}, &api.EmptyReply{}, options...)
}
