// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package api

import (
	"context"
	"fmt"

	"github.com/LAVASoftWorks/vkct-core/ids"
	"github.com/LAVASoftWorks/vkct-core/utils/rpc"
	"github.com/LAVASoftWorks/vkct-core/vms/components/ledger"
	"github.com/LAVASoftWorks/vkct-core/vms/registryvm"
	"github.com/LAVASoftWorks/vkct-core/vms/registryvm/state"
	"github.com/LAVASoftWorks/vkct-core/vms/registryvm/txs"
)

var _ Client = (*localClient)(nil)

type localClient struct {
	vm *registryvm.VM
}

// NewLocalClient serves the Client interface from an in-process VM. Request
// options are ignored.
func NewLocalClient(vm *registryvm.VM) Client {
	return &localClient{vm: vm}
}

func (c *localClient) IssueTx(ctx context.Context, tx *txs.Tx, _ ...rpc.Option) (ids.ID, error) {
	return c.vm.IssueTx(ctx, tx)
}

func (c *localClient) GetRegistry(_ context.Context, kind state.Kind, _ ...rpc.Option) (*state.Record, error) {
	if !kind.Valid() {
		return nil, fmt.Errorf("unknown registry kind %d", kind)
	}
	return c.vm.Registry(kind)
}

func (c *localClient) GetWithdrawalStatus(context.Context, ...rpc.Option) (bool, error) {
	return c.vm.WithdrawalStatus()
}

func (c *localClient) DeriveAddress(_ context.Context, vaultNFT *ids.ID, _ ...rpc.Option) (*DeriveAddressReply, error) {
	reply := &DeriveAddressReply{}
	err := deriveAddress(c.vm, &DeriveAddressArgs{VaultNFT: vaultNFT}, reply)
	return reply, err
}

func (c *localClient) GetNonce(_ context.Context, addr ids.ID, _ ...rpc.Option) (uint64, error) {
	return c.vm.Nonce(addr)
}

func (c *localClient) GetBalance(_ context.Context, addr ids.ID, _ ...rpc.Option) (uint64, error) {
	return c.vm.Balance(addr)
}

func (c *localClient) GetAccount(_ context.Context, addr ids.ID, _ ...rpc.Option) (*ledger.Account, error) {
	return c.vm.Account(addr)
}

func (c *localClient) Airdrop(ctx context.Context, addr ids.ID, amount uint64, _ ...rpc.Option) error {
	return c.vm.Airdrop(ctx, addr, amount)
}
