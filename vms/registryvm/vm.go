// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package registryvm

import (
	"context"
	"errors"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/LAVASoftWorks/vkct-core/ids"
	"github.com/LAVASoftWorks/vkct-core/utils/constants"
	"github.com/LAVASoftWorks/vkct-core/utils/logging"
	"github.com/LAVASoftWorks/vkct-core/vms/components/ledger"
	"github.com/LAVASoftWorks/vkct-core/vms/registryvm/address"
	"github.com/LAVASoftWorks/vkct-core/vms/registryvm/executor"
	"github.com/LAVASoftWorks/vkct-core/vms/registryvm/state"
	"github.com/LAVASoftWorks/vkct-core/vms/registryvm/txs"
)

const DefaultRegistryCapacity = 32

var (
	ErrAirdropOnProduction = errors.New("airdrops are disabled on production networks")
	errZeroAirdrop         = errors.New("airdrop amount must be positive")
)

type Config struct {
	NetworkID                  uint32 `json:"networkID"`
	ProgramID                  ids.ID `json:"programID"`
	SeedVersion                string `json:"seedVersion"`
	TokenRegistryCapacity      uint32 `json:"tokenRegistryCapacity"`
	CollectionRegistryCapacity uint32 `json:"collectionRegistryCapacity"`
}

func DefaultConfig() Config {
	return Config{
		NetworkID:                  constants.LocalID,
		ProgramID:                  DefaultProgramID,
		SeedVersion:                address.DefaultSeedVersion,
		TokenRegistryCapacity:      DefaultRegistryCapacity,
		CollectionRegistryCapacity: DefaultRegistryCapacity,
	}
}

// VM hosts the token and collection registries of one program on a ledger.
type VM struct {
	config   Config
	log      logging.Logger
	ledger   *ledger.Ledger
	executor *executor.Executor
	metrics  *metrics
}

func New(config Config, l *ledger.Ledger, reg prometheus.Registerer, log logging.Logger) (*VM, error) {
	seeds, err := address.SeedsFor(config.SeedVersion)
	if err != nil {
		return nil, err
	}
	e, err := executor.New(executor.Config{
		ProgramID:          config.ProgramID,
		Seeds:              seeds,
		TokenCapacity:      config.TokenRegistryCapacity,
		CollectionCapacity: config.CollectionRegistryCapacity,
	}, l, log)
	if err != nil {
		return nil, err
	}
	m, err := newMetrics(reg)
	if err != nil {
		return nil, fmt.Errorf("couldn't register metrics: %w", err)
	}

	log.Info("created registry vm",
		zap.String("network", constants.NetworkName(config.NetworkID)),
		zap.Stringer("programID", config.ProgramID),
		zap.String("seedVersion", config.SeedVersion),
		zap.Stringer("tokenRegistry", e.Address(state.TokenKind)),
		zap.Stringer("collectionRegistry", e.Address(state.CollectionKind)),
	)
	return &VM{
		config:   config,
		log:      log,
		ledger:   l,
		executor: e,
		metrics:  m,
	}, nil
}

func (vm *VM) Config() Config {
	return vm.config
}

// IssueTx executes [tx] and returns its ID once it is committed.
func (vm *VM) IssueTx(ctx context.Context, tx *txs.Tx) (ids.ID, error) {
	txID, err := tx.ID()
	if err != nil {
		return ids.Empty, err
	}

	err = vm.executor.Execute(ctx, tx)
	vm.metrics.observe(tx.Unsigned, err)
	if err != nil {
		vm.log.Debug("rejected transaction",
			zap.Stringer("txID", txID),
			zap.String("op", opName(tx.Unsigned)),
			zap.Stringer("signer", tx.Signer),
			zap.Error(err),
		)
		return ids.Empty, err
	}

	vm.log.Info("accepted transaction",
		zap.Stringer("txID", txID),
		zap.String("op", opName(tx.Unsigned)),
		zap.Stringer("signer", tx.Signer),
	)
	return txID, nil
}

// RegistryAddress returns the derived address of the [kind] registry.
func (vm *VM) RegistryAddress(kind state.Kind) ids.ID {
	return vm.executor.Address(kind)
}

// Registry returns a snapshot of the [kind] registry.
func (vm *VM) Registry(kind state.Kind) (*state.Record, error) {
	return vm.executor.Registry(kind)
}

// WithdrawalStatus reports whether withdrawals are paused.
func (vm *VM) WithdrawalStatus() (bool, error) {
	record, err := vm.executor.Registry(state.TokenKind)
	if err != nil {
		return false, err
	}
	return record.Paused, nil
}

// VaultAuthority derives the deposit vault of the NFT [mint].
func (vm *VM) VaultAuthority(mint ids.ID) (ids.ID, uint8, error) {
	return address.VaultAuthority(vm.config.ProgramID, mint)
}

func (vm *VM) Nonce(addr ids.ID) (uint64, error) {
	return vm.ledger.Nonce(addr)
}

func (vm *VM) Balance(addr ids.ID) (uint64, error) {
	return vm.ledger.Balance(addr)
}

func (vm *VM) Account(addr ids.ID) (*ledger.Account, error) {
	return vm.ledger.Account(addr)
}

// Airdrop credits [amount] to [addr]. It is refused on production networks.
func (vm *VM) Airdrop(ctx context.Context, addr ids.ID, amount uint64) error {
	if constants.IsProduction(vm.config.NetworkID) {
		return fmt.Errorf("%w: %s", ErrAirdropOnProduction, constants.NetworkName(vm.config.NetworkID))
	}
	if amount == 0 {
		return errZeroAirdrop
	}
	if err := vm.ledger.Fund(ctx, addr, amount); err != nil {
		return err
	}
	vm.metrics.airdrops.Inc()
	vm.log.Info("airdropped funds",
		zap.Stringer("address", addr),
		zap.Uint64("amount", amount),
	)
	return nil
}

func (vm *VM) HealthCheck(ctx context.Context) (interface{}, error) {
	return vm.ledger.HealthCheck(ctx)
}
