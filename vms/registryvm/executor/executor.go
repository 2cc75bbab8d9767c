// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package executor

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/LAVASoftWorks/vkct-core/ids"
	"github.com/LAVASoftWorks/vkct-core/utils/logging"
	"github.com/LAVASoftWorks/vkct-core/vms/components/ledger"
	"github.com/LAVASoftWorks/vkct-core/vms/registryvm/address"
	"github.com/LAVASoftWorks/vkct-core/vms/registryvm/state"
	"github.com/LAVASoftWorks/vkct-core/vms/registryvm/txs"
)

var _ txs.Visitor = (*visitor)(nil)

type Config struct {
	ProgramID          ids.ID
	Seeds              address.Seeds
	TokenCapacity      uint32
	CollectionCapacity uint32
}

// Executor applies signed registry transactions to the ledger.
type Executor struct {
	config Config
	ledger *ledger.Ledger
	log    logging.Logger

	tokenRegistry      ids.ID
	collectionRegistry ids.ID
}

func New(config Config, l *ledger.Ledger, log logging.Logger) (*Executor, error) {
	tokenRegistry, _, err := address.Registry(config.Seeds.TokenRegistry, config.ProgramID)
	if err != nil {
		return nil, fmt.Errorf("couldn't derive token registry address: %w", err)
	}
	collectionRegistry, _, err := address.Registry(config.Seeds.CollectionRegistry, config.ProgramID)
	if err != nil {
		return nil, fmt.Errorf("couldn't derive collection registry address: %w", err)
	}
	return &Executor{
		config:             config,
		ledger:             l,
		log:                log,
		tokenRegistry:      tokenRegistry,
		collectionRegistry: collectionRegistry,
	}, nil
}

// Address returns the derived address of the [kind] registry.
func (e *Executor) Address(kind state.Kind) ids.ID {
	if kind == state.TokenKind {
		return e.tokenRegistry
	}
	return e.collectionRegistry
}

func (e *Executor) capacity(kind state.Kind) uint32 {
	if kind == state.TokenKind {
		return e.config.TokenCapacity
	}
	return e.config.CollectionCapacity
}

// Execute verifies [tx] and applies it atomically. On error the ledger is
// left unchanged.
func (e *Executor) Execute(ctx context.Context, tx *txs.Tx) error {
	if err := tx.Verify(); err != nil {
		return err
	}

	base := tx.Unsigned.Base()
	return e.ledger.Update(ctx, []ids.ID{tx.Signer, base.Registry}, func(ltx *ledger.Tx) error {
		if err := ltx.IncrementNonce(tx.Signer, base.Nonce); err != nil {
			return err
		}
		return tx.Unsigned.Visit(&visitor{
			executor: e,
			tx:       ltx,
			signer:   tx.Signer,
		})
	})
}

// Registry returns the current record of the [kind] registry.
func (e *Executor) Registry(kind state.Kind) (*state.Record, error) {
	addr := e.Address(kind)
	acct, err := e.ledger.Account(addr)
	if ledger.IsNotFound(err) {
		return nil, fmt.Errorf("%w: %s registry at %s", ErrNotFound, kind, addr)
	}
	if err != nil {
		return nil, err
	}
	if acct.Owner != e.config.ProgramID {
		return nil, fmt.Errorf("%w: %s is owned by %s", ledger.ErrWrongOwner, addr, acct.Owner)
	}
	return state.Parse(kind, acct.Data)
}

type visitor struct {
	executor *Executor
	tx       *ledger.Tx
	signer   ids.ID
}

func (v *visitor) checkAddress(kind state.Kind, addr ids.ID) error {
	if !kind.Valid() {
		return fmt.Errorf("%w: kind %d", ErrWrongKind, kind)
	}
	if expected := v.executor.Address(kind); addr != expected {
		return fmt.Errorf("%w: %s registry lives at %s, not %s", ErrInvalidRegistryAddress, kind, expected, addr)
	}
	return nil
}

// load returns the record at [addr] after checking the caller is its admin.
func (v *visitor) load(kind state.Kind, addr ids.ID) (*state.Record, error) {
	acct, err := v.tx.GetAccount(addr)
	if ledger.IsNotFound(err) {
		return nil, fmt.Errorf("%w: %s registry at %s", ErrNotFound, kind, addr)
	}
	if err != nil {
		return nil, err
	}
	if acct.Owner != v.executor.config.ProgramID {
		return nil, fmt.Errorf("%w: %s is owned by %s", ledger.ErrWrongOwner, addr, acct.Owner)
	}
	record, err := state.Parse(kind, acct.Data)
	if err != nil {
		return nil, err
	}
	return record, Authorize(v.signer, record.Admin)
}

func (v *visitor) store(addr ids.ID, record *state.Record) error {
	return v.tx.WriteData(addr, v.executor.config.ProgramID, record.Bytes())
}

func (v *visitor) Initialize(tx *txs.Initialize) error {
	if err := v.checkAddress(tx.Kind, tx.Registry); err != nil {
		return err
	}

	_, err := v.tx.GetAccount(tx.Registry)
	switch {
	case err == nil:
		return fmt.Errorf("%w: %s registry at %s", ErrAlreadyExists, tx.Kind, tx.Registry)
	case !ledger.IsNotFound(err):
		return err
	}

	record, err := state.New(tx.Kind, v.signer, v.executor.capacity(tx.Kind))
	if err != nil {
		return err
	}
	deposit, err := v.tx.CreateAccount(v.signer, tx.Registry, v.executor.config.ProgramID, record.Bytes())
	if err != nil {
		return err
	}

	v.executor.log.Debug("initialized registry",
		zap.Stringer("kind", tx.Kind),
		zap.Stringer("address", tx.Registry),
		zap.Stringer("admin", v.signer),
		zap.Uint32("capacity", record.Capacity),
		zap.Uint64("deposit", deposit),
	)
	return nil
}

func (v *visitor) AddEntry(tx *txs.AddEntry) error {
	if err := v.checkAddress(tx.Kind, tx.Registry); err != nil {
		return err
	}
	record, err := v.load(tx.Kind, tx.Registry)
	if err != nil {
		return err
	}
	if err := record.Append(tx.Entry); err != nil {
		return err
	}
	if err := v.store(tx.Registry, record); err != nil {
		return err
	}

	v.executor.log.Debug("added registry entry",
		zap.Stringer("kind", tx.Kind),
		zap.Stringer("entry", tx.Entry),
		zap.Int("count", len(record.Entries)),
	)
	return nil
}

func (v *visitor) SetPause(tx *txs.SetPause) error {
	if err := v.checkAddress(state.TokenKind, tx.Registry); err != nil {
		return err
	}
	record, err := v.load(state.TokenKind, tx.Registry)
	if err != nil {
		return err
	}
	record.Paused = tx.Paused
	if err := v.store(tx.Registry, record); err != nil {
		return err
	}

	v.executor.log.Debug("set withdrawal pause",
		zap.Bool("paused", tx.Paused),
	)
	return nil
}

func (v *visitor) Close(tx *txs.Close) error {
	if err := v.checkAddress(tx.Kind, tx.Registry); err != nil {
		return err
	}
	if _, err := v.load(tx.Kind, tx.Registry); err != nil {
		return err
	}
	deposit, err := v.tx.CloseAccount(tx.Registry, v.executor.config.ProgramID, v.signer)
	if err != nil {
		return err
	}

	v.executor.log.Debug("closed registry",
		zap.Stringer("kind", tx.Kind),
		zap.Stringer("address", tx.Registry),
		zap.Uint64("refund", deposit),
	)
	return nil
}
