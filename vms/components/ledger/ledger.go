// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package ledger

import (
	"context"
	"encoding/binary"
	"fmt"
	"slices"
	"sync"

	"go.uber.org/zap"

	"github.com/LAVASoftWorks/vkct-core/database"
	"github.com/LAVASoftWorks/vkct-core/database/versiondb"
	"github.com/LAVASoftWorks/vkct-core/ids"
	"github.com/LAVASoftWorks/vkct-core/utils/logging"
)

const numStripes = 256

type Config struct {
	DepositPerByte uint64 `json:"depositPerByte"`
}

var DefaultConfig = Config{
	DepositPerByte: DefaultDepositPerByte,
}

// Ledger is an address-keyed account store. Every mutation runs as a
// transaction that holds the locks of the addresses it touches and is written
// to the database as a single batch.
type Ledger struct {
	log            logging.Logger
	db             database.Database
	depositPerByte uint64

	// bootstrapLock is held for writing while genesis is applied.
	bootstrapLock sync.RWMutex
	stripes       [numStripes]sync.Mutex
}

func New(db database.Database, config Config, log logging.Logger) *Ledger {
	return &Ledger{
		log:            log,
		db:             db,
		depositPerByte: config.DepositPerByte,
	}
}

// DepositFor returns the deposit charged for an account holding [dataLen]
// bytes.
func (l *Ledger) DepositFor(dataLen int) (uint64, error) {
	return Deposit(dataLen, l.depositPerByte)
}

// Update runs [f] as one atomic transaction over [addrs]. If [f] returns an
// error, or [ctx] is cancelled before the commit, nothing [f] wrote is
// persisted.
func (l *Ledger) Update(ctx context.Context, addrs []ids.ID, f func(*Tx) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	l.bootstrapLock.RLock()
	defer l.bootstrapLock.RUnlock()

	unlock := l.lock(addrs)
	defer unlock()

	if err := ctx.Err(); err != nil {
		return err
	}

	vdb := versiondb.New(l.db)
	tx := &Tx{
		ledger: l,
		db:     vdb,
		locked: make(map[ids.ID]struct{}, len(addrs)),
	}
	for _, addr := range addrs {
		tx.locked[addr] = struct{}{}
	}

	if err := f(tx); err != nil {
		vdb.Abort()
		return err
	}
	if err := ctx.Err(); err != nil {
		vdb.Abort()
		return err
	}

	pending := vdb.Pending()
	if err := vdb.Commit(); err != nil {
		return fmt.Errorf("failed to commit ledger transaction: %w", err)
	}
	l.log.Verbo("committed ledger transaction",
		zap.Int("numAddresses", len(addrs)),
		zap.Int("numWrites", pending),
	)
	return nil
}

// lock acquires the stripes covering [addrs] in ascending order so that two
// transactions can never wait on each other.
func (l *Ledger) lock(addrs []ids.ID) func() {
	stripes := make([]int, 0, len(addrs))
	for _, addr := range addrs {
		stripes = append(stripes, stripeOf(addr))
	}
	slices.Sort(stripes)
	stripes = slices.Compact(stripes)

	for _, stripe := range stripes {
		l.stripes[stripe].Lock()
	}
	return func() {
		for i := len(stripes) - 1; i >= 0; i-- {
			l.stripes[stripes[i]].Unlock()
		}
	}
}

func stripeOf(addr ids.ID) int {
	return int(binary.BigEndian.Uint64(addr[:8]) % numStripes)
}

// Bootstrap credits [balances] exactly once over the lifetime of the
// database. It returns ErrAlreadyBootstrapped on every later call.
func (l *Ledger) Bootstrap(ctx context.Context, balances map[ids.ID]uint64) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	l.bootstrapLock.Lock()
	defer l.bootstrapLock.Unlock()

	initialized, err := IsInitialized(l.db)
	if err != nil {
		return err
	}
	if initialized {
		return ErrAlreadyBootstrapped
	}

	vdb := versiondb.New(l.db)
	for addr, balance := range balances {
		if err := IncreaseBalance(vdb, addr, balance); err != nil {
			vdb.Abort()
			return err
		}
	}
	if err := SetInitialized(vdb); err != nil {
		vdb.Abort()
		return err
	}
	if err := vdb.Commit(); err != nil {
		return err
	}

	l.log.Info("bootstrapped ledger",
		zap.Int("numAllocations", len(balances)),
	)
	return nil
}

// Fund credits [amount] to [addr] outside of genesis.
func (l *Ledger) Fund(ctx context.Context, addr ids.ID, amount uint64) error {
	return l.Update(ctx, []ids.ID{addr}, func(tx *Tx) error {
		return tx.Credit(addr, amount)
	})
}

// Account returns the committed account at [addr].
func (l *Ledger) Account(addr ids.ID) (*Account, error) {
	return GetAccount(l.db, addr)
}

// Balance returns the committed balance of [addr].
func (l *Ledger) Balance(addr ids.ID) (uint64, error) {
	return GetBalance(l.db, addr)
}

// Nonce returns the next nonce [addr] must use.
func (l *Ledger) Nonce(addr ids.ID) (uint64, error) {
	return GetNonce(l.db, addr)
}

func (l *Ledger) HealthCheck(ctx context.Context) (interface{}, error) {
	return l.db.HealthCheck(ctx)
}
