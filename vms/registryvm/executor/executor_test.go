// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package executor

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/LAVASoftWorks/vkct-core/database"
	"github.com/LAVASoftWorks/vkct-core/database/memdb"
	"github.com/LAVASoftWorks/vkct-core/ids"
	"github.com/LAVASoftWorks/vkct-core/utils/crypto/ed25519"
	"github.com/LAVASoftWorks/vkct-core/utils/logging"
	"github.com/LAVASoftWorks/vkct-core/utils/units"
	"github.com/LAVASoftWorks/vkct-core/vms/components/ledger"
	"github.com/LAVASoftWorks/vkct-core/vms/registryvm/address"
	"github.com/LAVASoftWorks/vkct-core/vms/registryvm/state"
	"github.com/LAVASoftWorks/vkct-core/vms/registryvm/txs"
)

var (
	programID = ids.FromStringOrPanic("VaU1t11111111111111111111111111111111111111")

	tokenA = ids.ID{0xaa}
	tokenB = ids.ID{0xbb}
	tokenC = ids.ID{0xcc}
	tokenD = ids.ID{0xdd}
)

type environment struct {
	db       *memdb.Database
	ledger   *ledger.Ledger
	executor *Executor
	admin    *ed25519.PrivateKey
	other    *ed25519.PrivateKey
}

func newEnvironment(t *testing.T, capacity uint32) *environment {
	require := require.New(t)

	seeds, err := address.SeedsFor(address.DefaultSeedVersion)
	require.NoError(err)

	admin, err := ed25519.NewPrivateKey()
	require.NoError(err)
	other, err := ed25519.NewPrivateKey()
	require.NoError(err)

	db := memdb.New()
	l := ledger.New(db, ledger.DefaultConfig, logging.NoLog{})
	require.NoError(l.Bootstrap(context.Background(), map[ids.ID]uint64{
		admin.Address(): 10 * units.Vkct,
		other.Address(): 10 * units.Vkct,
	}))

	e, err := New(Config{
		ProgramID:          programID,
		Seeds:              seeds,
		TokenCapacity:      capacity,
		CollectionCapacity: capacity,
	}, l, logging.NoLog{})
	require.NoError(err)

	return &environment{
		db:       db,
		ledger:   l,
		executor: e,
		admin:    admin,
		other:    other,
	}
}

func (env *environment) base(t *testing.T, key *ed25519.PrivateKey, kind state.Kind) txs.BaseTx {
	nonce, err := env.ledger.Nonce(key.Address())
	require.NoError(t, err)
	return txs.BaseTx{
		Nonce:    nonce,
		Registry: env.executor.Address(kind),
	}
}

func (env *environment) issue(t *testing.T, key *ed25519.PrivateKey, utx txs.Unsigned) error {
	tx, err := txs.Sign(utx, key)
	require.NoError(t, err)
	return env.executor.Execute(context.Background(), tx)
}

func (env *environment) initialize(t *testing.T, key *ed25519.PrivateKey, kind state.Kind) error {
	return env.issue(t, key, &txs.Initialize{
		BaseTx: env.base(t, key, kind),
		Kind:   kind,
	})
}

func (env *environment) addEntry(t *testing.T, key *ed25519.PrivateKey, kind state.Kind, entry ids.ID) error {
	return env.issue(t, key, &txs.AddEntry{
		BaseTx: env.base(t, key, kind),
		Kind:   kind,
		Entry:  entry,
	})
}

func (env *environment) setPause(t *testing.T, key *ed25519.PrivateKey, paused bool) error {
	return env.issue(t, key, &txs.SetPause{
		BaseTx: env.base(t, key, state.TokenKind),
		Paused: paused,
	})
}

func (env *environment) close(t *testing.T, key *ed25519.PrivateKey, kind state.Kind) error {
	return env.issue(t, key, &txs.Close{
		BaseTx: env.base(t, key, kind),
		Kind:   kind,
	})
}

func dump(t *testing.T, db database.Iteratee) map[string]string {
	it := db.NewIteratorWithPrefix(nil)
	defer it.Release()

	contents := make(map[string]string)
	for it.Next() {
		contents[string(it.Key())] = string(it.Value())
	}
	require.NoError(t, it.Error())
	return contents
}

func TestAuthorize(t *testing.T) {
	require := require.New(t)

	admin := ids.ID{0x01}
	require.NoError(Authorize(admin, admin))
	require.ErrorIs(Authorize(ids.ID{0x02}, admin), ErrUnauthorized)
	require.ErrorIs(Authorize(ids.Empty, ids.Empty), ErrUnauthorized)
}

func TestTokenRegistryLifecycle(t *testing.T) {
	require := require.New(t)
	env := newEnvironment(t, 3)

	_, err := env.executor.Registry(state.TokenKind)
	require.ErrorIs(err, ErrNotFound)

	require.NoError(env.initialize(t, env.admin, state.TokenKind))
	require.NoError(env.addEntry(t, env.admin, state.TokenKind, tokenA))
	require.NoError(env.addEntry(t, env.admin, state.TokenKind, tokenB))

	record, err := env.executor.Registry(state.TokenKind)
	require.NoError(err)
	require.Equal(env.admin.Address(), record.Admin)
	require.Equal([]ids.ID{tokenA, tokenB}, record.Entries)
	require.False(record.Paused)

	require.ErrorIs(env.addEntry(t, env.admin, state.TokenKind, tokenA), state.ErrDuplicate)
	require.NoError(env.addEntry(t, env.admin, state.TokenKind, tokenC))
	require.ErrorIs(env.addEntry(t, env.admin, state.TokenKind, tokenD), state.ErrCapacityExceeded)

	require.NoError(env.setPause(t, env.admin, true))
	require.NoError(env.setPause(t, env.admin, true))

	record, err = env.executor.Registry(state.TokenKind)
	require.NoError(err)
	require.Equal([]ids.ID{tokenA, tokenB, tokenC}, record.Entries)
	require.True(record.Paused)

	require.NoError(env.setPause(t, env.admin, false))
	record, err = env.executor.Registry(state.TokenKind)
	require.NoError(err)
	require.False(record.Paused)
}

func TestInitializeTwice(t *testing.T) {
	require := require.New(t)
	env := newEnvironment(t, 3)

	require.NoError(env.initialize(t, env.admin, state.CollectionKind))
	require.NoError(env.addEntry(t, env.admin, state.CollectionKind, tokenA))

	require.ErrorIs(env.initialize(t, env.admin, state.CollectionKind), ErrAlreadyExists)
	require.ErrorIs(env.initialize(t, env.other, state.CollectionKind), ErrAlreadyExists)

	record, err := env.executor.Registry(state.CollectionKind)
	require.NoError(err)
	require.Equal(env.admin.Address(), record.Admin)
	require.Equal([]ids.ID{tokenA}, record.Entries)
}

func TestRegistriesAreIndependent(t *testing.T) {
	require := require.New(t)
	env := newEnvironment(t, 3)

	require.NoError(env.initialize(t, env.admin, state.TokenKind))
	require.NoError(env.initialize(t, env.other, state.CollectionKind))

	require.ErrorIs(env.addEntry(t, env.admin, state.CollectionKind, tokenA), ErrUnauthorized)
	require.NoError(env.addEntry(t, env.other, state.CollectionKind, tokenA))
	require.NoError(env.addEntry(t, env.admin, state.TokenKind, tokenA))

	_, err := env.executor.Registry(state.TokenKind)
	require.NoError(err)
	require.NotEqual(env.executor.Address(state.TokenKind), env.executor.Address(state.CollectionKind))
}

func TestUnauthorized(t *testing.T) {
	require := require.New(t)
	env := newEnvironment(t, 3)

	require.NoError(env.initialize(t, env.admin, state.TokenKind))
	before := dump(t, env.db)

	require.ErrorIs(env.addEntry(t, env.other, state.TokenKind, tokenA), ErrUnauthorized)
	require.ErrorIs(env.setPause(t, env.other, true), ErrUnauthorized)
	require.ErrorIs(env.close(t, env.other, state.TokenKind), ErrUnauthorized)

	require.Equal(before, dump(t, env.db))
}

func TestNotFound(t *testing.T) {
	require := require.New(t)
	env := newEnvironment(t, 3)

	require.ErrorIs(env.addEntry(t, env.admin, state.TokenKind, tokenA), ErrNotFound)
	require.ErrorIs(env.setPause(t, env.admin, true), ErrNotFound)
	require.ErrorIs(env.close(t, env.admin, state.CollectionKind), ErrNotFound)
}

func TestCheckOrder(t *testing.T) {
	require := require.New(t)
	env := newEnvironment(t, 1)

	require.NoError(env.initialize(t, env.admin, state.TokenKind))
	require.NoError(env.addEntry(t, env.admin, state.TokenKind, tokenA))

	// A stranger adding a duplicate to a full registry is rejected by the guard.
	require.ErrorIs(env.addEntry(t, env.other, state.TokenKind, tokenA), ErrUnauthorized)
	// The admin adding a duplicate to a full registry gets the duplicate error.
	require.ErrorIs(env.addEntry(t, env.admin, state.TokenKind, tokenA), state.ErrDuplicate)
	require.ErrorIs(env.addEntry(t, env.admin, state.TokenKind, tokenB), state.ErrCapacityExceeded)

	// A wrong address is rejected before anything is loaded.
	err := env.issue(t, env.other, &txs.AddEntry{
		BaseTx: txs.BaseTx{
			Nonce:    0,
			Registry: env.executor.Address(state.CollectionKind),
		},
		Kind:  state.TokenKind,
		Entry: tokenB,
	})
	require.ErrorIs(err, ErrInvalidRegistryAddress)

	err = env.issue(t, env.admin, &txs.SetPause{
		BaseTx: env.base(t, env.admin, state.CollectionKind),
		Paused: true,
	})
	require.ErrorIs(err, ErrInvalidRegistryAddress)

	err = env.issue(t, env.admin, &txs.Initialize{
		BaseTx: env.base(t, env.admin, state.TokenKind),
		Kind:   state.Kind(7),
	})
	require.ErrorIs(err, ErrWrongKind)
}

func TestCloseRefundsDeposit(t *testing.T) {
	require := require.New(t)
	env := newEnvironment(t, 3)
	adminAddr := env.admin.Address()

	initial, err := env.ledger.Balance(adminAddr)
	require.NoError(err)

	require.NoError(env.initialize(t, env.admin, state.CollectionKind))

	deposit, err := env.ledger.DepositFor(state.Size(state.CollectionKind, 3))
	require.NoError(err)

	balance, err := env.ledger.Balance(adminAddr)
	require.NoError(err)
	require.Equal(initial-deposit, balance)

	acct, err := env.ledger.Account(env.executor.Address(state.CollectionKind))
	require.NoError(err)
	require.Equal(programID, acct.Owner)
	require.Equal(deposit, acct.Deposit)

	require.NoError(env.addEntry(t, env.admin, state.CollectionKind, tokenA))
	require.NoError(env.close(t, env.admin, state.CollectionKind))

	balance, err = env.ledger.Balance(adminAddr)
	require.NoError(err)
	require.Equal(initial, balance)

	_, err = env.executor.Registry(state.CollectionKind)
	require.ErrorIs(err, ErrNotFound)

	// A closed registry can be initialized again, by anyone.
	require.NoError(env.initialize(t, env.other, state.CollectionKind))
	record, err := env.executor.Registry(state.CollectionKind)
	require.NoError(err)
	require.Equal(env.other.Address(), record.Admin)
	require.Empty(record.Entries)
}

func TestInsufficientFunds(t *testing.T) {
	require := require.New(t)
	env := newEnvironment(t, 3)

	poor, err := ed25519.NewPrivateKey()
	require.NoError(err)

	err = env.initialize(t, poor, state.TokenKind)
	require.ErrorIs(err, ledger.ErrInsufficientFunds)

	_, err = env.executor.Registry(state.TokenKind)
	require.ErrorIs(err, ErrNotFound)
}

func TestReplayProtection(t *testing.T) {
	require := require.New(t)
	env := newEnvironment(t, 3)

	require.NoError(env.initialize(t, env.admin, state.TokenKind))

	tx, err := txs.Sign(&txs.AddEntry{
		BaseTx: env.base(t, env.admin, state.TokenKind),
		Kind:   state.TokenKind,
		Entry:  tokenA,
	}, env.admin)
	require.NoError(err)
	require.NoError(env.executor.Execute(context.Background(), tx))

	err = env.executor.Execute(context.Background(), tx)
	require.ErrorIs(err, ledger.ErrWrongNonce)

	nonce, err := env.ledger.Nonce(env.admin.Address())
	require.NoError(err)
	require.Equal(uint64(2), nonce)
}

func TestRejectedTxLeavesNoTrace(t *testing.T) {
	require := require.New(t)
	env := newEnvironment(t, 1)

	require.NoError(env.initialize(t, env.admin, state.TokenKind))
	require.NoError(env.addEntry(t, env.admin, state.TokenKind, tokenA))
	before := dump(t, env.db)

	require.ErrorIs(env.addEntry(t, env.admin, state.TokenKind, tokenB), state.ErrCapacityExceeded)
	require.ErrorIs(env.initialize(t, env.admin, state.TokenKind), ErrAlreadyExists)

	tx, err := txs.Sign(&txs.SetPause{
		BaseTx: env.base(t, env.admin, state.TokenKind),
		Paused: true,
	}, env.admin)
	require.NoError(err)
	tx.Signer = env.other.Address()
	require.ErrorIs(env.executor.Execute(context.Background(), tx), ed25519.ErrInvalidSignature)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	tx, err = txs.Sign(&txs.SetPause{
		BaseTx: env.base(t, env.admin, state.TokenKind),
		Paused: true,
	}, env.admin)
	require.NoError(err)
	require.ErrorIs(env.executor.Execute(ctx, tx), context.Canceled)

	require.Equal(before, dump(t, env.db))
}

func TestConcurrentAddEntry(t *testing.T) {
	require := require.New(t)

	const (
		capacity   = 8
		numWriters = 4
		perWriter  = 4
	)
	env := newEnvironment(t, capacity)
	require.NoError(env.initialize(t, env.admin, state.TokenKind))

	// Nonces are per signer, so concurrent writers contend on the nonce as
	// well as on the record. Writers retry on a wrong nonce.
	var (
		wg      sync.WaitGroup
		lock    sync.Mutex
		added   int
		results = make(chan error, numWriters*perWriter)
	)
	for w := 0; w < numWriters; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < perWriter; i++ {
				entry := ids.ID{byte(w), byte(i), 0x01}
				for {
					nonce, err := env.ledger.Nonce(env.admin.Address())
					if err != nil {
						results <- err
						return
					}
					tx, err := txs.Sign(&txs.AddEntry{
						BaseTx: txs.BaseTx{
							Nonce:    nonce,
							Registry: env.executor.Address(state.TokenKind),
						},
						Kind:  state.TokenKind,
						Entry: entry,
					}, env.admin)
					if err != nil {
						results <- err
						return
					}
					err = env.executor.Execute(context.Background(), tx)
					if errors.Is(err, ledger.ErrWrongNonce) {
						continue
					}
					if err == nil {
						lock.Lock()
						added++
						lock.Unlock()
					}
					results <- err
					break
				}
			}
		}(w)
	}
	wg.Wait()
	close(results)

	var numFull int
	for err := range results {
		if err != nil {
			require.ErrorIs(err, state.ErrCapacityExceeded)
			numFull++
		}
	}
	require.Equal(capacity, added)
	require.Equal(numWriters*perWriter-capacity, numFull)

	record, err := env.executor.Registry(state.TokenKind)
	require.NoError(err)
	require.Len(record.Entries, capacity)
}
