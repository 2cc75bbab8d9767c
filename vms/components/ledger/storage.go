// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package ledger

import (
	"errors"
	"fmt"

	"github.com/LAVASoftWorks/vkct-core/database"
	"github.com/LAVASoftWorks/vkct-core/ids"
	"github.com/LAVASoftWorks/vkct-core/utils/math"
)

/*
 * LedgerDB
 * |-- initializedKey -> nil
 * |-. accounts
 * | '-- address -> account bytes
 * |-. balances
 * | '-- address -> balance
 * '-. nonces
 *   '-- address -> nonce
 */

var (
	initializedKey = []byte{0x00}
	accountPrefix  = []byte{0x01}
	balancePrefix  = []byte{0x02}
	noncePrefix    = []byte{0x03}
)

func Flatten[T any](slices ...[]T) []T {
	var size int
	for _, slice := range slices {
		size += len(slice)
	}

	result := make([]T, 0, size)
	for _, slice := range slices {
		result = append(result, slice...)
	}
	return result
}

func IsInitialized(db database.KeyValueReader) (bool, error) {
	return db.Has(initializedKey)
}

func SetInitialized(db database.KeyValueWriter) error {
	return db.Put(initializedKey, nil)
}

// Account state

func GetAccount(db database.KeyValueReader, address ids.ID) (*Account, error) {
	key := Flatten(accountPrefix, address[:])
	b, err := db.Get(key)
	if errors.Is(err, database.ErrNotFound) {
		return nil, fmt.Errorf("%w: %s", ErrAccountNotFound, address)
	}
	if err != nil {
		return nil, err
	}
	return ParseAccount(b)
}

func HasAccount(db database.KeyValueReader, address ids.ID) (bool, error) {
	key := Flatten(accountPrefix, address[:])
	return db.Has(key)
}

func PutAccount(db database.KeyValueWriter, address ids.ID, acct *Account) error {
	key := Flatten(accountPrefix, address[:])
	return db.Put(key, acct.Bytes())
}

func DeleteAccount(db database.KeyValueDeleter, address ids.ID) error {
	key := Flatten(accountPrefix, address[:])
	return db.Delete(key)
}

// Balance state

func GetBalance(db database.KeyValueReader, address ids.ID) (uint64, error) {
	key := Flatten(balancePrefix, address[:])
	return database.WithDefault(database.GetUInt64, db, key, 0)
}

func SetBalance(db database.KeyValueWriterDeleter, address ids.ID, balance uint64) error {
	key := Flatten(balancePrefix, address[:])
	if balance == 0 {
		return db.Delete(key)
	}
	return database.PutUInt64(db, key, balance)
}

func DecreaseBalance(db database.KeyValueReaderWriterDeleter, address ids.ID, amount uint64) error {
	balance, err := GetBalance(db, address)
	if err != nil {
		return err
	}
	if balance < amount {
		return fmt.Errorf("%w: %s holds %d, needs %d", ErrInsufficientFunds, address, balance, amount)
	}
	return SetBalance(db, address, balance-amount)
}

func IncreaseBalance(db database.KeyValueReaderWriterDeleter, address ids.ID, amount uint64) error {
	balance, err := GetBalance(db, address)
	if err != nil {
		return err
	}
	balance, err = math.Add(balance, amount)
	if err != nil {
		return err
	}
	return SetBalance(db, address, balance)
}

// Nonce state

func GetNonce(db database.KeyValueReader, address ids.ID) (uint64, error) {
	key := Flatten(noncePrefix, address[:])
	return database.WithDefault(database.GetUInt64, db, key, 0)
}

func SetNonce(db database.KeyValueWriter, address ids.ID, nonce uint64) error {
	key := Flatten(noncePrefix, address[:])
	return database.PutUInt64(db, key, nonce)
}

func IncrementNonce(db database.KeyValueReaderWriter, address ids.ID, nonce uint64) error {
	expectedNonce, err := GetNonce(db, address)
	if err != nil {
		return err
	}
	if nonce != expectedNonce {
		return fmt.Errorf("%w: expected %d but got %d", ErrWrongNonce, expectedNonce, nonce)
	}
	return SetNonce(db, address, nonce+1)
}
