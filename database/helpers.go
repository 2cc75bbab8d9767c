// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package database

import (
	"encoding/binary"
	"errors"
	"fmt"
)

// Uint64Size is the encoded length of balances and nonces.
const Uint64Size = 8

var errWrongSize = errors.New("value has unexpected size")

// PutUInt64 stores [val] big endian so that keys sort numerically.
func PutUInt64(db KeyValueWriter, key []byte, val uint64) error {
	b := make([]byte, Uint64Size)
	binary.BigEndian.PutUint64(b, val)
	return db.Put(key, b)
}

func GetUInt64(db KeyValueReader, key []byte) (uint64, error) {
	b, err := db.Get(key)
	if err != nil {
		return 0, err
	}
	if len(b) != Uint64Size {
		return 0, fmt.Errorf("%w: expected %d bytes but got %d", errWrongSize, Uint64Size, len(b))
	}
	return binary.BigEndian.Uint64(b), nil
}

// WithDefault returns the value at [key] in [db]. If the key doesn't exist, it
// returns [def].
func WithDefault[V any](
	get func(KeyValueReader, []byte) (V, error),
	db KeyValueReader,
	key []byte,
	def V,
) (V, error) {
	v, err := get(db, key)
	if errors.Is(err, ErrNotFound) {
		return def, nil
	}
	return v, err
}

// Count returns the number of keys in [db] that start with [prefix].
func Count(db Iteratee, prefix []byte) (int, error) {
	it := db.NewIteratorWithPrefix(prefix)
	defer it.Release()

	count := 0
	for it.Next() {
		count++
	}
	return count, it.Error()
}

// ClearPrefix removes every key starting with [prefix] in one batch, so a
// crash never leaves the prefix half cleared.
func ClearPrefix(db Database, prefix []byte) error {
	b := db.NewBatch()
	it := db.NewIteratorWithPrefix(prefix)
	defer it.Release()

	for it.Next() {
		if err := b.Delete(it.Key()); err != nil {
			return err
		}
	}
	if err := it.Error(); err != nil {
		return err
	}
	return b.Write()
}
