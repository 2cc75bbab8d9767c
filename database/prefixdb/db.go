// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package prefixdb carves a namespace out of a shared database. Every key is
// stored behind the hash of the namespace name, so two namespaces can never
// observe each other's keys.
package prefixdb

import (
	"context"
	"sync/atomic"

	"github.com/LAVASoftWorks/vkct-core/database"
	"github.com/LAVASoftWorks/vkct-core/utils/hashing"
)

var (
	_ database.Database = (*Database)(nil)
	_ database.Batch    = (*batch)(nil)
	_ database.Iterator = (*iterator)(nil)
)

type Database struct {
	namespace []byte
	db        database.Database
	closed    atomic.Bool
}

// New returns [db] restricted to the namespace [name]. Nesting namespaces
// hashes the outer namespace together with [name] so lookups stay a single
// prefix deep.
func New(name []byte, db database.Database) *Database {
	if outer, ok := db.(*Database); ok {
		return &Database{
			namespace: hashing.ComputeHash256(PrefixKey(outer.namespace, name)),
			db:        outer.db,
		}
	}
	return &Database{
		namespace: hashing.ComputeHash256(name),
		db:        db,
	}
}

// PrefixKey returns a fresh slice holding [prefix] followed by [key].
func PrefixKey(prefix, key []byte) []byte {
	out := make([]byte, 0, len(prefix)+len(key))
	out = append(out, prefix...)
	return append(out, key...)
}

func (db *Database) key(key []byte) []byte {
	return PrefixKey(db.namespace, key)
}

func (db *Database) Has(key []byte) (bool, error) {
	if db.closed.Load() {
		return false, database.ErrClosed
	}
	return db.db.Has(db.key(key))
}

func (db *Database) Get(key []byte) ([]byte, error) {
	if db.closed.Load() {
		return nil, database.ErrClosed
	}
	return db.db.Get(db.key(key))
}

func (db *Database) Put(key, value []byte) error {
	if db.closed.Load() {
		return database.ErrClosed
	}
	return db.db.Put(db.key(key), value)
}

func (db *Database) Delete(key []byte) error {
	if db.closed.Load() {
		return database.ErrClosed
	}
	return db.db.Delete(db.key(key))
}

func (db *Database) NewBatch() database.Batch {
	return &batch{
		Batch: db.db.NewBatch(),
		db:    db,
	}
}

func (db *Database) NewIteratorWithPrefix(prefix []byte) database.Iterator {
	if db.closed.Load() {
		return &database.IteratorError{Err: database.ErrClosed}
	}
	return &iterator{
		Iterator: db.db.NewIteratorWithPrefix(db.key(prefix)),
		db:       db,
	}
}

// Close detaches this namespace. The shared database stays open.
func (db *Database) Close() error {
	if !db.closed.CompareAndSwap(false, true) {
		return database.ErrClosed
	}
	return nil
}

func (db *Database) HealthCheck(ctx context.Context) (interface{}, error) {
	if db.closed.Load() {
		return nil, database.ErrClosed
	}
	return db.db.HealthCheck(ctx)
}

// batch writes namespaced keys to the inner batch and keeps the caller's
// keys so Replay reports what was written through this namespace.
type batch struct {
	database.Batch
	ops database.BatchOps

	db *Database
}

func (b *batch) Put(key, value []byte) error {
	_ = b.ops.Put(key, value)
	return b.Batch.Put(b.db.key(key), value)
}

func (b *batch) Delete(key []byte) error {
	_ = b.ops.Delete(key)
	return b.Batch.Delete(b.db.key(key))
}

func (b *batch) Write() error {
	if b.db.closed.Load() {
		return database.ErrClosed
	}
	return b.Batch.Write()
}

func (b *batch) Reset() {
	b.ops.Reset()
	b.Batch.Reset()
}

func (b *batch) Replay(w database.KeyValueWriterDeleter) error {
	return b.ops.Replay(w)
}

type iterator struct {
	database.Iterator

	db  *Database
	err error
}

func (it *iterator) Next() bool {
	if it.db.closed.Load() {
		it.err = database.ErrClosed
		return false
	}
	return it.Iterator.Next()
}

func (it *iterator) Key() []byte {
	if it.err != nil {
		return nil
	}
	key := it.Iterator.Key()
	if len(key) < len(it.db.namespace) {
		return key
	}
	return key[len(it.db.namespace):]
}

func (it *iterator) Value() []byte {
	if it.err != nil {
		return nil
	}
	return it.Iterator.Value()
}

func (it *iterator) Error() error {
	if it.err != nil {
		return it.err
	}
	return it.Iterator.Error()
}
