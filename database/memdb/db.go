// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package memdb

import (
	"bytes"
	"context"
	"slices"
	"sync"

	"github.com/google/btree"

	"github.com/LAVASoftWorks/vkct-core/database"
)

const (
	// Name is the name of this database for database switches
	Name = "memdb"

	defaultTreeDegree = 32
)

var (
	_ database.Database = (*Database)(nil)
	_ database.Batch    = (*batch)(nil)
	_ database.Iterator = (*iterator)(nil)
)

// entry is one key-value pair. Values are never mutated after insertion, so
// snapshots of the tree can share them.
type entry struct {
	key   []byte
	value []byte
}

func (e entry) Less(o entry) bool {
	return bytes.Compare(e.key, o.key) < 0
}

// Database is an ephemeral key-value store kept in an ordered tree. It backs
// local test ledgers and the --db-type=memdb mode of the CLI.
type Database struct {
	lock sync.RWMutex
	// tree is nil once the database is closed
	tree *btree.BTreeG[entry]
}

func New() *Database {
	return &Database{
		tree: btree.NewG(defaultTreeDegree, entry.Less),
	}
}

func (db *Database) Close() error {
	db.lock.Lock()
	defer db.lock.Unlock()

	if db.tree == nil {
		return database.ErrClosed
	}
	db.tree = nil
	return nil
}

func (db *Database) isClosed() bool {
	db.lock.RLock()
	defer db.lock.RUnlock()

	return db.tree == nil
}

func (db *Database) Has(key []byte) (bool, error) {
	db.lock.RLock()
	defer db.lock.RUnlock()

	if db.tree == nil {
		return false, database.ErrClosed
	}
	return db.tree.Has(entry{key: key}), nil
}

func (db *Database) Get(key []byte) ([]byte, error) {
	db.lock.RLock()
	defer db.lock.RUnlock()

	if db.tree == nil {
		return nil, database.ErrClosed
	}
	e, ok := db.tree.Get(entry{key: key})
	if !ok {
		return nil, database.ErrNotFound
	}
	return slices.Clone(e.value), nil
}

func (db *Database) Put(key []byte, value []byte) error {
	db.lock.Lock()
	defer db.lock.Unlock()

	if db.tree == nil {
		return database.ErrClosed
	}
	db.tree.ReplaceOrInsert(entry{
		key:   slices.Clone(key),
		value: nonNil(value),
	})
	return nil
}

func (db *Database) Delete(key []byte) error {
	db.lock.Lock()
	defer db.lock.Unlock()

	if db.tree == nil {
		return database.ErrClosed
	}
	db.tree.Delete(entry{key: key})
	return nil
}

func (db *Database) NewBatch() database.Batch {
	return &batch{db: db}
}

// NewIteratorWithPrefix iterates over a snapshot of the keys
// starting with [prefix]. Later writes are not observed.
func (db *Database) NewIteratorWithPrefix(prefix []byte) database.Iterator {
	db.lock.RLock()
	defer db.lock.RUnlock()

	if db.tree == nil {
		return &database.IteratorError{
			Err: database.ErrClosed,
		}
	}

	var entries []entry
	db.tree.AscendGreaterOrEqual(entry{key: prefix}, func(e entry) bool {
		if !bytes.HasPrefix(e.key, prefix) {
			return false
		}
		entries = append(entries, e)
		return true
	})
	return &iterator{
		db:      db,
		entries: entries,
	}
}

func (db *Database) HealthCheck(context.Context) (interface{}, error) {
	if db.isClosed() {
		return nil, database.ErrClosed
	}
	return nil, nil
}

// nonNil copies [value] so that an empty value is stored as an empty slice.
func nonNil(value []byte) []byte {
	if value == nil {
		return []byte{}
	}
	return slices.Clone(value)
}

// batch applies every buffered op under a single write lock so readers never
// observe a partially written batch.
type batch struct {
	database.BatchOps

	db *Database
}

func (b *batch) Write() error {
	b.db.lock.Lock()
	defer b.db.lock.Unlock()

	if b.db.tree == nil {
		return database.ErrClosed
	}

	for _, op := range b.Ops {
		if op.Delete {
			b.db.tree.Delete(entry{key: op.Key})
			continue
		}
		b.db.tree.ReplaceOrInsert(entry{
			key:   op.Key,
			value: nonNil(op.Value),
		})
	}
	return nil
}

func (b *batch) Inner() database.Batch {
	return b
}

type iterator struct {
	db          *Database
	initialized bool
	entries     []entry
	err         error
}

func (it *iterator) Next() bool {
	if it.db.isClosed() {
		it.entries = nil
		it.err = database.ErrClosed
		return false
	}

	if !it.initialized {
		it.initialized = true
		return len(it.entries) > 0
	}
	if len(it.entries) > 0 {
		it.entries = it.entries[1:]
	}
	return len(it.entries) > 0
}

func (it *iterator) Error() error {
	return it.err
}

func (it *iterator) Key() []byte {
	if len(it.entries) > 0 {
		return slices.Clone(it.entries[0].key)
	}
	return nil
}

func (it *iterator) Value() []byte {
	if len(it.entries) > 0 {
		return slices.Clone(it.entries[0].value)
	}
	return nil
}

func (it *iterator) Release() {
	it.entries = nil
}
