// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package leveldb

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"sync/atomic"

	"github.com/syndtr/goleveldb/leveldb"
	"github.com/syndtr/goleveldb/leveldb/filter"
	"github.com/syndtr/goleveldb/leveldb/iterator"
	"github.com/syndtr/goleveldb/leveldb/opt"
	"github.com/syndtr/goleveldb/leveldb/util"
	"go.uber.org/zap"

	lerrors "github.com/syndtr/goleveldb/leveldb/errors"

	"github.com/LAVASoftWorks/vkct-core/database"
	"github.com/LAVASoftWorks/vkct-core/utils/logging"
	"github.com/LAVASoftWorks/vkct-core/utils/units"
)

const (
	Name = "leveldb"

	// levelDBByteOverhead is the number of bytes of constant overhead that
	// should be added to a batch size per operation.
	levelDBByteOverhead = 8
)

var (
	_ database.Database = (*Database)(nil)
	_ database.Batch    = (*batch)(nil)
	_ database.Iterator = (*iter)(nil)

	DefaultConfig = Config{
		BlockCacheCapacity:     12 * units.MiB,
		WriteBuffer:            6 * units.MiB,
		OpenFilesCacheCapacity: 64,
		BitsPerKey:             10,
		Sync:                   true,
	}
)

type Config struct {
	BlockCacheCapacity     int  `json:"blockCacheCapacity"`
	WriteBuffer            int  `json:"writeBuffer"`
	OpenFilesCacheCapacity int  `json:"openFilesCacheCapacity"`
	BitsPerKey             int  `json:"bitsPerKey"`
	Sync                   bool `json:"sync"`
}

// Database is a goleveldb-backed persistent ledger store.
type Database struct {
	db        *leveldb.DB
	closed    atomic.Bool
	writeOpts *opt.WriteOptions
}

// New opens (or recovers) a leveldb database at [file].
func New(file string, configBytes []byte, log logging.Logger) (*Database, error) {
	cfg := DefaultConfig
	if len(configBytes) > 0 {
		if err := json.Unmarshal(configBytes, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse db config: %w", err)
		}
	}

	log.Info("opening leveldb",
		zap.String("path", file),
		zap.Reflect("config", cfg),
	)

	opts := &opt.Options{
		BlockCacheCapacity:     cfg.BlockCacheCapacity,
		WriteBuffer:            cfg.WriteBuffer,
		OpenFilesCacheCapacity: cfg.OpenFilesCacheCapacity,
		Filter:                 filter.NewBloomFilter(cfg.BitsPerKey),
	}
	db, err := leveldb.OpenFile(file, opts)
	if _, corrupted := err.(*lerrors.ErrCorrupted); corrupted {
		log.Warn("recovering corrupted leveldb",
			zap.String("path", file),
			zap.Error(err),
		)
		db, err = leveldb.RecoverFile(file, nil)
	}
	if err != nil {
		return nil, err
	}
	return &Database{
		db:        db,
		writeOpts: &opt.WriteOptions{Sync: cfg.Sync},
	}, nil
}

func (db *Database) Has(key []byte) (bool, error) {
	has, err := db.db.Has(key, nil)
	return has, updateError(err)
}

func (db *Database) Get(key []byte) ([]byte, error) {
	value, err := db.db.Get(key, nil)
	return value, updateError(err)
}

func (db *Database) Put(key []byte, value []byte) error {
	return updateError(db.db.Put(key, value, db.writeOpts))
}

func (db *Database) Delete(key []byte) error {
	return updateError(db.db.Delete(key, db.writeOpts))
}

func (db *Database) NewBatch() database.Batch {
	return &batch{db: db}
}

func (db *Database) NewIteratorWithPrefix(prefix []byte) database.Iterator {
	return &iter{
		Iterator: db.db.NewIterator(util.BytesPrefix(prefix), nil),
		db:       db,
	}
}

func (db *Database) HealthCheck(context.Context) (interface{}, error) {
	if db.closed.Load() {
		return nil, database.ErrClosed
	}
	return nil, nil
}

func (db *Database) Close() error {
	db.closed.Store(true)
	return updateError(db.db.Close())
}

// batch wraps a leveldb batch, which is committed as a single journal record.
type batch struct {
	leveldb.Batch
	db   *Database
	size int
}

func (b *batch) Put(key, value []byte) error {
	b.Batch.Put(key, value)
	b.size += len(key) + len(value) + levelDBByteOverhead
	return nil
}

func (b *batch) Delete(key []byte) error {
	b.Batch.Delete(key)
	b.size += len(key) + levelDBByteOverhead
	return nil
}

func (b *batch) Size() int {
	return b.size
}

func (b *batch) Write() error {
	return updateError(b.db.db.Write(&b.Batch, b.db.writeOpts))
}

func (b *batch) Reset() {
	b.Batch.Reset()
	b.size = 0
}

func (b *batch) Replay(w database.KeyValueWriterDeleter) error {
	replay := &replayer{writerDeleter: w}
	if err := b.Batch.Replay(replay); err != nil {
		return updateError(err)
	}
	return replay.err
}

func (b *batch) Inner() database.Batch {
	return b
}

type replayer struct {
	writerDeleter database.KeyValueWriterDeleter
	err           error
}

func (r *replayer) Put(key, value []byte) {
	if r.err != nil {
		return
	}
	r.err = r.writerDeleter.Put(key, value)
}

func (r *replayer) Delete(key []byte) {
	if r.err != nil {
		return
	}
	r.err = r.writerDeleter.Delete(key)
}

type iter struct {
	iterator.Iterator
	db  *Database
	key []byte
	val []byte
	err error
}

func (it *iter) Next() bool {
	if it.db.closed.Load() {
		it.key = nil
		it.val = nil
		it.err = database.ErrClosed
		return false
	}

	hasNext := it.Iterator.Next()
	if hasNext {
		it.key = slices.Clone(it.Iterator.Key())
		it.val = slices.Clone(it.Iterator.Value())
	} else {
		it.key = nil
		it.val = nil
	}
	return hasNext
}

func (it *iter) Error() error {
	if it.err != nil {
		return it.err
	}
	return updateError(it.Iterator.Error())
}

func (it *iter) Key() []byte {
	return it.key
}

func (it *iter) Value() []byte {
	return it.val
}

// updateError maps goleveldb errors onto the database package's errors.
func updateError(err error) error {
	switch {
	case errors.Is(err, leveldb.ErrClosed):
		return database.ErrClosed
	case errors.Is(err, leveldb.ErrNotFound):
		return database.ErrNotFound
	default:
		return err
	}
}
