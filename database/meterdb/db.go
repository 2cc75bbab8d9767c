// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package meterdb

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/LAVASoftWorks/vkct-core/database"
	"github.com/LAVASoftWorks/vkct-core/utils/wrappers"
)

const (
	methodLabel = "method"

	hasOp      = "has"
	getOp      = "get"
	putOp      = "put"
	deleteOp   = "delete"
	newBatchOp = "new_batch"
	newIterOp  = "new_iterator"
	healthOp   = "health_check"
	closeOp    = "close"
	writeOp    = "batch_write"
)

var (
	_ database.Database = (*Database)(nil)
	_ database.Batch    = (*batch)(nil)

	methodLabels = []string{methodLabel}
)

// Database tracks the amount of time each operation takes and how many bytes
// are read/written to the underlying database instance.
type Database struct {
	db database.Database

	calls    *prometheus.CounterVec
	duration *prometheus.CounterVec
	size     *prometheus.CounterVec
}

// New returns a new database with added metrics
func New(reg prometheus.Registerer, db database.Database) (*Database, error) {
	meterDB := &Database{
		db: db,
		calls: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "calls",
				Help: "number of calls to the database",
			},
			methodLabels,
		),
		duration: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "duration",
				Help: "time spent in database calls (ns)",
			},
			methodLabels,
		),
		size: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "size",
				Help: "size of data passed in database calls",
			},
			methodLabels,
		),
	}
	errs := wrappers.Errs{}
	errs.Add(
		reg.Register(meterDB.calls),
		reg.Register(meterDB.duration),
		reg.Register(meterDB.size),
	)
	return meterDB, errs.Err
}

func (db *Database) observe(method string, start time.Time, size int) {
	labels := prometheus.Labels{methodLabel: method}
	db.calls.With(labels).Inc()
	db.duration.With(labels).Add(float64(time.Since(start)))
	if size > 0 {
		db.size.With(labels).Add(float64(size))
	}
}

func (db *Database) Has(key []byte) (bool, error) {
	start := time.Now()
	has, err := db.db.Has(key)
	db.observe(hasOp, start, len(key))
	return has, err
}

func (db *Database) Get(key []byte) ([]byte, error) {
	start := time.Now()
	value, err := db.db.Get(key)
	db.observe(getOp, start, len(key)+len(value))
	return value, err
}

func (db *Database) Put(key, value []byte) error {
	start := time.Now()
	err := db.db.Put(key, value)
	db.observe(putOp, start, len(key)+len(value))
	return err
}

func (db *Database) Delete(key []byte) error {
	start := time.Now()
	err := db.db.Delete(key)
	db.observe(deleteOp, start, len(key))
	return err
}

func (db *Database) NewBatch() database.Batch {
	start := time.Now()
	b := &batch{
		batch: db.db.NewBatch(),
		db:    db,
	}
	db.observe(newBatchOp, start, 0)
	return b
}

func (db *Database) NewIteratorWithPrefix(prefix []byte) database.Iterator {
	start := time.Now()
	it := db.db.NewIteratorWithPrefix(prefix)
	db.observe(newIterOp, start, len(prefix))
	return it
}

func (db *Database) HealthCheck(ctx context.Context) (interface{}, error) {
	start := time.Now()
	result, err := db.db.HealthCheck(ctx)
	db.observe(healthOp, start, 0)
	return result, err
}

func (db *Database) Close() error {
	start := time.Now()
	err := db.db.Close()
	db.observe(closeOp, start, 0)
	return err
}

type batch struct {
	batch database.Batch
	db    *Database
}

func (b *batch) Put(key, value []byte) error {
	return b.batch.Put(key, value)
}

func (b *batch) Delete(key []byte) error {
	return b.batch.Delete(key)
}

func (b *batch) Size() int {
	return b.batch.Size()
}

func (b *batch) Write() error {
	start := time.Now()
	err := b.batch.Write()
	b.db.observe(writeOp, start, b.batch.Size())
	return err
}

func (b *batch) Reset() {
	b.batch.Reset()
}

func (b *batch) Replay(w database.KeyValueWriterDeleter) error {
	return b.batch.Replay(w)
}

func (b *batch) Inner() database.Batch {
	return b.batch
}
