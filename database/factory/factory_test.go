// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package factory

import (
	"path/filepath"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"

	"github.com/LAVASoftWorks/vkct-core/database/leveldb"
	"github.com/LAVASoftWorks/vkct-core/database/memdb"
	"github.com/LAVASoftWorks/vkct-core/database/pebbledb"
	"github.com/LAVASoftWorks/vkct-core/utils/logging"
)

func TestNewDatabase(t *testing.T) {
	for _, name := range []string{leveldb.Name, memdb.Name, pebbledb.Name} {
		t.Run(name, func(t *testing.T) {
			require := require.New(t)

			db, err := NewDatabase(
				DatabaseConfig{
					Name: name,
					Path: filepath.Join(t.TempDir(), name),
				},
				prometheus.NewRegistry(),
				logging.NoLog{},
			)
			require.NoError(err)
			defer db.Close()

			require.NoError(db.Put([]byte("key"), []byte("value")))
			value, err := db.Get([]byte("key"))
			require.NoError(err)
			require.Equal([]byte("value"), value)
		})
	}
}

func TestMetricsUseCallerNamespace(t *testing.T) {
	require := require.New(t)

	registry := prometheus.NewRegistry()
	db, err := NewDatabase(
		DatabaseConfig{Name: memdb.Name},
		prometheus.WrapRegistererWithPrefix("db_", registry),
		logging.NoLog{},
	)
	require.NoError(err)
	defer db.Close()

	require.NoError(db.Put([]byte("key"), []byte("value")))

	families, err := registry.Gather()
	require.NoError(err)
	names := make([]string, 0, len(families))
	for _, family := range families {
		names = append(names, family.GetName())
	}
	require.Contains(names, "db_calls")
	require.Contains(names, "db_duration")
	require.NotContains(names, "db_db_calls")
}

func TestNewDatabaseUnknownType(t *testing.T) {
	_, err := NewDatabase(
		DatabaseConfig{Name: "rocksdb"},
		prometheus.NewRegistry(),
		logging.NoLog{},
	)
	require.ErrorContains(t, err, "rocksdb")
}

func TestReadOnlyDiscardsWrites(t *testing.T) {
	require := require.New(t)

	path := filepath.Join(t.TempDir(), "db")
	db, err := NewDatabase(
		DatabaseConfig{Name: leveldb.Name, Path: path, ReadOnly: true},
		prometheus.NewRegistry(),
		logging.NoLog{},
	)
	require.NoError(err)
	require.NoError(db.Put([]byte("key"), []byte("value")))
	require.NoError(db.Close())

	db, err = NewDatabase(
		DatabaseConfig{Name: leveldb.Name, Path: path},
		prometheus.NewRegistry(),
		logging.NoLog{},
	)
	require.NoError(err)
	defer db.Close()

	has, err := db.Has([]byte("key"))
	require.NoError(err)
	require.False(has)
}
