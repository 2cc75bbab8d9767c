// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package corruptabledb

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/LAVASoftWorks/vkct-core/database"
	"github.com/LAVASoftWorks/vkct-core/database/dbtest"
	"github.com/LAVASoftWorks/vkct-core/database/memdb"
)

var errTest = errors.New("non-nil error")

func TestInterface(t *testing.T) {
	for name, test := range dbtest.Tests {
		t.Run(name, func(t *testing.T) {
			test(t, New(memdb.New()))
		})
	}
}

func TestCorruption(t *testing.T) {
	key := []byte("hello")
	value := []byte("world")
	tests := map[string]func(db database.Database) error{
		"corrupted has": func(db database.Database) error {
			_, err := db.Has(key)
			return err
		},
		"corrupted get": func(db database.Database) error {
			_, err := db.Get(key)
			return err
		},
		"corrupted put": func(db database.Database) error {
			return db.Put(key, value)
		},
		"corrupted delete": func(db database.Database) error {
			return db.Delete(key)
		},
		"corrupted batch": func(db database.Database) error {
			b := db.NewBatch()
			require.NoError(t, b.Put(key, value))
			return b.Write()
		},
		"corrupted healthcheck": func(db database.Database) error {
			_, err := db.HealthCheck(context.Background())
			return err
		},
	}

	corruptableDB := New(memdb.New())
	require.ErrorIs(t, corruptableDB.handleError(errTest), errTest)
	for name, testFn := range tests {
		t.Run(name, func(t *testing.T) {
			err := testFn(corruptableDB)
			require.ErrorIs(t, err, database.ErrAvoidCorruption)
			require.ErrorIs(t, err, errTest)
		})
	}
}

func TestNotFoundIsNotCorruption(t *testing.T) {
	require := require.New(t)

	db := New(memdb.New())
	_, err := db.Get([]byte("missing"))
	require.ErrorIs(err, database.ErrNotFound)

	require.NoError(db.Put([]byte("k"), []byte("v")))
	got, err := db.Get([]byte("k"))
	require.NoError(err)
	require.Equal([]byte("v"), got)
}
