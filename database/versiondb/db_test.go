// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package versiondb

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/LAVASoftWorks/vkct-core/database"
	"github.com/LAVASoftWorks/vkct-core/database/dbtest"
	"github.com/LAVASoftWorks/vkct-core/database/memdb"
)

func TestInterface(t *testing.T) {
	for name, test := range dbtest.Tests {
		t.Run(name, func(t *testing.T) {
			test(t, New(memdb.New()))
		})
	}
}

func TestCommit(t *testing.T) {
	require := require.New(t)

	base := memdb.New()
	db := New(base)

	key := []byte("hello")
	value := []byte("world")

	require.NoError(db.Put(key, value))
	require.Equal(1, db.Pending())

	has, err := base.Has(key)
	require.NoError(err)
	require.False(has)

	require.NoError(db.Commit())
	require.Zero(db.Pending())

	got, err := base.Get(key)
	require.NoError(err)
	require.Equal(value, got)
}

func TestAbort(t *testing.T) {
	require := require.New(t)

	base := memdb.New()
	require.NoError(base.Put([]byte("kept"), []byte("old")))

	db := New(base)
	require.NoError(db.Put([]byte("kept"), []byte("new")))
	require.NoError(db.Put([]byte("added"), []byte("x")))

	got, err := db.Get([]byte("kept"))
	require.NoError(err)
	require.Equal([]byte("new"), got)

	db.Abort()

	got, err = db.Get([]byte("kept"))
	require.NoError(err)
	require.Equal([]byte("old"), got)

	has, err := base.Has([]byte("added"))
	require.NoError(err)
	require.False(has)
}

func TestDeleteShadowsBase(t *testing.T) {
	require := require.New(t)

	base := memdb.New()
	require.NoError(base.Put([]byte("a"), []byte("1")))
	require.NoError(base.Put([]byte("b"), []byte("2")))

	db := New(base)
	require.NoError(db.Delete([]byte("a")))
	require.NoError(db.Put([]byte("c"), []byte("3")))

	_, err := db.Get([]byte("a"))
	require.ErrorIs(err, database.ErrNotFound)

	it := db.NewIteratorWithPrefix(nil)
	defer it.Release()

	var keys []string
	for it.Next() {
		keys = append(keys, string(it.Key()))
	}
	require.NoError(it.Error())
	require.Equal([]string{"b", "c"}, keys)

	require.NoError(db.Commit())
	has, err := base.Has([]byte("a"))
	require.NoError(err)
	require.False(has)
}
