// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package dbtest holds the conformance suite every database backend must pass.
package dbtest

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/LAVASoftWorks/vkct-core/database"
)

// Tests is a list of all database tests
var Tests = map[string]func(t *testing.T, db database.Database){
	"SimpleKeyValue":       TestSimpleKeyValue,
	"OverwriteKeyValue":    TestOverwriteKeyValue,
	"EmptyKey":             TestEmptyKey,
	"KeyEmptyValue":        TestKeyEmptyValue,
	"SimpleKeyValueClosed": TestSimpleKeyValueClosed,
	"BatchPut":             TestBatchPut,
	"BatchDelete":          TestBatchDelete,
	"BatchReset":           TestBatchReset,
	"BatchReplay":          TestBatchReplay,
	"BatchIsAtomic":        TestBatchIsAtomic,
	"IteratorPrefix":       TestIteratorPrefix,
	"IteratorClosed":       TestIteratorClosed,
	"MemorySafetyDatabase": TestMemorySafetyDatabase,
	"ClearPrefix":          TestClearPrefix,
}

// TestSimpleKeyValue tests to make sure that simple Put + Get + Delete + Has
// calls return the expected values.
func TestSimpleKeyValue(t *testing.T, db database.Database) {
	require := require.New(t)

	key := []byte("hello")
	value := []byte("world")

	has, err := db.Has(key)
	require.NoError(err)
	require.False(has)

	_, err = db.Get(key)
	require.ErrorIs(err, database.ErrNotFound)

	require.NoError(db.Delete(key))
	require.NoError(db.Put(key, value))

	has, err = db.Has(key)
	require.NoError(err)
	require.True(has)

	v, err := db.Get(key)
	require.NoError(err)
	require.Equal(value, v)

	require.NoError(db.Delete(key))

	has, err = db.Has(key)
	require.NoError(err)
	require.False(has)

	_, err = db.Get(key)
	require.ErrorIs(err, database.ErrNotFound)

	require.NoError(db.Delete(key))
}

func TestOverwriteKeyValue(t *testing.T, db database.Database) {
	require := require.New(t)

	key := []byte("hello")
	value1 := []byte("world1")
	value2 := []byte("world2")

	require.NoError(db.Put(key, value1))
	require.NoError(db.Put(key, value2))

	gotValue, err := db.Get(key)
	require.NoError(err)
	require.Equal(value2, gotValue)
}

func TestEmptyKey(t *testing.T, db database.Database) {
	require := require.New(t)

	var (
		nilKey   = []byte(nil)
		emptyKey = []byte{}
		val1     = []byte("hi")
		val2     = []byte("hello")
	)

	// Test that nil key can be retrieved by empty key
	require.NoError(db.Put(nilKey, val1))
	value, err := db.Get(emptyKey)
	require.NoError(err)
	require.Equal(val1, value)

	// Test that empty key can be retrieved by nil key
	require.NoError(db.Put(emptyKey, val2))
	value, err = db.Get(nilKey)
	require.NoError(err)
	require.Equal(val2, value)
}

func TestKeyEmptyValue(t *testing.T, db database.Database) {
	require := require.New(t)

	key := []byte("hello")
	val := []byte(nil)

	_, err := db.Get(key)
	require.ErrorIs(err, database.ErrNotFound)

	require.NoError(db.Put(key, val))

	value, err := db.Get(key)
	require.NoError(err)
	require.Empty(value)
}

// TestSimpleKeyValueClosed tests to make sure that Put + Get + Delete + Has
// calls return the correct error when the database has been closed.
func TestSimpleKeyValueClosed(t *testing.T, db database.Database) {
	require := require.New(t)

	key := []byte("hello")
	value := []byte("world")

	require.NoError(db.Put(key, value))
	require.NoError(db.Close())

	_, err := db.Has(key)
	require.ErrorIs(err, database.ErrClosed)

	_, err = db.Get(key)
	require.ErrorIs(err, database.ErrClosed)

	require.ErrorIs(db.Put(key, value), database.ErrClosed)
	require.ErrorIs(db.Delete(key), database.ErrClosed)
	require.ErrorIs(db.Close(), database.ErrClosed)
}

func TestBatchPut(t *testing.T, db database.Database) {
	require := require.New(t)

	key := []byte("hello")
	value := []byte("world")

	batch := db.NewBatch()
	require.NotNil(batch)

	require.NoError(batch.Put(key, value))
	require.Positive(batch.Size())

	// Nothing is visible before Write
	has, err := db.Has(key)
	require.NoError(err)
	require.False(has)

	require.NoError(batch.Write())

	v, err := db.Get(key)
	require.NoError(err)
	require.Equal(value, v)
}

func TestBatchDelete(t *testing.T, db database.Database) {
	require := require.New(t)

	key := []byte("hello")
	value := []byte("world")

	require.NoError(db.Put(key, value))

	batch := db.NewBatch()
	require.NoError(batch.Delete(key))
	require.NoError(batch.Write())

	has, err := db.Has(key)
	require.NoError(err)
	require.False(has)

	_, err = db.Get(key)
	require.ErrorIs(err, database.ErrNotFound)
}

func TestBatchReset(t *testing.T, db database.Database) {
	require := require.New(t)

	key := []byte("hello")
	value := []byte("world")

	batch := db.NewBatch()
	require.NoError(batch.Put(key, value))

	batch.Reset()
	require.Zero(batch.Size())
	require.NoError(batch.Write())

	has, err := db.Has(key)
	require.NoError(err)
	require.False(has)
}

type keyValue struct {
	key    []byte
	value  []byte
	delete bool
}

type recorder struct {
	ops []keyValue
}

func (r *recorder) Put(key, value []byte) error {
	r.ops = append(r.ops, keyValue{key: key, value: value})
	return nil
}

func (r *recorder) Delete(key []byte) error {
	r.ops = append(r.ops, keyValue{key: key, delete: true})
	return nil
}

func TestBatchReplay(t *testing.T, db database.Database) {
	require := require.New(t)

	key1 := []byte("hello1")
	value1 := []byte("world1")
	key2 := []byte("hello2")

	batch := db.NewBatch()
	require.NoError(batch.Put(key1, value1))
	require.NoError(batch.Delete(key2))

	r := &recorder{}
	require.NoError(batch.Replay(r))
	require.Equal(
		[]keyValue{
			{key: key1, value: value1},
			{key: key2, delete: true},
		},
		r.ops,
	)
}

// TestBatchIsAtomic checks that a batch mixing puts and deletes lands as a
// whole.
func TestBatchIsAtomic(t *testing.T, db database.Database) {
	require := require.New(t)

	require.NoError(db.Put([]byte("a"), []byte("old")))

	batch := db.NewBatch()
	require.NoError(batch.Delete([]byte("a")))
	require.NoError(batch.Put([]byte("b"), []byte("1")))
	require.NoError(batch.Put([]byte("c"), []byte("2")))

	has, err := db.Has([]byte("b"))
	require.NoError(err)
	require.False(has)

	require.NoError(batch.Write())

	has, err = db.Has([]byte("a"))
	require.NoError(err)
	require.False(has)

	for key, want := range map[string]string{"b": "1", "c": "2"} {
		got, err := db.Get([]byte(key))
		require.NoError(err)
		require.Equal([]byte(want), got)
	}
}

func TestIteratorPrefix(t *testing.T, db database.Database) {
	require := require.New(t)

	require.NoError(db.Put([]byte("goodbye"), []byte("world1")))
	require.NoError(db.Put([]byte("hello2"), []byte("world3")))
	require.NoError(db.Put([]byte("hello1"), []byte("world2")))
	require.NoError(db.Put([]byte("joy"), []byte("world4")))

	iterator := db.NewIteratorWithPrefix([]byte("h"))
	defer iterator.Release()

	require.True(iterator.Next())
	require.Equal([]byte("hello1"), iterator.Key())
	require.Equal([]byte("world2"), iterator.Value())

	require.True(iterator.Next())
	require.Equal([]byte("hello2"), iterator.Key())
	require.Equal([]byte("world3"), iterator.Value())

	require.False(iterator.Next())
	require.Nil(iterator.Key())
	require.Nil(iterator.Value())
	require.NoError(iterator.Error())

	count, err := database.Count(db, nil)
	require.NoError(err)
	require.Equal(4, count)
}

func TestIteratorClosed(t *testing.T, db database.Database) {
	require := require.New(t)

	require.NoError(db.Put([]byte("hello1"), []byte("world1")))
	require.NoError(db.Close())

	iterator := db.NewIteratorWithPrefix(nil)
	require.False(iterator.Next())
	require.Nil(iterator.Key())
	require.Nil(iterator.Value())
	require.ErrorIs(iterator.Error(), database.ErrClosed)
	iterator.Release()
}

// TestMemorySafetyDatabase ensures it is safe to modify a key after passing it
// to Database.Put and Database.Get.
func TestMemorySafetyDatabase(t *testing.T, db database.Database) {
	require := require.New(t)

	key := []byte("1key")
	keyCopy := []byte("1key")
	value := []byte("value")
	require.NoError(db.Put(key, value))

	key[0] = '2'
	_, err := db.Get(key)
	require.ErrorIs(err, database.ErrNotFound)

	gotVal, err := db.Get(keyCopy)
	require.NoError(err)
	require.Equal(value, gotVal)

	value[0] = 'V'
	gotVal, err = db.Get(keyCopy)
	require.NoError(err)
	require.Equal([]byte("value"), gotVal)
}

func TestClearPrefix(t *testing.T, db database.Database) {
	require := require.New(t)

	require.NoError(db.Put([]byte("acct/1"), []byte("a")))
	require.NoError(db.Put([]byte("acct/2"), []byte("b")))
	require.NoError(db.Put([]byte("nonce/1"), []byte("c")))

	require.NoError(database.ClearPrefix(db, []byte("acct/")))

	count, err := database.Count(db, []byte("acct/"))
	require.NoError(err)
	require.Zero(count)

	has, err := db.Has([]byte("nonce/1"))
	require.NoError(err)
	require.True(has)
}
