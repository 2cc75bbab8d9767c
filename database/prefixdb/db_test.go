// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package prefixdb

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
			db := memdb.New()
			test(t, New([]byte("hello"), db))
			test(t, New([]byte("world"), db))
			test(t, New([]byte("wor"), New([]byte("ld"), db)))
		})
	}
}

func TestPartitionsAreIsolated(t *testing.T) {
	require := require.New(t)

	base := memdb.New()
	accounts := New([]byte("accounts"), base)
	nonces := New([]byte("nonces"), base)

	require.NoError(accounts.Put([]byte("key"), []byte("account")))
	_, err := nonces.Get([]byte("key"))
	require.ErrorIs(err, database.ErrNotFound)

	// Closing a partition leaves the base open.
	require.NoError(accounts.Close())
	require.NoError(nonces.Put([]byte("key"), []byte("nonce")))

	count, err := database.Count(base, nil)
	require.NoError(err)
	require.Equal(2, count)
}
