// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package keychain

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/LAVASoftWorks/vkct-core/ids"
	"github.com/LAVASoftWorks/vkct-core/utils/crypto/ed25519"
)

func seededKey(b byte) *ed25519.PrivateKey {
	seed := make([]byte, 32)
	seed[0] = b
	return ed25519.FromSeed(seed)
}

func TestGet(t *testing.T) {
	require := require.New(t)

	key := seededKey(1)
	kc := New(key)

	signer, ok := kc.Get(key.Address())
	require.True(ok)
	require.Equal(key.Address(), signer.Address())

	_, ok = kc.Get(ids.Empty)
	require.False(ok)
}

func TestAddressesSorted(t *testing.T) {
	require := require.New(t)

	kc := New(seededKey(1), seededKey(2), seededKey(3))
	addrs := kc.Addresses()
	require.Len(addrs, 3)
	for i := 1; i < len(addrs); i++ {
		require.Negative(addrs[i-1].Compare(addrs[i]))
	}
}

func TestOnly(t *testing.T) {
	require := require.New(t)

	_, err := Only(New())
	require.ErrorIs(err, ErrUnknownSigner)

	_, err = Only(New(seededKey(1), seededKey(2)))
	require.ErrorIs(err, ErrUnknownSigner)

	key := seededKey(7)
	signer, err := Only(New(key))
	require.NoError(err)
	require.Equal(key.Address(), signer.Address())
}

func TestLoad(t *testing.T) {
	require := require.New(t)

	path := filepath.Join(t.TempDir(), "admin.json")
	key := seededKey(9)
	require.NoError(ed25519.WriteKeyFile(path, key))

	kc, err := Load(path)
	require.NoError(err)
	require.Equal([]ids.ID{key.Address()}, kc.Addresses())

	_, err = Load(filepath.Join(t.TempDir(), "missing.json"))
	require.Error(err)
}
