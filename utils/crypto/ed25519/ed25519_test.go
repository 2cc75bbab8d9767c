// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package ed25519

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/LAVASoftWorks/vkct-core/utils/perms"
)

func TestSignVerify(t *testing.T) {
	require := require.New(t)

	key, err := NewPrivateKey()
	require.NoError(err)

	msg := []byte("initialize-token-registry")
	sig, err := key.Sign(msg)
	require.NoError(err)
	require.Len(sig, SignatureLen)

	pk := key.PublicKey()
	require.True(pk.Verify(msg, sig))
	require.False(pk.Verify([]byte("add-token"), sig))
	require.False(pk.Verify(msg, sig[1:]))

	other, err := NewPrivateKey()
	require.NoError(err)
	require.False(other.PublicKey().Verify(msg, sig))
}

func TestAddressIsPublicKey(t *testing.T) {
	require := require.New(t)

	key := FromSeed(make([]byte, 32))
	addr := key.Address()
	require.Equal(key.PublicKey().Bytes(), addr.Bytes())

	pk := PublicKeyFromID(addr)
	sig, err := key.Sign([]byte("msg"))
	require.NoError(err)
	require.True(pk.Verify([]byte("msg"), sig))
}

func TestParseKeys(t *testing.T) {
	require := require.New(t)

	_, err := ToPublicKey(make([]byte, PublicKeyLen-1))
	require.ErrorIs(err, ErrWrongPublicKeySize)

	_, err = ToPrivateKey(make([]byte, PublicKeyLen))
	require.ErrorIs(err, ErrWrongPrivateKeySize)

	key, err := NewPrivateKey()
	require.NoError(err)

	parsed, err := ToPrivateKey(key.Bytes())
	require.NoError(err)
	require.Equal(key.Address(), parsed.Address())

	// A private key whose public half was tampered with is refused.
	tampered := append([]byte(nil), key.Bytes()...)
	tampered[PrivateKeyLen-1] ^= 0x01
	_, err = ToPrivateKey(tampered)
	require.ErrorIs(err, errMismatchedPublicKey)
}

func TestKeyFile(t *testing.T) {
	require := require.New(t)

	path := filepath.Join(t.TempDir(), "keys", "admin.json")
	key, err := NewPrivateKey()
	require.NoError(err)

	require.NoError(WriteKeyFile(path, key))

	info, err := os.Stat(path)
	require.NoError(err)
	require.Equal(os.FileMode(perms.Secret), info.Mode().Perm())

	loaded, err := LoadKeyFile(path)
	require.NoError(err)
	require.Equal(key.Bytes(), loaded.Bytes())

	// Never clobber an existing key.
	require.Error(WriteKeyFile(path, key))
}

func TestLoadKeyFileErrors(t *testing.T) {
	dir := t.TempDir()
	tests := []struct {
		name        string
		contents    string
		expectedErr error
	}{
		{
			name:        "too short",
			contents:    "[1,2,3]",
			expectedErr: ErrWrongPrivateKeySize,
		},
		{
			name:        "out of range byte",
			contents:    "[256]",
			expectedErr: errInvalidKeyFile,
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			path := filepath.Join(dir, test.name)
			require.NoError(t, os.WriteFile(path, []byte(test.contents), perms.Secret))

			_, err := LoadKeyFile(path)
			require.ErrorIs(t, err, test.expectedErr)
		})
	}

	_, err := LoadKeyFile(filepath.Join(dir, "missing"))
	require.ErrorIs(t, err, os.ErrNotExist)
}
