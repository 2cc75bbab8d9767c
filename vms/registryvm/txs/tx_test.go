// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package txs

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/LAVASoftWorks/vkct-core/ids"
	"github.com/LAVASoftWorks/vkct-core/utils/crypto/ed25519"
	"github.com/LAVASoftWorks/vkct-core/utils/hashing"
	"github.com/LAVASoftWorks/vkct-core/vms/registryvm/state"
)

var (
	registry = ids.ID{0x0f}
	entry    = ids.ID{0xee}
)

func newKey(t *testing.T) *ed25519.PrivateKey {
	key, err := ed25519.NewPrivateKey()
	require.NoError(t, err)
	return key
}

func TestSignParseVerify(t *testing.T) {
	tests := []struct {
		name string
		utx  Unsigned
	}{
		{
			name: "initialize",
			utx: &Initialize{
				BaseTx: BaseTx{Nonce: 0, Registry: registry},
				Kind:   state.TokenKind,
			},
		},
		{
			name: "add entry",
			utx: &AddEntry{
				BaseTx: BaseTx{Nonce: 7, Registry: registry},
				Kind:   state.CollectionKind,
				Entry:  entry,
			},
		},
		{
			name: "set pause",
			utx: &SetPause{
				BaseTx: BaseTx{Nonce: 1, Registry: registry},
				Paused: true,
			},
		},
		{
			name: "close",
			utx: &Close{
				BaseTx: BaseTx{Nonce: 2, Registry: registry},
				Kind:   state.TokenKind,
			},
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			require := require.New(t)

			key := newKey(t)
			tx, err := Sign(test.utx, key)
			require.NoError(err)
			require.Equal(key.Address(), tx.Signer)
			require.NoError(tx.Verify())

			b, err := tx.Bytes()
			require.NoError(err)

			parsed, err := Parse(b)
			require.NoError(err)
			require.Equal(tx, parsed)
			require.NoError(parsed.Verify())

			txID, err := parsed.ID()
			require.NoError(err)
			require.Equal(ids.ID(hashing.ComputeHash256Array(b)), txID)
		})
	}
}

func TestVerifyRejectsTampering(t *testing.T) {
	require := require.New(t)

	tx, err := Sign(&AddEntry{
		BaseTx: BaseTx{Nonce: 3, Registry: registry},
		Kind:   state.TokenKind,
		Entry:  entry,
	}, newKey(t))
	require.NoError(err)

	tx.Unsigned.(*AddEntry).Entry = ids.ID{0x01}
	require.ErrorIs(tx.Verify(), ed25519.ErrInvalidSignature)

	other, err := Sign(&SetPause{BaseTx: BaseTx{Registry: registry}}, newKey(t))
	require.NoError(err)
	other.Signer = newKey(t).Address()
	require.ErrorIs(other.Verify(), ed25519.ErrInvalidSignature)
}

func TestParseErrors(t *testing.T) {
	require := require.New(t)

	tx, err := Sign(&Close{
		BaseTx: BaseTx{Registry: registry},
		Kind:   state.CollectionKind,
	}, newKey(t))
	require.NoError(err)
	b, err := tx.Bytes()
	require.NoError(err)

	_, err = Parse(b[:len(b)-1])
	require.Error(err)

	_, err = Parse(append(b, 0x00))
	require.ErrorIs(err, errTrailingBytes)

	unknown := append([]byte{}, b...)
	unknown[0] = 0x7f
	_, err = Parse(unknown)
	require.ErrorIs(err, ErrUnknownTxType)

	_, err = Parse(make([]byte, MaxSize+1))
	require.Error(err)
}
