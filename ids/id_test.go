// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package ids

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIDString(t *testing.T) {
	require := require.New(t)

	// The system program id is all zeros and encodes to 32 '1's.
	require.Equal("11111111111111111111111111111111", Empty.String())

	id := ID{'T', 'o', 'k', 'e', 'n', 'A'}
	parsed, err := FromString(id.String())
	require.NoError(err)
	require.Equal(id, parsed)
}

func TestFromStringErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{
			name:  "invalid base58",
			input: "0OIl",
		},
		{
			name:  "too short",
			input: "1111",
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := FromString(test.input)
			require.Error(t, err)
		})
	}
}

func TestToID(t *testing.T) {
	require := require.New(t)

	_, err := ToID(make([]byte, IDLen-1))
	require.ErrorIs(err, errWrongLength)

	b := make([]byte, IDLen)
	b[0] = 7
	id, err := ToID(b)
	require.NoError(err)
	require.Equal(byte(7), id[0])
}

func TestIDMarshalJSON(t *testing.T) {
	require := require.New(t)

	id := ID{'a', 'd', 'm', 'i', 'n'}
	b, err := json.Marshal(id)
	require.NoError(err)
	require.Equal(`"`+id.String()+`"`, string(b))

	var parsed ID
	require.NoError(json.Unmarshal(b, &parsed))
	require.Equal(id, parsed)

	parsed = ID{}
	require.NoError(parsed.UnmarshalJSON([]byte("null")))
	require.True(parsed.IsZero())

	require.ErrorIs(parsed.UnmarshalJSON([]byte(`x`)), errMissingQuotes)
}

func TestIDMarshalText(t *testing.T) {
	require := require.New(t)

	id := ID{1, 2, 3}
	text, err := id.MarshalText()
	require.NoError(err)

	var parsed ID
	require.NoError(parsed.UnmarshalText(text))
	require.Equal(id, parsed)
}

func TestIDCompare(t *testing.T) {
	require := require.New(t)

	a := ID{1}
	b := ID{2}
	require.Negative(a.Compare(b))
	require.Positive(b.Compare(a))
	require.Zero(a.Compare(a))
}
