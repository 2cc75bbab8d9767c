// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package ids

import (
	"bytes"
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/mr-tron/base58/base58"
)

// IDLen is the number of bytes in an identity handle.
const IDLen = 32

var (
	// Empty is a useful all zero value
	Empty = ID{}

	nullStr = "null"

	errWrongLength   = errors.New("wrong length")
	errMissingQuotes = errors.New("first and last characters should be quotes")
)

// ID is a fixed-width identity handle. It names a keyholder (an ed25519
// public key), an asset mint, a program or a derived storage address.
type ID [IDLen]byte

// ToID attempts to convert a byte slice into an id
func ToID(b []byte) (ID, error) {
	if len(b) != IDLen {
		return Empty, fmt.Errorf("%w: expected %d bytes but got %d", errWrongLength, IDLen, len(b))
	}
	var id ID
	copy(id[:], b)
	return id, nil
}

// FromString is the inverse of ID.String()
func FromString(idStr string) (ID, error) {
	b, err := base58.Decode(idStr)
	if err != nil {
		return Empty, fmt.Errorf("couldn't decode %q: %w", idStr, err)
	}
	return ToID(b)
}

// FromStringOrPanic is the same as FromString, but will panic on error
func FromStringOrPanic(idStr string) ID {
	id, err := FromString(idStr)
	if err != nil {
		panic(err)
	}
	return id
}

func (id ID) MarshalJSON() ([]byte, error) {
	return []byte(`"` + id.String() + `"`), nil
}

func (id *ID) UnmarshalJSON(b []byte) error {
	str := string(b)
	if str == nullStr { // If "null", do nothing
		return nil
	} else if len(str) < 2 {
		return errMissingQuotes
	}

	lastIndex := len(str) - 1
	if str[0] != '"' || str[lastIndex] != '"' {
		return errMissingQuotes
	}

	// Parse string to ID
	newID, err := FromString(str[1:lastIndex])
	if err != nil {
		return err
	}
	*id = newID
	return nil
}

func (id ID) MarshalText() ([]byte, error) {
	return []byte(id.String()), nil
}

func (id *ID) UnmarshalText(text []byte) error {
	return id.UnmarshalJSON([]byte(`"` + string(text) + `"`))
}

// IsZero returns true if the value has not been initialized
func (id ID) IsZero() bool {
	return id == Empty
}

// Bytes returns the 32 byte representation as a slice. The slice is a copy.
func (id ID) Bytes() []byte {
	return id[:]
}

// Hex returns a hex encoded string of this id.
func (id ID) Hex() string {
	return hex.EncodeToString(id[:])
}

// String returns the plain base58 form of the id, the same text form wallets
// and explorers use for keys and mints.
func (id ID) String() string {
	return base58.Encode(id[:])
}

func (id ID) Compare(other ID) int {
	return bytes.Compare(id[:], other[:])
}
