// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package state

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/LAVASoftWorks/vkct-core/utils/hashing"
	"github.com/LAVASoftWorks/vkct-core/vms/registryvm/address"
)

const discriminatorLen = 8

var errUnknownKind = errors.New("unknown registry kind")

// Kind names one of the two singleton registries.
type Kind byte

const (
	TokenKind Kind = iota + 1
	CollectionKind
)

func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(s) {
	case "token":
		return TokenKind, nil
	case "collection":
		return CollectionKind, nil
	default:
		return 0, fmt.Errorf("%w: %q", errUnknownKind, s)
	}
}

func (k Kind) Valid() bool {
	return k == TokenKind || k == CollectionKind
}

func (k Kind) String() string {
	switch k {
	case TokenKind:
		return "token"
	case CollectionKind:
		return "collection"
	default:
		return errUnknownKind.Error()
	}
}

// TypeName is the name the account discriminator is computed from.
func (k Kind) TypeName() string {
	switch k {
	case TokenKind:
		return "TokenRegistry"
	case CollectionKind:
		return "CollectionRegistry"
	default:
		return ""
	}
}

// Discriminator is the 8 byte tag that starts every account of this kind.
func (k Kind) Discriminator() [discriminatorLen]byte {
	var disc [discriminatorLen]byte
	copy(disc[:], hashing.ComputeHash256([]byte("account:"+k.TypeName())))
	return disc
}

// Seed selects the derivation seed of this kind from [seeds].
func (k Kind) Seed(seeds address.Seeds) []byte {
	if k == TokenKind {
		return seeds.TokenRegistry
	}
	return seeds.CollectionRegistry
}

func (k Kind) MarshalJSON() ([]byte, error) {
	if !k.Valid() {
		return nil, fmt.Errorf("%w: %d", errUnknownKind, k)
	}
	return json.Marshal(k.String())
}

func (k *Kind) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	kind, err := ParseKind(s)
	if err != nil {
		return err
	}
	*k = kind
	return nil
}
