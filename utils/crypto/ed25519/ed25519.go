// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package ed25519 wraps the identity keys that sign registry transactions. A
// public key is its own 32-byte address.
package ed25519

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/ed25519"

	"github.com/LAVASoftWorks/vkct-core/ids"
)

const (
	PublicKeyLen  = ed25519.PublicKeySize
	PrivateKeyLen = ed25519.PrivateKeySize
	SignatureLen  = ed25519.SignatureSize
)

var (
	ErrWrongPublicKeySize  = errors.New("wrong public key size")
	ErrWrongPrivateKeySize = errors.New("wrong private key size")
	ErrInvalidSignature    = errors.New("invalid signature")

	errMismatchedPublicKey = errors.New("private key does not match its public half")
)

type PublicKey struct {
	pk ed25519.PublicKey
}

// ToPublicKey parses a 32-byte public key.
func ToPublicKey(b []byte) (*PublicKey, error) {
	if len(b) != PublicKeyLen {
		return nil, fmt.Errorf("%w: expected %d bytes, got %d", ErrWrongPublicKeySize, PublicKeyLen, len(b))
	}
	return &PublicKey{pk: ed25519.PublicKey(append([]byte(nil), b...))}, nil
}

// PublicKeyFromID interprets an address as the public key it was made from.
func PublicKeyFromID(id ids.ID) *PublicKey {
	return &PublicKey{pk: ed25519.PublicKey(id.Bytes())}
}

func (k *PublicKey) Verify(msg, sig []byte) bool {
	return len(sig) == SignatureLen && ed25519.Verify(k.pk, msg, sig)
}

// Address returns the identity handle of this key.
func (k *PublicKey) Address() ids.ID {
	addr, _ := ids.ToID(k.pk)
	return addr
}

func (k *PublicKey) Bytes() []byte {
	return k.pk
}

func (k *PublicKey) String() string {
	return k.Address().String()
}

type PrivateKey struct {
	sk ed25519.PrivateKey
	pk *PublicKey
}

// NewPrivateKey generates a key from the system's secure randomness.
func NewPrivateKey() (*PrivateKey, error) {
	_, sk, err := ed25519.GenerateKey(nil)
	if err != nil {
		return nil, err
	}
	return &PrivateKey{sk: sk}, nil
}

// ToPrivateKey parses a 64-byte private key (seed followed by public key).
func ToPrivateKey(b []byte) (*PrivateKey, error) {
	if len(b) != PrivateKeyLen {
		return nil, fmt.Errorf("%w: expected %d bytes, got %d", ErrWrongPrivateKeySize, PrivateKeyLen, len(b))
	}
	sk := ed25519.PrivateKey(append([]byte(nil), b...))
	derived := ed25519.NewKeyFromSeed(sk.Seed())
	if !derived.Equal(sk) {
		return nil, errMismatchedPublicKey
	}
	return &PrivateKey{sk: sk}, nil
}

// FromSeed deterministically derives a key from a 32-byte seed.
func FromSeed(seed []byte) *PrivateKey {
	return &PrivateKey{sk: ed25519.NewKeyFromSeed(seed)}
}

func (k *PrivateKey) PublicKey() *PublicKey {
	if k.pk == nil {
		k.pk = &PublicKey{
			pk: k.sk.Public().(ed25519.PublicKey),
		}
	}
	return k.pk
}

func (k *PrivateKey) Address() ids.ID {
	return k.PublicKey().Address()
}

func (k *PrivateKey) Sign(msg []byte) ([]byte, error) {
	return ed25519.Sign(k.sk, msg), nil
}

func (k *PrivateKey) Bytes() []byte {
	return k.sk
}
