// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package keychain

import (
	"errors"
	"fmt"
	"slices"
	"sync"

	"golang.org/x/exp/maps"

	"github.com/LAVASoftWorks/vkct-core/ids"
	"github.com/LAVASoftWorks/vkct-core/utils/crypto/ed25519"
)

var (
	_ Keychain = (*Memory)(nil)

	ErrUnknownSigner = errors.New("no signer for address")
)

// Signer can prove control of one identity.
type Signer interface {
	Sign([]byte) ([]byte, error)
	Address() ids.ID
}

// Keychain maintains a set of addresses together with their corresponding
// signers
type Keychain interface {
	// The returned Signer can provide a signature for [addr]
	Get(addr ids.ID) (Signer, bool)
	// Returns the addresses for which the keychain keeps a signer, sorted.
	Addresses() []ids.ID
}

// Memory is a Keychain holding ed25519 keys in memory.
type Memory struct {
	lock sync.RWMutex
	keys map[ids.ID]*ed25519.PrivateKey
}

func New(keys ...*ed25519.PrivateKey) *Memory {
	kc := &Memory{
		keys: make(map[ids.ID]*ed25519.PrivateKey, len(keys)),
	}
	for _, key := range keys {
		kc.Add(key)
	}
	return kc
}

// Load builds a keychain from key files.
func Load(paths ...string) (*Memory, error) {
	kc := New()
	for _, path := range paths {
		key, err := ed25519.LoadKeyFile(path)
		if err != nil {
			return nil, err
		}
		kc.Add(key)
	}
	return kc, nil
}

func (kc *Memory) Add(key *ed25519.PrivateKey) {
	kc.lock.Lock()
	defer kc.lock.Unlock()

	kc.keys[key.Address()] = key
}

func (kc *Memory) Get(addr ids.ID) (Signer, bool) {
	kc.lock.RLock()
	defer kc.lock.RUnlock()

	key, ok := kc.keys[addr]
	return key, ok
}

func (kc *Memory) Addresses() []ids.ID {
	kc.lock.RLock()
	defer kc.lock.RUnlock()

	addrs := maps.Keys(kc.keys)
	slices.SortFunc(addrs, ids.ID.Compare)
	return addrs
}

// Only returns the single signer of [kc], failing if [kc] holds zero or
// several keys.
func Only(kc Keychain) (Signer, error) {
	addrs := kc.Addresses()
	if len(addrs) != 1 {
		return nil, fmt.Errorf("%w: expected exactly one key, found %d", ErrUnknownSigner, len(addrs))
	}
	signer, _ := kc.Get(addrs[0])
	return signer, nil
}
