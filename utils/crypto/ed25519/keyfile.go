// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package ed25519

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/LAVASoftWorks/vkct-core/utils/perms"
)

var errInvalidKeyFile = errors.New("invalid key file")

// Key files hold the 64 private key bytes as a JSON array of numbers, the
// format wallet tooling writes.

// LoadKeyFile reads a key file written by WriteKeyFile or a wallet.
func LoadKeyFile(path string) (*PrivateKey, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read key file: %w", err)
	}
	// []byte would be decoded from base64, so decode numbers explicitly
	var raw []uint16
	if err := json.Unmarshal(b, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse key file %q: %w", path, err)
	}
	keyBytes := make([]byte, len(raw))
	for i, v := range raw {
		if v > 0xff {
			return nil, fmt.Errorf("%w: byte %d of %q is %d", errInvalidKeyFile, i, path, v)
		}
		keyBytes[i] = byte(v)
	}
	return ToPrivateKey(keyBytes)
}

// WriteKeyFile writes [key] to [path] readable only by the owner. An existing
// file is never overwritten.
func WriteKeyFile(path string, key *PrivateKey) error {
	raw := make([]uint16, len(key.sk))
	for i, v := range key.sk {
		raw[i] = uint16(v)
	}
	b, err := json.Marshal(raw)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), perms.ReadWriteExecute); err != nil {
		return err
	}
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, perms.Secret)
	if err != nil {
		return fmt.Errorf("failed to create key file: %w", err)
	}
	if _, err := f.Write(b); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
