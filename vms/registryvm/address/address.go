// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package address derives the deterministic storage addresses of program
// owned accounts. A derived address is the sha256 digest of the seeds, the
// program id and a fixed marker, and is only accepted when it is not a valid
// ed25519 point, so no private key can ever sign for it.
package address

import (
	"errors"
	"fmt"

	"filippo.io/edwards25519"

	"github.com/LAVASoftWorks/vkct-core/ids"
	"github.com/LAVASoftWorks/vkct-core/utils/hashing"
)

const (
	// MaxSeeds is the maximum number of seeds, bump included.
	MaxSeeds = 16
	// MaxSeedLen is the maximum length of a single seed.
	MaxSeedLen = 32

	marker = "ProgramDerivedAddress"
)

var (
	ErrMaxSeedsExceeded      = errors.New("too many seeds")
	ErrMaxSeedLengthExceeded = errors.New("seed is too long")
	ErrOnCurve               = errors.New("derived address lies on the ed25519 curve")
	ErrNoViableBump          = errors.New("unable to find a viable bump seed")
)

// CreateProgramAddress hashes [seeds] under [programID]. It fails with
// ErrOnCurve when the digest is a valid public key.
func CreateProgramAddress(seeds [][]byte, programID ids.ID) (ids.ID, error) {
	if len(seeds) > MaxSeeds {
		return ids.Empty, fmt.Errorf("%w: %d > %d", ErrMaxSeedsExceeded, len(seeds), MaxSeeds)
	}
	for i, seed := range seeds {
		if len(seed) > MaxSeedLen {
			return ids.Empty, fmt.Errorf("%w: seed %d has %d bytes", ErrMaxSeedLengthExceeded, i, len(seed))
		}
	}

	bufs := make([][]byte, 0, len(seeds)+2)
	bufs = append(bufs, seeds...)
	bufs = append(bufs, programID[:], []byte(marker))
	addr := ids.ID(hashing.ComputeHash256Concat(bufs...))
	if IsOnCurve(addr[:]) {
		return ids.Empty, ErrOnCurve
	}
	return addr, nil
}

// FindProgramAddress searches bumps from 255 down to 0, appending the bump as
// the last seed, and returns the first off-curve address with its bump.
func FindProgramAddress(seeds [][]byte, programID ids.ID) (ids.ID, uint8, error) {
	withBump := make([][]byte, len(seeds)+1)
	copy(withBump, seeds)
	bump := []byte{0}
	withBump[len(seeds)] = bump
	for b := 255; b >= 0; b-- {
		bump[0] = byte(b)
		addr, err := CreateProgramAddress(withBump, programID)
		switch {
		case err == nil:
			return addr, byte(b), nil
		case errors.Is(err, ErrOnCurve):
			continue
		default:
			return ids.Empty, 0, err
		}
	}
	return ids.Empty, 0, ErrNoViableBump
}

// IsOnCurve reports whether [b] is the compressed encoding of an ed25519
// point.
func IsOnCurve(b []byte) bool {
	_, err := new(edwards25519.Point).SetBytes(b)
	return err == nil
}
