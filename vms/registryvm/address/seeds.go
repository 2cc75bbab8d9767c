// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package address

import (
	"errors"
	"fmt"
	"slices"

	"golang.org/x/exp/maps"

	"github.com/LAVASoftWorks/vkct-core/ids"
)

const (
	V050 = "v050"
	V100 = "v100"

	DefaultSeedVersion = V100

	vaultSeed = "PoliCromixPiggyBankV2"
)

var (
	errUnknownSeedVersion = errors.New("unknown seed version")

	seedsByVersion = map[string]Seeds{
		V050: {
			TokenRegistry:      []byte("VkctPiggyBankV050tRegistry"),
			CollectionRegistry: []byte("VkctPiggyBankV050cRegistry"),
		},
		V100: {
			TokenRegistry:      []byte("VkctPiggyBankV100tRegistry"),
			CollectionRegistry: []byte("VkctPiggyBankV100cRegistry"),
		},
	}
)

// Seeds are the singleton seeds of one protocol generation.
type Seeds struct {
	TokenRegistry      []byte
	CollectionRegistry []byte
}

// SeedsFor returns the seeds of protocol generation [version].
func SeedsFor(version string) (Seeds, error) {
	seeds, ok := seedsByVersion[version]
	if !ok {
		return Seeds{}, fmt.Errorf("%w: %q, expected one of %q", errUnknownSeedVersion, version, SeedVersions())
	}
	return seeds, nil
}

// SeedVersions returns the known protocol generations.
func SeedVersions() []string {
	versions := maps.Keys(seedsByVersion)
	slices.Sort(versions)
	return versions
}

// Registry derives the singleton address for [seed] under [programID].
func Registry(seed []byte, programID ids.ID) (ids.ID, uint8, error) {
	return FindProgramAddress([][]byte{seed}, programID)
}

// VaultAuthority derives the account that holds the deposits of the vault
// minted as [nftMint].
func VaultAuthority(programID, nftMint ids.ID) (ids.ID, uint8, error) {
	return FindProgramAddress([][]byte{[]byte(vaultSeed), nftMint[:]}, programID)
}
