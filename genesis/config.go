// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package genesis

import (
	"github.com/LAVASoftWorks/vkct-core/ids"
	"github.com/LAVASoftWorks/vkct-core/utils/constants"
	"github.com/LAVASoftWorks/vkct-core/utils/crypto/ed25519"
	"github.com/LAVASoftWorks/vkct-core/utils/hashing"
	"github.com/LAVASoftWorks/vkct-core/utils/units"
)

// Allocation credits a balance to an address when the ledger is first opened.
type Allocation struct {
	Address ids.ID `json:"address"`
	Balance uint64 `json:"balance"`
}

// Config contains the genesis state of a ledger.
type Config struct {
	NetworkID   uint32       `json:"networkID"`
	Allocations []Allocation `json:"allocations"`
	Message     string       `json:"message"`
}

// Balances returns the allocations keyed by address. Repeated addresses are
// summed.
func (c *Config) Balances() map[ids.ID]uint64 {
	balances := make(map[ids.ID]uint64, len(c.Allocations))
	for _, allocation := range c.Allocations {
		balances[allocation.Address] += allocation.Balance
	}
	return balances
}

var (
	// LocalKey is the well known key funded on local networks. It must never
	// hold value on a production network.
	LocalKey = ed25519.FromSeed(hashing.ComputeHash256([]byte("vkct local genesis key")))

	MainnetConfig = Config{
		NetworkID: constants.MainnetID,
		Message:   "vkct registry mainnet",
	}

	DevnetConfig = Config{
		NetworkID: constants.DevnetID,
		Message:   "vkct registry devnet",
	}

	LocalConfig = Config{
		NetworkID: constants.LocalID,
		Allocations: []Allocation{
			{
				Address: LocalKey.Address(),
				Balance: 1000 * units.KiloVkct,
			},
		},
		Message: "vkct registry local network",
	}
)

// GetConfig returns the built-in genesis of [networkID].
func GetConfig(networkID uint32) *Config {
	switch networkID {
	case constants.MainnetID:
		return &MainnetConfig
	case constants.DevnetID:
		return &DevnetConfig
	case constants.LocalID:
		return &LocalConfig
	default:
		tempConfig := LocalConfig
		tempConfig.NetworkID = networkID
		return &tempConfig
	}
}
