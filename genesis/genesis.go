// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package genesis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/LAVASoftWorks/vkct-core/utils/constants"
	"github.com/LAVASoftWorks/vkct-core/vms/components/ledger"
)

var (
	errConflictingNetworkIDs = errors.New("conflicting networkIDs")
	errEmptyAddress          = errors.New("allocation to the empty address")
	errZeroBalance           = errors.New("allocation of a zero balance")
	errOverridesStandard     = errors.New("overrides standard genesis")
)

// FromFile loads a genesis for [networkID] from the JSON file at [filepath].
// Production networks cannot be given a custom genesis.
func FromFile(networkID uint32, filepath string) (*Config, error) {
	if constants.IsProduction(networkID) {
		return nil, fmt.Errorf(
			"%w: %s",
			errOverridesStandard,
			constants.NetworkName(networkID),
		)
	}

	b, err := os.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("unable to load genesis file %q: %w", filepath, err)
	}
	config := &Config{}
	if err := json.Unmarshal(b, config); err != nil {
		return nil, fmt.Errorf("unable to parse genesis file %q: %w", filepath, err)
	}
	if err := validateConfig(networkID, config); err != nil {
		return nil, fmt.Errorf("genesis file %q failed validation: %w", filepath, err)
	}
	return config, nil
}

func validateConfig(networkID uint32, config *Config) error {
	if networkID != config.NetworkID {
		return fmt.Errorf(
			"%w: genesis has %d but expected %d",
			errConflictingNetworkIDs,
			config.NetworkID,
			networkID,
		)
	}
	for i, allocation := range config.Allocations {
		if allocation.Address.IsZero() {
			return fmt.Errorf("%w: allocation %d", errEmptyAddress, i)
		}
		if allocation.Balance == 0 {
			return fmt.Errorf("%w: allocation %d to %s", errZeroBalance, i, allocation.Address)
		}
	}
	return nil
}

// Apply credits the genesis allocations to [l] if it has never been
// bootstrapped. It reports whether the allocations were applied.
func Apply(ctx context.Context, l *ledger.Ledger, config *Config) (bool, error) {
	err := l.Bootstrap(ctx, config.Balances())
	switch {
	case errors.Is(err, ledger.ErrAlreadyBootstrapped):
		return false, nil
	case err != nil:
		return false, err
	default:
		return true, nil
	}
}
