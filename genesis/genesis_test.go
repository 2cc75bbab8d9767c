// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package genesis

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/LAVASoftWorks/vkct-core/database/memdb"
	"github.com/LAVASoftWorks/vkct-core/ids"
	"github.com/LAVASoftWorks/vkct-core/utils/constants"
	"github.com/LAVASoftWorks/vkct-core/utils/logging"
	"github.com/LAVASoftWorks/vkct-core/vms/components/ledger"
)

func writeGenesis(t *testing.T, config interface{}) string {
	b, err := json.Marshal(config)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "genesis.json")
	require.NoError(t, os.WriteFile(path, b, 0o600))
	return path
}

func TestGetConfig(t *testing.T) {
	require := require.New(t)

	require.Equal(&MainnetConfig, GetConfig(constants.MainnetID))
	require.Equal(&LocalConfig, GetConfig(constants.LocalID))

	custom := GetConfig(1337)
	require.Equal(uint32(1337), custom.NetworkID)
	require.Equal(LocalConfig.Allocations, custom.Allocations)
}

func TestFromFile(t *testing.T) {
	addr := ids.ID{0x01}
	tests := []struct {
		name        string
		networkID   uint32
		config      interface{}
		expectedErr error
	}{
		{
			name:      "valid",
			networkID: 1337,
			config: Config{
				NetworkID:   1337,
				Allocations: []Allocation{{Address: addr, Balance: 5}},
			},
		},
		{
			name:        "mainnet override",
			networkID:   constants.MainnetID,
			config:      Config{NetworkID: constants.MainnetID},
			expectedErr: errOverridesStandard,
		},
		{
			name:        "conflicting network",
			networkID:   1337,
			config:      Config{NetworkID: 1338},
			expectedErr: errConflictingNetworkIDs,
		},
		{
			name:      "empty address",
			networkID: 1337,
			config: Config{
				NetworkID:   1337,
				Allocations: []Allocation{{Balance: 5}},
			},
			expectedErr: errEmptyAddress,
		},
		{
			name:      "zero balance",
			networkID: 1337,
			config: Config{
				NetworkID:   1337,
				Allocations: []Allocation{{Address: addr}},
			},
			expectedErr: errZeroBalance,
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			config, err := FromFile(test.networkID, writeGenesis(t, test.config))
			require.ErrorIs(t, err, test.expectedErr)
			if test.expectedErr == nil {
				require.Equal(t, test.config, *config)
			}
		})
	}
}

func TestApply(t *testing.T) {
	require := require.New(t)
	ctx := context.Background()

	l := ledger.New(memdb.New(), ledger.DefaultConfig, logging.NoLog{})
	addr := ids.ID{0x02}
	config := &Config{
		NetworkID: 1337,
		Allocations: []Allocation{
			{Address: addr, Balance: 5},
			{Address: addr, Balance: 6},
		},
	}

	applied, err := Apply(ctx, l, config)
	require.NoError(err)
	require.True(applied)

	applied, err = Apply(ctx, l, config)
	require.NoError(err)
	require.False(applied)

	balance, err := l.Balance(addr)
	require.NoError(err)
	require.Equal(uint64(11), balance)
}
