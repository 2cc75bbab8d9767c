// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cmd

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"

	"github.com/LAVASoftWorks/vkct-core/config"
	"github.com/LAVASoftWorks/vkct-core/ids"
	"github.com/LAVASoftWorks/vkct-core/utils/crypto/ed25519"
	"github.com/LAVASoftWorks/vkct-core/utils/rpc"
	"github.com/LAVASoftWorks/vkct-core/version"
	"github.com/LAVASoftWorks/vkct-core/vms/registryvm/api"
	"github.com/LAVASoftWorks/vkct-core/vms/registryvm/projection"
	"github.com/LAVASoftWorks/vkct-core/vms/registryvm/state"
	"github.com/LAVASoftWorks/vkct-core/vms/registryvm/txs"

	cjson "github.com/LAVASoftWorks/vkct-core/utils/json"
)

var (
	tokenRegistry      = ids.GenerateTestID()
	collectionRegistry = ids.GenerateTestID()
	deployment         = &api.DeriveAddressReply{
		ProgramID:          ids.GenerateTestID(),
		SeedVersion:        "v100",
		TokenRegistry:      tokenRegistry,
		CollectionRegistry: collectionRegistry,
	}
)

// execute runs the command line [args] against [client] and returns what was
// printed.
func execute(t *testing.T, client api.Client, args ...string) (string, error) {
	t.Helper()

	c := NewCommand(func(context.Context, config.Config) (api.Client, func() error, error) {
		return client, func() error { return nil }, nil
	})
	out := &bytes.Buffer{}
	c.SetOut(out)
	c.SetErr(out)
	c.SetArgs(append(args, "--"+config.DataDirKey+"="+t.TempDir()))
	err := c.ExecuteContext(context.Background())
	return out.String(), err
}

func writeKey(t *testing.T) (*ed25519.PrivateKey, string) {
	t.Helper()

	key, err := ed25519.NewPrivateKey()
	require.NoError(t, err)
	path := filepath.Join(t.TempDir(), "keypair.json")
	require.NoError(t, ed25519.WriteKeyFile(path, key))
	return key, path
}

func TestTransactionCommands(t *testing.T) {
	entry := ids.GenerateTestID()
	tests := []struct {
		name     string
		args     []string
		expected func(base txs.BaseTx) txs.Unsigned
		output   string
	}{
		{
			name: "initialize token registry",
			args: []string{"initialize-token-registry"},
			expected: func(base txs.BaseTx) txs.Unsigned {
				base.Registry = tokenRegistry
				return &txs.Initialize{BaseTx: base, Kind: state.TokenKind}
			},
			output: "Initialized token registry " + tokenRegistry.String(),
		},
		{
			name: "initialize collection registry",
			args: []string{"initialize-collection-registry"},
			expected: func(base txs.BaseTx) txs.Unsigned {
				base.Registry = collectionRegistry
				return &txs.Initialize{BaseTx: base, Kind: state.CollectionKind}
			},
			output: "Initialized collection registry " + collectionRegistry.String(),
		},
		{
			name: "add token",
			args: []string{"add-token", entry.String()},
			expected: func(base txs.BaseTx) txs.Unsigned {
				base.Registry = tokenRegistry
				return &txs.AddEntry{BaseTx: base, Kind: state.TokenKind, Entry: entry}
			},
			output: fmt.Sprintf("Added %s to the token registry", entry),
		},
		{
			name: "add collection",
			args: []string{"add-collection", entry.String()},
			expected: func(base txs.BaseTx) txs.Unsigned {
				base.Registry = collectionRegistry
				return &txs.AddEntry{BaseTx: base, Kind: state.CollectionKind, Entry: entry}
			},
			output: fmt.Sprintf("Added %s to the collection registry", entry),
		},
		{
			name: "pause",
			args: []string{"set-pause", "true"},
			expected: func(base txs.BaseTx) txs.Unsigned {
				base.Registry = tokenRegistry
				return &txs.SetPause{BaseTx: base, Paused: true}
			},
			output: "Withdrawals are PAUSED",
		},
		{
			name: "close token registry",
			args: []string{"close-token-registry"},
			expected: func(base txs.BaseTx) txs.Unsigned {
				base.Registry = tokenRegistry
				return &txs.Close{BaseTx: base, Kind: state.TokenKind}
			},
			output: "Closed token registry",
		},
		{
			name: "close collection registry",
			args: []string{"close-collection-registry"},
			expected: func(base txs.BaseTx) txs.Unsigned {
				base.Registry = collectionRegistry
				return &txs.Close{BaseTx: base, Kind: state.CollectionKind}
			},
			output: "Closed collection registry",
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			require := require.New(t)
			ctrl := gomock.NewController(t)

			key, keypair := writeKey(t)
			const nonce = 3
			txID := ids.GenerateTestID()

			client := api.NewMockClient(ctrl)
			client.EXPECT().DeriveAddress(gomock.Any(), nil).Return(deployment, nil)
			client.EXPECT().GetNonce(gomock.Any(), key.Address()).Return(uint64(nonce), nil)
			client.EXPECT().IssueTx(gomock.Any(), gomock.Any()).DoAndReturn(
				func(_ context.Context, tx *txs.Tx, _ ...rpc.Option) (ids.ID, error) {
					require.NoError(tx.Verify())
					require.Equal(key.Address(), tx.Signer)
					require.Equal(test.expected(txs.BaseTx{Nonce: nonce}), tx.Unsigned)
					return txID, nil
				},
			)

			out, err := execute(t, client, append(test.args, "--"+config.KeypairKey+"="+keypair)...)
			require.NoError(err)
			require.Contains(out, test.output)
			require.Contains(out, txID.String())
		})
	}
}

func TestTransactionErrors(t *testing.T) {
	require := require.New(t)
	ctrl := gomock.NewController(t)

	_, keypair := writeKey(t)
	client := api.NewMockClient(ctrl)

	_, err := execute(t, client, "set-pause", "maybe", "--"+config.KeypairKey+"="+keypair)
	require.ErrorContains(err, "couldn't parse pause flag")

	_, err = execute(t, client, "add-token", "not-an-id!", "--"+config.KeypairKey+"="+keypair)
	require.ErrorContains(err, "couldn't parse identifier")

	_, err = execute(t, client, "add-token", "--"+config.KeypairKey+"="+keypair)
	require.ErrorContains(err, "accepts 1 arg(s)")

	_, err = execute(t, client, "initialize-token-registry", "--"+config.KeypairKey+"="+filepath.Join(t.TempDir(), "missing.json"))
	require.ErrorContains(err, "failed to read key file")

	errRejected := errors.New("registry is full")
	client.EXPECT().DeriveAddress(gomock.Any(), nil).Return(deployment, nil)
	client.EXPECT().GetNonce(gomock.Any(), gomock.Any()).Return(uint64(0), nil)
	client.EXPECT().IssueTx(gomock.Any(), gomock.Any()).Return(ids.Empty, errRejected)
	_, err = execute(t, client, "add-token", ids.GenerateTestID().String(), "--"+config.KeypairKey+"="+keypair)
	require.ErrorIs(err, errRejected)
}

func TestShowRegistry(t *testing.T) {
	admin := ids.GenerateTestID()
	tests := []struct {
		name   string
		kind   state.Kind
		render func(*state.Record) string
	}{
		{
			name:   "show-token-registry",
			kind:   state.TokenKind,
			render: projection.TokenRegistry,
		},
		{
			name:   "show-collection-registry",
			kind:   state.CollectionKind,
			render: projection.CollectionRegistry,
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			require := require.New(t)
			ctrl := gomock.NewController(t)

			record, err := state.New(test.kind, admin, 4)
			require.NoError(err)
			require.NoError(record.Append(ids.GenerateTestID()))
			require.NoError(record.Append(ids.GenerateTestID()))

			client := api.NewMockClient(ctrl)
			client.EXPECT().GetRegistry(gomock.Any(), test.kind).Return(record, nil)

			out, err := execute(t, client, test.name)
			require.NoError(err)
			require.Equal(test.render(record), out)
		})
	}
}

func TestShowWithdrawalStatus(t *testing.T) {
	for _, paused := range []bool{true, false} {
		t.Run(fmt.Sprint(paused), func(t *testing.T) {
			require := require.New(t)
			ctrl := gomock.NewController(t)

			client := api.NewMockClient(ctrl)
			client.EXPECT().GetWithdrawalStatus(gomock.Any()).Return(paused, nil)

			out, err := execute(t, client, "show-withdrawal-status")
			require.NoError(err)
			require.Contains(out, "Withdrawals are ")
			require.Contains(out, projection.WithdrawalStatus(paused))
		})
	}
}

func TestDeriveAddress(t *testing.T) {
	require := require.New(t)
	ctrl := gomock.NewController(t)

	mint := ids.GenerateTestID()
	vault := ids.GenerateTestID()
	withVault := *deployment
	withVault.VaultAuthority = &vault
	withVault.VaultBump = cjson.Uint8(254)

	client := api.NewMockClient(ctrl)
	client.EXPECT().DeriveAddress(gomock.Any(), nil).Return(deployment, nil)
	client.EXPECT().DeriveAddress(gomock.Any(), &mint).Return(&withVault, nil)

	out, err := execute(t, client, "derive-address")
	require.NoError(err)
	require.Contains(out, "Token Registry: "+tokenRegistry.String())
	require.Contains(out, "Collection Registry: "+collectionRegistry.String())
	require.NotContains(out, "Vault Authority")

	out, err = execute(t, client, "derive-address", "--"+vaultNFTKey+"="+mint.String())
	require.NoError(err)
	require.Contains(out, fmt.Sprintf("Vault Authority: %s (bump 254)", vault))
}

func TestAirdrop(t *testing.T) {
	require := require.New(t)
	ctrl := gomock.NewController(t)

	addr := ids.GenerateTestID()
	client := api.NewMockClient(ctrl)
	gomock.InOrder(
		client.EXPECT().Airdrop(gomock.Any(), addr, uint64(500)).Return(nil),
		client.EXPECT().GetBalance(gomock.Any(), addr).Return(uint64(1500), nil),
	)

	out, err := execute(t, client, "airdrop", addr.String(), "500")
	require.NoError(err)
	require.Contains(out, "balance is now 1500")

	_, err = execute(t, client, "airdrop", addr.String(), "lots")
	require.ErrorContains(err, "couldn't parse amount")
}

func TestInitializeCommands(t *testing.T) {
	require := require.New(t)

	r := &runner{}
	require.Equal("initialize-token-registry", r.initializeTokenCommand().Name())
	require.Equal("initialize-collection-registry", r.initializeCollectionCommand().Name())

	c, _, err := NewCommand(nil).Find([]string{"initialize-token-registry"})
	require.NoError(err)
	require.Equal("initialize-token-registry", c.Name())
}

func TestVersion(t *testing.T) {
	require := require.New(t)

	out, err := execute(t, nil, "version")
	require.NoError(err)
	require.Contains(out, version.Current.String())

	out, err = execute(t, nil, "version", "--json")
	require.NoError(err)
	require.Contains(out, `"application": "`+version.Current.String()+`"`)
}

func TestKeygen(t *testing.T) {
	require := require.New(t)

	keypair := filepath.Join(t.TempDir(), "keys", "id.json")
	out, err := execute(t, nil, "keygen", "--"+config.KeypairKey+"="+keypair)
	require.NoError(err)

	key, err := ed25519.LoadKeyFile(keypair)
	require.NoError(err)
	require.Contains(out, key.Address().String())

	// An existing keypair is never overwritten.
	_, err = execute(t, nil, "keygen", "--"+config.KeypairKey+"="+keypair)
	require.ErrorContains(err, "failed to create key file")
}
