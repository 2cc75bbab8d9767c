// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cmd

import (
	"context"
	"fmt"
	"strconv"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/LAVASoftWorks/vkct-core/ids"
	"github.com/LAVASoftWorks/vkct-core/utils/crypto/keychain"
	"github.com/LAVASoftWorks/vkct-core/vms/registryvm/api"
	"github.com/LAVASoftWorks/vkct-core/vms/registryvm/projection"
	"github.com/LAVASoftWorks/vkct-core/vms/registryvm/state"
	"github.com/LAVASoftWorks/vkct-core/vms/registryvm/txs"
)

const vaultNFTKey = "vault-nft"

type runner struct {
	backend Backend
}

// withClient runs [f] against the backend configured by the flags of [c].
func (r *runner) withClient(c *cobra.Command, f func(context.Context, api.Client) error) error {
	cfg, err := getConfig(c)
	if err != nil {
		return err
	}

	ctx := c.Context()
	client, closer, err := r.backend(ctx, cfg)
	if err != nil {
		return err
	}
	err = f(ctx, client)
	if closeErr := closer(); err == nil {
		err = closeErr
	}
	return err
}

// issue signs the transaction built by [build] with the configured keypair
// and issues it.
func (r *runner) issue(c *cobra.Command, build func(deployment *api.DeriveAddressReply, base txs.BaseTx) txs.Unsigned) (ids.ID, error) {
	cfg, err := getConfig(c)
	if err != nil {
		return ids.Empty, err
	}
	kc, err := keychain.Load(cfg.Keypair)
	if err != nil {
		return ids.Empty, err
	}
	signer, err := keychain.Only(kc)
	if err != nil {
		return ids.Empty, err
	}

	var txID ids.ID
	err = r.withClient(c, func(ctx context.Context, client api.Client) error {
		deployment, err := client.DeriveAddress(ctx, nil)
		if err != nil {
			return err
		}
		nonce, err := client.GetNonce(ctx, signer.Address())
		if err != nil {
			return err
		}

		tx, err := txs.Sign(build(deployment, txs.BaseTx{Nonce: nonce}), signer)
		if err != nil {
			return err
		}
		txID, err = client.IssueTx(ctx, tx)
		return err
	})
	return txID, err
}

func registryAddress(deployment *api.DeriveAddressReply, kind state.Kind) ids.ID {
	if kind == state.TokenKind {
		return deployment.TokenRegistry
	}
	return deployment.CollectionRegistry
}

func (r *runner) initializeKindCommand(use string, kind state.Kind) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: fmt.Sprintf("Creates the %s registry with the keypair as its admin", kind),
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			var address ids.ID
			txID, err := r.issue(c, func(deployment *api.DeriveAddressReply, base txs.BaseTx) txs.Unsigned {
				base.Registry = registryAddress(deployment, kind)
				address = base.Registry
				return &txs.Initialize{
					BaseTx: base,
					Kind:   kind,
				}
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(c.OutOrStdout(), "Initialized %s registry %s in tx %s\n", kind, address, txID)
			return nil
		},
	}
}

func (r *runner) initializeTokenCommand() *cobra.Command {
	return r.initializeKindCommand("initialize-token-registry", state.TokenKind)
}

func (r *runner) initializeCollectionCommand() *cobra.Command {
	return r.initializeKindCommand("initialize-collection-registry", state.CollectionKind)
}

func (r *runner) addEntryCommand(use string, kind state.Kind) *cobra.Command {
	return &cobra.Command{
		Use:   use + " <identifier>",
		Short: fmt.Sprintf("Appends an identifier to the %s registry", kind),
		Args:  cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			entry, err := ids.FromString(args[0])
			if err != nil {
				return fmt.Errorf("couldn't parse identifier %q: %w", args[0], err)
			}
			txID, err := r.issue(c, func(deployment *api.DeriveAddressReply, base txs.BaseTx) txs.Unsigned {
				base.Registry = registryAddress(deployment, kind)
				return &txs.AddEntry{
					BaseTx: base,
					Kind:   kind,
					Entry:  entry,
				}
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(c.OutOrStdout(), "Added %s to the %s registry in tx %s\n", entry, kind, txID)
			return nil
		},
	}
}

func (r *runner) addTokenCommand() *cobra.Command {
	return r.addEntryCommand("add-token", state.TokenKind)
}

func (r *runner) addCollectionCommand() *cobra.Command {
	return r.addEntryCommand("add-collection", state.CollectionKind)
}

func (r *runner) setPauseCommand() *cobra.Command {
	return &cobra.Command{
		Use:       "set-pause <true|false>",
		Short:     "Pauses or resumes withdrawals",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"true", "false"},
		RunE: func(c *cobra.Command, args []string) error {
			paused, err := strconv.ParseBool(args[0])
			if err != nil {
				return fmt.Errorf("couldn't parse pause flag %q: %w", args[0], err)
			}
			txID, err := r.issue(c, func(deployment *api.DeriveAddressReply, base txs.BaseTx) txs.Unsigned {
				base.Registry = deployment.TokenRegistry
				return &txs.SetPause{
					BaseTx: base,
					Paused: paused,
				}
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(c.OutOrStdout(), "Withdrawals are %s in tx %s\n", projection.WithdrawalStatus(paused), txID)
			return nil
		},
	}
}

func (r *runner) closeKindCommand(use string, kind state.Kind) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: fmt.Sprintf("Deletes the %s registry and returns its deposit to the admin", kind),
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			txID, err := r.issue(c, func(deployment *api.DeriveAddressReply, base txs.BaseTx) txs.Unsigned {
				base.Registry = registryAddress(deployment, kind)
				return &txs.Close{
					BaseTx: base,
					Kind:   kind,
				}
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(c.OutOrStdout(), "Closed %s registry in tx %s\n", kind, txID)
			return nil
		},
	}
}

func (r *runner) closeTokenCommand() *cobra.Command {
	return r.closeKindCommand("close-token-registry", state.TokenKind)
}

func (r *runner) closeCollectionCommand() *cobra.Command {
	return r.closeKindCommand("close-collection-registry", state.CollectionKind)
}

func (r *runner) showKindCommand(use string, kind state.Kind, render func(*state.Record) string) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: fmt.Sprintf("Displays the admin and allowlist of the %s registry", kind),
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			return r.withClient(c, func(ctx context.Context, client api.Client) error {
				record, err := client.GetRegistry(ctx, kind)
				if err != nil {
					return err
				}
				fmt.Fprint(c.OutOrStdout(), render(record))
				return nil
			})
		},
	}
}

func (r *runner) showTokenCommand() *cobra.Command {
	return r.showKindCommand("show-token-registry", state.TokenKind, projection.TokenRegistry)
}

func (r *runner) showCollectionCommand() *cobra.Command {
	return r.showKindCommand("show-collection-registry", state.CollectionKind, projection.CollectionRegistry)
}

func (r *runner) showWithdrawalStatusCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show-withdrawal-status",
		Short: "Displays whether withdrawals are paused",
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			return r.withClient(c, func(ctx context.Context, client api.Client) error {
				paused, err := client.GetWithdrawalStatus(ctx)
				if err != nil {
					return err
				}
				label := color.New(color.FgGreen, color.Bold)
				if paused {
					label = color.New(color.FgRed, color.Bold)
				}
				fmt.Fprintf(c.OutOrStdout(), "Withdrawals are %s\n", label.Sprint(projection.WithdrawalStatus(paused)))
				return nil
			})
		},
	}
}

func (r *runner) deriveAddressCommand() *cobra.Command {
	c := &cobra.Command{
		Use:   "derive-address",
		Short: "Displays the registry addresses of the program and optionally the authority of a vault",
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			var vaultNFT *ids.ID
			if c.Flags().Changed(vaultNFTKey) {
				mintStr, err := c.Flags().GetString(vaultNFTKey)
				if err != nil {
					return err
				}
				mint, err := ids.FromString(mintStr)
				if err != nil {
					return fmt.Errorf("couldn't parse %s %q: %w", vaultNFTKey, mintStr, err)
				}
				vaultNFT = &mint
			}

			return r.withClient(c, func(ctx context.Context, client api.Client) error {
				reply, err := client.DeriveAddress(ctx, vaultNFT)
				if err != nil {
					return err
				}
				fmt.Fprintf(c.OutOrStdout(), "Program ID: %s\n", reply.ProgramID)
				fmt.Fprintf(c.OutOrStdout(), "Seed Version: %s\n", reply.SeedVersion)
				fmt.Fprintf(c.OutOrStdout(), "Token Registry: %s\n", reply.TokenRegistry)
				fmt.Fprintf(c.OutOrStdout(), "Collection Registry: %s\n", reply.CollectionRegistry)
				if reply.VaultAuthority != nil {
					fmt.Fprintf(c.OutOrStdout(), "Vault Authority: %s (bump %d)\n", reply.VaultAuthority, reply.VaultBump)
				}
				return nil
			})
		},
	}
	c.Flags().String(vaultNFTKey, "", "NFT mint of the vault whose authority is derived")
	return c
}

func (r *runner) airdropCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "airdrop <address> <amount>",
		Short: "Credits an address on a development network",
		Args:  cobra.ExactArgs(2),
		RunE: func(c *cobra.Command, args []string) error {
			addr, err := ids.FromString(args[0])
			if err != nil {
				return fmt.Errorf("couldn't parse address %q: %w", args[0], err)
			}
			amount, err := strconv.ParseUint(args[1], 10, 64)
			if err != nil {
				return fmt.Errorf("couldn't parse amount %q: %w", args[1], err)
			}
			return r.withClient(c, func(ctx context.Context, client api.Client) error {
				if err := client.Airdrop(ctx, addr, amount); err != nil {
					return err
				}
				balance, err := client.GetBalance(ctx, addr)
				if err != nil {
					return err
				}
				fmt.Fprintf(c.OutOrStdout(), "Airdropped %d to %s, balance is now %d\n", amount, addr, balance)
				return nil
			})
		},
	}
}
