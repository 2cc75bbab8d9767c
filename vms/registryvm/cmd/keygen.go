// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/LAVASoftWorks/vkct-core/utils/crypto/ed25519"
)

func keygenCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "keygen",
		Short: "Writes a new keypair to the keypair path",
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			cfg, err := getConfig(c)
			if err != nil {
				return err
			}

			key, err := ed25519.NewPrivateKey()
			if err != nil {
				return err
			}
			if err := ed25519.WriteKeyFile(cfg.Keypair, key); err != nil {
				return err
			}
			fmt.Fprintf(c.OutOrStdout(), "Wrote keypair of %s to %s\n", key.Address(), cfg.Keypair)
			return nil
		},
	}
}
