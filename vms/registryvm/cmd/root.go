// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cmd

import (
	"github.com/spf13/cobra"

	"github.com/LAVASoftWorks/vkct-core/config"
	"github.com/LAVASoftWorks/vkct-core/utils/constants"
)

// Command returns the vkct command line tool.
func Command() *cobra.Command {
	return NewCommand(DefaultBackend)
}

// NewCommand returns the vkct command line tool with commands executed
// against [backend].
func NewCommand(backend Backend) *cobra.Command {
	c := &cobra.Command{
		Use:           constants.AppName,
		Short:         "Manages the token and collection registries of a vkct program",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	config.AddFlags(c.PersistentFlags())

	r := &runner{backend: backend}
	c.AddCommand(
		r.initializeTokenCommand(),
		r.initializeCollectionCommand(),
		r.addTokenCommand(),
		r.addCollectionCommand(),
		r.setPauseCommand(),
		r.closeTokenCommand(),
		r.closeCollectionCommand(),
		r.showTokenCommand(),
		r.showCollectionCommand(),
		r.showWithdrawalStatusCommand(),
		r.deriveAddressCommand(),
		r.airdropCommand(),
		keygenCommand(),
		serveCommand(),
		versionCommand(),
	)
	return c
}

// getConfig parses the configuration of [c] from its flags, the environment
// and the config file.
func getConfig(c *cobra.Command) (config.Config, error) {
	v, err := config.BuildViper(c.Flags())
	if err != nil {
		return config.Config{}, err
	}
	return config.GetConfig(v)
}
