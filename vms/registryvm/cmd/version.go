// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/LAVASoftWorks/vkct-core/version"
)

const versionJSONKey = "json"

func versionCommand() *cobra.Command {
	c := &cobra.Command{
		Use:   "version",
		Short: "Displays the version of this binary",
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			versions := version.GetVersions()
			asJSON, err := c.Flags().GetBool(versionJSONKey)
			if err != nil {
				return err
			}
			if !asJSON {
				fmt.Fprintln(c.OutOrStdout(), versions.String())
				return nil
			}

			b, err := json.MarshalIndent(versions, "", "  ")
			if err != nil {
				return err
			}
			fmt.Fprintln(c.OutOrStdout(), string(b))
			return nil
		},
	}
	c.Flags().Bool(versionJSONKey, false, "If true, prints the version info as JSON")
	return c
}
