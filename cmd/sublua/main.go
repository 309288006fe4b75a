// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/MontaQLabs/sublua/cmd/address"
	"github.com/MontaQLabs/sublua/cmd/hash"
	"github.com/MontaQLabs/sublua/cmd/keys"
	"github.com/MontaQLabs/sublua/config"
	"github.com/MontaQLabs/sublua/utils/errs"
	"github.com/MontaQLabs/sublua/utils/logging"
	"github.com/MontaQLabs/sublua/version"
)

func main() {
	cmd := rootCommand()
	if err := cmd.Execute(); err != nil {
		log := logging.New(logging.DefaultConfig(), os.Stderr)
		log.Error("command failed",
			zap.Stringer("kind", errs.KindOf(err)),
			zap.Error(err),
		)
		log.Stop()
		os.Exit(1)
	}
}

func rootCommand() *cobra.Command {
	c := &cobra.Command{
		Use:           version.Client,
		Short:         "Substrate address, hashing and signing toolkit",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			printVersion, err := c.Flags().GetBool(config.VersionKey)
			if err != nil {
				return err
			}
			if !printVersion {
				return c.Help()
			}
			_, err = fmt.Fprintln(c.OutOrStdout(), version.String(version.GitCommit))
			return err
		},
	}
	config.AddFlags(c.PersistentFlags())
	c.Flags().Bool(config.VersionKey, false, "If true, print version and quit")

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print version details",
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			_, err := fmt.Fprintln(c.OutOrStdout(), version.String(version.GitCommit))
			return err
		},
	}

	c.AddCommand(
		versionCmd,
		hash.Command(),
		keys.Command(),
		address.Command(),
	)
	return c
}
