// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package hash

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/MontaQLabs/sublua/utils/formatting"
	"github.com/MontaQLabs/sublua/utils/hashing"
)

func Command() *cobra.Command {
	c := &cobra.Command{
		Use:   "hash",
		Short: "Computes blake2b and twox digests",
	}
	c.AddCommand(
		blake2bCommand(),
		twoxCommand("twox64", "64-bit xxHash digest", hashing.Twox64),
		twoxCommand("twox128", "128-bit twox digest used for storage prefixes", hashing.Twox128),
		twoxCommand("twox256", "256-bit twox digest", hashing.Twox256),
	)
	return c
}

func blake2bCommand() *cobra.Command {
	c := &cobra.Command{
		Use:   "blake2b <input>",
		Short: "Unkeyed blake2b digest of the input",
		Args:  cobra.ExactArgs(1),
		RunE:  blake2bFunc,
	}
	AddBlake2bFlags(c.Flags())
	return c
}

func blake2bFunc(c *cobra.Command, args []string) error {
	flags := c.Flags()
	config, err := ParseFlags(flags, args)
	if err != nil {
		return err
	}

	size, err := flags.GetInt(SizeKey)
	if err != nil {
		return err
	}

	digest, err := hashing.Blake2b(config.Input, size)
	if err != nil {
		return err
	}
	return write(c, config, "blake2b", digest)
}

func twoxCommand(name, short string, f func([]byte) []byte) *cobra.Command {
	c := &cobra.Command{
		Use:   name + " <input>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			config, err := ParseFlags(c.Flags(), args)
			if err != nil {
				return err
			}
			return write(c, config, name, f(config.Input))
		},
	}
	AddFlags(c.Flags())
	return c
}

func write(c *cobra.Command, config *Config, name string, digest []byte) error {
	log := config.Logger(c.ErrOrStderr())
	defer log.Stop()

	out, err := formatting.Encode(config.Output, digest)
	if err != nil {
		return err
	}
	log.Debug("computed digest",
		zap.String("hasher", name),
		zap.Int("inputLen", len(config.Input)),
		zap.Int("digestLen", len(digest)),
	)
	_, err = fmt.Fprintln(c.OutOrStdout(), out)
	return err
}
