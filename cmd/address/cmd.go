// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package address

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/MontaQLabs/sublua/ids"
	"github.com/MontaQLabs/sublua/utils/constants"
	"github.com/MontaQLabs/sublua/utils/crypto"
	"github.com/MontaQLabs/sublua/utils/formatting"
	"github.com/MontaQLabs/sublua/utils/storagekey"
)

func Command() *cobra.Command {
	c := &cobra.Command{
		Use:   "address",
		Short: "Encodes, decodes and converts SS58 addresses",
	}
	c.AddCommand(
		&cobra.Command{
			Use:   "encode <public-key>",
			Short: "Encodes a hex public key as an address of the selected network",
			Args:  cobra.ExactArgs(1),
			RunE:  encodeFunc,
		},
		&cobra.Command{
			Use:   "decode <address>",
			Short: "Prints the public key and network of an address",
			Args:  cobra.ExactArgs(1),
			RunE:  decodeFunc,
		},
		&cobra.Command{
			Use:   "convert <address>...",
			Short: "Re-encodes addresses for the selected network",
			Args:  cobra.MinimumNArgs(1),
			RunE:  convertFunc,
		},
		&cobra.Command{
			Use:   "storage-key <address>",
			Short: "Prints the System.Account storage key of an address",
			Args:  cobra.ExactArgs(1),
			RunE:  storageKeyFunc,
		},
		multisigCommand(),
	)
	return c
}

func encodeFunc(c *cobra.Command, args []string) error {
	config, err := ParseFlags(c.Flags(), args)
	if err != nil {
		return err
	}

	pk, err := formatting.DecodeHexLen(args[0], crypto.PublicKeyLen)
	if err != nil {
		return err
	}

	addr, err := formatting.EncodeSS58(pk, config.Version)
	if err != nil {
		return err
	}
	return writeLine(c, addr)
}

func decodeFunc(c *cobra.Command, args []string) error {
	config, err := ParseFlags(c.Flags(), args)
	if err != nil {
		return err
	}

	id, version, err := ids.ParseAddress(args[0])
	if err != nil {
		return err
	}

	pk, err := formatting.Encode(config.Output, id.Bytes())
	if err != nil {
		return err
	}
	return writeLine(c, pk, constants.NetworkName(uint16(version)))
}

func convertFunc(c *cobra.Command, args []string) error {
	config, err := ParseFlags(c.Flags(), args)
	if err != nil {
		return err
	}

	converted, err := formatting.ConvertAddresses(config.Version, args)
	if err != nil {
		return err
	}

	log := config.Logger(c.ErrOrStderr())
	defer log.Stop()

	log.Debug("converted addresses",
		zap.String("network", constants.NetworkName(config.NetworkID)),
		zap.Int("numAddresses", len(converted)),
	)
	for _, addr := range converted {
		if err := writeLine(c, addr); err != nil {
			return err
		}
	}
	return nil
}

func storageKeyFunc(c *cobra.Command, args []string) error {
	config, err := ParseFlags(c.Flags(), args)
	if err != nil {
		return err
	}

	id, err := ids.AccountIDFromString(args[0])
	if err != nil {
		return err
	}

	key, err := formatting.Encode(config.Output, storagekey.SystemAccount(id))
	if err != nil {
		return err
	}
	return writeLine(c, key)
}

func multisigCommand() *cobra.Command {
	c := &cobra.Command{
		Use:   "multisig <address>...",
		Short: "Derives the multisig account of a set of signatories",
		Args:  cobra.MinimumNArgs(1),
		RunE:  multisigFunc,
	}
	AddMultisigFlags(c.Flags())
	return c
}

func multisigFunc(c *cobra.Command, args []string) error {
	config, err := ParseMultisigFlags(c.Flags(), args)
	if err != nil {
		return err
	}

	id, err := ids.MultisigAccountID(config.Threshold, config.Signatories)
	if err != nil {
		return err
	}
	return writeLine(c, id.Address(config.Version))
}

func writeLine(c *cobra.Command, a ...any) error {
	_, err := fmt.Fprintln(c.OutOrStdout(), a...)
	return err
}
