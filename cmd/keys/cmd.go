// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package keys

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/MontaQLabs/sublua/utils/crypto"
	"github.com/MontaQLabs/sublua/utils/crypto/keychain"
	"github.com/MontaQLabs/sublua/utils/extrinsic"
	"github.com/MontaQLabs/sublua/utils/formatting"
)

var errNoSeeds = errors.New("at least one --seed is required")

func Command() *cobra.Command {
	c := &cobra.Command{
		Use:   "keys",
		Short: "Derives ed25519 keys, signs and verifies messages",
	}
	c.AddCommand(
		deriveCommand(),
		signCommand(),
		verifyCommand(),
		signExtrinsicCommand(),
	)
	return c
}

func deriveCommand() *cobra.Command {
	c := &cobra.Command{
		Use:   "derive",
		Short: "Prints the public key and address of each seed",
		Args:  cobra.NoArgs,
		RunE:  deriveFunc,
	}
	AddDeriveFlags(c.Flags())
	return c
}

func deriveFunc(c *cobra.Command, args []string) error {
	config, err := ParseDeriveFlags(c.Flags(), args)
	if err != nil {
		return err
	}
	defer func() {
		for _, seed := range config.Seeds {
			clear(seed)
		}
	}()
	if len(config.Seeds) == 0 {
		return errNoSeeds
	}

	version, err := config.AddressVersion()
	if err != nil {
		return err
	}

	kc, err := keychain.NewEd25519Keychain(config.Seeds...)
	if err != nil {
		return err
	}
	defer kc.Close()

	log := config.Logger(c.ErrOrStderr())
	defer log.Stop()

	for _, id := range kc.Accounts() {
		pk, err := formatting.Encode(config.Output, id.Bytes())
		if err != nil {
			return err
		}
		address := id.Address(version)
		log.Debug("derived account",
			zap.String("address", address),
		)
		if _, err := fmt.Fprintf(c.OutOrStdout(), "%s %s\n", pk, address); err != nil {
			return err
		}
	}
	return nil
}

func signCommand() *cobra.Command {
	c := &cobra.Command{
		Use:   "sign",
		Short: "Signs a message with the key derived from a seed",
		Args:  cobra.NoArgs,
		RunE:  signFunc,
	}
	AddSignFlags(c.Flags())
	return c
}

func signFunc(c *cobra.Command, args []string) error {
	config, err := ParseSignFlags(c.Flags(), args)
	if err != nil {
		return err
	}
	defer clear(config.Seed)

	sig, err := crypto.Sign(config.Seed, config.Message)
	if err != nil {
		return err
	}

	out, err := formatting.Encode(config.Output, sig)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(c.OutOrStdout(), out)
	return err
}

func verifyCommand() *cobra.Command {
	c := &cobra.Command{
		Use:   "verify",
		Short: "Checks a signature against a public key",
		Args:  cobra.NoArgs,
		RunE:  verifyFunc,
	}
	AddVerifyFlags(c.Flags())
	return c
}

func verifyFunc(c *cobra.Command, args []string) error {
	config, err := ParseVerifyFlags(c.Flags(), args)
	if err != nil {
		return err
	}

	valid, err := crypto.Verify(config.PublicKey, config.Message, config.Signature)
	if err != nil {
		return err
	}

	log := config.Logger(c.ErrOrStderr())
	defer log.Stop()

	log.Debug("verified signature",
		zap.Bool("valid", valid),
		zap.Int("messageLen", len(config.Message)),
	)
	_, err = fmt.Fprintln(c.OutOrStdout(), valid)
	return err
}

func signExtrinsicCommand() *cobra.Command {
	c := &cobra.Command{
		Use:   "sign-extrinsic",
		Short: "Builds and signs an extrinsic offline",
		Args:  cobra.NoArgs,
		RunE:  signExtrinsicFunc,
	}
	AddSignExtrinsicFlags(c.Flags())
	return c
}

func signExtrinsicFunc(c *cobra.Command, args []string) error {
	config, err := ParseSignExtrinsicFlags(c.Flags(), args)
	if err != nil {
		return err
	}

	kc, err := keychain.NewEd25519Keychain(config.Seed)
	clear(config.Seed)
	if err != nil {
		return err
	}
	defer kc.Close()

	accounts := kc.Accounts()
	signer, _ := kc.Get(accounts[0])
	xt, err := extrinsic.Sign(signer, config.Payload)
	if err != nil {
		return err
	}

	log := config.Logger(c.ErrOrStderr())
	defer log.Stop()

	log.Debug("signed extrinsic",
		zap.Stringer("signer", accounts[0]),
		zap.Stringer("era", config.Payload.Extra.Era),
		zap.Uint32("nonce", config.Payload.Extra.Nonce),
		zap.Int("len", len(xt)),
	)

	out, err := formatting.Encode(config.Output, xt)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(c.OutOrStdout(), out)
	return err
}
