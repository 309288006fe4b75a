// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package address

import (
	"github.com/spf13/pflag"

	"github.com/MontaQLabs/sublua/config"
	"github.com/MontaQLabs/sublua/ids"
)

const ThresholdKey = "threshold"

func AddMultisigFlags(flags *pflag.FlagSet) {
	flags.Uint16(ThresholdKey, 1, "Number of signatories required to approve a call")
}

type Config struct {
	config.Config
	// Version is the single byte SS58 version of the selected network
	Version byte
}

type MultisigConfig struct {
	Config
	Threshold   uint16
	Signatories []ids.AccountID
}

func ParseFlags(flags *pflag.FlagSet, args []string) (*Config, error) {
	if err := flags.Parse(args); err != nil {
		return nil, err
	}

	shared, err := config.FromFlags(flags)
	if err != nil {
		return nil, err
	}

	version, err := shared.AddressVersion()
	if err != nil {
		return nil, err
	}

	return &Config{
		Config:  shared,
		Version: version,
	}, nil
}

func ParseMultisigFlags(flags *pflag.FlagSet, args []string) (*MultisigConfig, error) {
	base, err := ParseFlags(flags, args)
	if err != nil {
		return nil, err
	}

	threshold, err := flags.GetUint16(ThresholdKey)
	if err != nil {
		return nil, err
	}

	signatories := make([]ids.AccountID, flags.NArg())
	for i, addr := range flags.Args() {
		signatories[i], err = ids.AccountIDFromString(addr)
		if err != nil {
			return nil, err
		}
	}

	return &MultisigConfig{
		Config:      *base,
		Threshold:   threshold,
		Signatories: signatories,
	}, nil
}
