// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package hash

import (
	"github.com/spf13/pflag"

	"github.com/MontaQLabs/sublua/config"
	"github.com/MontaQLabs/sublua/utils/formatting"
	"github.com/MontaQLabs/sublua/utils/hashing"
)

const (
	SizeKey = "size"
	TextKey = "text"
)

func AddFlags(flags *pflag.FlagSet) {
	flags.Bool(TextKey, false, "Hash the argument as UTF-8 text instead of hex")
}

func AddBlake2bFlags(flags *pflag.FlagSet) {
	AddFlags(flags)
	flags.Int(SizeKey, hashing.HashLen, "Digest length in bytes, between 1 and 64")
}

type Config struct {
	config.Config
	Input []byte
}

func ParseFlags(flags *pflag.FlagSet, args []string) (*Config, error) {
	if err := flags.Parse(args); err != nil {
		return nil, err
	}

	shared, err := config.FromFlags(flags)
	if err != nil {
		return nil, err
	}

	text, err := flags.GetBool(TextKey)
	if err != nil {
		return nil, err
	}

	var input []byte
	switch arg := flags.Arg(0); {
	case text:
		input = []byte(arg)
	default:
		input, err = formatting.DecodeHex(arg)
		if err != nil {
			return nil, err
		}
	}

	return &Config{
		Config: shared,
		Input:  input,
	}, nil
}
