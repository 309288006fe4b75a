// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package config

import (
	"github.com/spf13/pflag"

	"github.com/MontaQLabs/sublua/utils/constants"
	"github.com/MontaQLabs/sublua/utils/formatting"
	"github.com/MontaQLabs/sublua/utils/logging"
	"github.com/MontaQLabs/sublua/version"
)

// AddFlags registers the options shared by every command.
func AddFlags(fs *pflag.FlagSet) {
	// Logging
	fs.String(LogLevelKey, logging.Info.String(), "The log level. Should be one of {verbo, debug, info, warn, error, fatal, off}")
	fs.String(LogDisplayHighlightKey, "auto", "Whether to color/highlight log output. Should be one of {auto, plain, colors}")
	fs.Bool(LogFormatJSONKey, false, "If true, logs are written as JSON")
	fs.String(LogFileKey, "", "If set, logs are appended to this file, which is rotated as it grows, instead of stderr")

	// Addresses
	fs.String(NetworkKey, constants.SubstrateName, "Network whose SS58 prefix is used for addresses. A name, network-<n> or a bare number")

	// Output
	fs.String(OutputKey, formatting.Hex.String(), "Encoding of byte output. Should be one of {hex, hexnc, base58}")
}

// BuildFlagSet returns a standalone flag set holding every shared option and
// the version switch.
func BuildFlagSet() *pflag.FlagSet {
	fs := pflag.NewFlagSet(version.Client, pflag.ContinueOnError)
	AddFlags(fs)
	fs.Bool(VersionKey, false, "If true, print version and quit")
	return fs
}
