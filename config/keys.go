// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package config

const (
	LogLevelKey            = "log-level"
	LogDisplayHighlightKey = "log-display-highlight"
	LogFormatJSONKey       = "log-json"
	LogFileKey             = "log-file"
	NetworkKey             = "network"
	OutputKey              = "output"
	VersionKey             = "version"
)
