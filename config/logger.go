// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package config

import (
	"io"

	"github.com/MontaQLabs/sublua/utils/logging"
)

// Logger returns a logger writing to [w] as configured by the log options.
// With the level set to off nothing is opened or written.
func (c Config) Logger(w io.Writer) logging.Logger {
	if c.Log.Level == logging.Off {
		return logging.NoLog{}
	}
	return logging.New(c.Log, w)
}
