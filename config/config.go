// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package config

import (
	"fmt"
	"math"
	"os"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/MontaQLabs/sublua/utils/constants"
	"github.com/MontaQLabs/sublua/utils/errs"
	"github.com/MontaQLabs/sublua/utils/formatting"
	"github.com/MontaQLabs/sublua/utils/logging"
	"github.com/MontaQLabs/sublua/utils/wrappers"
	"github.com/MontaQLabs/sublua/version"
)

// EnvPrefix is prepended to every key when reading the environment, so
// --log-level may also be given as SUBLUA_LOG_LEVEL.
var EnvPrefix = strings.ToUpper(version.Client)

type Config struct {
	Log logging.Config `json:"log"`
	// NetworkID is the SS58 address prefix of the selected network
	NetworkID uint16              `json:"networkID"`
	Output    formatting.Encoding `json:"output"`
}

// AddressVersion returns the single byte SS58 version of the configured
// network.
func (c Config) AddressVersion() (byte, error) {
	if c.NetworkID > math.MaxUint8 {
		return 0, fmt.Errorf("%w: network prefix %d requires a two byte address version",
			errs.ErrUnsupportedFormat,
			c.NetworkID,
		)
	}
	return byte(c.NetworkID), nil
}

// BuildViper binds [fs] and the environment into a new viper instance.
func BuildViper(fs *pflag.FlagSet) (*viper.Viper, error) {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if err := v.BindPFlags(fs); err != nil {
		return nil, err
	}
	return v, nil
}

// GetConfig resolves every shared option held by [v].
func GetConfig(v *viper.Viper) (Config, error) {
	var errs wrappers.Errs

	logLevel, err := logging.ToLevel(v.GetString(LogLevelKey))
	errs.Add(err)

	highlight, err := logging.ToHighlight(v.GetString(LogDisplayHighlightKey), os.Stderr.Fd())
	errs.Add(err)

	networkID, err := constants.NetworkID(v.GetString(NetworkKey))
	errs.Add(err)

	output, err := formatting.ToEncoding(v.GetString(OutputKey))
	errs.Add(err)

	if errs.Errored() {
		return Config{}, errs.Err
	}
	logConfig := logging.DefaultConfig()
	logConfig.Filename = v.GetString(LogFileKey)
	logConfig.Level = logLevel
	logConfig.Highlight = highlight
	logConfig.JSON = v.GetBool(LogFormatJSONKey)
	logConfig.LoggerName = version.Client

	return Config{
		Log:       logConfig,
		NetworkID: networkID,
		Output:    output,
	}, nil
}

// FromFlags is BuildViper followed by GetConfig.
func FromFlags(fs *pflag.FlagSet) (Config, error) {
	v, err := BuildViper(fs)
	if err != nil {
		return Config{}, err
	}
	return GetConfig(v)
}
