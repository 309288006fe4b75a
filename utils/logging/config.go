// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package logging

import "gopkg.in/natefinch/lumberjack.v2"

const (
	defaultMaxSize  = 8 // MB
	defaultMaxFiles = 7
	defaultMaxAge   = 0 // days, 0 keeps old files forever
)

// RotatingWriterConfig selects a log file. An empty Filename disables file
// output.
type RotatingWriterConfig struct {
	Filename string `json:"filename"`
	MaxSize  int    `json:"maxSize"` // in megabytes
	MaxFiles int    `json:"maxFiles"`
	MaxAge   int    `json:"maxAge"` // in days
	Compress bool   `json:"compress"`
}

// Config defines the configuration of a logger
type Config struct {
	RotatingWriterConfig
	Level      Level     `json:"level"`
	Highlight  Highlight `json:"highlight"`
	JSON       bool      `json:"json"`
	LoggerName string    `json:"loggerName"`
}

// DefaultConfig logs info and above as plain text.
func DefaultConfig() Config {
	return Config{
		RotatingWriterConfig: RotatingWriterConfig{
			MaxSize:  defaultMaxSize,
			MaxFiles: defaultMaxFiles,
			MaxAge:   defaultMaxAge,
		},
		Level:     Info,
		Highlight: Plain,
	}
}

func newRotatingWriter(config RotatingWriterConfig) *lumberjack.Logger {
	return &lumberjack.Logger{
		Filename:   config.Filename,
		MaxSize:    config.MaxSize,
		MaxBackups: config.MaxFiles,
		MaxAge:     config.MaxAge,
		Compress:   config.Compress,
	}
}
