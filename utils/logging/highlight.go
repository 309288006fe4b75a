// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package logging

import (
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap/zapcore"
	"golang.org/x/term"
)

// Highlighting modes available
const (
	Plain Highlight = iota
	Colors
)

var errUnknownHighlight = errors.New("unknown highlight")

// Highlight mode to apply to displayed logs
type Highlight int

// ToHighlight chooses a highlighting mode. "auto" enables colors only when
// [fd] is a terminal.
func ToHighlight(h string, fd uintptr) (Highlight, error) {
	switch strings.ToUpper(h) {
	case "PLAIN":
		return Plain, nil
	case "COLORS":
		return Colors, nil
	case "AUTO":
		if !term.IsTerminal(int(fd)) {
			return Plain, nil
		}
		return Colors, nil
	default:
		return Plain, fmt.Errorf("%w: %s", errUnknownHighlight, h)
	}
}

func (h Highlight) MarshalJSON() ([]byte, error) {
	switch h {
	case Plain:
		return []byte(`"PLAIN"`), nil
	case Colors:
		return []byte(`"COLORS"`), nil
	default:
		return nil, errUnknownHighlight
	}
}

// ConsoleEncoder returns a human readable encoder for this mode.
func (h Highlight) ConsoleEncoder() zapcore.Encoder {
	config := zapcore.EncoderConfig{
		TimeKey:          "timestamp",
		LevelKey:         "level",
		NameKey:          "logger",
		CallerKey:        "caller",
		MessageKey:       "msg",
		StacktraceKey:    "stacktrace",
		LineEnding:       zapcore.DefaultLineEnding,
		EncodeLevel:      levelEncoder(h == Colors),
		EncodeTime:       zapcore.TimeEncoderOfLayout("[01-02|15:04:05.000]"),
		EncodeDuration:   zapcore.StringDurationEncoder,
		EncodeCaller:     zapcore.ShortCallerEncoder,
		ConsoleSeparator: " ",
	}
	return zapcore.NewConsoleEncoder(config)
}

// JSONEncoder returns a machine readable encoder.
func JSONEncoder() zapcore.Encoder {
	config := zapcore.EncoderConfig{
		TimeKey:        "timestamp",
		LevelKey:       "level",
		NameKey:        "logger",
		CallerKey:      "caller",
		MessageKey:     "msg",
		StacktraceKey:  "stacktrace",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    levelEncoder(false),
		EncodeTime:     zapcore.ISO8601TimeEncoder,
		EncodeDuration: zapcore.StringDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
	}
	return zapcore.NewJSONEncoder(config)
}

var levelColors = map[zapcore.Level]string{
	zapcore.FatalLevel: "\033[31m", // red
	zapcore.ErrorLevel: "\033[91m", // light red
	zapcore.WarnLevel:  "\033[33m", // yellow
	zapcore.InfoLevel:  "\033[0m",  // reset
	zapcore.DebugLevel: "\033[94m", // light blue
}

const (
	resetColor = "\033[0m"
	verboColor = "\033[92m" // light green
)

// levelEncoder renders zap levels with this package's names, so Verbo is
// shown as VERBO rather than as zap's "LEVEL(-2)".
func levelEncoder(colors bool) zapcore.LevelEncoder {
	return func(l zapcore.Level, enc zapcore.PrimitiveArrayEncoder) {
		name := fromZapLevel(l).AlignedString()
		if !colors {
			enc.AppendString(name)
			return
		}
		color, ok := levelColors[l]
		if !ok {
			color = verboColor
		}
		enc.AppendString(color + name + resetColor)
	}
}

func fromZapLevel(l zapcore.Level) Level {
	switch {
	case l >= zapcore.FatalLevel:
		return Fatal
	case l >= zapcore.ErrorLevel:
		return Error
	case l >= zapcore.WarnLevel:
		return Warn
	case l >= zapcore.InfoLevel:
		return Info
	case l >= zapcore.DebugLevel:
		return Debug
	default:
		return Verbo
	}
}
