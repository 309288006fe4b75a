// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package logging

import (
	"io"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var _ Logger = (*log)(nil)

type log struct {
	level          zap.AtomicLevel
	internalLogger *zap.Logger
	// closer is set when the logger owns its output
	closer io.Closer
}

// noExit replaces zap's default fatal hook. Fatal entries are recorded and
// the caller decides whether to exit.
type noExit struct{}

func (noExit) OnWrite(*zapcore.CheckedEntry, []zapcore.Field) {}

// NewLogger returns a logger named [prefix] that writes entries at or above
// [level] to [w] using [encoder].
func NewLogger(prefix string, level Level, w io.Writer, encoder zapcore.Encoder) Logger {
	atomicLevel := zap.NewAtomicLevelAt(level.zapLevel())
	core := zapcore.NewCore(encoder, zapcore.AddSync(w), atomicLevel)
	logger := zap.New(core,
		zap.AddCaller(),
		zap.AddCallerSkip(2),
		zap.WithFatalHook(noExit{}),
	)
	if prefix != "" {
		logger = logger.Named(prefix)
	}
	return &log{
		level:          atomicLevel,
		internalLogger: logger,
	}
}

// New returns a logger configured by [config]. Entries go to the configured
// file when one is set and to [w] otherwise.
func New(config Config, w io.Writer) Logger {
	encoder := config.Highlight.ConsoleEncoder()
	if config.JSON {
		encoder = JSONEncoder()
	}
	if config.Filename == "" {
		return NewLogger(config.LoggerName, config.Level, w, encoder)
	}

	file := newRotatingWriter(config.RotatingWriterConfig)
	l := NewLogger(config.LoggerName, config.Level, file, encoder).(*log)
	l.closer = file
	return l
}

// Should only be called from [Level] functions.
func (l *log) log(level Level, msg string, fields ...zap.Field) {
	if ce := l.internalLogger.Check(level.zapLevel(), msg); ce != nil {
		ce.Write(fields...)
	}
}

func (l *log) Fatal(msg string, fields ...zap.Field) {
	l.log(Fatal, msg, fields...)
}

func (l *log) Error(msg string, fields ...zap.Field) {
	l.log(Error, msg, fields...)
}

func (l *log) Warn(msg string, fields ...zap.Field) {
	l.log(Warn, msg, fields...)
}

func (l *log) Info(msg string, fields ...zap.Field) {
	l.log(Info, msg, fields...)
}

func (l *log) Debug(msg string, fields ...zap.Field) {
	l.log(Debug, msg, fields...)
}

func (l *log) Verbo(msg string, fields ...zap.Field) {
	l.log(Verbo, msg, fields...)
}

func (l *log) SetLevel(level Level) {
	l.level.SetLevel(level.zapLevel())
}

func (l *log) Enabled(level Level) bool {
	return level != Off && l.level.Enabled(level.zapLevel())
}

func (l *log) Stop() {
	_ = l.internalLogger.Sync()
	if l.closer != nil {
		_ = l.closer.Close()
	}
}
