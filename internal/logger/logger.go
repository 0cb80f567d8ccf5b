// Package logger is the CLI's process-wide log. Warnings always reach
// stderr; debug and info lines only appear with --verbose.
package logger

import (
	"io"
	"os"
	"sync/atomic"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
	log   atomic.Pointer[zap.SugaredLogger]
)

func init() {
	SetOutput(os.Stderr)
}

// newLogger prints "[LEVEL] message" lines to w, filtered by level.
func newLogger(w io.Writer) *zap.SugaredLogger {
	enc := zapcore.NewConsoleEncoder(zapcore.EncoderConfig{
		MessageKey:       "msg",
		LevelKey:         "level",
		EncodeLevel:      bracketLevel,
		ConsoleSeparator: " ",
		LineEnding:       zapcore.DefaultLineEnding,
	})
	return zap.New(zapcore.NewCore(enc, zapcore.AddSync(w), level)).Sugar()
}

func bracketLevel(l zapcore.Level, pae zapcore.PrimitiveArrayEncoder) {
	pae.AppendString("[" + l.CapitalString() + "]")
}

// SetVerbose switches debug and info output on or off.
func SetVerbose(v bool) {
	if v {
		level.SetLevel(zapcore.DebugLevel)
	} else {
		level.SetLevel(zapcore.WarnLevel)
	}
}

// IsVerbose reports whether debug output is on.
func IsVerbose() bool {
	return level.Enabled(zapcore.DebugLevel)
}

// SetOutput redirects all log lines to w. Tests use it to capture or
// silence output.
func SetOutput(w io.Writer) {
	log.Store(newLogger(w))
}

// Debug logs a formatted line when verbose.
func Debug(format string, args ...any) {
	log.Load().Debugf(format, args...)
}

// Section marks the start of a phase in verbose output.
func Section(name string) {
	log.Load().Infof("=== %s ===", name)
}

// Info logs a formatted progress line when verbose.
func Info(format string, args ...any) {
	log.Load().Infof(format, args...)
}

// Warn logs a formatted line regardless of verbosity.
func Warn(format string, args ...any) {
	log.Load().Warnf(format, args...)
}
