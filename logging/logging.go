// Package logging provides the ambient leveled logger used by the
// continuous-collision dispatcher to note fallback paths and
// degenerate-numerics warnings, wrapping go.uber.org/zap the way the
// rest of this module's corpus does.
package logging

import (
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest"
)

// Logger is the leveled logging interface every dispatcher and
// narrow-phase component takes as an optional collaborator.
type Logger interface {
	Debugw(msg string, keysAndValues ...interface{})
	Infow(msg string, keysAndValues ...interface{})
	Warnw(msg string, keysAndValues ...interface{})
	Errorw(msg string, keysAndValues ...interface{})
	Named(name string) Logger
}

type impl struct {
	sugar *zap.SugaredLogger
}

func (l *impl) Debugw(msg string, kv ...interface{}) { l.sugar.Debugw(msg, kv...) }
func (l *impl) Infow(msg string, kv ...interface{})  { l.sugar.Infow(msg, kv...) }
func (l *impl) Warnw(msg string, kv ...interface{})  { l.sugar.Warnw(msg, kv...) }
func (l *impl) Errorw(msg string, kv ...interface{}) { l.sugar.Errorw(msg, kv...) }
func (l *impl) Named(name string) Logger {
	return &impl{sugar: l.sugar.Named(name)}
}

// newConfig mirrors the console encoder config the corpus's server
// logger builds, minus stacktraces and network appenders.
func newConfig(level zapcore.Level) zap.Config {
	return zap.Config{
		Level:    zap.NewAtomicLevelAt(level),
		Encoding: "console",
		EncoderConfig: zapcore.EncoderConfig{
			TimeKey:        "ts",
			LevelKey:       "level",
			NameKey:        "logger",
			CallerKey:      "caller",
			MessageKey:     "msg",
			LineEnding:     zapcore.DefaultLineEnding,
			EncodeLevel:    zapcore.CapitalColorLevelEncoder,
			EncodeTime:     zapcore.ISO8601TimeEncoder,
			EncodeDuration: zapcore.StringDurationEncoder,
			EncodeCaller:   zapcore.ShortCallerEncoder,
		},
		DisableStacktrace: true,
		OutputPaths:       []string{"stdout"},
		ErrorOutputPaths:  []string{"stderr"},
	}
}

// NewLogger returns a logger that emits Info+ logs to stdout, named name.
func NewLogger(name string) Logger {
	zl := zap.Must(newConfig(zapcore.InfoLevel).Build()).Sugar().Named(name)
	return &impl{sugar: zl}
}

// NewDebugLogger returns a logger that emits Debug+ logs to stdout, named name.
func NewDebugLogger(name string) Logger {
	zl := zap.Must(newConfig(zapcore.DebugLevel).Build()).Sugar().Named(name)
	return &impl{sugar: zl}
}

// NewTestLogger returns a logger that writes through tb's test log.
func NewTestLogger(tb testing.TB) Logger {
	return &impl{sugar: zaptest.NewLogger(tb).Sugar()}
}

// NewNopLogger returns a logger that discards everything, the default
// collaborator for callers that don't care about dispatcher diagnostics.
func NewNopLogger() Logger {
	return &impl{sugar: zap.NewNop().Sugar()}
}
