package logging

import (
	"testing"

	"go.viam.com/test"
)

func TestNewTestLoggerLogsWithoutPanic(t *testing.T) {
	logger := NewTestLogger(t)
	logger.Infow("narrow-phase fallback engaged", "code", 0)
	named := logger.Named("ccd")
	named.Debugw("advancing", "t", 0.5)
	test.That(t, named, test.ShouldNotBeNil)
}

func TestNewNopLoggerDiscardsSilently(t *testing.T) {
	logger := NewNopLogger()
	logger.Warnw("degenerate numerics", "reason", "zero-area quad")
	logger.Errorw("unsupported shape pair")
}
