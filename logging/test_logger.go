package logging

import (
	"testing"

	"go.uber.org/zap/zaptest"
)

// NewTestLogger returns a Logger that writes through t.Log, so failures
// surface alongside the failing test's own output.
func NewTestLogger(t *testing.T) Logger {
	t.Helper()
	return &impl{name: t.Name(), sugar: zaptest.NewLogger(t).Sugar().Named(t.Name())}
}
