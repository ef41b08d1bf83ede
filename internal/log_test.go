package internal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLogLevel(t *testing.T) {
	tests := map[string]LogLevel{
		"error":   LogLevelError,
		"WARN":    LogLevelWarn,
		" debug ": LogLevelDebug,
		"trace":   LogLevelTrace,
		"":        LogLevelInfo,
		"loud":    LogLevelInfo,
	}
	for in, want := range tests {
		assert.Equal(t, want, ParseLogLevel(in), "input %q", in)
	}
}

func TestNewLogger(t *testing.T) {
	logger, err := NewLogger(LogLevelTrace, "production")
	require.NoError(t, err)
	assert.Equal(t, LogLevelTrace, logger.GetLevel())

	child := logger.With("component", "test")
	assert.Equal(t, LogLevelTrace, child.GetLevel())

	nop := NewNopLogger()
	assert.NotPanics(t, func() {
		nop.Trace("dropped %d", 1)
		nop.Infow("request", "status", 200)
		nop.Sync()
	})
}
