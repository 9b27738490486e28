package schema

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

// TestLogLevel_ZerologLevel verifies the verbosity mapping used to configure
// the process logger.
func TestLogLevel_ZerologLevel(t *testing.T) {
	tests := []struct {
		name     string
		level    LogLevel
		expected zerolog.Level
	}{
		{
			name:     "silent disables logging",
			level:    LogLevelSilent,
			expected: zerolog.Disabled,
		},
		{
			name:     "info",
			level:    LogLevelInfo,
			expected: zerolog.InfoLevel,
		},
		{
			name:     "verbose maps to trace",
			level:    LogLevelVerbose,
			expected: zerolog.TraceLevel,
		},
		{
			name:     "unknown value behaves like info",
			level:    LogLevel("bogus"),
			expected: zerolog.InfoLevel,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.level.ZerologLevel())
		})
	}
}
