// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rafa Zafar

package schema

import "github.com/rs/zerolog"

// LogLevel is the build-time log verbosity.
type LogLevel string

// Accepted log levels.
const (
	LogLevelSilent  LogLevel = "silent"
	LogLevelInfo    LogLevel = "info"
	LogLevelVerbose LogLevel = "verbose"
)

// valid reports whether l is one of the accepted levels.
func (l LogLevel) valid() bool {
	switch l {
	case LogLevelSilent, LogLevelInfo, LogLevelVerbose:
		return true
	}
	return false
}

// ZerologLevel maps the resolved level onto a zerolog level so the process
// logger can honor the configured verbosity.
func (l LogLevel) ZerologLevel() zerolog.Level {
	switch l {
	case LogLevelSilent:
		return zerolog.Disabled
	case LogLevelVerbose:
		return zerolog.TraceLevel
	default:
		return zerolog.InfoLevel
	}
}

// defaultLogLevel is the fallback applied when the user supplied no level or
// an unrecognized one. Test and CI runs default to silence.
func defaultLogLevel(env Environment) LogLevel {
	if env.Test {
		return LogLevelSilent
	}
	return LogLevelInfo
}
