// xivdyetools-logger - Structured Logging for XIVDyeTools Services
// Copyright 2026 FlashGalatine
// SPDX-License-Identifier: MIT
// https://github.com/FlashGalatine/xivdyetools-logger

package logger

import (
	"fmt"
	"strings"
)

// Level is one of the four ordered log severities.
type Level int8

const (
	// LevelDebug is the lowest severity, for development diagnostics.
	LevelDebug Level = iota
	// LevelInfo is the default severity for normal operation.
	LevelInfo
	// LevelWarn marks recoverable problems worth attention.
	LevelWarn
	// LevelError marks failures; error values attach at this severity.
	LevelError
)

// String returns the lower-case name used on the wire.
func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "debug"
	case LevelInfo:
		return "info"
	case LevelWarn:
		return "warn"
	case LevelError:
		return "error"
	default:
		return "info"
	}
}

// MarshalJSON emits the lower-case string form.
func (l Level) MarshalJSON() ([]byte, error) {
	return []byte(`"` + l.String() + `"`), nil
}

// ParseLevel converts a string level to a Level. "warning" is accepted as an
// alias for warn and the empty string means info. Any other unknown value is
// invalid configuration: the caller receives LevelInfo alongside the error.
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return LevelDebug, nil
	case "info", "":
		return LevelInfo, nil
	case "warn", "warning":
		return LevelWarn, nil
	case "error":
		return LevelError, nil
	default:
		return LevelInfo, fmt.Errorf("unknown log level: %s", s)
	}
}

// Enabled reports whether a candidate severity passes the configured minimum.
// It must be consulted before any entry construction so that redaction work
// is never spent on a filtered call.
func Enabled(min, candidate Level) bool {
	return candidate >= min
}
