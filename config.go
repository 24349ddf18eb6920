// xivdyetools-logger - Structured Logging for XIVDyeTools Services
// Copyright 2026 FlashGalatine
// SPDX-License-Identifier: MIT
// https://github.com/FlashGalatine/xivdyetools-logger

package logger

// Format selects the output shape a transport renders.
type Format string

const (
	// FormatJSON outputs one structured JSON entry per line.
	FormatJSON Format = "json"
	// FormatPretty outputs human-readable console lines.
	FormatPretty Format = "pretty"
)

// DefaultRedactFields is the core list of context field names whose values
// are replaced with the redaction sentinel before an entry is emitted.
// Matching is exact and case-sensitive, which is why common casing variants
// appear explicitly.
var DefaultRedactFields = []string{
	"password",
	"token",
	"secret",
	"apiKey",
	"api_key",
	"authorization",
	"accessToken",
	"refreshToken",
	"sessionToken",
}

// Config holds logger configuration. A Config is immutable once a Logger has
// been constructed from it; child loggers share their ancestor's Config and
// never copy it.
type Config struct {
	// Level is the minimum severity that reaches the transport.
	Level Level

	// Format is a rendering hint for transports that honor it.
	Format Format

	// Timestamps controls whether entries carry a capture-time timestamp.
	Timestamps bool

	// Prefix, when set, is applied to every message as "[prefix] message".
	Prefix string

	// SanitizeErrors scrubs secrets from attached error messages and drops
	// stack traces from the entry.
	SanitizeErrors bool

	// RedactFields lists the context keys whose values are redacted.
	// Nil means DefaultRedactFields.
	RedactFields []string
}

// DefaultConfig returns the default logger configuration: info level, JSON
// format, timestamps on, error sanitization on, core redaction list.
func DefaultConfig() Config {
	return Config{
		Level:          LevelInfo,
		Format:         FormatJSON,
		Timestamps:     true,
		SanitizeErrors: true,
		RedactFields:   DefaultRedactFields,
	}
}
