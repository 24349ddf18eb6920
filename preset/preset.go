// xivdyetools-logger - Structured Logging for XIVDyeTools Services
// Copyright 2026 FlashGalatine
// SPDX-License-Identifier: MIT
// https://github.com/FlashGalatine/xivdyetools-logger

// Package preset wires ready-made logger configurations for the runtime
// environments XIVDyeTools services run in, plus koanf-based loading of the
// configuration surface from YAML files and LOGGER_* environment variables.
package preset

import (
	"io"
	"os"

	logger "github.com/FlashGalatine/xivdyetools-logger"
	"github.com/FlashGalatine/xivdyetools-logger/track"
	"github.com/FlashGalatine/xivdyetools-logger/transport"
)

// ProductionRedactFields extends the core redaction list with the
// service-specific secret fields used across XIVDyeTools deployments.
var ProductionRedactFields = append(
	append([]string{}, logger.DefaultRedactFields...),
	"xivapiKey",
	"discordToken",
	"oauthClientSecret",
	"jwtSecret",
)

// Development returns a debug-level logger with pretty console output on
// stderr, for local work.
func Development() *logger.Logger {
	cfg := logger.DefaultConfig()
	cfg.Level = logger.LevelDebug
	cfg.Format = logger.FormatPretty
	return logger.New(cfg, transport.Pretty(os.Stderr))
}

// Production returns an info-level JSON logger on stdout with the extended
// redaction profile. A non-nil tracker additionally receives warn and error
// entries; the primary JSON write is never suppressed.
func Production(tracker track.Tracker) *logger.Logger {
	cfg := logger.DefaultConfig()
	cfg.RedactFields = ProductionRedactFields

	var t logger.Transport = transport.JSON(os.Stdout)
	if tracker != nil {
		t = track.Transport(t, tracker)
	}
	return logger.New(cfg, t)
}

// Testing returns a debug-level logger without timestamps, writing JSON
// lines to w for assertion; a nil w discards all output.
func Testing(w io.Writer) *logger.Logger {
	cfg := logger.DefaultConfig()
	cfg.Level = logger.LevelDebug
	cfg.Timestamps = false

	var t logger.Transport = transport.Discard()
	if w != nil {
		t = transport.JSON(w)
	}
	return logger.New(cfg, t)
}

// New builds a logger from a loaded Config, writing to w (stdout when nil).
// A non-nil tracker is attached when cfg.Production is set.
func New(cfg *Config, w io.Writer, tracker track.Tracker) *logger.Logger {
	if w == nil {
		w = os.Stdout
	}

	lc := logger.DefaultConfig()
	lc.Level, _ = logger.ParseLevel(cfg.Level)
	lc.Format = logger.Format(cfg.Format)
	lc.Timestamps = cfg.Timestamps
	lc.Prefix = cfg.Prefix
	lc.SanitizeErrors = cfg.SanitizeErrors
	if len(cfg.RedactFields) > 0 {
		lc.RedactFields = cfg.RedactFields
	} else if cfg.Production {
		lc.RedactFields = ProductionRedactFields
	}

	var t logger.Transport
	if lc.Format == logger.FormatPretty {
		t = transport.Pretty(w)
	} else {
		t = transport.JSON(w)
	}
	if cfg.Production && tracker != nil {
		t = track.Transport(t, tracker)
	}
	return logger.New(lc, t)
}

// FromEnv loads the configuration surface and builds the matching logger on
// stdout.
func FromEnv(tracker track.Tracker) (*logger.Logger, error) {
	cfg, err := Load()
	if err != nil {
		return nil, err
	}
	return New(cfg, nil, tracker), nil
}
