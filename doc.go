// xivdyetools-logger - Structured Logging for XIVDyeTools Services
// Copyright 2026 FlashGalatine
// SPDX-License-Identifier: MIT
// https://github.com/FlashGalatine/xivdyetools-logger

// Package logger provides environment-aware structured logging with context
// inheritance and sensitive-data redaction for XIVDyeTools services.
//
// The pipeline is: level filter -> entry builder (context merge, redaction,
// error formatting) -> transport. A Logger owns one configuration, one
// instance-global context, and one transport; child loggers layer additional
// context on top without duplicating any of that state.
//
// # Overview
//
// The package provides:
//   - Four-severity level filtering (debug < info < warn < error)
//   - Immutable LogEntry records with a stable JSON wire shape
//   - Field redaction and regex-based secret sanitization (package redact)
//   - Delegating child loggers sharing the parent's config and transport
//   - Timing helpers with guaranteed-cleanup measurement
//   - Context propagation helpers with request ID generation
//   - An slog.Handler bridge for hosts written against log/slog
//
// # Quick Start
//
//	import (
//	    logger "github.com/FlashGalatine/xivdyetools-logger"
//	    "github.com/FlashGalatine/xivdyetools-logger/transport"
//	)
//
//	log := logger.New(logger.DefaultConfig(), transport.JSON(os.Stdout))
//	log.Info("server starting", logger.Context{"port": 8080})
//	log.Error("request failed", err, logger.Context{"requestId": id})
//
//	// Child loggers layer context without copying config or transport
//	reqLog := log.Child(logger.Context{"requestId": id})
//	reqLog.Debug("cache miss")
//
//	// Timing
//	stop := log.Time("palette-build")
//	buildPalette()
//	stop() // emits "palette-build: 12.34ms" at debug level
//
// # Redaction
//
// Values of configured field names in merged context are replaced with
// "[REDACTED]" at emit time; error messages are scrubbed of bearer tokens
// and key=value secrets before they leave the process. See package redact.
//
// # Wire Format
//
// JSON transports emit exactly {level, message, timestamp, context?, error?}
// per entry. The context key is omitted entirely when no context merged, and
// the error key when no error was supplied.
package logger
