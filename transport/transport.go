// xivdyetools-logger - Structured Logging for XIVDyeTools Services
// Copyright 2026 FlashGalatine
// SPDX-License-Identifier: MIT
// https://github.com/FlashGalatine/xivdyetools-logger

// Package transport provides the built-in sink strategies for the logging
// pipeline: structured JSON lines, zerolog-backed console rendering, a
// discard sink, and fan-out composition. Every transport swallows its own
// output errors; a failed write costs at most one log line, never a panic
// escaping into the caller.
package transport

import (
	"io"
	"sync"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"

	logger "github.com/FlashGalatine/xivdyetools-logger"
)

// JSONTransport writes one serialized entry per line. The output shape is
// exactly {level, message, timestamp, context?, error?}.
type JSONTransport struct {
	mu sync.Mutex
	w  io.Writer
}

// JSON creates a transport writing JSON lines to w.
func JSON(w io.Writer) *JSONTransport {
	return &JSONTransport{w: w}
}

// Write serializes and writes one entry. Serialization or write failures are
// dropped silently.
func (t *JSONTransport) Write(e *logger.LogEntry) {
	buf, err := json.Marshal(e)
	if err != nil {
		return
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	_, _ = t.w.Write(append(buf, '\n'))
}

// ZerologTransport bridges finished entries into a zerolog event stream so
// zerolog-based hosts can consume this pipeline with their existing writers
// and hooks.
type ZerologTransport struct {
	zl zerolog.Logger
}

// Zerolog creates a transport dispatching entries through zl.
//
//nolint:gocritic // zerolog.Logger is designed to be passed by value
func Zerolog(zl zerolog.Logger) *ZerologTransport {
	return &ZerologTransport{zl: zl}
}

// Write maps one entry onto a zerolog event. The entry's own timestamp is
// carried as a field; zerolog's timestamping stays under the host's control.
func (t *ZerologTransport) Write(e *logger.LogEntry) {
	var ev *zerolog.Event
	switch e.Level {
	case logger.LevelDebug:
		ev = t.zl.Debug()
	case logger.LevelInfo:
		ev = t.zl.Info()
	case logger.LevelWarn:
		ev = t.zl.Warn()
	case logger.LevelError:
		ev = t.zl.Error()
	default:
		ev = t.zl.Info()
	}

	if e.Timestamp != "" {
		ev = ev.Str("timestamp", e.Timestamp)
	}
	for k, v := range e.Context {
		ev = ev.Interface(k, v)
	}
	if e.Error != nil {
		ev = ev.Str("error", e.Error.Name+": "+e.Error.Message)
		if e.Error.Code != "" {
			ev = ev.Str("code", e.Error.Code)
		}
	}
	ev.Msg(e.Message)
}

// Pretty renders human-readable console output through zerolog's
// ConsoleWriter.
func Pretty(w io.Writer) *ZerologTransport {
	zl := zerolog.New(zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: "15:04:05",
		NoColor:    false,
	})
	return Zerolog(zl)
}

// DiscardTransport drops every entry.
type DiscardTransport struct{}

// Discard creates a transport that drops all output.
func Discard() DiscardTransport {
	return DiscardTransport{}
}

// Write drops the entry.
func (DiscardTransport) Write(*logger.LogEntry) {}

// MultiTransport fans each entry out to several sinks in order.
type MultiTransport struct {
	sinks []logger.Transport
}

// Multi creates a fan-out transport over the given sinks.
func Multi(sinks ...logger.Transport) *MultiTransport {
	return &MultiTransport{sinks: sinks}
}

// Write dispatches the entry to every sink.
func (t *MultiTransport) Write(e *logger.LogEntry) {
	for _, s := range t.sinks {
		s.Write(e)
	}
}
