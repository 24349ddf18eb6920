// xivdyetools-logger - Structured Logging for XIVDyeTools Services
// Copyright 2026 FlashGalatine
// SPDX-License-Identifier: MIT
// https://github.com/FlashGalatine/xivdyetools-logger

// Package track defines the external error-tracking integration consumed by
// the production preset. The tracker itself is an opaque sink; this package
// only decorates a transport to forward warn and error entries to it, never
// suppressing the primary write.
package track

import (
	logger "github.com/FlashGalatine/xivdyetools-logger"
)

// Tracker is the error-tracking sink contract (Sentry-shaped, but any
// implementation works).
type Tracker interface {
	// CaptureException reports an exception with optional context.
	CaptureException(err error, ctx map[string]any)
	// CaptureMessage reports a message with a severity label.
	CaptureMessage(msg string, level logger.Level)
	// SetTag attaches a key/value tag to subsequent reports.
	SetTag(key, value string)
	// SetUser attaches a user identity to subsequent reports.
	SetUser(id string)
}

// trackedError reconstructs an error value from a formatted entry error, so
// the tracker receives something satisfying the error interface.
type trackedError struct {
	name    string
	message string
}

func (e *trackedError) Error() string {
	return e.name + ": " + e.message
}

// Name returns the original error name carried by the entry.
func (e *trackedError) Name() string {
	return e.name
}

// TrackingTransport decorates a primary transport with tracker forwarding:
// error entries become captured exceptions, warn entries become captured
// messages. The primary write always happens first and never depends on the
// tracker's behavior.
type TrackingTransport struct {
	inner   logger.Transport
	tracker Tracker
}

// Transport wraps inner with forwarding to t. A nil tracker degrades to a
// pass-through.
func Transport(inner logger.Transport, t Tracker) *TrackingTransport {
	return &TrackingTransport{inner: inner, tracker: t}
}

// Write dispatches to the primary transport, then forwards warn and error
// entries to the tracker.
func (t *TrackingTransport) Write(e *logger.LogEntry) {
	t.inner.Write(e)

	if t.tracker == nil {
		return
	}

	switch e.Level {
	case logger.LevelError:
		if e.Error != nil {
			t.tracker.CaptureException(
				&trackedError{name: e.Error.Name, message: e.Error.Message},
				map[string]any(e.Context),
			)
		} else {
			t.tracker.CaptureMessage(e.Message, logger.LevelError)
		}
	case logger.LevelWarn:
		t.tracker.CaptureMessage(e.Message, logger.LevelWarn)
	}
}
