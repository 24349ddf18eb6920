// xivdyetools-logger - Structured Logging for XIVDyeTools Services
// Copyright 2026 FlashGalatine
// SPDX-License-Identifier: MIT
// https://github.com/FlashGalatine/xivdyetools-logger

package logger

import (
	"fmt"
	"reflect"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/FlashGalatine/xivdyetools-logger/redact"
)

// Context is structured key-value metadata attached to or inherited by a log
// entry. Keys are open-ended; requestId, userId, operation, service, and
// environment are the conventional ones.
type Context map[string]any

// LogEntry is the immutable record handed to a transport. The JSON field
// names and their presence rules are the wire contract consumed by
// downstream log aggregation and must remain stable key-for-key.
type LogEntry struct {
	Level     Level       `json:"level"`
	Message   string      `json:"message"`
	Timestamp string      `json:"timestamp,omitempty"`
	Context   Context     `json:"context,omitempty"`
	Error     *EntryError `json:"error,omitempty"`
}

// EntryError is the formatted error attached to an error-level entry.
type EntryError struct {
	Name    string `json:"name"`
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
	Stack   string `json:"stack,omitempty"`
}

// Optional capabilities a custom error type can implement to carry an
// explicit name, code, or stack trace into the formatted entry.
type (
	namedError   interface{ Name() string }
	codedError   interface{ Code() string }
	stackedError interface{ Stack() string }
)

// buildEntry assembles one LogEntry from raw inputs. Context layers merge
// left to right with later layers winning on key collision; the merged map
// is field-redacted here, never at SetContext time.
func buildEntry(cfg Config, level Level, msg string, err any, layers ...Context) *LogEntry {
	if cfg.Prefix != "" {
		msg = "[" + cfg.Prefix + "] " + msg
	}

	e := &LogEntry{
		Level:   level,
		Message: msg,
	}

	if cfg.Timestamps {
		e.Timestamp = time.Now().UTC().Format(time.RFC3339Nano)
	}

	if merged := mergeContexts(layers...); len(merged) > 0 {
		e.Context = Context(redact.Fields(merged, cfg.RedactFields))
	}

	e.Error = formatError(err, cfg.SanitizeErrors)

	return e
}

// mergeContexts overlays layers left to right. A nil result means no layer
// contributed a key, which keeps the context field absent from the entry.
func mergeContexts(layers ...Context) Context {
	var merged Context
	for _, layer := range layers {
		if len(layer) == 0 {
			continue
		}
		if merged == nil {
			merged = make(Context, len(layer))
		}
		for k, v := range layer {
			merged[k] = v
		}
	}
	return merged
}

// formatError coerces the raw error argument into an EntryError. nil means
// "no error" and yields nil. Values that are not errors are wrapped as
// {name: "Unknown", message: fmt.Sprint(v)} rather than rejected.
func formatError(raw any, sanitize bool) *EntryError {
	if raw == nil {
		return nil
	}

	err, ok := raw.(error)
	if !ok {
		return &EntryError{Name: "Unknown", Message: fmt.Sprint(raw)}
	}

	fe := &EntryError{
		Name:    errorName(err),
		Message: err.Error(),
	}

	if c, ok := err.(codedError); ok {
		fe.Code = c.Code()
	}

	if sanitize {
		fe.Message = redact.Message(fe.Message)
	} else if s, ok := err.(stackedError); ok {
		fe.Stack = s.Stack()
	}

	return fe
}

// errorName resolves the reported error name. An explicit Name() wins,
// then the exported concrete type name; unexported types (errors.New,
// fmt.Errorf) collapse to the generic "Error".
func errorName(err error) string {
	if n, ok := err.(namedError); ok {
		return n.Name()
	}

	t := reflect.TypeOf(err)
	for t != nil && t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if t == nil {
		return "Error"
	}

	name := t.Name()
	if r, _ := utf8.DecodeRuneInString(name); r != utf8.RuneError && unicode.IsUpper(r) {
		return name
	}
	return "Error"
}
