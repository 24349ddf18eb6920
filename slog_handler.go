// xivdyetools-logger - Structured Logging for XIVDyeTools Services
// Copyright 2026 FlashGalatine
// SPDX-License-Identifier: MIT
// https://github.com/FlashGalatine/xivdyetools-logger

package logger

import (
	"context"
	"log/slog"
	"strings"
)

// SlogHandler implements slog.Handler on top of a Log, so hosts and
// libraries written against log/slog emit through this pipeline — level
// gate, context merge, and redaction included.
//
// Usage:
//
//	slogger := slog.New(logger.NewSlogHandler(log))
//	slogger.Info("request served", "status", 200)
type SlogHandler struct {
	log    Log
	attrs  Context
	groups []string
}

// NewSlogHandler creates a new slog.Handler backed by the given logger.
func NewSlogHandler(log Log) *SlogHandler {
	return &SlogHandler{log: log}
}

// Enabled reports whether the handler handles records at the given level.
// The backing logger applies its own gate, so this only rejects levels the
// pipeline can never express.
func (h *SlogHandler) Enabled(_ context.Context, _ slog.Level) bool {
	return true
}

// Handle converts the record's attributes into call-site context and
// dispatches at the mapped severity.
func (h *SlogHandler) Handle(_ context.Context, record slog.Record) error {
	ctx := make(Context, len(h.attrs)+record.NumAttrs())
	for k, v := range h.attrs {
		ctx[k] = v
	}
	record.Attrs(func(attr slog.Attr) bool {
		addSlogAttr(ctx, attr, h.groups)
		return true
	})

	var emitCtx []Context
	if len(ctx) > 0 {
		emitCtx = []Context{ctx}
	}

	switch {
	case record.Level >= slog.LevelError:
		h.log.Error(record.Message, nil, emitCtx...)
	case record.Level >= slog.LevelWarn:
		h.log.Warn(record.Message, emitCtx...)
	case record.Level >= slog.LevelInfo:
		h.log.Info(record.Message, emitCtx...)
	default:
		h.log.Debug(record.Message, emitCtx...)
	}
	return nil
}

// WithAttrs returns a new Handler with the given attributes pre-resolved.
func (h *SlogHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	merged := make(Context, len(h.attrs)+len(attrs))
	for k, v := range h.attrs {
		merged[k] = v
	}
	for _, attr := range attrs {
		addSlogAttr(merged, attr, h.groups)
	}
	return &SlogHandler{log: h.log, attrs: merged, groups: h.groups}
}

// WithGroup returns a new Handler that prefixes subsequent attribute keys
// with the group name.
func (h *SlogHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	groups := make([]string, len(h.groups)+1)
	copy(groups, h.groups)
	groups[len(h.groups)] = name
	return &SlogHandler{log: h.log, attrs: h.attrs, groups: groups}
}

// addSlogAttr resolves one slog attribute into the context map, flattening
// groups into dot-joined key prefixes.
func addSlogAttr(ctx Context, attr slog.Attr, groups []string) {
	attr.Value = attr.Value.Resolve()

	if attr.Value.Kind() == slog.KindGroup {
		for _, ga := range attr.Value.Group() {
			addSlogAttr(ctx, ga, append(groups, attr.Key))
		}
		return
	}

	key := attr.Key
	if len(groups) > 0 {
		key = strings.Join(groups, ".") + "." + key
	}
	ctx[key] = attr.Value.Any()
}
