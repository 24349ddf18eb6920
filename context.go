// xivdyetools-logger - Structured Logging for XIVDyeTools Services
// Copyright 2026 FlashGalatine
// SPDX-License-Identifier: MIT
// https://github.com/FlashGalatine/xivdyetools-logger

package logger

import (
	"context"

	"github.com/google/uuid"
)

// Context keys for propagation through context.Context.
type contextKey string

const (
	// requestIDKey is the context key for request IDs.
	requestIDKey contextKey = "requestId"

	// loggerKey is the context key for storing a logger instance.
	loggerKey contextKey = "logger"
)

// NewRequestID creates a new unique request ID.
func NewRequestID() string {
	return uuid.New().String()
}

// WithRequestID returns a new context carrying the given request ID.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

// WithNewRequestID returns a context carrying a freshly generated request ID.
func WithNewRequestID(ctx context.Context) context.Context {
	return WithRequestID(ctx, NewRequestID())
}

// RequestIDFromContext retrieves the request ID from context.
// Returns empty string if not present.
func RequestIDFromContext(ctx context.Context) string {
	if id, ok := ctx.Value(requestIDKey).(string); ok {
		return id
	}
	return ""
}

// WithLogger stores a logger in the context. This is useful for passing
// pre-configured loggers through middleware.
func WithLogger(ctx context.Context, log Log) context.Context {
	return context.WithValue(ctx, loggerKey, log)
}

// FromContext retrieves a logger from context. Returns a discarding logger
// if none is stored, so the result is always safe to call.
func FromContext(ctx context.Context) Log {
	if log, ok := ctx.Value(loggerKey).(Log); ok {
		return log
	}
	return New(DefaultConfig(), nil)
}

// Ctx returns a logger with the context's request ID layered in. base may be
// nil, in which case the logger stored in ctx (or a discarding fallback) is
// used.
//
//	logger.Ctx(ctx, log).Info("processing request")
func Ctx(ctx context.Context, base Log) Log {
	if base == nil {
		base = FromContext(ctx)
	}
	if id := RequestIDFromContext(ctx); id != "" {
		return base.Child(Context{"requestId": id})
	}
	return base
}
