// xivdyetools-logger - Structured Logging for XIVDyeTools Services
// Copyright 2026 FlashGalatine
// SPDX-License-Identifier: MIT
// https://github.com/FlashGalatine/xivdyetools-logger

package logger

import (
	"context"
	"testing"
)

func TestRequestIDRoundTrip(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	if got := RequestIDFromContext(ctx); got != "" {
		t.Errorf("empty context returned %q", got)
	}

	ctx = WithRequestID(ctx, "req-1")
	if got := RequestIDFromContext(ctx); got != "req-1" {
		t.Errorf("RequestIDFromContext = %q, want req-1", got)
	}
}

func TestWithNewRequestID(t *testing.T) {
	t.Parallel()

	ctx := WithNewRequestID(context.Background())
	if RequestIDFromContext(ctx) == "" {
		t.Error("expected generated request ID")
	}
}

func TestNewRequestID_Unique(t *testing.T) {
	t.Parallel()

	if NewRequestID() == NewRequestID() {
		t.Error("expected unique request IDs")
	}
}

func TestLoggerFromContext(t *testing.T) {
	t.Parallel()

	// Absent logger falls back to a safe discarding instance.
	fallback := FromContext(context.Background())
	fallback.Info("must not panic")

	log, _ := newCaptureLogger(DefaultConfig())
	ctx := WithLogger(context.Background(), log)
	if FromContext(ctx) != Log(log) {
		t.Error("stored logger not returned")
	}
}

func TestCtx_LayersRequestID(t *testing.T) {
	t.Parallel()

	log, sink := newCaptureLogger(DefaultConfig())
	ctx := WithRequestID(context.Background(), "req-42")

	Ctx(ctx, log).Info("processing")

	if got := sink.entries[0].Context["requestId"]; got != "req-42" {
		t.Errorf("requestId = %v, want req-42", got)
	}
}

func TestCtx_NoRequestIDReturnsBase(t *testing.T) {
	t.Parallel()

	log, sink := newCaptureLogger(DefaultConfig())

	Ctx(context.Background(), log).Info("x")

	if sink.entries[0].Context != nil {
		t.Errorf("expected no context, got %v", sink.entries[0].Context)
	}
}

func TestCtx_NilBaseUsesStoredLogger(t *testing.T) {
	t.Parallel()

	log, sink := newCaptureLogger(DefaultConfig())
	ctx := WithLogger(context.Background(), log)
	ctx = WithRequestID(ctx, "req-7")

	Ctx(ctx, nil).Info("x")

	if got := sink.entries[0].Context["requestId"]; got != "req-7" {
		t.Errorf("requestId = %v, want req-7", got)
	}
}
