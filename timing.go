// xivdyetools-logger - Structured Logging for XIVDyeTools Services
// Copyright 2026 FlashGalatine
// SPDX-License-Identifier: MIT
// https://github.com/FlashGalatine/xivdyetools-logger

package logger

import (
	"fmt"
	"time"
)

// timeVia starts a timer and returns the stop func shared by Logger.Time and
// child.Time. time.Now carries Go's monotonic clock reading, so the elapsed
// duration is immune to wall-clock adjustments.
func timeVia(e emitter, label string) func() float64 {
	start := time.Now()
	return func() float64 {
		elapsed := float64(time.Since(start).Nanoseconds()) / 1e6
		e.emit(LevelDebug, fmt.Sprintf("%s: %.2fms", label, elapsed), nil, Context{
			"duration": elapsed,
			"label":    label,
		})
		return elapsed
	}
}

// timeFuncVia wraps fn between timer start and a deferred stop, so the
// timing entry is emitted whether fn returns, fails, or panics. fn's outcome
// propagates to the caller unchanged.
func timeFuncVia(e emitter, label string, fn func() error) error {
	stop := timeVia(e, label)
	defer stop()
	return fn()
}
