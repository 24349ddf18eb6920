// xivdyetools-logger - Structured Logging for XIVDyeTools Services
// Copyright 2026 FlashGalatine
// SPDX-License-Identifier: MIT
// https://github.com/FlashGalatine/xivdyetools-logger

package logger

import (
	"sync"
)

// child is a delegating logger: a non-owning reference to its parent plus an
// incremental context layer. It has no config and no transport of its own;
// every write routes through the owning Logger at the root of the chain.
// Children compose recursively, so a grandchild's entry merges four layers
// in precedence order: root global < child < grandchild < call site.
type child struct {
	parent emitter

	mu    sync.RWMutex
	layer Context
}

func newChild(parent emitter, layer Context) *child {
	c := &child{
		parent: parent,
		layer:  make(Context, len(layer)),
	}
	for k, v := range layer {
		c.layer[k] = v
	}
	return c
}

// Debug logs a debug message.
func (c *child) Debug(msg string, ctx ...Context) {
	c.emit(LevelDebug, msg, nil, mergeContexts(ctx...))
}

// Info logs an info message.
func (c *child) Info(msg string, ctx ...Context) {
	c.emit(LevelInfo, msg, nil, mergeContexts(ctx...))
}

// Warn logs a warning message.
func (c *child) Warn(msg string, ctx ...Context) {
	c.emit(LevelWarn, msg, nil, mergeContexts(ctx...))
}

// Error logs an error message with an optional error value.
func (c *child) Error(msg string, err any, ctx ...Context) {
	c.emit(LevelError, msg, err, mergeContexts(ctx...))
}

// SetContext merges ctx into this child's own layer only. The parent's
// global context is never touched.
func (c *child) SetContext(ctx Context) {
	if len(ctx) == 0 {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	for k, v := range ctx {
		c.layer[k] = v
	}
}

// Child returns a grandchild layering ctx on top of this child.
func (c *child) Child(ctx Context) Log {
	return newChild(c, ctx)
}

// Time starts a monotonic timer. See Log.Time.
func (c *child) Time(label string) func() float64 {
	return timeVia(c, label)
}

// TimeFunc times fn with guaranteed cleanup. See Log.TimeFunc.
func (c *child) TimeFunc(label string, fn func() error) error {
	return timeFuncVia(c, label, fn)
}

// emit layers this child's context under the already-merged downstream
// context and forwards to the parent. The level gate lives at the root
// Logger, which owns the configuration.
func (c *child) emit(level Level, msg string, err any, ctx Context) {
	c.mu.RLock()
	merged := mergeContexts(c.layer, ctx)
	c.mu.RUnlock()
	c.parent.emit(level, msg, err, merged)
}
