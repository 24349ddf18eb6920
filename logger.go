// xivdyetools-logger - Structured Logging for XIVDyeTools Services
// Copyright 2026 FlashGalatine
// SPDX-License-Identifier: MIT
// https://github.com/FlashGalatine/xivdyetools-logger

package logger

import (
	"sync"
)

// Log is the logging contract shared by the core Logger and the delegating
// child loggers returned by Child.
type Log interface {
	// Debug logs at debug severity with optional call-site context.
	Debug(msg string, ctx ...Context)
	// Info logs at info severity with optional call-site context.
	Info(msg string, ctx ...Context)
	// Warn logs at warn severity with optional call-site context.
	Warn(msg string, ctx ...Context)
	// Error logs at error severity. err may be an error, nil (no error), or
	// any other value, which is coerced into the entry's error field.
	Error(msg string, err any, ctx ...Context)
	// SetContext merges the given context into this logger's own layer.
	SetContext(ctx Context)
	// Child returns a delegating logger layering ctx on top of this one.
	Child(ctx Context) Log
	// Time starts a timer; the returned func emits a debug entry with the
	// elapsed duration and returns it in milliseconds.
	Time(label string) func() float64
	// TimeFunc times fn, emitting the duration entry even when fn fails or
	// panics, and propagates fn's outcome unchanged.
	TimeFunc(label string, fn func() error) error
}

// Transport is the destination-specific strategy that performs the actual
// output of a finished entry. Implementations must not panic: output
// failures are the transport's responsibility to suppress or handle.
type Transport interface {
	Write(e *LogEntry)
}

// emitter is the internal dispatch path shared by Logger and child loggers.
// Children forward through it with their layer already merged under the
// call-site context.
type emitter interface {
	emit(level Level, msg string, err any, ctx Context)
}

// Logger is the owning core of the pipeline. It holds the configuration,
// the instance-global context, and the single transport that every
// descendant child logger writes through.
type Logger struct {
	cfg       Config
	transport Transport

	mu     sync.RWMutex
	global Context
}

// New creates a Logger with the given configuration and transport. A nil
// RedactFields falls back to DefaultRedactFields; a nil transport discards
// all output.
func New(cfg Config, t Transport) *Logger {
	if cfg.RedactFields == nil {
		cfg.RedactFields = DefaultRedactFields
	}
	if t == nil {
		t = noopTransport{}
	}
	return &Logger{
		cfg:       cfg,
		transport: t,
		global:    make(Context),
	}
}

// noopTransport keeps a nil-transport Logger safe to call.
type noopTransport struct{}

func (noopTransport) Write(*LogEntry) {}

// Config returns the logger's configuration.
func (l *Logger) Config() Config {
	return l.cfg
}

// Debug logs a debug message.
func (l *Logger) Debug(msg string, ctx ...Context) {
	l.emit(LevelDebug, msg, nil, mergeContexts(ctx...))
}

// Info logs an info message.
func (l *Logger) Info(msg string, ctx ...Context) {
	l.emit(LevelInfo, msg, nil, mergeContexts(ctx...))
}

// Warn logs a warning message.
func (l *Logger) Warn(msg string, ctx ...Context) {
	l.emit(LevelWarn, msg, nil, mergeContexts(ctx...))
}

// Error logs an error message with an optional error value.
func (l *Logger) Error(msg string, err any, ctx ...Context) {
	l.emit(LevelError, msg, err, mergeContexts(ctx...))
}

// SetContext merges the given context into the instance-global context,
// caller winning on key collision. Values are stored raw; redaction happens
// at emit time. There is no deletion: the global context grows monotonically
// for the lifetime of the instance.
func (l *Logger) SetContext(ctx Context) {
	if len(ctx) == 0 {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.global == nil {
		l.global = make(Context, len(ctx))
	}
	for k, v := range ctx {
		l.global[k] = v
	}
}

// Child returns a delegating logger that layers ctx between this logger's
// global context and call-site context. The child holds a non-owning
// reference to this logger: it shares the config and transport by routing
// every write back through it, and later SetContext calls on this logger
// remain visible through the child.
func (l *Logger) Child(ctx Context) Log {
	return newChild(l, ctx)
}

// Time starts a monotonic timer. See Log.Time.
func (l *Logger) Time(label string) func() float64 {
	return timeVia(l, label)
}

// TimeFunc times fn with guaranteed cleanup. See Log.TimeFunc.
func (l *Logger) TimeFunc(label string, fn func() error) error {
	return timeFuncVia(l, label, fn)
}

// emit is the single write path: level gate, then entry construction, then
// transport dispatch. ctx is the already-layered inherited and call-site
// context; the global context merges underneath it here.
func (l *Logger) emit(level Level, msg string, err any, ctx Context) {
	if !Enabled(l.cfg.Level, level) {
		return
	}
	l.mu.RLock()
	entry := buildEntry(l.cfg, level, msg, err, l.global, ctx)
	l.mu.RUnlock()
	l.transport.Write(entry)
}
