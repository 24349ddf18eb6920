// xivdyetools-logger - Structured Logging for XIVDyeTools Services
// Copyright 2026 FlashGalatine
// SPDX-License-Identifier: MIT
// https://github.com/FlashGalatine/xivdyetools-logger

// Package perf provides a label-keyed performance timer registry with
// aggregated per-label statistics. A Registry is an explicit object with a
// documented lifecycle — construct once, share deliberately, clear
// explicitly — there is no implicit package-level singleton.
package perf

import (
	"math"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	logger "github.com/FlashGalatine/xivdyetools-logger"
)

// Stats accumulates completed timings for one label. All durations are in
// milliseconds.
type Stats struct {
	Count     int     `json:"count"`
	TotalTime float64 `json:"totalTime"`
	MinTime   float64 `json:"minTime"`
	MaxTime   float64 `json:"maxTime"`
	AvgTime   float64 `json:"avgTime"`
}

// Option configures a Registry.
type Option func(*Registry)

// WithHistogram publishes every recorded duration to a prometheus histogram
// labeled by timer label, registered against reg.
func WithHistogram(reg prometheus.Registerer) Option {
	return func(r *Registry) {
		r.histogram = promauto.With(reg).NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "perf_timer_duration_seconds",
				Help:    "Duration of labeled timer measurements in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"label"},
		)
	}
}

// Registry tracks in-flight timers and aggregated metrics. All methods are
// safe for concurrent use; the overwrite refusal in Start is the one
// safeguard keeping two concurrent windows under the same label from
// corrupting each other.
type Registry struct {
	log       logger.Log
	histogram *prometheus.HistogramVec

	mu      sync.Mutex
	active  map[string]time.Time
	metrics map[string]*Stats
}

// NewRegistry creates a timer registry. Timer-usage warnings are emitted
// through log; nil means they are discarded.
func NewRegistry(log logger.Log, opts ...Option) *Registry {
	if log == nil {
		log = logger.New(logger.DefaultConfig(), nil)
	}
	r := &Registry{
		log:     log,
		active:  make(map[string]time.Time),
		metrics: make(map[string]*Stats),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Start begins a timer for label. An already-active label is never
// overwritten: the call warns and reports failure, so a later End still
// measures from the original start.
func (r *Registry) Start(label string) bool {
	r.mu.Lock()
	if _, exists := r.active[label]; exists {
		r.mu.Unlock()
		r.log.Warn("timer already started", logger.Context{"label": label})
		return false
	}
	r.active[label] = time.Now()
	r.mu.Unlock()
	return true
}

// End stops the timer for label, removes it from the active set, and folds
// the elapsed duration into the label's aggregated stats. Ending an
// unstarted label warns and returns zero.
func (r *Registry) End(label string) float64 {
	r.mu.Lock()
	start, ok := r.active[label]
	if !ok {
		r.mu.Unlock()
		r.log.Warn("timer was not started", logger.Context{"label": label})
		return 0
	}
	delete(r.active, label)

	elapsed := float64(time.Since(start).Nanoseconds()) / 1e6

	s := r.metrics[label]
	if s == nil {
		s = &Stats{MinTime: math.MaxFloat64}
		r.metrics[label] = s
	}
	s.Count++
	s.TotalTime += elapsed
	if elapsed < s.MinTime {
		s.MinTime = elapsed
	}
	if elapsed > s.MaxTime {
		s.MaxTime = elapsed
	}
	s.AvgTime = s.TotalTime / float64(s.Count)
	r.mu.Unlock()

	if r.histogram != nil {
		r.histogram.WithLabelValues(label).Observe(elapsed / 1000)
	}

	return elapsed
}

// Measure wraps fn between Start and a deferred End, so the duration is
// recorded even when fn fails or panics; fn's outcome propagates unchanged.
// When the label is already active the wrapped call still runs, but no End
// is issued — closing another caller's window would corrupt its measurement.
func (r *Registry) Measure(label string, fn func() error) error {
	if r.Start(label) {
		defer r.End(label)
	}
	return fn()
}

// Metrics returns a copy of the aggregated stats for label.
func (r *Registry) Metrics(label string) (Stats, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.metrics[label]
	if !ok {
		return Stats{}, false
	}
	return *s, true
}

// AllMetrics returns a copy of every label's aggregated stats.
func (r *Registry) AllMetrics() map[string]Stats {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make(map[string]Stats, len(r.metrics))
	for label, s := range r.metrics {
		out[label] = *s
	}
	return out
}

// ClearMetrics empties both the aggregated stats and the active-timer set.
// In-flight timers silently become "unstarted" for future End calls.
func (r *Registry) ClearMetrics() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.active = make(map[string]time.Time)
	r.metrics = make(map[string]*Stats)
}
