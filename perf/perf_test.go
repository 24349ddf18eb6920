// xivdyetools-logger - Structured Logging for XIVDyeTools Services
// Copyright 2026 FlashGalatine
// SPDX-License-Identifier: MIT
// https://github.com/FlashGalatine/xivdyetools-logger

package perf

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	logger "github.com/FlashGalatine/xivdyetools-logger"
)

// captureTransport records every entry it receives.
type captureTransport struct {
	entries []*logger.LogEntry
}

func (t *captureTransport) Write(e *logger.LogEntry) {
	t.entries = append(t.entries, e)
}

func newWarnCapture() (logger.Log, *captureTransport) {
	sink := &captureTransport{}
	return logger.New(logger.DefaultConfig(), sink), sink
}

func TestRegistry_StartEnd(t *testing.T) {
	t.Parallel()

	r := NewRegistry(nil)

	if !r.Start("op") {
		t.Fatal("first Start should succeed")
	}
	elapsed := r.End("op")
	if elapsed < 0 {
		t.Errorf("elapsed = %v, want >= 0", elapsed)
	}

	s, ok := r.Metrics("op")
	if !ok {
		t.Fatal("expected stats after End")
	}
	if s.Count != 1 || s.TotalTime != elapsed || s.MinTime != elapsed || s.MaxTime != elapsed || s.AvgTime != elapsed {
		t.Errorf("stats = %+v for single measurement %v", s, elapsed)
	}
}

func TestRegistry_StartRefusesOverwrite(t *testing.T) {
	t.Parallel()

	log, sink := newWarnCapture()
	r := NewRegistry(log)

	if !r.Start("op") {
		t.Fatal("first Start should succeed")
	}
	time.Sleep(20 * time.Millisecond)

	// The second Start must not clobber the first caller's window.
	if r.Start("op") {
		t.Error("second Start should report failure")
	}
	if len(sink.entries) != 1 || sink.entries[0].Level != logger.LevelWarn {
		t.Errorf("expected one warning entry, got %v", sink.entries)
	}

	// A later End reflects the original start, not the refused one.
	elapsed := r.End("op")
	if elapsed < 20 {
		t.Errorf("elapsed = %vms, want >= 20ms from the original start", elapsed)
	}
}

func TestRegistry_EndUnstarted(t *testing.T) {
	t.Parallel()

	log, sink := newWarnCapture()
	r := NewRegistry(log)

	if got := r.End("never-started"); got != 0 {
		t.Errorf("End on unstarted label = %v, want 0", got)
	}
	if len(sink.entries) != 1 || sink.entries[0].Level != logger.LevelWarn {
		t.Errorf("expected one warning entry, got %v", sink.entries)
	}

	if _, ok := r.Metrics("never-started"); ok {
		t.Error("unstarted End must not create stats")
	}
}

func TestRegistry_StatsFold(t *testing.T) {
	t.Parallel()

	r := NewRegistry(nil)

	var durations []float64
	for i := 0; i < 3; i++ {
		r.Start("op")
		if i == 1 {
			time.Sleep(5 * time.Millisecond)
		}
		durations = append(durations, r.End("op"))
	}

	s, _ := r.Metrics("op")
	if s.Count != 3 {
		t.Errorf("count = %d, want 3", s.Count)
	}

	var total, min, max float64
	min = durations[0]
	for _, d := range durations {
		total += d
		if d < min {
			min = d
		}
		if d > max {
			max = d
		}
	}
	if s.MinTime != min || s.MaxTime != max {
		t.Errorf("min/max = %v/%v, want %v/%v", s.MinTime, s.MaxTime, min, max)
	}
	if want := total / 3; s.AvgTime != want {
		t.Errorf("avg = %v, want %v", s.AvgTime, want)
	}
}

func TestRegistry_Measure(t *testing.T) {
	t.Parallel()

	r := NewRegistry(nil)

	err := r.Measure("op", func() error { return nil })
	if err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if s, ok := r.Metrics("op"); !ok || s.Count != 1 {
		t.Errorf("duration not recorded: %+v", s)
	}
}

func TestRegistry_MeasureErrorPropagates(t *testing.T) {
	t.Parallel()

	r := NewRegistry(nil)

	want := errors.New("boom")
	err := r.Measure("op", func() error { return want })

	if !errors.Is(err, want) {
		t.Errorf("error = %v, want %v", err, want)
	}
	// The duration is recorded even on failure.
	if s, ok := r.Metrics("op"); !ok || s.Count != 1 {
		t.Errorf("failure duration not recorded: %+v", s)
	}
}

func TestRegistry_MeasurePanicStillRecords(t *testing.T) {
	t.Parallel()

	r := NewRegistry(nil)

	func() {
		defer func() {
			if recover() == nil {
				t.Error("expected panic to propagate")
			}
		}()
		_ = r.Measure("op", func() error { panic("boom") })
	}()

	if s, ok := r.Metrics("op"); !ok || s.Count != 1 {
		t.Errorf("panic duration not recorded: %+v", s)
	}
}

func TestRegistry_MeasureOnActiveLabelKeepsForeignWindow(t *testing.T) {
	t.Parallel()

	r := NewRegistry(nil)

	r.Start("op")
	_ = r.Measure("op", func() error { return nil })

	// Measure must not have ended the first caller's window.
	if elapsed := r.End("op"); elapsed == 0 {
		t.Error("original window was closed by the overlapping Measure")
	}
	// Only the explicit End recorded a measurement.
	if s, _ := r.Metrics("op"); s.Count != 1 {
		t.Errorf("count = %d, want 1", s.Count)
	}
}

func TestRegistry_ClearMetrics(t *testing.T) {
	t.Parallel()

	log, sink := newWarnCapture()
	r := NewRegistry(log)

	r.Start("done")
	r.End("done")
	r.Start("inflight")

	r.ClearMetrics()

	if len(r.AllMetrics()) != 0 {
		t.Errorf("metrics survived clear: %v", r.AllMetrics())
	}

	// The in-flight timer is gone too: a future End sees it as unstarted.
	sink.entries = nil
	if got := r.End("inflight"); got != 0 {
		t.Errorf("cleared in-flight timer still ended with %v", got)
	}
	if len(sink.entries) != 1 {
		t.Errorf("expected unstarted warning after clear")
	}
}

func TestRegistry_AllMetricsCopies(t *testing.T) {
	t.Parallel()

	r := NewRegistry(nil)
	r.Start("op")
	r.End("op")

	all := r.AllMetrics()
	all["op"] = Stats{Count: 99}

	if s, _ := r.Metrics("op"); s.Count == 99 {
		t.Error("AllMetrics must return copies")
	}
}

func TestRegistry_WithHistogram(t *testing.T) {
	t.Parallel()

	reg := prometheus.NewRegistry()
	r := NewRegistry(nil, WithHistogram(reg))

	r.Start("op")
	r.End("op")

	families, err := reg.Gather()
	if err != nil {
		t.Fatalf("gather: %v", err)
	}
	found := false
	for _, f := range families {
		if f.GetName() == "perf_timer_duration_seconds" {
			found = true
		}
	}
	if !found {
		t.Error("histogram not registered or not observed")
	}
}
