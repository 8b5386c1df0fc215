// Package profiling accumulates named durations within a single frame so
// slow frames can be logged with a breakdown.
package profiling

import (
	"sort"
	"strings"
	"time"
)

// FrameTimer is owned by the frame loop and reset at the start of every
// frame. It is not safe for concurrent use; the loop is single-threaded.
type FrameTimer struct {
	totals map[string]time.Duration
}

func NewFrameTimer() *FrameTimer {
	return &FrameTimer{totals: make(map[string]time.Duration)}
}

// Reset clears the current frame's totals.
func (t *FrameTimer) Reset() {
	for k := range t.totals {
		delete(t.totals, k)
	}
}

// Track returns a stop function that records the elapsed time under name.
// Usage: defer timer.Track("render")()
func (t *FrameTimer) Track(name string) func() {
	start := time.Now()
	return func() {
		t.totals[name] += time.Since(start)
	}
}

// Breakdown formats the frame's totals sorted by duration, longest first.
// Example: "render:4.2ms, swap:1.1ms, poll:0.1ms"
func (t *FrameTimer) Breakdown() string {
	type entry struct {
		name string
		dur  time.Duration
	}
	entries := make([]entry, 0, len(t.totals))
	for k, v := range t.totals {
		entries = append(entries, entry{k, v})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].dur > entries[j].dur })

	parts := make([]string, len(entries))
	for i, e := range entries {
		ms := float64(e.dur.Microseconds()) / 1000.0
		parts[i] = e.name + ":" + formatMs(ms)
	}
	return strings.Join(parts, ", ")
}

func formatMs(ms float64) string {
	d := time.Duration(ms * float64(time.Millisecond))
	return d.Round(10 * time.Microsecond).String()
}
