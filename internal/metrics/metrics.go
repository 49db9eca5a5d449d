package metrics

import (
	"sync"
	"time"
)

type channelStats struct {
	resolutions      int
	fallbackDraws    int
	degradedSlots    int
	unresolvedTokens int
	lastResolveTime  time.Duration
}

// Recorder captures lightweight, in-memory metrics about resolution and
// generation passes. It is intentionally simple so it can be swapped for a
// real backend later.
type Recorder struct {
	mu                sync.Mutex
	stats             map[string]*channelStats
	unknownConditions map[string]int
	passCycles        int
	passErrors        int
	otel              *otelInstruments
}

func NewRecorder() *Recorder {
	return newRecorder(nil)
}

func newRecorder(otel *otelInstruments) *Recorder {
	return &Recorder{
		stats:             make(map[string]*channelStats),
		unknownConditions: make(map[string]int),
		otel:              otel,
	}
}

// RecordResolution counts one slot resolution for a channel, noting whether
// a fallback draw supplied the text and whether the slot degraded to the
// safe default.
func (r *Recorder) RecordResolution(channel string, duration time.Duration, fallbackDraw, degraded bool) {
	if r == nil {
		return
	}

	r.mu.Lock()
	stats := r.ensureStats(channel)
	stats.resolutions++
	stats.lastResolveTime = duration
	if fallbackDraw {
		stats.fallbackDraws++
	}
	if degraded {
		stats.degradedSlots++
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordResolution(channel, duration, fallbackDraw, degraded)
	}
}

// RecordUnresolvedTokens counts placeholders left verbatim in a channel's
// rendered output.
func (r *Recorder) RecordUnresolvedTokens(channel string, count int) {
	if r == nil || count <= 0 {
		return
	}

	r.mu.Lock()
	r.ensureStats(channel).unresolvedTokens += count
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordUnresolvedTokens(channel, count)
	}
}

// RecordUnknownCondition tracks a rule referencing a condition absent from
// the catalog.
func (r *Recorder) RecordUnknownCondition(condition string) {
	if r == nil {
		return
	}

	r.mu.Lock()
	r.unknownConditions[condition]++
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordUnknownCondition(condition)
	}
}

// RecordPassCycle counts one full generation pass and its outcome.
func (r *Recorder) RecordPassCycle(duration time.Duration, err error) {
	if r == nil {
		return
	}

	r.mu.Lock()
	r.passCycles++
	if err != nil {
		r.passErrors++
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordPassCycle(duration, err)
	}
}

// ChannelSnapshot reports the stats recorded for one channel.
type ChannelSnapshot struct {
	Resolutions      int
	FallbackDraws    int
	DegradedSlots    int
	UnresolvedTokens int
	LastResolveTime  time.Duration
}

// Snapshot returns a copy of the stats for a channel.
func (r *Recorder) Snapshot(channel string) ChannelSnapshot {
	if r == nil {
		return ChannelSnapshot{}
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	stats, ok := r.stats[channel]
	if !ok {
		return ChannelSnapshot{}
	}
	return ChannelSnapshot{
		Resolutions:      stats.resolutions,
		FallbackDraws:    stats.fallbackDraws,
		DegradedSlots:    stats.degradedSlots,
		UnresolvedTokens: stats.unresolvedTokens,
		LastResolveTime:  stats.lastResolveTime,
	}
}

// UnknownConditionCount returns how often the named condition was reported
// missing.
func (r *Recorder) UnknownConditionCount(condition string) int {
	if r == nil {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.unknownConditions[condition]
}

// PassCycles returns the total generation passes recorded.
func (r *Recorder) PassCycles() int {
	if r == nil {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.passCycles
}

// PassErrors returns the total failed generation passes recorded.
func (r *Recorder) PassErrors() int {
	if r == nil {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.passErrors
}

func (r *Recorder) ensureStats(channel string) *channelStats {
	stats, ok := r.stats[channel]
	if !ok {
		stats = &channelStats{}
		r.stats[channel] = stats
	}
	return stats
}
