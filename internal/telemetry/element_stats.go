package telemetry

import "sync/atomic"

// ElementStats counts element allocations and releases so that callers can
// check that every element handed to a queue is eventually released once.
type ElementStats struct {
	allocated atomic.Uint64
	released  atomic.Uint64
}

var defaultElementStats ElementStats

// DefaultElementStats returns the process-wide counters.
func DefaultElementStats() *ElementStats {
	return &defaultElementStats
}

// TrackAlloc records one element allocation.
func TrackAlloc() {
	defaultElementStats.allocated.Add(1)
}

// TrackRelease records one element release.
func TrackRelease() {
	defaultElementStats.released.Add(1)
}

// Snapshot returns the collected values. live is the number of elements
// allocated but not yet released.
func (s *ElementStats) Snapshot() (allocated uint64, released uint64, live int64) {
	allocated = s.allocated.Load()
	released = s.released.Load()
	return allocated, released, int64(allocated) - int64(released)
}

// Reset zeroes all counters.
func (s *ElementStats) Reset() {
	s.allocated.Store(0)
	s.released.Store(0)
}
