package core

import "time"

// DefaultDelay is the tick interval used when none is configured.
const DefaultDelay = 250 * time.Millisecond

// FixedDelay gates simulation ticks on a wall-clock interval. The caller
// supplies the current time so the cadence is deterministic under test.
type FixedDelay struct {
	delay time.Duration
	last  time.Time
}

// NewFixedDelay constructs a FixedDelay whose baseline is start.
func NewFixedDelay(delay time.Duration, start time.Time) *FixedDelay {
	f := &FixedDelay{last: start}
	f.SetDelay(delay)
	return f
}

// SetDelay changes the tick interval. It is safe to call from the main loop.
func (f *FixedDelay) SetDelay(delay time.Duration) {
	if delay <= 0 {
		delay = DefaultDelay
	}
	f.delay = delay
}

// Delay returns the tick interval.
func (f *FixedDelay) Delay() time.Duration { return f.delay }

// Restart moves the baseline to now, so the next tick is a full delay away.
func (f *FixedDelay) Restart(now time.Time) { f.last = now }

// ShouldStep reports whether a full delay has elapsed since the baseline.
// When it has, the baseline moves to now; missed intervals are not replayed.
func (f *FixedDelay) ShouldStep(now time.Time) bool {
	if now.Sub(f.last) < f.delay {
		return false
	}
	f.last = now
	return true
}
