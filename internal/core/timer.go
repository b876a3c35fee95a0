package core

import "time"

// FixedStep paces generations at a fixed real-time interval. The first step
// fires one full interval after the first poll, so generation 0 stays on
// screen for a whole period.
type FixedStep struct {
	step        time.Duration
	accumulator time.Duration
	last        time.Time
	now         func() time.Time
}

// DefaultInterval is used when a non-positive interval is requested.
const DefaultInterval = time.Second

// NewFixedStep constructs a FixedStep controller with the given interval.
func NewFixedStep(interval time.Duration) *FixedStep {
	fs := &FixedStep{now: time.Now}
	fs.SetInterval(interval)
	return fs
}

// SetInterval changes the pacing. It is safe to call from the main loop.
func (f *FixedStep) SetInterval(interval time.Duration) {
	if interval <= 0 {
		interval = DefaultInterval
	}
	f.step = interval
}

// Interval returns the current pacing.
func (f *FixedStep) Interval() time.Duration { return f.step }

// ShouldStep reports whether the simulation should advance by one generation.
func (f *FixedStep) ShouldStep() bool {
	now := f.now()
	if f.last.IsZero() {
		f.last = now
	}
	delta := now.Sub(f.last)
	f.last = now
	f.accumulator += delta
	if f.accumulator >= f.step {
		f.accumulator -= f.step
		// Drop backlog after a stall rather than stepping in a burst.
		if f.accumulator > f.step {
			f.accumulator = 0
		}
		return true
	}
	return false
}
