package core

import "time"

// TickTimer decides when the simulation should advance by one generation. It
// samples a single monotonic clock, so the comparison and the new baseline
// always come from the same reading.
type TickTimer struct {
	clock    Clock
	interval time.Duration
	last     time.Time
}

// NewTickTimer constructs a TickTimer with its baseline set to the current
// time of clock.
func NewTickTimer(clock Clock, interval time.Duration) *TickTimer {
	if clock == nil {
		clock = SystemClock{}
	}
	t := &TickTimer{clock: clock}
	t.SetInterval(interval)
	t.last = clock.Now()
	return t
}

// SetInterval changes the tick interval. The phase baseline is kept, so a
// shorter interval may make the next Due call fire immediately.
func (t *TickTimer) SetInterval(d time.Duration) {
	if d <= 0 {
		d = time.Second
	}
	t.interval = d
}

// Interval returns the current tick interval.
func (t *TickTimer) Interval() time.Duration { return t.interval }

// Reset moves the baseline to now.
func (t *TickTimer) Reset() { t.last = t.clock.Now() }

// Elapsed returns the time since the last baseline.
func (t *TickTimer) Elapsed() time.Duration { return t.clock.Now().Sub(t.last) }

// Due reports whether at least one interval has passed since the baseline.
// When it returns true the baseline moves to the sampled time; missed
// intervals are not replayed.
func (t *TickTimer) Due() bool {
	now := t.clock.Now()
	if now.Sub(t.last) < t.interval {
		return false
	}
	t.last = now
	return true
}
