package core

import "time"

// Clock turns wall-clock readings into (now, delta) pairs for the simulation tick.
type Clock struct {
	start    time.Time
	last     time.Time
	maxDelta time.Duration
	now      func() time.Time
}

// NewClock constructs a Clock. Deltas above maxDelta are clamped; zero disables clamping.
func NewClock(maxDelta time.Duration) *Clock {
	return NewClockFunc(maxDelta, time.Now)
}

// NewClockFunc constructs a Clock reading time from now.
func NewClockFunc(maxDelta time.Duration, now func() time.Time) *Clock {
	if now == nil {
		now = time.Now
	}
	return &Clock{maxDelta: maxDelta, now: now}
}

// Tick returns the time since the first tick and the time since the previous tick.
// The first call always reports a zero delta.
func (c *Clock) Tick() (time.Duration, time.Duration) {
	t := c.now()
	if c.start.IsZero() {
		c.start = t
		c.last = t
	}
	delta := t.Sub(c.last)
	if delta < 0 {
		delta = 0
	}
	if c.maxDelta > 0 && delta > c.maxDelta {
		delta = c.maxDelta
	}
	c.last = t
	return t.Sub(c.start), delta
}

// Resync forgets the previous reading so the next Tick reports a zero delta.
// It is used after pauses.
func (c *Clock) Resync() {
	if c.start.IsZero() {
		return
	}
	c.last = c.now()
}
