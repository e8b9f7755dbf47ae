package core

import "time"

// Clock supplies the monotonically increasing frame timestamp.
// Obstacle spawning is timed against it, so tests inject ManualClock.
type Clock interface {
	Now() time.Duration
}

// MonotonicClock measures time elapsed since it was created.
type MonotonicClock struct {
	start time.Time
}

// NewMonotonicClock starts a clock at zero.
func NewMonotonicClock() *MonotonicClock {
	return &MonotonicClock{start: time.Now()}
}

// Now returns the time elapsed since the clock was created.
func (c *MonotonicClock) Now() time.Duration {
	return time.Since(c.start)
}

// ManualClock only moves when told to.
type ManualClock struct {
	now time.Duration
}

// Now returns the current manual time.
func (c *ManualClock) Now() time.Duration {
	return c.now
}

// Advance moves the clock forward by d.
func (c *ManualClock) Advance(d time.Duration) {
	c.now += d
}

// Set jumps the clock to t.
func (c *ManualClock) Set(t time.Duration) {
	c.now = t
}
