package core

import "time"

// MaxFrameDelta caps a single simulation step so a suspended terminal or a
// stalled SSH session does not produce one giant jump.
const MaxFrameDelta = 50 * time.Millisecond

// FrameClock turns raw frame timestamps into clamped deltas and keeps a
// monotonic total of simulated time.
type FrameClock struct {
	last    time.Time
	started bool
	total   time.Duration
}

// NewFrameClock creates a clock that has not seen a frame yet.
func NewFrameClock() *FrameClock {
	return &FrameClock{}
}

// Tick records a frame at now and returns the clamped delta since the
// previous frame. The first frame always yields zero.
func (c *FrameClock) Tick(now time.Time) time.Duration {
	if !c.started {
		c.started = true
		c.last = now
		return 0
	}
	raw := now.Sub(c.last)
	c.last = now
	return c.Advance(raw)
}

// Advance adds an already measured delta to the clock, clamping it to
// [0, MaxFrameDelta], and returns the clamped value.
func (c *FrameClock) Advance(raw time.Duration) time.Duration {
	dt := ClampDelta(raw)
	c.total += dt
	return dt
}

// Total returns the accumulated simulated time.
func (c *FrameClock) Total() time.Duration {
	return c.total
}

// ClampDelta restricts a frame delta to [0, MaxFrameDelta].
// Negative values, e.g. from a clock going backwards, become zero.
func ClampDelta(raw time.Duration) time.Duration {
	if raw <= 0 {
		return 0
	}
	if raw > MaxFrameDelta {
		return MaxFrameDelta
	}
	return raw
}

// Millis returns d as fractional milliseconds.
func Millis(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}
