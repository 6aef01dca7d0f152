package core

import (
	"testing"
	"time"
)

func TestClampDelta(t *testing.T) {
	tests := []struct {
		name     string
		raw      time.Duration
		expected time.Duration
	}{
		{"negative", -10 * time.Millisecond, 0},
		{"zero", 0, 0},
		{"normal frame", 16 * time.Millisecond, 16 * time.Millisecond},
		{"at cap", 50 * time.Millisecond, 50 * time.Millisecond},
		{"tab suspended", 3 * time.Second, 50 * time.Millisecond},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := ClampDelta(tc.raw); got != tc.expected {
				t.Errorf("ClampDelta(%v) = %v, expected %v", tc.raw, got, tc.expected)
			}
		})
	}
}

func TestFrameClockTick(t *testing.T) {
	c := NewFrameClock()
	base := time.Unix(1000, 0)

	if dt := c.Tick(base); dt != 0 {
		t.Errorf("first Tick should return 0, got %v", dt)
	}
	if dt := c.Tick(base.Add(16 * time.Millisecond)); dt != 16*time.Millisecond {
		t.Errorf("Tick() = %v, expected 16ms", dt)
	}
	if dt := c.Tick(base.Add(5 * time.Second)); dt != MaxFrameDelta {
		t.Errorf("long gap should clamp to %v, got %v", MaxFrameDelta, dt)
	}
	// Clock going backwards
	if dt := c.Tick(base); dt != 0 {
		t.Errorf("backwards Tick should return 0, got %v", dt)
	}

	if c.Total() != 66*time.Millisecond {
		t.Errorf("Total() = %v, expected 66ms", c.Total())
	}
}

func TestFrameClockDeltaAlwaysInRange(t *testing.T) {
	c := NewFrameClock()
	raws := []time.Duration{-time.Hour, -1, 0, 1, 17 * time.Millisecond, 49 * time.Millisecond, 51 * time.Millisecond, time.Hour}
	var sum time.Duration
	for _, raw := range raws {
		dt := c.Advance(raw)
		if dt < 0 || dt > MaxFrameDelta {
			t.Fatalf("Advance(%v) = %v, outside [0, %v]", raw, dt, MaxFrameDelta)
		}
		sum += dt
	}
	if c.Total() != sum {
		t.Errorf("Total() = %v, expected %v", c.Total(), sum)
	}
}
