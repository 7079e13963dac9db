package core

import "time"

// FrameDuration is the nominal 60 Hz frame that physics constants are tuned for.
const FrameDuration = time.Second / 60

// MaxStep caps a single simulation step so a stalled terminal cannot
// tunnel objects through each other.
const MaxStep = 32 * time.Millisecond

// ClampStep limits dt to [0, MaxStep].
func ClampStep(dt time.Duration) time.Duration {
	if dt < 0 {
		return 0
	}
	if dt > MaxStep {
		return MaxStep
	}
	return dt
}

// FrameFactor converts dt to multiples of the nominal frame.
func FrameFactor(dt time.Duration) float64 {
	return float64(dt) / float64(FrameDuration)
}

// FrameClock turns tick timestamps into clamped step durations.
// The first tick after a Reset yields 0.
type FrameClock struct {
	last    time.Time
	started bool
}

// Tick records now and returns the clamped time since the previous tick.
func (c *FrameClock) Tick(now time.Time) time.Duration {
	if !c.started {
		c.started = true
		c.last = now
		return 0
	}
	dt := now.Sub(c.last)
	c.last = now
	return ClampStep(dt)
}

// Reset forgets the previous timestamp.
func (c *FrameClock) Reset() {
	c.started = false
}
