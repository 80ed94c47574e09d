package core

import (
	"math"
	"time"
)

// FixedStep helps run simulation updates at a steady ticks-per-second rate.
type FixedStep struct {
	step        time.Duration
	accumulator time.Duration
	last        time.Time
	now         func() time.Time
}

// NewFixedStep constructs a FixedStep controller targeting the given TPS.
func NewFixedStep(tps int) *FixedStep {
	if tps <= 0 {
		tps = 60
	}
	fs := &FixedStep{now: time.Now}
	fs.SetTPS(tps)
	fs.accumulator = fs.step
	return fs
}

// SetTPS changes the tick rate. It is safe to call from the main loop.
func (f *FixedStep) SetTPS(tps int) {
	if tps <= 0 {
		tps = 60
	}
	f.step = time.Second / time.Duration(tps)
}

// Step returns the current tick interval.
func (f *FixedStep) Step() time.Duration { return f.step }

// ShouldStep reports whether the simulation should advance by one tick. At
// most one tick is granted per call; a backlog is paid off on later calls
// instead of running several updates back to back.
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
		if f.accumulator > f.step {
			f.accumulator = f.step
		}
		return true
	}
	return false
}

// FrameClock tracks frame rate and the time spent inside the last update.
type FrameClock struct {
	lastFrame time.Time
	fps       float64
	update    time.Duration
	now       func() time.Time
}

// NewFrameClock returns a clock backed by time.Now.
func NewFrameClock() *FrameClock {
	return &FrameClock{now: time.Now}
}

// Measure runs fn, records how long it took and updates the frame rate from
// the gap since the previous call.
func (c *FrameClock) Measure(fn func()) {
	before := c.now()
	fn()
	after := c.now()
	if !c.lastFrame.IsZero() {
		if gap := after.Sub(c.lastFrame); gap > 0 {
			c.fps = math.Ceil(float64(time.Second) / float64(gap))
		}
	}
	c.lastFrame = after
	c.update = after.Sub(before)
}

// FPS returns the frame rate observed between the last two Measure calls.
func (c *FrameClock) FPS() float64 { return c.fps }

// UpdateTime returns the duration of the last measured update.
func (c *FrameClock) UpdateTime() time.Duration { return c.update }

// RoundUpHundredth rounds v up to two decimal places.
func RoundUpHundredth(v float64) float64 {
	return math.Ceil(v*100) / 100
}
