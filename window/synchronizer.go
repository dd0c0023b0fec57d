package window

import (
	"time"
)

// maxLagFrames is how far behind the schedule may fall before it is reset
// to the current time instead of being caught up.
const maxLagFrames = 4

// TimeSynchronizer sleeps between frames to hold a target frame rate.
// Ticks are microseconds.
type TimeSynchronizer struct {
	prevTicks, usPerFrame int64
	now                   func() int64
	delay                 func(us int64)
}

func NewTimeSynchronizer(targetFPS float64) *TimeSynchronizer {
	start := time.Now()
	return newTimeSynchronizer(
		targetFPS,
		func() int64 { return time.Since(start).Microseconds() },
		func(us int64) { time.Sleep(time.Duration(us) * time.Microsecond) },
	)
}

func newTimeSynchronizer(targetFPS float64, now func() int64, delay func(int64)) *TimeSynchronizer {
	return &TimeSynchronizer{
		prevTicks:  now(),
		usPerFrame: int64(1000000.0 / targetFPS),
		now:        now,
		delay:      delay,
	}
}

// MaySleep waits until the next frame is due.
func (ts *TimeSynchronizer) MaySleep() {
	cur := ts.now()
	next := ts.prevTicks + ts.usPerFrame
	if diff := next - cur; diff > 1000 { // Larger than 1ms
		ts.delay(diff)
	}
	ts.prevTicks = next
	if cur-ts.prevTicks > maxLagFrames*ts.usPerFrame {
		ts.prevTicks = cur
	}
}
