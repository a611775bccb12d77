package realtime

import "time"

// FrameClock paces a room loop: one frame interval while something is moving,
// a long idle interval once it has settled. Loops are woken early by Wake, so
// the idle interval only bounds how long a settled loop sleeps unprompted.
type FrameClock struct {
	Interval time.Duration
	Idle     time.Duration
}

// DefaultIdle is how long a settled loop sleeps before re-checking.
const DefaultIdle = time.Minute

// NewFrameClock returns a clock ticking fps times per second.
func NewFrameClock(fps int) FrameClock {
	if fps <= 0 {
		fps = 60
	}
	return FrameClock{
		Interval: time.Second / time.Duration(fps),
		Idle:     DefaultIdle,
	}
}

// Next returns when the loop should run again.
func (c FrameClock) Next(now time.Time, active bool) time.Time {
	if active {
		return now.Add(c.Interval)
	}
	idle := c.Idle
	if idle <= 0 {
		idle = DefaultIdle
	}
	return now.Add(idle)
}

// FPS returns the frame rate implied by Interval.
func (c FrameClock) FPS() int {
	if c.Interval <= 0 {
		return 0
	}
	return int(time.Second / c.Interval)
}
