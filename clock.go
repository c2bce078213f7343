package gizmo

import (
	"time"
)

// Clock supplies the elapsed display time that advances gizmo animations. The
// host owns and updates it once per frame; builders only read it while
// drawing. The value is expected to grow monotonically within a run, but
// nothing here breaks if the host wraps or resets it.
type Clock interface {
	ElapsedSeconds() float32
}

// SystemClock measures wall time since construction.
type SystemClock struct {
	start time.Time
}

func NewSystemClock() *SystemClock {
	return &SystemClock{start: time.Now()}
}

func (c *SystemClock) ElapsedSeconds() float32 {
	return float32(time.Since(c.start).Seconds())
}

// ManualClock is stepped explicitly by the host. Useful for fixed-timestep
// schedules and for tests that need deterministic animation phases. The zero
// value starts at t=0.
type ManualClock struct {
	elapsed float32
}

// Advance moves the clock forward by dt seconds.
func (c *ManualClock) Advance(dt float32) {
	c.elapsed += dt
}

// Set jumps the clock to an absolute elapsed time.
func (c *ManualClock) Set(elapsed float32) {
	c.elapsed = elapsed
}

func (c *ManualClock) ElapsedSeconds() float32 {
	return c.elapsed
}
