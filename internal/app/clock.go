// internal/app/clock.go
package app

import (
	"sync"
	"time"
)

// Clock is the engine's source of wall time.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the real time.
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }

// ManualClock only moves when told to. Tests and replays drive the engine with it.
type ManualClock struct {
	mu  sync.Mutex
	now time.Time
}

func NewManualClock(start time.Time) *ManualClock {
	return &ManualClock{now: start}
}

func (c *ManualClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

// Advance moves the clock forward by d.
func (c *ManualClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()
}

// PausableClock wraps a clock and stops time while paused. Deadlines armed
// before a pause keep their remaining time after Resume.
type PausableClock struct {
	mu       sync.Mutex
	base     Clock
	paused   bool
	pausedAt time.Time
	offset   time.Duration // total time spent paused
}

// NewPausableClock wraps base, running.
func NewPausableClock(base Clock) *PausableClock {
	return &PausableClock{base: base}
}

func (c *PausableClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.paused {
		return c.pausedAt.Add(-c.offset)
	}
	return c.base.Now().Add(-c.offset)
}

// Pause freezes the clock. Pausing twice is a no-op.
func (c *PausableClock) Pause() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.paused {
		return
	}
	c.paused = true
	c.pausedAt = c.base.Now()
}

// Resume restarts the clock from where it stopped.
func (c *PausableClock) Resume() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.paused {
		return
	}
	c.paused = false
	c.offset += c.base.Now().Sub(c.pausedAt)
}

// Paused reports whether the clock is frozen.
func (c *PausableClock) Paused() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.paused
}
