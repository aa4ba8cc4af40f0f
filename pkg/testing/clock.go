package testing

import (
	"sync"
	"time"
)

// fakeEpoch is where every FakeClock starts. The fixed date keeps
// captured timestamps stable across runs.
var fakeEpoch = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

// FakeClock stands in for the wall clock during tests. Install it with
// animation.SetClock, then move time with Advance; nothing happens
// between calls, so every frame of a transition can be inspected.
//
// Safe for concurrent use.
type FakeClock struct {
	mu  sync.RWMutex
	now time.Time
}

// NewFakeClock returns a FakeClock parked at a fixed epoch.
func NewFakeClock() *FakeClock {
	return &FakeClock{now: fakeEpoch}
}

// Now returns the current fake time.
func (c *FakeClock) Now() time.Time {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.now
}

// Advance moves the clock forward by d.
func (c *FakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

// Set jumps the clock to an exact time.
func (c *FakeClock) Set(t time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = t
}
