// Package animation provides the timing primitives behind sheet
// presentation: a replaceable clock, frame tickers, a value controller
// with easing curves, and a damped spring simulation.
//
// The host steps all active tickers once per frame via [StepTickers].
// [AnimationController] drives eased 0-1 progressions for fixed-duration
// animations; [SpringSimulation] integrates spring physics for entrance
// motion. Tests install a fake clock with [SetClock] to advance time
// deterministically.
package animation

import (
	"sync"
	"time"
)

var (
	tickerMu sync.Mutex
	active   []*Ticker
)

// Ticker invokes a callback on every frame while running, passing the
// time elapsed since Start. It is the primitive under
// [AnimationController] and the spring transitions; the host's frame
// loop drives all running tickers through [StepTickers], in the order
// they were started.
type Ticker struct {
	callback func(elapsed time.Duration)
	running  bool
	start    time.Time
}

// NewTicker creates a stopped ticker with the given callback.
func NewTicker(callback func(elapsed time.Duration)) *Ticker {
	return &Ticker{callback: callback}
}

// Start begins ticking. Starting a running ticker does nothing.
func (t *Ticker) Start() {
	if t.running {
		return
	}
	t.running = true
	t.start = Now()
	tickerMu.Lock()
	active = append(active, t)
	tickerMu.Unlock()
}

// Stop ends ticking. Stopping a stopped ticker does nothing.
func (t *Ticker) Stop() {
	if !t.running {
		return
	}
	t.running = false
	tickerMu.Lock()
	for i, other := range active {
		if other == t {
			active = append(active[:i], active[i+1:]...)
			break
		}
	}
	tickerMu.Unlock()
}

// IsActive reports whether the ticker is running.
func (t *Ticker) IsActive() bool {
	return t.running
}

// Elapsed returns the time since Start, or zero when stopped.
func (t *Ticker) Elapsed() time.Duration {
	if !t.running {
		return 0
	}
	return Now().Sub(t.start)
}

// StepTickers advances every running ticker once. The host calls this
// each frame. Callbacks run outside the registry lock, so they may
// stop their own ticker or start new ones.
func StepTickers() {
	tickerMu.Lock()
	stepping := make([]*Ticker, len(active))
	copy(stepping, active)
	tickerMu.Unlock()

	for _, t := range stepping {
		if t.running && t.callback != nil {
			t.callback(Now().Sub(t.start))
		}
	}
}

// HasActiveTickers reports whether any ticker is running.
func HasActiveTickers() bool {
	tickerMu.Lock()
	defer tickerMu.Unlock()
	return len(active) > 0
}
