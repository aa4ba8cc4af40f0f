package testing

import (
	"errors"
	"testing"
	"time"

	"github.com/go-drift/sheet/pkg/animation"
	"github.com/go-drift/sheet/pkg/overlay"
	"github.com/go-drift/sheet/pkg/rendering"
)

const (
	// DefaultTestWidth is the default logical width of the test screen.
	DefaultTestWidth = 400
	// DefaultTestHeight is the default logical height of the test screen.
	DefaultTestHeight = 800
)

// ErrSettleTimeout is returned when PumpUntilSettled exceeds its timeout.
var ErrSettleTimeout = errors.New("PumpUntilSettled timed out: animations did not settle")

// Tester drives a presentation host against a fake clock. It steps the
// same queue, animation, and input phases as a live host but paints into
// serialized display lists instead of a platform canvas.
type Tester struct {
	host      *overlay.Presenter
	clock     *FakeClock
	prevClock animation.Clock
}

// NewTester creates a tester with the default portrait test screen and
// no safe-area insets. Call Cleanup when done, or use NewTesterWithT.
func NewTester() *Tester {
	return NewTesterEnv(overlay.Env{
		Screen: rendering.Size{Width: DefaultTestWidth, Height: DefaultTestHeight},
	})
}

// NewTesterEnv creates a tester presenting into the given environment.
func NewTesterEnv(env overlay.Env) *Tester {
	clk := NewFakeClock()
	t := &Tester{
		host:  overlay.NewPresenter(env),
		clock: clk,
	}
	t.prevClock = animation.SetClock(clk)
	return t
}

// NewTesterWithT creates a tester that auto-cleans up via t.Cleanup().
// This is the recommended constructor for tests.
func NewTesterWithT(t *testing.T) *Tester {
	tester := NewTester()
	t.Cleanup(tester.Cleanup)
	return tester
}

// NewTesterEnvWithT is NewTesterEnv with automatic cleanup.
func NewTesterEnvWithT(t *testing.T, env overlay.Env) *Tester {
	tester := NewTesterEnv(env)
	t.Cleanup(tester.Cleanup)
	return tester
}

// Cleanup restores global state (animation clock). Must be called if
// not using NewTesterWithT.
func (t *Tester) Cleanup() {
	animation.SetClock(t.prevClock)
}

// Host returns the presentation host under test. Pass it to Sheet.Show.
func (t *Tester) Host() *overlay.Presenter {
	return t.host
}

// Clock returns the fake clock for advancing time in tests.
func (t *Tester) Clock() *FakeClock {
	return t.clock
}

// Pump advances the clock by d and runs one host step: tickers, queue
// activation, timeouts, and completion callbacks.
func (t *Tester) Pump(d time.Duration) {
	if d > 0 {
		t.clock.Advance(d)
	}
	t.host.Step()
}

// PumpUntilSettled pumps 16ms frames until the host is idle or showing a
// fully settled entry, or the timeout is reached. Returns ErrSettleTimeout
// if animations are still running when the timeout elapses.
func (t *Tester) PumpUntilSettled(timeout time.Duration) error {
	const frameDuration = 16 * time.Millisecond
	var elapsed time.Duration
	for elapsed < timeout {
		t.host.Step()
		if !t.needsWork() {
			return nil
		}
		t.clock.Advance(frameDuration)
		elapsed += frameDuration
	}
	return ErrSettleTimeout
}

// needsWork reports whether animations are running or a queued entry is
// still waiting to take the screen.
func (t *Tester) needsWork() bool {
	if animation.HasActiveTickers() {
		return true
	}
	return !t.host.IsIdle() && t.host.Active() == 0
}

// Frame paints the current host state into a display list.
func (t *Tester) Frame() *rendering.DisplayList {
	return t.host.Frame()
}

// Ops serializes the current frame into screen-space display operations.
func (t *Tester) Ops() Ops {
	return Ops(serializeDisplayList(t.host.Frame()))
}
