package animation

import (
	"fmt"
	"time"
)

// AnimationStatus reports where a controller is in its lifecycle: parked
// at 0 (dismissed), parked at 1 (completed), or moving toward either end.
type AnimationStatus int

const (
	// AnimationDismissed means the animation is stopped at 0.
	AnimationDismissed AnimationStatus = iota
	// AnimationForward means the animation is playing toward 1.
	AnimationForward
	// AnimationReverse means the animation is playing toward 0.
	AnimationReverse
	// AnimationCompleted means the animation is stopped at 1.
	AnimationCompleted
)

func (s AnimationStatus) String() string {
	switch s {
	case AnimationDismissed:
		return "dismissed"
	case AnimationForward:
		return "forward"
	case AnimationReverse:
		return "reverse"
	case AnimationCompleted:
		return "completed"
	default:
		return fmt.Sprintf("AnimationStatus(%d)", int(s))
	}
}

type valueSub struct {
	id int
	fn func()
}

type statusSub struct {
	id int
	fn func(AnimationStatus)
}

// AnimationController progresses a Value between 0 and 1 over a fixed
// Duration, shaped by Curve. It registers a ticker on the shared clock,
// so a fake clock plus StepTickers drives it deterministically in tests.
//
// Call Dispose when the controller is no longer needed.
type AnimationController struct {
	// Value is the current position, between 0 and 1.
	Value float64

	// Duration is the time a full 0-to-1 run takes.
	Duration time.Duration

	// Curve shapes progress. Nil means linear.
	Curve func(float64) float64

	status     AnimationStatus
	ticker     *Ticker
	from       float64
	to         float64
	valueSubs  []valueSub
	statusSubs []statusSub
	nextSubID  int
}

// NewAnimationController creates a controller parked at 0 with a linear curve.
func NewAnimationController(duration time.Duration) *AnimationController {
	return &AnimationController{
		Duration: duration,
		Curve:    LinearCurve,
		status:   AnimationDismissed,
	}
}

// Forward plays from the current value toward 1.
func (c *AnimationController) Forward() {
	c.play(1, AnimationForward)
}

// Reverse plays from the current value toward 0.
func (c *AnimationController) Reverse() {
	c.play(0, AnimationReverse)
}

func (c *AnimationController) play(target float64, direction AnimationStatus) {
	if c.ticker != nil {
		c.ticker.Stop()
	}

	c.from = c.Value
	c.to = target
	c.setStatus(direction)

	c.ticker = NewTicker(c.tick)
	c.ticker.Start()
}

func (c *AnimationController) tick(elapsed time.Duration) {
	if c.Duration <= 0 {
		c.Value = c.to
		c.notify()
		c.settle()
		return
	}

	progress := float64(elapsed) / float64(c.Duration)
	if progress >= 1 {
		progress = 1
	}

	eased := progress
	if c.Curve != nil {
		eased = c.Curve(progress)
	}
	c.Value = c.from + (c.to-c.from)*eased
	c.notify()

	if progress >= 1 {
		c.settle()
	}
}

// settle stops the ticker and parks the status at whichever end the
// value reached.
func (c *AnimationController) settle() {
	if c.ticker != nil {
		c.ticker.Stop()
		c.ticker = nil
	}
	if c.Value <= 0 {
		c.setStatus(AnimationDismissed)
	} else if c.Value >= 1 {
		c.setStatus(AnimationCompleted)
	}
}

// Stop halts the animation at its current value without changing status.
func (c *AnimationController) Stop() {
	if c.ticker != nil {
		c.ticker.Stop()
		c.ticker = nil
	}
}

// Status returns the current animation status.
func (c *AnimationController) Status() AnimationStatus {
	return c.status
}

// AddListener registers a callback for every value change and returns
// its unsubscribe function. Callbacks fire in registration order.
func (c *AnimationController) AddListener(fn func()) func() {
	id := c.nextSubID
	c.nextSubID++
	c.valueSubs = append(c.valueSubs, valueSub{id: id, fn: fn})
	return func() {
		for i, sub := range c.valueSubs {
			if sub.id == id {
				c.valueSubs = append(c.valueSubs[:i], c.valueSubs[i+1:]...)
				return
			}
		}
	}
}

// AddStatusListener registers a callback for status changes and returns
// its unsubscribe function.
func (c *AnimationController) AddStatusListener(fn func(AnimationStatus)) func() {
	id := c.nextSubID
	c.nextSubID++
	c.statusSubs = append(c.statusSubs, statusSub{id: id, fn: fn})
	return func() {
		for i, sub := range c.statusSubs {
			if sub.id == id {
				c.statusSubs = append(c.statusSubs[:i], c.statusSubs[i+1:]...)
				return
			}
		}
	}
}

func (c *AnimationController) setStatus(status AnimationStatus) {
	if c.status == status {
		return
	}
	c.status = status
	for _, sub := range c.statusSubs {
		sub.fn(status)
	}
}

func (c *AnimationController) notify() {
	for _, sub := range c.valueSubs {
		sub.fn()
	}
}

// Dispose stops the animation and drops all listeners.
func (c *AnimationController) Dispose() {
	c.Stop()
	c.valueSubs = nil
	c.statusSubs = nil
}
