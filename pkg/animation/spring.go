package animation

import (
	"math"
	"time"

	"github.com/charmbracelet/harmonica"
)

// springFPS is the fixed internal integration rate for spring physics.
const springFPS = 60

// springSettleProduct is omega*t at which a critically damped spring has
// closed 99% of its travel: e^(-x)(1+x) = 0.01 at x ~= 6.64.
const springSettleProduct = 6.64

// SpringSimulation integrates damped spring motion from a start position
// toward a target at a fixed internal step rate. Drive it from a ticker
// by calling Advance with the elapsed time each frame.
type SpringSimulation struct {
	spring    harmonica.Spring
	position  float64
	velocity  float64
	target    float64
	steps     int
	restDelta float64
}

// NewSpringSimulation creates a spring simulation.
//
// frequency is the angular frequency in radians per second (response
// speed); damping is the damping ratio, where 1.0 is critical damping
// with no overshoot; velocity is the initial velocity in units per second.
func NewSpringSimulation(frequency, damping, position, target, velocity float64) *SpringSimulation {
	restDelta := math.Abs(target-position) * 0.001
	if restDelta < 1e-3 {
		restDelta = 1e-3
	}
	return &SpringSimulation{
		spring:    harmonica.NewSpring(harmonica.FPS(springFPS), frequency, damping),
		position:  position,
		velocity:  velocity,
		target:    target,
		restDelta: restDelta,
	}
}

// SpringForDuration returns a simulation tuned to settle within
// approximately the given duration at the supplied damping ratio.
func SpringForDuration(duration time.Duration, damping, position, target, velocity float64) *SpringSimulation {
	seconds := duration.Seconds()
	if seconds <= 0 {
		seconds = 1.0 / springFPS
	}
	frequency := springSettleProduct / seconds
	return NewSpringSimulation(frequency, damping, position, target, velocity)
}

// Advance integrates the simulation up to the given elapsed time.
// Integration happens in fixed steps; an elapsed time earlier than what
// has already been integrated is a no-op.
func (s *SpringSimulation) Advance(elapsed time.Duration) {
	total := int(elapsed.Seconds() * springFPS)
	for s.steps < total {
		if s.Done() {
			s.steps = total
			break
		}
		s.position, s.velocity = s.spring.Update(s.position, s.velocity, s.target)
		s.steps++
	}
}

// Position returns the current position.
func (s *SpringSimulation) Position() float64 {
	if s.Done() {
		return s.target
	}
	return s.position
}

// Velocity returns the current velocity in units per second.
func (s *SpringSimulation) Velocity() float64 {
	return s.velocity
}

// Target returns the equilibrium position.
func (s *SpringSimulation) Target() float64 {
	return s.target
}

// Done reports whether the spring has settled at the target.
func (s *SpringSimulation) Done() bool {
	return math.Abs(s.position-s.target) <= s.restDelta &&
		math.Abs(s.velocity) <= s.restDelta*springFPS
}
