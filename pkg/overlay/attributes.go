package overlay

import (
	"time"

	"github.com/go-drift/sheet/pkg/rendering"
)

// AnimationKind selects how a transition is driven.
type AnimationKind int

const (
	// AnimationCurve drives the transition over a fixed duration with an
	// easing curve.
	AnimationCurve AnimationKind = iota
	// AnimationSpring drives the transition with a damped spring that
	// settles within the duration.
	AnimationSpring
)

// AnimationSpec describes one transition of a presented surface.
// The zero value disables the transition: the surface snaps into place.
type AnimationSpec struct {
	// Kind selects the driving model.
	Kind AnimationKind
	// Duration is the transition length. For springs it is the time the
	// spring takes to settle. Zero disables the transition.
	Duration time.Duration
	// Damping is the spring damping ratio; 1 is critically damped.
	// Only meaningful for AnimationSpring.
	Damping float64
	// InitialVelocity is the spring's starting velocity in pixels per
	// second. Only meaningful for AnimationSpring.
	InitialVelocity float64
	// Curve eases curve-driven transitions. Nil means ease-in-out.
	Curve func(float64) float64
}

// SpringSpec returns a spring-driven spec with the given settle duration,
// damping ratio, and initial velocity.
func SpringSpec(duration time.Duration, damping, velocity float64) AnimationSpec {
	return AnimationSpec{
		Kind:            AnimationSpring,
		Duration:        duration,
		Damping:         damping,
		InitialVelocity: velocity,
	}
}

// CurveSpec returns a curve-driven spec.
func CurveSpec(duration time.Duration, curve func(float64) float64) AnimationSpec {
	return AnimationSpec{Kind: AnimationCurve, Duration: duration, Curve: curve}
}

// ScreenInteraction controls what a tap on the dimmed screen outside the
// surface does.
type ScreenInteraction int

const (
	// InteractionDismiss dismisses the entry when the screen is tapped.
	InteractionDismiss ScreenInteraction = iota
	// InteractionAbsorb swallows screen taps without dismissing.
	InteractionAbsorb
)

// Priority orders entries waiting in the presentation queue.
type Priority int

const (
	// PriorityNormal entries present in submission order.
	PriorityNormal Priority = iota
	// PriorityHigh entries present before queued normal entries.
	PriorityHigh
)

// DisplayForever keeps an entry on screen until explicitly dismissed.
const DisplayForever time.Duration = 0

// Attributes bundles everything the host needs to present one entry.
type Attributes struct {
	// Size is the surface size. Content is measured to it before handoff
	// and the host lays it out to the same constraint.
	Size rendering.Size
	// VerticalOffset lifts the surface above its bottom resting position.
	VerticalOffset float64
	// OverrideSafeArea anchors the surface to the physical screen bottom
	// instead of the bottom safe-area inset.
	OverrideSafeArea bool
	// Corners is the corner treatment the host clips the surface with.
	Corners rendering.CornerSpec
	// Entrance plays when the entry becomes visible.
	Entrance AnimationSpec
	// Exit plays when the entry is dismissed.
	Exit AnimationSpec
	// ScreenColor dims the rest of the screen while the entry is shown.
	ScreenColor rendering.Color
	// BackgroundColor is painted behind the content.
	BackgroundColor rendering.Color
	// Shadow paints a soft drop shadow under the surface.
	Shadow bool
	// Scrollable lets content taller than the available screen space keep
	// its measured height. When false the surface is clamped to the space
	// available and overflowing content is clipped.
	Scrollable bool
	// ScreenInteraction controls taps outside the surface.
	ScreenInteraction ScreenInteraction
	// Duration is how long the entry stays before the host dismisses it
	// on its own. DisplayForever disables the timeout.
	Duration time.Duration
	// Priority orders the entry among queued entries.
	Priority Priority
	// Identity is the caller-supplied token for targeted dismissal.
	// Required; Display panics without one.
	Identity Identity
}
