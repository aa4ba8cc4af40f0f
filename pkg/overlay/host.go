// Package overlay provides the presentation host that queues, animates,
// dims behind, and removes floating surfaces such as action sheets.
//
// Content is handed to the host as a [Presentable] together with
// [Attributes] describing size, position, animations, and queueing. The
// host owns the presentation lifecycle: entries wait in a priority FIFO
// queue, one entry is on screen at a time, and dismissal by [Identity]
// runs the caller's completion callbacks only after the entry has left
// the screen.
package overlay

import (
	"github.com/go-drift/sheet/pkg/layout"
	"github.com/go-drift/sheet/pkg/rendering"
)

// Env describes the screen a host presents into.
type Env struct {
	// Screen is the full screen size in pixels.
	Screen rendering.Size
	// SafeArea insets the screen edges obscured by notches, rounded
	// corners, or system bars.
	SafeArea layout.EdgeInsets
}

// Presentable is the capability the host requires of presented content:
// configure against the environment, measure at a constraint, and render
// into a canvas. Plain content objects implement it directly; no screen
// or controller type needs to be subclassed.
type Presentable interface {
	// Configure prepares the content for the given environment. The host
	// calls it before the first Measure of a presentation.
	Configure(env Env)

	// Measure returns the content's fitting size under constraints.
	Measure(constraints layout.Constraints) rendering.Size

	// Render paints the content with its origin at the given offset.
	Render(ctx *layout.PaintContext, origin rendering.Offset)
}

// PointerTarget is implemented by presentables whose content responds to
// pointer input. Positions are in content-local coordinates.
type PointerTarget interface {
	HitTest(position rendering.Offset, result *layout.HitTestResult) bool
}

// Host is the presentation surface handed to content producers. It is
// implemented by [Presenter]; tests substitute fakes.
type Host interface {
	// Environment returns the screen the host presents into.
	Environment() Env

	// Display submits content for presentation. The entry is queued by
	// attrs.Priority and becomes visible once entries ahead of it have
	// been dismissed. Display panics if attrs carries no identity or an
	// identity that is already queued or on screen.
	Display(content Presentable, attrs Attributes)

	// Dismiss removes the entry with the given identity. onComplete, if
	// non-nil, runs once removal has finished: after the exit animation
	// for an on-screen entry, on the next frame for a queued one. It is
	// never invoked synchronously inside Dismiss. Unknown identities are
	// ignored.
	Dismiss(id Identity, onComplete func())
}
