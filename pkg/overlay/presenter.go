package overlay

import (
	"fmt"
	"time"

	"github.com/go-drift/sheet/pkg/animation"
	"github.com/go-drift/sheet/pkg/errors"
	"github.com/go-drift/sheet/pkg/layout"
	"github.com/go-drift/sheet/pkg/rendering"
)

// entryState tracks one presentation through its lifecycle.
type entryState int

const (
	entryQueued entryState = iota
	entryEntering
	entryShown
	entryExiting
)

// entry is one queued or visible presentation.
type entry struct {
	content Presentable
	attrs   Attributes
	state   entryState

	// surface is the resting frame; y is the animated top edge, which
	// equals surface.Top once the entrance has settled.
	surface rendering.Rect
	y       float64

	spring  *animation.SpringSimulation
	ticker  *animation.Ticker
	ctrl    *animation.AnimationController
	shownAt time.Time

	onComplete []func()
}

// revealFraction reports how far the surface has travelled from the
// screen bottom toward its resting position, in [0, 1].
func (e *entry) revealFraction(screenHeight float64) float64 {
	travel := screenHeight - e.surface.Top
	if travel <= 0 {
		return 1
	}
	f := (screenHeight - e.y) / travel
	if f < 0 {
		return 0
	}
	if f > 1 {
		return 1
	}
	return f
}

// Presenter is the concrete presentation host. It keeps a priority FIFO
// queue of submitted entries, shows one at a time anchored to the bottom
// of the screen, and drives entrance and exit transitions.
//
// All methods are expected on the UI context. The embedding application
// advances presentation by calling Step once per frame and painting the
// result of Frame.
type Presenter struct {
	env     Env
	queue   []*entry
	active  *entry
	pressed []layout.RenderObject

	// completions holds dismissal callbacks until the next Step so they
	// never run inside the call frame that triggered the dismissal.
	completions []func()
}

// NewPresenter creates a host presenting into the given environment.
func NewPresenter(env Env) *Presenter {
	return &Presenter{env: env}
}

// Environment returns the screen the host presents into.
func (p *Presenter) Environment() Env {
	return p.env
}

// Active returns the identity of the entry currently on screen, or zero
// when nothing is visible.
func (p *Presenter) Active() Identity {
	if p.active == nil {
		return 0
	}
	return p.active.attrs.Identity
}

// IsIdle reports whether the host has nothing on screen and nothing
// queued.
func (p *Presenter) IsIdle() bool {
	return p.active == nil && len(p.queue) == 0
}

// Display submits content for presentation. See [Host.Display].
func (p *Presenter) Display(content Presentable, attrs Attributes) {
	if content == nil {
		return
	}
	if attrs.Identity == 0 {
		panic(&errors.Error{
			Op:   "overlay.Presenter.Display",
			Kind: errors.KindInvariant,
			Err:  fmt.Errorf("attributes carry no identity"),
		})
	}
	if p.lookup(attrs.Identity) != nil {
		panic(&errors.Error{
			Op:   "overlay.Presenter.Display",
			Kind: errors.KindInvariant,
			Err:  fmt.Errorf("identity %d is already presented", attrs.Identity),
		})
	}
	e := &entry{content: content, attrs: attrs, state: entryQueued}
	if attrs.Priority == PriorityHigh {
		for i, queued := range p.queue {
			if queued.attrs.Priority == PriorityNormal {
				p.queue = append(p.queue[:i], append([]*entry{e}, p.queue[i:]...)...)
				return
			}
		}
	}
	p.queue = append(p.queue, e)
}

// Dismiss removes the entry with the given identity. See [Host.Dismiss].
func (p *Presenter) Dismiss(id Identity, onComplete func()) {
	if p.active != nil && p.active.attrs.Identity == id {
		e := p.active
		if onComplete != nil {
			e.onComplete = append(e.onComplete, onComplete)
		}
		if e.state == entryExiting {
			return
		}
		p.beginExit(e)
		return
	}
	for i, e := range p.queue {
		if e.attrs.Identity == id {
			p.queue = append(p.queue[:i], p.queue[i+1:]...)
			// The entry never reached the screen, so removal is already
			// complete.
			if onComplete != nil {
				p.completions = append(p.completions, onComplete)
			}
			return
		}
	}
}

// Step advances animations and the presentation queue. Call once per
// frame after the clock has moved. Dismissal completion callbacks are
// delivered here, strictly after the entry they belong to has left the
// screen and never inside the call frame that triggered the dismissal.
func (p *Presenter) Step() {
	animation.StepTickers()
	if p.active == nil && len(p.queue) > 0 {
		next := p.queue[0]
		p.queue = p.queue[1:]
		p.activate(next)
	}
	p.checkTimeout()
	p.runCompletions()
}

// runCompletions drains queued dismissal callbacks, including any a
// callback itself enqueues.
func (p *Presenter) runCompletions() {
	for len(p.completions) > 0 {
		pending := p.completions
		p.completions = nil
		for _, cb := range pending {
			runCompletion(cb)
		}
	}
}

// Frame paints the current presentation state into a fresh display list:
// the screen dim, then the clipped surface with its background and
// content. An idle host produces an empty list.
func (p *Presenter) Frame() *rendering.DisplayList {
	rec := &rendering.PictureRecorder{}
	canvas := rec.BeginRecording(p.env.Screen)
	e := p.active
	if e == nil {
		return rec.EndRecording()
	}

	f := e.revealFraction(p.env.Screen.Height)
	if e.attrs.ScreenColor.Alpha() > 0 && f > 0 {
		scrim := e.attrs.ScreenColor.WithOpacity(f)
		full := rendering.RectFromOffsetSize(rendering.Offset{}, p.env.Screen)
		canvas.DrawRect(full, rendering.FillPaint(scrim))
	}

	frame := rendering.RectFromLTWH(e.surface.Left, e.y, e.surface.Width(), e.surface.Height())
	if e.attrs.Shadow {
		shadow := rendering.SurfaceShadow
		canvas.DrawRRect(e.attrs.Corners.RRect(shadow.Silhouette(frame)), rendering.FillPaint(shadow.Color))
	}

	canvas.Save()
	if e.attrs.Corners.IsRounded() {
		canvas.ClipRRect(e.attrs.Corners.RRect(frame))
	} else {
		canvas.ClipRect(frame)
	}
	if e.attrs.BackgroundColor.Alpha() > 0 {
		canvas.DrawRect(frame, rendering.FillPaint(e.attrs.BackgroundColor))
	}
	e.content.Render(&layout.PaintContext{Canvas: canvas}, rendering.Offset{X: frame.Left, Y: frame.Top})
	canvas.Restore()

	return rec.EndRecording()
}

// HandlePointer routes a pointer event. It reports whether the event was
// consumed; an idle host consumes nothing so events reach the content
// below. While a transition is running all input is absorbed.
//
// Targets hit on the down event receive every later phase of the same
// interaction. On the up event, targets no longer under the pointer
// receive a cancel instead, and taps fire only for targets still hit.
func (p *Presenter) HandlePointer(event layout.PointerEvent) bool {
	e := p.active
	if e == nil {
		return false
	}
	if e.state != entryShown {
		return true
	}

	local := event.Position.Sub(rendering.Offset{X: e.surface.Left, Y: e.surface.Top})
	switch event.Phase {
	case layout.PointerPhaseDown:
		p.pressed = nil
		if e.surface.Contains(event.Position) {
			p.pressed = p.hitContent(e, local)
			deliver(layout.PointerEvent{Phase: layout.PointerPhaseDown, Position: local}, p.pressed)
		} else if e.attrs.ScreenInteraction == InteractionDismiss {
			p.Dismiss(e.attrs.Identity, nil)
		}

	case layout.PointerPhaseMove:
		deliver(layout.PointerEvent{Phase: layout.PointerPhaseMove, Position: local}, p.pressed)

	case layout.PointerPhaseUp:
		pressed := p.pressed
		p.pressed = nil
		var still []layout.RenderObject
		if e.surface.Contains(event.Position) {
			still = p.hitContent(e, local)
		}
		var taps []layout.TapTarget
		for _, target := range pressed {
			if containsTarget(still, target) {
				deliverOne(layout.PointerEvent{Phase: layout.PointerPhaseUp, Position: local}, target)
				if tap, ok := target.(layout.TapTarget); ok {
					taps = append(taps, tap)
				}
			} else {
				deliverOne(layout.PointerEvent{Phase: layout.PointerPhaseCancel, Position: local}, target)
			}
		}
		for _, tap := range taps {
			tap.OnTap()
		}

	case layout.PointerPhaseCancel:
		pressed := p.pressed
		p.pressed = nil
		deliver(layout.PointerEvent{Phase: layout.PointerPhaseCancel, Position: local}, pressed)
	}
	return true
}

func (p *Presenter) lookup(id Identity) *entry {
	if p.active != nil && p.active.attrs.Identity == id {
		return p.active
	}
	for _, e := range p.queue {
		if e.attrs.Identity == id {
			return e
		}
	}
	return nil
}

func (p *Presenter) activate(e *entry) {
	p.active = e
	e.content.Configure(p.env)

	size := e.attrs.Size
	measured := e.content.Measure(layout.WidthWithUnboundedHeight(size.Width))
	if size.Height <= 0 {
		size.Height = measured.Height
	}

	bottomInset := 0.0
	if !e.attrs.OverrideSafeArea {
		bottomInset = p.env.SafeArea.Bottom
	}
	avail := p.env.Screen.Height - p.env.SafeArea.Top - bottomInset - e.attrs.VerticalOffset
	if !e.attrs.Scrollable && size.Height > avail {
		size.Height = avail
	}

	left := (p.env.Screen.Width - size.Width) / 2
	top := p.env.Screen.Height - bottomInset - e.attrs.VerticalOffset - size.Height
	e.surface = rendering.RectFromLTWH(left, top, size.Width, size.Height)

	e.state = entryEntering
	p.startTransition(e, p.env.Screen.Height, top, e.attrs.Entrance, func() {
		e.state = entryShown
		e.shownAt = animation.Now()
	})
}

func (p *Presenter) beginExit(e *entry) {
	p.clearTransition(e)
	p.pressed = nil
	e.state = entryExiting
	p.startTransition(e, e.y, p.env.Screen.Height, e.attrs.Exit, func() {
		p.finishRemoval(e)
	})
}

// finishRemoval takes the entry off screen and queues its dismissal
// completion callbacks, so callers observe the removal before their
// code executes.
func (p *Presenter) finishRemoval(e *entry) {
	if p.active == e {
		p.active = nil
	}
	p.pressed = nil
	p.completions = append(p.completions, e.onComplete...)
	e.onComplete = nil
}

// startTransition animates e.y from one position to another following
// the given spec and invokes done once the motion settles. A spec with
// zero duration snaps immediately.
func (p *Presenter) startTransition(e *entry, from, to float64, spec AnimationSpec, done func()) {
	e.y = from
	if spec.Duration <= 0 {
		e.y = to
		done()
		return
	}
	switch spec.Kind {
	case AnimationSpring:
		damping := spec.Damping
		if damping <= 0 {
			damping = 1
		}
		e.spring = animation.SpringForDuration(spec.Duration, damping, from, to, spec.InitialVelocity)
		e.ticker = animation.NewTicker(func(elapsed time.Duration) {
			if e.spring == nil {
				return
			}
			e.spring.Advance(elapsed)
			e.y = e.spring.Position()
			if e.spring.Done() {
				t := e.ticker
				e.ticker = nil
				e.spring = nil
				t.Stop()
				done()
			}
		})
		e.ticker.Start()

	default:
		ctrl := animation.NewAnimationController(spec.Duration)
		if spec.Curve != nil {
			ctrl.Curve = spec.Curve
		} else {
			ctrl.Curve = animation.EaseInOut
		}
		tween := animation.TweenFloat64(from, to)
		ctrl.AddListener(func() {
			e.y = tween.Transform(ctrl)
		})
		ctrl.AddStatusListener(func(status animation.AnimationStatus) {
			if status == animation.AnimationCompleted {
				e.ctrl = nil
				done()
			}
		})
		e.ctrl = ctrl
		ctrl.Forward()
	}
}

// clearTransition stops a running transition without completing it.
func (p *Presenter) clearTransition(e *entry) {
	if e.ticker != nil {
		e.ticker.Stop()
		e.ticker = nil
	}
	e.spring = nil
	if e.ctrl != nil {
		e.ctrl.Stop()
		e.ctrl.Dispose()
		e.ctrl = nil
	}
}

func (p *Presenter) checkTimeout() {
	e := p.active
	if e == nil || e.state != entryShown || e.attrs.Duration <= 0 {
		return
	}
	if animation.Now().Sub(e.shownAt) >= e.attrs.Duration {
		p.Dismiss(e.attrs.Identity, nil)
	}
}

func (p *Presenter) hitContent(e *entry, local rendering.Offset) []layout.RenderObject {
	target, ok := e.content.(PointerTarget)
	if !ok {
		return nil
	}
	result := &layout.HitTestResult{}
	if !target.HitTest(local, result) {
		return nil
	}
	return result.Entries
}

func deliver(event layout.PointerEvent, targets []layout.RenderObject) {
	for _, target := range targets {
		deliverOne(event, target)
	}
}

func deliverOne(event layout.PointerEvent, target layout.RenderObject) {
	if h, ok := target.(layout.PointerHandler); ok {
		h.HandlePointer(event)
	}
}

func containsTarget(targets []layout.RenderObject, target layout.RenderObject) bool {
	for _, t := range targets {
		if t == target {
			return true
		}
	}
	return false
}

// runCompletion guards a caller callback so a panic is reported instead
// of unwinding through the frame loop.
func runCompletion(cb func()) {
	defer errors.Recover("overlay.Presenter.Dismiss")
	cb()
}
