package layout

import "github.com/go-drift/sheet/pkg/rendering"

// HitTestResult collects hit test entries in paint order.
type HitTestResult struct {
	Entries []RenderObject
}

// Add inserts a render object into the hit test result list.
func (h *HitTestResult) Add(target RenderObject) {
	h.Entries = append(h.Entries, target)
}

// PointerPhase identifies the stage of a pointer interaction.
type PointerPhase int

const (
	PointerPhaseDown PointerPhase = iota
	PointerPhaseMove
	PointerPhaseUp
	PointerPhaseCancel
)

// PointerEvent carries one pointer transition and its screen position.
type PointerEvent struct {
	Phase    PointerPhase
	Position rendering.Offset
}

// PointerHandler receives pointer events routed from hit testing.
type PointerHandler interface {
	HandlePointer(event PointerEvent)
}

// TapTarget is a render object that responds to completed taps.
type TapTarget interface {
	OnTap()
}

// PaintContext provides the canvas for painting render objects.
type PaintContext struct {
	Canvas rendering.Canvas
}

// PaintChild paints a child render object at the given offset.
func (p *PaintContext) PaintChild(child RenderObject, offset rendering.Offset) {
	if child == nil {
		return
	}
	p.Canvas.Save()
	p.Canvas.Translate(offset.X, offset.Y)
	child.Paint(p)
	p.Canvas.Restore()
}

// HitTestChild recurses the hit test into a child positioned at the
// offset recorded in its BoxParentData. Returns false for nil children
// and positions outside the child's bounds.
func HitTestChild(child RenderObject, position rendering.Offset, result *HitTestResult) bool {
	if child == nil {
		return false
	}
	local := position.Sub(ChildOffset(child))
	if !WithinBounds(local, child.Size()) {
		return false
	}
	return child.HitTest(local, result)
}
