package layout

import "github.com/go-drift/sheet/pkg/rendering"

// RenderObject handles layout, painting, and hit testing.
type RenderObject interface {
	Layout(constraints Constraints)
	Size() rendering.Size
	Paint(ctx *PaintContext)
	HitTest(position rendering.Offset, result *HitTestResult) bool
	ParentData() any
	SetParentData(data any)
	MarkNeedsLayout()
}

// ChildVisitor is implemented by render objects that have children.
type ChildVisitor interface {
	// VisitChildren calls the visitor function for each child.
	VisitChildren(visitor func(RenderObject))
}

// BoxParentData stores the offset for a child in a box layout.
type BoxParentData struct {
	Offset rendering.Offset
}

// ChildOffset returns the offset a parent assigned to child via
// BoxParentData, or zero if none was assigned.
func ChildOffset(child RenderObject) rendering.Offset {
	if data, ok := child.ParentData().(*BoxParentData); ok {
		return data.Offset
	}
	return rendering.Offset{}
}

// RenderBoxBase provides base behavior for render boxes: size and
// constraint caching, dirty tracking, and layout delegation.
//
// Concrete render objects embed RenderBoxBase, call SetSelf with
// themselves, and implement PerformLayout. Layout skips PerformLayout
// when the object is clean and constraints are unchanged.
type RenderBoxBase struct {
	size        rendering.Size
	parentData  any
	self        RenderObject
	needsLayout bool
	constraints Constraints
}

// Size returns the current size of the render box.
func (r *RenderBoxBase) Size() rendering.Size {
	return r.size
}

// SetSize updates the render box size.
func (r *RenderBoxBase) SetSize(size rendering.Size) {
	r.size = size
}

// ParentData returns the parent-assigned data for this render box.
func (r *RenderBoxBase) ParentData() any {
	return r.parentData
}

// SetParentData assigns parent-controlled data to this render box.
func (r *RenderBoxBase) SetParentData(data any) {
	r.parentData = data
}

// SetSelf registers the concrete render object so Layout can reach its
// PerformLayout implementation.
func (r *RenderBoxBase) SetSelf(self RenderObject) {
	r.self = self
	r.needsLayout = true
}

// Self returns the concrete render object registered via SetSelf.
func (r *RenderBoxBase) Self() RenderObject {
	return r.self
}

// MarkNeedsLayout marks this render box as needing layout.
func (r *RenderBoxBase) MarkNeedsLayout() {
	r.needsLayout = true
}

// NeedsLayout returns true if this render box needs layout.
func (r *RenderBoxBase) NeedsLayout() bool {
	return r.needsLayout
}

// Constraints returns the last received constraints.
func (r *RenderBoxBase) Constraints() Constraints {
	return r.constraints
}

// Layout stores the constraints and delegates to the concrete object's
// PerformLayout, skipping it when clean and constraints are unchanged.
func (r *RenderBoxBase) Layout(constraints Constraints) {
	if !r.needsLayout && r.constraints == constraints {
		return
	}
	r.constraints = constraints
	r.needsLayout = false
	if performer, ok := r.self.(interface{ PerformLayout() }); ok {
		performer.PerformLayout()
	}
}

// WithinBounds checks if a position is within the given size.
func WithinBounds(position rendering.Offset, size rendering.Size) bool {
	return position.X >= 0 && position.Y >= 0 && position.X <= size.Width && position.Y <= size.Height
}
