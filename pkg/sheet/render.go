package sheet

import (
	"github.com/go-drift/sheet/pkg/layout"
	"github.com/go-drift/sheet/pkg/rendering"
)

// renderColumn stacks its children vertically at full width, in order.
type renderColumn struct {
	layout.RenderBoxBase
	children []layout.RenderObject
}

func newRenderColumn(children []layout.RenderObject) *renderColumn {
	c := &renderColumn{children: children}
	c.SetSelf(c)
	for _, child := range children {
		child.SetParentData(&layout.BoxParentData{})
	}
	return c
}

func (c *renderColumn) PerformLayout() {
	constraints := c.Constraints()
	width := constraints.MaxWidth
	y := 0.0
	for _, child := range c.children {
		child.Layout(layout.WidthWithUnboundedHeight(width))
		if data, ok := child.ParentData().(*layout.BoxParentData); ok {
			data.Offset = rendering.Offset{Y: y}
		}
		y += child.Size().Height
	}
	c.SetSize(constraints.Constrain(rendering.Size{Width: width, Height: y}))
}

func (c *renderColumn) Paint(ctx *layout.PaintContext) {
	for _, child := range c.children {
		ctx.PaintChild(child, layout.ChildOffset(child))
	}
}

func (c *renderColumn) HitTest(position rendering.Offset, result *layout.HitTestResult) bool {
	for i := len(c.children) - 1; i >= 0; i-- {
		if layout.HitTestChild(c.children[i], position, result) {
			return true
		}
	}
	return false
}

func (c *renderColumn) VisitChildren(visitor func(layout.RenderObject)) {
	for _, child := range c.children {
		visitor(child)
	}
}

// renderClip clips its child with a corner mask. The mask is recomputed
// on every layout pass, once concrete bounds are known.
type renderClip struct {
	layout.RenderBoxBase
	child layout.RenderObject
	mask  *CornerMask
}

func newRenderClip(child layout.RenderObject, mask *CornerMask) *renderClip {
	r := &renderClip{child: child, mask: mask}
	r.SetSelf(r)
	child.SetParentData(&layout.BoxParentData{})
	return r
}

func (r *renderClip) PerformLayout() {
	r.child.Layout(r.Constraints())
	r.SetSize(r.child.Size())
	r.mask.Recompute(rendering.RectFromOffsetSize(rendering.Offset{}, r.Size()))
}

func (r *renderClip) Paint(ctx *layout.PaintContext) {
	path := r.mask.Path()
	if path == nil {
		r.child.Paint(ctx)
		return
	}
	ctx.Canvas.Save()
	ctx.Canvas.ClipPath(path)
	r.child.Paint(ctx)
	ctx.Canvas.Restore()
}

func (r *renderClip) HitTest(position rendering.Offset, result *layout.HitTestResult) bool {
	return layout.HitTestChild(r.child, position, result)
}

func (r *renderClip) VisitChildren(visitor func(layout.RenderObject)) {
	visitor(r.child)
}

// renderSeparator is a full-width divider band of fixed thickness.
type renderSeparator struct {
	layout.RenderBoxBase
	color     rendering.Color
	thickness float64
}

func newRenderSeparator(color rendering.Color, thickness float64) *renderSeparator {
	r := &renderSeparator{color: color, thickness: thickness}
	r.SetSelf(r)
	return r
}

func (r *renderSeparator) PerformLayout() {
	constraints := r.Constraints()
	r.SetSize(constraints.Constrain(rendering.Size{
		Width:  constraints.MaxWidth,
		Height: r.thickness,
	}))
}

func (r *renderSeparator) Paint(ctx *layout.PaintContext) {
	if r.color == 0 {
		return
	}
	bounds := rendering.RectFromOffsetSize(rendering.Offset{}, r.Size())
	ctx.Canvas.DrawRect(bounds, rendering.FillPaint(r.color))
}

func (r *renderSeparator) HitTest(position rendering.Offset, result *layout.HitTestResult) bool {
	return false
}
