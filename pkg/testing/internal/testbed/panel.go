// Package testbed provides minimal presentable content for exercising
// the testing harness without depending on the sheet package.
package testbed

import (
	"github.com/go-drift/sheet/pkg/layout"
	"github.com/go-drift/sheet/pkg/overlay"
	"github.com/go-drift/sheet/pkg/rendering"
)

// Panel is a fixed-size presentable with a background color, an optional
// centered title, and a tap callback covering its whole area.
type Panel struct {
	Size  rendering.Size
	Color rendering.Color
	Title string
	Font  rendering.Font
	OnTap func()

	root *renderPanel
}

// Configure lays the panel's title out for the environment.
func (p *Panel) Configure(env overlay.Env) {
	r := &renderPanel{panel: p}
	r.SetSelf(r)
	if p.Title != "" {
		style := rendering.TextStyle{
			Color: rendering.RGB(0x20, 0x20, 0x20),
			Font:  p.Font,
			Align: rendering.TextAlignCenter,
		}
		if tl, err := rendering.LayoutText(p.Title, style); err == nil {
			r.title = tl
		}
	}
	p.root = r
}

// Measure returns the panel's fixed size constrained to fit.
func (p *Panel) Measure(constraints layout.Constraints) rendering.Size {
	p.root.Layout(constraints)
	return p.root.Size()
}

// Render paints the panel with its origin at the given offset.
func (p *Panel) Render(ctx *layout.PaintContext, origin rendering.Offset) {
	ctx.PaintChild(p.root, origin)
}

// HitTest forwards to the panel's render object.
func (p *Panel) HitTest(position rendering.Offset, result *layout.HitTestResult) bool {
	return p.root.HitTest(position, result)
}

type renderPanel struct {
	layout.RenderBoxBase
	panel *Panel
	title *rendering.TextLayout
}

func (r *renderPanel) PerformLayout() {
	r.SetSize(r.Constraints().Constrain(r.panel.Size))
}

func (r *renderPanel) Paint(ctx *layout.PaintContext) {
	size := r.Size()
	if r.panel.Color != 0 {
		rect := rendering.RectFromOffsetSize(rendering.Offset{}, size)
		ctx.Canvas.DrawRect(rect, rendering.FillPaint(r.panel.Color))
	}
	if r.title != nil {
		at := rendering.Offset{
			X: (size.Width - r.title.Size.Width) / 2,
			Y: (size.Height - r.title.Size.Height) / 2,
		}
		ctx.Canvas.DrawText(r.title, at)
	}
}

func (r *renderPanel) HitTest(position rendering.Offset, result *layout.HitTestResult) bool {
	if !layout.WithinBounds(position, r.Size()) {
		return false
	}
	result.Add(r)
	return true
}

func (r *renderPanel) HandlePointer(event layout.PointerEvent) {}

func (r *renderPanel) OnTap() {
	if r.panel.OnTap != nil {
		r.panel.OnTap()
	}
}
