package sheet

import (
	"github.com/go-drift/sheet/pkg/layout"
	"github.com/go-drift/sheet/pkg/rendering"
)

// pressedOpacity dims the ambient backing while a row without an
// explicit highlight color is pressed.
const pressedOpacity = 0.9

// backing is the ambient layer behind one row. The composed content
// owns it; the row holds a non-owning reference used only to toggle its
// opacity while pressed.
type backing struct {
	color   rendering.Color
	opacity float64
}

func newBacking(color rendering.Color) *backing {
	return &backing{color: color, opacity: 1}
}

// renderRow is one pressable action row of fixed height with a centered
// title.
//
// Press feedback uses one of two mutually exclusive strategies, chosen
// by the action: with an explicit HighlightedColor the row swaps its own
// background to it and restores NormalColor on release; without one it
// dims the ambient backing to 90% opacity and restores full opacity.
type renderRow struct {
	layout.RenderBoxBase
	action  *Action
	height  float64
	backing *backing
	onTap   func()

	// background is the explicit swap state; zero means the ambient
	// backing shows through.
	background  rendering.Color
	titleLayout *rendering.TextLayout
}

func newRenderRow(action *Action, height float64, b *backing, onTap func()) *renderRow {
	r := &renderRow{action: action, height: height, backing: b, onTap: onTap}
	r.SetSelf(r)
	return r
}

func (r *renderRow) PerformLayout() {
	constraints := r.Constraints()
	width := constraints.MaxWidth
	r.titleLayout = layoutText(r.action.Title, rendering.TextStyle{
		Color: r.action.TitleColor,
		Font:  r.action.TitleFont,
		Align: rendering.TextAlignCenter,
	}, width)
	r.SetSize(constraints.Constrain(rendering.Size{Width: width, Height: r.height}))
}

func (r *renderRow) Paint(ctx *layout.PaintContext) {
	size := r.Size()
	bounds := rendering.RectFromOffsetSize(rendering.Offset{}, size)
	ctx.Canvas.DrawRect(bounds, rendering.FillPaint(r.backing.color.WithOpacity(r.backing.opacity)))
	if r.background != 0 {
		ctx.Canvas.DrawRect(bounds, rendering.FillPaint(r.background))
	}
	if r.titleLayout != nil {
		pos := rendering.Offset{
			X: (size.Width - r.titleLayout.Size.Width) / 2,
			Y: (size.Height - r.titleLayout.Size.Height) / 2,
		}
		ctx.Canvas.DrawText(r.titleLayout, pos)
	}
}

func (r *renderRow) HitTest(position rendering.Offset, result *layout.HitTestResult) bool {
	if !layout.WithinBounds(position, r.Size()) {
		return false
	}
	result.Add(r)
	return true
}

func (r *renderRow) HandlePointer(event layout.PointerEvent) {
	switch event.Phase {
	case layout.PointerPhaseDown:
		r.press()
	case layout.PointerPhaseUp, layout.PointerPhaseCancel:
		r.release()
	}
}

func (r *renderRow) OnTap() {
	if r.onTap != nil {
		r.onTap()
	}
}

func (r *renderRow) press() {
	if r.action.HighlightedColor != 0 {
		r.background = r.action.HighlightedColor
		return
	}
	r.backing.opacity = pressedOpacity
}

func (r *renderRow) release() {
	if r.action.HighlightedColor != 0 {
		r.background = r.action.NormalColor
		return
	}
	r.backing.opacity = 1
}
