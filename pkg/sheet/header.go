package sheet

import (
	"github.com/go-drift/sheet/pkg/errors"
	"github.com/go-drift/sheet/pkg/layout"
	"github.com/go-drift/sheet/pkg/rendering"
)

// headerStyle snapshots the configuration the header row needs, taken
// from the sheet at compose time.
type headerStyle struct {
	ambient           rendering.Color
	titleColor        rendering.Color
	messageColor      rendering.Color
	titleFont         rendering.Font
	messageFont       rendering.Font
	verticalPadding   float64
	horizontalPadding float64
	lineSpacing       float64
}

// renderHeader lays out the optional title above the optional message,
// both centered and multi-line, over the ambient backing.
type renderHeader struct {
	layout.RenderBoxBase
	title   string
	message string
	style   headerStyle

	titleLayout   *rendering.TextLayout
	messageLayout *rendering.TextLayout
}

func newRenderHeader(title, message string, style headerStyle) *renderHeader {
	r := &renderHeader{title: title, message: message, style: style}
	r.SetSelf(r)
	return r
}

func (r *renderHeader) PerformLayout() {
	constraints := r.Constraints()
	width := constraints.MaxWidth
	inner := width - 2*r.style.horizontalPadding
	if inner < 0 {
		inner = 0
	}

	r.titleLayout = layoutText(r.title, rendering.TextStyle{
		Color: r.style.titleColor,
		Font:  r.style.titleFont,
		Align: rendering.TextAlignCenter,
	}, inner)
	r.messageLayout = layoutText(r.message, rendering.TextStyle{
		Color: r.style.messageColor,
		Font:  r.style.messageFont,
		Align: rendering.TextAlignCenter,
	}, inner)

	height := 2 * r.style.verticalPadding
	if r.titleLayout != nil {
		height += r.titleLayout.Size.Height
	}
	if r.titleLayout != nil && r.messageLayout != nil {
		height += r.style.lineSpacing
	}
	if r.messageLayout != nil {
		height += r.messageLayout.Size.Height
	}
	r.SetSize(constraints.Constrain(rendering.Size{Width: width, Height: height}))
}

func (r *renderHeader) Paint(ctx *layout.PaintContext) {
	size := r.Size()
	bounds := rendering.RectFromOffsetSize(rendering.Offset{}, size)
	ctx.Canvas.DrawRect(bounds, rendering.FillPaint(r.style.ambient))

	y := r.style.verticalPadding
	if r.titleLayout != nil {
		x := (size.Width - r.titleLayout.Size.Width) / 2
		ctx.Canvas.DrawText(r.titleLayout, rendering.Offset{X: x, Y: y})
		y += r.titleLayout.Size.Height
		if r.messageLayout != nil {
			y += r.style.lineSpacing
		}
	}
	if r.messageLayout != nil {
		x := (size.Width - r.messageLayout.Size.Width) / 2
		ctx.Canvas.DrawText(r.messageLayout, rendering.Offset{X: x, Y: y})
	}
}

func (r *renderHeader) HitTest(position rendering.Offset, result *layout.HitTestResult) bool {
	return false
}

// layoutText wraps text at the given width, returning nil for empty text
// or a measurement failure. Failures are reported and the layout
// degrades to a missing line, matching the zero-size behavior of layout
// before valid bounds exist.
func layoutText(text string, style rendering.TextStyle, maxWidth float64) *rendering.TextLayout {
	if text == "" {
		return nil
	}
	l, err := rendering.LayoutTextWithConstraints(text, style, maxWidth)
	if err != nil {
		errors.Report(&errors.Error{Op: "sheet.layoutText", Kind: errors.KindInternal, Err: err})
		return nil
	}
	return l
}
