package sheet

import (
	"github.com/go-drift/sheet/pkg/layout"
	"github.com/go-drift/sheet/pkg/overlay"
	"github.com/go-drift/sheet/pkg/rendering"
)

// content is the composed sheet handed to the overlay host for the
// duration of one presentation. It owns the render tree and every row
// backing; the sheet keeps ownership of actions and configuration.
type content struct {
	root     layout.RenderObject
	backings []*backing
	env      overlay.Env
}

// compose builds the content tree from the header texts and the action
// collection, top to bottom:
//
//	header (if title or message)        ┐
//	small separator (if header+rows)    │ action block, corner-clipped
//	action rows with small separators   ┘ as one unit
//	big separator (if anything above)
//	cancel row, corner-clipped on its own
//
// tap receives the action of a tapped row. compose returns nil when
// there is nothing to present, and is invoked once per Show; the tree
// lives only as long as the presentation.
func (s *Sheet) compose(tap func(*Action)) *content {
	c := &content{}
	hasHeader := s.title != "" || s.message != ""

	var block []layout.RenderObject
	if hasHeader {
		block = append(block, newRenderHeader(s.title, s.message, headerStyle{
			ambient:           s.AmbientColor,
			titleColor:        s.TitleColor,
			messageColor:      s.MessageColor,
			titleFont:         s.TitleFont,
			messageFont:       s.MessageFont,
			verticalPadding:   s.TitleVerticalPadding,
			horizontalPadding: s.TitleHorizontalPadding,
			lineSpacing:       s.TitleLineSpacing,
		}))
	}
	if hasHeader && len(s.actions) > 0 {
		block = append(block, newRenderSeparator(s.SmallSeparatorColor, s.SmallFragment))
	}
	for i, action := range s.actions {
		block = append(block, c.newRow(s, action, tap))
		if i < len(s.actions)-1 {
			block = append(block, newRenderSeparator(s.SmallSeparatorColor, s.SmallFragment))
		}
	}

	var parts []layout.RenderObject
	if len(block) > 0 {
		mask := NewCornerMask(rendering.CornerAll, s.ActionCornerRadius)
		parts = append(parts, newRenderClip(newRenderColumn(block), mask))
	}
	if s.cancel != nil {
		if len(parts) > 0 {
			parts = append(parts, newRenderSeparator(s.BigSeparatorColor, s.BigFragment))
		}
		mask := NewCornerMask(rendering.CornerAll, s.ActionCornerRadius)
		parts = append(parts, newRenderClip(c.newRow(s, s.cancel, tap), mask))
	}
	if len(parts) == 0 {
		return nil
	}
	c.root = newRenderColumn(parts)
	return c
}

// newRow creates a pressable row plus its backing, recording the backing
// so the content tree, not the row, owns it.
func (c *content) newRow(s *Sheet, action *Action, tap func(*Action)) *renderRow {
	b := newBacking(s.AmbientColor)
	c.backings = append(c.backings, b)
	return newRenderRow(action, s.ActionHeight, b, func() { tap(action) })
}

func (c *content) Configure(env overlay.Env) {
	c.env = env
}

func (c *content) Measure(constraints layout.Constraints) rendering.Size {
	c.root.Layout(constraints)
	return c.root.Size()
}

func (c *content) Render(ctx *layout.PaintContext, origin rendering.Offset) {
	ctx.PaintChild(c.root, origin)
}

func (c *content) HitTest(position rendering.Offset, result *layout.HitTestResult) bool {
	return c.root.HitTest(position, result)
}
