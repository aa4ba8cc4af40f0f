package testing

import (
	"fmt"

	"github.com/go-drift/sheet/pkg/layout"
	"github.com/go-drift/sheet/pkg/rendering"
)

// TapAt simulates a tap at the given screen position: a pointer down
// followed by a pointer up at the same point. It reports whether the
// host consumed the gesture.
func (t *Tester) TapAt(pos rendering.Offset) bool {
	down := t.SendPointerDown(pos)
	up := t.SendPointerUp(pos)
	return down || up
}

// TapText simulates a tap at the center of the drawn text matching s in
// the current frame. Matching is exact on the full drawn string.
func (t *Tester) TapText(s string) error {
	op, ok := t.Ops().FindText(s)
	if !ok {
		return fmt.Errorf("TapText: no text %q in current frame", s)
	}
	t.TapAt(textCenter(op))
	return nil
}

// SendPointerDown sends a pointer-down event at pos.
func (t *Tester) SendPointerDown(pos rendering.Offset) bool {
	return t.host.HandlePointer(layout.PointerEvent{
		Phase:    layout.PointerPhaseDown,
		Position: pos,
	})
}

// SendPointerMove sends a pointer-move event at pos.
func (t *Tester) SendPointerMove(pos rendering.Offset) bool {
	return t.host.HandlePointer(layout.PointerEvent{
		Phase:    layout.PointerPhaseMove,
		Position: pos,
	})
}

// SendPointerUp sends a pointer-up event at pos.
func (t *Tester) SendPointerUp(pos rendering.Offset) bool {
	return t.host.HandlePointer(layout.PointerEvent{
		Phase:    layout.PointerPhaseUp,
		Position: pos,
	})
}

// SendPointerCancel sends a pointer-cancel event at pos.
func (t *Tester) SendPointerCancel(pos rendering.Offset) bool {
	return t.host.HandlePointer(layout.PointerEvent{
		Phase:    layout.PointerPhaseCancel,
		Position: pos,
	})
}

// textCenter returns the screen-space center of a drawText operation.
func textCenter(op DisplayOp) rendering.Offset {
	return rendering.Offset{
		X: op.Float("x") + op.Float("width")/2,
		Y: op.Float("y") + op.Float("height")/2,
	}
}
