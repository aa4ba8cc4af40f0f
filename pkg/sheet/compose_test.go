package sheet

import (
	"fmt"
	"testing"

	"github.com/go-drift/sheet/pkg/layout"
	"github.com/go-drift/sheet/pkg/rendering"
	"github.com/go-drift/sheet/pkg/theme"
)

// kindOf names a composed tree node for structural assertions.
func kindOf(obj layout.RenderObject) string {
	switch n := obj.(type) {
	case *renderColumn:
		return "column"
	case *renderClip:
		return "clip"
	case *renderSeparator:
		return fmt.Sprintf("sep:%g", n.thickness)
	case *renderRow:
		return "row:" + n.action.Title
	case *renderHeader:
		return "header"
	default:
		return fmt.Sprintf("%T", obj)
	}
}

func columnChildren(t *testing.T, obj layout.RenderObject) []layout.RenderObject {
	t.Helper()
	col, ok := obj.(*renderColumn)
	if !ok {
		t.Fatalf("expected column, got %s", kindOf(obj))
	}
	return col.children
}

func clippedChild(t *testing.T, obj layout.RenderObject) layout.RenderObject {
	t.Helper()
	clip, ok := obj.(*renderClip)
	if !ok {
		t.Fatalf("expected clip, got %s", kindOf(obj))
	}
	return clip.child
}

func assertKinds(t *testing.T, nodes []layout.RenderObject, want []string) {
	t.Helper()
	if len(nodes) != len(want) {
		got := make([]string, len(nodes))
		for i, n := range nodes {
			got[i] = kindOf(n)
		}
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i, n := range nodes {
		if kindOf(n) != want[i] {
			t.Errorf("node %d: expected %s, got %s", i, want[i], kindOf(n))
		}
	}
}

func TestSheet_Compose_FullStructure(t *testing.T) {
	s := New("Remove file?", "This cannot be undone.")
	s.AddAction(NewAction("Archive", ActionStyleDefault, nil))
	s.AddAction(NewAction("Delete", ActionStyleDestructive, nil))
	s.AddAction(NewAction("Keep", ActionStyleCancel, nil))

	c := s.compose(func(*Action) {})
	if c == nil {
		t.Fatal("expected composed content")
	}

	parts := columnChildren(t, c.root)
	assertKinds(t, parts, []string{"clip", "sep:8", "clip"})

	block := columnChildren(t, clippedChild(t, parts[0]))
	assertKinds(t, block, []string{"header", "sep:0.5", "row:Archive", "sep:0.5", "row:Delete"})

	if got := kindOf(clippedChild(t, parts[2])); got != "row:Keep" {
		t.Errorf("expected cancel clip to wrap row:Keep, got %s", got)
	}
}

func TestSheet_Compose_NoHeader(t *testing.T) {
	s := New("", "")
	s.AddAction(NewAction("Archive", ActionStyleDefault, nil))
	s.AddAction(NewAction("Delete", ActionStyleDefault, nil))

	c := s.compose(func(*Action) {})
	parts := columnChildren(t, c.root)
	assertKinds(t, parts, []string{"clip"})

	block := columnChildren(t, clippedChild(t, parts[0]))
	assertKinds(t, block, []string{"row:Archive", "sep:0.5", "row:Delete"})
}

func TestSheet_Compose_SingleActionNoSeparators(t *testing.T) {
	s := New("", "")
	s.AddAction(NewAction("OK", ActionStyleDefault, nil))

	c := s.compose(func(*Action) {})
	block := columnChildren(t, clippedChild(t, columnChildren(t, c.root)[0]))
	assertKinds(t, block, []string{"row:OK"})
}

func TestSheet_Compose_CancelOnly(t *testing.T) {
	s := New("", "")
	s.AddAction(NewAction("Keep", ActionStyleCancel, nil))

	c := s.compose(func(*Action) {})
	parts := columnChildren(t, c.root)
	assertKinds(t, parts, []string{"clip"})
	if got := kindOf(clippedChild(t, parts[0])); got != "row:Keep" {
		t.Errorf("expected lone cancel row, got %s", got)
	}
}

func TestSheet_Compose_HeaderAndCancelNoActions(t *testing.T) {
	s := New("Saved", "")
	s.AddAction(NewAction("Done", ActionStyleCancel, nil))

	c := s.compose(func(*Action) {})
	parts := columnChildren(t, c.root)
	assertKinds(t, parts, []string{"clip", "sep:8", "clip"})

	block := columnChildren(t, clippedChild(t, parts[0]))
	assertKinds(t, block, []string{"header"})
}

func TestSheet_Compose_EmptyReturnsNil(t *testing.T) {
	s := New("", "")
	if c := s.compose(func(*Action) {}); c != nil {
		t.Errorf("expected nil content for empty sheet, got %+v", c)
	}
}

func TestSheet_Compose_BackingPerRow(t *testing.T) {
	s := New("", "")
	s.AddAction(NewAction("Archive", ActionStyleDefault, nil))
	s.AddAction(NewAction("Delete", ActionStyleDefault, nil))
	s.AddAction(NewAction("Keep", ActionStyleCancel, nil))

	c := s.compose(func(*Action) {})
	if len(c.backings) != 3 {
		t.Errorf("expected one backing per row, got %d", len(c.backings))
	}
	for i, b := range c.backings {
		if b.opacity != 1 {
			t.Errorf("backing %d: expected full opacity, got %v", i, b.opacity)
		}
	}
}

func TestSheet_Compose_MeasuredHeight(t *testing.T) {
	prev := theme.SetCurrent(nil)
	defer theme.SetCurrent(prev)

	s := New("", "")
	s.AddAction(NewAction("Archive", ActionStyleDefault, nil))
	s.AddAction(NewAction("Delete", ActionStyleDefault, nil))
	s.AddAction(NewAction("Keep", ActionStyleCancel, nil))

	c := s.compose(func(*Action) {})
	size := c.Measure(layout.WidthWithUnboundedHeight(380))

	if size.Width != 380 {
		t.Errorf("expected width 380, got %v", size.Width)
	}
	// Two rows and a separator (57 + 0.5 + 57), the big separator (8),
	// then the cancel row (57).
	if size.Height != 179.5 {
		t.Errorf("expected height 179.5, got %v", size.Height)
	}
}

func TestSheet_Compose_HeaderMeasuresTexts(t *testing.T) {
	prev := theme.SetCurrent(nil)
	defer theme.SetCurrent(prev)

	s := New("Remove file?", "This cannot be undone.")
	s.AddAction(NewAction("OK", ActionStyleDefault, nil))

	c := s.compose(func(*Action) {})
	size := c.Measure(layout.WidthWithUnboundedHeight(380))

	block := columnChildren(t, clippedChild(t, columnChildren(t, c.root)[0]))
	header, ok := block[0].(*renderHeader)
	if !ok {
		t.Fatalf("expected header first, got %s", kindOf(block[0]))
	}
	if header.titleLayout == nil || header.messageLayout == nil {
		t.Fatal("expected both text layouts after measure")
	}

	wantHeader := 2*12 + header.titleLayout.Size.Height + 6 + header.messageLayout.Size.Height
	if got := header.Size().Height; got != wantHeader {
		t.Errorf("expected header height %v, got %v", wantHeader, got)
	}
	if want := wantHeader + 0.5 + 57; size.Height != want {
		t.Errorf("expected total height %v, got %v", want, size.Height)
	}
}

func TestSheet_Compose_TitleOnlyHeaderOmitsLineSpacing(t *testing.T) {
	prev := theme.SetCurrent(nil)
	defer theme.SetCurrent(prev)

	s := New("Saved", "")
	c := s.compose(func(*Action) {})
	c.Measure(layout.WidthWithUnboundedHeight(380))

	block := columnChildren(t, clippedChild(t, columnChildren(t, c.root)[0]))
	header := block[0].(*renderHeader)
	if header.messageLayout != nil {
		t.Fatal("expected no message layout")
	}
	want := 2*12 + header.titleLayout.Size.Height
	if got := header.Size().Height; got != want {
		t.Errorf("expected header height %v, got %v", want, got)
	}
}

func TestCornerMask_RecomputeCachesPath(t *testing.T) {
	m := NewCornerMask(rendering.CornerAll, 13)
	bounds := rendering.RectFromLTWH(0, 0, 380, 114.5)

	first := m.Recompute(bounds)
	if first == nil {
		t.Fatal("expected a path for rounded mask")
	}
	if second := m.Recompute(bounds); second != first {
		t.Error("expected identical bounds to reuse the cached path")
	}

	grown := rendering.RectFromLTWH(0, 0, 380, 179.5)
	third := m.Recompute(grown)
	if third == first {
		t.Error("expected changed bounds to rebuild the path")
	}
	if m.Path() != third {
		t.Error("expected Path to return the latest recompute")
	}
}

func TestCornerMask_NoneHasNoPath(t *testing.T) {
	m := NewCornerMask(rendering.CornerNone, 13)
	if m.Recompute(rendering.RectFromLTWH(0, 0, 100, 100)) != nil {
		t.Error("expected no path for corner mode none")
	}
	if m.Path() != nil {
		t.Error("expected nil Path for corner mode none")
	}
}

func TestCornerMask_ZeroRadiusHasNoPath(t *testing.T) {
	m := NewCornerMask(rendering.CornerAll, 0)
	if m.Recompute(rendering.RectFromLTWH(0, 0, 100, 100)) != nil {
		t.Error("expected no path for zero radius")
	}
}

func TestCornerMask_PathMatchesRoundedRect(t *testing.T) {
	bounds := rendering.RectFromLTWH(0, 0, 380, 114.5)
	spec := rendering.CornerSpec{Mode: rendering.CornerAll, Radius: 13}

	m := NewCornerMask(rendering.CornerAll, 13)
	got := m.Recompute(bounds)

	want := rendering.NewPath()
	want.AddRRect(spec.RRect(bounds))
	if !got.Equal(want) {
		t.Errorf("mask path does not match rounded rect:\n got %s\nwant %s", got, want)
	}
}

func TestRenderRow_PressDimsBacking(t *testing.T) {
	a := NewAction("Open", ActionStyleDefault, nil)
	b := newBacking(rendering.ColorWhite)
	r := newRenderRow(a, 57, b, nil)

	r.HandlePointer(layout.PointerEvent{Phase: layout.PointerPhaseDown})
	if b.opacity != pressedOpacity {
		t.Errorf("expected backing dimmed to %v, got %v", pressedOpacity, b.opacity)
	}
	r.HandlePointer(layout.PointerEvent{Phase: layout.PointerPhaseUp})
	if b.opacity != 1 {
		t.Errorf("expected backing restored, got %v", b.opacity)
	}
}

func TestRenderRow_CancelRestoresBacking(t *testing.T) {
	a := NewAction("Open", ActionStyleDefault, nil)
	b := newBacking(rendering.ColorWhite)
	r := newRenderRow(a, 57, b, nil)

	r.HandlePointer(layout.PointerEvent{Phase: layout.PointerPhaseDown})
	r.HandlePointer(layout.PointerEvent{Phase: layout.PointerPhaseCancel})
	if b.opacity != 1 {
		t.Errorf("expected backing restored after cancel, got %v", b.opacity)
	}
}

func TestRenderRow_ExplicitHighlightSwapsBackground(t *testing.T) {
	a := NewAction("Open", ActionStyleDefault, nil)
	a.HighlightedColor = rendering.RGB(0xE0, 0xE0, 0xE0)
	a.NormalColor = rendering.ColorWhite
	b := newBacking(rendering.ColorWhite)
	r := newRenderRow(a, 57, b, nil)

	r.HandlePointer(layout.PointerEvent{Phase: layout.PointerPhaseDown})
	if r.background != a.HighlightedColor {
		t.Errorf("expected background %v, got %v", a.HighlightedColor, r.background)
	}
	if b.opacity != 1 {
		t.Errorf("expected backing untouched by explicit highlight, got opacity %v", b.opacity)
	}

	r.HandlePointer(layout.PointerEvent{Phase: layout.PointerPhaseUp})
	if r.background != a.NormalColor {
		t.Errorf("expected background restored to %v, got %v", a.NormalColor, r.background)
	}
}

func TestRenderRow_ExplicitHighlightWithoutNormalClears(t *testing.T) {
	a := NewAction("Open", ActionStyleDefault, nil)
	a.HighlightedColor = rendering.RGB(0xE0, 0xE0, 0xE0)
	b := newBacking(rendering.ColorWhite)
	r := newRenderRow(a, 57, b, nil)

	r.HandlePointer(layout.PointerEvent{Phase: layout.PointerPhaseDown})
	r.HandlePointer(layout.PointerEvent{Phase: layout.PointerPhaseUp})
	if r.background != 0 {
		t.Errorf("expected background cleared on release, got %v", r.background)
	}
}

func TestRenderRow_TapForwardsToHandler(t *testing.T) {
	taps := 0
	a := NewAction("Open", ActionStyleDefault, nil)
	r := newRenderRow(a, 57, newBacking(rendering.ColorWhite), func() { taps++ })

	r.OnTap()
	if taps != 1 {
		t.Errorf("expected 1 tap, got %d", taps)
	}
}
