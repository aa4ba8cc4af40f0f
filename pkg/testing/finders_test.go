package testing

import (
	"testing"

	"github.com/go-drift/sheet/pkg/rendering"
)

func TestOps_FilterFirstCount(t *testing.T) {
	ops := Ops{
		{Op: "save"},
		{Op: "drawRect", Params: sortedMap("color", "0xFF000000")},
		{Op: "drawRect", Params: sortedMap("color", "0xFFFFFFFF")},
		{Op: "restore"},
	}

	if got := ops.Count("drawRect"); got != 2 {
		t.Errorf("expected 2 drawRect ops, got %d", got)
	}
	if got := len(ops.Filter("drawRect")); got != 2 {
		t.Errorf("expected Filter to return 2 ops, got %d", got)
	}
	first, ok := ops.First("drawRect")
	if !ok {
		t.Fatal("expected a drawRect op")
	}
	if first.Str("color") != "0xFF000000" {
		t.Errorf("expected first drawRect in paint order, got %s", first.Str("color"))
	}
	if _, ok := ops.First("drawImage"); ok {
		t.Error("expected no drawImage op")
	}
}

func TestOps_TextsFromFrame(t *testing.T) {
	tester := NewTesterWithT(t)
	panel := newPanel()
	panel.Title = "Archive"
	tester.Host().Display(panel, panelAttrs(panel.Size))
	tester.Pump(0)

	ops := tester.Ops()
	texts := ops.Texts()
	if len(texts) != 1 || texts[0] != "Archive" {
		t.Fatalf("expected [Archive], got %v", texts)
	}
	if !ops.HasText("Archive") {
		t.Error("expected HasText to match drawn title")
	}
	if ops.HasText("Delete") {
		t.Error("expected HasText to miss undrawn string")
	}
}

func TestOps_TextRectInsideSurface(t *testing.T) {
	tester := NewTesterWithT(t)
	panel := newPanel()
	panel.Title = "Archive"
	tester.Host().Display(panel, panelAttrs(panel.Size))
	tester.Pump(0)

	r, ok := tester.Ops().TextRect("Archive")
	if !ok {
		t.Fatal("expected a rect for the drawn title")
	}
	surface := rendering.RectFromLTWH(50, 600, 300, 200)
	if r.Left < surface.Left || r.Top < surface.Top || r.Right > surface.Right || r.Bottom > surface.Bottom {
		t.Errorf("expected title %+v inside surface %+v", r, surface)
	}
}

func TestOps_RectsWithColor(t *testing.T) {
	tester := NewTesterWithT(t)
	panel := newPanel()
	tester.Host().Display(panel, panelAttrs(panel.Size))
	tester.Pump(0)

	ops := tester.Ops()
	if !ops.HasRectWithColor(panel.Color) {
		t.Error("expected panel fill rect")
	}
	if ops.HasRectWithColor(rendering.RGB(0x12, 0x34, 0x56)) {
		t.Error("expected no rect in an unused color")
	}
}

func TestDisplayOp_String(t *testing.T) {
	op := DisplayOp{Op: "drawLine", Params: sortedMap("y1", 2.0, "x1", 1.0, "color", "0xFF000000")}
	want := "drawLine(color=0xFF000000, x1=1, y1=2)"
	if got := op.String(); got != want {
		t.Errorf("expected %q, got %q", want, got)
	}

	if got := (DisplayOp{Op: "save"}).String(); got != "save" {
		t.Errorf("expected bare op name, got %q", got)
	}
}

func TestDisplayOp_RectRoundTrip(t *testing.T) {
	want := rendering.Rect{Left: 1.25, Top: 2.5, Right: 3.75, Bottom: 5}
	op := DisplayOp{Op: "clipRect", Params: sortedMap("rect", serializeRect(want))}
	if got := op.Rect("rect"); !got.Equal(want) {
		t.Errorf("expected %+v, got %+v", want, got)
	}
}
