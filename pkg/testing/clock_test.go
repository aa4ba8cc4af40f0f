package testing

import (
	"testing"
	"time"

	"github.com/go-drift/sheet/pkg/overlay"
	"github.com/go-drift/sheet/pkg/rendering"
)

func TestFakeClock_Advance(t *testing.T) {
	clk := NewFakeClock()
	start := clk.Now()

	clk.Advance(100 * time.Millisecond)
	elapsed := clk.Now().Sub(start)

	if elapsed != 100*time.Millisecond {
		t.Errorf("expected 100ms elapsed, got %v", elapsed)
	}
}

func TestFakeClock_Set(t *testing.T) {
	clk := NewFakeClock()
	target := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	clk.Set(target)
	if !clk.Now().Equal(target) {
		t.Errorf("expected %v, got %v", target, clk.Now())
	}
}

func TestTester_Clock(t *testing.T) {
	tester := NewTesterWithT(t)
	clk := tester.Clock()

	if clk == nil {
		t.Fatal("expected non-nil clock")
	}

	start := clk.Now()
	clk.Advance(500 * time.Millisecond)
	if clk.Now().Sub(start) != 500*time.Millisecond {
		t.Error("clock advancement not reflected")
	}
}

// surfaceTop returns the top edge of the presented surface in the
// current frame.
func surfaceTop(t *testing.T, tester *Tester) float64 {
	t.Helper()
	clip, ok := tester.Ops().First("clipRect")
	if !ok {
		t.Fatal("expected a clipRect op for the surface")
	}
	return clip.Rect("rect").Top
}

func TestEntrance_ClockAdvance(t *testing.T) {
	tester := NewTesterWithT(t)
	attrs := panelAttrs(rendering.Size{Width: 300, Height: 200})
	attrs.Entrance = overlay.SpringSpec(300*time.Millisecond, 1, 0)
	tester.Host().Display(newPanel(), attrs)

	// Activation starts the surface at the screen bottom.
	tester.Pump(0)
	if top := surfaceTop(t, tester); top != DefaultTestHeight {
		t.Fatalf("expected surface at screen bottom on activation, got top %v", top)
	}

	// Halfway through, the surface is strictly between bottom and rest.
	tester.Pump(100 * time.Millisecond)
	top := surfaceTop(t, tester)
	if top <= 600 || top >= DefaultTestHeight {
		t.Errorf("expected surface mid-entrance, got top %v", top)
	}

	// Once settled it rests at its final position.
	if err := tester.PumpUntilSettled(5 * time.Second); err != nil {
		t.Fatalf("expected entrance to settle: %v", err)
	}
	if top := surfaceTop(t, tester); top != 600 {
		t.Errorf("expected surface at rest top 600, got %v", top)
	}
}

func TestPumpUntilSettled_Entrance(t *testing.T) {
	tester := NewTesterWithT(t)
	attrs := panelAttrs(rendering.Size{Width: 300, Height: 200})
	attrs.Entrance = overlay.SpringSpec(100*time.Millisecond, 1, 0)
	tester.Host().Display(newPanel(), attrs)

	if err := tester.PumpUntilSettled(time.Second); err != nil {
		t.Errorf("expected settle after entrance completes, got: %v", err)
	}
	if tester.Host().Active() == 0 {
		t.Error("expected entry on screen after settling")
	}
}
