package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/go-drift/sheet/pkg/overlay"
	"github.com/go-drift/sheet/pkg/rendering"
	sheettest "github.com/go-drift/sheet/pkg/testing"
)

// demoScreen is the screen every demo presents into.
var demoScreen = rendering.Size{Width: 400, Height: 800}

// Recorder drives one demo on a headless host with a manual clock and
// writes captured frames as SVG documents. The manual clock makes the
// output deterministic: the same script always yields the same frames.
type Recorder struct {
	tester *sheettest.Tester
	dir    string
	frame  int
}

func newRecorder(dir string) (*Recorder, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	tester := sheettest.NewTesterEnv(overlay.Env{Screen: demoScreen})
	return &Recorder{tester: tester, dir: dir}, nil
}

// Close restores the real animation clock.
func (r *Recorder) Close() {
	r.tester.Cleanup()
}

// Host returns the overlay host demos present their sheets on.
func (r *Recorder) Host() overlay.Host {
	return r.tester.Host()
}

// Step advances the clock by d and renders one frame.
func (r *Recorder) Step(d time.Duration) {
	r.tester.Pump(d)
}

// Settle runs frames until all animations have finished.
func (r *Recorder) Settle() error {
	return r.tester.PumpUntilSettled(10 * time.Second)
}

// Capture writes the current frame as NN-label.svg.
func (r *Recorder) Capture(label string) error {
	r.frame++
	name := fmt.Sprintf("%02d-%s.svg", r.frame, label)
	svg := rendering.EncodeSVG(r.tester.Frame())
	return os.WriteFile(filepath.Join(r.dir, name), svg, 0o644)
}

// Tap taps the row with the given title.
func (r *Recorder) Tap(title string) error {
	return r.tester.TapText(title)
}

// TapScreen taps the dimmed screen above the surface.
func (r *Recorder) TapScreen() {
	r.tester.TapAt(rendering.Offset{X: demoScreen.Width / 2, Y: 80})
}

// Press pushes a pointer down on the titled row without releasing, so
// the pressed state can be captured.
func (r *Recorder) Press(title string) error {
	center, err := r.rowCenter(title)
	if err != nil {
		return err
	}
	r.tester.SendPointerDown(center)
	r.Step(0)
	return nil
}

// Release lifts the pointer from the titled row, completing the tap.
func (r *Recorder) Release(title string) error {
	center, err := r.rowCenter(title)
	if err != nil {
		return err
	}
	r.tester.SendPointerUp(center)
	r.Step(0)
	return nil
}

func (r *Recorder) rowCenter(title string) (rendering.Offset, error) {
	rect, ok := r.tester.Ops().TextRect(title)
	if !ok {
		return rendering.Offset{}, fmt.Errorf("no row titled %q on screen", title)
	}
	return rect.Center(), nil
}
