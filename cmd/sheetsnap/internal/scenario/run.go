package scenario

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/go-drift/sheet/pkg/overlay"
	"github.com/go-drift/sheet/pkg/rendering"
	"github.com/go-drift/sheet/pkg/sheet"
	sheettest "github.com/go-drift/sheet/pkg/testing"
	"github.com/go-drift/sheet/pkg/theme"
)

// settleBudget bounds how long a settle step may run. A scenario whose
// animations never finish is a bug in the scenario, not a reason to
// spin forever.
const settleBudget = 10 * time.Second

// Run drives the scenario on a headless host and writes captured frames
// into outDir as NN-label.svg. baseDir resolves the scenario's relative
// theme path. It returns the number of frames written.
func Run(sc *Scenario, baseDir, outDir string) (int, error) {
	if sc.Theme != "" {
		path := sc.Theme
		if !filepath.IsAbs(path) {
			path = filepath.Join(baseDir, path)
		}
		t, err := theme.LoadFile(path)
		if err != nil {
			return 0, err
		}
		prev := theme.SetCurrent(t)
		defer theme.SetCurrent(prev)
	}

	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return 0, err
	}

	tester := sheettest.NewTesterEnv(overlay.Env{
		Screen: rendering.Size{Width: sc.Screen.Width, Height: sc.Screen.Height},
	})
	defer tester.Cleanup()

	s, err := sc.Build()
	if err != nil {
		return 0, err
	}
	var opts []sheet.ShowOption
	if sc.Sheet.RespectSafeArea {
		opts = append(opts, sheet.RespectSafeArea())
	}
	s.Show(tester.Host(), opts...)
	tester.Pump(0)

	r := &runner{tester: tester, outDir: outDir}
	for i, step := range sc.Script {
		if err := r.apply(step); err != nil {
			return r.frames, fmt.Errorf("step %d: %w", i+1, err)
		}
	}
	return r.frames, nil
}

type runner struct {
	tester *sheettest.Tester
	outDir string
	frames int
}

func (r *runner) apply(step Step) error {
	switch step.Kind {
	case StepSettle:
		return r.tester.PumpUntilSettled(settleBudget)
	case StepWait:
		return r.wait(step.Delay)
	case StepCapture:
		return r.capture(step.Text)
	case StepTap:
		return r.tester.TapText(step.Text)
	case StepTapScreen:
		env := r.tester.Host().Environment()
		r.tester.TapAt(rendering.Offset{X: env.Screen.Width / 2, Y: env.Screen.Height / 10})
		return nil
	case StepPress:
		center, err := r.rowCenter(step.Text)
		if err != nil {
			return err
		}
		r.tester.SendPointerDown(center)
		r.tester.Pump(0)
		return nil
	case StepRelease:
		center, err := r.rowCenter(step.Text)
		if err != nil {
			return err
		}
		r.tester.SendPointerUp(center)
		r.tester.Pump(0)
		return nil
	}
	return fmt.Errorf("unknown step kind %d", step.Kind)
}

// wait advances in frame-sized slices so animations tick the way they
// would on a real frame loop.
func (r *runner) wait(d time.Duration) error {
	const frame = 16 * time.Millisecond
	for d > 0 {
		slice := frame
		if d < slice {
			slice = d
		}
		r.tester.Pump(slice)
		d -= slice
	}
	return nil
}

func (r *runner) capture(label string) error {
	r.frames++
	name := fmt.Sprintf("%02d-%s.svg", r.frames, label)
	svg := rendering.EncodeSVG(r.tester.Frame())
	return os.WriteFile(filepath.Join(r.outDir, name), svg, 0o644)
}

func (r *runner) rowCenter(title string) (rendering.Offset, error) {
	rect, ok := r.tester.Ops().TextRect(title)
	if !ok {
		return rendering.Offset{}, fmt.Errorf("no row titled %q on screen", title)
	}
	return rect.Center(), nil
}
