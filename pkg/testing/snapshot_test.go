package testing

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-drift/sheet/pkg/rendering"
)

func TestCaptureSnapshot_RecordsFrame(t *testing.T) {
	tester := NewTesterWithT(t)
	panel := newPanel()
	tester.Host().Display(panel, panelAttrs(panel.Size))
	tester.Pump(0)

	snap := tester.CaptureSnapshot()
	if snap == nil {
		t.Fatal("expected non-nil snapshot")
	}
	if snap.Screen != [2]float64{DefaultTestWidth, DefaultTestHeight} {
		t.Errorf("expected screen %vx%v, got %v", DefaultTestWidth, DefaultTestHeight, snap.Screen)
	}
	if len(snap.DisplayOps) == 0 {
		t.Fatal("expected display ops for a presented surface")
	}
}

func TestSnapshot_Diff_Equal(t *testing.T) {
	tester := NewTesterWithT(t)
	panel := newPanel()
	tester.Host().Display(panel, panelAttrs(panel.Size))
	tester.Pump(0)

	a := tester.CaptureSnapshot()
	b := tester.CaptureSnapshot()

	if diff := a.Diff(b); diff != "" {
		t.Errorf("expected no diff for identical snapshots, got:\n%s", diff)
	}
}

func TestSnapshot_Diff_Different(t *testing.T) {
	tester := NewTesterWithT(t)
	panel := newPanel()
	attrs := panelAttrs(panel.Size)
	tester.Host().Display(panel, attrs)
	tester.Pump(0)
	a := tester.CaptureSnapshot()

	tester.Host().Dismiss(attrs.Identity, nil)

	other := newPanel()
	other.Color = rendering.RGB(0x20, 0x60, 0xA0)
	tester.Host().Display(other, panelAttrs(other.Size))
	tester.Pump(0)
	b := tester.CaptureSnapshot()

	if diff := a.Diff(b); diff == "" {
		t.Error("expected diff for different frames")
	}
}

func TestSnapshot_UpdateAndMatch(t *testing.T) {
	tester := NewTesterWithT(t)
	panel := newPanel()
	tester.Host().Display(panel, panelAttrs(panel.Size))
	tester.Pump(0)

	snap := tester.CaptureSnapshot()

	dir := t.TempDir()
	path := filepath.Join(dir, "testdata", "panel.snapshot.json")

	if err := snap.UpdateFile(path); err != nil {
		t.Fatalf("UpdateFile failed: %v", err)
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		t.Fatal("snapshot file should exist after UpdateFile")
	}

	// MatchesFile should pass now
	snap.MatchesFile(t, path)
}

func TestSnapshot_MatchesFile_MissingFile(t *testing.T) {
	t.Setenv("SHEET_UPDATE_SNAPSHOTS", "")
	tester := NewTesterWithT(t)
	tester.Pump(0)
	snap := tester.CaptureSnapshot()

	// Use a recorder to intercept the Fatal
	failed := false
	sub := &fatalRecorder{name: t.Name(), onFatal: func() { failed = true }}
	snap.MatchesFile(sub, filepath.Join(t.TempDir(), "missing", "snap.json"))

	if !failed {
		t.Error("expected MatchesFile to fail for missing file")
	}
}

func TestSnapshot_MatchesFile_Mismatch(t *testing.T) {
	t.Setenv("SHEET_UPDATE_SNAPSHOTS", "")
	tester := NewTesterWithT(t)
	panel := newPanel()
	attrs := panelAttrs(panel.Size)
	tester.Host().Display(panel, attrs)
	tester.Pump(0)
	first := tester.CaptureSnapshot()

	dir := t.TempDir()
	path := filepath.Join(dir, "snap.json")
	if err := first.UpdateFile(path); err != nil {
		t.Fatalf("UpdateFile failed: %v", err)
	}

	tester.Host().Dismiss(attrs.Identity, nil)
	tester.Pump(0)
	second := tester.CaptureSnapshot()

	errored := false
	sub := &errorRecorder{name: t.Name(), onError: func() { errored = true }}
	second.MatchesFile(sub, path)

	if !errored {
		t.Error("expected MatchesFile to report error for mismatch")
	}
}

func TestSnapshot_UpdateMode(t *testing.T) {
	tester := NewTesterWithT(t)
	panel := newPanel()
	tester.Host().Display(panel, panelAttrs(panel.Size))
	tester.Pump(0)
	snap := tester.CaptureSnapshot()

	dir := t.TempDir()
	path := filepath.Join(dir, "update.snapshot.json")

	t.Setenv("SHEET_UPDATE_SNAPSHOTS", "1")
	snap.MatchesFile(t, path)

	// File should now exist
	if _, err := os.Stat(path); os.IsNotExist(err) {
		t.Error("snapshot file should be created in update mode")
	}
}

// fatalRecorder intercepts Fatalf calls for testing MatchesFile failures.
type fatalRecorder struct {
	name    string
	onFatal func()
}

func (r *fatalRecorder) Fatalf(format string, args ...any) { r.onFatal() }
func (r *fatalRecorder) Errorf(format string, args ...any) {}
func (r *fatalRecorder) Helper()                           {}
func (r *fatalRecorder) Name() string                      { return r.name }

// errorRecorder intercepts Errorf calls for testing MatchesFile mismatches.
type errorRecorder struct {
	name    string
	onError func()
}

func (r *errorRecorder) Fatalf(format string, args ...any) {}
func (r *errorRecorder) Errorf(format string, args ...any) { r.onError() }
func (r *errorRecorder) Helper()                           {}
func (r *errorRecorder) Name() string                      { return r.name }
