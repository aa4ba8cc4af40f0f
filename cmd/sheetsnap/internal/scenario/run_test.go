package scenario

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-drift/sheet/pkg/theme"
)

const pressDoc = `
sheet:
  title: Delete recording?
  actions:
    - title: Delete
      style: destructive
    - title: Keep
      style: cancel
script:
  - settle:
  - capture: presented
  - press: Delete
  - capture: pressed
  - release: Delete
  - settle:
`

func TestRun_WritesFrames(t *testing.T) {
	sc, err := Load([]byte(pressDoc))
	if err != nil {
		t.Fatal(err)
	}

	out := t.TempDir()
	frames, err := Run(sc, out, out)
	if err != nil {
		t.Fatal(err)
	}
	if frames != 2 {
		t.Errorf("expected 2 frames, got %d", frames)
	}

	for _, name := range []string{"01-presented.svg", "02-pressed.svg"} {
		data, err := os.ReadFile(filepath.Join(out, name))
		if err != nil {
			t.Fatalf("missing frame %s: %v", name, err)
		}
		if !strings.HasPrefix(string(data), "<svg") {
			t.Errorf("%s does not look like an SVG document", name)
		}
		if !strings.Contains(string(data), "Delete recording?") {
			t.Errorf("%s does not show the sheet title", name)
		}
	}
}

func TestRun_TapScreenDismisses(t *testing.T) {
	doc := `
sheet:
  actions:
    - title: Close
      style: cancel
script:
  - settle:
  - capture: shown
  - tapScreen:
  - settle:
  - capture: gone
`
	sc, err := Load([]byte(doc))
	if err != nil {
		t.Fatal(err)
	}

	out := t.TempDir()
	frames, err := Run(sc, out, out)
	if err != nil {
		t.Fatal(err)
	}
	if frames != 2 {
		t.Fatalf("expected 2 frames, got %d", frames)
	}

	shown, err := os.ReadFile(filepath.Join(out, "01-shown.svg"))
	if err != nil {
		t.Fatal(err)
	}
	gone, err := os.ReadFile(filepath.Join(out, "02-gone.svg"))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(shown), "Close") {
		t.Error("expected the cancel row in the shown frame")
	}
	if strings.Contains(string(gone), "Close") {
		t.Error("expected an empty frame after the screen tap")
	}
}

func TestRun_AppliesAndRestoresTheme(t *testing.T) {
	base := t.TempDir()
	themeDoc := "ambientColor: \"#2C2C2E\"\n"
	if err := os.WriteFile(filepath.Join(base, "dark.yaml"), []byte(themeDoc), 0o644); err != nil {
		t.Fatal(err)
	}

	doc := `
theme: dark.yaml
sheet:
  actions:
    - title: OK
script:
  - settle:
  - capture: presented
`
	sc, err := Load([]byte(doc))
	if err != nil {
		t.Fatal(err)
	}

	before := theme.Current()
	out := t.TempDir()
	if _, err := Run(sc, base, out); err != nil {
		t.Fatal(err)
	}
	if theme.Current() != before {
		t.Error("expected the previous theme restored after the run")
	}

	data, err := os.ReadFile(filepath.Join(out, "01-presented.svg"))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "#2C2C2E") {
		t.Error("expected the themed row background in the frame")
	}
}

func TestRun_MissingThemeFileFails(t *testing.T) {
	sc, err := Load([]byte("theme: nope.yaml\nsheet:\n  actions:\n    - title: OK\n"))
	if err != nil {
		t.Fatal(err)
	}
	if _, err := Run(sc, t.TempDir(), t.TempDir()); err == nil {
		t.Fatal("expected an error for a missing theme file")
	}
}

func TestRun_TapOnMissingRowFails(t *testing.T) {
	doc := `
sheet:
  actions:
    - title: OK
script:
  - settle:
  - tap: Nope
`
	sc, err := Load([]byte(doc))
	if err != nil {
		t.Fatal(err)
	}

	out := t.TempDir()
	frames, err := Run(sc, out, out)
	if err == nil {
		t.Fatal("expected an error for tapping a missing row")
	}
	if !strings.Contains(err.Error(), `"Nope"`) {
		t.Errorf("error %q does not name the missing row", err)
	}
	if frames != 0 {
		t.Errorf("expected no frames, got %d", frames)
	}
}
