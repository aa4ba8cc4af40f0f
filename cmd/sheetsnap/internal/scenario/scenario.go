// Package scenario loads and runs scripted action-sheet walkthroughs.
//
// A scenario file describes the screen, one sheet with its actions, and
// a script of steps. Decoding is strict: unknown fields, unknown step
// names, and unknown action styles are errors, so a typo fails the run
// instead of silently changing it.
package scenario

import (
	"bytes"
	"fmt"
	"io"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/go-drift/sheet/pkg/errors"
	"github.com/go-drift/sheet/pkg/sheet"
)

// Scenario is one complete walkthrough: the screen to present into, the
// sheet to build, and the script to drive it with.
type Scenario struct {
	Screen Screen  `yaml:"screen"`
	Theme  string  `yaml:"theme"`
	Sheet  Content `yaml:"sheet"`
	Script []Step  `yaml:"script"`
}

// Screen is the presentation surface. The zero value means the default
// 400x800 portrait screen.
type Screen struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// Content describes the sheet to build.
type Content struct {
	Title           string   `yaml:"title"`
	Message         string   `yaml:"message"`
	RespectSafeArea bool     `yaml:"respectSafeArea"`
	Actions         []Action `yaml:"actions"`
}

// Action is one row of the sheet. Style is "default" (or empty),
// "destructive", or "cancel".
type Action struct {
	Title string `yaml:"title"`
	Style string `yaml:"style"`
}

// StepKind identifies a script step.
type StepKind int

const (
	// StepSettle runs frames until all animations have finished.
	StepSettle StepKind = iota
	// StepWait advances the clock by the step's duration, one frame at
	// a time.
	StepWait
	// StepCapture writes the current frame as an SVG file.
	StepCapture
	// StepTap taps the row with the step's title.
	StepTap
	// StepTapScreen taps the dimmed screen above the surface.
	StepTapScreen
	// StepPress pushes a pointer down on the titled row and holds it.
	StepPress
	// StepRelease lifts the pointer from the titled row.
	StepRelease
)

// Step is one script instruction. Each step is written as a single-key
// mapping, for example:
//
//	script:
//	  - settle:
//	  - capture: presented
//	  - press: Delete
//	  - capture: pressed
//	  - release: Delete
//	  - wait: 120ms
//	  - tapScreen:
type Step struct {
	Kind StepKind
	// Text is the row title for tap, press, and release, and the file
	// label for capture.
	Text string
	// Delay is the wait duration.
	Delay time.Duration
}

func (s *Step) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.MappingNode || len(value.Content) != 2 {
		return fmt.Errorf("line %d: step must be a single-key mapping like \"tap: Title\"", value.Line)
	}
	key := value.Content[0].Value
	val := value.Content[1]

	text := func() (string, error) {
		var s string
		if err := val.Decode(&s); err != nil || s == "" {
			return "", fmt.Errorf("line %d: %q needs a value", value.Line, key)
		}
		return s, nil
	}

	switch key {
	case "settle":
		s.Kind = StepSettle
	case "tapScreen":
		s.Kind = StepTapScreen
	case "wait":
		raw, err := text()
		if err != nil {
			return err
		}
		d, err := time.ParseDuration(raw)
		if err != nil {
			return fmt.Errorf("line %d: bad wait duration %q: %w", value.Line, raw, err)
		}
		if d < 0 {
			return fmt.Errorf("line %d: wait duration %q is negative", value.Line, raw)
		}
		s.Kind = StepWait
		s.Delay = d
	case "capture":
		label, err := text()
		if err != nil {
			return err
		}
		s.Kind = StepCapture
		s.Text = label
	case "tap", "press", "release":
		title, err := text()
		if err != nil {
			return err
		}
		switch key {
		case "tap":
			s.Kind = StepTap
		case "press":
			s.Kind = StepPress
		case "release":
			s.Kind = StepRelease
		}
		s.Text = title
	default:
		return fmt.Errorf("line %d: unknown step %q", value.Line, key)
	}
	return nil
}

// Load decodes a scenario document. Unknown fields are rejected.
func Load(data []byte) (*Scenario, error) {
	var sc Scenario
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&sc); err != nil && err != io.EOF {
		return nil, &errors.Error{Op: "scenario.Load", Kind: errors.KindConfig, Err: err}
	}
	if err := sc.validate(); err != nil {
		return nil, &errors.Error{Op: "scenario.Load", Kind: errors.KindConfig, Err: err}
	}
	sc.applyDefaults()
	return &sc, nil
}

func (sc *Scenario) validate() error {
	if sc.Screen.Width < 0 || sc.Screen.Height < 0 {
		return fmt.Errorf("screen size %gx%g is negative", sc.Screen.Width, sc.Screen.Height)
	}
	if len(sc.Sheet.Actions) == 0 {
		return fmt.Errorf("sheet has no actions")
	}
	cancels := 0
	for i, a := range sc.Sheet.Actions {
		if a.Title == "" {
			return fmt.Errorf("action %d has no title", i)
		}
		style, err := parseStyle(a.Style)
		if err != nil {
			return fmt.Errorf("action %q: %w", a.Title, err)
		}
		if style == sheet.ActionStyleCancel {
			cancels++
		}
	}
	if cancels > 1 {
		return fmt.Errorf("sheet has %d cancel actions, at most one is allowed", cancels)
	}
	return nil
}

func (sc *Scenario) applyDefaults() {
	if sc.Screen.Width == 0 {
		sc.Screen.Width = 400
	}
	if sc.Screen.Height == 0 {
		sc.Screen.Height = 800
	}
	if len(sc.Script) == 0 {
		sc.Script = []Step{
			{Kind: StepSettle},
			{Kind: StepCapture, Text: "presented"},
		}
	}
}

func parseStyle(s string) (sheet.ActionStyle, error) {
	switch s {
	case "", "default":
		return sheet.ActionStyleDefault, nil
	case "destructive":
		return sheet.ActionStyleDestructive, nil
	case "cancel":
		return sheet.ActionStyleCancel, nil
	}
	return 0, fmt.Errorf("unknown action style %q", s)
}

// Build constructs the sheet the scenario describes. Handlers are nil:
// the renderer only looks, it never acts.
func (sc *Scenario) Build() (*sheet.Sheet, error) {
	s := sheet.New(sc.Sheet.Title, sc.Sheet.Message)
	for _, a := range sc.Sheet.Actions {
		style, err := parseStyle(a.Style)
		if err != nil {
			return nil, err
		}
		s.AddAction(sheet.NewAction(a.Title, style, nil))
	}
	return s, nil
}
