package main

import (
	"time"

	"github.com/go-drift/sheet/pkg/sheet"
	"github.com/go-drift/sheet/pkg/theme"
)

func runClassic(r *Recorder) error {
	s := sheet.New("Remove photo?", "The photo will be removed from this album, but kept in your library.")
	s.AddAction(sheet.NewAction("Share", sheet.ActionStyleDefault, nil))
	s.AddAction(sheet.NewAction("Duplicate", sheet.ActionStyleDefault, nil))
	s.AddAction(sheet.NewAction("Remove", sheet.ActionStyleDestructive, nil))
	s.AddAction(sheet.NewAction("Cancel", sheet.ActionStyleCancel, nil))
	s.Show(r.Host())

	r.Step(0)
	r.Step(80 * time.Millisecond)
	if err := r.Capture("entering"); err != nil {
		return err
	}
	if err := r.Settle(); err != nil {
		return err
	}
	if err := r.Capture("presented"); err != nil {
		return err
	}

	if err := r.Tap("Duplicate"); err != nil {
		return err
	}
	r.Step(120 * time.Millisecond)
	if err := r.Capture("exiting"); err != nil {
		return err
	}
	return r.Settle()
}

func runDestructive(r *Recorder) error {
	s := sheet.New("Delete recording?", "This will delete the recording from all of your devices.")
	s.AddAction(sheet.NewAction("Delete", sheet.ActionStyleDestructive, nil))
	s.AddAction(sheet.NewAction("Keep", sheet.ActionStyleCancel, nil))
	s.Show(r.Host())

	if err := r.Settle(); err != nil {
		return err
	}
	if err := r.Capture("presented"); err != nil {
		return err
	}

	if err := r.Press("Delete"); err != nil {
		return err
	}
	if err := r.Capture("pressed"); err != nil {
		return err
	}
	if err := r.Release("Delete"); err != nil {
		return err
	}
	return r.Settle()
}

func runCancelOnly(r *Recorder) error {
	s := sheet.New("", "")
	s.AddAction(sheet.NewAction("Close", sheet.ActionStyleCancel, nil))
	s.Show(r.Host())

	if err := r.Settle(); err != nil {
		return err
	}
	if err := r.Capture("presented"); err != nil {
		return err
	}

	r.TapScreen()
	r.Step(100 * time.Millisecond)
	if err := r.Capture("dismissing"); err != nil {
		return err
	}
	return r.Settle()
}

func runHeaderless(r *Recorder) error {
	s := sheet.New("", "")
	s.AddAction(sheet.NewAction("Open", sheet.ActionStyleDefault, nil))
	s.AddAction(sheet.NewAction("Rename", sheet.ActionStyleDefault, nil))
	s.AddAction(sheet.NewAction("Move", sheet.ActionStyleDefault, nil))
	s.Show(r.Host())

	if err := r.Settle(); err != nil {
		return err
	}
	if err := r.Capture("presented"); err != nil {
		return err
	}

	if err := r.Press("Rename"); err != nil {
		return err
	}
	if err := r.Capture("pressed"); err != nil {
		return err
	}
	if err := r.Release("Rename"); err != nil {
		return err
	}
	return r.Settle()
}

// darkTheme overrides the surface and text colors; everything it does
// not name keeps its default.
const darkTheme = `
ambientColor: "#2C2C2E"
smallSeparatorColor: "#48484A"
bigSeparatorColor: "#1F000000"
buttonColor: "#0A84FF"
destructiveButtonColor: "#FF453A"
cancelButtonColor: "#0A84FF"
titleColor: "#FFFFFF"
messageColor: "#98989E"
`

func runThemed(r *Recorder) error {
	dark, err := theme.Load([]byte(darkTheme))
	if err != nil {
		return err
	}
	prev := theme.SetCurrent(dark)
	defer theme.SetCurrent(prev)

	s := sheet.New("Clear history?", "Clearing removes the history from this device only.")
	s.AddAction(sheet.NewAction("Clear", sheet.ActionStyleDestructive, nil))
	s.AddAction(sheet.NewAction("Cancel", sheet.ActionStyleCancel, nil))
	s.Show(r.Host())

	if err := r.Settle(); err != nil {
		return err
	}
	if err := r.Capture("presented"); err != nil {
		return err
	}

	if err := r.Tap("Cancel"); err != nil {
		return err
	}
	return r.Settle()
}
