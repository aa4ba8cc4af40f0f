// Package sheet implements a modal action sheet: an optional header
// (title and message) above an ordered list of tappable actions, plus at
// most one distinguished cancel action, presented from the bottom of the
// screen by an overlay host.
//
// Build a sheet with [New], add actions with [Sheet.AddAction], and
// present it with [Sheet.Show]. Configuration fields are seeded from
// [theme.Current] at construction and may be changed freely before Show;
// the presentation snapshots them. A tapped action's handler runs only
// after the sheet has fully left the screen.
//
//	s := sheet.New("Close project?", "Unsaved changes will be lost.")
//	s.AddAction(sheet.NewAction("Close", sheet.ActionStyleDestructive, close))
//	s.AddAction(sheet.NewAction("Cancel", sheet.ActionStyleCancel, nil))
//	s.Show(host)
//
// All methods are expected on the UI context; the sheet holds no locks.
package sheet

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/go-drift/sheet/pkg/errors"
	"github.com/go-drift/sheet/pkg/overlay"
	"github.com/go-drift/sheet/pkg/rendering"
	"github.com/go-drift/sheet/pkg/theme"
)

// Sheet collects a header, an ordered action list, and a single optional
// cancel action, and presents them as one modal surface.
//
// The configuration fields mirror [theme.Theme] and start out as a copy
// of the current theme. They feed style resolution in [Sheet.AddAction]
// and composition in [Sheet.Show]; changing them after Show has no
// defined effect on a presentation already in flight.
type Sheet struct {
	// DismissOnTap controls whether tapping the dimmed screen outside
	// the sheet dismisses it. When false such taps are absorbed.
	DismissOnTap bool
	// HorizontalPadding insets the sheet from the short screen edge on
	// each side.
	HorizontalPadding float64

	// MaskColor dims the screen behind the sheet.
	MaskColor rendering.Color
	// BackgroundColor is painted behind the composed content.
	BackgroundColor rendering.Color
	// AmbientColor backs the header and every row at rest.
	AmbientColor rendering.Color
	// SmallSeparatorColor colors the hairlines inside the action block.
	SmallSeparatorColor rendering.Color
	// BigSeparatorColor colors the band before the cancel row.
	BigSeparatorColor rendering.Color

	// RoundCorners is the corner treatment of the presented surface,
	// applied by the host.
	RoundCorners rendering.CornerSpec
	// ActionCornerRadius rounds the action block as one unit and the
	// cancel row on its own.
	ActionCornerRadius float64
	// ActionHeight is the fixed height of every action row.
	ActionHeight float64
	// BigFragment is the big separator thickness.
	BigFragment float64
	// SmallFragment is the small separator thickness.
	SmallFragment float64

	// ButtonColor is the title color for default-style actions.
	ButtonColor rendering.Color
	// DestructiveButtonColor is the title color for destructive actions.
	DestructiveButtonColor rendering.Color
	// CancelButtonColor is the title color for the cancel action.
	CancelButtonColor rendering.Color
	// TitleColor is the header title color.
	TitleColor rendering.Color
	// MessageColor is the header message color.
	MessageColor rendering.Color

	// ButtonFont is the font for action row titles.
	ButtonFont rendering.Font
	// TitleFont is the font for the header title.
	TitleFont rendering.Font
	// MessageFont is the font for the header message.
	MessageFont rendering.Font

	// TitleVerticalPadding insets the header content vertically.
	TitleVerticalPadding float64
	// TitleHorizontalPadding insets the header content horizontally.
	TitleHorizontalPadding float64
	// TitleLineSpacing is the gap between title and message.
	TitleLineSpacing float64

	title   string
	message string

	actions  []*Action
	cancel   *Action
	identity overlay.Identity
}

// New creates a sheet with the given header texts. Empty strings mean
// the corresponding header line is absent; when both are empty no header
// is composed. Configuration is copied from the current theme, and the
// sheet is assigned the identity that later keys its dismissal.
func New(title, message string) *Sheet {
	t := theme.Current()
	return &Sheet{
		DismissOnTap:      t.DismissOnTap,
		HorizontalPadding: t.HorizontalPadding,

		MaskColor:           t.MaskColor,
		BackgroundColor:     t.BackgroundColor,
		AmbientColor:        t.AmbientColor,
		SmallSeparatorColor: t.SmallSeparatorColor,
		BigSeparatorColor:   t.BigSeparatorColor,

		RoundCorners:       t.RoundCorners,
		ActionCornerRadius: t.ActionCornerRadius,
		ActionHeight:       t.ActionHeight,
		BigFragment:        t.BigFragment,
		SmallFragment:      t.SmallFragment,

		ButtonColor:            t.ButtonColor,
		DestructiveButtonColor: t.DestructiveButtonColor,
		CancelButtonColor:      t.CancelButtonColor,
		TitleColor:             t.TitleColor,
		MessageColor:           t.MessageColor,

		ButtonFont:  t.ButtonFont,
		TitleFont:   t.TitleFont,
		MessageFont: t.MessageFont,

		TitleVerticalPadding:   t.TitleVerticalPadding,
		TitleHorizontalPadding: t.TitleHorizontalPadding,
		TitleLineSpacing:       t.TitleLineSpacing,

		title:    title,
		message:  message,
		identity: overlay.NewIdentity(),
	}
}

// Identity returns the token that keys this sheet's presentation for
// targeted dismissal. It is assigned once at construction.
func (s *Sheet) Identity() overlay.Identity {
	return s.identity
}

// AddAction resolves the action's unset visual fields from the sheet
// configuration and stores it. Cancel-style actions occupy the single
// cancel slot; all others append to the ordered list, preserving call
// order and allowing duplicates.
//
// Resolution fills only unset fields: TitleColor from CancelButtonColor,
// DestructiveButtonColor, or ButtonColor depending on style, TitleFont
// from ButtonFont. Explicit values are never overwritten, and no other
// mutation occurs.
//
// Adding a second cancel action is a programmer error and panics with a
// [*errors.Error] of kind [errors.KindInvariant].
func (s *Sheet) AddAction(a *Action) {
	if a == nil {
		return
	}
	if a.Style == ActionStyleCancel {
		if s.cancel != nil {
			panic(&errors.Error{
				Op:   "sheet.AddAction",
				Kind: errors.KindInvariant,
				Err:  fmt.Errorf("second cancel action %q", a.Title),
			})
		}
		if a.TitleColor == 0 {
			a.TitleColor = s.CancelButtonColor
		}
		if a.TitleFont.IsZero() {
			a.TitleFont = s.ButtonFont
		}
		s.cancel = a
		return
	}
	if a.TitleColor == 0 {
		if a.Style == ActionStyleDestructive {
			a.TitleColor = s.DestructiveButtonColor
		} else {
			a.TitleColor = s.ButtonColor
		}
	}
	if a.TitleFont.IsZero() {
		a.TitleFont = s.ButtonFont
	}
	s.actions = append(s.actions, a)
}

// UnmarshalYAML always panics with [errors.KindUnsupported]: a sheet
// cannot be reconstructed from serialized state. Build it with [New] and
// [Sheet.AddAction] instead.
func (s *Sheet) UnmarshalYAML(value *yaml.Node) error {
	panic(&errors.Error{
		Op:   "sheet.UnmarshalYAML",
		Kind: errors.KindUnsupported,
		Err:  fmt.Errorf("sheet cannot be reconstructed from serialized state"),
	})
}
