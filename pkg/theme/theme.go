// Package theme provides the default visual configuration for sheets.
//
// A Theme is a flat set of colors, fonts, and metrics. Every new sheet
// copies its configuration from the current theme at construction time;
// later theme changes do not affect sheets that already exist.
package theme

import (
	"github.com/go-drift/sheet/pkg/rendering"
)

// Theme holds the sheet-level defaults for paddings, colors, fonts,
// corner treatment, row height, and separator sizing.
type Theme struct {
	// DismissOnTap controls whether tapping the dimmed screen outside
	// the sheet dismisses it.
	DismissOnTap bool
	// HorizontalPadding is the inset between the sheet and the short
	// screen edge on each side.
	HorizontalPadding float64

	// MaskColor dims the screen behind the sheet.
	MaskColor rendering.Color
	// BackgroundColor is the sheet surface color painted by the host
	// behind the composed content.
	BackgroundColor rendering.Color
	// AmbientColor backs every row and the header at rest, and is the
	// dimming target while a row is pressed.
	AmbientColor rendering.Color
	// SmallSeparatorColor colors the hairlines between header and rows
	// and between consecutive rows.
	SmallSeparatorColor rendering.Color
	// BigSeparatorColor colors the band between the action block and
	// the cancel row.
	BigSeparatorColor rendering.Color

	// RoundCorners is the corner treatment the host applies to the
	// presented surface.
	RoundCorners rendering.CornerSpec
	// ActionCornerRadius rounds the action block as one unit, and the
	// cancel row on its own.
	ActionCornerRadius float64
	// ActionHeight is the fixed height of every action row.
	ActionHeight float64
	// BigFragment is the thickness of the big separator.
	BigFragment float64
	// SmallFragment is the thickness of the small separators.
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

	// TitleVerticalPadding insets the header content from its top and
	// bottom edges.
	TitleVerticalPadding float64
	// TitleHorizontalPadding insets the header content from its left
	// and right edges.
	TitleHorizontalPadding float64
	// TitleLineSpacing is the vertical gap between title and message.
	TitleLineSpacing float64
}

// Default returns the stock light theme.
func Default() *Theme {
	return &Theme{
		DismissOnTap:      true,
		HorizontalPadding: 10,

		MaskColor:           rendering.RGBA(0, 0, 0, 0x66),
		BackgroundColor:     rendering.ColorTransparent,
		AmbientColor:        rendering.ColorWhite,
		SmallSeparatorColor: rendering.RGB(0xD6, 0xD6, 0xD6),
		BigSeparatorColor:   rendering.RGBA(0, 0, 0, 0x14),

		RoundCorners:       rendering.CornerSpec{Mode: rendering.CornerAll, Radius: 13},
		ActionCornerRadius: 13,
		ActionHeight:       57,
		BigFragment:        8,
		SmallFragment:      0.5,

		ButtonColor:            rendering.RGB(0x00, 0x7A, 0xFF),
		DestructiveButtonColor: rendering.RGB(0xFF, 0x3B, 0x30),
		CancelButtonColor:      rendering.RGB(0x00, 0x7A, 0xFF),
		TitleColor:             rendering.ColorBlack,
		MessageColor:           rendering.RGB(0x8F, 0x8F, 0x8F),

		ButtonFont:  rendering.RegularFont(18),
		TitleFont:   rendering.BoldFont(17),
		MessageFont: rendering.RegularFont(13),

		TitleVerticalPadding:   12,
		TitleHorizontalPadding: 16,
		TitleLineSpacing:       6,
	}
}

var current = Default()

// Current returns the active theme. The returned pointer is shared;
// callers that need an isolated copy should dereference it.
func Current() *Theme {
	return current
}

// SetCurrent replaces the active theme and returns the previous one.
// Pass nil to restore the default theme. All access is expected on the
// UI context, matching the rest of the library.
func SetCurrent(t *Theme) *Theme {
	prev := current
	if t == nil {
		current = Default()
	} else {
		current = t
	}
	return prev
}
