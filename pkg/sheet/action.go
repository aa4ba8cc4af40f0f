package sheet

import (
	"fmt"

	"github.com/go-drift/sheet/pkg/rendering"
)

// ActionStyle categorizes an action and selects its default title color.
type ActionStyle int

const (
	// ActionStyleDefault is a regular action.
	ActionStyleDefault ActionStyle = iota

	// ActionStyleCancel marks the single distinguished dismiss action,
	// rendered separately below the action block.
	ActionStyleCancel

	// ActionStyleDestructive marks an action with irreversible effect.
	ActionStyleDestructive
)

// String returns a human-readable representation of the style.
func (s ActionStyle) String() string {
	switch s {
	case ActionStyleDefault:
		return "default"
	case ActionStyleCancel:
		return "cancel"
	case ActionStyleDestructive:
		return "destructive"
	default:
		return fmt.Sprintf("ActionStyle(%d)", int(s))
	}
}

// Action is one tappable sheet option.
//
// Title, Style, and Handler are fixed at creation. The four visual
// override fields may be left at their zero value, in which case
// [Sheet.AddAction] fills them from the sheet configuration exactly
// once; explicitly set values are never overwritten.
type Action struct {
	// Title is the text shown on the row.
	Title string

	// Style selects the default title color and, for
	// [ActionStyleCancel], the distinguished cancel slot.
	Style ActionStyle

	// Handler runs after the sheet has been dismissed in response to a
	// tap on this action. Optional.
	Handler func()

	// TitleColor overrides the style-derived title color.
	TitleColor rendering.Color

	// TitleFont overrides the configured button font.
	TitleFont rendering.Font

	// NormalColor is the row background restored on release when
	// HighlightedColor is set. Without HighlightedColor it has no effect.
	NormalColor rendering.Color

	// HighlightedColor is the row background while pressed. When unset,
	// pressing dims the ambient backing instead.
	HighlightedColor rendering.Color
}

// NewAction creates an action with the given title, style, and handler.
// The handler may be nil for actions that only dismiss the sheet.
func NewAction(title string, style ActionStyle, handler func()) *Action {
	return &Action{Title: title, Style: style, Handler: handler}
}
