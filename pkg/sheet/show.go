package sheet

import (
	"time"

	"github.com/go-drift/sheet/pkg/layout"
	"github.com/go-drift/sheet/pkg/overlay"
	"github.com/go-drift/sheet/pkg/rendering"
)

const (
	entranceDuration = 300 * time.Millisecond
	exitDuration     = 250 * time.Millisecond
)

// ShowOption adjusts how a sheet is presented.
type ShowOption func(*showConfig)

type showConfig struct {
	overrideSafeArea bool
}

// RespectSafeArea keeps the sheet above the bottom safe-area inset. By
// default the sheet extends to the physical screen bottom.
func RespectSafeArea() ShowOption {
	return func(c *showConfig) {
		c.overrideSafeArea = false
	}
}

// Show composes the sheet and submits it to the host for presentation.
// It is non-blocking: the host animates the sheet in on its own frame
// loop, and a tapped action's handler runs only after the host has
// finished removing the sheet from screen.
//
// A sheet with no actions and no cancel action is a no-op; nothing is
// submitted. The presented width is the short screen side minus the
// horizontal padding on both sides, and the height is the content's
// fitting height at that width.
func (s *Sheet) Show(host overlay.Host, opts ...ShowOption) {
	cfg := showConfig{overrideSafeArea: true}
	for _, opt := range opts {
		opt(&cfg)
	}
	if len(s.actions) == 0 && s.cancel == nil {
		return
	}

	c := s.compose(func(a *Action) {
		host.Dismiss(s.identity, func() {
			if a.Handler != nil {
				a.Handler()
			}
		})
	})

	env := host.Environment()
	width := env.Screen.ShortestSide() - 2*s.HorizontalPadding
	if width < 0 {
		width = 0
	}
	measured := c.Measure(layout.WidthWithUnboundedHeight(width))

	interaction := overlay.InteractionAbsorb
	if s.DismissOnTap {
		interaction = overlay.InteractionDismiss
	}
	host.Display(c, overlay.Attributes{
		Size:              rendering.Size{Width: width, Height: measured.Height},
		VerticalOffset:    0,
		OverrideSafeArea:  cfg.overrideSafeArea,
		Corners:           s.RoundCorners,
		Entrance:          overlay.SpringSpec(entranceDuration, 1, 0),
		Exit:              overlay.CurveSpec(exitDuration, nil),
		ScreenColor:       s.MaskColor,
		BackgroundColor:   s.BackgroundColor,
		Shadow:            false,
		Scrollable:        false,
		ScreenInteraction: interaction,
		Duration:          overlay.DisplayForever,
		Priority:          overlay.PriorityNormal,
		Identity:          s.identity,
	})
}
