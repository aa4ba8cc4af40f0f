package layout

import (
	"math"

	"github.com/go-drift/sheet/pkg/rendering"
)

// Constraints describes the min/max box a render object must size itself
// within. An infinite max dimension means unbounded in that axis.
type Constraints struct {
	MinWidth  float64
	MaxWidth  float64
	MinHeight float64
	MaxHeight float64
}

// Tight returns constraints that force exactly the given size.
func Tight(size rendering.Size) Constraints {
	return Constraints{
		MinWidth:  size.Width,
		MaxWidth:  size.Width,
		MinHeight: size.Height,
		MaxHeight: size.Height,
	}
}

// Loose returns constraints with zero minimums and the given maximums.
func Loose(size rendering.Size) Constraints {
	return Constraints{
		MaxWidth:  size.Width,
		MaxHeight: size.Height,
	}
}

// WidthWithUnboundedHeight returns constraints that fix the width and leave
// the height unconstrained, for measuring intrinsic content height.
func WidthWithUnboundedHeight(width float64) Constraints {
	return Constraints{
		MinWidth:  width,
		MaxWidth:  width,
		MinHeight: 0,
		MaxHeight: math.Inf(1),
	}
}

// IsTight reports whether the constraints permit exactly one size.
func (c Constraints) IsTight() bool {
	return c.MinWidth == c.MaxWidth && c.MinHeight == c.MaxHeight
}

// HasBoundedWidth reports whether the max width is finite.
func (c Constraints) HasBoundedWidth() bool {
	return !math.IsInf(c.MaxWidth, 1)
}

// HasBoundedHeight reports whether the max height is finite.
func (c Constraints) HasBoundedHeight() bool {
	return !math.IsInf(c.MaxHeight, 1)
}

// Constrain clamps the given size into the constraint bounds.
func (c Constraints) Constrain(size rendering.Size) rendering.Size {
	return rendering.Size{
		Width:  c.ConstrainWidth(size.Width),
		Height: c.ConstrainHeight(size.Height),
	}
}

// ConstrainWidth clamps a width into the constraint bounds.
func (c Constraints) ConstrainWidth(width float64) float64 {
	return math.Max(c.MinWidth, math.Min(c.MaxWidth, width))
}

// ConstrainHeight clamps a height into the constraint bounds.
func (c Constraints) ConstrainHeight(height float64) float64 {
	return math.Max(c.MinHeight, math.Min(c.MaxHeight, height))
}

// Loosen returns a copy with zero minimums.
func (c Constraints) Loosen() Constraints {
	return Constraints{MaxWidth: c.MaxWidth, MaxHeight: c.MaxHeight}
}
