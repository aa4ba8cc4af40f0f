package rendering

// CornerMode selects which corners of a rectangle receive rounding.
type CornerMode int

const (
	// CornerNone applies no rounding.
	CornerNone CornerMode = iota
	// CornerAll rounds all four corners.
	CornerAll
	// CornerTop rounds only the top-left and top-right corners.
	CornerTop
	// CornerBottom rounds only the bottom-left and bottom-right corners.
	CornerBottom
)

func (m CornerMode) String() string {
	switch m {
	case CornerAll:
		return "all"
	case CornerTop:
		return "top"
	case CornerBottom:
		return "bottom"
	default:
		return "none"
	}
}

// CornerSpec describes a corner treatment: which corners to round and by
// how much. The zero value rounds nothing.
type CornerSpec struct {
	Mode   CornerMode
	Radius float64
}

// RRect returns the rounded rectangle produced by applying the spec to rect.
// Corners not selected by the mode stay sharp.
func (s CornerSpec) RRect(rect Rect) RRect {
	r := CircularRadius(s.Radius)
	switch s.Mode {
	case CornerAll:
		return RRectFromRectAndCorners(rect, r, r, r, r)
	case CornerTop:
		return RRectFromRectAndCorners(rect, r, r, Radius{}, Radius{})
	case CornerBottom:
		return RRectFromRectAndCorners(rect, Radius{}, Radius{}, r, r)
	default:
		return RRectFromRectAndCorners(rect, Radius{}, Radius{}, Radius{}, Radius{})
	}
}

// IsRounded reports whether the spec produces any rounding.
func (s CornerSpec) IsRounded() bool {
	return s.Mode != CornerNone && s.Radius > 0
}
