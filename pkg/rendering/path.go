package rendering

import (
	"fmt"
	"strings"
)

// PathOp represents a path drawing operation type.
type PathOp int

const (
	PathOpMoveTo  PathOp = iota // Start new subpath at point (x, y)
	PathOpLineTo                // Draw line to point (x, y)
	PathOpQuadTo                // Draw quadratic curve to (x2, y2) via control (x1, y1)
	PathOpCubicTo               // Draw cubic curve to (x3, y3) via controls (x1, y1), (x2, y2)
	PathOpClose                 // Close subpath with line to start point
)

// String returns a human-readable representation of the path operation.
func (o PathOp) String() string {
	switch o {
	case PathOpMoveTo:
		return "move_to"
	case PathOpLineTo:
		return "line_to"
	case PathOpQuadTo:
		return "quad_to"
	case PathOpCubicTo:
		return "cubic_to"
	case PathOpClose:
		return "close"
	default:
		return fmt.Sprintf("PathOp(%d)", int(o))
	}
}

// PathCommand represents a single path operation with its coordinate arguments.
type PathCommand struct {
	Op   PathOp    // The operation type
	Args []float64 // Coordinates: MoveTo/LineTo=[x,y], QuadTo=[x1,y1,x2,y2], CubicTo=[x1,y1,x2,y2,x3,y3]
}

// Path represents a vector path for drawing or clipping arbitrary shapes.
//
// Build paths using MoveTo, LineTo, QuadTo, CubicTo, and Close, or the
// AddRect/AddRRect helpers. Use with Canvas.DrawPath to fill/stroke, or
// Canvas.ClipPath to clip.
type Path struct {
	Commands []PathCommand
}

// NewPath creates a new empty path.
func NewPath() *Path {
	return &Path{}
}

// MoveTo starts a new subpath at the given point.
func (p *Path) MoveTo(x, y float64) {
	p.Commands = append(p.Commands, PathCommand{
		Op:   PathOpMoveTo,
		Args: []float64{x, y},
	})
}

// LineTo adds a line segment from the current point to (x, y).
func (p *Path) LineTo(x, y float64) {
	p.Commands = append(p.Commands, PathCommand{
		Op:   PathOpLineTo,
		Args: []float64{x, y},
	})
}

// QuadTo adds a quadratic bezier curve from the current point to (x2, y2)
// with control point (x1, y1).
func (p *Path) QuadTo(x1, y1, x2, y2 float64) {
	p.Commands = append(p.Commands, PathCommand{
		Op:   PathOpQuadTo,
		Args: []float64{x1, y1, x2, y2},
	})
}

// CubicTo adds a cubic bezier curve from the current point to (x3, y3)
// with control points (x1, y1) and (x2, y2).
func (p *Path) CubicTo(x1, y1, x2, y2, x3, y3 float64) {
	p.Commands = append(p.Commands, PathCommand{
		Op:   PathOpCubicTo,
		Args: []float64{x1, y1, x2, y2, x3, y3},
	})
}

// Close closes the current subpath by drawing a line to the starting point.
func (p *Path) Close() {
	p.Commands = append(p.Commands, PathCommand{
		Op: PathOpClose,
	})
}

// AddRect appends a closed rectangular subpath.
func (p *Path) AddRect(rect Rect) {
	p.MoveTo(rect.Left, rect.Top)
	p.LineTo(rect.Right, rect.Top)
	p.LineTo(rect.Right, rect.Bottom)
	p.LineTo(rect.Left, rect.Bottom)
	p.Close()
}

// circleKappa approximates a quarter circle with a single cubic bezier.
const circleKappa = 0.5522847498307936

// AddRRect appends a closed rounded-rectangle subpath, honoring the
// individual corner radii of rrect. Corners with zero radius are sharp.
func (p *Path) AddRRect(rrect RRect) {
	r := rrect.Rect
	tl := rrect.TopLeft
	tr := rrect.TopRight
	br := rrect.BottomRight
	bl := rrect.BottomLeft

	p.MoveTo(r.Left+tl.X, r.Top)
	p.LineTo(r.Right-tr.X, r.Top)
	if tr.X > 0 || tr.Y > 0 {
		p.CubicTo(
			r.Right-tr.X+tr.X*circleKappa, r.Top,
			r.Right, r.Top+tr.Y-tr.Y*circleKappa,
			r.Right, r.Top+tr.Y,
		)
	}
	p.LineTo(r.Right, r.Bottom-br.Y)
	if br.X > 0 || br.Y > 0 {
		p.CubicTo(
			r.Right, r.Bottom-br.Y+br.Y*circleKappa,
			r.Right-br.X+br.X*circleKappa, r.Bottom,
			r.Right-br.X, r.Bottom,
		)
	}
	p.LineTo(r.Left+bl.X, r.Bottom)
	if bl.X > 0 || bl.Y > 0 {
		p.CubicTo(
			r.Left+bl.X-bl.X*circleKappa, r.Bottom,
			r.Left, r.Bottom-bl.Y+bl.Y*circleKappa,
			r.Left, r.Bottom-bl.Y,
		)
	}
	p.LineTo(r.Left, r.Top+tl.Y)
	if tl.X > 0 || tl.Y > 0 {
		p.CubicTo(
			r.Left, r.Top+tl.Y-tl.Y*circleKappa,
			r.Left+tl.X-tl.X*circleKappa, r.Top,
			r.Left+tl.X, r.Top,
		)
	}
	p.Close()
}

// IsEmpty returns true if the path has no commands.
func (p *Path) IsEmpty() bool {
	return len(p.Commands) == 0
}

// Clear removes all commands from the path.
func (p *Path) Clear() {
	p.Commands = p.Commands[:0]
}

// Equal reports whether two paths contain the same command sequence,
// comparing coordinates within epsilon.
func (p *Path) Equal(other *Path) bool {
	if p == nil || other == nil {
		return p == other
	}
	if len(p.Commands) != len(other.Commands) {
		return false
	}
	for i, cmd := range p.Commands {
		o := other.Commands[i]
		if cmd.Op != o.Op || len(cmd.Args) != len(o.Args) {
			return false
		}
		for j, arg := range cmd.Args {
			if !floatEqual(arg, o.Args[j]) {
				return false
			}
		}
	}
	return true
}

// String returns a compact debug representation of the path.
func (p *Path) String() string {
	var b strings.Builder
	for i, cmd := range p.Commands {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(cmd.Op.String())
		if len(cmd.Args) > 0 {
			b.WriteByte('(')
			for j, arg := range cmd.Args {
				if j > 0 {
					b.WriteByte(',')
				}
				fmt.Fprintf(&b, "%.4g", arg)
			}
			b.WriteByte(')')
		}
	}
	return b.String()
}
