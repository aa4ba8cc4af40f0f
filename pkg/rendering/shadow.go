package rendering

// BoxShadow describes a soft drop shadow painted under a shape.
//
// The canvases here have no blur primitive, so a shadow paints as a
// translucent silhouette of the shape. Spread inflates the silhouette
// on every side before the offset is applied.
type BoxShadow struct {
	Color  Color
	Offset Offset
	Spread float64
}

// SurfaceShadow is the shadow painted under floating overlay surfaces.
var SurfaceShadow = BoxShadow{
	Color:  RGBA(0, 0, 0, 0x40),
	Offset: Offset{Y: 3},
}

// Silhouette returns the rect the shadow occupies for the given frame.
func (s BoxShadow) Silhouette(frame Rect) Rect {
	return Rect{
		Left:   frame.Left - s.Spread,
		Top:    frame.Top - s.Spread,
		Right:  frame.Right + s.Spread,
		Bottom: frame.Bottom + s.Spread,
	}.Translate(s.Offset.X, s.Offset.Y)
}
