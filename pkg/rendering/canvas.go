package rendering

// Canvas receives drawing commands. Implementations include the
// recording canvas behind [PictureRecorder], the SVG encoder, and the
// serializing canvas in the test harness; [DisplayList.Paint] replays
// onto any of them.
//
// State (transform and clip) nests with Save/Restore. Coordinates are
// in pixels with the origin at the top left.
type Canvas interface {
	// Save pushes the transform and clip state.
	Save()

	// SaveLayerAlpha pushes state and opens a layer; everything drawn
	// until the matching Restore composites with the given opacity.
	SaveLayerAlpha(bounds Rect, alpha float64)

	// Restore pops the most recent Save or SaveLayerAlpha.
	Restore()

	// Translate moves the origin by (dx, dy).
	Translate(dx, dy float64)

	// ClipRect limits drawing to rect until the enclosing Restore.
	ClipRect(rect Rect)

	// ClipRRect limits drawing to a rounded rect.
	ClipRRect(rrect RRect)

	// ClipPath limits drawing to the path interior.
	ClipPath(path *Path)

	// Clear fills the whole canvas with color.
	Clear(color Color)

	// DrawRect fills or strokes a rectangle.
	DrawRect(rect Rect, paint Paint)

	// DrawRRect fills or strokes a rounded rectangle.
	DrawRRect(rrect RRect, paint Paint)

	// DrawLine strokes a segment from start to end.
	DrawLine(start, end Offset, paint Paint)

	// DrawPath fills or strokes a path.
	DrawPath(path *Path, paint Paint)

	// DrawText paints a measured layout with its top left at position.
	DrawText(layout *TextLayout, position Offset)

	// Size reports the canvas dimensions.
	Size() Size
}
