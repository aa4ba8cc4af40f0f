package rendering

// DisplayList is an immutable sequence of recorded canvas operations
// that can be replayed onto any Canvas implementation.
type DisplayList struct {
	ops  []op
	size Size
}

// Paint replays the recorded operations onto the provided canvas.
func (d *DisplayList) Paint(canvas Canvas) {
	for _, o := range d.ops {
		o.replay(canvas)
	}
}

// Size returns the size recorded when the display list was created.
func (d *DisplayList) Size() Size {
	return d.size
}

// OpCount returns the number of recorded operations.
func (d *DisplayList) OpCount() int {
	return len(d.ops)
}

// PictureRecorder records drawing commands into a display list.
type PictureRecorder struct {
	ops       []op
	recording bool
	size      Size
}

// BeginRecording starts a new recording session. The returned canvas
// stays bound to this recorder; drawing on it after EndRecording is a
// no-op.
func (r *PictureRecorder) BeginRecording(size Size) Canvas {
	r.ops = r.ops[:0]
	r.recording = true
	r.size = size
	return &recordingCanvas{recorder: r, size: size}
}

// EndRecording finishes the recording and returns a display list.
func (r *PictureRecorder) EndRecording() *DisplayList {
	if !r.recording {
		return &DisplayList{size: r.size}
	}
	r.recording = false
	ops := make([]op, len(r.ops))
	copy(ops, r.ops)
	return &DisplayList{
		ops:  ops,
		size: r.size,
	}
}

func (r *PictureRecorder) append(o op) {
	if !r.recording {
		return
	}
	r.ops = append(r.ops, o)
}

// opKind discriminates recorded canvas operations.
type opKind int

const (
	opSave opKind = iota
	opSaveLayerAlpha
	opRestore
	opTranslate
	opClipRect
	opClipRRect
	opClipPath
	opClear
	opDrawRect
	opDrawRRect
	opDrawLine
	opDrawPath
	opDrawText
)

// op is one recorded operation as a flat record. Which fields carry
// data depends on kind; unused fields stay zero.
type op struct {
	kind  opKind
	rect  Rect    // clip/draw rect, saveLayerAlpha bounds
	rrect RRect   // clip/draw rrect
	path  *Path   // clip/draw path
	paint Paint   // draw ops
	color Color   // clear
	p1    Offset  // translate delta, line start, text position
	p2    Offset  // line end
	alpha float64 // saveLayerAlpha
	text  *TextLayout
}

func (o op) replay(canvas Canvas) {
	switch o.kind {
	case opSave:
		canvas.Save()
	case opSaveLayerAlpha:
		canvas.SaveLayerAlpha(o.rect, o.alpha)
	case opRestore:
		canvas.Restore()
	case opTranslate:
		canvas.Translate(o.p1.X, o.p1.Y)
	case opClipRect:
		canvas.ClipRect(o.rect)
	case opClipRRect:
		canvas.ClipRRect(o.rrect)
	case opClipPath:
		canvas.ClipPath(o.path)
	case opClear:
		canvas.Clear(o.color)
	case opDrawRect:
		canvas.DrawRect(o.rect, o.paint)
	case opDrawRRect:
		canvas.DrawRRect(o.rrect, o.paint)
	case opDrawLine:
		canvas.DrawLine(o.p1, o.p2, o.paint)
	case opDrawPath:
		canvas.DrawPath(o.path, o.paint)
	case opDrawText:
		canvas.DrawText(o.text, o.p1)
	}
}

// recordingCanvas forwards Canvas calls into its recorder.
type recordingCanvas struct {
	recorder *PictureRecorder
	size     Size
}

func (c *recordingCanvas) Save() {
	c.recorder.append(op{kind: opSave})
}

func (c *recordingCanvas) SaveLayerAlpha(bounds Rect, alpha float64) {
	c.recorder.append(op{kind: opSaveLayerAlpha, rect: bounds, alpha: alpha})
}

func (c *recordingCanvas) Restore() {
	c.recorder.append(op{kind: opRestore})
}

func (c *recordingCanvas) Translate(dx, dy float64) {
	c.recorder.append(op{kind: opTranslate, p1: Offset{X: dx, Y: dy}})
}

func (c *recordingCanvas) ClipRect(rect Rect) {
	c.recorder.append(op{kind: opClipRect, rect: rect})
}

func (c *recordingCanvas) ClipRRect(rrect RRect) {
	c.recorder.append(op{kind: opClipRRect, rrect: rrect})
}

func (c *recordingCanvas) ClipPath(path *Path) {
	c.recorder.append(op{kind: opClipPath, path: path})
}

func (c *recordingCanvas) Clear(color Color) {
	c.recorder.append(op{kind: opClear, color: color})
}

func (c *recordingCanvas) DrawRect(rect Rect, paint Paint) {
	c.recorder.append(op{kind: opDrawRect, rect: rect, paint: paint})
}

func (c *recordingCanvas) DrawRRect(rrect RRect, paint Paint) {
	c.recorder.append(op{kind: opDrawRRect, rrect: rrect, paint: paint})
}

func (c *recordingCanvas) DrawLine(start, end Offset, paint Paint) {
	c.recorder.append(op{kind: opDrawLine, p1: start, p2: end, paint: paint})
}

func (c *recordingCanvas) DrawPath(path *Path, paint Paint) {
	c.recorder.append(op{kind: opDrawPath, path: path, paint: paint})
}

func (c *recordingCanvas) DrawText(layout *TextLayout, position Offset) {
	c.recorder.append(op{kind: opDrawText, text: layout, p1: position})
}

func (c *recordingCanvas) Size() Size {
	return c.size
}
