package testing

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/go-drift/sheet/pkg/rendering"
)

// DisplayOp represents a serialized canvas drawing operation.
type DisplayOp struct {
	Op     string         `json:"op"`
	Params map[string]any `json:"params,omitempty"`
}

// String formats the op with its parameters in stable key order.
func (op DisplayOp) String() string {
	if len(op.Params) == 0 {
		return op.Op
	}
	var b strings.Builder
	b.WriteString(op.Op)
	b.WriteByte('(')
	for i, k := range sortedKeys(op.Params) {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%s=%v", k, op.Params[k])
	}
	b.WriteByte(')')
	return b.String()
}

// serializingCanvas implements rendering.Canvas and records ops as DisplayOp.
//
// Translations are folded into the recorded geometry, so every coordinate
// in the output is in screen space. That keeps snapshots readable and lets
// finders locate content without replaying the transform stack.
type serializingCanvas struct {
	ops    []DisplayOp
	size   rendering.Size
	offset rendering.Offset
	stack  []rendering.Offset
}

func (c *serializingCanvas) Save() {
	c.stack = append(c.stack, c.offset)
	c.ops = append(c.ops, DisplayOp{Op: "save"})
}

func (c *serializingCanvas) SaveLayerAlpha(bounds rendering.Rect, alpha float64) {
	c.stack = append(c.stack, c.offset)
	c.ops = append(c.ops, DisplayOp{
		Op:     "saveLayerAlpha",
		Params: sortedMap("bounds", serializeRect(c.abs(bounds)), "alpha", round2(alpha)),
	})
}

func (c *serializingCanvas) Restore() {
	if n := len(c.stack); n > 0 {
		c.offset = c.stack[n-1]
		c.stack = c.stack[:n-1]
	}
	c.ops = append(c.ops, DisplayOp{Op: "restore"})
}

func (c *serializingCanvas) Translate(dx, dy float64) {
	c.offset.X += dx
	c.offset.Y += dy
}

func (c *serializingCanvas) ClipRect(rect rendering.Rect) {
	c.ops = append(c.ops, DisplayOp{
		Op:     "clipRect",
		Params: sortedMap("rect", serializeRect(c.abs(rect))),
	})
}

func (c *serializingCanvas) ClipRRect(rrect rendering.RRect) {
	c.ops = append(c.ops, DisplayOp{
		Op:     "clipRRect",
		Params: sortedMap("rect", serializeRect(c.abs(rrect.Rect)), "radius", serializeRadius(rrect)),
	})
}

func (c *serializingCanvas) ClipPath(path *rendering.Path) {
	c.ops = append(c.ops, DisplayOp{
		Op:     "clipPath",
		Params: sortedMap("bounds", serializeRect(c.abs(pathBounds(path)))),
	})
}

func (c *serializingCanvas) Clear(color rendering.Color) {
	c.ops = append(c.ops, DisplayOp{
		Op:     "clear",
		Params: sortedMap("color", serializeColor(color)),
	})
}

func (c *serializingCanvas) DrawRect(rect rendering.Rect, paint rendering.Paint) {
	c.ops = append(c.ops, DisplayOp{
		Op:     "drawRect",
		Params: sortedMap("rect", serializeRect(c.abs(rect)), "color", serializeColor(paint.Color)),
	})
}

func (c *serializingCanvas) DrawRRect(rrect rendering.RRect, paint rendering.Paint) {
	c.ops = append(c.ops, DisplayOp{
		Op: "drawRRect",
		Params: sortedMap(
			"rect", serializeRect(c.abs(rrect.Rect)),
			"radius", serializeRadius(rrect),
			"color", serializeColor(paint.Color),
		),
	})
}

func (c *serializingCanvas) DrawLine(start, end rendering.Offset, paint rendering.Paint) {
	s := start.Add(c.offset)
	e := end.Add(c.offset)
	c.ops = append(c.ops, DisplayOp{
		Op: "drawLine",
		Params: sortedMap(
			"x1", round2(s.X), "y1", round2(s.Y),
			"x2", round2(e.X), "y2", round2(e.Y),
			"color", serializeColor(paint.Color),
		),
	})
}

func (c *serializingCanvas) DrawPath(path *rendering.Path, paint rendering.Paint) {
	c.ops = append(c.ops, DisplayOp{
		Op: "drawPath",
		Params: sortedMap(
			"bounds", serializeRect(c.abs(pathBounds(path))),
			"color", serializeColor(paint.Color),
		),
	})
}

func (c *serializingCanvas) DrawText(layout *rendering.TextLayout, position rendering.Offset) {
	at := position.Add(c.offset)
	c.ops = append(c.ops, DisplayOp{
		Op: "drawText",
		Params: sortedMap(
			"text", layout.Text,
			"x", round2(at.X), "y", round2(at.Y),
			"width", round2(layout.Size.Width),
			"height", round2(layout.Size.Height),
			"color", serializeColor(layout.Style.Color),
		),
	})
}

func (c *serializingCanvas) Size() rendering.Size {
	return c.size
}

func (c *serializingCanvas) abs(r rendering.Rect) rendering.Rect {
	return r.Translate(c.offset.X, c.offset.Y)
}

// serializeDisplayList replays a DisplayList through the serializing canvas.
func serializeDisplayList(dl *rendering.DisplayList) []DisplayOp {
	canvas := &serializingCanvas{size: dl.Size()}
	dl.Paint(canvas)
	return canvas.ops
}

// pathBounds returns the bounding box over a path's coordinate arguments.
// Control points of the rounded-corner arcs lie inside the corner boxes,
// so for rect and rrect paths this is exact.
func pathBounds(p *rendering.Path) rendering.Rect {
	if p == nil {
		return rendering.Rect{}
	}
	left, top := math.Inf(1), math.Inf(1)
	right, bottom := math.Inf(-1), math.Inf(-1)
	for _, cmd := range p.Commands {
		for i := 0; i+1 < len(cmd.Args); i += 2 {
			left = math.Min(left, cmd.Args[i])
			right = math.Max(right, cmd.Args[i])
			top = math.Min(top, cmd.Args[i+1])
			bottom = math.Max(bottom, cmd.Args[i+1])
		}
	}
	if left > right || top > bottom {
		return rendering.Rect{}
	}
	return rendering.Rect{Left: left, Top: top, Right: right, Bottom: bottom}
}

// --- Serialization helpers ---

func serializeRect(r rendering.Rect) map[string]any {
	return sortedMap(
		"left", round2(r.Left),
		"top", round2(r.Top),
		"right", round2(r.Right),
		"bottom", round2(r.Bottom),
	)
}

func serializeRadius(rr rendering.RRect) map[string]any {
	// If all corners are the same, use a single value
	if rr.TopLeft == rr.TopRight && rr.TopRight == rr.BottomRight && rr.BottomRight == rr.BottomLeft {
		return sortedMap("x", round2(rr.TopLeft.X), "y", round2(rr.TopLeft.Y))
	}
	return sortedMap(
		"topLeft", sortedMap("x", round2(rr.TopLeft.X), "y", round2(rr.TopLeft.Y)),
		"topRight", sortedMap("x", round2(rr.TopRight.X), "y", round2(rr.TopRight.Y)),
		"bottomRight", sortedMap("x", round2(rr.BottomRight.X), "y", round2(rr.BottomRight.Y)),
		"bottomLeft", sortedMap("x", round2(rr.BottomLeft.X), "y", round2(rr.BottomLeft.Y)),
	)
}

func serializeColor(c rendering.Color) string {
	return fmt.Sprintf("0x%08X", uint32(c))
}

// round2 rounds a float64 to 2 decimal places.
func round2(f float64) float64 {
	return math.Round(f*100) / 100
}

// sortedMap creates a map from alternating key-value pairs.
// Keys are sorted alphabetically in the resulting map (Go maps iterate
// in random order, but JSON marshaling sorts keys via our snapshot encoder).
func sortedMap(kvs ...any) map[string]any {
	m := make(map[string]any, len(kvs)/2)
	for i := 0; i+1 < len(kvs); i += 2 {
		m[kvs[i].(string)] = kvs[i+1]
	}
	return m
}

// sortedKeys returns the keys of a map in sorted order.
func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
