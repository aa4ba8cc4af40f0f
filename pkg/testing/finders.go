package testing

import (
	"github.com/go-drift/sheet/pkg/rendering"
)

// Ops is a serialized frame: display operations in paint order with all
// geometry in screen space. The finder methods never mutate the receiver.
type Ops []DisplayOp

// Filter returns the operations whose op name equals name.
func (o Ops) Filter(name string) Ops {
	var out Ops
	for _, op := range o {
		if op.Op == name {
			out = append(out, op)
		}
	}
	return out
}

// First returns the first operation with the given op name.
func (o Ops) First(name string) (DisplayOp, bool) {
	for _, op := range o {
		if op.Op == name {
			return op, true
		}
	}
	return DisplayOp{}, false
}

// Count returns the number of operations with the given op name.
func (o Ops) Count(name string) int {
	n := 0
	for _, op := range o {
		if op.Op == name {
			n++
		}
	}
	return n
}

// Texts returns every drawn string in paint order.
func (o Ops) Texts() []string {
	var out []string
	for _, op := range o {
		if op.Op == "drawText" {
			out = append(out, op.Str("text"))
		}
	}
	return out
}

// HasText reports whether the string s was drawn.
func (o Ops) HasText(s string) bool {
	_, ok := o.FindText(s)
	return ok
}

// FindText returns the first drawText operation whose string equals s.
func (o Ops) FindText(s string) (DisplayOp, bool) {
	for _, op := range o {
		if op.Op == "drawText" && op.Str("text") == s {
			return op, true
		}
	}
	return DisplayOp{}, false
}

// TextRect returns the screen-space bounds of the first drawText whose
// string equals s.
func (o Ops) TextRect(s string) (rendering.Rect, bool) {
	op, ok := o.FindText(s)
	if !ok {
		return rendering.Rect{}, false
	}
	r := rendering.RectFromLTWH(op.Float("x"), op.Float("y"), op.Float("width"), op.Float("height"))
	return r, true
}

// RectsWithColor returns the drawRect operations painted in color c.
func (o Ops) RectsWithColor(c rendering.Color) Ops {
	want := serializeColor(c)
	var out Ops
	for _, op := range o {
		if op.Op == "drawRect" && op.Str("color") == want {
			out = append(out, op)
		}
	}
	return out
}

// HasRectWithColor reports whether any rectangle was painted in color c.
func (o Ops) HasRectWithColor(c rendering.Color) bool {
	return len(o.RectsWithColor(c)) > 0
}

// --- Parameter accessors ---

// Float returns the numeric parameter with the given key, or 0.
func (op DisplayOp) Float(key string) float64 {
	v, _ := op.Params[key].(float64)
	return v
}

// Str returns the string parameter with the given key, or "".
func (op DisplayOp) Str(key string) string {
	v, _ := op.Params[key].(string)
	return v
}

// Radius decodes a corner radius parameter. Uniform radii serialize as a
// single {x, y} pair; this returns the x component, or 0 when the corners
// are not uniform or the parameter is missing.
func (op DisplayOp) Radius(key string) float64 {
	m, _ := op.Params[key].(map[string]any)
	v, _ := m["x"].(float64)
	return v
}

// Rect decodes the rectangle parameter with the given key. Missing or
// malformed parameters decode as the zero rect.
func (op DisplayOp) Rect(key string) rendering.Rect {
	m, _ := op.Params[key].(map[string]any)
	get := func(k string) float64 {
		v, _ := m[k].(float64)
		return v
	}
	return rendering.Rect{
		Left:   get("left"),
		Top:    get("top"),
		Right:  get("right"),
		Bottom: get("bottom"),
	}
}
