package rendering

import (
	"fmt"
	"strconv"
	"strings"
)

// SVGCanvas renders drawing commands into a standalone SVG document.
// It implements Canvas so a DisplayList can be replayed onto it directly.
type SVGCanvas struct {
	size    Size
	body    strings.Builder
	defs    strings.Builder
	frames  []svgFrame
	clipSeq int
}

// svgFrame tracks the <g> elements opened within one save scope so
// Restore can close exactly those.
type svgFrame struct {
	groups int
	layer  bool
}

// NewSVGCanvas creates an SVG canvas of the given pixel size.
func NewSVGCanvas(size Size) *SVGCanvas {
	return &SVGCanvas{
		size:   size,
		frames: []svgFrame{{}},
	}
}

// EncodeSVG replays a display list into an SVG document.
func EncodeSVG(list *DisplayList) []byte {
	canvas := NewSVGCanvas(list.Size())
	list.Paint(canvas)
	return canvas.Document()
}

// Document closes the drawing and returns the complete SVG document.
func (c *SVGCanvas) Document() []byte {
	var doc strings.Builder
	fmt.Fprintf(&doc, "<svg xmlns=\"http://www.w3.org/2000/svg\" width=\"%s\" height=\"%s\" viewBox=\"0 0 %s %s\">\n",
		svgNum(c.size.Width), svgNum(c.size.Height), svgNum(c.size.Width), svgNum(c.size.Height))
	if c.defs.Len() > 0 {
		doc.WriteString("<defs>\n")
		doc.WriteString(c.defs.String())
		doc.WriteString("</defs>\n")
	}
	doc.WriteString(c.body.String())
	for i := len(c.frames) - 1; i >= 0; i-- {
		for g := 0; g < c.frames[i].groups; g++ {
			doc.WriteString("</g>\n")
		}
		if c.frames[i].layer {
			doc.WriteString("</g>\n")
		}
	}
	doc.WriteString("</svg>\n")
	return []byte(doc.String())
}

func (c *SVGCanvas) openGroup(attrs string) {
	if attrs == "" {
		c.body.WriteString("<g>\n")
	} else {
		fmt.Fprintf(&c.body, "<g %s>\n", attrs)
	}
	c.frames[len(c.frames)-1].groups++
}

func (c *SVGCanvas) Save() {
	c.frames = append(c.frames, svgFrame{})
}

func (c *SVGCanvas) SaveLayerAlpha(bounds Rect, alpha float64) {
	fmt.Fprintf(&c.body, "<g opacity=\"%s\">\n", svgNum(alpha))
	c.frames = append(c.frames, svgFrame{layer: true})
}

func (c *SVGCanvas) Restore() {
	if len(c.frames) <= 1 {
		return
	}
	frame := c.frames[len(c.frames)-1]
	c.frames = c.frames[:len(c.frames)-1]
	for g := 0; g < frame.groups; g++ {
		c.body.WriteString("</g>\n")
	}
	if frame.layer {
		c.body.WriteString("</g>\n")
	}
}

func (c *SVGCanvas) Translate(dx, dy float64) {
	c.openGroup(fmt.Sprintf("transform=\"translate(%s %s)\"", svgNum(dx), svgNum(dy)))
}

func (c *SVGCanvas) ClipRect(rect Rect) {
	clipPath := NewPath()
	clipPath.AddRect(rect)
	c.clipWith(clipPath)
}

func (c *SVGCanvas) ClipRRect(rrect RRect) {
	clipPath := NewPath()
	clipPath.AddRRect(rrect)
	c.clipWith(clipPath)
}

func (c *SVGCanvas) ClipPath(path *Path) {
	c.clipWith(path)
}

func (c *SVGCanvas) clipWith(path *Path) {
	c.clipSeq++
	id := fmt.Sprintf("clip%d", c.clipSeq)
	fmt.Fprintf(&c.defs, "<clipPath id=\"%s\"><path d=\"%s\"/></clipPath>\n", id, svgPathData(path))
	c.openGroup(fmt.Sprintf("clip-path=\"url(#%s)\"", id))
}

func (c *SVGCanvas) Clear(color Color) {
	fmt.Fprintf(&c.body, "<rect x=\"0\" y=\"0\" width=\"%s\" height=\"%s\"%s/>\n",
		svgNum(c.size.Width), svgNum(c.size.Height), svgFill(color))
}

func (c *SVGCanvas) DrawRect(rect Rect, paint Paint) {
	fmt.Fprintf(&c.body, "<rect x=\"%s\" y=\"%s\" width=\"%s\" height=\"%s\"%s/>\n",
		svgNum(rect.Left), svgNum(rect.Top), svgNum(rect.Width()), svgNum(rect.Height()),
		svgPaint(paint))
}

func (c *SVGCanvas) DrawRRect(rrect RRect, paint Paint) {
	if radius := rrect.UniformRadius(); radius > 0 {
		rect := rrect.Rect
		fmt.Fprintf(&c.body, "<rect x=\"%s\" y=\"%s\" width=\"%s\" height=\"%s\" rx=\"%s\"%s/>\n",
			svgNum(rect.Left), svgNum(rect.Top), svgNum(rect.Width()), svgNum(rect.Height()),
			svgNum(radius), svgPaint(paint))
		return
	}
	path := NewPath()
	path.AddRRect(rrect)
	c.DrawPath(path, paint)
}

func (c *SVGCanvas) DrawLine(start, end Offset, paint Paint) {
	width := paint.StrokeWidth
	if width <= 0 {
		width = 1
	}
	fmt.Fprintf(&c.body, "<line x1=\"%s\" y1=\"%s\" x2=\"%s\" y2=\"%s\"%s/>\n",
		svgNum(start.X), svgNum(start.Y), svgNum(end.X), svgNum(end.Y),
		svgStroke(paint.Color, width))
}

func (c *SVGCanvas) DrawPath(path *Path, paint Paint) {
	fmt.Fprintf(&c.body, "<path d=\"%s\"%s/>\n", svgPathData(path), svgPaint(paint))
}

func (c *SVGCanvas) DrawText(layout *TextLayout, position Offset) {
	family := layout.Style.Font.Family
	if family == "" {
		family = "Go"
	}
	size := layout.Style.Font.Size
	if size <= 0 {
		size = defaultFontSize
	}
	weight := int(layout.Style.Font.Weight)
	if weight == 0 {
		weight = int(FontWeightNormal)
	}
	for i, line := range layout.Lines {
		if line.Text == "" {
			continue
		}
		x := position.X + layout.LineStart(i)
		y := position.Y + float64(i)*layout.LineHeight + layout.Ascent
		fmt.Fprintf(&c.body, "<text x=\"%s\" y=\"%s\" font-family=\"%s\" font-size=\"%s\" font-weight=\"%d\"%s>%s</text>\n",
			svgNum(x), svgNum(y), svgEscape(family), svgNum(size), weight,
			svgFill(layout.Style.Color), svgEscape(line.Text))
	}
}

func (c *SVGCanvas) Size() Size {
	return c.size
}

// svgNum formats a coordinate with up to three decimals, trimming
// trailing zeros for stable output.
func svgNum(v float64) string {
	s := strconv.FormatFloat(v, 'f', 3, 64)
	s = strings.TrimRight(s, "0")
	s = strings.TrimSuffix(s, ".")
	if s == "-0" || s == "" {
		return "0"
	}
	return s
}

func svgColor(color Color) string {
	return fmt.Sprintf("#%02X%02X%02X", color.Red(), color.Green(), color.Blue())
}

func svgFill(color Color) string {
	attrs := fmt.Sprintf(" fill=\"%s\"", svgColor(color))
	if a := color.Alpha(); a < 0xFF {
		attrs += fmt.Sprintf(" fill-opacity=\"%s\"", svgNum(float64(a)/maxByte))
	}
	return attrs
}

func svgStroke(color Color, width float64) string {
	attrs := fmt.Sprintf(" fill=\"none\" stroke=\"%s\" stroke-width=\"%s\"", svgColor(color), svgNum(width))
	if a := color.Alpha(); a < 0xFF {
		attrs += fmt.Sprintf(" stroke-opacity=\"%s\"", svgNum(float64(a)/maxByte))
	}
	return attrs
}

func svgPaint(paint Paint) string {
	if paint.Style == PaintStyleStroke {
		width := paint.StrokeWidth
		if width <= 0 {
			width = 1
		}
		return svgStroke(paint.Color, width)
	}
	return svgFill(paint.Color)
}

func svgPathData(path *Path) string {
	var b strings.Builder
	for _, cmd := range path.Commands {
		switch cmd.Op {
		case PathOpMoveTo:
			fmt.Fprintf(&b, "M%s %s", svgNum(cmd.Args[0]), svgNum(cmd.Args[1]))
		case PathOpLineTo:
			fmt.Fprintf(&b, "L%s %s", svgNum(cmd.Args[0]), svgNum(cmd.Args[1]))
		case PathOpQuadTo:
			fmt.Fprintf(&b, "Q%s %s %s %s",
				svgNum(cmd.Args[0]), svgNum(cmd.Args[1]),
				svgNum(cmd.Args[2]), svgNum(cmd.Args[3]))
		case PathOpCubicTo:
			fmt.Fprintf(&b, "C%s %s %s %s %s %s",
				svgNum(cmd.Args[0]), svgNum(cmd.Args[1]),
				svgNum(cmd.Args[2]), svgNum(cmd.Args[3]),
				svgNum(cmd.Args[4]), svgNum(cmd.Args[5]))
		case PathOpClose:
			b.WriteString("Z")
		}
	}
	return b.String()
}

var svgEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	"\"", "&quot;",
)

func svgEscape(s string) string {
	return svgEscaper.Replace(s)
}
