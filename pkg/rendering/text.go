package rendering

import (
	"math"
	"strings"
	"unicode"
	"unicode/utf8"
)

const (
	// defaultFontSize is used when no font size is specified.
	defaultFontSize = 16
)

// FontWeight represents a numeric font weight.
type FontWeight int

const (
	FontWeightNormal   FontWeight = 400
	FontWeightSemibold FontWeight = 600
	FontWeightBold     FontWeight = 700
)

// Font describes a typeface request. The zero value means "unset" and
// resolves to the bundled regular face at the default size.
type Font struct {
	Family string
	Size   float64
	Weight FontWeight
}

// IsZero reports whether no field of the font has been set.
func (f Font) IsZero() bool {
	return f.Family == "" && f.Size == 0 && f.Weight == 0
}

// RegularFont returns a normal-weight font of the given size.
func RegularFont(size float64) Font {
	return Font{Size: size, Weight: FontWeightNormal}
}

// BoldFont returns a bold font of the given size.
func BoldFont(size float64) Font {
	return Font{Size: size, Weight: FontWeightBold}
}

// TextAlign controls horizontal alignment of lines within a text layout.
type TextAlign int

const (
	// TextAlignLeft aligns lines to the left edge of the layout.
	TextAlignLeft TextAlign = iota
	// TextAlignCenter centers each line horizontally within the layout.
	TextAlignCenter
	// TextAlignRight aligns lines to the right edge of the layout.
	TextAlignRight
)

// TextStyle describes how text should be rendered.
type TextStyle struct {
	Color Color
	Font  Font
	Align TextAlign
}

// TextLine represents a single laid-out line of text.
type TextLine struct {
	Text  string
	Width float64
}

// TextLayout contains measured, wrapped text ready for drawing.
type TextLayout struct {
	Text       string
	Style      TextStyle
	Size       Size
	Ascent     float64
	Descent    float64
	LineHeight float64
	Lines      []TextLine
}

// LineStart returns the x position of line i within the layout width,
// honoring the style's alignment.
func (l *TextLayout) LineStart(i int) float64 {
	if i < 0 || i >= len(l.Lines) {
		return 0
	}
	switch l.Style.Align {
	case TextAlignCenter:
		return (l.Size.Width - l.Lines[i].Width) / 2
	case TextAlignRight:
		return l.Size.Width - l.Lines[i].Width
	default:
		return 0
	}
}

// LayoutText measures and shapes the given text without wrapping.
func LayoutText(text string, style TextStyle) (*TextLayout, error) {
	return LayoutTextWithConstraints(text, style, 0)
}

// LayoutTextWithConstraints measures and wraps text within the given width.
// A maxWidth of zero disables wrapping.
func LayoutTextWithConstraints(text string, style TextStyle, maxWidth float64) (*TextLayout, error) {
	registry, err := DefaultFonts()
	if err != nil {
		return nil, err
	}
	ascent, descent, lineHeight, err := registry.FaceMetrics(style.Font)
	if err != nil {
		return nil, err
	}
	var measureErr error
	measure := func(s string) float64 {
		width, err := registry.MeasureString(style.Font, s)
		if err != nil {
			measureErr = err
			return 0
		}
		return width
	}
	lines := layoutLines(text, maxWidth, measure)
	if measureErr != nil {
		return nil, measureErr
	}
	maxLineWidth := 0.0
	for _, line := range lines {
		maxLineWidth = math.Max(maxLineWidth, line.Width)
	}
	if len(lines) == 0 {
		lines = []TextLine{{Text: "", Width: 0}}
	}
	layoutSize := Size{Width: maxLineWidth, Height: lineHeight * float64(len(lines))}
	return &TextLayout{
		Text:       text,
		Style:      style,
		Size:       layoutSize,
		Ascent:     ascent,
		Descent:    descent,
		LineHeight: lineHeight,
		Lines:      lines,
	}, nil
}

func layoutLines(text string, maxWidth float64, measure func(string) float64) []TextLine {
	if maxWidth < 0 || math.IsInf(maxWidth, 0) {
		maxWidth = 0
	}
	paragraphs := strings.Split(text, "\n")
	lines := make([]TextLine, 0, len(paragraphs))
	for _, paragraph := range paragraphs {
		if paragraph == "" {
			lines = append(lines, TextLine{})
			continue
		}
		if maxWidth == 0 {
			lines = append(lines, TextLine{Text: paragraph, Width: measure(paragraph)})
			continue
		}
		for _, line := range wrapParagraph(paragraph, maxWidth, measure) {
			lines = append(lines, TextLine{Text: line, Width: measure(line)})
		}
	}
	return lines
}

func wrapParagraph(text string, maxWidth float64, measure func(string) float64) []string {
	var lines []string
	start := 0
	for start < len(text) {
		lastBreak := -1
		lastFit := -1
		for i := start; i < len(text); {
			r, size := utf8.DecodeRuneInString(text[i:])
			next := i + size
			width := measure(text[start:next])
			if width > maxWidth {
				break
			}
			lastFit = next
			if unicode.IsSpace(r) {
				lastBreak = next
			}
			i = next
		}
		if lastFit == -1 {
			// Not even one rune fits; take it anyway to guarantee progress.
			_, size := utf8.DecodeRuneInString(text[start:])
			lastFit = start + size
		}
		cut := lastFit
		if lastFit < len(text) && lastBreak > start && lastBreak < lastFit {
			cut = lastBreak
		}
		line := strings.TrimRightFunc(text[start:cut], unicode.IsSpace)
		lines = append(lines, line)
		start = cut
		for start < len(text) {
			r, size := utf8.DecodeRuneInString(text[start:])
			if !unicode.IsSpace(r) {
				break
			}
			start += size
		}
	}
	if len(lines) == 0 {
		return []string{""}
	}
	return lines
}
