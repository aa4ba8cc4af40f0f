package rendering

import (
	"bytes"
	"strings"
	"testing"
)

func recordList(size Size, draw func(Canvas)) *DisplayList {
	var recorder PictureRecorder
	draw(recorder.BeginRecording(size))
	return recorder.EndRecording()
}

func TestEncodeSVG_StableOutput(t *testing.T) {
	scene := func() *DisplayList {
		return recordList(Size{Width: 200, Height: 120}, func(canvas Canvas) {
			canvas.Clear(RGB(0xF2, 0xF2, 0xF2))
			canvas.Save()
			canvas.Translate(10, 20)
			canvas.ClipRRect(RRectFromRectAndRadius(RectFromLTWH(0, 0, 180, 80), CircularRadius(12)))
			canvas.DrawRect(RectFromLTWH(0, 0, 180, 80), FillPaint(ColorWhite))
			canvas.DrawLine(Offset{X: 0, Y: 40}, Offset{X: 180, Y: 40}, StrokePaint(ColorBlack, 0.5))
			canvas.Restore()
		})
	}
	list := scene()
	if !bytes.Equal(EncodeSVG(list), EncodeSVG(list)) {
		t.Error("expected repeated encodings of one display list to match")
	}
	if !bytes.Equal(EncodeSVG(list), EncodeSVG(scene())) {
		t.Error("expected encodings of identically recorded display lists to match")
	}
}

func TestEncodeSVG_DocumentStructure(t *testing.T) {
	list := recordList(Size{Width: 100, Height: 50}, func(canvas Canvas) {
		canvas.ClipRect(RectFromLTWH(0, 0, 10, 10))
		canvas.DrawRect(RectFromLTWH(0, 0, 10, 10), FillPaint(ColorBlack))
	})
	doc := string(EncodeSVG(list))
	prefix := "<svg xmlns=\"http://www.w3.org/2000/svg\" width=\"100\" height=\"50\" viewBox=\"0 0 100 50\">"
	if !strings.HasPrefix(doc, prefix) {
		t.Errorf("expected document to start with %q, got %q", prefix, doc[:min(len(doc), len(prefix))])
	}
	if !strings.HasSuffix(doc, "</svg>\n") {
		t.Error("expected document to end with the closing svg tag")
	}
	clip := "<clipPath id=\"clip1\"><path d=\"M0 0L10 0L10 10L0 10Z\"/></clipPath>"
	if !strings.Contains(doc, clip) {
		t.Errorf("expected clip definition %q in document:\n%s", clip, doc)
	}
	if !strings.Contains(doc, "clip-path=\"url(#clip1)\"") {
		t.Errorf("expected a group referencing clip1 in document:\n%s", doc)
	}
}

func TestEncodeSVG_ClosesUnbalancedSaves(t *testing.T) {
	list := recordList(Size{Width: 60, Height: 60}, func(canvas Canvas) {
		canvas.Save()
		canvas.Translate(5, 5)
		canvas.SaveLayerAlpha(RectFromLTWH(0, 0, 50, 50), 0.5)
		canvas.DrawRect(RectFromLTWH(0, 0, 50, 50), FillPaint(ColorBlack))
	})
	doc := string(EncodeSVG(list))
	if !strings.HasSuffix(doc, "</svg>\n") {
		t.Error("expected document to end with the closing svg tag")
	}
	if opened, closed := strings.Count(doc, "<g"), strings.Count(doc, "</g>"); opened != closed {
		t.Errorf("expected balanced groups, got %d opened and %d closed", opened, closed)
	}
}

func TestEncodeSVG_RectMarkup(t *testing.T) {
	list := recordList(Size{Width: 100, Height: 100}, func(canvas Canvas) {
		canvas.DrawRect(RectFromLTWH(10, 20, 30, 40), FillPaint(RGB(0x33, 0x66, 0x99)))
	})
	doc := string(EncodeSVG(list))
	want := "<rect x=\"10\" y=\"20\" width=\"30\" height=\"40\" fill=\"#336699\"/>"
	if !strings.Contains(doc, want) {
		t.Errorf("expected %q in document:\n%s", want, doc)
	}
	if strings.Contains(doc, "fill-opacity") {
		t.Error("expected no opacity attribute for an opaque fill")
	}
}

func TestEncodeSVG_TranslucentFillOpacity(t *testing.T) {
	list := recordList(Size{Width: 100, Height: 100}, func(canvas Canvas) {
		canvas.DrawRect(RectFromLTWH(0, 0, 50, 50), FillPaint(RGBA(0, 0, 0, 0x80)))
	})
	doc := string(EncodeSVG(list))
	if !strings.Contains(doc, "fill-opacity=\"0.502\"") {
		t.Errorf("expected fill-opacity for a translucent color in document:\n%s", doc)
	}
}

func TestEncodeSVG_UniformRRectUsesCornerRadius(t *testing.T) {
	list := recordList(Size{Width: 100, Height: 100}, func(canvas Canvas) {
		canvas.DrawRRect(RRectFromRectAndRadius(RectFromLTWH(0, 0, 80, 40), CircularRadius(8)), FillPaint(ColorWhite))
	})
	doc := string(EncodeSVG(list))
	if !strings.Contains(doc, "rx=\"8\"") {
		t.Errorf("expected a rounded rect with rx in document:\n%s", doc)
	}
	if strings.Contains(doc, "<path") {
		t.Error("expected no path fallback for uniform corners")
	}
}

func TestEncodeSVG_MixedRRectFallsBackToPath(t *testing.T) {
	list := recordList(Size{Width: 100, Height: 100}, func(canvas Canvas) {
		rrect := RRectFromRectAndCorners(RectFromLTWH(0, 0, 80, 40),
			CircularRadius(8), CircularRadius(0), CircularRadius(8), CircularRadius(0))
		canvas.DrawRRect(rrect, FillPaint(ColorWhite))
	})
	doc := string(EncodeSVG(list))
	if !strings.Contains(doc, "<path d=\"M") {
		t.Errorf("expected a path for mixed corners in document:\n%s", doc)
	}
	if strings.Contains(doc, "rx=") {
		t.Error("expected no rx shortcut for mixed corners")
	}
}

func TestEncodeSVG_LineDefaultsStrokeWidth(t *testing.T) {
	list := recordList(Size{Width: 100, Height: 100}, func(canvas Canvas) {
		canvas.DrawLine(Offset{X: 0, Y: 10}, Offset{X: 100, Y: 10}, Paint{Color: ColorBlack, Style: PaintStyleStroke})
	})
	doc := string(EncodeSVG(list))
	want := "<line x1=\"0\" y1=\"10\" x2=\"100\" y2=\"10\" fill=\"none\" stroke=\"#000000\" stroke-width=\"1\"/>"
	if !strings.Contains(doc, want) {
		t.Errorf("expected %q in document:\n%s", want, doc)
	}
}

func TestEncodeSVG_SaveLayerAlphaOpacityGroup(t *testing.T) {
	list := recordList(Size{Width: 100, Height: 100}, func(canvas Canvas) {
		canvas.SaveLayerAlpha(RectFromLTWH(0, 0, 100, 100), 0.25)
		canvas.DrawRect(RectFromLTWH(0, 0, 50, 50), FillPaint(ColorBlack))
		canvas.Restore()
	})
	doc := string(EncodeSVG(list))
	if !strings.Contains(doc, "<g opacity=\"0.25\">") {
		t.Errorf("expected an opacity group in document:\n%s", doc)
	}
}

func TestEncodeSVG_TextMarkup(t *testing.T) {
	layout, err := LayoutText("Save & <Exit>", TextStyle{Color: ColorBlack})
	if err != nil {
		t.Fatalf("LayoutText: unexpected error %v", err)
	}
	list := recordList(Size{Width: 200, Height: 40}, func(canvas Canvas) {
		canvas.DrawText(layout, Offset{X: 5, Y: 10})
	})
	doc := string(EncodeSVG(list))
	if !strings.Contains(doc, "Save &amp; &lt;Exit&gt;") {
		t.Errorf("expected escaped text content in document:\n%s", doc)
	}
	if !strings.Contains(doc, "font-family=\"Go\"") {
		t.Error("expected the default font family")
	}
	if !strings.Contains(doc, "font-size=\"16\"") {
		t.Error("expected the default font size")
	}
	if !strings.Contains(doc, "font-weight=\"400\"") {
		t.Error("expected the default font weight")
	}
}

func TestEncodeSVG_TextSkipsEmptyLines(t *testing.T) {
	layout, err := LayoutText("a\n\nb", TextStyle{Color: ColorBlack})
	if err != nil {
		t.Fatalf("LayoutText: unexpected error %v", err)
	}
	list := recordList(Size{Width: 100, Height: 100}, func(canvas Canvas) {
		canvas.DrawText(layout, Offset{})
	})
	doc := string(EncodeSVG(list))
	if got := strings.Count(doc, "<text"); got != 2 {
		t.Errorf("expected 2 text elements, got %d", got)
	}
}

func TestSVGNum(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{0, "0"},
		{12, "12"},
		{12.5, "12.5"},
		{1.2000, "1.2"},
		{3.14159, "3.142"},
		{100.001, "100.001"},
		{-7.25, "-7.25"},
		{0.0004, "0"},
		{-0.0001, "0"},
	}
	for _, c := range cases {
		if got := svgNum(c.in); got != c.want {
			t.Errorf("svgNum(%v) = %q, want %q", c.in, got, c.want)
		}
	}
}
