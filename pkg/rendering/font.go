package rendering

import (
	"fmt"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

// FontRegistry resolves font families and weights to concrete OpenType
// faces and measures text against them. The bundled Go Regular and Go Bold
// faces back any family that has not been registered explicitly.
type FontRegistry struct {
	mu      sync.Mutex
	fonts   map[string]*sfnt.Font
	faces   map[faceKey]font.Face
	regular *sfnt.Font
	bold    *sfnt.Font
}

type faceKey struct {
	family string
	size   float64
	bold   bool
}

var (
	defaultFonts     *FontRegistry
	defaultFontsErr  error
	defaultFontsOnce sync.Once
)

// DefaultFonts returns the shared registry backed by the bundled Go fonts.
// The registry is created on first use; the error reports a failure to
// parse the bundled font data.
func DefaultFonts() (*FontRegistry, error) {
	defaultFontsOnce.Do(func() {
		defaultFonts, defaultFontsErr = NewFontRegistry()
	})
	return defaultFonts, defaultFontsErr
}

// NewFontRegistry creates a registry with the bundled Go fonts parsed.
func NewFontRegistry() (*FontRegistry, error) {
	regular, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("failed to parse bundled regular font: %w", err)
	}
	bold, err := opentype.Parse(gobold.TTF)
	if err != nil {
		return nil, fmt.Errorf("failed to parse bundled bold font: %w", err)
	}
	return &FontRegistry{
		fonts:   make(map[string]*sfnt.Font),
		faces:   make(map[faceKey]font.Face),
		regular: regular,
		bold:    bold,
	}, nil
}

// RegisterFont registers a font family from TrueType/OpenType data.
// A registered family serves all weights with the same face.
func (r *FontRegistry) RegisterFont(name string, data []byte) error {
	if name == "" {
		return fmt.Errorf("font name required")
	}
	parsed, err := opentype.Parse(data)
	if err != nil {
		return fmt.Errorf("failed to parse font %q: %w", name, err)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.fonts[name] = parsed
	return nil
}

// face returns a cached face for the font descriptor. Callers must hold r.mu.
func (r *FontRegistry) face(f Font) (font.Face, error) {
	size := f.Size
	if size <= 0 {
		size = defaultFontSize
	}
	useBold := f.Weight >= FontWeightSemibold
	key := faceKey{family: f.Family, size: size, bold: useBold}
	if face, ok := r.faces[key]; ok {
		return face, nil
	}

	source := r.regular
	if registered, ok := r.fonts[f.Family]; ok {
		source = registered
	} else if useBold {
		source = r.bold
	}

	face, err := opentype.NewFace(source, &opentype.FaceOptions{
		Size:    size,
		DPI:     72, // 1 point = 1 pixel
		Hinting: font.HintingNone,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create face for %q at %g: %w", f.Family, size, err)
	}
	r.faces[key] = face
	return face, nil
}

// FaceMetrics returns the ascent, descent, and line height in pixels for
// the font descriptor.
func (r *FontRegistry) FaceMetrics(f Font) (ascent, descent, lineHeight float64, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	face, err := r.face(f)
	if err != nil {
		return 0, 0, 0, err
	}
	m := face.Metrics()
	ascent = fixedToFloat(m.Ascent)
	descent = fixedToFloat(m.Descent)
	lineHeight = fixedToFloat(m.Height)
	if lineHeight == 0 {
		lineHeight = ascent + descent
	}
	return ascent, descent, lineHeight, nil
}

// MeasureString returns the advance width of s in pixels for the font
// descriptor.
func (r *FontRegistry) MeasureString(f Font, s string) (float64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	face, err := r.face(f)
	if err != nil {
		return 0, err
	}
	return fixedToFloat(font.MeasureString(face, s)), nil
}

func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64
}
