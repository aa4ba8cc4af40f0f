package theme

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/go-drift/sheet/pkg/errors"
	"github.com/go-drift/sheet/pkg/rendering"
)

// themeDoc mirrors Theme for YAML decoding. Pointer fields distinguish
// "absent" from zero so partial documents only override what they name.
type themeDoc struct {
	DismissOnTap      *bool    `yaml:"dismissOnTap"`
	HorizontalPadding *float64 `yaml:"horizontalPadding"`

	MaskColor           *colorValue `yaml:"maskColor"`
	BackgroundColor     *colorValue `yaml:"backgroundColor"`
	AmbientColor        *colorValue `yaml:"ambientColor"`
	SmallSeparatorColor *colorValue `yaml:"smallSeparatorColor"`
	BigSeparatorColor   *colorValue `yaml:"bigSeparatorColor"`

	RoundCorners       *cornerDoc `yaml:"roundCorners"`
	ActionCornerRadius *float64   `yaml:"actionCornerRadius"`
	ActionHeight       *float64   `yaml:"actionHeight"`
	BigFragment        *float64   `yaml:"bigFragment"`
	SmallFragment      *float64   `yaml:"smallFragment"`

	ButtonColor            *colorValue `yaml:"buttonColor"`
	DestructiveButtonColor *colorValue `yaml:"destructiveButtonColor"`
	CancelButtonColor      *colorValue `yaml:"cancelButtonColor"`
	TitleColor             *colorValue `yaml:"titleColor"`
	MessageColor           *colorValue `yaml:"messageColor"`

	ButtonFont  *fontDoc `yaml:"buttonFont"`
	TitleFont   *fontDoc `yaml:"titleFont"`
	MessageFont *fontDoc `yaml:"messageFont"`

	TitleVerticalPadding   *float64 `yaml:"titleVerticalPadding"`
	TitleHorizontalPadding *float64 `yaml:"titleHorizontalPadding"`
	TitleLineSpacing       *float64 `yaml:"titleLineSpacing"`
}

// colorValue decodes a "#RRGGBB" or "#AARRGGBB" string.
type colorValue rendering.Color

func (c *colorValue) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed, err := ParseColor(s)
	if err != nil {
		return err
	}
	*c = colorValue(parsed)
	return nil
}

// fontDoc decodes a font mapping. Absent fields keep the value from the
// font being overridden.
type fontDoc struct {
	Family *string  `yaml:"family"`
	Size   *float64 `yaml:"size"`
	Weight *string  `yaml:"weight"`
}

func (d *fontDoc) apply(f rendering.Font) (rendering.Font, error) {
	if d.Family != nil {
		f.Family = *d.Family
	}
	if d.Size != nil {
		if *d.Size <= 0 {
			return f, fmt.Errorf("font size %v must be positive", *d.Size)
		}
		f.Size = *d.Size
	}
	if d.Weight != nil {
		w, err := parseWeight(*d.Weight)
		if err != nil {
			return f, err
		}
		f.Weight = w
	}
	return f, nil
}

func parseWeight(s string) (rendering.FontWeight, error) {
	switch s {
	case "regular":
		return rendering.FontWeightNormal, nil
	case "semibold":
		return rendering.FontWeightSemibold, nil
	case "bold":
		return rendering.FontWeightBold, nil
	}
	return 0, fmt.Errorf("unknown font weight %q", s)
}

// cornerDoc decodes a corner treatment mapping.
type cornerDoc struct {
	Mode   string  `yaml:"mode"`
	Radius float64 `yaml:"radius"`
}

func (d *cornerDoc) spec() (rendering.CornerSpec, error) {
	var mode rendering.CornerMode
	switch d.Mode {
	case "none":
		mode = rendering.CornerNone
	case "all":
		mode = rendering.CornerAll
	case "top":
		mode = rendering.CornerTop
	case "bottom":
		mode = rendering.CornerBottom
	default:
		return rendering.CornerSpec{}, fmt.Errorf("unknown corner mode %q", d.Mode)
	}
	return rendering.CornerSpec{Mode: mode, Radius: d.Radius}, nil
}

// ParseColor decodes a "#RRGGBB" or "#AARRGGBB" string into a color.
// Six-digit values are opaque.
func ParseColor(s string) (rendering.Color, error) {
	if !strings.HasPrefix(s, "#") {
		return 0, fmt.Errorf("color %q must start with '#'", s)
	}
	hex := strings.TrimPrefix(s, "#")
	switch len(hex) {
	case 6:
		v, err := strconv.ParseUint(hex, 16, 32)
		if err != nil {
			return 0, fmt.Errorf("invalid color %q: %w", s, err)
		}
		return rendering.Color(0xFF000000 | uint32(v)), nil
	case 8:
		v, err := strconv.ParseUint(hex, 16, 32)
		if err != nil {
			return 0, fmt.Errorf("invalid color %q: %w", s, err)
		}
		return rendering.Color(uint32(v)), nil
	}
	return 0, fmt.Errorf("color %q must be #RRGGBB or #AARRGGBB", s)
}

// Load decodes a YAML theme document on top of the default theme.
// Fields the document does not mention keep their default values.
// Unknown fields are rejected.
func Load(data []byte) (*Theme, error) {
	var doc themeDoc
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil && err != io.EOF {
		return nil, &errors.Error{Op: "theme.Load", Kind: errors.KindConfig, Err: err}
	}
	t := Default()
	if err := doc.apply(t); err != nil {
		return nil, &errors.Error{Op: "theme.Load", Kind: errors.KindConfig, Err: err}
	}
	return t, nil
}

// LoadFile reads and decodes a YAML theme file.
func LoadFile(path string) (*Theme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &errors.Error{Op: "theme.LoadFile", Kind: errors.KindConfig, Err: err}
	}
	return Load(data)
}

func (d *themeDoc) apply(t *Theme) error {
	if d.DismissOnTap != nil {
		t.DismissOnTap = *d.DismissOnTap
	}
	if d.HorizontalPadding != nil {
		t.HorizontalPadding = *d.HorizontalPadding
	}

	if d.MaskColor != nil {
		t.MaskColor = rendering.Color(*d.MaskColor)
	}
	if d.BackgroundColor != nil {
		t.BackgroundColor = rendering.Color(*d.BackgroundColor)
	}
	if d.AmbientColor != nil {
		t.AmbientColor = rendering.Color(*d.AmbientColor)
	}
	if d.SmallSeparatorColor != nil {
		t.SmallSeparatorColor = rendering.Color(*d.SmallSeparatorColor)
	}
	if d.BigSeparatorColor != nil {
		t.BigSeparatorColor = rendering.Color(*d.BigSeparatorColor)
	}

	if d.RoundCorners != nil {
		spec, err := d.RoundCorners.spec()
		if err != nil {
			return err
		}
		t.RoundCorners = spec
	}
	if d.ActionCornerRadius != nil {
		t.ActionCornerRadius = *d.ActionCornerRadius
	}
	if d.ActionHeight != nil {
		t.ActionHeight = *d.ActionHeight
	}
	if d.BigFragment != nil {
		t.BigFragment = *d.BigFragment
	}
	if d.SmallFragment != nil {
		t.SmallFragment = *d.SmallFragment
	}

	if d.ButtonColor != nil {
		t.ButtonColor = rendering.Color(*d.ButtonColor)
	}
	if d.DestructiveButtonColor != nil {
		t.DestructiveButtonColor = rendering.Color(*d.DestructiveButtonColor)
	}
	if d.CancelButtonColor != nil {
		t.CancelButtonColor = rendering.Color(*d.CancelButtonColor)
	}
	if d.TitleColor != nil {
		t.TitleColor = rendering.Color(*d.TitleColor)
	}
	if d.MessageColor != nil {
		t.MessageColor = rendering.Color(*d.MessageColor)
	}

	if d.ButtonFont != nil {
		f, err := d.ButtonFont.apply(t.ButtonFont)
		if err != nil {
			return err
		}
		t.ButtonFont = f
	}
	if d.TitleFont != nil {
		f, err := d.TitleFont.apply(t.TitleFont)
		if err != nil {
			return err
		}
		t.TitleFont = f
	}
	if d.MessageFont != nil {
		f, err := d.MessageFont.apply(t.MessageFont)
		if err != nil {
			return err
		}
		t.MessageFont = f
	}

	if d.TitleVerticalPadding != nil {
		t.TitleVerticalPadding = *d.TitleVerticalPadding
	}
	if d.TitleHorizontalPadding != nil {
		t.TitleHorizontalPadding = *d.TitleHorizontalPadding
	}
	if d.TitleLineSpacing != nil {
		t.TitleLineSpacing = *d.TitleLineSpacing
	}
	return nil
}
