package rendering

// maxByte is the maximum value of a byte, used for color normalization.
const maxByte = 255.0

// Color is stored as ARGB (0xAARRGGBB). The zero value is fully
// transparent and doubles as the "unset" sentinel in configuration.
type Color uint32

// RGBA constructs a Color from red, green, blue, alpha bytes.
func RGBA(r, g, b, a uint8) Color {
	return Color(uint32(a)<<24 | uint32(r)<<16 | uint32(g)<<8 | uint32(b))
}

// RGB constructs an opaque Color from red, green, blue bytes.
func RGB(r, g, b uint8) Color {
	return RGBA(r, g, b, 0xFF)
}

// Alpha returns the alpha component byte.
func (c Color) Alpha() uint8 {
	return uint8(c >> 24)
}

// Red returns the red component byte.
func (c Color) Red() uint8 {
	return uint8(c >> 16)
}

// Green returns the green component byte.
func (c Color) Green() uint8 {
	return uint8(c >> 8)
}

// Blue returns the blue component byte.
func (c Color) Blue() uint8 {
	return uint8(c)
}

// RGBAF returns normalized color components (0.0 to 1.0).
func (c Color) RGBAF() (r, g, b, a float64) {
	return float64(c.Red()) / maxByte,
		float64(c.Green()) / maxByte,
		float64(c.Blue()) / maxByte,
		float64(c.Alpha()) / maxByte
}

// WithAlpha returns a copy of the color with the given alpha (0-255).
func (c Color) WithAlpha(a uint8) Color {
	return Color(uint32(a)<<24 | uint32(c)&0x00FFFFFF)
}

// WithOpacity returns a copy with the existing alpha scaled by opacity (0.0 to 1.0).
func (c Color) WithOpacity(opacity float64) Color {
	if opacity < 0 {
		opacity = 0
	} else if opacity > 1 {
		opacity = 1
	}
	return c.WithAlpha(uint8(float64(c.Alpha())*opacity + 0.5))
}

// LerpColor linearly interpolates between two colors component-wise.
// t is clamped to [0, 1].
func LerpColor(from, to Color, t float64) Color {
	if t <= 0 {
		return from
	}
	if t >= 1 {
		return to
	}
	lerp := func(a, b uint8) uint8 {
		return uint8(float64(a) + (float64(b)-float64(a))*t + 0.5)
	}
	return RGBA(
		lerp(from.Red(), to.Red()),
		lerp(from.Green(), to.Green()),
		lerp(from.Blue(), to.Blue()),
		lerp(from.Alpha(), to.Alpha()),
	)
}

// Common colors.
var (
	ColorTransparent = Color(0x00000000)
	ColorBlack       = Color(0xFF000000)
	ColorWhite       = Color(0xFFFFFFFF)
)
