package batch

import "image/color"

// Color represents a color with 8-bit red, green, blue and alpha channels.
// Vertices store it packed as a single uint32 (see Pack).
type Color struct {
	R, G, B, A uint8
}

// RGB creates an opaque color from RGB components.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b, A: 255}
}

// RGBA creates a color from RGBA components.
func RGBA(r, g, b, a uint8) Color {
	return Color{R: r, G: g, B: b, A: a}
}

// Pack packs the color into a single uint32 in ABGR order, alpha in the
// most significant byte and red in the least significant one. This is the
// byte order expected by RGBA8 vertex attributes on little-endian GPUs.
func (c Color) Pack() uint32 {
	return uint32(c.A)<<24 | uint32(c.B)<<16 | uint32(c.G)<<8 | uint32(c.R)
}

// Unpack is the inverse of Pack.
func Unpack(v uint32) Color {
	return Color{
		R: uint8(v),
		G: uint8(v >> 8),
		B: uint8(v >> 16),
		A: uint8(v >> 24),
	}
}

// WithAlpha returns the color with the alpha channel replaced.
func (c Color) WithAlpha(a uint8) Color {
	c.A = a
	return c
}

// NRGBA converts the color to the standard library's non-premultiplied
// color type.
func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}

// FromColor converts a standard color.Color to a Color.
func FromColor(c color.Color) Color {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return Color{R: n.R, G: n.G, B: n.B, A: n.A}
}

// Lerp performs linear interpolation between two colors.
func (c Color) Lerp(other Color, t float32) Color {
	lerp := func(a, b uint8) uint8 {
		return uint8(float32(a) + (float32(b)-float32(a))*t)
	}
	return Color{
		R: lerp(c.R, other.R),
		G: lerp(c.G, other.G),
		B: lerp(c.B, other.B),
		A: lerp(c.A, other.A),
	}
}

// Common colors
var (
	Black       = RGB(0, 0, 0)
	White       = RGB(255, 255, 255)
	Red         = RGB(255, 0, 0)
	Green       = RGB(0, 255, 0)
	Blue        = RGB(0, 0, 255)
	Yellow      = RGB(255, 255, 0)
	Cyan        = RGB(0, 255, 255)
	Magenta     = RGB(255, 0, 255)
	Transparent = RGBA(0, 0, 0, 0)
)
