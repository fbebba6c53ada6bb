// Package color provides a packed 8-bit RGBA color.
package color

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Faultbox/midgard-geom/pkg/math"
)

// Color is an RGBA color with 8-bit components.
type Color struct {
	R, G, B, A uint8
}

// Predefined colors.
var (
	Transparent = Color{0, 0, 0, 0}
	White       = Color{255, 255, 255, 255}
	Black       = Color{0, 0, 0, 255}
	Red         = Color{255, 0, 0, 255}
	Green       = Color{0, 255, 0, 255}
	Blue        = Color{0, 0, 255, 255}
)

// RGB creates an opaque color.
func RGB(r, g, b uint8) Color {
	return Color{r, g, b, 255}
}

// FromHex parses "#RGB", "#RGBA", "#RRGGBB" or "#RRGGBBAA"; the '#' is
// optional. Alpha defaults to 255. Malformed input yields opaque black.
func FromHex(s string) Color {
	s = strings.TrimPrefix(s, "#")

	switch len(s) {
	case 3, 4:
		// Expand short form: "F0A" -> "FF00AA".
		var b strings.Builder
		for _, r := range s {
			b.WriteRune(r)
			b.WriteRune(r)
		}
		s = b.String()
	case 6, 8:
	default:
		return Black
	}

	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return Black
	}
	if len(s) == 6 {
		v = v<<8 | 0xFF
	}
	return Color{
		R: uint8(v >> 24),
		G: uint8(v >> 16),
		B: uint8(v >> 8),
		A: uint8(v),
	}
}

// FromFloats creates a color from components in [0, 1]. Values outside the
// range are clamped.
func FromFloats(r, g, b, a float32) Color {
	return Color{toByte(r), toByte(g), toByte(b), toByte(a)}
}

// FromVec4 creates a color from a Vec4 holding RGBA in [0, 1].
func FromVec4(v math.Vec4) Color {
	return FromFloats(v.X, v.Y, v.Z, v.W)
}

// Floats returns the components normalized to [0, 1].
func (c Color) Floats() (r, g, b, a float32) {
	return float32(c.R) / 255, float32(c.G) / 255, float32(c.B) / 255, float32(c.A) / 255
}

// Vec4 returns the components normalized to [0, 1].
func (c Color) Vec4() math.Vec4 {
	r, g, b, a := c.Floats()
	return math.Vec4{X: r, Y: g, Z: b, W: a}
}

// WithAlpha returns a copy of the color with a different alpha value.
func (c Color) WithAlpha(a uint8) Color {
	c.A = a
	return c
}

// Lerp blends between c and other.
func (c Color) Lerp(other Color, t float32) Color {
	return FromVec4(c.Vec4().Lerp(other.Vec4(), t))
}

// Hex formats the color as "#RRGGBBAA".
func (c Color) Hex() string {
	return fmt.Sprintf("#%02X%02X%02X%02X", c.R, c.G, c.B, c.A)
}

func (c Color) String() string {
	return c.Hex()
}

// RGBA implements image/color.Color with alpha-premultiplied components.
func (c Color) RGBA() (r, g, b, a uint32) {
	a = uint32(c.A)
	r = uint32(c.R) * a / 0xFF
	g = uint32(c.G) * a / 0xFF
	b = uint32(c.B) * a / 0xFF
	return r * 0x101, g * 0x101, b * 0x101, a * 0x101
}

func toByte(f float32) uint8 {
	return uint8(math.Clamp(f, 0, 1)*255 + 0.5)
}
