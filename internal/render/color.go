package render

import (
	"image/color"
	"math"
)

// Color is an 8-bit RGB triple with a fractional alpha (0-1), the same shape
// a CSS rgba() value has.
type Color struct {
	R uint8   `yaml:"r"`
	G uint8   `yaml:"g"`
	B uint8   `yaml:"b"`
	A float64 `yaml:"a"`
}

// RGBA builds a Color.
func RGBA(r, g, b uint8, a float64) Color {
	return Color{R: r, G: g, B: b, A: a}
}

// WithAlpha returns c with its alpha replaced.
func (c Color) WithAlpha(a float64) Color {
	c.A = a
	return c
}

// NRGBA converts to a non-premultiplied image color.
func (c Color) NRGBA() color.NRGBA {
	a := c.A
	if a < 0 {
		a = 0
	}
	if a > 1 {
		a = 1
	}
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: uint8(math.Round(a * 255))}
}
