// Package palette maps the daytime phase onto the color sets each layer of
// the landscape draws from. Every function is pure and returns a fresh slice.
package palette

import (
	"image/color"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// HSLA is a color in CSS units: hue in degrees, saturation and lightness in
// percent, alpha in [0, 1].
type HSLA struct {
	H, S, L, A float64
}

func hsl(h, s, l float64) HSLA { return HSLA{H: h, S: s, L: l, A: 1} }

// Clamp returns the color folded into the valid model range (hue in
// [0, 360), saturation and lightness in [0, 100], alpha in [0, 1]) and
// reports whether any component had to be changed.
func (c HSLA) Clamp() (HSLA, bool) {
	out := c
	if out.H < 0 || out.H >= 360 {
		out.H = math.Mod(out.H, 360)
		if out.H < 0 {
			out.H += 360
		}
	}
	out.S = clamp(out.S, 0, 100)
	out.L = clamp(out.L, 0, 100)
	out.A = clamp(out.A, 0, 1)
	return out, out != c
}

// NRGBA converts the clamped color to 8-bit sRGB with straight alpha.
func (c HSLA) NRGBA() color.NRGBA {
	c, _ = c.Clamp()
	r, g, b := colorful.Hsl(c.H, c.S/100, c.L/100).Clamped().RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: uint8(math.Round(c.A * 255))}
}

// RGBA implements color.Color.
func (c HSLA) RGBA() (r, g, b, a uint32) { return c.NRGBA().RGBA() }

// OutOfRange counts the colors of p that Clamp would change.
func OutOfRange(p []HSLA) int {
	n := 0
	for _, c := range p {
		if _, changed := c.Clamp(); changed {
			n++
		}
	}
	return n
}

// Colors converts a palette into drawable colors, preserving order.
func Colors(p []HSLA) []color.Color {
	out := make([]color.Color, len(p))
	for i, c := range p {
		out[i] = c.NRGBA()
	}
	return out
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
