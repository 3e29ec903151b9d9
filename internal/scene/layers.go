package scene

import (
	"image/color"
	"math"

	"landscape/internal/core"
	"landscape/internal/palette"
)

// Frame is the snapshot every layer of one frame renders against.
type Frame struct {
	Size    core.Size
	Daytime float64
}

func (f Frame) dims() (float64, float64) {
	return float64(f.Size.W), float64(f.Size.H)
}

// Clear washes the whole surface with the base color.
func Clear(dst core.Surface, f Frame) {
	w, h := f.dims()
	dst.FillRect(0, 0, w, h, palette.Base(f.Daytime).NRGBA())
}

// DrawSky scatters near-horizontal strokes over the upper half and returns
// the meteors that this frame spawns: one with 10% chance once daytime
// passes 0.6, another with 20% chance once it passes 0.7.
func DrawSky(dst core.Surface, f Frame, rng core.Rand, strokes int) []*Meteor {
	w, h := f.dims()
	colors := palette.Colors(palette.Sky(f.Daytime))
	scatter(dst, rng, strokes, w/120, colors, w, h, func() (float64, float64) {
		return core.Uniform(rng, w), core.Uniform(rng, h/2)
	})

	var spawned []*Meteor
	if f.Daytime > 0.6 && rng.Float64() > 0.9 {
		spawned = append(spawned, NewMeteor(f.Size, rng))
	}
	if f.Daytime > 0.7 && rng.Float64() > 0.8 {
		spawned = append(spawned, NewMeteor(f.Size, rng))
	}
	return spawned
}

// DrawGround scatters thick strokes whose start height skews between the
// middle and the bottom of the canvas.
func DrawGround(dst core.Surface, f Frame, rng core.Rand, strokes int) {
	w, h := f.dims()
	colors := palette.Colors(palette.Ground(f.Daytime))
	scatter(dst, rng, strokes, w/30, colors, w, h, func() (float64, float64) {
		return core.Uniform(rng, w), h / (2 - rng.Float64())
	})
}

// scatter draws n strokes from a start point to a signed offset of up to
// half the width horizontally and a thirtieth of the height vertically.
func scatter(dst core.Surface, rng core.Rand, n int, width float64, colors []color.Color, w, h float64, start func() (float64, float64)) {
	for i := 0; i < n; i++ {
		c := core.Pick(rng, colors)
		x0, y0 := start()
		dx := core.MaybeNegative(rng, core.Uniform(rng, w/2))
		dy := core.MaybeNegative(rng, core.Uniform(rng, h/30))
		dst.StrokeLine(x0, y0, x0+dx, y0+dy, core.Stroke{Width: width, Color: c})
	}
}

// BushSweep returns the arc sweep, as a fraction of pi, for the daytime.
func BushSweep(daytime float64) float64 {
	return 0.125 + daytime/5
}

// DrawBushes strokes upper-half arcs along a band a little below the middle.
// The sweep widens and the radius shrinks as daytime grows.
func DrawBushes(dst core.Surface, f Frame, rng core.Rand, arcs int) {
	w, h := f.dims()
	colors := palette.Colors(palette.Bush(f.Daytime))
	sweep := BushSweep(f.Daytime)
	width := w / 65
	lengthFix := w / 1.3 * sweep
	for i := 0; i < arcs; i++ {
		c := core.Pick(rng, colors)
		cx := core.Uniform(rng, w+w/3)
		cy := h / (1.8 + core.MaybeNegative(rng, core.Uniform(rng, 0.38)))
		r := math.Max(w/2-core.Uniform(rng, w/4)-lengthFix, 0)
		dst.StrokeArc(cx, cy, r, math.Pi, math.Pi*(1+sweep), core.Stroke{Width: width, Color: c})
	}
}

// DrawWeeds strokes thin blades rising from the lower third.
func DrawWeeds(dst core.Surface, f Frame, rng core.Rand, strokes int) {
	w, h := f.dims()
	colors := palette.Colors(palette.Weed(f.Daytime))
	width := w / 300
	for i := 0; i < strokes; i++ {
		c := core.Pick(rng, colors)
		x0 := core.Uniform(rng, w)
		y0 := h / (1.3 - core.Uniform(rng, 0.3))
		dx := core.MaybeNegative(rng, core.Uniform(rng, w/80))
		dy := -core.Uniform(rng, h/6.2)
		dst.StrokeLine(x0, y0, x0+dx, y0+dy, core.Stroke{Width: width, Color: c})
	}
}
