package scene

import (
	"landscape/internal/core"
	"landscape/internal/palette"
)

// Meteor is a short-lived streak falling diagonally through the sky.
type Meteor struct {
	X, Y       float64
	DirX, DirY float64
}

// NewMeteor places a meteor near the top edge with a random down-right
// velocity scaled to the canvas.
func NewMeteor(size core.Size, rng core.Rand) *Meteor {
	w, h := float64(size.W), float64(size.H)
	return &Meteor{
		X:    core.Uniform(rng, w),
		Y:    core.Uniform(rng, h/20),
		DirX: w/30 + core.Uniform(rng, w/10),
		DirY: h/40 + core.Uniform(rng, h/20),
	}
}

// Done reports whether the meteor has fallen past a third of the height.
func (m *Meteor) Done(size core.Size) bool {
	return m.Y > float64(size.H)/3
}

// Advance draws the streak from the current position along the velocity and
// moves the meteor by a third of it. It returns false, without drawing, once
// the meteor is done. Below a quarter of the height the streak is fully
// transparent and is skipped, though the meteor still moves.
func (m *Meteor) Advance(dst core.Surface, size core.Size, rng core.Rand) bool {
	if m.Done(size) {
		return false
	}
	w, h := float64(size.W), float64(size.H)
	width := w / (80 + core.Uniform(rng, 240))
	c := core.Pick(rng, palette.Meteor(m.Y, h))
	if c.A > 0 {
		dst.StrokeLine(m.X, m.Y, m.X+m.DirX, m.Y+m.DirY, core.Stroke{Width: width, Color: c.NRGBA()})
	}
	m.X += m.DirX / 3
	m.Y += m.DirY / 3
	return true
}
