//go:build ebiten

package ui

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

const (
	badgeW      = 74
	badgeH      = 22
	badgeMargin = 10
)

// Badge marks the canvas as paused. It fades in on pause and out on resume.
type Badge struct {
	fade *Fade
}

// NewBadge returns a hidden badge.
func NewBadge() *Badge {
	return &Badge{fade: NewFade(0.35)}
}

// Update follows the paused flag, advancing the fade by dt seconds.
func (b *Badge) Update(paused bool, dt float32) {
	b.fade.Show(paused)
	b.fade.Update(dt)
}

// Draw paints the badge in the bottom-right corner of area.
func (b *Badge) Draw(screen *ebiten.Image, area image.Rectangle) {
	a := b.fade.Alpha()
	if a <= 0 {
		return
	}
	x := float32(area.Max.X - badgeW - badgeMargin)
	y := float32(area.Max.Y - badgeH - badgeMargin)
	vector.DrawFilledRect(screen, x, y, badgeW, badgeH, color.NRGBA{R: 16, G: 16, B: 20, A: uint8(180 * a)}, false)

	fg := color.NRGBA{R: 235, G: 235, B: 240, A: uint8(255 * a)}
	vector.DrawFilledRect(screen, x+8, y+6, 3, 10, fg, false)
	vector.DrawFilledRect(screen, x+14, y+6, 3, 10, fg, false)
	text.Draw(screen, "paused", basicfont.Face7x13, int(x)+24, int(y)+15, fg)
}
