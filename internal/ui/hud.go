//go:build ebiten

package ui

import (
	"image/color"

	"landscape/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

const (
	panelPadding   = 8
	lineHeight     = 16
	headerBaseline = 12
)

type parameterProvider interface {
	Parameters() core.ParameterSnapshot
}

// HUD renders a read-only panel with the live scene values.
type HUD struct {
	source   parameterProvider
	width    int
	panel    *ebiten.Image
	snapshot core.ParameterSnapshot
}

// NewHUD constructs a HUD reading from source, drawn width pixels wide.
func NewHUD(source parameterProvider, width int) *HUD {
	if width <= 0 {
		width = 160
	}
	return &HUD{source: source, width: width}
}

// Update refreshes the cached snapshot.
func (h *HUD) Update() {
	if h == nil {
		return
	}
	h.snapshot = h.source.Parameters()
}

// Draw paints the panel with its top-left corner at (x, y).
func (h *HUD) Draw(screen *ebiten.Image, x, y int) {
	if h == nil {
		return
	}
	lines := 0
	for _, g := range h.snapshot.Groups {
		lines += 1 + len(g.Params)
	}
	if lines == 0 {
		return
	}
	height := panelPadding*2 + lines*lineHeight
	if h.panel == nil || h.panel.Bounds().Dy() != height {
		if h.panel != nil {
			h.panel.Dispose()
		}
		h.panel = ebiten.NewImage(h.width, height)
	}
	h.panel.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 200})

	face := basicfont.Face7x13
	top := panelPadding
	for _, g := range h.snapshot.Groups {
		text.Draw(h.panel, g.Name, face, panelPadding, top+headerBaseline, color.RGBA{R: 160, G: 160, B: 170, A: 255})
		top += lineHeight
		for _, p := range g.Params {
			text.Draw(h.panel, p.Label, face, panelPadding*2, top+headerBaseline, color.RGBA{R: 220, G: 220, B: 230, A: 255})
			bounds := text.BoundString(face, p.Value)
			text.Draw(h.panel, p.Value, face, h.width-panelPadding-bounds.Dx(), top+headerBaseline, color.RGBA{R: 240, G: 220, B: 160, A: 255})
			top += lineHeight
		}
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(x), float64(y))
	screen.DrawImage(h.panel, op)
}
