package render

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"

	"github.com/fogleman/gg"

	"landscape/internal/core"
)

// RasterSurface draws into an in-memory RGBA image through a gg context.
// It backs headless rendering and export.
type RasterSurface struct {
	size core.Size
	dc   *gg.Context
}

// NewRasterSurface allocates a transparent surface of the given size.
func NewRasterSurface(size core.Size) *RasterSurface {
	return &RasterSurface{size: size, dc: gg.NewContext(size.W, size.H)}
}

func (s *RasterSurface) Size() core.Size { return s.size }

// Resize reallocates the context and paints the previous contents scaled
// into the new bounds.
func (s *RasterSurface) Resize(size core.Size) {
	if size == s.size {
		return
	}
	prev := s.dc.Image()
	dc := gg.NewContext(size.W, size.H)
	dc.Push()
	dc.Scale(float64(size.W)/float64(s.size.W), float64(size.H)/float64(s.size.H))
	dc.DrawImage(prev, 0, 0)
	dc.Pop()
	s.dc = dc
	s.size = size
}

func (s *RasterSurface) FillRect(x, y, w, h float64, c color.Color) {
	s.dc.SetColor(c)
	s.dc.DrawRectangle(x, y, w, h)
	s.dc.Fill()
}

func (s *RasterSurface) StrokeLine(x0, y0, x1, y1 float64, st core.Stroke) {
	s.dc.SetColor(st.Color)
	s.dc.SetLineWidth(st.Width)
	s.dc.DrawLine(x0, y0, x1, y1)
	s.dc.Stroke()
}

func (s *RasterSurface) StrokeArc(cx, cy, r, start, end float64, st core.Stroke) {
	s.dc.SetColor(st.Color)
	s.dc.SetLineWidth(st.Width)
	s.dc.NewSubPath()
	s.dc.DrawArc(cx, cy, r, start, end)
	s.dc.Stroke()
}

// Snapshot returns a copy of the current pixels.
func (s *RasterSurface) Snapshot() *image.RGBA {
	src := s.dc.Image()
	dst := image.NewRGBA(src.Bounds())
	draw.Draw(dst, dst.Bounds(), src, src.Bounds().Min, draw.Src)
	return dst
}

// SavePNG writes the current pixels to path.
func (s *RasterSurface) SavePNG(path string) error {
	if err := s.dc.SavePNG(path); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	return nil
}
