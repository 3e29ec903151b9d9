//go:build ebiten

package render

import (
	"image"
	"image/color"

	"landscape/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var (
	whiteImage    = ebiten.NewImage(3, 3)
	whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
)

func init() {
	whiteImage.Fill(color.White)
}

// ScreenSurface draws the scene into an offscreen ebiten image that keeps
// its contents between frames.
type ScreenSurface struct {
	size core.Size
	img  *ebiten.Image

	vs []ebiten.Vertex
	is []uint16
}

// NewScreenSurface allocates an offscreen image of the given size.
func NewScreenSurface(size core.Size) *ScreenSurface {
	return &ScreenSurface{size: size, img: ebiten.NewImage(size.W, size.H)}
}

// Image exposes the offscreen image for blitting to the screen.
func (s *ScreenSurface) Image() *ebiten.Image { return s.img }

func (s *ScreenSurface) Size() core.Size { return s.size }

// Resize reallocates the image and draws the previous contents scaled into
// the new bounds.
func (s *ScreenSurface) Resize(size core.Size) {
	if size == s.size {
		return
	}
	img := ebiten.NewImage(size.W, size.H)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(size.W)/float64(s.size.W), float64(size.H)/float64(s.size.H))
	op.Filter = ebiten.FilterLinear
	img.DrawImage(s.img, op)
	s.img.Dispose()
	s.img = img
	s.size = size
}

func (s *ScreenSurface) FillRect(x, y, w, h float64, c color.Color) {
	vector.DrawFilledRect(s.img, float32(x), float32(y), float32(w), float32(h), c, false)
}

func (s *ScreenSurface) StrokeLine(x0, y0, x1, y1 float64, st core.Stroke) {
	vector.StrokeLine(s.img, float32(x0), float32(y0), float32(x1), float32(y1), float32(st.Width), st.Color, true)
}

func (s *ScreenSurface) StrokeArc(cx, cy, r, start, end float64, st core.Stroke) {
	var path vector.Path
	path.Arc(float32(cx), float32(cy), float32(r), float32(start), float32(end), vector.Clockwise)

	s.vs, s.is = path.AppendVerticesAndIndicesForStroke(s.vs[:0], s.is[:0], &vector.StrokeOptions{
		Width:    float32(st.Width),
		LineJoin: vector.LineJoinRound,
		LineCap:  vector.LineCapButt,
	})
	nc := color.NRGBAModel.Convert(st.Color).(color.NRGBA)
	for i := range s.vs {
		s.vs[i].SrcX = 1
		s.vs[i].SrcY = 1
		s.vs[i].ColorR = float32(nc.R) / 255
		s.vs[i].ColorG = float32(nc.G) / 255
		s.vs[i].ColorB = float32(nc.B) / 255
		s.vs[i].ColorA = float32(nc.A) / 255
	}
	op := &ebiten.DrawTrianglesOptions{}
	op.AntiAlias = true
	s.img.DrawTriangles(s.vs, s.is, whiteSubImage, op)
}
