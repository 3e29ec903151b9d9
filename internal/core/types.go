package core

import "image/color"

// Size describes the pixel dimensions of a drawing surface.
type Size struct {
	W int
	H int
}

// Square returns a Size with both sides set to n.
func Square(n int) Size { return Size{W: n, H: n} }

// Stroke carries the pen used for a single stroke operation.
type Stroke struct {
	Width float64
	Color color.Color
}

// Surface is the raster the scene draws onto. Angles are in radians and grow
// clockwise from the positive x axis, since y grows downward.
type Surface interface {
	Size() Size
	// Resize reallocates the surface. Implementations keep the previous
	// contents scaled into the new bounds.
	Resize(size Size)
	FillRect(x, y, w, h float64, c color.Color)
	StrokeLine(x0, y0, x1, y1 float64, s Stroke)
	StrokeArc(cx, cy, r, start, end float64, s Stroke)
}
