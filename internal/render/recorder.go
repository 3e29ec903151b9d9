package render

import (
	"image/color"

	"landscape/internal/core"
)

// OpKind names a recorded surface operation.
type OpKind int

const (
	OpFill OpKind = iota
	OpLine
	OpArc
)

// Op is one recorded call. Line ops use X0..Y1; arc ops use X0, Y0 as the
// center with R, Start and End.
type Op struct {
	Kind           OpKind
	X0, Y0, X1, Y1 float64
	R, Start, End  float64
	Width          float64
	Color          color.Color
}

// Recorder is a Surface that only remembers what was drawn on it.
type Recorder struct {
	size    core.Size
	Ops     []Op
	Resizes int
}

// NewRecorder returns an empty Recorder of the given size.
func NewRecorder(size core.Size) *Recorder {
	return &Recorder{size: size}
}

func (r *Recorder) Size() core.Size { return r.size }

func (r *Recorder) Resize(size core.Size) {
	r.size = size
	r.Resizes++
}

func (r *Recorder) FillRect(x, y, w, h float64, c color.Color) {
	r.Ops = append(r.Ops, Op{Kind: OpFill, X0: x, Y0: y, X1: x + w, Y1: y + h, Color: c})
}

func (r *Recorder) StrokeLine(x0, y0, x1, y1 float64, s core.Stroke) {
	r.Ops = append(r.Ops, Op{Kind: OpLine, X0: x0, Y0: y0, X1: x1, Y1: y1, Width: s.Width, Color: s.Color})
}

func (r *Recorder) StrokeArc(cx, cy, radius, start, end float64, s core.Stroke) {
	r.Ops = append(r.Ops, Op{Kind: OpArc, X0: cx, Y0: cy, R: radius, Start: start, End: end, Width: s.Width, Color: s.Color})
}

// Count returns how many ops of the given kind were recorded.
func (r *Recorder) Count(kind OpKind) int {
	n := 0
	for _, op := range r.Ops {
		if op.Kind == kind {
			n++
		}
	}
	return n
}

// Reset forgets every recorded op.
func (r *Recorder) Reset() { r.Ops = r.Ops[:0] }
