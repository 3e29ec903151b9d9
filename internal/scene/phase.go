// Package scene generates the animated landscape: a phase clock that turns
// the frame counter into a daytime value, the layer renderers that scatter
// strokes using the palettes, meteor tasks, and the frame driver that ties
// them to a tick scheduler.
package scene

import "math"

const (
	// Period is the number of frames between two nights.
	Period = 640
	// StartFrame offsets the counter so the first frame is not fully night.
	StartFrame = 200
)

// Phase maps a frame counter to the daytime phase in [0, 1] using the
// default Period.
func Phase(frame int) float64 {
	return PhaseOf(frame, Period)
}

// PhaseOf maps a frame counter to |sin(frame/period * pi)|: 0 at multiples
// of period, 1 halfway between them.
func PhaseOf(frame, period int) float64 {
	if period <= 0 {
		period = Period
	}
	return math.Abs(math.Sin(float64(frame) / float64(period) * math.Pi))
}
