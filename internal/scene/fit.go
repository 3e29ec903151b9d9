package scene

import (
	"math"

	"landscape/internal/core"
)

const (
	// MinCanvas and MaxCanvas bound the side of the square canvas.
	MinCanvas = 240
	MaxCanvas = 720

	paddingRatio = 1.2
)

// FitSquare computes the canvas size for the available area: the smaller
// side shrunk by the padding ratio, clamped to [MinCanvas, MaxCanvas].
func FitSquare(availW, availH int) core.Size {
	side := float64(min(availW, availH)) / paddingRatio
	side = math.Max(math.Min(side, MaxCanvas), MinCanvas)
	return core.Square(int(math.Round(side)))
}

// ClampSide clamps a requested side length into the canvas bounds.
func ClampSide(n int) int {
	return max(min(n, MaxCanvas), MinCanvas)
}
