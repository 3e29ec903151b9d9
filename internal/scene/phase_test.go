package scene

import (
	"math"
	"testing"
)

func TestPhaseStaysInUnitRange(t *testing.T) {
	for f := -2 * Period; f <= 4*Period; f += 7 {
		d := Phase(f)
		if d < 0 || d > 1 {
			t.Fatalf("Phase(%d) = %v, out of [0,1]", f, d)
		}
	}
}

func TestPhaseIsPeriodic(t *testing.T) {
	for f := 0; f < 2*Period; f += 13 {
		if a, b := Phase(f), Phase(f+2*Period); math.Abs(a-b) > 1e-9 {
			t.Fatalf("Phase(%d) = %v but Phase(%d) = %v", f, a, f+2*Period, b)
		}
	}
}

func TestPhaseBoundaries(t *testing.T) {
	for k := 0; k < 5; k++ {
		if d := Phase(k * Period); d > 1e-9 {
			t.Fatalf("Phase(%d*Period) = %v, want 0", k, d)
		}
		if d := Phase(k*Period + Period/2); math.Abs(d-1) > 1e-9 {
			t.Fatalf("Phase((%d+0.5)*Period) = %v, want 1", k, d)
		}
	}
}

func TestStartFrameIsNotNight(t *testing.T) {
	if d := Phase(StartFrame); d < 0.5 {
		t.Fatalf("Phase(StartFrame) = %v, expected a bright start", d)
	}
}

func TestPhaseOfFallsBackToDefaultPeriod(t *testing.T) {
	if PhaseOf(123, 0) != Phase(123) {
		t.Fatal("non-positive period should fall back to Period")
	}
	if d := PhaseOf(50, 100); math.Abs(d-1) > 1e-9 {
		t.Fatalf("PhaseOf(50, 100) = %v, want 1", d)
	}
}
