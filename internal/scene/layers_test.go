package scene

import (
	"image/color"
	"math"
	"testing"

	"landscape/internal/core"
	"landscape/internal/palette"
	"landscape/internal/render"
)

// constRand always returns the same value.
type constRand float64

func (c constRand) Float64() float64 { return float64(c) }

func inPalette(c color.Color, p []palette.HSLA) bool {
	for _, want := range palette.Colors(p) {
		if c == want {
			return true
		}
	}
	return false
}

func TestLayerStrokeCounts(t *testing.T) {
	cfg := DefaultConfig()
	f := Frame{Size: core.Square(400), Daytime: 0.3}
	rng := core.NewRNG(7)

	cases := []struct {
		name string
		draw func(dst core.Surface)
		kind render.OpKind
		want int
	}{
		{"sky", func(dst core.Surface) { DrawSky(dst, f, rng, cfg.SkyStrokes) }, render.OpLine, 2400},
		{"ground", func(dst core.Surface) { DrawGround(dst, f, rng, cfg.GroundStrokes) }, render.OpLine, 800},
		{"bushes", func(dst core.Surface) { DrawBushes(dst, f, rng, cfg.BushArcs) }, render.OpArc, 600},
		{"weeds", func(dst core.Surface) { DrawWeeds(dst, f, rng, cfg.WeedStrokes) }, render.OpLine, 20},
	}
	for _, tc := range cases {
		rec := render.NewRecorder(f.Size)
		tc.draw(rec)
		if got := rec.Count(tc.kind); got != tc.want {
			t.Fatalf("%s drew %d ops, want %d", tc.name, got, tc.want)
		}
		if len(rec.Ops) != tc.want {
			t.Fatalf("%s drew %d ops in total, want only %d", tc.name, len(rec.Ops), tc.want)
		}
	}
}

func TestLayersPickFromTheirOwnPalette(t *testing.T) {
	for _, daytime := range []float64{0, 0.42, 1} {
		f := Frame{Size: core.Square(300), Daytime: daytime}
		rng := core.NewRNG(int64(daytime*100) + 1)

		cases := []struct {
			name    string
			draw    func(dst core.Surface)
			palette []palette.HSLA
		}{
			{"sky", func(dst core.Surface) { DrawSky(dst, f, rng, 500) }, palette.Sky(daytime)},
			{"ground", func(dst core.Surface) { DrawGround(dst, f, rng, 300) }, palette.Ground(daytime)},
			{"bushes", func(dst core.Surface) { DrawBushes(dst, f, rng, 300) }, palette.Bush(daytime)},
			{"weeds", func(dst core.Surface) { DrawWeeds(dst, f, rng, 100) }, palette.Weed(daytime)},
		}
		for _, tc := range cases {
			rec := render.NewRecorder(f.Size)
			tc.draw(rec)
			seen := map[color.Color]bool{}
			for _, op := range rec.Ops {
				if op.Kind == render.OpFill {
					continue
				}
				if !inPalette(op.Color, tc.palette) {
					t.Fatalf("%s at daytime %v used foreign color %v", tc.name, daytime, op.Color)
				}
				seen[op.Color] = true
			}
			if len(seen) < 2 {
				t.Fatalf("%s should pick colors per stroke, saw %d distinct", tc.name, len(seen))
			}
		}
	}
}

func TestClearUsesBaseColor(t *testing.T) {
	rec := render.NewRecorder(core.Square(240))
	Clear(rec, Frame{Size: rec.Size(), Daytime: 0.5})
	if len(rec.Ops) != 1 || rec.Ops[0].Kind != render.OpFill {
		t.Fatalf("Clear should issue a single fill, got %+v", rec.Ops)
	}
	op := rec.Ops[0]
	if op.X0 != 0 || op.Y0 != 0 || op.X1 != 240 || op.Y1 != 240 {
		t.Fatalf("Clear should cover the canvas, got %+v", op)
	}
	if op.Color != color.Color(palette.Base(0.5).NRGBA()) {
		t.Fatalf("Clear color = %v", op.Color)
	}
}

func TestSkyGeometry(t *testing.T) {
	f := Frame{Size: core.Square(360), Daytime: 0.2}
	w, h := 360.0, 360.0
	rec := render.NewRecorder(f.Size)
	DrawSky(rec, f, core.NewRNG(11), 2400)
	for _, op := range rec.Ops {
		if op.Width != w/120 {
			t.Fatalf("sky width = %v, want %v", op.Width, w/120)
		}
		if op.X0 < 0 || op.X0 >= w || op.Y0 < 0 || op.Y0 >= h/2 {
			t.Fatalf("sky start (%v,%v) outside upper half", op.X0, op.Y0)
		}
		if math.Abs(op.X1-op.X0) > w/2 || math.Abs(op.Y1-op.Y0) > h/30 {
			t.Fatalf("sky delta too large: %+v", op)
		}
	}
}

func TestGroundGeometry(t *testing.T) {
	f := Frame{Size: core.Square(360), Daytime: 0.9}
	w, h := 360.0, 360.0
	rec := render.NewRecorder(f.Size)
	DrawGround(rec, f, core.NewRNG(3), 800)
	for _, op := range rec.Ops {
		if op.Width != w/30 {
			t.Fatalf("ground width = %v, want %v", op.Width, w/30)
		}
		if op.Y0 < h/2 || op.Y0 >= h {
			t.Fatalf("ground start y %v outside [h/2, h)", op.Y0)
		}
		if math.Abs(op.Y1-op.Y0) > h/30 {
			t.Fatalf("ground vertical delta too large: %+v", op)
		}
	}
}

func TestBushGeometry(t *testing.T) {
	for _, daytime := range []float64{0, 0.5, 1} {
		f := Frame{Size: core.Square(480), Daytime: daytime}
		w, h := 480.0, 480.0
		sweep := 0.125 + daytime/5
		rec := render.NewRecorder(f.Size)
		DrawBushes(rec, f, core.NewRNG(5), 600)
		for _, op := range rec.Ops {
			if op.Start != math.Pi || math.Abs(op.End-math.Pi*(1+sweep)) > 1e-12 {
				t.Fatalf("arc sweep %v..%v, want pi..pi*(1+%v)", op.Start, op.End, sweep)
			}
			if op.X0 < 0 || op.X0 >= w+w/3 {
				t.Fatalf("arc center x %v outside band", op.X0)
			}
			if op.Y0 < h/2.18 || op.Y0 > h/1.42 {
				t.Fatalf("arc center y %v outside jitter band", op.Y0)
			}
			if op.R < 0 || op.R > w/2-w/1.3*sweep {
				t.Fatalf("arc radius %v out of range", op.R)
			}
			if op.Width != w/65 {
				t.Fatalf("arc width = %v, want %v", op.Width, w/65)
			}
		}
	}
}

func TestWeedsOnlyGrowUpward(t *testing.T) {
	f := Frame{Size: core.Square(300), Daytime: 0.6}
	w, h := 300.0, 300.0
	rec := render.NewRecorder(f.Size)
	DrawWeeds(rec, f, core.NewRNG(9), 500)
	for _, op := range rec.Ops {
		if op.Y1 > op.Y0 {
			t.Fatalf("weed grows downward: %+v", op)
		}
		if op.Y0-op.Y1 > h/6.2 || math.Abs(op.X1-op.X0) > w/80 {
			t.Fatalf("weed offset too large: %+v", op)
		}
		if op.Y0 < h/1.3 || op.Y0 > h {
			t.Fatalf("weed start y %v outside [h/1.3, h]", op.Y0)
		}
	}
}

func TestSkyMeteorSpawnChecks(t *testing.T) {
	cases := []struct {
		daytime float64
		rng     constRand
		want    int
	}{
		{0.5, 0.95, 0},
		{0.65, 0.95, 1},
		{0.8, 0.95, 2},
		{0.8, 0.85, 1},
		{0.8, 0.5, 0},
	}
	for _, tc := range cases {
		rec := render.NewRecorder(core.Square(240))
		got := DrawSky(rec, Frame{Size: rec.Size(), Daytime: tc.daytime}, tc.rng, 10)
		if len(got) != tc.want {
			t.Fatalf("daytime %v rng %v spawned %d meteors, want %d", tc.daytime, tc.rng, len(got), tc.want)
		}
	}
}
