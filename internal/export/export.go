// Package export renders the landscape headlessly and writes the frames to
// disk: a numbered PNG sequence, one animated PNG, or one animated GIF.
package export

import (
	"flag"
	"fmt"
	"image"
	"image/color/palette"
	"image/draw"
	"image/gif"
	"math"
	"os"
	"path/filepath"

	"landscape/internal/core"
	"landscape/internal/render"
	"landscape/internal/scene"

	"github.com/setanarut/apng"
)

const (
	FormatPNG  = "png"
	FormatAPNG = "apng"
	FormatGIF  = "gif"
)

// Config controls a headless export run.
type Config struct {
	Frames int
	Size   int
	Seed   int64
	Out    string
	Format string
	// Delay is the animated frame delay in hundredths of a second.
	Delay  int
	Debug  bool
	Params core.ParamFlag
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Frames: 60,
		Size:   480,
		Seed:   1,
		Out:    "frames",
		Format: FormatPNG,
		Delay:  3,
		Params: core.ParamFlag{},
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Frames, "frames", c.Frames, "number of frames to render")
	fs.IntVar(&c.Size, "size", c.Size, "canvas side in pixels (clamped to 240..720)")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "random seed")
	fs.StringVar(&c.Out, "out", c.Out, "output directory (png) or file (apng, gif)")
	fs.StringVar(&c.Format, "format", c.Format, "png, apng or gif")
	fs.IntVar(&c.Delay, "delay", c.Delay, "animated frame delay in 1/100 s")
	fs.BoolVar(&c.Debug, "debug", c.Debug, "log scene events to stderr")
	fs.Var(c.Params, "param", "scene override as key=value (repeatable)")
}

// Validate reports the first unusable setting.
func (c *Config) Validate() error {
	if c.Frames <= 0 {
		return fmt.Errorf("frames must be positive, got %d", c.Frames)
	}
	if c.Out == "" {
		return fmt.Errorf("out must not be empty")
	}
	switch c.Format {
	case FormatPNG, FormatAPNG, FormatGIF:
	default:
		return fmt.Errorf("unknown format %q", c.Format)
	}
	if c.Delay < 0 || c.Delay > math.MaxUint16 {
		return fmt.Errorf("delay must be within 0..%d, got %d", math.MaxUint16, c.Delay)
	}
	return nil
}

type sink interface {
	add(i int, s *render.RasterSurface) error
	close() error
}

// Run renders cfg.Frames consecutive frames. Each frame after the first is
// one scheduler tick, so meteors animate across the exported frames.
func Run(cfg *Config, logger core.Logger) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	if logger == nil {
		logger = core.NoopLogger{}
	}
	sc := scene.FromMap(cfg.Params)
	size := core.Square(scene.ClampSide(cfg.Size))
	surface := render.NewRasterSurface(size)
	sched := core.NewScheduler(logger)
	driver, err := scene.NewDriver(sc, surface, sched, core.NewRNG(cfg.Seed), logger)
	if err != nil {
		return fmt.Errorf("scene driver: %w", err)
	}

	out, err := newSink(cfg)
	if err != nil {
		return err
	}
	driver.Start()
	for i := 0; i < cfg.Frames; i++ {
		if i > 0 {
			sched.Tick()
		}
		if err := out.add(i, surface); err != nil {
			return err
		}
	}
	if err := out.close(); err != nil {
		return err
	}
	logger.Infof("export", "wrote %d %s frames of %dx%d to %s", cfg.Frames, cfg.Format, size.W, size.H, cfg.Out)
	return nil
}

func newSink(cfg *Config) (sink, error) {
	switch cfg.Format {
	case FormatAPNG, FormatGIF:
		if dir := filepath.Dir(cfg.Out); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, fmt.Errorf("create %s: %w", dir, err)
			}
		}
		if cfg.Format == FormatAPNG {
			return &apngSink{path: cfg.Out, delay: uint16(cfg.Delay)}, nil
		}
		return &gifSink{path: cfg.Out, delay: cfg.Delay}, nil
	default:
		if err := os.MkdirAll(cfg.Out, 0o755); err != nil {
			return nil, fmt.Errorf("create %s: %w", cfg.Out, err)
		}
		return pngSink{dir: cfg.Out}, nil
	}
}

type pngSink struct{ dir string }

func (p pngSink) add(i int, s *render.RasterSurface) error {
	return s.SavePNG(filepath.Join(p.dir, fmt.Sprintf("frame-%04d.png", i)))
}

func (pngSink) close() error { return nil }

type apngSink struct {
	path   string
	delay  uint16
	frames []image.Image
}

func (a *apngSink) add(_ int, s *render.RasterSurface) error {
	a.frames = append(a.frames, s.Snapshot())
	return nil
}

func (a *apngSink) close() error {
	if err := apng.Save(a.path, a.frames, a.delay); err != nil {
		return fmt.Errorf("encode %s: %w", a.path, err)
	}
	return nil
}

type gifSink struct {
	path  string
	delay int
	anim  gif.GIF
}

func (g *gifSink) add(_ int, s *render.RasterSurface) error {
	snap := s.Snapshot()
	frame := image.NewPaletted(snap.Bounds(), palette.Plan9)
	draw.FloydSteinberg.Draw(frame, snap.Bounds(), snap, snap.Bounds().Min)
	g.anim.Image = append(g.anim.Image, frame)
	g.anim.Delay = append(g.anim.Delay, g.delay)
	return nil
}

func (g *gifSink) close() error {
	f, err := os.Create(g.path)
	if err != nil {
		return fmt.Errorf("create %s: %w", g.path, err)
	}
	if err := gif.EncodeAll(f, &g.anim); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", g.path, err)
	}
	return f.Close()
}
