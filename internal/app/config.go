package app

import (
	"flag"
	"fmt"
	"time"

	"landscape/internal/core"
	"landscape/internal/scene"
)

// Config represents the command-line parameters for the application.
type Config struct {
	TPS          int
	Seed         int64
	WindowSize   int
	HUD          bool
	PauseMeteors bool
	Debounce     time.Duration
	Debug        bool
	Params       core.ParamFlag
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		TPS:        60,
		WindowSize: 720,
		Debounce:   100 * time.Millisecond,
		Params:     core.ParamFlag{},
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.TPS, "tps", c.TPS, "animation ticks per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "random seed (0 picks one from the clock)")
	fs.IntVar(&c.WindowSize, "window", c.WindowSize, "initial window side in pixels")
	fs.BoolVar(&c.HUD, "hud", c.HUD, "show the phase readout panel")
	fs.BoolVar(&c.PauseMeteors, "pause-meteors", c.PauseMeteors, "freeze falling meteors while paused")
	fs.DurationVar(&c.Debounce, "debounce", c.Debounce, "resize coalescing delay")
	fs.BoolVar(&c.Debug, "debug", c.Debug, "log scene events to stderr")
	fs.Var(c.Params, "param", "scene override as key=value (repeatable)")
}

// SceneConfig builds the scene configuration from the -param overrides and
// the dedicated flags.
func (c *Config) SceneConfig() (scene.Config, error) {
	sc := scene.FromMap(c.Params)
	if c.PauseMeteors {
		sc.PauseMeteors = true
	}
	if err := sc.Validate(); err != nil {
		return sc, fmt.Errorf("scene params: %w", err)
	}
	return sc, nil
}

// ResolveSeed returns the configured seed, or one derived from the clock
// when it is zero.
func (c *Config) ResolveSeed() int64 {
	if c.Seed != 0 {
		return c.Seed
	}
	return time.Now().UnixNano()
}
