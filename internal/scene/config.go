package scene

import (
	"fmt"
	"strconv"
)

// Config holds the scene tunables. The zero value is not usable; start from
// DefaultConfig.
type Config struct {
	Period     int
	StartFrame int

	SkyStrokes    int
	GroundStrokes int
	BushArcs      int
	WeedStrokes   int

	// PauseMeteors freezes in-flight meteors together with the main loop.
	// When false they keep falling over the retained frame until they leave.
	PauseMeteors bool
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Period:        Period,
		StartFrame:    StartFrame,
		SkyStrokes:    2400,
		GroundStrokes: 800,
		BushArcs:      600,
		WeedStrokes:   20,
	}
}

// Validate reports the first setting that cannot drive a scene.
func (c Config) Validate() error {
	if c.Period <= 0 {
		return fmt.Errorf("period must be positive, got %d", c.Period)
	}
	counts := []struct {
		name string
		v    int
	}{
		{"sky_strokes", c.SkyStrokes},
		{"ground_strokes", c.GroundStrokes},
		{"bush_arcs", c.BushArcs},
		{"weed_strokes", c.WeedStrokes},
	}
	for _, n := range counts {
		if n.v < 0 {
			return fmt.Errorf("%s must not be negative, got %d", n.name, n.v)
		}
	}
	return nil
}

// FromMap populates the config from a string map (flag-style key/value
// pairs). Unknown keys and unparsable values are ignored.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["period"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Period = parsed
		}
	}
	if v, ok := cfg["start_frame"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil {
			c.StartFrame = parsed
		}
	}
	ints := map[string]*int{
		"sky_strokes":    &c.SkyStrokes,
		"ground_strokes": &c.GroundStrokes,
		"bush_arcs":      &c.BushArcs,
		"weed_strokes":   &c.WeedStrokes,
	}
	for key, dst := range ints {
		if v, ok := cfg[key]; ok {
			if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
				*dst = parsed
			}
		}
	}
	if v, ok := cfg["pause_meteors"]; ok {
		if parsed, err := strconv.ParseBool(v); err == nil {
			c.PauseMeteors = parsed
		}
	}
	return c
}
