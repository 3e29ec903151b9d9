package scene

import (
	"fmt"
	"strconv"

	"landscape/internal/core"
	"landscape/internal/palette"
)

// State is the play state of the frame driver.
type State int

const (
	// Running redraws the scene on every scheduler tick.
	Running State = iota
	// Paused keeps the last frame on the surface and schedules nothing.
	Paused
)

func (s State) String() string {
	switch s {
	case Running:
		return "running"
	case Paused:
		return "paused"
	default:
		return "State(" + strconv.Itoa(int(s)) + ")"
	}
}

type meteorTask struct {
	meteor *Meteor
	handle core.Handle
}

// Driver advances the phase clock, renders every layer in order and
// re-arms itself on the scheduler. Meteors spawned by the sky run as their
// own scheduler chains, owned by the driver so a pause can reach them.
type Driver struct {
	cfg     Config
	surface core.Surface
	sched   *core.Scheduler
	rng     core.Rand
	log     core.Logger

	size    core.Size
	frame   int
	daytime float64
	state   State
	started bool
	tick    core.Handle
	meteors []*meteorTask
	faults  int

	clamped   int
	clampedBy [len(paletteLayers)]int

	// OnDaytime, when set, receives the daytime of every rendered frame.
	OnDaytime func(daytime float64)
}

// NewDriver wires a driver to its surface, scheduler and random source. The
// surface's current size is used until the first Resize.
func NewDriver(cfg Config, surface core.Surface, sched *core.Scheduler, rng core.Rand, logger core.Logger) (*Driver, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("scene config: %w", err)
	}
	if logger == nil {
		logger = core.NoopLogger{}
	}
	size := surface.Size()
	if size.W <= 0 || size.H <= 0 {
		return nil, fmt.Errorf("surface size %dx%d is not drawable", size.W, size.H)
	}
	return &Driver{
		cfg:     cfg,
		surface: surface,
		sched:   sched,
		rng:     rng,
		log:     logger,
		size:    size,
		frame:   cfg.StartFrame,
		state:   Paused,
	}, nil
}

// Start draws the first frame immediately and enters the loop.
func (d *Driver) Start() {
	if d.started {
		return
	}
	d.started = true
	d.state = Running
	d.log.Infof("scene", "starting at frame %d on %dx%d", d.frame, d.size.W, d.size.H)
	d.draw()
}

// Toggle flips between Running and Paused and returns the new state.
func (d *Driver) Toggle() State {
	if d.state == Running {
		d.Pause()
	} else {
		d.Resume()
	}
	return d.state
}

// Pause cancels the pending frame and leaves the last one on the surface.
func (d *Driver) Pause() {
	if d.state == Paused {
		return
	}
	d.state = Paused
	d.sched.CancelTick(d.tick)
	d.tick = 0
	if d.cfg.PauseMeteors {
		for _, t := range d.meteors {
			d.sched.CancelTick(t.handle)
			t.handle = 0
		}
	}
	d.log.Infof("scene", "paused at frame %d", d.frame)
}

// Resume draws a new frame right away and re-enters the loop.
func (d *Driver) Resume() {
	if d.state == Running {
		return
	}
	d.started = true
	d.state = Running
	d.log.Infof("scene", "resumed at frame %d", d.frame)
	d.redraw()
}

// Resize fits the canvas into the available area and reallocates the
// surface. Outside the initial call a running driver redraws at once.
func (d *Driver) Resize(availW, availH int, initial bool) core.Size {
	size := FitSquare(availW, availH)
	if size.W != size.H || size.W < MinCanvas {
		panic(fmt.Sprintf("scene: canvas %dx%d violates the square size floor", size.W, size.H))
	}
	if size == d.size && !initial {
		return size
	}
	d.size = size
	d.surface.Resize(size)
	d.log.Infof("scene", "canvas resized to %dx%d (available %dx%d)", size.W, size.H, availW, availH)
	if !initial && d.state == Running {
		d.sched.CancelTick(d.tick)
		d.redraw()
	}
	return size
}

// State returns the current play state.
func (d *Driver) State() State { return d.state }

// Frame returns the frame counter of the last rendered frame.
func (d *Driver) Frame() int { return d.frame }

// Daytime returns the phase of the last rendered frame.
func (d *Driver) Daytime() float64 { return d.daytime }

// Size returns the current canvas size.
func (d *Driver) Size() core.Size { return d.size }

// Meteors returns the number of meteors still in flight.
func (d *Driver) Meteors() int { return len(d.meteors) }

// Faults returns how many layer or meteor draws panicked.
func (d *Driver) Faults() int { return d.faults }

// Clamped returns how many palette colors of the last frame were out of
// the HSL range.
func (d *Driver) Clamped() int { return d.clamped }

// Parameters exposes the driver's live values for the HUD.
func (d *Driver) Parameters() core.ParameterSnapshot {
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "Clock",
			Params: []core.Parameter{
				{Key: "frame", Label: "Frame", Type: core.ParamTypeInt, Value: strconv.Itoa(d.frame)},
				{Key: "daytime", Label: "Daytime", Type: core.ParamTypeFloat, Value: strconv.FormatFloat(d.daytime, 'f', 3, 64)},
				{Key: "state", Label: "State", Type: core.ParamTypeString, Value: d.state.String()},
			},
		},
		{
			Name: "Canvas",
			Params: []core.Parameter{
				{Key: "size", Label: "Size", Type: core.ParamTypeInt, Value: strconv.Itoa(d.size.W)},
				{Key: "meteors", Label: "Meteors", Type: core.ParamTypeInt, Value: strconv.Itoa(len(d.meteors))},
				{Key: "faults", Label: "Faults", Type: core.ParamTypeInt, Value: strconv.Itoa(d.faults)},
				{Key: "clamped", Label: "Clamped", Type: core.ParamTypeInt, Value: strconv.Itoa(d.clamped)},
			},
		},
	}}
}

// draw renders one frame, re-arms the loop, then launches the meteors the
// frame spawned so their chains tick after the main one.
func (d *Driver) draw() {
	spawned := d.render()
	d.tick = d.sched.RequestTick(d.draw)
	for _, m := range spawned {
		d.launch(m)
	}
}

// redraw renders a frame outside the loop's own tick. Meteors already in
// flight, running or frozen, are moved behind the new main tick so the next
// clear does not paint over them.
func (d *Driver) redraw() {
	inflight := append([]*meteorTask(nil), d.meteors...)
	d.draw()
	for _, t := range inflight {
		d.sched.CancelTick(t.handle)
		d.arm(t)
	}
}

func (d *Driver) render() []*Meteor {
	d.frame++
	d.daytime = PhaseOf(d.frame, d.cfg.Period)
	if d.OnDaytime != nil {
		d.OnDaytime(d.daytime)
	}
	d.checkPalettes()

	f := Frame{Size: d.size, Daytime: d.daytime}
	var spawned []*Meteor
	d.guard("clear", func() { Clear(d.surface, f) })
	d.guard("sky", func() { spawned = DrawSky(d.surface, f, d.rng, d.cfg.SkyStrokes) })
	d.guard("ground", func() { DrawGround(d.surface, f, d.rng, d.cfg.GroundStrokes) })
	d.guard("bushes", func() { DrawBushes(d.surface, f, d.rng, d.cfg.BushArcs) })
	d.guard("weeds", func() { DrawWeeds(d.surface, f, d.rng, d.cfg.WeedStrokes) })
	return spawned
}

var paletteLayers = [...]struct {
	name string
	colors func(daytime float64) []palette.HSLA
}{
	{"base", func(v float64) []palette.HSLA { return []palette.HSLA{palette.Base(v)} }},
	{"sky", palette.Sky},
	{"ground", palette.Ground},
	{"bushes", palette.Bush},
	{"weeds", palette.Weed},
}

// checkPalettes counts the colors of this frame that fall outside the HSL
// range and get clamped on conversion. A layer is logged only when its
// count changes, so a long stretch of clamped frames logs once.
func (d *Driver) checkPalettes() {
	total := 0
	for i, l := range paletteLayers {
		p := l.colors(d.daytime)
		n := palette.OutOfRange(p)
		total += n
		if n == d.clampedBy[i] {
			continue
		}
		d.clampedBy[i] = n
		if n > 0 {
			d.log.Infof("palette", "%s: %d of %d colors out of range at daytime %.3f, clamped", l.name, n, len(p), d.daytime)
		} else {
			d.log.Infof("palette", "%s: back in range at daytime %.3f", l.name, d.daytime)
		}
	}
	d.clamped = total
}

func (d *Driver) launch(m *Meteor) {
	t := &meteorTask{meteor: m}
	d.meteors = append(d.meteors, t)
	d.stepMeteor(t)
}

func (d *Driver) stepMeteor(t *meteorTask) {
	t.handle = 0
	alive := false
	d.guard("meteor", func() { alive = t.meteor.Advance(d.surface, d.size, d.rng) })
	if !alive {
		d.dropMeteor(t)
		return
	}
	d.arm(t)
}

func (d *Driver) arm(t *meteorTask) {
	t.handle = d.sched.RequestTick(func() { d.stepMeteor(t) })
}

func (d *Driver) dropMeteor(t *meteorTask) {
	for i, other := range d.meteors {
		if other == t {
			d.meteors = append(d.meteors[:i], d.meteors[i+1:]...)
			return
		}
	}
}

// guard runs one layer and keeps a panic inside it from escaping the frame.
func (d *Driver) guard(layer string, fn func()) {
	defer func() {
		if r := recover(); r != nil {
			d.faults++
			d.log.Errorf("scene", "%s panicked on frame %d: %v", layer, d.frame, r)
		}
	}()
	fn()
}
