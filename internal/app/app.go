//go:build ebiten

package app

import (
	"fmt"
	"image"
	"image/color"

	"landscape/internal/core"
	"landscape/internal/palette"
	"landscape/internal/render"
	"landscape/internal/scene"
	"landscape/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts the scene driver to the ebiten.Game interface. Ebiten's
// Update is the display tick; the scheduler advances at the configured rate.
type Game struct {
	driver  *scene.Driver
	sched   *core.Scheduler
	surface *render.ScreenSurface
	pacer   *core.FixedStep
	resize  *resizeTracker
	hud     *ui.HUD
	badge   *ui.Badge
	log     core.Logger

	backdrop color.Color
	outside  core.Size
}

// New constructs a Game and starts the scene loop.
func New(cfg *Config, logger core.Logger) (*Game, error) {
	sc, err := cfg.SceneConfig()
	if err != nil {
		return nil, err
	}
	if logger == nil {
		logger = core.NoopLogger{}
	}
	seed := cfg.ResolveSeed()
	logger.Infof("app", "seed %d", seed)

	surface := render.NewScreenSurface(core.Square(scene.ClampSide(cfg.WindowSize / 2)))
	sched := core.NewScheduler(logger)
	driver, err := scene.NewDriver(sc, surface, sched, core.NewRNG(seed), logger)
	if err != nil {
		return nil, fmt.Errorf("scene driver: %w", err)
	}

	g := &Game{
		driver:  driver,
		sched:   sched,
		surface: surface,
		pacer:   core.NewFixedStep(cfg.TPS),
		resize:  newResizeTracker(core.NewDebouncer[core.Size](cfg.Debounce)),
		badge:   ui.NewBadge(),
		log:     logger,
	}
	if cfg.HUD {
		g.hud = ui.NewHUD(driver, 170)
	}
	driver.OnDaytime = func(daytime float64) {
		g.backdrop = palette.Base(daytime).NRGBA()
	}
	driver.Start()
	return g, nil
}

// Update handles input and resize, then advances the scheduler.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.driver.Toggle()
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		if image.Pt(x, y).In(g.canvasRect()) {
			g.driver.Toggle()
		}
	}

	g.resize.Observe(g.driver, g.outside)

	for n := g.pacer.Steps(); n > 0; n-- {
		g.sched.Tick()
	}

	g.badge.Update(g.driver.State() == scene.Paused, 1/float32(ebiten.TPS()))
	g.hud.Update()
	return nil
}

// canvasRect is where the canvas sits on screen: centered in the window.
func (g *Game) canvasRect() image.Rectangle {
	size := g.surface.Size()
	x := (g.outside.W - size.W) / 2
	y := (g.outside.H - size.H) / 2
	return image.Rect(x, y, x+size.W, y+size.H)
}

// Draw letterboxes the canvas on the current base color.
func (g *Game) Draw(screen *ebiten.Image) {
	if g.backdrop != nil {
		screen.Fill(g.backdrop)
	}
	rect := g.canvasRect()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(rect.Min.X), float64(rect.Min.Y))
	screen.DrawImage(g.surface.Image(), op)

	g.badge.Draw(screen, rect)
	g.hud.Draw(screen, 8, 8)
}

// Layout records the window size as the available area and uses it 1:1.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.outside = core.Size{W: outsideWidth, H: outsideHeight}
	return outsideWidth, outsideHeight
}
