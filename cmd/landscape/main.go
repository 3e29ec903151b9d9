//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"
	"os"

	"landscape/internal/app"
	"landscape/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	var logger core.Logger = core.NoopLogger{}
	if cfg.Debug {
		logger = core.NewStdLogger(os.Stderr)
	}

	game, err := app.New(cfg, logger)
	if err != nil {
		log.Fatalf("landscape: %v", err)
	}

	ebiten.SetWindowTitle("landscape")
	ebiten.SetWindowSize(cfg.WindowSize, cfg.WindowSize)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(60)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
