package main

import (
	"flag"
	"log"
	"os"

	"landscape/internal/core"
	"landscape/internal/export"
)

func main() {
	cfg := export.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	var logger core.Logger = core.NoopLogger{}
	if cfg.Debug {
		logger = core.NewStdLogger(os.Stderr)
	}

	if err := export.Run(cfg, logger); err != nil {
		log.Fatalf("landscape-export: %v", err)
	}
}
