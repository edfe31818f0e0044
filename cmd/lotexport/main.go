// Package main exports the configured lot as one mesh file per part.
package main

import (
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/Faultbox/hlot/internal/config"
	"github.com/Faultbox/hlot/internal/export"
	"github.com/Faultbox/hlot/internal/logger"
	"github.com/Faultbox/hlot/internal/lot"
)

var (
	flagOut    = flag.String("out", "out", "Output directory")
	flagFormat = flag.String("format", "stl", "Output format: stl or json")
)

func main() {
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	if err := run(cfg); err != nil {
		logger.Error("export failed", zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}
}

func run(cfg *config.Config) error {
	format, err := export.ParseFormat(*flagFormat)
	if err != nil {
		return err
	}

	parts, err := lot.Build(cfg.Lot)
	if err != nil {
		return err
	}

	paths, err := export.WriteParts(*flagOut, parts, format)
	if err != nil {
		return err
	}

	logger.Info("export complete", zap.String("dir", *flagOut), zap.Int("files", len(paths)))
	return nil
}
