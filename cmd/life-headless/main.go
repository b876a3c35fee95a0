package main

import (
	"context"
	"flag"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"conway/internal/app"
	"conway/internal/config"

	"github.com/pkg/errors"
)

func main() {
	os.Exit(run())
}

func run() int {
	var printFrames, verbose bool
	cfg, err := config.Parse("life-headless", os.Args[1:], func(fs *flag.FlagSet) {
		fs.BoolVar(&printFrames, "print", false, "print every generation to stdout")
		fs.BoolVar(&verbose, "v", false, "log every generation")
	})
	if errors.Is(err, flag.ErrHelp) {
		return 0
	}
	if err != nil {
		slog.Error("failed to load config", "error", err)
		return 2
	}

	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	logger := app.NewLogger(os.Stderr, cfg.LogJSON, level)
	slog.SetDefault(logger)

	session, err := app.NewSession(cfg, logger)
	if err != nil {
		logger.Error("failed to start", "error", err)
		return 1
	}
	defer session.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var frames io.Writer
	if printFrames {
		frames = os.Stdout
	}

	logger.Info("starting headless simulation",
		"interval", cfg.Interval,
		"max_generations", cfg.MaxGenerations,
		"output_dir", cfg.OutputDir,
	)
	if err := app.Run(ctx, session, cfg.Interval, cfg.MaxGenerations, frames); err != nil {
		logger.Error("simulation failed", "error", err)
		return 1
	}
	return 0
}
