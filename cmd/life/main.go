//go:build ebiten

package main

import (
	"flag"
	"log/slog"
	"os"

	"conway/internal/app"
	"conway/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/pkg/errors"
)

func main() {
	os.Exit(run())
}

func run() int {
	cfg, err := config.Parse("life", os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		return 0
	}
	if err != nil {
		slog.Error("failed to load config", "error", err)
		return 2
	}

	logger := app.NewLogger(os.Stderr, cfg.LogJSON, slog.LevelInfo)
	slog.SetDefault(logger)

	session, err := app.NewSession(cfg, logger)
	if err != nil {
		logger.Error("failed to start", "error", err)
		return 1
	}
	defer session.Close()

	ebiten.SetWindowTitle("Game of Life")
	ebiten.SetWindowSize(cfg.Viewport.Width, cfg.Viewport.Height)

	if err := ebiten.RunGame(app.New(session, cfg)); err != nil && !errors.Is(err, ebiten.Termination) {
		logger.Error("game loop failed", "error", err)
		return 1
	}
	return 0
}
