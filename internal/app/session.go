package app

import (
	"log/slog"
	"time"

	"conway/internal/config"
	"conway/internal/core"
	"conway/internal/telemetry"
	"conway/pkg/life"

	"github.com/pkg/errors"
)

// GridSize converts a viewport in pixels to whole cells.
func GridSize(viewW, viewH, cellSize int) (cols, rows int) {
	if cellSize <= 0 {
		return 0, 0
	}
	return viewW / cellSize, viewH / cellSize
}

// Session owns the grid for one run and records every generation.
type Session struct {
	grid     *life.Grid
	workers  int
	recorder *telemetry.Recorder
	logger   *slog.Logger
	start    time.Time
}

// NewSession sizes the grid from the viewport, seeds it with the configured
// pattern and records generation 0.
func NewSession(cfg *config.Config, logger *slog.Logger) (*Session, error) {
	cols, rows := GridSize(cfg.Viewport.Width, cfg.Viewport.Height, cfg.CellSize)

	factory, err := core.Lookup(cfg.Pattern)
	if err != nil {
		return nil, err
	}
	grid, err := factory(cols, rows, cfg.PatternOptions()).Grid(cols, rows)
	if err != nil {
		return nil, errors.Wrapf(err, "seeding %dx%d grid", cols, rows)
	}

	out, err := telemetry.NewWriter(cfg.OutputDir)
	if err != nil {
		return nil, err
	}

	s := &Session{
		grid:     grid,
		workers:  cfg.Workers,
		recorder: telemetry.NewRecorder(out),
		logger:   logger,
		start:    time.Now(),
	}
	logger.Info("grid ready",
		"columns", cols,
		"rows", rows,
		"pattern", cfg.Pattern,
		"population", grid.Population(),
		"workers", cfg.Workers,
	)
	if err := s.observe(); err != nil {
		out.Close()
		return nil, err
	}
	return s, nil
}

// Grid exposes the current generation for rendering.
func (s *Session) Grid() *life.Grid { return s.grid }

// Advance steps the grid by one generation and records it.
func (s *Session) Advance() error {
	if s.workers == 1 {
		s.grid.Step()
	} else {
		s.grid.StepParallel(s.workers)
	}
	return s.observe()
}

func (s *Session) observe() error {
	rec := telemetry.NewRecord(s.grid, time.Since(s.start))
	s.logger.Debug("generation",
		"generation", rec.Generation,
		"population", rec.Population,
	)
	return s.recorder.Observe(rec)
}

// Close logs the run summary and closes telemetry output.
func (s *Session) Close() error {
	s.logger.Info("run finished", "summary", s.recorder.Summary())
	return s.recorder.Close()
}
