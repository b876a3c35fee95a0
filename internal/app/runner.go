package app

import (
	"context"
	"io"
	"time"

	"conway/internal/render"
)

// Run drives a session without a window: one generation per interval until
// ctx is cancelled or maxGenerations is reached (0 = unlimited). When out is
// non-nil each generation, including the first, is printed as text.
func Run(ctx context.Context, s *Session, interval time.Duration, maxGenerations int, out io.Writer) error {
	if err := printFrame(out, s); err != nil {
		return err
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		if maxGenerations > 0 && s.grid.Generation() >= maxGenerations {
			s.logger.Info("max generations reached", "generation", s.grid.Generation())
			return nil
		}
		select {
		case <-ctx.Done():
			s.logger.Info("stopping", "generation", s.grid.Generation())
			return nil
		case <-ticker.C:
		}
		if err := s.Advance(); err != nil {
			return err
		}
		if err := printFrame(out, s); err != nil {
			return err
		}
	}
}

func printFrame(out io.Writer, s *Session) error {
	if out == nil {
		return nil
	}
	return render.WriteText(out, s.grid)
}
