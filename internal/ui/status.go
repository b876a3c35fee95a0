package ui

import (
	"fmt"
	"time"
)

// Status is what the HUD shows about the running simulation.
type Status struct {
	Generation int
	Population int
	Interval   time.Duration
	Paused     bool
}

// Lines formats the status for display, one entry per text row.
func (s Status) Lines() []string {
	lines := []string{
		fmt.Sprintf("gen %d", s.Generation),
		fmt.Sprintf("pop %d", s.Population),
		fmt.Sprintf("every %v", s.Interval),
	}
	if s.Paused {
		lines = append(lines, "paused")
	}
	return lines
}
