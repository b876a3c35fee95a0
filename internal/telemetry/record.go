// Package telemetry records per-generation population statistics. Grid state
// itself is never written out.
package telemetry

import (
	"time"

	"conway/pkg/life"
)

// Record is one generation's statistics.
type Record struct {
	Generation int     `csv:"generation"`
	Population int     `csv:"population"`
	Density    float64 `csv:"density"`
	ElapsedMS  int64   `csv:"elapsed_ms"`
}

// NewRecord captures the current generation of g.
func NewRecord(g *life.Grid, elapsed time.Duration) Record {
	pop := g.Population()
	return Record{
		Generation: g.Generation(),
		Population: pop,
		Density:    float64(pop) / float64(g.Width()*g.Height()),
		ElapsedMS:  elapsed.Milliseconds(),
	}
}
