package core

import (
	"math/rand/v2"

	"conway/pkg/life"
)

// RNG is a thin convenience wrapper around math/rand/v2 for deterministic seeding.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// Chance reports true with probability p.
func (r *RNG) Chance(p float64) bool {
	return r.r.Float64() < p
}

// RandomPattern marks each cell of a cols×rows grid Alive with probability
// density.
func RandomPattern(r *RNG, cols, rows int, density float64) life.Pattern {
	p := life.Pattern{Name: "random"}
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			if r.Chance(density) {
				p.Cells = append(p.Cells, life.Point{Row: row, Col: col})
			}
		}
	}
	return p
}
