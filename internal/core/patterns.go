package core

import (
	"strconv"

	"conway/pkg/life"
)

// DefaultDensity is the share of Alive cells in a random pattern.
const DefaultDensity = 0.2

func init() {
	Register("showcase", func(int, int, map[string]string) life.Pattern {
		return life.Showcase
	})
	Register("block", centered(life.Block))
	Register("blinker", centered(life.Blinker))
	Register("glider", func(int, int, map[string]string) life.Pattern {
		return life.Glider.Offset(1, 1)
	})
	Register("random", func(cols, rows int, cfg map[string]string) life.Pattern {
		seed, density := int64(0), DefaultDensity
		if v, ok := cfg["seed"]; ok {
			if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
				seed = parsed
			}
		}
		if v, ok := cfg["density"]; ok {
			if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 && parsed <= 1 {
				density = parsed
			}
		}
		return RandomPattern(NewRNG(seed), cols, rows, density)
	})
}

func centered(p life.Pattern) Factory {
	return func(cols, rows int, _ map[string]string) life.Pattern {
		return p.Centered(cols, rows)
	}
}
