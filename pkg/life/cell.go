package life

// Cell is the state of a single grid position.
type Cell uint8

const (
	// Dead cells contribute nothing to neighbour counts.
	Dead Cell = iota
	// Alive cells are counted by their up to eight neighbours.
	Alive
)

// IsAlive reports whether the cell is Alive.
func (c Cell) IsAlive() bool { return c == Alive }

func (c Cell) String() string {
	if c == Alive {
		return "alive"
	}
	return "dead"
}

// Next applies Conway's B3/S23 rule to a cell with the given number of live
// neighbours.
func Next(c Cell, neighbors int) Cell {
	switch {
	case c == Alive && (neighbors == 2 || neighbors == 3):
		return Alive
	case c == Dead && neighbors == 3:
		return Alive
	}
	return Dead
}
