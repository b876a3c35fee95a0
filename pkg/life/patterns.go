package life

import "github.com/pkg/errors"

// Pattern is a named set of Alive cells used to seed a grid.
type Pattern struct {
	Name  string
	Cells []Point
}

// Bounds returns the number of rows and columns needed to hold the pattern
// anchored at the origin.
func (p Pattern) Bounds() (rows, cols int) {
	for _, c := range p.Cells {
		rows = max(rows, c.Row+1)
		cols = max(cols, c.Col+1)
	}
	return rows, cols
}

// Offset returns a copy of the pattern shifted by (dRow, dCol).
func (p Pattern) Offset(dRow, dCol int) Pattern {
	cells := make([]Point, len(p.Cells))
	for i, c := range p.Cells {
		cells[i] = Point{Row: c.Row + dRow, Col: c.Col + dCol}
	}
	return Pattern{Name: p.Name, Cells: cells}
}

// Centered returns the pattern shifted to the middle of a cols×rows grid.
func (p Pattern) Centered(cols, rows int) Pattern {
	pr, pc := p.Bounds()
	return p.Offset((rows-pr)/2, (cols-pc)/2)
}

// Matrix renders the pattern into a rows×cols matrix of cells.
func (p Pattern) Matrix(cols, rows int) ([][]Cell, error) {
	if cols <= 0 || rows <= 0 {
		return nil, errors.Wrapf(ErrDimensions, "%dx%d", cols, rows)
	}
	m := make([][]Cell, rows)
	for row := range m {
		m[row] = make([]Cell, cols)
	}
	for _, c := range p.Cells {
		if c.Row < 0 || c.Row >= rows || c.Col < 0 || c.Col >= cols {
			return nil, errors.Wrapf(ErrOutOfBounds, "pattern %q: (%d,%d) in %d rows x %d columns", p.Name, c.Row, c.Col, rows, cols)
		}
		m[c.Row][c.Col] = Alive
	}
	return m, nil
}

// Grid builds generation 0 of a cols×rows grid seeded with the pattern.
func (p Pattern) Grid(cols, rows int) (*Grid, error) {
	g, err := New(cols, rows, p.Cells)
	if err != nil {
		return nil, errors.Wrapf(err, "pattern %q", p.Name)
	}
	return g, nil
}

var (
	// Block is the 2×2 still life.
	Block = Pattern{Name: "block", Cells: []Point{{0, 0}, {0, 1}, {1, 0}, {1, 1}}}

	// Blinker is the horizontal phase of the period-2 oscillator.
	Blinker = Pattern{Name: "blinker", Cells: []Point{{0, 0}, {0, 1}, {0, 2}}}

	// Glider travels one cell diagonally down-right every four generations.
	Glider = Pattern{Name: "glider", Cells: []Point{{0, 1}, {1, 2}, {2, 0}, {2, 1}, {2, 2}}}

	// Showcase is the fixed demo seed shown on startup. It needs at least
	// 28 rows and 32 columns.
	Showcase = Pattern{Name: "showcase", Cells: []Point{
		{0, 0}, {1, 1}, {1, 2}, {2, 1}, {5, 1}, {5, 2}, {5, 4}, {6, 4}, {5, 5}, {6, 5}, {5, 6},
		{1, 5}, {2, 5}, {3, 5}, {9, 3}, {10, 1}, {10, 2}, {14, 0}, {14, 1}, {14, 2},
		{2, 12}, {3, 11}, {3, 13}, {3, 15}, {4, 12}, {4, 14}, {4, 15}, {8, 11}, {9, 10},
		{9, 12}, {9, 16}, {8, 19}, {8, 20}, {9, 20}, {2, 24}, {3, 23}, {3, 25}, {4, 23},
		{4, 25}, {5, 24}, {7, 24}, {7, 27}, {7, 28}, {7, 29}, {8, 25}, {8, 27}, {9, 26},
		{14, 15}, {14, 16}, {14, 17}, {13, 12},
		{14, 11}, {15, 10}, {16, 9}, {17, 7}, {17, 8}, {12, 21}, {12, 23}, {13, 20},
		{13, 22}, {13, 24}, {14, 21}, {14, 23}, {15, 22}, {22, 9}, {23, 8}, {23, 9},
		{24, 9}, {25, 8},
		{25, 9}, {20, 16}, {21, 17}, {22, 16}, {21, 22}, {22, 22}, {22, 23},
		{27, 26}, {27, 27}, {27, 28}, {27, 29}, {27, 30}, {27, 31},
	}}
)
