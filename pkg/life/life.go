// Package life implements Conway's Game of Life on a finite, non-wrapping
// grid. Cells beyond the edges do not exist and never count as neighbours.
package life

import (
	"runtime"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

var (
	// ErrDimensions is returned for empty, non-positive or ragged grids.
	ErrDimensions = errors.New("life: invalid grid dimensions")
	// ErrOutOfBounds is returned when an initial pattern addresses a cell
	// outside the grid.
	ErrOutOfBounds = errors.New("life: cell outside grid")
)

// Point addresses a cell by row and column.
type Point struct {
	Row, Col int
}

// Size describes the dimensions of a grid in cells.
type Size struct {
	W int
	H int
}

// offsets lists the eight neighbour positions relative to a cell.
var offsets = [8]Point{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// Grid is a finite Game of Life board stored row-major in a flat buffer.
// Step writes into a second buffer and swaps, so the state observed between
// calls is always one complete generation.
type Grid struct {
	w, h       int
	cur        []Cell
	nxt        []Cell
	generation int
}

// New returns generation 0 of a width×height grid with the given cells set
// Alive. Any point outside the grid rejects construction.
func New(width, height int, alive []Point) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, errors.Wrapf(ErrDimensions, "%dx%d", width, height)
	}
	g := &Grid{
		w:   width,
		h:   height,
		cur: make([]Cell, width*height),
		nxt: make([]Cell, width*height),
	}
	for _, p := range alive {
		if !g.contains(p.Row, p.Col) {
			return nil, errors.Wrapf(ErrOutOfBounds, "(%d,%d) in %d rows x %d columns", p.Row, p.Col, height, width)
		}
		g.cur[g.index(p.Row, p.Col)] = Alive
	}
	return g, nil
}

// FromCells builds generation 0 from a rows×columns matrix. Every row must
// have the same, non-zero length.
func FromCells(cells [][]Cell) (*Grid, error) {
	if len(cells) == 0 || len(cells[0]) == 0 {
		return nil, errors.Wrap(ErrDimensions, "empty matrix")
	}
	w, h := len(cells[0]), len(cells)
	g := &Grid{w: w, h: h, cur: make([]Cell, w*h), nxt: make([]Cell, w*h)}
	for row, r := range cells {
		if len(r) != w {
			return nil, errors.Wrapf(ErrDimensions, "row %d has %d cells, want %d", row, len(r), w)
		}
		copy(g.cur[row*w:(row+1)*w], r)
	}
	return g, nil
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.w }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.h }

// Size returns the grid dimensions.
func (g *Grid) Size() Size { return Size{W: g.w, H: g.h} }

// Generation returns how many steps have been applied since construction.
func (g *Grid) Generation() int { return g.generation }

// Cells exposes the current generation in row-major order. Callers must
// treat it as read-only; it is replaced on the next Step.
func (g *Grid) Cells() []Cell { return g.cur }

// At returns the cell at (row, col). Positions outside the grid are Dead.
func (g *Grid) At(row, col int) Cell {
	if !g.contains(row, col) {
		return Dead
	}
	return g.cur[g.index(row, col)]
}

// Rows returns a copy of the current generation as a matrix.
func (g *Grid) Rows() [][]Cell {
	rows := make([][]Cell, g.h)
	for row := range rows {
		rows[row] = append([]Cell(nil), g.cur[row*g.w:(row+1)*g.w]...)
	}
	return rows
}

// Population returns the number of Alive cells.
func (g *Grid) Population() (count int) {
	for _, c := range g.cur {
		if c == Alive {
			count++
		}
	}
	return
}

// Clone returns an independent copy of the grid, generation included.
func (g *Grid) Clone() *Grid {
	return &Grid{
		w:          g.w,
		h:          g.h,
		cur:        append([]Cell(nil), g.cur...),
		nxt:        make([]Cell, len(g.nxt)),
		generation: g.generation,
	}
}

// Equal reports whether both grids have the same dimensions and cells.
// Generation counters are ignored.
func (g *Grid) Equal(o *Grid) bool {
	if o == nil || g.w != o.w || g.h != o.h {
		return false
	}
	for i, c := range g.cur {
		if o.cur[i] != c {
			return false
		}
	}
	return true
}

// CountLiveNeighbors counts the Alive cells among the eight neighbours of
// (row, col) in the current generation. Neighbours outside the grid are
// skipped.
func (g *Grid) CountLiveNeighbors(row, col int) int {
	count := 0
	for _, off := range offsets {
		r, c := row+off.Row, col+off.Col
		if !g.contains(r, c) {
			continue
		}
		if g.cur[g.index(r, c)] == Alive {
			count++
		}
	}
	return count
}

// Step advances the grid by one generation.
func (g *Grid) Step() {
	g.stepRows(0, g.h)
	g.swap()
}

// StepParallel advances the grid by one generation, splitting rows into
// disjoint bands across workers. A non-positive worker count uses one worker
// per CPU. The result is identical to Step.
func (g *Grid) StepParallel(workers int) {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers == 1 || g.h == 1 {
		g.Step()
		return
	}

	var (
		eg            errgroup.Group
		rowsPerWorker = (g.h + workers - 1) / workers
	)
	for i := range workers {
		var (
			startRow = i * rowsPerWorker
			endRow   = min(startRow+rowsPerWorker, g.h)
		)
		if startRow >= g.h {
			break
		}
		eg.Go(func() error {
			g.stepRows(startRow, endRow)
			return nil
		})
	}
	// Bands never fail; Wait is the barrier before the swap.
	_ = eg.Wait()
	g.swap()
}

// stepRows writes the next state of rows [from, to) into nxt, reading only cur.
func (g *Grid) stepRows(from, to int) {
	for row := from; row < to; row++ {
		for col := 0; col < g.w; col++ {
			idx := g.index(row, col)
			g.nxt[idx] = Next(g.cur[idx], g.CountLiveNeighbors(row, col))
		}
	}
}

func (g *Grid) swap() {
	g.cur, g.nxt = g.nxt, g.cur
	g.generation++
}

func (g *Grid) contains(row, col int) bool {
	return row >= 0 && row < g.h && col >= 0 && col < g.w
}

func (g *Grid) index(row, col int) int { return row*g.w + col }
