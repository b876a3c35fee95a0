package life

import (
	"testing"

	"github.com/pkg/errors"
)

func mustGrid(t *testing.T, w, h int, alive ...Point) *Grid {
	t.Helper()
	g, err := New(w, h, alive)
	if err != nil {
		t.Fatalf("New(%d, %d): %v", w, h, err)
	}
	return g
}

func expectAlive(t *testing.T, g *Grid, want ...Point) {
	t.Helper()
	expects := make(map[Point]bool, len(want))
	for _, p := range want {
		expects[p] = true
	}
	for row := 0; row < g.Height(); row++ {
		for col := 0; col < g.Width(); col++ {
			alive := g.At(row, col).IsAlive()
			if expects[Point{row, col}] != alive {
				t.Fatalf("generation %d: cell (%d,%d) alive=%v, expected %v",
					g.Generation(), row, col, alive, expects[Point{row, col}])
			}
		}
	}
}

func TestBlinkerOscillation(t *testing.T) {
	g := mustGrid(t, 5, 5, Point{2, 1}, Point{2, 2}, Point{2, 3})

	g.Step()
	expectAlive(t, g, Point{1, 2}, Point{2, 2}, Point{3, 2})

	g.Step()
	expectAlive(t, g, Point{2, 1}, Point{2, 2}, Point{2, 3})

	if got := g.Generation(); got != 2 {
		t.Fatalf("expected generation 2, got %d", got)
	}
}

func TestBlockIsStill(t *testing.T) {
	block := []Point{{3, 3}, {3, 4}, {4, 3}, {4, 4}}
	g := mustGrid(t, 8, 8, block...)
	for range 3 {
		g.Step()
		expectAlive(t, g, block...)
	}
}

func TestCornerReproduction(t *testing.T) {
	g := mustGrid(t, 4, 4, Point{0, 1}, Point{1, 0}, Point{1, 1})
	if got := g.CountLiveNeighbors(0, 0); got != 3 {
		t.Fatalf("expected 3 neighbours at corner, got %d", got)
	}
	g.Step()
	if !g.At(0, 0).IsAlive() {
		t.Fatal("dead corner cell with three neighbours should come alive")
	}
}

func TestEdgesDoNotWrap(t *testing.T) {
	// Under toroidal wrapping (3,3), (0,3) and (3,0) would all touch (0,0).
	g := mustGrid(t, 4, 4, Point{0, 1}, Point{1, 0}, Point{3, 3}, Point{0, 3}, Point{3, 0})
	if got := g.CountLiveNeighbors(0, 0); got != 2 {
		t.Fatalf("expected 2 in-bounds neighbours, got %d", got)
	}
	g.Step()
	if g.At(0, 0).IsAlive() {
		t.Fatal("corner cell must not count neighbours across the edge")
	}
}

func TestCountLiveNeighborsRange(t *testing.T) {
	var all []Point
	for row := range 3 {
		for col := range 3 {
			all = append(all, Point{row, col})
		}
	}
	g := mustGrid(t, 3, 3, all...)

	cases := []struct {
		row, col int
		want     int
	}{
		{1, 1, 8},
		{0, 0, 3},
		{0, 1, 5},
		{2, 2, 3},
		{2, 1, 5},
	}
	for _, tc := range cases {
		if got := g.CountLiveNeighbors(tc.row, tc.col); got != tc.want {
			t.Fatalf("CountLiveNeighbors(%d,%d) = %d, want %d", tc.row, tc.col, got, tc.want)
		}
	}
}

func TestRules(t *testing.T) {
	center := Point{2, 2}
	cases := []struct {
		name      string
		alive     []Point
		wantAlive bool
	}{
		{"underpopulation", []Point{center}, false},
		{"underpopulation one neighbour", []Point{center, {1, 1}}, false},
		{"survival two", []Point{center, {1, 1}, {3, 3}}, true},
		{"survival three", []Point{center, {1, 1}, {3, 3}, {1, 3}}, true},
		{"overpopulation", []Point{center, {1, 1}, {1, 3}, {3, 1}, {3, 3}}, false},
		{"reproduction", []Point{{1, 1}, {1, 3}, {3, 1}}, true},
		{"dead with two stays dead", []Point{{1, 1}, {1, 3}}, false},
		{"dead with four stays dead", []Point{{1, 1}, {1, 3}, {3, 1}, {3, 3}}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g := mustGrid(t, 5, 5, tc.alive...)
			g.Step()
			if got := g.At(center.Row, center.Col).IsAlive(); got != tc.wantAlive {
				t.Fatalf("center alive=%v, expected %v", got, tc.wantAlive)
			}
		})
	}
}

func TestNextMatchesRuleTable(t *testing.T) {
	for n := 0; n <= 8; n++ {
		wantAlive := n == 2 || n == 3
		if got := Next(Alive, n).IsAlive(); got != wantAlive {
			t.Fatalf("Next(Alive, %d) alive=%v, expected %v", n, got, wantAlive)
		}
		wantBorn := n == 3
		if got := Next(Dead, n).IsAlive(); got != wantBorn {
			t.Fatalf("Next(Dead, %d) alive=%v, expected %v", n, got, wantBorn)
		}
	}
}

func TestStepDeterministic(t *testing.T) {
	g, err := Showcase.Grid(40, 30)
	if err != nil {
		t.Fatal(err)
	}
	saved := g.Clone()

	for range 10 {
		g.Step()
	}
	for range 10 {
		saved.Step()
	}
	if !g.Equal(saved) {
		t.Fatal("re-running from a saved copy should reproduce the same generation")
	}
}

func TestStepParallelMatchesStep(t *testing.T) {
	for _, workers := range []int{0, 2, 3, 7, 64} {
		serial, err := Showcase.Grid(40, 30)
		if err != nil {
			t.Fatal(err)
		}
		parallel := serial.Clone()
		for gen := 1; gen <= 25; gen++ {
			serial.Step()
			parallel.StepParallel(workers)
			if !serial.Equal(parallel) {
				t.Fatalf("workers=%d: generation %d differs from serial step", workers, gen)
			}
		}
		if parallel.Generation() != serial.Generation() {
			t.Fatalf("workers=%d: generation counters differ", workers)
		}
	}
}

func TestNewRejectsOutOfBounds(t *testing.T) {
	cases := []Point{{-1, 0}, {0, -1}, {3, 0}, {0, 4}}
	for _, p := range cases {
		if _, err := New(4, 3, []Point{p}); !errors.Is(err, ErrOutOfBounds) {
			t.Fatalf("New with %v: expected ErrOutOfBounds, got %v", p, err)
		}
	}
	if _, err := New(0, 3, nil); !errors.Is(err, ErrDimensions) {
		t.Fatalf("expected ErrDimensions for zero width, got %v", err)
	}
}

func TestFromCells(t *testing.T) {
	m := [][]Cell{
		{Dead, Alive, Dead},
		{Dead, Alive, Dead},
	}
	g, err := FromCells(m)
	if err != nil {
		t.Fatal(err)
	}
	if g.Width() != 3 || g.Height() != 2 {
		t.Fatalf("expected 3x2 grid, got %dx%d", g.Width(), g.Height())
	}
	if g.Population() != 2 {
		t.Fatalf("expected population 2, got %d", g.Population())
	}

	rows := g.Rows()
	rows[0][1] = Dead
	if !g.At(0, 1).IsAlive() {
		t.Fatal("Rows must return a copy")
	}

	if _, err := FromCells([][]Cell{{Dead, Dead}, {Dead}}); !errors.Is(err, ErrDimensions) {
		t.Fatalf("expected ErrDimensions for ragged rows, got %v", err)
	}
	if _, err := FromCells(nil); !errors.Is(err, ErrDimensions) {
		t.Fatalf("expected ErrDimensions for empty matrix, got %v", err)
	}
}

func TestStepKeepsSize(t *testing.T) {
	g := mustGrid(t, 7, 3, Point{1, 1})
	g.Step()
	if g.Size() != (Size{W: 7, H: 3}) || len(g.Cells()) != 21 {
		t.Fatalf("step must not resize the grid, got %+v with %d cells", g.Size(), len(g.Cells()))
	}
	if g.Population() != 0 {
		t.Fatalf("isolated cell should die, population %d", g.Population())
	}
}
