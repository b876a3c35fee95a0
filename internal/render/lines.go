package render

// Line is a segment in viewport pixel coordinates.
type Line struct {
	X0, Y0, X1, Y1 float32
}

// GridLines returns the vertical then horizontal grid lines for a viewport.
// A line is drawn at every multiple of cellSize that still leaves room for a
// whole cell, and spans the full viewport.
func GridLines(viewW, viewH, cellSize int) []Line {
	if cellSize <= 0 {
		return nil
	}
	var lines []Line
	for x := 0; x+cellSize <= viewW; x += cellSize {
		lines = append(lines, Line{X0: float32(x), Y0: 0, X1: float32(x), Y1: float32(viewH)})
	}
	for y := 0; y+cellSize <= viewH; y += cellSize {
		lines = append(lines, Line{X0: 0, Y0: float32(y), X1: float32(viewW), Y1: float32(y)})
	}
	return lines
}

// CellOrigin returns the top-left pixel of the cell at (row, col).
func CellOrigin(row, col, cellSize int) (x, y int) {
	return col * cellSize, row * cellSize
}
