//go:build ebiten

package render

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// GridPainter draws a generation as cellSize squares with grid lines on top.
type GridPainter struct {
	w, h     int
	cellSize int
	palette  Palette
	img      *ebiten.Image
	buf      []byte
}

// NewGridPainter allocates a painter for a grid of w×h cells.
func NewGridPainter(w, h, cellSize int, palette Palette) *GridPainter {
	gp := &GridPainter{w: w, h: h, cellSize: cellSize, palette: palette, buf: make([]byte, 4*w*h)}
	gp.img = ebiten.NewImage(w, h)
	return gp
}

// Draw uploads the snapshot into the painter image, scales each cell to
// cellSize pixels and overlays the grid lines for the destination bounds.
func (gp *GridPainter) Draw(dst *ebiten.Image, snap Snapshot) {
	dst.Fill(gp.palette.Dead)

	cells := snap.Cells()
	if len(cells) == gp.w*gp.h {
		fillBinaryRGBA(gp.buf, cells, gp.palette.Alive, gp.palette.Dead)
		gp.img.WritePixels(gp.buf)

		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(float64(gp.cellSize), float64(gp.cellSize))
		dst.DrawImage(gp.img, op)
	}

	b := dst.Bounds()
	for _, l := range GridLines(b.Dx(), b.Dy(), gp.cellSize) {
		vector.StrokeLine(dst, l.X0, l.Y0, l.X1, l.Y1, 1, gp.palette.Line, false)
	}
}

// Size returns the grid dimensions the painter was built for.
func (gp *GridPainter) Size() (int, int) { return gp.w, gp.h }
