package render

import (
	"bufio"
	"io"
)

const (
	textAlive = "██"
	textDead  = "  "
)

// WriteText prints a generation as rows of blocks, one line per grid row.
func WriteText(w io.Writer, snap Snapshot) error {
	size := snap.Size()
	cells := snap.Cells()
	bw := bufio.NewWriter(w)
	for row := 0; row < size.H; row++ {
		for _, c := range cells[row*size.W : (row+1)*size.W] {
			if c.IsAlive() {
				bw.WriteString(textAlive)
			} else {
				bw.WriteString(textDead)
			}
		}
		bw.WriteByte('\n')
	}
	bw.WriteByte('\n')
	return bw.Flush()
}
