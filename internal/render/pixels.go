package render

import (
	"image/color"

	"conway/pkg/life"
)

// Palette holds the colours used to draw a grid.
type Palette struct {
	Alive color.Color
	Dead  color.Color
	Line  color.Color
}

// DefaultPalette draws black live cells on white with light gray grid lines.
func DefaultPalette() Palette {
	return Palette{
		Alive: color.Black,
		Dead:  color.White,
		Line:  color.RGBA{R: 200, G: 200, B: 200, A: 255},
	}
}

// Snapshot is the read-only view of a generation the renderer needs.
type Snapshot interface {
	Size() life.Size
	Cells() []life.Cell
}

// fillBinaryRGBA converts cell states into one RGBA pixel per cell in buf.
func fillBinaryRGBA(buf []byte, cells []life.Cell, on, off color.Color) {
	rOn, gOn, bOn, aOn := on.RGBA()
	rOff, gOff, bOff, aOff := off.RGBA()
	for i, c := range cells {
		base := i * 4
		if c.IsAlive() {
			buf[base+0] = uint8(rOn >> 8)
			buf[base+1] = uint8(gOn >> 8)
			buf[base+2] = uint8(bOn >> 8)
			buf[base+3] = uint8(aOn >> 8)
			continue
		}
		buf[base+0] = uint8(rOff >> 8)
		buf[base+1] = uint8(gOff >> 8)
		buf[base+2] = uint8(bOff >> 8)
		buf[base+3] = uint8(aOff >> 8)
	}
}
