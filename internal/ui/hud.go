//go:build ebiten

package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

const (
	hudPadding    = 6
	hudLineHeight = 16
	hudCharWidth  = 7
)

// HUD renders a small status panel in the top-left corner.
type HUD struct {
	background color.Color
	foreground color.Color
}

// NewHUD returns a HUD with a translucent dark backdrop.
func NewHUD() *HUD {
	return &HUD{
		background: color.RGBA{R: 0, G: 0, B: 0, A: 160},
		foreground: color.White,
	}
}

// Draw renders the status lines over dst.
func (h *HUD) Draw(dst *ebiten.Image, s Status) {
	if h == nil {
		return
	}
	lines := s.Lines()
	width := 0
	for _, l := range lines {
		width = max(width, len(l)*hudCharWidth)
	}
	vector.DrawFilledRect(dst, 0, 0,
		float32(width+2*hudPadding), float32(len(lines)*hudLineHeight+hudPadding),
		h.background, false)
	for i, l := range lines {
		text.Draw(dst, l, basicfont.Face7x13, hudPadding, (i+1)*hudLineHeight, h.foreground)
	}
}
