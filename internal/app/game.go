//go:build ebiten

package app

import (
	"conway/internal/config"
	"conway/internal/core"
	"conway/internal/render"
	"conway/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts a Session to the ebiten.Game interface. Each Update advances
// at most one generation when the fixed cadence fires; each Draw renders the
// current generation, grid lines and HUD.
type Game struct {
	session *Session
	painter *render.GridPainter
	hud     *ui.HUD
	timer   *core.FixedStep

	viewW, viewH int
	paused       bool
	tickOnce     bool
}

// New constructs a Game for the provided session.
func New(s *Session, cfg *config.Config) *Game {
	size := s.Grid().Size()
	return &Game{
		session: s,
		painter: render.NewGridPainter(size.W, size.H, cfg.CellSize, render.DefaultPalette()),
		hud:     ui.NewHUD(),
		timer:   core.NewFixedStep(cfg.Interval),
		viewW:   cfg.Viewport.Width,
		viewH:   cfg.Viewport.Height,
	}
}

// Update handles per-frame input and advances the simulation on cadence.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}

	due := g.timer.ShouldStep()
	if (!g.paused && due) || g.tickOnce {
		g.tickOnce = false
		return g.session.Advance()
	}
	return nil
}

// Draw renders the current generation.
func (g *Game) Draw(screen *ebiten.Image) {
	grid := g.session.Grid()
	g.painter.Draw(screen, grid)
	g.hud.Draw(screen, ui.Status{
		Generation: grid.Generation(),
		Population: grid.Population(),
		Interval:   g.timer.Interval(),
		Paused:     g.paused,
	})
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.viewW, g.viewH
}
