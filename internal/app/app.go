//go:build ebiten

package app

import (
	"time"

	"locklife/internal/render"
	"locklife/internal/sims/life"
	"locklife/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts a life session to the ebiten.Game interface.
type Game struct {
	life    *life.Life
	painter *render.GridPainter
	hud     *ui.HUD
	overlay *ui.Overlay

	cellPx int
	title  string
}

// New constructs a Game for the provided session.
func New(l *life.Life, hudWidth int) *Game {
	cfg := l.Config()
	return &Game{
		life:    l,
		painter: render.NewGridPainter(l.Size(), cfg.CellSize, cfg.Palette),
		hud:     ui.NewHUD(l, hudWidth),
		overlay: ui.NewOverlay(cfg.CellSize),
		cellPx:  cfg.CellSize,
	}
}

// Update samples input once and lets the session tick if it is due.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	now := time.Now()
	frame := life.Frame{
		TogglePause: inpututil.IsKeyJustPressed(ebiten.KeySpace),
		StepOnce:    inpututil.IsKeyJustPressed(ebiten.KeyN),
		Clear:       inpututil.IsKeyJustPressed(ebiten.KeyR) || inpututil.IsKeyJustPressed(ebiten.KeyC),
		Scatter:     inpututil.IsKeyJustPressed(ebiten.KeyS),
		Seed:        now.UnixNano(),
	}

	gridW, _ := g.painter.Size()
	g.hud.Update(gridW)

	mx, my := ebiten.CursorPosition()
	frame.Pointer = g.life.Controller().SampleAt(mx, my,
		ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
		ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight),
	)
	g.overlay.Update(frame.Pointer.Coord, frame.Pointer.InGrid)

	g.life.Update(frame, now)
	if title := g.life.Title(); title != g.title {
		ebiten.SetWindowTitle(title)
		g.title = title
	}
	return nil
}

// Draw renders the grid, the hover overlay and the HUD.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.life.Grid())
	g.overlay.Draw(screen)
	gridW, _ := g.painter.Size()
	g.hud.Draw(screen, gridW, g.cellPx)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	w, h := g.painter.Size()
	return w + g.hud.Width(), h
}
