//go:build ebiten

package ui

import (
	"image/color"

	"locklife/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Overlay outlines the cell under the pointer.
type Overlay struct {
	cellPx int
	show   bool
	hover  core.Coord
	inGrid bool
}

// NewOverlay constructs a new overlay instance.
func NewOverlay(cellPx int) *Overlay {
	return &Overlay{cellPx: cellPx, show: true, hover: core.NoCoord}
}

// Update toggles visibility on H and records the hovered cell.
func (o *Overlay) Update(hover core.Coord, inGrid bool) {
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		o.show = !o.show
	}
	o.hover, o.inGrid = hover, inGrid
}

// Draw strokes the outline of the hovered cell.
func (o *Overlay) Draw(screen *ebiten.Image) {
	if !o.show || !o.inGrid || o.cellPx < 3 {
		return
	}
	size := float32(o.cellPx - 1)
	x := float32(o.hover.Col * o.cellPx)
	y := float32(o.hover.Row * o.cellPx)
	vector.StrokeRect(screen, x+0.5, y+0.5, size-1, size-1, 1, color.RGBA{R: 255, G: 200, B: 0, A: 255}, false)
}
