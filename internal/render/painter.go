//go:build ebiten

package render

import (
	"github.com/hajimehoshi/ebiten/v2"

	"locklife/internal/core"
)

// GridPainter rasterises a grid into a single RGBA image.
type GridPainter struct {
	size    core.Size
	cellPx  int
	palette Palette
	img     *ebiten.Image
	buf     []byte
	cats    []core.Category
}

// NewGridPainter allocates a painter for a grid of the given size.
func NewGridPainter(size core.Size, cellPx int, palette Palette) *GridPainter {
	gp := &GridPainter{
		size:    size,
		cellPx:  cellPx,
		palette: palette,
		buf:     make([]byte, BufferLen(size, cellPx)),
	}
	gp.img = ebiten.NewImage(size.W*cellPx, size.H*cellPx)
	return gp
}

// Blit uploads the grid's display categories and draws them at the origin.
func (gp *GridPainter) Blit(dst *ebiten.Image, g *core.Grid) {
	if g.Size() != gp.size {
		return
	}
	gp.cats = g.Categories(gp.cats)
	FillCells(gp.buf, gp.cats, gp.size, gp.cellPx, gp.palette)
	gp.img.WritePixels(gp.buf)
	dst.DrawImage(gp.img, &ebiten.DrawImageOptions{})
}

// Size returns the dimensions of the underlying image in pixels.
func (gp *GridPainter) Size() (int, int) { return gp.size.W * gp.cellPx, gp.size.H * gp.cellPx }
