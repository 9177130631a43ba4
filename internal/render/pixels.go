package render

import (
	"image/color"

	"locklife/internal/core"
)

// BufferLen returns the RGBA byte count for a grid drawn at cellPx pixels
// per cell.
func BufferLen(size core.Size, cellPx int) int {
	return 4 * size.W * cellPx * size.H * cellPx
}

// FillCells rasterises row-major categories into buf. Each cell covers a
// (cellPx-1) square at (col*cellPx, row*cellPx); the remaining row and
// column of every cell keep the grid colour so grid lines show through.
func FillCells(buf []byte, cats []core.Category, size core.Size, cellPx int, p Palette) {
	if cellPx <= 0 || len(cats) != size.W*size.H || len(buf) < BufferLen(size, cellPx) {
		return
	}
	stride := size.W * cellPx * 4
	fill := cellPx - 1
	if cellPx == 1 {
		fill = 1
	}
	for y := 0; y < size.H*cellPx; y++ {
		row := buf[y*stride : (y+1)*stride]
		for x := 0; x < size.W*cellPx; x++ {
			putRGBA(row[x*4:], p.Grid)
		}
	}
	for r := 0; r < size.H; r++ {
		for c := 0; c < size.W; c++ {
			col := p.Color(cats[r*size.W+c])
			for dy := 0; dy < fill; dy++ {
				base := (r*cellPx+dy)*stride + c*cellPx*4
				for dx := 0; dx < fill; dx++ {
					putRGBA(buf[base+dx*4:], col)
				}
			}
		}
	}
}

func putRGBA(dst []byte, c color.RGBA) {
	dst[0] = c.R
	dst[1] = c.G
	dst[2] = c.B
	dst[3] = c.A
}
