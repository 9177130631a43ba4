package core

import "fmt"

// CoordError is raised when a cell is addressed outside the grid. It is a
// programming error and surfaces as a panic from CellAt.
type CoordError struct {
	Row, Col int
	Size     Size
}

func (e *CoordError) Error() string {
	return fmt.Sprintf("core: cell (%d,%d) outside %dx%d grid", e.Row, e.Col, e.Size.H, e.Size.W)
}

// Grid is a fixed-size toroidal field of cells stored in row-major order.
type Grid struct {
	h, w  int
	cells []Cell
}

// NewGrid allocates an h x w grid with every cell dead and unlocked. Both
// dimensions must be positive.
func NewGrid(h, w int) *Grid {
	if h <= 0 || w <= 0 {
		panic(fmt.Sprintf("core: invalid grid dimensions %dx%d", h, w))
	}
	g := &Grid{h: h, w: w, cells: make([]Cell, h*w)}
	for row := 0; row < h; row++ {
		for col := 0; col < w; col++ {
			c := &g.cells[row*w+col]
			c.row, c.col = row, col
		}
	}
	return g
}

// Size returns the grid dimensions.
func (g *Grid) Size() Size { return Size{W: g.w, H: g.h} }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.h }

// Width returns the number of columns.
func (g *Grid) Width() int { return g.w }

// InBounds reports whether (row, col) addresses a cell without wrapping.
func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.h && col >= 0 && col < g.w
}

// CellAt returns the cell at (row, col). Coordinates are not wrapped; an
// out-of-range request panics with a *CoordError.
func (g *Grid) CellAt(row, col int) *Cell {
	if !g.InBounds(row, col) {
		panic(&CoordError{Row: row, Col: col, Size: g.Size()})
	}
	return &g.cells[row*g.w+col]
}

// Wrap applies toroidal wrapping to the provided coordinates.
func (g *Grid) Wrap(row, col int) (int, int) {
	row = (row%g.h + g.h) % g.h
	col = (col%g.w + g.w) % g.w
	return row, col
}

// NeighborAliveCount counts the live cells among the eight toroidal
// neighbours of (row, col).
func (g *Grid) NeighborAliveCount(row, col int) int {
	n := 0
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			if dr == 0 && dc == 0 {
				continue
			}
			r, c := g.Wrap(row+dr, col+dc)
			if g.cells[r*g.w+c].alive {
				n++
			}
		}
	}
	return n
}

// Population returns the number of live cells.
func (g *Grid) Population() int {
	n := 0
	for i := range g.cells {
		if g.cells[i].alive {
			n++
		}
	}
	return n
}

// Each calls fn for every cell in row-major order.
func (g *Grid) Each(fn func(c *Cell)) {
	for i := range g.cells {
		fn(&g.cells[i])
	}
}

// Categories writes the display category of every cell into dst in
// row-major order, growing it when needed, and returns the result.
func (g *Grid) Categories(dst []Category) []Category {
	if cap(dst) < len(g.cells) {
		dst = make([]Category, len(g.cells))
	}
	dst = dst[:len(g.cells)]
	for i := range g.cells {
		dst[i] = g.cells[i].Category()
	}
	return dst
}

// Clear kills and unlocks every cell.
func (g *Grid) Clear() {
	for i := range g.cells {
		g.cells[i].alive = false
		g.cells[i].static = false
	}
}

// Scatter randomises the alive flag of every unlocked cell, making each
// alive with the given probability. Locked cells keep their state.
func (g *Grid) Scatter(rng *RNG, density float64) {
	for i := range g.cells {
		c := &g.cells[i]
		if c.static {
			continue
		}
		c.alive = rng.Chance(density)
	}
}
