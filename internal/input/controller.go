// Package input turns pointer samples into cell mutations.
//
// Each button remembers the cell it last toggled while it stays held, so
// holding a button over one cell toggles it once and dragging paints a trail
// of distinct cells.
package input

import "locklife/internal/core"

// Button identifies a pointer button.
type Button int

const (
	// ButtonPrimary toggles the alive flag.
	ButtonPrimary Button = iota
	// ButtonSecondary toggles the static lock.
	ButtonSecondary

	numButtons
)

// Sample is one reading of the pointer.
type Sample struct {
	Coord     core.Coord
	InGrid    bool
	Primary   bool
	Secondary bool
}

// Result reports which toggles a sample triggered.
type Result struct {
	ToggledAlive  bool
	ToggledStatic bool
}

// Controller applies pointer samples to a grid.
type Controller struct {
	grid     *core.Grid
	cellSize int
	last     [numButtons]core.Coord
}

// NewController binds a controller to grid. cellSize is the edge length
// of one cell in pixels.
func NewController(grid *core.Grid, cellSize int) *Controller {
	if cellSize <= 0 {
		cellSize = 1
	}
	c := &Controller{grid: grid, cellSize: cellSize}
	c.Reset()
	return c
}

// Reset forgets the last acted coordinate of every button.
func (c *Controller) Reset() {
	for i := range c.last {
		c.last[i] = core.NoCoord
	}
}

// Last returns the coordinate b last acted on, or core.NoCoord.
func (c *Controller) Last(b Button) core.Coord { return c.last[b] }

// PixelToCoord maps a pointer position in pixels to the cell under it.
// Positions left of or above the grid, or past its far edges, report false.
func (c *Controller) PixelToCoord(x, y int) (core.Coord, bool) {
	if x < 0 || y < 0 {
		return core.NoCoord, false
	}
	coord := core.Coord{Row: y / c.cellSize, Col: x / c.cellSize}
	if !c.grid.InBounds(coord.Row, coord.Col) {
		return core.NoCoord, false
	}
	return coord, true
}

// SampleAt builds a Sample from a pixel position and button states.
func (c *Controller) SampleAt(x, y int, primary, secondary bool) Sample {
	coord, ok := c.PixelToCoord(x, y)
	return Sample{Coord: coord, InGrid: ok, Primary: primary, Secondary: secondary}
}

// Handle applies one sample. A held button outside the grid does nothing
// and keeps its last acted coordinate.
func (c *Controller) Handle(s Sample) Result {
	var res Result
	res.ToggledAlive = c.press(ButtonPrimary, s.Primary, s)
	res.ToggledStatic = c.press(ButtonSecondary, s.Secondary, s)
	return res
}

func (c *Controller) press(b Button, held bool, s Sample) bool {
	if !held {
		c.last[b] = core.NoCoord
		return false
	}
	if !s.InGrid || s.Coord == c.last[b] {
		return false
	}
	cell := c.grid.CellAt(s.Coord.Row, s.Coord.Col)
	switch b {
	case ButtonPrimary:
		cell.ToggleAlive()
	case ButtonSecondary:
		cell.ToggleStatic()
	}
	c.last[b] = s.Coord
	return true
}
