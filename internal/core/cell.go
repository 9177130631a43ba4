package core

// Category is the display classification of a cell. Renderers map each
// category to a colour and never inspect raw cell flags.
type Category uint8

const (
	CategoryDeadUnlocked Category = iota
	CategoryDeadLocked
	CategoryAliveUnlocked
	CategoryAliveLocked
)

// NumCategories is the number of distinct display categories.
const NumCategories = 4

func (c Category) String() string {
	switch c {
	case CategoryDeadUnlocked:
		return "dead"
	case CategoryDeadLocked:
		return "dead-locked"
	case CategoryAliveUnlocked:
		return "alive"
	case CategoryAliveLocked:
		return "alive-locked"
	default:
		return "unknown"
	}
}

// Cell is a single grid position. Row and column are fixed when the owning
// grid is built.
type Cell struct {
	row, col int
	alive    bool
	static   bool
}

// Row returns the cell's row index.
func (c *Cell) Row() int { return c.row }

// Col returns the cell's column index.
func (c *Cell) Col() int { return c.col }

// Alive reports whether the cell is alive.
func (c *Cell) Alive() bool { return c.alive }

// Static reports whether the cell is locked against evolution.
func (c *Cell) Static() bool { return c.static }

// ToggleAlive flips the alive flag.
func (c *Cell) ToggleAlive() { c.alive = !c.alive }

// ToggleStatic locks or unlocks the cell. The alive flag is untouched.
func (c *Cell) ToggleStatic() { c.static = !c.static }

// SetAlive overwrites the alive flag.
func (c *Cell) SetAlive(v bool) { c.alive = v }

// Category classifies the cell for display.
func (c *Cell) Category() Category {
	switch {
	case c.alive && c.static:
		return CategoryAliveLocked
	case c.alive:
		return CategoryAliveUnlocked
	case c.static:
		return CategoryDeadLocked
	default:
		return CategoryDeadUnlocked
	}
}
