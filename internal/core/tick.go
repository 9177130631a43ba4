package core

// Staged is the value a tick intends to write into one cell.
type Staged uint8

const (
	// StagedUnchanged marks a static cell the commit must not touch.
	StagedUnchanged Staged = iota
	StagedDead
	StagedAlive
)

// Snapshot holds the staged next generation of a grid.
type Snapshot struct {
	w, h int
	next []Staged
}

// At returns the staged value for (row, col).
func (s *Snapshot) At(row, col int) Staged { return s.next[row*s.w+col] }

func (s *Snapshot) resize(size Size) {
	s.w, s.h = size.W, size.H
	if cap(s.next) < s.w*s.h {
		s.next = make([]Staged, s.w*s.h)
	}
	s.next = s.next[:s.w*s.h]
}

// Stage fills the snapshot from g without modifying it. Every neighbour
// count reads the grid as it was before the call.
func (s *Snapshot) Stage(g *Grid, rule Rule) {
	s.resize(g.Size())
	for row := 0; row < g.h; row++ {
		for col := 0; col < g.w; col++ {
			idx := row*g.w + col
			c := &g.cells[idx]
			if c.static {
				s.next[idx] = StagedUnchanged
				continue
			}
			if rule.Next(c.alive, g.NeighborAliveCount(row, col)) {
				s.next[idx] = StagedAlive
			} else {
				s.next[idx] = StagedDead
			}
		}
	}
}

// Commit writes the staged values into g and returns how many cells
// changed. Static cells are skipped, including cells locked after staging.
func (s *Snapshot) Commit(g *Grid) int {
	changed := 0
	for i, st := range s.next {
		c := &g.cells[i]
		if st == StagedUnchanged || c.static {
			continue
		}
		alive := st == StagedAlive
		if c.alive != alive {
			changed++
		}
		c.SetAlive(alive)
	}
	return changed
}

// Engine advances a grid one generation at a time using a fixed rule.
type Engine struct {
	rule Rule
	snap Snapshot
}

// NewEngine returns an engine applying rule.
func NewEngine(rule Rule) (*Engine, error) {
	if err := rule.Validate(); err != nil {
		return nil, err
	}
	return &Engine{rule: rule}, nil
}

// Rule returns the active rule.
func (e *Engine) Rule() Rule { return e.rule }

// SetRule replaces the active rule.
func (e *Engine) SetRule(rule Rule) error {
	if err := rule.Validate(); err != nil {
		return err
	}
	e.rule = rule
	return nil
}

// Advance stages the next generation of g and commits it, returning the
// number of cells that flipped.
func (e *Engine) Advance(g *Grid) int {
	e.snap.Stage(g, e.rule)
	return e.snap.Commit(g)
}
