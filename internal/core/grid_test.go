package core

import (
	"errors"
	"testing"
)

func TestNewGridStartsDeadAndUnlocked(t *testing.T) {
	g := NewGrid(4, 6)
	if g.Height() != 4 || g.Width() != 6 {
		t.Fatalf("size = %dx%d, want 4x6", g.Height(), g.Width())
	}
	g.Each(func(c *Cell) {
		if c.Alive() || c.Static() {
			t.Fatalf("cell (%d,%d) alive=%v static=%v", c.Row(), c.Col(), c.Alive(), c.Static())
		}
		if got := g.CellAt(c.Row(), c.Col()); got != c {
			t.Fatalf("cell (%d,%d) not stored at its own coordinates", c.Row(), c.Col())
		}
	})
}

func TestNewGridRejectsEmptyDimensions(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("NewGrid(0, 3) did not panic")
		}
	}()
	NewGrid(0, 3)
}

func TestCellAtOutOfRangePanics(t *testing.T) {
	g := NewGrid(3, 3)
	for _, tc := range []Coord{{-1, 0}, {0, -1}, {3, 0}, {0, 3}} {
		func() {
			defer func() {
				r := recover()
				err, ok := r.(error)
				var coordErr *CoordError
				if !ok || !errors.As(err, &coordErr) {
					t.Fatalf("CellAt(%d,%d) recovered %v, want *CoordError", tc.Row, tc.Col, r)
				}
				if coordErr.Row != tc.Row || coordErr.Col != tc.Col {
					t.Fatalf("CoordError = %+v, want row %d col %d", coordErr, tc.Row, tc.Col)
				}
			}()
			g.CellAt(tc.Row, tc.Col)
		}()
	}
}

func TestToroidalNeighbors(t *testing.T) {
	g := NewGrid(5, 7)
	g.CellAt(4, 6).SetAlive(true) // diagonal across the corner
	if got := g.NeighborAliveCount(0, 0); got != 1 {
		t.Fatalf("corner neighbour count = %d, want 1", got)
	}

	g.CellAt(0, 6).SetAlive(true) // left wrap
	g.CellAt(4, 0).SetAlive(true) // top wrap
	if got := g.NeighborAliveCount(0, 0); got != 3 {
		t.Fatalf("neighbour count with wraps = %d, want 3", got)
	}

	// The cell itself is never counted.
	g.CellAt(0, 0).SetAlive(true)
	if got := g.NeighborAliveCount(0, 0); got != 3 {
		t.Fatalf("neighbour count counted self: %d", got)
	}
}

func TestNeighborCountOnTinyGrid(t *testing.T) {
	// On a 1x1 torus every offset wraps back onto the cell itself.
	g := NewGrid(1, 1)
	g.CellAt(0, 0).SetAlive(true)
	if got := g.NeighborAliveCount(0, 0); got != 8 {
		t.Fatalf("1x1 neighbour count = %d, want 8", got)
	}
}

func TestWrap(t *testing.T) {
	g := NewGrid(4, 5)
	cases := []struct{ row, col, wantRow, wantCol int }{
		{-1, -1, 3, 4},
		{4, 5, 0, 0},
		{-9, 11, 3, 1},
		{2, 3, 2, 3},
	}
	for _, tc := range cases {
		r, c := g.Wrap(tc.row, tc.col)
		if r != tc.wantRow || c != tc.wantCol {
			t.Fatalf("Wrap(%d,%d) = (%d,%d), want (%d,%d)", tc.row, tc.col, r, c, tc.wantRow, tc.wantCol)
		}
	}
}

func TestCategories(t *testing.T) {
	g := NewGrid(1, 4)
	g.CellAt(0, 1).ToggleStatic()
	g.CellAt(0, 2).ToggleAlive()
	g.CellAt(0, 3).ToggleAlive()
	g.CellAt(0, 3).ToggleStatic()

	got := g.Categories(nil)
	want := []Category{CategoryDeadUnlocked, CategoryDeadLocked, CategoryAliveUnlocked, CategoryAliveLocked}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("category[%d] = %v, want %v", i, got[i], want[i])
		}
	}
	if reused := g.Categories(got); &reused[0] != &got[0] {
		t.Fatal("Categories did not reuse a large enough buffer")
	}
}

func TestToggleStaticKeepsAlive(t *testing.T) {
	g := NewGrid(2, 2)
	c := g.CellAt(1, 1)
	c.ToggleAlive()
	c.ToggleStatic()
	if !c.Alive() || !c.Static() {
		t.Fatalf("alive=%v static=%v after toggles", c.Alive(), c.Static())
	}
	c.ToggleStatic()
	if !c.Alive() || c.Static() {
		t.Fatalf("unlocking changed alive: alive=%v static=%v", c.Alive(), c.Static())
	}
}

func TestClearAndScatter(t *testing.T) {
	g := NewGrid(16, 16)
	locked := g.CellAt(3, 3)
	locked.ToggleStatic()

	g.Scatter(NewRNG(7), 1)
	if locked.Alive() {
		t.Fatal("Scatter changed a locked cell")
	}
	if got, want := g.Population(), 16*16-1; got != want {
		t.Fatalf("population after full scatter = %d, want %d", got, want)
	}

	g.Clear()
	if g.Population() != 0 || locked.Static() {
		t.Fatalf("Clear left population %d, locked=%v", g.Population(), locked.Static())
	}

	a, b := NewGrid(16, 16), NewGrid(16, 16)
	a.Scatter(NewRNG(42), 0.3)
	b.Scatter(NewRNG(42), 0.3)
	ca, cb := a.Categories(nil), b.Categories(nil)
	for i := range ca {
		if ca[i] != cb[i] {
			t.Fatalf("Scatter with equal seeds diverged at %d", i)
		}
	}
}
