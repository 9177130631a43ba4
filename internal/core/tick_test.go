package core

import "testing"

func conwayEngine(t *testing.T) *Engine {
	t.Helper()
	e, err := NewEngine(Conway())
	if err != nil {
		t.Fatalf("NewEngine: %v", err)
	}
	return e
}

func setAlive(g *Grid, cells ...Coord) {
	for _, c := range cells {
		g.CellAt(c.Row, c.Col).SetAlive(true)
	}
}

func expectAlive(t *testing.T, g *Grid, label string, want ...Coord) {
	t.Helper()
	expects := map[Coord]bool{}
	for _, c := range want {
		expects[c] = true
	}
	g.Each(func(c *Cell) {
		shouldBeAlive := expects[Coord{Row: c.Row(), Col: c.Col()}]
		if c.Alive() != shouldBeAlive {
			t.Fatalf("%s: cell (%d,%d) alive=%v, expected %v", label, c.Row(), c.Col(), c.Alive(), shouldBeAlive)
		}
	})
}

func TestAdvanceEmptyGridStaysEmpty(t *testing.T) {
	g := NewGrid(8, 9)
	e := conwayEngine(t)
	for i := 0; i < 5; i++ {
		if changed := e.Advance(g); changed != 0 {
			t.Fatalf("tick %d changed %d cells on an empty grid", i, changed)
		}
	}
	if g.Population() != 0 {
		t.Fatalf("population = %d, want 0", g.Population())
	}
}

func TestBlockStillLife(t *testing.T) {
	g := NewGrid(6, 6)
	block := []Coord{{2, 2}, {2, 3}, {3, 2}, {3, 3}}
	setAlive(g, block...)
	e := conwayEngine(t)
	if changed := e.Advance(g); changed != 0 {
		t.Fatalf("block changed %d cells", changed)
	}
	expectAlive(t, g, "block", block...)
}

func TestBlinkerOscillation(t *testing.T) {
	g := NewGrid(5, 5)
	setAlive(g, Coord{2, 1}, Coord{2, 2}, Coord{2, 3})
	e := conwayEngine(t)

	e.Advance(g)
	expectAlive(t, g, "after first step", Coord{1, 2}, Coord{2, 2}, Coord{3, 2})

	e.Advance(g)
	expectAlive(t, g, "after second step", Coord{2, 1}, Coord{2, 2}, Coord{2, 3})
}

func TestBlinkerAcrossSeam(t *testing.T) {
	g := NewGrid(6, 6)
	setAlive(g, Coord{0, 5}, Coord{0, 0}, Coord{0, 1})
	e := conwayEngine(t)
	e.Advance(g)
	expectAlive(t, g, "wrapped blinker", Coord{5, 0}, Coord{0, 0}, Coord{1, 0})
}

func TestStaticCellsNeverEvolve(t *testing.T) {
	g := NewGrid(6, 6)
	// A lone locked live cell would die of isolation.
	lonely := g.CellAt(0, 0)
	lonely.SetAlive(true)
	lonely.ToggleStatic()
	// A locked dead cell with three live neighbours would be born.
	setAlive(g, Coord{3, 2}, Coord{3, 3}, Coord{3, 4})
	nursery := g.CellAt(2, 3)
	nursery.ToggleStatic()

	e := conwayEngine(t)
	for i := 0; i < 6; i++ {
		e.Advance(g)
		if !lonely.Alive() {
			t.Fatalf("tick %d killed a locked cell", i)
		}
		if nursery.Alive() {
			t.Fatalf("tick %d revived a locked cell", i)
		}
	}
}

func TestStaticCellsStillCountAsNeighbours(t *testing.T) {
	g := NewGrid(5, 5)
	setAlive(g, Coord{1, 1}, Coord{1, 3})
	g.CellAt(1, 1).ToggleStatic()
	g.CellAt(3, 2).SetAlive(true)
	g.CellAt(3, 2).ToggleStatic()

	e := conwayEngine(t)
	e.Advance(g)
	if !g.CellAt(2, 2).Alive() {
		t.Fatal("dead cell with three live neighbours (two locked) was not born")
	}
}

func TestStageDoesNotMutate(t *testing.T) {
	g := NewGrid(5, 5)
	setAlive(g, Coord{2, 1}, Coord{2, 2}, Coord{2, 3})
	g.CellAt(0, 0).ToggleStatic()
	before := g.Categories(nil)

	var snap Snapshot
	snap.Stage(g, Conway())
	after := g.Categories(nil)
	for i := range before {
		if before[i] != after[i] {
			t.Fatalf("Stage mutated cell %d", i)
		}
	}
	if snap.At(0, 0) != StagedUnchanged {
		t.Fatalf("static cell staged %v", snap.At(0, 0))
	}
	if snap.At(1, 2) != StagedAlive || snap.At(2, 1) != StagedDead || snap.At(4, 4) != StagedDead {
		t.Fatal("blinker staged incorrectly")
	}
}

func TestCommitCountsFlips(t *testing.T) {
	g := NewGrid(5, 5)
	setAlive(g, Coord{2, 1}, Coord{2, 2}, Coord{2, 3})
	e := conwayEngine(t)
	// Two ends die and two cells are born; the centre survives.
	if changed := e.Advance(g); changed != 4 {
		t.Fatalf("blinker step changed %d cells, want 4", changed)
	}
}

func TestEngineSetRule(t *testing.T) {
	if e, err := NewEngine(Rule{SurviveMin: 9, SurviveMax: 9}); err == nil || e != nil {
		t.Fatalf("NewEngine accepted survive min 9: %v", e)
	}
	e := conwayEngine(t)
	if err := e.SetRule(Rule{SurviveMin: 5, SurviveMax: 1}); err == nil {
		t.Fatal("SetRule accepted an inverted range")
	}
	seeds := Rule{SurviveMin: 0, SurviveMax: 0, BirthMin: 2, BirthMax: 2}
	if err := e.SetRule(seeds); err != nil {
		t.Fatalf("SetRule(%v): %v", seeds, err)
	}

	// Under B2/S0 a domino spawns a pair of cells on either side and
	// the originals die because they each have one neighbour.
	g := NewGrid(6, 6)
	setAlive(g, Coord{2, 2}, Coord{2, 3})
	e.Advance(g)
	expectAlive(t, g, "B2/S0", Coord{1, 2}, Coord{1, 3}, Coord{3, 2}, Coord{3, 3})
}
