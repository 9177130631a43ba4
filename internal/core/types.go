package core

// Size describes the dimensions of a simulation grid.
type Size struct {
	W int
	H int
}

// Coord addresses a single cell by row and column.
type Coord struct {
	Row int
	Col int
}

// NoCoord is the sentinel used when no cell has been acted upon.
var NoCoord = Coord{Row: -1, Col: -1}
