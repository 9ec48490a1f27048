package grid

import "fmt"

// Grid is a dense width×height matrix of Cells addressed by Coords.
// It owns all cell state; the sole wall mutation path is CarvePassage,
// which keeps the symmetry invariant (a's wall facing b is open iff
// b's wall facing a is open) true after every call.
type Grid struct {
	width  int
	height int
	cells  []Cell
}

// NewGrid returns a fully walled grid of the given dimensions.
// Non-positive width or height is a configuration error: the call fails
// with ErrInvalidDimension and allocates nothing.
//
// Complexity: O(W×H) time and memory.
func NewGrid(width, height int) (*Grid, error) {
	// Validate before any allocation; sizes are never clamped or corrected.
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: got %dx%d", ErrInvalidDimension, width, height)
	}

	return &Grid{
		width:  width,
		height: height,
		cells:  make([]Cell, width*height),
	}, nil
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.height }

// Size returns the total number of cells.
func (g *Grid) Size() int { return g.width * g.height }

// InBounds reports whether c lies inside the grid extent.
func (g *Grid) InBounds(c Coords) bool {
	return c.X >= 0 && c.X < g.width && c.Y >= 0 && c.Y < g.height
}

// index maps a coordinate to its slot in the flat cell slice (row-major).
// Callers must have checked bounds already.
func (g *Grid) index(c Coords) int {
	return c.Y*g.width + c.X
}

// CellAt returns the cell at c, or ErrOutOfBounds outside the extent.
func (g *Grid) CellAt(c Coords) (Cell, error) {
	if !g.InBounds(c) {
		return 0, fmt.Errorf("%w: %s in %dx%d", ErrOutOfBounds, c, g.width, g.height)
	}
	return g.cells[g.index(c)], nil
}

// CarvePassage opens the wall between two adjacent in-bounds cells a and b.
// Both facing walls are opened together, or neither is: the call validates
// everything up front and only then touches cell state, so no partial
// mutation can be observed.
//
// Errors: ErrOutOfBounds if either coordinate is outside the grid,
// ErrNotAdjacent if the cells do not share a side.
func (g *Grid) CarvePassage(a, b Coords) error {
	// 1. Both endpoints must exist.
	if !g.InBounds(a) {
		return fmt.Errorf("%w: %s in %dx%d", ErrOutOfBounds, a, g.width, g.height)
	}
	if !g.InBounds(b) {
		return fmt.Errorf("%w: %s in %dx%d", ErrOutOfBounds, b, g.width, g.height)
	}

	// 2. Resolve the direction a→b; fails for diagonal or distant pairs.
	dir, ok := directionTo(a, b)
	if !ok {
		return fmt.Errorf("%w: %s and %s", ErrNotAdjacent, a, b)
	}

	// 3. Open both facing walls. Symmetry holds by construction.
	g.cells[g.index(a)] = g.cells[g.index(a)].open(dir)
	g.cells[g.index(b)] = g.cells[g.index(b)].open(dir.Opposite())

	return nil
}

// IsOpen reports whether the passage from c in direction d is carved.
// Coordinates outside the grid read as walled, which lets renderers and
// search probe borders without bounds bookkeeping.
func (g *Grid) IsOpen(c Coords, d Direction) bool {
	if !g.InBounds(c) {
		return false
	}
	return g.cells[g.index(c)].IsOpen(d)
}

// Mark sets the visited marker on the cell at c. The marker is generation
// bookkeeping only; it does not affect wall state or Cell.Bits.
func (g *Grid) Mark(c Coords) error {
	if !g.InBounds(c) {
		return fmt.Errorf("%w: %s in %dx%d", ErrOutOfBounds, c, g.width, g.height)
	}
	g.cells[g.index(c)] |= visitedBit
	return nil
}

// IsMarked reports whether the cell at c carries the visited marker.
// Out-of-bounds coordinates read as unmarked.
func (g *Grid) IsMarked(c Coords) bool {
	if !g.InBounds(c) {
		return false
	}
	return g.cells[g.index(c)]&visitedBit != 0
}

// Neighbors returns the in-bounds topological neighbors of c (independent
// of wall state), in the fixed North, South, East, West order.
func (g *Grid) Neighbors(c Coords) []Coords {
	out := make([]Coords, 0, sideCount)
	for _, d := range Directions {
		if n := c.Move(d); g.InBounds(n) {
			out = append(out, n)
		}
	}
	return out
}

// UnvisitedNeighbors returns the subset of Neighbors(c) not yet marked
// visited, in the same fixed order.
func (g *Grid) UnvisitedNeighbors(c Coords) []Coords {
	out := make([]Coords, 0, sideCount)
	for _, d := range Directions {
		if n := c.Move(d); g.InBounds(n) && !g.IsMarked(n) {
			out = append(out, n)
		}
	}
	return out
}

// directionTo resolves the direction of one step from a to b.
// The second result is false when a and b are not side-adjacent.
func directionTo(a, b Coords) (Direction, bool) {
	switch {
	case b.X == a.X && b.Y == a.Y-1:
		return North, true
	case b.X == a.X && b.Y == a.Y+1:
		return South, true
	case b.X == a.X+1 && b.Y == a.Y:
		return East, true
	case b.X == a.X-1 && b.Y == a.Y:
		return West, true
	}
	return 0, false
}
