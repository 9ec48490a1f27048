// Package grid defines core types and sentinel errors for the grid
// subpackage of github.com/knossos-go/knossos.
package grid

import (
	"errors"
	"fmt"
)

// Sentinel errors for grid operations.
var (
	// ErrInvalidDimension indicates a non-positive width or height.
	ErrInvalidDimension = errors.New("grid: width and height must be positive")
	// ErrOutOfBounds indicates a coordinate outside the grid extent.
	ErrOutOfBounds = errors.New("grid: coordinate outside grid extent")
	// ErrNotAdjacent indicates two cells that do not share a side.
	ErrNotAdjacent = errors.New("grid: cells are not adjacent")
)

// Direction selects one of the four orthogonal sides of a cell.
// The constant values double as the wall-bit positions inside Cell,
// so a Direction can be used directly as a bitmask.
type Direction uint8

const (
	// North is the side facing row y-1 (row 0 renders at the top).
	North Direction = 1 << iota
	// South is the side facing row y+1.
	South
	// East is the side facing column x+1.
	East
	// West is the side facing column x-1.
	West
)

// Directions lists all four directions in the fixed scan order used
// throughout the library. The order is part of the determinism contract:
// algorithms index into it with a seeded RNG.
var Directions = [4]Direction{North, South, East, West}

// Opposite returns the direction facing back at d.
func (d Direction) Opposite() Direction {
	switch d {
	case North:
		return South
	case South:
		return North
	case East:
		return West
	case West:
		return East
	}
	return d
}

// Offset returns the coordinate delta (dx, dy) of one step in direction d.
func (d Direction) Offset() (int, int) {
	switch d {
	case North:
		return 0, -1
	case South:
		return 0, 1
	case East:
		return 1, 0
	case West:
		return -1, 0
	}
	return 0, 0
}

// String returns the canonical lowercase name of the direction.
func (d Direction) String() string {
	switch d {
	case North:
		return "north"
	case South:
		return "south"
	case East:
		return "east"
	case West:
		return "west"
	}
	return fmt.Sprintf("direction(%d)", uint8(d))
}

// Coords identifies a cell by column (X) and row (Y). Equality is
// structural; ordering is row-major via Less.
type Coords struct {
	X, Y int
}

// Move returns the coordinate one step from c in direction d.
// It performs no bounds checking; the Grid decides what is in range.
func (c Coords) Move(d Direction) Coords {
	dx, dy := d.Offset()
	return Coords{X: c.X + dx, Y: c.Y + dy}
}

// Adjacent reports whether c and o differ by exactly 1 in exactly one axis.
func (c Coords) Adjacent(o Coords) bool {
	dx := c.X - o.X
	dy := c.Y - o.Y
	if dx < 0 {
		dx = -dx
	}
	if dy < 0 {
		dy = -dy
	}
	return dx+dy == 1
}

// Less orders coordinates row-major: lower Y first, then lower X.
// Used as the deterministic tie-breaker wherever cells are ranked.
func (c Coords) Less(o Coords) bool {
	if c.Y != o.Y {
		return c.Y < o.Y
	}
	return c.X < o.X
}

// String renders the coordinate as "(x,y)".
func (c Coords) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}
