package grid

import (
	"fmt"
	"math/bits"
)

// Cell is the wall state of a single maze cell, packed into one byte.
//
// Bits 0..3 hold the four passage flags in Direction order
// (North=0b0001, South=0b0010, East=0b0100, West=0b1000); a set bit means
// the passage on that side is open. The zero value is a fully walled cell.
// Bit 4 is the visited marker managed by Grid.Mark during generation and is
// excluded from Bits, so the interchange mask stays stable for renderers
// and host-engine storage.
type Cell uint8

const (
	// wallMask selects the four passage bits.
	wallMask Cell = 0b1111
	// visitedBit is the fixed-position generation marker.
	visitedBit Cell = 0b10000
)

// sideCount is the number of walls of an orthogonal cell.
const sideCount = 4

// IsOpen reports whether the passage in direction d is open.
func (c Cell) IsOpen(d Direction) bool {
	return c&Cell(d) != 0
}

// IsWall reports whether the side in direction d is still walled.
func (c Cell) IsWall(d Direction) bool {
	return !c.IsOpen(d)
}

// WallsCount returns the number of closed sides, in the range 0..4.
func (c Cell) WallsCount() int {
	return sideCount - bits.OnesCount8(uint8(c&wallMask))
}

// IsEnd reports whether the cell is a maze end (dead end): exactly one
// open side, i.e. three walls, after generation completes.
func (c Cell) IsEnd() bool {
	return c.WallsCount() == sideCount-1
}

// Bits returns the raw four-bit passage mask with the fixed per-direction
// bit assignment. This is the stable interchange value for external
// consumers; the visited marker never leaks into it.
func (c Cell) Bits() uint8 {
	return uint8(c & wallMask)
}

// String renders the passage mask as fixed-width binary, e.g. "0101"
// for a cell with North and East open.
func (c Cell) String() string {
	return fmt.Sprintf("%04b", c.Bits())
}

// open sets the passage bit for direction d. Unexported on purpose:
// wall state changes only through Grid.CarvePassage, which updates both
// facing cells together.
func (c Cell) open(d Direction) Cell {
	return c | Cell(d)
}
