// Package grid models a rectangular maze field as a dense matrix of
// wall-bitmask cells, with bounds-checked navigation and a single,
// symmetry-preserving mutation entry point.
//
// What:
//
//   - Coords addresses a cell by column (X) and row (Y); row 0 is the top.
//   - Cell packs four wall flags (North, South, East, West) into one byte;
//     a set bit means the passage in that direction is open.
//   - Grid owns width×height Cells and exposes CarvePassage as the only way
//     to change wall state: it opens the facing walls of two adjacent cells
//     atomically, so wall symmetry can never be violated by a caller.
//
// Why:
//
//   - Maze carvers mutate the grid through a deliberately narrow contract
//     and stay free of wall bookkeeping.
//   - Renderers and pathfinding read the same compact bitmask state through
//     total, bounds-safe queries.
//
// Complexity:
//
//   - NewGrid: O(W×H) time and memory.
//   - CellAt / CarvePassage / Mark / IsOpen: O(1).
//   - Neighbors / UnvisitedNeighbors: O(1) (at most four candidates).
//
// Errors:
//
//   - ErrInvalidDimension: width or height is not positive.
//   - ErrOutOfBounds: coordinate outside the grid extent.
//   - ErrNotAdjacent: CarvePassage given cells that do not share a side.
package grid
