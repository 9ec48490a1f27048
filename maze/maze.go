package maze

import (
	"fmt"

	"github.com/knossos-go/knossos/grid"
)

// Maze is an assembled orthogonal maze: the finished grid plus facts
// derived once at assembly time. It is immutable — no method mutates wall
// state — so formatters and pathfinding may share it freely.
type Maze struct {
	grid  *grid.Grid
	ends  []grid.Coords
	start *grid.Coords
	goal  *grid.Coords
}

// FromGrid wraps an externally carved grid into a Maze, computing the end
// list. Ownership of g transfers to the maze: the caller must not carve it
// afterwards. The grid is wrapped as-is; use IsValid to check whether it
// actually forms a perfect maze.
func FromGrid(g *grid.Grid) (*Maze, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	return assemble(g, nil, nil), nil
}

// assemble freezes a carved grid plus the optional start/goal of the
// generation request into a Maze, scanning for ends row-major so the
// cached list is already in deterministic order.
func assemble(g *grid.Grid, start, goal *grid.Coords) *Maze {
	m := &Maze{grid: g, start: start, goal: goal}
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			c := grid.Coords{X: x, Y: y}
			if cell, err := g.CellAt(c); err == nil && cell.IsEnd() {
				m.ends = append(m.ends, c)
			}
		}
	}
	return m
}

// Width returns the number of columns.
func (m *Maze) Width() int { return m.grid.Width() }

// Height returns the number of rows.
func (m *Maze) Height() int { return m.grid.Height() }

// CellAt returns the cell at c, or grid.ErrOutOfBounds outside the extent.
func (m *Maze) CellAt(c grid.Coords) (grid.Cell, error) {
	return m.grid.CellAt(c)
}

// IsOpen reports whether the passage from c in direction d is carved.
// Coordinates outside the maze read as walled.
func (m *Maze) IsOpen(c grid.Coords, d grid.Direction) bool {
	return m.grid.IsOpen(c, d)
}

// Ends returns the maze ends — cells with exactly three walls — in
// row-major order. The returned slice is a copy; callers may keep or sort
// it freely.
func (m *Maze) Ends() []grid.Coords {
	out := make([]grid.Coords, len(m.ends))
	copy(out, m.ends)
	return out
}

// Start returns the generation start coordinate, if one was requested.
func (m *Maze) Start() (grid.Coords, bool) {
	if m.start == nil {
		return grid.Coords{}, false
	}
	return *m.start, true
}

// Goal returns the designated goal coordinate, if one was requested.
func (m *Maze) Goal() (grid.Coords, bool) {
	if m.goal == nil {
		return grid.Coords{}, false
	}
	return *m.goal, true
}

// String renders a compact summary; renderers in mazeform produce the
// actual drawings.
func (m *Maze) String() string {
	return fmt.Sprintf("maze %dx%d (%d ends)", m.Width(), m.Height(), len(m.ends))
}
