package mazeform

import (
	"strings"

	"github.com/knossos-go/knossos/grid"
	"github.com/knossos-go/knossos/maze"
)

// GameMap renders the maze as a tile lattice of wall and passage runes, a
// format game engines can consume directly as a collision map. Each cell
// interior occupies Span×Span passage tiles and every wall occupies one
// tile, so a W×H maze yields a (W·(Span+1)+1)×(H·(Span+1)+1) character
// field.
//
// With Span 2 and the defaults:
//
//	#######
//	#..#..#
//	#..#..#
//	#..#..#
//	#######
type GameMap struct {
	// Span is the passage width in tiles. Must be at least 1.
	Span int
	// Passage is the walkable tile rune.
	Passage rune
	// Wall is the blocking tile rune.
	Wall rune
	// WithStartGoal marks the start cell with 'S' and the goal cell with
	// 'G' at the top-left tile of each cell interior. The maze's recorded
	// start and goal are used when present; otherwise the start falls back
	// to the top-left cell and the goal to the bottom-right cell.
	WithStartGoal bool
}

// DefaultGameMap returns the stock configuration: span 2, '.' passages,
// '#' walls, no markers.
func DefaultGameMap() GameMap {
	return GameMap{Span: 2, Passage: '.', Wall: '#'}
}

// Render implements Renderer. Returns ErrInvalidSpan when Span < 1.
func (f GameMap) Render(m *maze.Maze) (string, error) {
	if m == nil {
		return "", ErrNilMaze
	}
	if f.Span < 1 {
		return "", ErrInvalidSpan
	}

	s := f.Span
	rows := m.Height()*(s+1) + 1
	cols := m.Width()*(s+1) + 1

	// 1. Fill the whole field with wall tiles.
	field := make([][]rune, rows)
	for i := range field {
		field[i] = make([]rune, cols)
		for j := range field[i] {
			field[i][j] = f.Wall
		}
	}

	// 2. Carve cell interiors, then punch through east and south walls
	//    where the maze has open passages. North and west openings are
	//    covered by the neighbouring cell's pass.
	for y := 0; y < m.Height(); y++ {
		for x := 0; x < m.Width(); x++ {
			c := grid.Coords{X: x, Y: y}
			top, left := y*(s+1)+1, x*(s+1)+1
			for dy := 0; dy < s; dy++ {
				for dx := 0; dx < s; dx++ {
					field[top+dy][left+dx] = f.Passage
				}
			}
			if m.IsOpen(c, grid.East) {
				col := (x + 1) * (s + 1)
				for dy := 0; dy < s; dy++ {
					field[top+dy][col] = f.Passage
				}
			}
			if m.IsOpen(c, grid.South) {
				row := (y + 1) * (s + 1)
				for dx := 0; dx < s; dx++ {
					field[row][left+dx] = f.Passage
				}
			}
		}
	}

	// 3. Optional start/goal markers.
	if f.WithStartGoal {
		start := grid.Coords{}
		if c, ok := m.Start(); ok {
			start = c
		}
		goal := grid.Coords{X: m.Width() - 1, Y: m.Height() - 1}
		if c, ok := m.Goal(); ok {
			goal = c
		}
		field[start.Y*(s+1)+1][start.X*(s+1)+1] = 'S'
		field[goal.Y*(s+1)+1][goal.X*(s+1)+1] = 'G'
	}

	var b strings.Builder
	for _, row := range field {
		b.WriteString(string(row))
		b.WriteByte('\n')
	}
	return b.String(), nil
}
