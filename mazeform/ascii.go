package mazeform

import (
	"strings"

	"github.com/knossos-go/knossos/grid"
	"github.com/knossos-go/knossos/maze"
)

// AsciiNarrow draws the maze in its most compact textual form: one
// character of corridor per cell column.
//
//	 _______
//	|  ___| |
//	|_  |  _|
//	| | |_  |
//	|_______|
type AsciiNarrow struct{}

// Render implements Renderer.
//
// The first line is the top border; each following line folds a cell row
// and its south walls together. The east separator between two cells is
// drawn as "_" only when neither side continues downward, which keeps the
// floor line unbroken.
func (AsciiNarrow) Render(m *maze.Maze) (string, error) {
	if m == nil {
		return "", ErrNilMaze
	}

	var b strings.Builder
	b.WriteByte(' ')
	b.WriteString(strings.Repeat("_", m.Width()*2-1))
	b.WriteString(" \n")

	for y := 0; y < m.Height(); y++ {
		b.WriteByte('|')
		for x := 0; x < m.Width(); x++ {
			c := grid.Coords{X: x, Y: y}
			if m.IsOpen(c, grid.South) {
				b.WriteByte(' ')
			} else {
				b.WriteByte('_')
			}
			switch {
			case !m.IsOpen(c, grid.East):
				b.WriteByte('|')
			case m.IsOpen(c, grid.South) || m.IsOpen(c.Move(grid.East), grid.South):
				b.WriteByte(' ')
			default:
				b.WriteByte('_')
			}
		}
		b.WriteByte('\n')
	}
	return b.String(), nil
}

// AsciiBroad draws the maze with three-character-wide passages and "+"
// joints at every wall intersection.
//
//	+---+---+---+
//	|       |   |
//	+---+   +   +
//	|           |
//	+---+---+---+
type AsciiBroad struct{}

// Render implements Renderer. Each cell row expands to two output lines:
// the corridor line with east walls, then the floor line with south walls.
func (AsciiBroad) Render(m *maze.Maze) (string, error) {
	if m == nil {
		return "", ErrNilMaze
	}

	var b strings.Builder
	b.WriteByte('+')
	b.WriteString(strings.Repeat("---+", m.Width()))
	b.WriteByte('\n')

	for y := 0; y < m.Height(); y++ {
		corridor := strings.Builder{}
		floor := strings.Builder{}
		corridor.WriteByte('|')
		floor.WriteByte('+')

		for x := 0; x < m.Width(); x++ {
			c := grid.Coords{X: x, Y: y}
			corridor.WriteString("   ")
			if m.IsOpen(c, grid.East) {
				corridor.WriteByte(' ')
			} else {
				corridor.WriteByte('|')
			}
			if m.IsOpen(c, grid.South) {
				floor.WriteString("   ")
			} else {
				floor.WriteString("---")
			}
			floor.WriteByte('+')
		}

		b.WriteString(corridor.String())
		b.WriteByte('\n')
		b.WriteString(floor.String())
		b.WriteByte('\n')
	}
	return b.String(), nil
}
