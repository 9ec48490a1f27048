package maze

import "github.com/knossos-go/knossos/grid"

// IsValid reports whether the maze is perfect: every cell reachable from
// every other through open walls (connected) and exactly width×height−1
// open inter-cell connections (acyclic). Mazes produced by Build always
// satisfy this; the check exists for grids wrapped via FromGrid.
//
// Complexity: O(W×H) time and space (one traversal plus a wall scan).
func (m *Maze) IsValid() bool {
	total := m.grid.Size()

	// Count open connections; each carved passage is stored on both cells.
	open := 0
	for y := 0; y < m.Height(); y++ {
		for x := 0; x < m.Width(); x++ {
			c, err := m.grid.CellAt(grid.Coords{X: x, Y: y})
			if err != nil {
				return false
			}
			open += 4 - c.WallsCount()
		}
	}
	if open%2 != 0 || open/2 != total-1 {
		return false
	}

	// Flood from the origin through open walls.
	seen := make(map[grid.Coords]bool, total)
	stack := []grid.Coords{{X: 0, Y: 0}}
	seen[stack[0]] = true
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, d := range grid.Directions {
			if !m.grid.IsOpen(cur, d) {
				continue
			}
			if n := cur.Move(d); !seen[n] {
				seen[n] = true
				stack = append(stack, n)
			}
		}
	}
	return len(seen) == total
}
