package algorithms

import (
	"math/rand"

	"github.com/knossos-go/knossos/grid"
)

// Wilson builds the maze from loop-erased random walks: starting from an
// unvisited cell, it walks randomly — erasing any loop the moment the walk
// revisits its own path — until it hits the visited set, then carves the
// resulting loop-free path in one go. Like Aldous–Broder it samples
// uniformly random spanning trees, but it speeds up dramatically as the
// visited region grows because walks terminate on first contact.
//
// Walk roots are taken in row-major order; the uniform-spanning-tree
// property of the algorithm is independent of that choice, so the scan
// costs nothing in quality and keeps progress strictly monotonic.
//
// Complexity: O(W×H) expected with a moderate constant, O(W×H) space for
// the walk path.
type Wilson struct{}

// Name returns "wilson".
func (Wilson) Name() string { return NameWilson }

// Carve runs the algorithm over g. A supplied start seeds the visited set
// (the first cell of the maze); otherwise a random cell does.
func (Wilson) Carve(g *grid.Grid, rng *rand.Rand, start *grid.Coords) error {
	first, err := resolveStart(g, rng, start)
	if err != nil {
		return err
	}
	_ = g.Mark(first)

	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			root := grid.Coords{X: x, Y: y}
			if g.IsMarked(root) {
				continue
			}
			if err = carveWalk(g, rng, root); err != nil {
				return err
			}
		}
	}
	return nil
}

// carveWalk performs one loop-erased random walk from root to the visited
// set and carves the surviving path into the maze.
func carveWalk(g *grid.Grid, rng *rand.Rand, root grid.Coords) error {
	path := []grid.Coords{root}
	// position of each path member, for O(1) loop detection
	position := map[grid.Coords]int{root: 0}

	cur := root
	for !g.IsMarked(cur) {
		nbs := g.Neighbors(cur)
		next := nbs[rng.Intn(len(nbs))]

		if j, onPath := position[next]; onPath {
			// Loop: erase everything after the first visit of next.
			for _, p := range path[j+1:] {
				delete(position, p)
			}
			path = path[:j+1]
		} else {
			path = append(path, next)
			position[next] = len(path) - 1
		}
		cur = next
	}

	// Carve the loop-free path; its last cell is already in the maze.
	for i := 0; i+1 < len(path); i++ {
		if err := g.CarvePassage(path[i], path[i+1]); err != nil {
			return err
		}
		_ = g.Mark(path[i])
	}
	return nil
}
