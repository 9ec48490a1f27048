package algorithms

import (
	"math/rand"

	"github.com/knossos-go/knossos/grid"
)

// Prim grows the maze from a single cell by maintaining a frontier of edges
// bordering the visited set: it repeatedly removes a random frontier edge,
// carves it if it still leads to an unvisited cell, and adds the new cell's
// bordering edges to the frontier. The unweighted randomized variant of the
// classic minimum-spanning-tree algorithm; random edge selection replaces
// the min-heap.
//
// Complexity: O(W×H) time amortized, O(W×H) space for the frontier.
type Prim struct{}

// Name returns "prim".
func (Prim) Name() string { return NamePrim }

// Carve runs the algorithm over g, growing from start when supplied,
// otherwise from a random cell.
func (Prim) Carve(g *grid.Grid, rng *rand.Rand, start *grid.Coords) error {
	origin, err := resolveStart(g, rng, start)
	if err != nil {
		return err
	}

	_ = g.Mark(origin)

	// Seed the frontier with the origin's bordering edges.
	frontier := make([]edge, 0, 2*g.Size())
	for _, n := range g.Neighbors(origin) {
		frontier = append(frontier, edge{from: origin, to: n})
	}

	for len(frontier) > 0 {
		// Remove a uniformly random frontier edge (swap-remove; order is
		// irrelevant because selection is uniform).
		i := rng.Intn(len(frontier))
		e := frontier[i]
		frontier[i] = frontier[len(frontier)-1]
		frontier = frontier[:len(frontier)-1]

		if g.IsMarked(e.to) {
			// Stale edge: its target joined the tree through another wall.
			continue
		}

		if err = g.CarvePassage(e.from, e.to); err != nil {
			return err
		}
		_ = g.Mark(e.to)

		for _, n := range g.Neighbors(e.to) {
			if !g.IsMarked(n) {
				frontier = append(frontier, edge{from: e.to, to: n})
			}
		}
	}
	return nil
}
