package algorithms

import (
	"math/rand"

	"github.com/knossos-go/knossos/grid"
)

// AldousBroder performs an unbiased random walk over the grid, carving a
// passage the first time it enters an unvisited cell, until every cell has
// been visited. Slow — the walk revisits known territory freely — but the
// payoff is a uniformly random spanning tree: every possible maze of the
// given dimensions is equally likely.
//
// Complexity: O(W×H) expected with a large constant (cover time of the
// grid walk), O(1) extra space.
type AldousBroder struct{}

// Name returns "aldous-broder".
func (AldousBroder) Name() string { return NameAldousBroder }

// Carve runs the algorithm over g, starting the walk at start when
// supplied, otherwise at a random cell.
func (AldousBroder) Carve(g *grid.Grid, rng *rand.Rand, start *grid.Coords) error {
	cur, err := resolveStart(g, rng, start)
	if err != nil {
		return err
	}

	_ = g.Mark(cur)
	visited := 1

	for visited < g.Size() {
		// Step to a uniformly random topological neighbor.
		nbs := g.Neighbors(cur)
		next := nbs[rng.Intn(len(nbs))]

		// Carve only on first entry; revisits just move the walker.
		if !g.IsMarked(next) {
			if err = g.CarvePassage(cur, next); err != nil {
				return err
			}
			_ = g.Mark(next)
			visited++
		}
		cur = next
	}
	return nil
}
