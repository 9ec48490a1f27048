package algorithms

import (
	"math/rand"

	"github.com/knossos-go/knossos/grid"
)

// GrowingTree maintains an active-cell list: it repeatedly picks a cell
// from the list by the configured selection policy, carves into a random
// unvisited neighbor, and drops cells that have run out of unvisited
// neighbors. The policy shapes the maze: SelectRandom approximates Prim's
// texture, SelectNewest degenerates into Recursive Backtracking.
//
// Complexity: O(W×H) time amortized, O(W×H) space for the active list.
type GrowingTree struct {
	// Policy picks the next active cell; zero value is SelectRandom.
	Policy SelectionPolicy
}

// Name returns "growing-tree".
func (GrowingTree) Name() string { return NameGrowingTree }

// Carve runs the algorithm over g, seeding the active list with start when
// supplied, otherwise with a random cell.
func (t GrowingTree) Carve(g *grid.Grid, rng *rand.Rand, start *grid.Coords) error {
	origin, err := resolveStart(g, rng, start)
	if err != nil {
		return err
	}

	active := make([]grid.Coords, 0, g.Size())
	active = append(active, origin)
	_ = g.Mark(origin)

	for len(active) > 0 {
		i := len(active) - 1
		if t.Policy == SelectRandom {
			i = rng.Intn(len(active))
		}
		cur := active[i]

		nbs := g.UnvisitedNeighbors(cur)
		if len(nbs) == 0 {
			// Exhausted: remove from the active list, preserving order so
			// SelectNewest keeps its LIFO meaning.
			active = append(active[:i], active[i+1:]...)
			continue
		}

		next := nbs[rng.Intn(len(nbs))]
		if err = g.CarvePassage(cur, next); err != nil {
			return err
		}
		_ = g.Mark(next)
		active = append(active, next)
	}
	return nil
}
