package algorithms

import (
	"math/rand"

	"github.com/knossos-go/knossos/grid"
)

// Eller generates the maze one row at a time using disjoint-set membership:
// adjacent same-row cells are randomly merged into sets, then every set
// carves at least one vertical passage into the next row before the row is
// abandoned. The last row merges all remaining sets. Memory stays
// proportional to the union-find state, which makes the algorithm suitable
// for effectively unbounded heights.
//
// Complexity: O(W×H) time, O(W×H) space for the flat union-find.
type Eller struct{}

// Name returns "eller".
func (Eller) Name() string { return NameEller }

// Carve runs the algorithm over g. The row order is structural; a supplied
// start is bounds-validated and otherwise unused.
func (Eller) Carve(g *grid.Grid, rng *rand.Rand, start *grid.Coords) error {
	if err := validateInputs(g, rng, start); err != nil {
		return err
	}

	width := g.Width()
	sets := newDisjointSet(g.Size())
	index := func(c grid.Coords) int { return c.Y*width + c.X }

	for y := 0; y < g.Height(); y++ {
		lastRow := y == g.Height()-1

		// 1. Horizontal merges: randomly join adjacent cells of different
		//    sets; the last row joins every remaining pair to guarantee
		//    connectivity.
		for x := 0; x < width; x++ {
			_ = g.Mark(grid.Coords{X: x, Y: y})
			if x == width-1 {
				continue
			}
			a := grid.Coords{X: x, Y: y}
			b := grid.Coords{X: x + 1, Y: y}
			if sets.find(index(a)) == sets.find(index(b)) {
				continue
			}
			if lastRow || coin(rng) {
				if err := g.CarvePassage(a, b); err != nil {
					return err
				}
				sets.union(index(a), index(b))
			}
		}
		if lastRow {
			break
		}

		// 2. Group the row's cells by set root, in first-appearance order
		//    so the iteration stays deterministic.
		roots := make([]int, 0, width)
		members := make(map[int][]int, width)
		for x := 0; x < width; x++ {
			r := sets.find(index(grid.Coords{X: x, Y: y}))
			if _, seen := members[r]; !seen {
				roots = append(roots, r)
			}
			members[r] = append(members[r], x)
		}

		// 3. Vertical links: each set carves south from a random non-empty
		//    subset of its members, at least one per set.
		for _, r := range roots {
			carved := false
			for _, x := range members[r] {
				if coin(rng) {
					if err := carveSouth(g, sets, x, y, width); err != nil {
						return err
					}
					carved = true
				}
			}
			if !carved {
				xs := members[r]
				if err := carveSouth(g, sets, xs[rng.Intn(len(xs))], y, width); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

// carveSouth opens the vertical passage below (x,y) and merges the sets.
// The cell below is untouched so far, hence always a different set.
func carveSouth(g *grid.Grid, sets *disjointSet, x, y, width int) error {
	a := grid.Coords{X: x, Y: y}
	b := grid.Coords{X: x, Y: y + 1}
	if err := g.CarvePassage(a, b); err != nil {
		return err
	}
	sets.union(y*width+x, (y+1)*width+x)
	return nil
}
