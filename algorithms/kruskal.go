package algorithms

import (
	"math/rand"

	"github.com/knossos-go/knossos/grid"
)

// Kruskal considers every potential inter-cell edge in random order and
// carves an edge iff its endpoints belong to different connected components
// of the union-find state, merging them. The unweighted randomized variant
// of the classic minimum-spanning-tree algorithm: shuffling the edge list
// replaces sorting by weight.
//
// Steps:
//  1. Enumerate all East/South candidate edges (each inter-cell wall once).
//  2. Fisher–Yates shuffle the list with the seeded rng.
//  3. Sweep once, carving edges whose endpoints have different set roots
//     and merging; stop after W×H−1 carves.
//
// Complexity: O(W×H · α(W×H)) time, O(W×H) space for edges and sets.
type Kruskal struct{}

// Name returns "kruskal".
func (Kruskal) Name() string { return NameKruskal }

// Carve runs the algorithm over g. Edge order is the only randomness; a
// supplied start is bounds-validated and otherwise unused.
func (Kruskal) Carve(g *grid.Grid, rng *rand.Rand, start *grid.Coords) error {
	if err := validateInputs(g, rng, start); err != nil {
		return err
	}

	width := g.Width()
	index := func(c grid.Coords) int { return c.Y*width + c.X }

	// 1. Every inter-cell wall exactly once: East and South per cell.
	edges := make([]edge, 0, 2*g.Size())
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < width; x++ {
			c := grid.Coords{X: x, Y: y}
			if e := c.Move(grid.East); g.InBounds(e) {
				edges = append(edges, edge{from: c, to: e})
			}
			if s := c.Move(grid.South); g.InBounds(s) {
				edges = append(edges, edge{from: c, to: s})
			}
		}
	}

	// 2. Random edge order.
	shuffleEdgesInPlace(edges, rng)

	// 3. Union-find sweep.
	sets := newDisjointSet(g.Size())
	carved := 0
	for _, e := range edges {
		if !sets.union(index(e.from), index(e.to)) {
			// Same component: carving would close a cycle.
			continue
		}
		if err := g.CarvePassage(e.from, e.to); err != nil {
			return err
		}
		_ = g.Mark(e.from)
		_ = g.Mark(e.to)
		carved++
		if carved == g.Size()-1 {
			break
		}
	}
	return nil
}
