package algorithms

import (
	"math/rand"

	"github.com/knossos-go/knossos/grid"
)

// BinaryTree carves by opening, for every cell, exactly one passage toward
// one of two fixed directions (default North/East); cells on the far edges
// fall back to the only available option, and the corner where both are
// missing stays put. The result is a perfect maze with a strong diagonal
// bias: two full corridors run along the biased edges.
//
// One of the fastest algorithms: a single pass, no state beyond the grid.
//
// Complexity: O(W×H) time, O(1) extra space.
type BinaryTree struct {
	// Bias selects the two carving directions; zero value is BiasNorthEast.
	Bias Bias
}

// Name returns "binary-tree".
func (BinaryTree) Name() string { return NameBinaryTree }

// Carve runs the algorithm over g. The cell scan order is structural
// (row-major); a supplied start is bounds-validated and otherwise unused.
func (b BinaryTree) Carve(g *grid.Grid, rng *rand.Rand, start *grid.Coords) error {
	if err := validateInputs(g, rng, start); err != nil {
		return err
	}

	vert, horiz := b.Bias.dirs()

	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			c := grid.Coords{X: x, Y: y}
			_ = g.Mark(c)

			// Collect the in-bounds options among the two biased directions.
			var options [2]grid.Direction
			n := 0
			if g.InBounds(c.Move(vert)) {
				options[n] = vert
				n++
			}
			if g.InBounds(c.Move(horiz)) {
				options[n] = horiz
				n++
			}
			if n == 0 {
				// The corner cell opposite the bias carves nothing.
				continue
			}

			d := options[0]
			if n == 2 {
				d = options[rng.Intn(n)]
			}
			if err := g.CarvePassage(c, c.Move(d)); err != nil {
				return err
			}
		}
	}
	return nil
}
