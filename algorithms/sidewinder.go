package algorithms

import (
	"math/rand"

	"github.com/knossos-go/knossos/grid"
)

// Sidewinder processes rows left to right, grouping cells into runs.
// Within a run it flips a coin: continue east, or terminate the run and
// carve north from a random cell of the run. The northernmost row has no
// northern neighbor and always carves east only, forming one straight
// corridor along the top.
//
// Complexity: O(W×H) time, O(1) extra space.
type Sidewinder struct{}

// Name returns "sidewinder".
func (Sidewinder) Name() string { return NameSidewinder }

// Carve runs the algorithm over g. The scan order is structural; a supplied
// start is bounds-validated and otherwise unused.
func (Sidewinder) Carve(g *grid.Grid, rng *rand.Rand, start *grid.Coords) error {
	if err := validateInputs(g, rng, start); err != nil {
		return err
	}

	for y := 0; y < g.Height(); y++ {
		runStart := 0
		for x := 0; x < g.Width(); x++ {
			c := grid.Coords{X: x, Y: y}
			_ = g.Mark(c)
			atEastEdge := x == g.Width()-1

			// Row 0 cannot carve north: it runs east the whole way.
			if y == 0 {
				if !atEastEdge {
					if err := g.CarvePassage(c, c.Move(grid.East)); err != nil {
						return err
					}
				}
				continue
			}

			// Terminate the run at the east edge, or on a coin flip.
			if atEastEdge || coin(rng) {
				// Carve north from a random member of the run.
				rx := runStart + rng.Intn(x-runStart+1)
				member := grid.Coords{X: rx, Y: y}
				if err := g.CarvePassage(member, member.Move(grid.North)); err != nil {
					return err
				}
				runStart = x + 1
				continue
			}

			if err := g.CarvePassage(c, c.Move(grid.East)); err != nil {
				return err
			}
		}
	}
	return nil
}
