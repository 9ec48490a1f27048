package algorithms

import (
	"math/rand"

	"github.com/knossos-go/knossos/grid"
)

// HuntAndKill random-walks from the current cell, carving into unvisited
// neighbors, until it corners itself. It then enters hunt mode: a row-major
// scan for the first unvisited cell adjacent to visited territory, carves
// into that territory, and resumes the walk from there.
//
// Produces long, winding corridors similar to Recursive Backtracking but
// needs no stack; the hunt scan makes it somewhat slower on large grids.
//
// Complexity: O((W×H)²) worst case for the repeated hunts, O(1) extra space.
type HuntAndKill struct{}

// Name returns "hunt-and-kill".
func (HuntAndKill) Name() string { return NameHuntAndKill }

// Carve runs the algorithm over g, walking from start when supplied,
// otherwise from a random cell.
func (HuntAndKill) Carve(g *grid.Grid, rng *rand.Rand, start *grid.Coords) error {
	cur, err := resolveStart(g, rng, start)
	if err != nil {
		return err
	}

	_ = g.Mark(cur)
	visited := 1

	for visited < g.Size() {
		// Kill phase: keep walking while unvisited neighbors exist.
		if nbs := g.UnvisitedNeighbors(cur); len(nbs) > 0 {
			next := nbs[rng.Intn(len(nbs))]
			if err = g.CarvePassage(cur, next); err != nil {
				return err
			}
			_ = g.Mark(next)
			visited++
			cur = next
			continue
		}

		// Hunt phase: first unvisited cell bordering the visited region.
		c, neighbor, found := hunt(g, rng)
		if !found {
			// Unreachable on a rectangular grid; guards the loop regardless.
			break
		}
		if err = g.CarvePassage(c, neighbor); err != nil {
			return err
		}
		_ = g.Mark(c)
		visited++
		cur = c
	}
	return nil
}

// hunt scans row-major for the first unvisited cell with at least one
// visited neighbor and picks a random such neighbor to carve into.
func hunt(g *grid.Grid, rng *rand.Rand) (grid.Coords, grid.Coords, bool) {
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			c := grid.Coords{X: x, Y: y}
			if g.IsMarked(c) {
				continue
			}
			var visited []grid.Coords
			for _, n := range g.Neighbors(c) {
				if g.IsMarked(n) {
					visited = append(visited, n)
				}
			}
			if len(visited) == 0 {
				continue
			}
			return c, visited[rng.Intn(len(visited))], true
		}
	}
	return grid.Coords{}, grid.Coords{}, false
}
