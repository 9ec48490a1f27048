package algorithms_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/knossos-go/knossos/algorithms"
	"github.com/knossos-go/knossos/grid"
)

// allAlgorithms returns one instance of each of the ten carvers with
// default options.
func allAlgorithms() []algorithms.Algorithm {
	return []algorithms.Algorithm{
		algorithms.AldousBroder{},
		algorithms.BinaryTree{},
		algorithms.Eller{},
		algorithms.GrowingTree{},
		algorithms.HuntAndKill{},
		algorithms.Kruskal{},
		algorithms.Prim{},
		algorithms.RecursiveBacktracking{},
		algorithms.Sidewinder{},
		algorithms.Wilson{},
	}
}

// openConnections counts carved inter-cell connections: the sum of open
// wall bits over all cells, halved (symmetry stores each passage twice).
func openConnections(t *testing.T, g *grid.Grid) int {
	t.Helper()
	total := 0
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			c, err := g.CellAt(grid.Coords{X: x, Y: y})
			require.NoError(t, err)
			total += 4 - c.WallsCount()
		}
	}
	require.Zerof(t, total%2, "odd open-wall sum %d implies broken symmetry", total)
	return total / 2
}

// requirePerfect asserts the spanning-tree properties: exact edge count,
// full connectivity through open walls, and pairwise wall symmetry.
func requirePerfect(t *testing.T, g *grid.Grid) {
	t.Helper()

	// Acyclic: a connected graph with exactly V-1 edges is a tree.
	require.Equal(t, g.Size()-1, openConnections(t, g), "open connection count")

	// Symmetry, including closed border walls.
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			c := grid.Coords{X: x, Y: y}
			for _, d := range grid.Directions {
				n := c.Move(d)
				if !g.InBounds(n) {
					require.Falsef(t, g.IsOpen(c, d), "border wall open at %s %s", c, d)
					continue
				}
				require.Equalf(t, g.IsOpen(c, d), g.IsOpen(n, d.Opposite()),
					"wall asymmetry between %s and %s", c, n)
			}
		}
	}

	// Connectivity: BFS over open walls must reach every cell.
	seen := make(map[grid.Coords]bool, g.Size())
	queue := []grid.Coords{{X: 0, Y: 0}}
	seen[queue[0]] = true
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, d := range grid.Directions {
			if !g.IsOpen(cur, d) {
				continue
			}
			if n := cur.Move(d); !seen[n] {
				seen[n] = true
				queue = append(queue, n)
			}
		}
	}
	require.Len(t, seen, g.Size(), "cells reachable from the origin")
}

// cellBits snapshots the interchange masks of every cell, row-major.
func cellBits(t *testing.T, g *grid.Grid) []uint8 {
	t.Helper()
	out := make([]uint8, 0, g.Size())
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			c, err := g.CellAt(grid.Coords{X: x, Y: y})
			require.NoError(t, err)
			out = append(out, c.Bits())
		}
	}
	return out
}

func carve(t *testing.T, a algorithms.Algorithm, w, h int, seed int64, start *grid.Coords) *grid.Grid {
	t.Helper()
	g, err := grid.NewGrid(w, h)
	require.NoError(t, err)
	require.NoError(t, a.Carve(g, algorithms.RNGFromSeed(seed), start))
	return g
}

// TestCarve_PerfectMaze verifies the spanning-tree contract for all ten
// algorithms across degenerate and rectangular sizes.
func TestCarve_PerfectMaze(t *testing.T) {
	sizes := []struct{ w, h int }{
		{1, 1}, {2, 1}, {1, 7}, {2, 2}, {5, 5}, {8, 3}, {3, 8}, {12, 9},
	}
	for _, a := range allAlgorithms() {
		t.Run(a.Name(), func(t *testing.T) {
			for _, s := range sizes {
				requirePerfect(t, carve(t, a, s.w, s.h, 42, nil))
			}
		})
	}
}

// TestCarve_Determinism verifies that identical (size, algorithm, seed)
// inputs reproduce bit-identical cell states and that a different seed
// changes the maze.
func TestCarve_Determinism(t *testing.T) {
	for _, a := range allAlgorithms() {
		t.Run(a.Name(), func(t *testing.T) {
			first := cellBits(t, carve(t, a, 6, 6, 7, nil))
			second := cellBits(t, carve(t, a, 6, 6, 7, nil))
			require.Equal(t, first, second, "same seed must reproduce the maze")

			other := cellBits(t, carve(t, a, 6, 6, 8, nil))
			require.NotEqual(t, first, other, "different seed must diverge")
		})
	}
}

// TestCarve_WithStart verifies that every algorithm accepts an in-bounds
// start and still produces a perfect maze.
func TestCarve_WithStart(t *testing.T) {
	start := grid.Coords{X: 2, Y: 1}
	for _, a := range allAlgorithms() {
		t.Run(a.Name(), func(t *testing.T) {
			requirePerfect(t, carve(t, a, 5, 4, 42, &start))
		})
	}
}

// TestCarve_InvalidStart verifies the ErrInvalidStart contract for all ten
// algorithms, including the scan-order ones that otherwise ignore starts.
func TestCarve_InvalidStart(t *testing.T) {
	outside := []grid.Coords{{X: 5, Y: 0}, {X: 0, Y: 4}, {X: -1, Y: 0}}
	for _, a := range allAlgorithms() {
		t.Run(a.Name(), func(t *testing.T) {
			for _, s := range outside {
				g, err := grid.NewGrid(5, 4)
				require.NoError(t, err)
				err = a.Carve(g, algorithms.RNGFromSeed(1), &s)
				require.ErrorIs(t, err, algorithms.ErrInvalidStart)
			}
		})
	}
}

// TestCarve_NilCollaborators verifies defensive input validation.
func TestCarve_NilCollaborators(t *testing.T) {
	g, err := grid.NewGrid(3, 3)
	require.NoError(t, err)
	for _, a := range allAlgorithms() {
		t.Run(a.Name(), func(t *testing.T) {
			require.ErrorIs(t, a.Carve(nil, algorithms.RNGFromSeed(1), nil), algorithms.ErrNilGrid)
			require.ErrorIs(t, a.Carve(g, nil, nil), algorithms.ErrNilRand)
		})
	}
}

// TestFromName covers the registry round-trip and the unknown-name error.
func TestFromName(t *testing.T) {
	for _, name := range algorithms.Names() {
		a, err := algorithms.FromName(name)
		require.NoError(t, err)
		require.Equal(t, name, a.Name())
	}
	_, err := algorithms.FromName("recursive-division")
	require.ErrorIs(t, err, algorithms.ErrUnknownAlgorithm)
}

// TestBinaryTree_Bias verifies the structural signature of the default
// bias: the top row and the rightmost column form straight corridors.
func TestBinaryTree_Bias(t *testing.T) {
	g := carve(t, algorithms.BinaryTree{}, 6, 6, 3, nil)

	for x := 0; x < 5; x++ {
		require.Truef(t, g.IsOpen(grid.Coords{X: x, Y: 0}, grid.East),
			"top-row corridor broken at x=%d", x)
	}
	for y := 1; y < 6; y++ {
		require.Truef(t, g.IsOpen(grid.Coords{X: 5, Y: y}, grid.North),
			"east-column corridor broken at y=%d", y)
	}
}

// TestGrowingTree_Policies verifies both selection policies carve perfect
// mazes and diverge from each other under the same seed.
func TestGrowingTree_Policies(t *testing.T) {
	random := carve(t, algorithms.GrowingTree{Policy: algorithms.SelectRandom}, 7, 7, 11, nil)
	newest := carve(t, algorithms.GrowingTree{Policy: algorithms.SelectNewest}, 7, 7, 11, nil)
	requirePerfect(t, random)
	requirePerfect(t, newest)
	require.NotEqual(t, cellBits(t, random), cellBits(t, newest))
}
