package maze_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/knossos-go/knossos/algorithms"
	"github.com/knossos-go/knossos/grid"
	"github.com/knossos-go/knossos/maze"
)

// snapshot collects the interchange bitmask of every cell, row-major.
func snapshot(t *testing.T, m *maze.Maze) []uint8 {
	t.Helper()
	out := make([]uint8, 0, m.Width()*m.Height())
	for y := 0; y < m.Height(); y++ {
		for x := 0; x < m.Width(); x++ {
			c, err := m.CellAt(grid.Coords{X: x, Y: y})
			require.NoError(t, err)
			out = append(out, c.Bits())
		}
	}
	return out
}

// TestBuild_Defaults verifies the documented default configuration.
func TestBuild_Defaults(t *testing.T) {
	m, err := maze.Build()
	require.NoError(t, err)
	require.Equal(t, maze.DefaultWidth, m.Width())
	require.Equal(t, maze.DefaultHeight, m.Height())
	require.True(t, m.IsValid())

	_, hasStart := m.Start()
	require.False(t, hasStart)
	_, hasGoal := m.Goal()
	require.False(t, hasGoal)
}

// TestBuild_InvalidDimension verifies the required precondition check:
// zero or negative sizes fail and no maze is returned.
func TestBuild_InvalidDimension(t *testing.T) {
	cases := []struct{ w, h int }{{0, 5}, {5, 0}, {0, 0}, {-2, 5}, {5, -1}}
	for _, tc := range cases {
		m, err := maze.Build(maze.WithDimensions(tc.w, tc.h))
		require.ErrorIs(t, err, grid.ErrInvalidDimension, "dimensions %dx%d", tc.w, tc.h)
		require.Nil(t, m)
	}
}

// TestBuild_NilAlgorithm verifies the missing-collaborator error.
func TestBuild_NilAlgorithm(t *testing.T) {
	m, err := maze.Build(maze.WithAlgorithm(nil))
	require.ErrorIs(t, err, maze.ErrNilAlgorithm)
	require.Nil(t, m)
}

// TestBuild_BadCoordinates covers out-of-bounds start and goal.
func TestBuild_BadCoordinates(t *testing.T) {
	_, err := maze.Build(
		maze.WithDimensions(4, 4),
		maze.WithStart(grid.Coords{X: 4, Y: 0}),
	)
	require.ErrorIs(t, err, algorithms.ErrInvalidStart)

	_, err = maze.Build(
		maze.WithDimensions(4, 4),
		maze.WithGoal(grid.Coords{X: 0, Y: 9}),
	)
	require.ErrorIs(t, err, grid.ErrOutOfBounds)
}

// TestBuild_SeedDeterminism is the golden determinism scenario: 5×5
// Binary Tree with seed 42 reproduces bit-identical cell states on every
// run, and seed 43 diverges in at least one cell.
func TestBuild_SeedDeterminism(t *testing.T) {
	build := func(seed int64) *maze.Maze {
		m, err := maze.Build(
			maze.WithDimensions(5, 5),
			maze.WithAlgorithm(algorithms.BinaryTree{}),
			maze.WithSeed(seed),
		)
		require.NoError(t, err)
		require.True(t, m.IsValid())
		return m
	}

	golden := snapshot(t, build(42))
	require.Equal(t, golden, snapshot(t, build(42)), "seed 42 must reproduce the fixture")
	require.NotEqual(t, golden, snapshot(t, build(43)), "seed 43 must differ in at least one cell")
}

// TestBuild_CarriesStartGoal verifies the request coordinates survive
// assembly unchanged.
func TestBuild_CarriesStartGoal(t *testing.T) {
	start := grid.Coords{X: 1, Y: 2}
	goal := grid.Coords{X: 4, Y: 0}
	m, err := maze.Build(
		maze.WithDimensions(5, 5),
		maze.WithAlgorithm(algorithms.Wilson{}),
		maze.WithSeed(9),
		maze.WithStart(start),
		maze.WithGoal(goal),
	)
	require.NoError(t, err)

	gotStart, ok := m.Start()
	require.True(t, ok)
	require.Equal(t, start, gotStart)

	gotGoal, ok := m.Goal()
	require.True(t, ok)
	require.Equal(t, goal, gotGoal)
}

// TestEnds verifies the cached end list: non-empty for any maze larger
// than one cell, row-major ordered, and each entry a true dead end.
func TestEnds(t *testing.T) {
	for _, name := range algorithms.Names() {
		a, err := algorithms.FromName(name)
		require.NoError(t, err)

		m, err := maze.Build(
			maze.WithDimensions(6, 5),
			maze.WithAlgorithm(a),
			maze.WithSeed(21),
		)
		require.NoError(t, err)

		ends := m.Ends()
		require.NotEmptyf(t, ends, "%s produced a maze without dead ends", name)
		for i, e := range ends {
			c, cellErr := m.CellAt(e)
			require.NoError(t, cellErr)
			require.Truef(t, c.IsEnd(), "%s: end %s has %d walls", name, e, c.WallsCount())
			if i > 0 {
				require.Truef(t, ends[i-1].Less(e), "%s: ends out of row-major order", name)
			}
		}
	}
}

// TestEnds_SingleCell: a 1×1 maze has no dead end (four walls, not three).
func TestEnds_SingleCell(t *testing.T) {
	m, err := maze.Build(maze.WithDimensions(1, 1), maze.WithSeed(1))
	require.NoError(t, err)
	require.Empty(t, m.Ends())
	require.True(t, m.IsValid())
}

// TestFromGrid covers wrapping external grids, including malformed ones.
func TestFromGrid(t *testing.T) {
	_, err := maze.FromGrid(nil)
	require.ErrorIs(t, err, maze.ErrNilGrid)

	// A carved 2×1 corridor is a valid maze with two ends.
	g, err := grid.NewGrid(2, 1)
	require.NoError(t, err)
	require.NoError(t, g.CarvePassage(grid.Coords{X: 0, Y: 0}, grid.Coords{X: 1, Y: 0}))
	m, err := maze.FromGrid(g)
	require.NoError(t, err)
	require.True(t, m.IsValid())
	require.Equal(t, []grid.Coords{{X: 0, Y: 0}, {X: 1, Y: 0}}, m.Ends())

	// An uncarved 2×2 grid is disconnected and therefore invalid.
	g2, err := grid.NewGrid(2, 2)
	require.NoError(t, err)
	m2, err := maze.FromGrid(g2)
	require.NoError(t, err)
	require.False(t, m2.IsValid())
}

// TestCellAt_OutOfBounds verifies indexed access fails outside the extent.
func TestCellAt_OutOfBounds(t *testing.T) {
	m, err := maze.Build(maze.WithDimensions(3, 3), maze.WithSeed(5))
	require.NoError(t, err)
	_, err = m.CellAt(grid.Coords{X: 3, Y: 3})
	require.ErrorIs(t, err, grid.ErrOutOfBounds)
}
