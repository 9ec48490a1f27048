package mazeform_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/knossos-go/knossos/grid"
	"github.com/knossos-go/knossos/maze"
	"github.com/knossos-go/knossos/mazeform"
)

// smallMaze hand-carves a 2×2 maze with the west wall closed between the
// two rows:
//
//	(0,0)─(1,0)
//	  │     │
//	(0,1) (1,1)
func smallMaze(t *testing.T) *maze.Maze {
	t.Helper()
	g, err := grid.NewGrid(2, 2)
	require.NoError(t, err)
	require.NoError(t, g.CarvePassage(grid.Coords{X: 0, Y: 0}, grid.Coords{X: 1, Y: 0}))
	require.NoError(t, g.CarvePassage(grid.Coords{X: 0, Y: 0}, grid.Coords{X: 0, Y: 1}))
	require.NoError(t, g.CarvePassage(grid.Coords{X: 1, Y: 0}, grid.Coords{X: 1, Y: 1}))
	m, err := maze.FromGrid(g)
	require.NoError(t, err)
	return m
}

func TestGameMap_Render(t *testing.T) {
	expected := "" +
		"#####\n" +
		"#...#\n" +
		"#.#.#\n" +
		"#.#.#\n" +
		"#####\n"

	f := mazeform.DefaultGameMap()
	f.Span = 1
	out, err := f.Render(smallMaze(t))
	require.NoError(t, err)
	require.Equal(t, expected, out)
}

func TestGameMap_StartGoalMarkers(t *testing.T) {
	// Without a recorded start/goal the markers fall back to the corners.
	expected := "" +
		"#####\n" +
		"#S..#\n" +
		"#.#.#\n" +
		"#.#G#\n" +
		"#####\n"

	f := mazeform.GameMap{Span: 1, Passage: '.', Wall: '#', WithStartGoal: true}
	out, err := f.Render(smallMaze(t))
	require.NoError(t, err)
	require.Equal(t, expected, out)
}

// TestGameMap_SpanScaling checks the field dimensions and the wall runes
// against the layout formula for a wider span.
func TestGameMap_SpanScaling(t *testing.T) {
	f := mazeform.GameMap{Span: 3, Passage: ' ', Wall: '#'}
	out, err := f.Render(smallMaze(t))
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 2*4+1)
	for _, line := range lines {
		require.Len(t, line, 2*4+1)
	}
	require.Equal(t, strings.Repeat("#", 9), lines[0])
	require.Equal(t, strings.Repeat("#", 9), lines[8])
}

func TestGameMap_Validation(t *testing.T) {
	_, err := mazeform.DefaultGameMap().Render(nil)
	require.ErrorIs(t, err, mazeform.ErrNilMaze)

	_, err = mazeform.GameMap{Span: 0, Passage: '.', Wall: '#'}.Render(smallMaze(t))
	require.ErrorIs(t, err, mazeform.ErrInvalidSpan)
}
