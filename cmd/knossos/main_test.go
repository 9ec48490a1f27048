package main

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/knossos-go/knossos/algorithms"
	"github.com/knossos-go/knossos/grid"
	"github.com/knossos-go/knossos/mazeform"
)

func TestParseCoords(t *testing.T) {
	cases := []struct {
		in   string
		want grid.Coords
		ok   bool
	}{
		{"3,4", grid.Coords{X: 3, Y: 4}, true},
		{"(3, 4)", grid.Coords{X: 3, Y: 4}, true},
		{" 0 , 0 ", grid.Coords{}, true},
		{"3", grid.Coords{}, false},
		{"a,b", grid.Coords{}, false},
		{"", grid.Coords{}, false},
	}
	for _, tc := range cases {
		got, err := parseCoords(tc.in)
		if !tc.ok {
			require.Error(t, err, tc.in)
			continue
		}
		require.NoError(t, err, tc.in)
		require.Equal(t, tc.want, got, tc.in)
	}
}

func TestBuildOptions_AlgorithmTuning(t *testing.T) {
	cfg := config{width: 4, height: 4, algorithm: algorithms.NameBinaryTree, bias: "south-west"}
	_, err := buildOptions(cfg)
	require.NoError(t, err)

	cfg.bias = "diagonal"
	_, err = buildOptions(cfg)
	require.Error(t, err)

	cfg = config{width: 4, height: 4, algorithm: algorithms.NameGrowingTree, policy: "newest"}
	_, err = buildOptions(cfg)
	require.NoError(t, err)

	cfg.algorithm = "recursive-division"
	_, err = buildOptions(cfg)
	require.ErrorIs(t, err, algorithms.ErrUnknownAlgorithm)
}

func TestPickRenderer(t *testing.T) {
	r, err := pickRenderer(config{format: formatAsciiBroad})
	require.NoError(t, err)
	require.IsType(t, mazeform.AsciiBroad{}, r)

	r, err = pickRenderer(config{format: formatGameMap, span: 1, passage: " ", wall: "█"})
	require.NoError(t, err)
	gm, ok := r.(mazeform.GameMap)
	require.True(t, ok)
	require.Equal(t, ' ', gm.Passage)
	require.Equal(t, '█', gm.Wall)

	_, err = pickRenderer(config{format: "png"})
	require.Error(t, err)

	_, err = pickRenderer(config{format: formatGameMap, span: 1, passage: "..", wall: "#"})
	require.Error(t, err)
}
