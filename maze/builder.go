package maze

import (
	"fmt"
	"time"

	"github.com/knossos-go/knossos/algorithms"
	"github.com/knossos-go/knossos/grid"
)

// Build resolves the functional options, validates the configuration, and
// runs generation to completion:
//
//  1. Dimensions must be positive — grid.ErrInvalidDimension otherwise,
//     before any grid is allocated (a required precondition, never a
//     clamp).
//  2. A fresh fully walled grid is allocated.
//  3. The goal, when set, is bounds-checked against the new grid.
//  4. The selected algorithm carves the grid with the seeded RNG; the
//     start coordinate is validated by the algorithm
//     (algorithms.ErrInvalidStart when out of bounds).
//  5. The carved grid is frozen into an immutable Maze.
//
// Complexity: O(W×H) plus the cost of the selected algorithm.
func Build(opts ...Option) (*Maze, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.Algorithm == nil {
		return nil, ErrNilAlgorithm
	}

	g, err := grid.NewGrid(cfg.Width, cfg.Height)
	if err != nil {
		return nil, err
	}

	if cfg.Goal != nil && !g.InBounds(*cfg.Goal) {
		return nil, fmt.Errorf("%w: goal %s in %dx%d",
			grid.ErrOutOfBounds, *cfg.Goal, cfg.Width, cfg.Height)
	}

	rng := algorithms.RNGFromSeed(resolveSeed(cfg.Seed))
	if err = cfg.Algorithm.Carve(g, rng, cfg.Start); err != nil {
		return nil, fmt.Errorf("maze: %s: %w", cfg.Algorithm.Name(), err)
	}

	return assemble(g, cfg.Start, cfg.Goal), nil
}

// resolveSeed maps the optional seed to a concrete RNG seed: the value
// verbatim when set, a time-derived seed otherwise. RNGFromSeed treats 0
// as its fixed default, so WithSeed(0) is reproducible too.
func resolveSeed(seed *int64) int64 {
	if seed != nil {
		return *seed
	}
	return time.Now().UnixNano()
}
