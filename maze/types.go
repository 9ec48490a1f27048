// Package maze defines builder options and sentinel errors for maze
// assembly.
package maze

import (
	"errors"

	"github.com/knossos-go/knossos/algorithms"
	"github.com/knossos-go/knossos/grid"
)

// Sentinel errors for maze assembly.
var (
	// ErrNilAlgorithm indicates a configuration without a carving algorithm.
	ErrNilAlgorithm = errors.New("maze: algorithm must not be nil")
	// ErrNilGrid indicates FromGrid was given no grid to wrap.
	ErrNilGrid = errors.New("maze: grid must not be nil")
)

// Default builder configuration.
const (
	// DefaultWidth is the builder's fallback column count.
	DefaultWidth = 10
	// DefaultHeight is the builder's fallback row count.
	DefaultHeight = 10
)

// Options aggregates the generation request resolved from functional
// options. Use DefaultOptions to obtain the documented defaults.
type Options struct {
	// Width and Height are the grid dimensions; both must be positive.
	Width, Height int

	// Algorithm carves the maze; defaults to recursive backtracking.
	Algorithm algorithms.Algorithm

	// Seed freezes generation when non-nil. nil draws a time-derived seed,
	// producing a different maze per Build call.
	Seed *int64

	// Start is handed to the algorithm as the first cell to visit.
	Start *grid.Coords

	// Goal is carried on the assembled maze for pathfinding front-ends;
	// generation itself never reads it.
	Goal *grid.Coords
}

// Option configures Options. All Option functions modify the pointed
// Options; later options override earlier ones.
type Option func(*Options)

// DefaultOptions returns the builder defaults: a 10×10 grid carved by
// recursive backtracking, unseeded, with no start or goal.
func DefaultOptions() Options {
	return Options{
		Width:     DefaultWidth,
		Height:    DefaultHeight,
		Algorithm: algorithms.RecursiveBacktracking{},
	}
}

// WithDimensions sets the grid width and height.
// Validation happens in Build, not here: invalid sizes fail with
// grid.ErrInvalidDimension instead of being clamped.
func WithDimensions(width, height int) Option {
	return func(o *Options) {
		o.Width = width
		o.Height = height
	}
}

// WithAlgorithm selects the carving algorithm.
func WithAlgorithm(a algorithms.Algorithm) Option {
	return func(o *Options) {
		o.Algorithm = a
	}
}

// WithSeed freezes the random source for reproducible generation.
// Identical (dimensions, algorithm, seed, start) inputs yield
// bit-identical mazes.
func WithSeed(seed int64) Option {
	return func(o *Options) {
		o.Seed = &seed
	}
}

// WithStart fixes the first cell visited by walk-based algorithms.
// Out-of-bounds coordinates fail Build with algorithms.ErrInvalidStart.
func WithStart(c grid.Coords) Option {
	return func(o *Options) {
		o.Start = &c
	}
}

// WithGoal designates a goal coordinate carried on the assembled maze.
// Out-of-bounds coordinates fail Build with grid.ErrOutOfBounds.
func WithGoal(c grid.Coords) Option {
	return func(o *Options) {
		o.Goal = &c
	}
}
