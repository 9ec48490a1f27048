// Package algorithms defines the carving contract, configuration options,
// and sentinel errors shared by the ten maze generation algorithms.
package algorithms

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/knossos-go/knossos/grid"
)

// Sentinel errors for carving operations.
var (
	// ErrInvalidStart indicates a supplied start coordinate outside the grid.
	ErrInvalidStart = errors.New("algorithms: start coordinate out of grid bounds")
	// ErrNilGrid indicates a missing grid collaborator.
	ErrNilGrid = errors.New("algorithms: grid must not be nil")
	// ErrNilRand indicates a missing random source collaborator.
	ErrNilRand = errors.New("algorithms: random source must not be nil")
	// ErrUnknownAlgorithm indicates a name outside the ten canonical algorithms.
	ErrUnknownAlgorithm = errors.New("algorithms: unknown algorithm name")
)

// Algorithm carves a spanning structure over the grid's coordinate graph.
// Implementations must leave the grid connected and acyclic, must draw every
// random decision from rng, and must treat a non-nil start as the first cell
// visited (walk-based algorithms) or at minimum bounds-validate it
// (scan-order algorithms).
type Algorithm interface {
	// Name returns the canonical kebab-case algorithm name.
	Name() string

	// Carve mutates g into a perfect maze. The rng is the only source of
	// non-determinism; start may be nil.
	Carve(g *grid.Grid, rng *rand.Rand, start *grid.Coords) error
}

// Bias selects the two carving directions of the Binary Tree algorithm.
// The zero value is BiasNorthEast, matching the classic formulation.
type Bias int

const (
	// BiasNorthEast opens one of {North, East} per cell.
	BiasNorthEast Bias = iota
	// BiasNorthWest opens one of {North, West} per cell.
	BiasNorthWest
	// BiasSouthEast opens one of {South, East} per cell.
	BiasSouthEast
	// BiasSouthWest opens one of {South, West} per cell.
	BiasSouthWest
)

// dirs returns the vertical and horizontal carving direction of the bias.
func (b Bias) dirs() (grid.Direction, grid.Direction) {
	switch b {
	case BiasNorthWest:
		return grid.North, grid.West
	case BiasSouthEast:
		return grid.South, grid.East
	case BiasSouthWest:
		return grid.South, grid.West
	default:
		return grid.North, grid.East
	}
}

// SelectionPolicy picks the next active cell of the Growing Tree algorithm.
// The zero value is SelectRandom, the documented default.
type SelectionPolicy int

const (
	// SelectRandom picks a uniformly random cell from the active list;
	// the resulting texture resembles Prim's algorithm.
	SelectRandom SelectionPolicy = iota
	// SelectNewest always picks the most recently added cell; the resulting
	// texture resembles Recursive Backtracking.
	SelectNewest
)

// Canonical algorithm names accepted by FromName.
const (
	NameAldousBroder          = "aldous-broder"
	NameBinaryTree            = "binary-tree"
	NameEller                 = "eller"
	NameGrowingTree           = "growing-tree"
	NameHuntAndKill           = "hunt-and-kill"
	NameKruskal               = "kruskal"
	NamePrim                  = "prim"
	NameRecursiveBacktracking = "recursive-backtracking"
	NameSidewinder            = "sidewinder"
	NameWilson                = "wilson"
)

// FromName resolves a canonical name into an algorithm value with default
// options (Binary Tree: BiasNorthEast; Growing Tree: SelectRandom).
// Unknown names fail with ErrUnknownAlgorithm.
func FromName(name string) (Algorithm, error) {
	switch name {
	case NameAldousBroder:
		return AldousBroder{}, nil
	case NameBinaryTree:
		return BinaryTree{}, nil
	case NameEller:
		return Eller{}, nil
	case NameGrowingTree:
		return GrowingTree{}, nil
	case NameHuntAndKill:
		return HuntAndKill{}, nil
	case NameKruskal:
		return Kruskal{}, nil
	case NamePrim:
		return Prim{}, nil
	case NameRecursiveBacktracking:
		return RecursiveBacktracking{}, nil
	case NameSidewinder:
		return Sidewinder{}, nil
	case NameWilson:
		return Wilson{}, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
}

// Names returns the ten canonical algorithm names in lexical order,
// for help output and validation in configuration layers.
func Names() []string {
	return []string{
		NameAldousBroder,
		NameBinaryTree,
		NameEller,
		NameGrowingTree,
		NameHuntAndKill,
		NameKruskal,
		NamePrim,
		NameRecursiveBacktracking,
		NameSidewinder,
		NameWilson,
	}
}

// validateInputs checks the shared Carve preconditions: non-nil
// collaborators and, when supplied, an in-bounds start coordinate.
func validateInputs(g *grid.Grid, rng *rand.Rand, start *grid.Coords) error {
	if g == nil {
		return ErrNilGrid
	}
	if rng == nil {
		return ErrNilRand
	}
	if start != nil && !g.InBounds(*start) {
		return fmt.Errorf("%w: %s in %dx%d", ErrInvalidStart, *start, g.Width(), g.Height())
	}
	return nil
}

// resolveStart validates inputs and returns the walk origin: the supplied
// start when present, otherwise a random in-bounds cell drawn from rng.
func resolveStart(g *grid.Grid, rng *rand.Rand, start *grid.Coords) (grid.Coords, error) {
	if err := validateInputs(g, rng, start); err != nil {
		return grid.Coords{}, err
	}
	if start != nil {
		return *start, nil
	}
	return randomCell(g, rng), nil
}
