// Package pathfind defines route results and sentinel errors for maze
// pathfinding.
package pathfind

import (
	"errors"

	"github.com/knossos-go/knossos/grid"
)

// Sentinel errors for pathfinding operations.
var (
	// ErrUnreachable indicates no path exists to the requested goal.
	ErrUnreachable = errors.New("pathfind: goal unreachable from start")
	// ErrNilMaze indicates a missing maze collaborator.
	ErrNilMaze = errors.New("pathfind: maze must not be nil")
)

// Route is one solved path through the maze.
type Route struct {
	// Goal is the coordinate this route leads to.
	Goal grid.Coords
	// Path is the ordered coordinate sequence from start to Goal,
	// inclusive of both endpoints. Every consecutive pair is grid-adjacent
	// with an open wall between them.
	Path []grid.Coords
	// Cost is the step count: len(Path)-1.
	Cost int
}
