package mazeform

import (
	"errors"

	"github.com/knossos-go/knossos/maze"
)

// Sentinel errors for rendering and saving.
var (
	// ErrNilMaze indicates a missing maze collaborator.
	ErrNilMaze = errors.New("mazeform: maze must not be nil")
	// ErrNilRenderer indicates a missing renderer collaborator.
	ErrNilRenderer = errors.New("mazeform: renderer must not be nil")
	// ErrInvalidSpan rejects a GameMap passage span below 1.
	ErrInvalidSpan = errors.New("mazeform: span must be at least 1")
	// ErrSave wraps an I/O failure while writing a rendering to disk.
	ErrSave = errors.New("mazeform: cannot save rendering")
)

// Renderer converts an assembled maze into its textual form.
type Renderer interface {
	// Render produces the drawing. Implementations are pure: the same maze
	// and configuration always yield the same string.
	Render(m *maze.Maze) (string, error)
}
