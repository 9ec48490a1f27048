package mazeform

import (
	"fmt"
	"os"

	"github.com/knossos-go/knossos/maze"
)

// Save renders m with r and writes the result to path, creating or
// truncating the file. I/O failures are reported as ErrSave with the
// underlying cause in the message.
func Save(r Renderer, m *maze.Maze, path string) error {
	if r == nil {
		return ErrNilRenderer
	}
	if m == nil {
		return ErrNilMaze
	}
	out, err := r.Render(m)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, []byte(out), 0o644); err != nil {
		return fmt.Errorf("%w: %v", ErrSave, err)
	}
	return nil
}
