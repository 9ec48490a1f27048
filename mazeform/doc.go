// Package mazeform renders assembled mazes into textual formats for
// terminals, files, and tile-based game engines. Renderers consume the
// read-only maze interface and never mutate wall state.
//
// What:
//
//   - AsciiNarrow: compact drawing, one character per cell column.
//   - AsciiBroad: spacious drawing with "+" wall joints.
//   - GameMap: a wall/passage tile lattice with a configurable span,
//     suitable for pseudo-3D games that ray-cast over a character map;
//     optionally marks the start and goal cells with 'S' and 'G'.
//   - Save: writes any rendering to a file.
//
// Determinism: rendering is a pure function of the maze and the renderer
// configuration; no randomness is involved.
//
// Errors:
//
//   - ErrNilMaze, ErrNilRenderer: missing collaborator.
//   - ErrSave: the output file could not be written.
package mazeform
