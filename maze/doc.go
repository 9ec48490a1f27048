// Package maze assembles generated grids into immutable maze values and
// provides the builder that drives generation end to end.
//
// What:
//
//   - Build(opts...) validates the configuration, allocates a fresh grid,
//     runs the selected carving algorithm with a seeded RNG, and freezes
//     the result into a Maze.
//   - Maze exposes read-only access: dimensions, indexed cell lookup,
//     bounds-safe passage queries, the list of end coordinates (cells with
//     three walls), and the optional start/goal of the generation request.
//   - FromGrid wraps an externally carved grid, so renderers and
//     pathfinding can also serve grids produced outside the builder.
//
// Why:
//
//   - Grid ownership transfers from the builder to the Maze exactly once;
//     nothing mutates wall state after assembly, so formatters and
//     pathfinding share the maze freely without synchronization.
//
// Determinism:
//
//   - WithSeed makes generation a pure function of (dimensions, algorithm,
//     seed, start). Without a seed, each Build draws a fresh time-derived
//     seed and produces a different maze per run.
//
// Errors:
//
//   - grid.ErrInvalidDimension: non-positive width or height; checked
//     before any allocation and never clamped.
//   - grid.ErrOutOfBounds: goal coordinate (or cell lookup) outside range.
//   - algorithms.ErrInvalidStart: start coordinate outside range.
//   - ErrNilAlgorithm, ErrNilGrid: missing collaborator.
package maze
