// Package knossos generates, renders, and solves orthogonal mazes.
//
// 🚀 What is knossos?
//
//	A deterministic, embeddable maze toolkit that brings together:
//		• Core primitives: cells as wall bitmasks, a grid with one symmetric
//		  carve operation
//		• Ten generation algorithms: Aldous-Broder, Binary Tree, Eller,
//		  Growing Tree, Hunt-and-Kill, Kruskal, Prim, Recursive
//		  Backtracking, Sidewinder, Wilson
//		• Assembly: a builder with functional options, seeded
//		  reproducibility, and dead-end detection
//		• Rendering: narrow/broad ASCII drawings and game-map tile lattices
//		• Solving: A* routing to one goal or ranked routes to every dead end
//
// ✨ Why choose knossos?
//
//   - Deterministic – the same (dimensions, algorithm, seed, start) input
//     always yields a bit-identical maze
//   - Rock-solid guarantees – every algorithm produces a perfect maze:
//     fully connected and acyclic
//   - Pure Go core – explicit errors, no panics, no hidden state
//   - Extensible – Algorithm and Renderer are small interfaces; bring your
//     own carving strategy or output format
//
// Everything is organized under five subpackages plus a command:
//
//	grid/        — Coords, Cell, Direction & the carving Grid
//	algorithms/  — the ten generation algorithms & their options
//	maze/        — builder, assembled Maze, perfectness validation
//	mazeform/    — AsciiNarrow, AsciiBroad, GameMap renderers & Save
//	pathfind/    — A* search: ToGoal & AllEnds
//	cmd/knossos/ — the command-line front-end
//
// Quick start:
//
//	m, err := maze.Build(
//		maze.WithDimensions(12, 8),
//		maze.WithAlgorithm(algorithms.Kruskal{}),
//		maze.WithSeed(42),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//	out, _ := mazeform.AsciiNarrow{}.Render(m)
//	fmt.Print(out)
//
//	go get github.com/knossos-go/knossos
package knossos
