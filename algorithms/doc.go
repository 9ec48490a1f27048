// Package algorithms provides ten randomized carving algorithms that turn a
// fully walled grid into a perfect maze: a spanning tree over the grid's
// coordinate graph that is connected (every cell reachable from every other)
// and acyclic (exactly width×height−1 open inter-cell connections).
//
// What:
//
//   - Algorithm is the single carving capability: Carve(grid, rng, start).
//   - Ten independent variant types implement it: AldousBroder, BinaryTree,
//     Eller, GrowingTree, HuntAndKill, Kruskal, Prim,
//     RecursiveBacktracking, Sidewinder, Wilson.
//   - FromName maps the canonical kebab-case names to ready-to-use values
//     for configuration layers.
//
// Why:
//
//   - Each algorithm trades speed against texture: Binary Tree is linear but
//     heavily biased, Aldous–Broder and Wilson sample uniform spanning trees
//     at a higher cost, Recursive Backtracking yields long winding corridors,
//     Kruskal and Prim grow balanced trees from random edges.
//
// Determinism:
//
//   - The seeded *rand.Rand passed into Carve is the only source of
//     randomness. Identical (dimensions, algorithm, seed, start) inputs
//     always produce an identical maze; no package-level RNG is ever used.
//
// Start coordinate:
//
//   - Walk-based algorithms (Aldous–Broder, Hunt-and-Kill, Recursive
//     Backtracking, Growing Tree, Prim, Wilson) visit a supplied start
//     first; absent a start they draw a random cell from rng.
//   - Scan-order algorithms (Binary Tree, Sidewinder, Eller, Kruskal) carve
//     in a structural order with no notion of a first visited cell; they
//     still bounds-validate a supplied start and otherwise ignore it.
//
// Errors:
//
//   - ErrInvalidStart: supplied start coordinate is outside the grid.
//   - ErrNilGrid, ErrNilRand: missing collaborator (programmer error,
//     reported instead of panicking).
//   - ErrUnknownAlgorithm: FromName given a name outside the ten.
//
// Complexity: every algorithm terminates on valid input; the unvisited-cell
// count strictly decreases. Costs range from O(W×H) (Binary Tree,
// Sidewinder, Eller) to O(W×H) expected with large constants for the
// unbiased random walks (Aldous–Broder, Wilson).
package algorithms
