// Package pathfind computes lowest-cost routes through an assembled maze
// using A* search with the Manhattan-distance heuristic.
//
// What:
//
//   - ToGoal finds the minimum-cost path between two coordinates, walking
//     only through open walls; cost is the step count.
//   - AllEnds routes from one start to every detected maze end and ranks
//     the results ascending by cost, ties broken row-major by goal, so the
//     ordering is deterministic.
//
// Why A* with Manhattan distance:
//
//   - Every grid step costs exactly 1 and the grid is axis-aligned, so the
//     Manhattan distance never overestimates the remaining cost — the
//     heuristic is admissible and the returned paths are optimal.
//
// Determinism:
//
//   - The search itself is deterministic: the priority queue breaks f-score
//     ties row-major by coordinate, so equal-cost frontiers expand in a
//     fixed order and the same maze always yields the same paths.
//
// Complexity:
//
//   - ToGoal: O(W×H log(W×H)) time, O(W×H) space.
//   - AllEnds: one search per end.
//
// Errors:
//
//   - ErrUnreachable: no path to the requested goal. Cannot occur on a
//     maze produced by the builder (perfect mazes are connected); it is a
//     defensive contract for grids wrapped via maze.FromGrid. AllEnds
//     drops unreachable ends from its ranking instead of failing, matching
//     the best-effort nature of "route everything you can".
//   - ErrNilMaze: missing maze collaborator.
//   - grid.ErrOutOfBounds: start or goal outside the maze extent.
package pathfind
