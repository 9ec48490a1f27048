package pathfind

import (
	"container/heap"
	"fmt"
	"sort"

	"github.com/knossos-go/knossos/grid"
	"github.com/knossos-go/knossos/maze"
)

// ToGoal computes the minimum-cost path from start to goal through open
// walls, using A* with the Manhattan heuristic.
//
// Preconditions and validation (in order):
//  1. m must be non-nil (ErrNilMaze).
//  2. start and goal must lie inside the maze (grid.ErrOutOfBounds).
//
// Returns ErrUnreachable when the goal cannot be reached; on a perfect
// maze this never happens, but externally wrapped grids may be
// disconnected.
//
// Complexity: O(W×H log(W×H)) time, O(W×H) space.
func ToGoal(m *maze.Maze, start, goal grid.Coords) (Route, error) {
	if m == nil {
		return Route{}, ErrNilMaze
	}
	if _, err := m.CellAt(start); err != nil {
		return Route{}, fmt.Errorf("start: %w", err)
	}
	if _, err := m.CellAt(goal); err != nil {
		return Route{}, fmt.Errorf("goal: %w", err)
	}

	// Best-known step count from start, and the predecessor tree.
	gScore := map[grid.Coords]int{start: 0}
	cameFrom := make(map[grid.Coords]grid.Coords)

	// Lazy decrease-key: duplicates are pushed and stale entries skipped
	// on pop, as in a standard binary-heap A*.
	open := &nodeHeap{{coord: start, g: 0, f: manhattan(start, goal)}}
	heap.Init(open)

	for open.Len() > 0 {
		cur := heap.Pop(open).(node)
		if best, ok := gScore[cur.coord]; !ok || cur.g > best {
			// Stale entry superseded by a cheaper route.
			continue
		}
		if cur.coord == goal {
			return Route{Goal: goal, Path: reconstruct(cameFrom, start, goal), Cost: cur.g}, nil
		}

		for _, d := range grid.Directions {
			if !m.IsOpen(cur.coord, d) {
				continue
			}
			next := cur.coord.Move(d)
			tentative := cur.g + 1
			if best, seen := gScore[next]; seen && tentative >= best {
				continue
			}
			gScore[next] = tentative
			cameFrom[next] = cur.coord
			heap.Push(open, node{coord: next, g: tentative, f: tentative + manhattan(next, goal)})
		}
	}

	return Route{}, fmt.Errorf("%w: %s to %s", ErrUnreachable, start, goal)
}

// AllEnds routes from start to every detected maze end and returns the
// results ordered ascending by cost, ties broken row-major by goal.
// Unreachable ends (possible only on externally wrapped grids) are
// dropped from the ranking.
//
// Complexity: one ToGoal search per end.
func AllEnds(m *maze.Maze, start grid.Coords) ([]Route, error) {
	if m == nil {
		return nil, ErrNilMaze
	}
	if _, err := m.CellAt(start); err != nil {
		return nil, fmt.Errorf("start: %w", err)
	}

	ends := m.Ends()
	routes := make([]Route, 0, len(ends))
	for _, goal := range ends {
		r, err := ToGoal(m, start, goal)
		if err != nil {
			// Disconnected external grid: skip this end, keep ranking.
			continue
		}
		routes = append(routes, r)
	}

	sort.SliceStable(routes, func(i, j int) bool {
		if routes[i].Cost != routes[j].Cost {
			return routes[i].Cost < routes[j].Cost
		}
		return routes[i].Goal.Less(routes[j].Goal)
	})
	return routes, nil
}

// manhattan is the admissible heuristic: each step costs exactly 1 on an
// axis-aligned grid, so |dx|+|dy| never overestimates.
func manhattan(a, b grid.Coords) int {
	dx := a.X - b.X
	if dx < 0 {
		dx = -dx
	}
	dy := a.Y - b.Y
	if dy < 0 {
		dy = -dy
	}
	return dx + dy
}

// reconstruct walks the predecessor tree backwards and reverses in place.
func reconstruct(cameFrom map[grid.Coords]grid.Coords, start, goal grid.Coords) []grid.Coords {
	path := []grid.Coords{goal}
	for cur := goal; cur != start; {
		cur = cameFrom[cur]
		path = append(path, cur)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

// node is one frontier entry of the A* search.
type node struct {
	coord grid.Coords
	g     int // steps from start
	f     int // g + heuristic
}

// nodeHeap orders frontier entries by f-score, breaking ties row-major by
// coordinate so equal-cost expansion order is deterministic.
type nodeHeap []node

func (h nodeHeap) Len() int { return len(h) }

func (h nodeHeap) Less(i, j int) bool {
	if h[i].f != h[j].f {
		return h[i].f < h[j].f
	}
	return h[i].coord.Less(h[j].coord)
}

func (h nodeHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *nodeHeap) Push(x any) { *h = append(*h, x.(node)) }

func (h *nodeHeap) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}
