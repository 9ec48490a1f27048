package algorithms

// disjointSet is an index-based union-find over a flat array sized to the
// cell count, with path compression and union by rank. Kruskal and Eller
// track connected components through it; the flat layout keeps the
// structure pointer-free and allocation-cheap.
type disjointSet struct {
	parent []int
	rank   []int
}

// newDisjointSet returns n singleton sets {0}..{n-1}.
//
// Complexity: O(n).
func newDisjointSet(n int) *disjointSet {
	d := &disjointSet{
		parent: make([]int, n),
		rank:   make([]int, n),
	}
	for i := range d.parent {
		d.parent[i] = i
	}
	return d
}

// find returns the set root of x, compressing the path as it walks up.
//
// Complexity: amortized near O(1) (inverse Ackermann).
func (d *disjointSet) find(x int) int {
	for d.parent[x] != x {
		// Point x at its grandparent to halve the path.
		d.parent[x] = d.parent[d.parent[x]]
		x = d.parent[x]
	}
	return x
}

// union merges the sets of x and y by rank and reports whether a merge
// happened (false when both were already in the same set).
func (d *disjointSet) union(x, y int) bool {
	rootX := d.find(x)
	rootY := d.find(y)
	if rootX == rootY {
		return false
	}
	if d.rank[rootX] < d.rank[rootY] {
		rootX, rootY = rootY, rootX
	}
	// Attach the smaller-rank root under the larger-rank one.
	d.parent[rootY] = rootX
	if d.rank[rootX] == d.rank[rootY] {
		d.rank[rootX]++
	}
	return true
}
