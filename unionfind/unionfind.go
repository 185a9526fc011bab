package unionfind

// UnionFind is a disjoint-set forest with union by size and path halving.
// The zero value is an empty forest with no elements; use New.
type UnionFind struct {
	parent []int
	size   []int // valid only at roots: number of elements in the tree
	count  int   // number of disjoint components
}

// New returns a forest of n singleton components over [0, n).
// Complexity: O(n).
func New(n int) *UnionFind {
	parent := make([]int, n)
	size := make([]int, n)
	for i := range parent {
		parent[i] = i
		size[i] = 1
	}
	return &UnionFind{parent: parent, size: size, count: n}
}

// Len returns the number of elements in the forest.
func (uf *UnionFind) Len() int {
	return len(uf.parent)
}

// Count returns the number of disjoint components.
func (uf *UnionFind) Count() int {
	return uf.count
}

// Find returns the root of the component containing x.
// Each step re-points the visited node to its grandparent (path halving).
// Panics if x is outside [0, Len()).
func (uf *UnionFind) Find(x int) int {
	for uf.parent[x] != x {
		uf.parent[x] = uf.parent[uf.parent[x]]
		x = uf.parent[x]
	}
	return x
}

// Union merges the components containing a and b, linking the smaller
// tree under the larger one. It reports whether a merge happened;
// false means a and b were already connected.
func (uf *UnionFind) Union(a, b int) bool {
	ra, rb := uf.Find(a), uf.Find(b)
	if ra == rb {
		return false
	}
	if uf.size[ra] < uf.size[rb] {
		ra, rb = rb, ra
	}
	uf.parent[rb] = ra
	uf.size[ra] += uf.size[rb]
	uf.count--
	return true
}

// Connected reports whether a and b belong to the same component.
func (uf *UnionFind) Connected(a, b int) bool {
	return uf.Find(a) == uf.Find(b)
}

// Size returns the number of elements in the component containing x.
func (uf *UnionFind) Size(x int) int {
	return uf.size[uf.Find(x)]
}
