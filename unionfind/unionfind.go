package unionfind

// UnionFind is a weighted quick-union forest with path compression.
// It is not safe for concurrent use.
type UnionFind struct {
	parent []int // parent[x] == x for roots
	size   []int // size[r] is valid only when r is a root
	count  int   // number of disjoint components
}

// New returns a forest of n singleton components.
// Returns ErrInvalidSize if n <= 0.
// Complexity: O(n) time and memory.
func New(n int) (*UnionFind, error) {
	if n <= 0 {
		return nil, ErrInvalidSize
	}
	uf := &UnionFind{
		parent: make([]int, n),
		size:   make([]int, n),
		count:  n,
	}
	for i := range uf.parent {
		uf.parent[i] = i
		uf.size[i] = 1
	}

	return uf, nil
}

// Len returns the number of elements in the universe.
func (uf *UnionFind) Len() int {
	return len(uf.parent)
}

// Count returns the number of disjoint components.
func (uf *UnionFind) Count() int {
	return uf.count
}

// Find returns the root of x's component.
// Iterative with path halving: every visited node is re-pointed to its
// grandparent, so repeated lookups flatten the tree.
// Complexity: O(α(n)) amortized.
func (uf *UnionFind) Find(x int) int {
	for uf.parent[x] != x {
		uf.parent[x] = uf.parent[uf.parent[x]]
		x = uf.parent[x]
	}

	return x
}

// Union merges the components of x and y and returns the resulting root.
// The root of the larger tree survives; on equal sizes, x's root wins.
// If x and y already share a root, nothing changes.
// Complexity: O(α(n)) amortized.
func (uf *UnionFind) Union(x, y int) int {
	rootX := uf.Find(x)
	rootY := uf.Find(y)
	if rootX == rootY {
		return rootX
	}
	if uf.size[rootX] < uf.size[rootY] {
		rootX, rootY = rootY, rootX
	}
	uf.parent[rootY] = rootX
	uf.size[rootX] += uf.size[rootY]
	uf.count--

	return rootX
}

// Connected reports whether x and y belong to the same component.
func (uf *UnionFind) Connected(x, y int) bool {
	return uf.Find(x) == uf.Find(y)
}

// Size returns the number of elements in x's component.
func (uf *UnionFind) Size(x int) int {
	return uf.size[uf.Find(x)]
}
