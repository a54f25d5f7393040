// Package percolation models an N×N grid of sites, each blocked or open,
// and tracks incrementally whether an open path connects the top row to the
// bottom row.
//
// What:
//
//   - Sites are addressed with 1-based (row, col) coordinates.
//   - Open marks a site open and merges it with open 4-neighbors in a
//     unionfind.UnionFind forest.
//   - Every component root carries two flags: touches-top and touches-bottom.
//     Flags are OR-merged into the new root after each Open, so IsFull and
//     Percolates never consult virtual top/bottom nodes.
//
// Why no virtual nodes:
//
//	A virtual bottom node joined to row N would, once the system percolates,
//	make every bottom-row component look connected to the top ("backwash").
//	Flags carried by roots only reflect real adjacency, so a dead-end branch
//	touching the bottom stays not-full.
//
// Complexity:
//
//   - New: O(N²) time and memory.
//   - Open, IsFull: O(α(N²)) amortized.
//   - IsOpen, Percolates, NumberOfOpenSites: O(1).
//
// Errors:
//
//   - ErrInvalidSize: New called with n <= 0.
//   - ErrOutOfRange: row or col outside [1, N]; the grid is left untouched.
//
// A Percolation is not safe for concurrent use. Guard the whole value with
// one mutex if it must be shared; locking parts of it is not enough.
package percolation
