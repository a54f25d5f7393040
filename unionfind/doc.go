// Package unionfind provides a disjoint-set forest over a dense universe of
// integer elements [0, n).
//
// What:
//
//   - Every element starts in its own singleton component.
//   - Find returns the canonical root of an element's component.
//   - Union merges two components, attaching the smaller tree under the larger.
//
// Why:
//
//   - Incremental connectivity: grids, percolation, Kruskal-style MST.
//   - Roots are stable handles between unions, so callers may key auxiliary
//     per-component data by root index.
//
// Complexity:
//
//   - Find, Union, Connected: O(α(n)) amortized (weighted union + path halving).
//   - New: O(n) time and memory.
//
// Errors:
//
//   - ErrInvalidSize: New called with n <= 0.
//
// Element arguments are not validated; an index outside [0, Len()) panics
// like any slice access. Callers validate at their own API boundary.
package unionfind
