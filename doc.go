// Package percolation is the module root for an incremental percolation
// model on N×N grids.
//
// Subpackages:
//
//	unionfind/   — weighted quick-union forest with path compression over [0, n)
//	percolation/ — N×N site grid: Open, IsOpen, IsFull, Percolates
//
// Quick ASCII example (3×3, '*' full, 'o' open, '#' blocked):
//
//	* # #
//	* * *
//	# # *
//
// percolates: the top-left site reaches the bottom-right one through row 2.
//
// Drivers such as Monte-Carlo threshold estimators live outside this module
// and use only the exported API of package percolation.
//
//	go get github.com/katalvlaran/percolation
package percolation
