package percolation_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/percolation/percolation"
)

// ExamplePercolation joins two branches of a 3×3 grid with one site.
//
//   - (1,1)-(2,1) hangs from the top row.
//   - (2,3)-(3,3) stands on the bottom row.
//   - Opening (2,2) connects them and the system percolates.
func ExamplePercolation() {
	p, _ := percolation.New(3)
	for _, s := range [][2]int{{1, 1}, {2, 1}, {2, 3}, {3, 3}} {
		_ = p.Open(s[0], s[1])
	}
	fmt.Print(p)
	fmt.Println("percolates:", p.Percolates())

	_ = p.Open(2, 2)
	fmt.Print(p)
	fmt.Println("percolates:", p.Percolates())
	full, _ := p.IsFull(3, 3)
	fmt.Println("(3,3) full:", full)

	// Output:
	// *##
	// *#o
	// ##o
	// percolates: false
	// *##
	// ***
	// ##*
	// percolates: true
	// (3,3) full: true
}

// ExamplePercolation_Open_outOfRange shows coordinates are 1-based and
// never clamped.
func ExamplePercolation_Open_outOfRange() {
	p, _ := percolation.New(3)
	err := p.Open(1, 0)
	fmt.Println(errors.Is(err, percolation.ErrOutOfRange))
	fmt.Println(err)

	// Output:
	// true
	// col 0 not in [1,3]: percolation: index out of range
}
