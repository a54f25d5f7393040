package percolation

import (
	"fmt"
	"math"
	"strings"

	"github.com/katalvlaran/percolation/unionfind"
)

// Percolation is an N×N grid of sites plus the connectivity state needed to
// answer IsFull and Percolates incrementally.
// The zero value is not usable; construct with New.
type Percolation struct {
	n          int
	forest     *unionfind.UnionFind
	status     []siteStatus // row-major, len n*n
	openSites  int
	percolates bool // monotonic
}

// New creates an n×n grid with every site blocked.
// Returns ErrInvalidSize if n <= 0 or if n*n does not fit in an int.
// Complexity: O(n²) time and memory.
func New(n int) (*Percolation, error) {
	if n <= 0 {
		return nil, ErrInvalidSize
	}
	if n > math.MaxInt/n {
		return nil, fmt.Errorf("%d×%d sites overflow int: %w", n, n, ErrInvalidSize)
	}
	forest, err := unionfind.New(n * n)
	if err != nil {
		return nil, err
	}

	return &Percolation{
		n:      n,
		forest: forest,
		status: make([]siteStatus, n*n),
	}, nil
}

// Size returns N, the side length of the grid.
func (p *Percolation) Size() int {
	return p.n
}

// Open opens site (row, col) if it is not open already.
//
// Steps:
//  1. Validate (row, col); on error nothing is modified.
//  2. Return early if the site is already open.
//  3. Mark it open; seed siteTop on row 1 and siteBottom on row N.
//  4. For each open 4-neighbor, OR the neighbor root's boundary flags into
//     the new site, then union the two.
//  5. OR the new site's accumulated flags into its final root; the union may
//     have picked a neighbor's root, which must absorb them.
//  6. If that root touches both rows, the system percolates.
//
// Complexity: O(α(N²)) amortized.
func (p *Percolation) Open(row, col int) error {
	idx, err := p.index(row, col)
	if err != nil {
		return err
	}
	if p.status[idx].has(siteOpen) {
		return nil
	}

	p.status[idx] = siteOpen
	if row == 1 {
		p.status[idx] |= siteTop
	}
	if row == p.n {
		p.status[idx] |= siteBottom
	}

	for _, d := range neighborOffsets {
		nr, nc := row+d[0], col+d[1]
		if !p.inBounds(nr, nc) {
			continue
		}
		nb := p.linear(nr, nc)
		if !p.status[nb].has(siteOpen) {
			continue
		}
		p.status[idx] |= p.status[p.forest.Find(nb)].boundary()
		p.forest.Union(idx, nb)
	}

	root := p.forest.Find(idx)
	p.status[root] |= p.status[idx].boundary()
	p.openSites++

	if p.status[root].has(siteTop | siteBottom) {
		p.percolates = true
	}

	return nil
}

// IsOpen reports whether site (row, col) is open.
func (p *Percolation) IsOpen(row, col int) (bool, error) {
	idx, err := p.index(row, col)
	if err != nil {
		return false, err
	}

	return p.status[idx].has(siteOpen), nil
}

// IsFull reports whether site (row, col) is open and connected to row 1
// through a chain of open 4-adjacent sites.
// Only the component root's flags are consulted.
// Complexity: O(α(N²)) amortized; Find may compress paths.
func (p *Percolation) IsFull(row, col int) (bool, error) {
	idx, err := p.index(row, col)
	if err != nil {
		return false, err
	}

	return p.full(idx), nil
}

// full is IsFull for an already validated index.
func (p *Percolation) full(idx int) bool {
	if !p.status[idx].has(siteOpen) {
		return false
	}

	return p.status[p.forest.Find(idx)].has(siteTop)
}

// Percolates reports whether some open path connects row 1 to row N.
// Once true it stays true.
func (p *Percolation) Percolates() bool {
	return p.percolates
}

// NumberOfOpenSites returns how many distinct sites have been opened.
func (p *Percolation) NumberOfOpenSites() int {
	return p.openSites
}

// String renders the grid one row per line:
// '#' blocked, 'o' open, '*' full.
func (p *Percolation) String() string {
	var sb strings.Builder
	sb.Grow(p.n * (p.n + 1))
	for row := 1; row <= p.n; row++ {
		for col := 1; col <= p.n; col++ {
			idx := p.linear(row, col)
			switch {
			case p.full(idx):
				sb.WriteByte('*')
			case p.status[idx].has(siteOpen):
				sb.WriteByte('o')
			default:
				sb.WriteByte('#')
			}
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}
