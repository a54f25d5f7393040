package percolation

import "fmt"

// index validates the 1-based (row, col) pair and maps it to the
// row-major linear index (row-1)*n + (col-1).
// Row is checked before col, so a doubly invalid pair reports the row.
// Complexity: O(1).
func (p *Percolation) index(row, col int) (int, error) {
	if row < 1 || row > p.n {
		return 0, fmt.Errorf("row %d not in [1,%d]: %w", row, p.n, ErrOutOfRange)
	}
	if col < 1 || col > p.n {
		return 0, fmt.Errorf("col %d not in [1,%d]: %w", col, p.n, ErrOutOfRange)
	}

	return p.linear(row, col), nil
}

// linear maps coordinates already known to be in bounds.
func (p *Percolation) linear(row, col int) int {
	return (row-1)*p.n + (col - 1)
}

// inBounds reports whether (row, col) lies on the grid.
func (p *Percolation) inBounds(row, col int) bool {
	return row >= 1 && row <= p.n && col >= 1 && col <= p.n
}
