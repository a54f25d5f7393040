package percolation

import "errors"

var (
	// ErrInvalidSize indicates a grid was requested with N <= 0.
	ErrInvalidSize = errors.New("percolation: grid size must be positive")
	// ErrOutOfRange indicates a row or column outside [1, N].
	// Returned errors wrap it with the offending coordinate; match with errors.Is.
	ErrOutOfRange = errors.New("percolation: index out of range")
)
