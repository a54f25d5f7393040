package unionfind

import "errors"

// ErrInvalidSize indicates that the forest was requested with no elements.
var ErrInvalidSize = errors.New("unionfind: size must be positive")
