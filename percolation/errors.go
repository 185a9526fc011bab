package percolation

import "errors"

var (
	// ErrInvalidArgument indicates a non-positive grid side length.
	ErrInvalidArgument = errors.New("percolation: grid size must be > 0")
	// ErrOutOfRange indicates a row or column outside [1, n].
	ErrOutOfRange = errors.New("percolation: site index out of range")
)
