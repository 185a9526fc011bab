package montecarlo

import "errors"

var (
	// ErrInvalidArgument indicates a non-positive grid size or trial count,
	// or a missing random source.
	ErrInvalidArgument = errors.New("montecarlo: invalid argument")
	// ErrSharedSource indicates an injected Source was combined with more
	// than one worker; a single Source cannot feed concurrent trials.
	ErrSharedSource = errors.New("montecarlo: injected source requires Workers <= 1")
)
