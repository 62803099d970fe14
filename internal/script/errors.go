package script

import "errors"

// Errors for Lua runtime operations.
var (
	// ErrClosed is returned when operating on a closed runtime.
	ErrClosed = errors.New("lua runtime is closed")

	// ErrNotFunction is returned when a chunk does not produce a function.
	ErrNotFunction = errors.New("lua value is not a function")

	// ErrNotNumber is returned when an easing returns a non-number.
	ErrNotNumber = errors.New("lua easing did not return a number")
)
