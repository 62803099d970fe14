package animation

import "errors"

// Errors returned by animation operations.
var (
	// ErrInvalidArgument indicates options that cannot start a transition.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrUnknownEasing indicates an easing name that is not registered.
	ErrUnknownEasing = errors.New("unknown easing")
)
