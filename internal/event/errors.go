package event

import (
	"errors"
	"strconv"
)

// Sentinel errors for the event bus.
var (
	// ErrNilListener is the panic value used when a nil listener is registered.
	ErrNilListener = errors.New("listener cannot be nil")
)

// ListenerError wraps an error returned by a listener with additional context.
type ListenerError struct {
	// Bus is the name of the bus that emitted the event.
	Bus string

	// Event is the event name.
	Event string

	// ListenerID is the id of the listener that failed.
	ListenerID ListenerID

	// Err is the underlying error.
	Err error
}

// Error implements the error interface.
func (e *ListenerError) Error() string {
	return "listener " + strconv.FormatInt(int64(e.ListenerID), 10) +
		" failed on " + e.Bus + "/" + e.Event + ": " + e.Err.Error()
}

// Unwrap returns the underlying error.
func (e *ListenerError) Unwrap() error {
	return e.Err
}
