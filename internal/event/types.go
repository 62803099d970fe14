package event

// ListenerID identifies one listener record.
type ListenerID int64

// Listener is the interface for event listeners.
type Listener[P any] interface {
	// HandleEvent processes one emitted payload.
	// A non-nil error aborts the emit that invoked it.
	HandleEvent(payload P) error
}

// ListenerFunc is a function adapter for Listener.
//
// Function values are not comparable, so a ListenerFunc never matches in Off.
// Keep the ListenerID or use Func when removal by reference is needed.
type ListenerFunc[P any] func(payload P) error

// HandleEvent implements the Listener interface.
func (f ListenerFunc[P]) HandleEvent(payload P) error {
	return f(payload)
}

// FuncListener is a pointer-backed function listener.
// Two FuncListeners are equal only if they are the same pointer.
type FuncListener[P any] struct {
	fn func(P) error
}

// Func wraps fn in a listener that can be removed by reference.
func Func[P any](fn func(P) error) *FuncListener[P] {
	return &FuncListener[P]{fn: fn}
}

// HandleEvent implements the Listener interface.
func (l *FuncListener[P]) HandleEvent(payload P) error {
	return l.fn(payload)
}

// Emitter is implemented by types that let the public listen to their events.
type Emitter[K comparable, P any] interface {
	// On registers a listener and returns its id.
	On(name K, listener Listener[P], opts ...ListenerOption) ListenerID

	// OnFunc registers a function listener and returns its id.
	OnFunc(name K, fn func(P) error, opts ...ListenerOption) ListenerID

	// Off removes every record under name whose listener equals listener.
	Off(name K, listener Listener[P]) bool

	// OffID removes the record with the given id.
	OffID(name K, id ListenerID) bool
}
