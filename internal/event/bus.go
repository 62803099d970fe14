package event

import (
	"fmt"
	"strconv"
	"sync"
)

// Bus is a named-event publish/subscribe registry.
type Bus[K comparable, P any] struct {
	name     string
	counters *Counters

	sinkOnce sync.Once
	sink     Sink

	registry *registry[K, P]
}

// New creates a new event bus with the given options.
// Without WithName the bus is named "event-bus-<n>".
func New[K comparable, P any](opts ...BusOption) *Bus[K, P] {
	config := defaultBusConfig()
	for _, opt := range opts {
		opt(&config)
	}

	// The sequence advances for named buses too, so generated names stay
	// aligned with the number of buses created.
	seq := config.counters.NextBus()
	name := config.name
	if name == "" {
		name = "event-bus-" + strconv.FormatInt(seq, 10)
	}

	return &Bus[K, P]{
		name:     name,
		counters: config.counters,
		sink:     config.sink,
		registry: newRegistry[K, P](),
	}
}

// Name returns the bus name.
func (b *Bus[K, P]) Name() string {
	return b.name
}

// On registers a listener for an event and returns its id.
// Registration always succeeds; a nil listener panics.
func (b *Bus[K, P]) On(name K, listener Listener[P], opts ...ListenerOption) ListenerID {
	if listener == nil {
		panic(ErrNilListener)
	}

	var options ListenerOptions
	for _, opt := range opts {
		opt(&options)
	}

	rec := &record[P]{
		id:       b.counters.NextListener(),
		listener: listener,
		options:  options,
	}
	b.registry.add(name, rec)
	return rec.id
}

// OnFunc is a convenience method for registering a function listener.
func (b *Bus[K, P]) OnFunc(name K, fn func(P) error, opts ...ListenerOption) ListenerID {
	if fn == nil {
		panic(ErrNilListener)
	}
	return b.On(name, ListenerFunc[P](fn), opts...)
}

// Off removes every listener registered under name that equals listener.
// Returns true if anything was removed.
func (b *Bus[K, P]) Off(name K, listener Listener[P]) bool {
	return b.registry.removeFunc(name, func(rec *record[P]) bool {
		return sameListener(rec.listener, listener)
	}) > 0
}

// OffID removes the listener with the given id from name.
// Returns true if it was registered.
func (b *Bus[K, P]) OffID(name K, id ListenerID) bool {
	return b.registry.removeFunc(name, func(rec *record[P]) bool {
		return rec.id == id
	}) > 0
}

// Emit invokes every listener registered for name, in registration order,
// on the calling goroutine. The first listener error stops delivery and is
// returned as a *ListenerError.
func (b *Bus[K, P]) Emit(name K, payload P) error {
	for _, rec := range b.registry.snapshot(name) {
		if rec.removed.Load() {
			continue
		}
		if rec.options.Once && !rec.claimed.CompareAndSwap(false, true) {
			continue
		}

		if err := b.invoke(name, rec, payload); err != nil {
			return &ListenerError{
				Bus:        b.name,
				Event:      fmt.Sprint(name),
				ListenerID: rec.id,
				Err:        err,
			}
		}
	}
	return nil
}

// Fire emits name with the zero payload.
func (b *Bus[K, P]) Fire(name K) error {
	var zero P
	return b.Emit(name, zero)
}

// invoke runs one listener and applies its options.
func (b *Bus[K, P]) invoke(name K, rec *record[P], payload P) error {
	if rec.options.Once {
		defer b.registry.removeFunc(name, func(r *record[P]) bool {
			return r == rec
		})
	}

	if err := rec.listener.HandleEvent(payload); err != nil {
		return err
	}

	if rec.options.Log {
		b.logEvent(name, payload)
	}
	return nil
}

// logEvent writes a diagnostic record to the sink.
func (b *Bus[K, P]) logEvent(name K, payload P) {
	b.sinkOnce.Do(func() {
		if b.sink == nil {
			b.sink = defaultSink()
		}
	})
	b.sink.Record(Record{
		Bus:     b.name,
		Event:   fmt.Sprint(name),
		Payload: payload,
	})
}

// Clear removes all listeners for all events.
func (b *Bus[K, P]) Clear() {
	b.registry.clear()
}

// Len returns the number of listeners registered for name.
func (b *Bus[K, P]) Len(name K) int {
	return b.registry.count(name)
}

// Count returns the number of listeners across all events.
func (b *Bus[K, P]) Count() int {
	return b.registry.total()
}

// Names returns the event names that have listeners, in no particular order.
func (b *Bus[K, P]) Names() []K {
	return b.registry.names()
}

var _ Emitter[string, any] = (*Bus[string, any])(nil)
