package event

import (
	"reflect"
	"slices"
	"sync"
	"sync/atomic"
)

// record is one registered listener.
type record[P any] struct {
	id       ListenerID
	listener Listener[P]
	options  ListenerOptions

	// removed is set once the record leaves the registry.
	removed atomic.Bool

	// claimed is set by the single emit allowed to run a once listener.
	claimed atomic.Bool
}

// registry manages listener records organized by event name.
// It is safe for concurrent access.
type registry[K comparable, P any] struct {
	mu     sync.Mutex
	events map[K][]*record[P]
}

func newRegistry[K comparable, P any]() *registry[K, P] {
	return &registry[K, P]{
		events: make(map[K][]*record[P]),
	}
}

// add appends a record for name.
// The list for name is created on first use.
func (r *registry[K, P]) add(name K, rec *record[P]) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.events[name] = append(r.events[name], rec)
}

// snapshot returns a copy of the records for name in registration order.
func (r *registry[K, P]) snapshot(name K) []*record[P] {
	r.mu.Lock()
	defer r.mu.Unlock()

	return slices.Clone(r.events[name])
}

// removeFunc removes every record under name matching fn.
// Returns the number of records removed.
func (r *registry[K, P]) removeFunc(name K, fn func(*record[P]) bool) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	recs, ok := r.events[name]
	if !ok {
		return 0
	}

	removed := 0
	kept := recs[:0:0]
	for _, rec := range recs {
		if fn(rec) {
			rec.removed.Store(true)
			removed++
			continue
		}
		kept = append(kept, rec)
	}

	if len(kept) == 0 {
		delete(r.events, name)
	} else {
		r.events[name] = kept
	}
	return removed
}

// clear removes all records for all names.
func (r *registry[K, P]) clear() {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, recs := range r.events {
		for _, rec := range recs {
			rec.removed.Store(true)
		}
	}
	r.events = make(map[K][]*record[P])
}

// count returns the number of records for name.
func (r *registry[K, P]) count(name K) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.events[name])
}

// total returns the number of records across all names.
func (r *registry[K, P]) total() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	n := 0
	for _, recs := range r.events {
		n += len(recs)
	}
	return n
}

// names returns the names with at least one record, in no particular order.
func (r *registry[K, P]) names() []K {
	r.mu.Lock()
	defer r.mu.Unlock()

	if len(r.events) == 0 {
		return nil
	}
	names := make([]K, 0, len(r.events))
	for name := range r.events {
		names = append(names, name)
	}
	return names
}

// sameListener reports whether a and b are the same listener reference.
// Listeners whose dynamic value is not comparable never match.
func sameListener[P any](a, b Listener[P]) bool {
	if a == nil || b == nil {
		return false
	}
	va, vb := reflect.ValueOf(a), reflect.ValueOf(b)
	if va.Type() != vb.Type() || !va.Comparable() || !vb.Comparable() {
		return false
	}
	return a == b
}
