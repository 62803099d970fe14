// Package selection tracks which items of a collection are selected and
// publishes every change on an event bus.
package selection

import (
	"slices"
	"strconv"
	"sync"

	"github.com/dshills/crux/internal/event"
)

// EventName names the events a Model emits.
type EventName string

// EventChange is emitted after every selection mutation.
const EventChange EventName = "change"

// Change describes one selection mutation.
// Added and Removed are never nil.
type Change[T any] struct {
	Added   []T
	Removed []T
}

// modelSeq numbers model buses; the first model is selection-model-0.
var modelSeq = event.NewSequence(-1)

// Model tracks selected items keyed by an identity function.
// Selected items keep the order in which they were first selected.
type Model[T any, K comparable] struct {
	mu       sync.RWMutex
	identify func(T) K
	items    map[K]T
	order    []K

	bus *event.Bus[EventName, Change[T]]
}

// New creates a model that identifies items by their own value.
func New[T comparable](opts ...event.BusOption) *Model[T, T] {
	return NewBy(func(item T) T { return item }, opts...)
}

// NewBy creates a model that identifies items by the key identify returns.
// Bus options are applied after the default name, so WithName overrides it.
func NewBy[T any, K comparable](identify func(T) K, opts ...event.BusOption) *Model[T, K] {
	name := "selection-model-" + strconv.FormatInt(modelSeq.Next(), 10)
	busOpts := append([]event.BusOption{event.WithName(name)}, opts...)

	return &Model[T, K]{
		identify: identify,
		items:    make(map[K]T),
		bus:      event.New[EventName, Change[T]](busOpts...),
	}
}

// Name returns the name of the model's bus.
func (m *Model[T, K]) Name() string {
	return m.bus.Name()
}

// Toggle deselects item if it is selected and selects it otherwise.
func (m *Model[T, K]) Toggle(item T) error {
	m.mu.Lock()
	if m.remove(m.identify(item)) {
		m.mu.Unlock()
		return m.emit([]T{}, []T{item})
	}
	m.put(item)
	m.mu.Unlock()

	return m.emit([]T{item}, []T{})
}

// Select stores item, replacing any item with the same key, and always
// emits a change naming it as added.
func (m *Model[T, K]) Select(item T) error {
	m.mu.Lock()
	m.put(item)
	m.mu.Unlock()

	return m.emit([]T{item}, []T{})
}

// Deselect removes item. Nothing is emitted if it was not selected.
func (m *Model[T, K]) Deselect(item T) error {
	m.mu.Lock()
	removed := m.remove(m.identify(item))
	m.mu.Unlock()

	if !removed {
		return nil
	}
	return m.emit([]T{}, []T{item})
}

// Clear deselects everything and emits the removed items, even when the
// selection was already empty.
func (m *Model[T, K]) Clear() error {
	m.mu.Lock()
	removed := m.selectedLocked()
	clear(m.items)
	m.order = m.order[:0]
	m.mu.Unlock()

	return m.emit([]T{}, removed)
}

// SelectMultiple selects every item that is not selected yet and emits
// those as added.
func (m *Model[T, K]) SelectMultiple(items []T) error {
	added := []T{}

	m.mu.Lock()
	for _, item := range items {
		if _, ok := m.items[m.identify(item)]; ok {
			continue
		}
		m.put(item)
		added = append(added, item)
	}
	m.mu.Unlock()

	return m.emit(added, []T{})
}

// DeselectMultiple deselects every item that is selected and emits those
// as removed.
func (m *Model[T, K]) DeselectMultiple(items []T) error {
	removed := []T{}

	m.mu.Lock()
	for _, item := range items {
		if m.remove(m.identify(item)) {
			removed = append(removed, item)
		}
	}
	m.mu.Unlock()

	return m.emit([]T{}, removed)
}

// IsSelected returns true if an item with the same key is selected.
func (m *Model[T, K]) IsSelected(item T) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.items[m.identify(item)]
	return ok
}

// Selected returns the selected items in selection order.
func (m *Model[T, K]) Selected() []T {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.selectedLocked()
}

// Count returns the number of selected items.
func (m *Model[T, K]) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.items)
}

// HasSelection returns true if at least one item is selected.
func (m *Model[T, K]) HasSelection() bool {
	return m.Count() > 0
}

// HasSingleSelection returns true if exactly one item is selected.
func (m *Model[T, K]) HasSingleSelection() bool {
	return m.Count() == 1
}

// HasMultipleSelection returns true if more than one item is selected.
func (m *Model[T, K]) HasMultipleSelection() bool {
	return m.Count() > 1
}

// Destroy removes all listeners and clears the selection without emitting.
func (m *Model[T, K]) Destroy() {
	m.bus.Clear()

	m.mu.Lock()
	defer m.mu.Unlock()
	clear(m.items)
	m.order = nil
}

// On registers a listener for a model event.
func (m *Model[T, K]) On(name EventName, listener event.Listener[Change[T]], opts ...event.ListenerOption) event.ListenerID {
	return m.bus.On(name, listener, opts...)
}

// OnFunc registers a function listener for a model event.
func (m *Model[T, K]) OnFunc(name EventName, fn func(Change[T]) error, opts ...event.ListenerOption) event.ListenerID {
	return m.bus.OnFunc(name, fn, opts...)
}

// Off removes a listener by reference.
func (m *Model[T, K]) Off(name EventName, listener event.Listener[Change[T]]) bool {
	return m.bus.Off(name, listener)
}

// OffID removes a listener by id.
func (m *Model[T, K]) OffID(name EventName, id event.ListenerID) bool {
	return m.bus.OffID(name, id)
}

// put stores item. Caller must hold the write lock.
func (m *Model[T, K]) put(item T) {
	key := m.identify(item)
	if _, ok := m.items[key]; !ok {
		m.order = append(m.order, key)
	}
	m.items[key] = item
}

// remove deletes the item stored under key. Caller must hold the write lock.
func (m *Model[T, K]) remove(key K) bool {
	if _, ok := m.items[key]; !ok {
		return false
	}
	delete(m.items, key)
	if i := slices.Index(m.order, key); i >= 0 {
		m.order = slices.Delete(m.order, i, i+1)
	}
	return true
}

// selectedLocked copies the selected items. Caller must hold a lock.
func (m *Model[T, K]) selectedLocked() []T {
	out := make([]T, 0, len(m.order))
	for _, key := range m.order {
		out = append(out, m.items[key])
	}
	return out
}

func (m *Model[T, K]) emit(added, removed []T) error {
	return m.bus.Emit(EventChange, Change[T]{Added: added, Removed: removed})
}

var _ event.Emitter[EventName, Change[string]] = (*Model[string, string])(nil)
