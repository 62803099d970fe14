package event

import "sync/atomic"

// Sequence is a monotonically increasing counter.
type Sequence struct {
	start int64
	n     atomic.Int64
}

// NewSequence creates a sequence whose first Next returns start+1.
func NewSequence(start int64) *Sequence {
	s := &Sequence{start: start}
	s.n.Store(start)
	return s
}

// Next returns the next value.
func (s *Sequence) Next() int64 {
	return s.n.Add(1)
}

// Current returns the last value handed out.
func (s *Sequence) Current() int64 {
	return s.n.Load()
}

// Reset rewinds the sequence to its start.
// Only safe when nothing still holds values from the previous run.
func (s *Sequence) Reset() {
	s.n.Store(s.start)
}

// Counters owns the bus name sequence and the listener id sequence.
type Counters struct {
	buses     *Sequence
	listeners *Sequence
}

// NewCounters creates a fresh id source.
// The first bus is numbered 1 and the first listener id is 0.
func NewCounters() *Counters {
	return &Counters{
		buses:     NewSequence(0),
		listeners: NewSequence(-1),
	}
}

var defaultCounters = NewCounters()

// DefaultCounters returns the process-wide id source.
func DefaultCounters() *Counters {
	return defaultCounters
}

// NextBus returns the next bus sequence number.
func (c *Counters) NextBus() int64 {
	return c.buses.Next()
}

// NextListener returns the next listener id.
func (c *Counters) NextListener() ListenerID {
	return ListenerID(c.listeners.Next())
}

// Reset rewinds both sequences.
func (c *Counters) Reset() {
	c.buses.Reset()
	c.listeners.Reset()
}
