package frame

import (
	"sync"
	"time"
)

// Manual is a deterministic Scheduler. Time only moves through Advance.
type Manual struct {
	mu     sync.Mutex
	now    time.Time
	frames int

	queue queue
}

// NewManual creates a manual scheduler whose clock reads start.
// A zero start is replaced by the Unix epoch.
func NewManual(start time.Time) *Manual {
	if start.IsZero() {
		start = time.Unix(0, 0)
	}
	return &Manual{now: start}
}

// Now returns the manual clock.
func (m *Manual) Now() time.Time {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.now
}

// RequestFrame queues fn for the next Step or Advance.
func (m *Manual) RequestFrame(fn Callback) {
	if fn == nil {
		return
	}
	m.queue.push(fn)
}

// Pending returns the number of callbacks waiting for a frame.
func (m *Manual) Pending() int {
	return m.queue.len()
}

// Frames returns the number of frames that ran callbacks.
func (m *Manual) Frames() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.frames
}

// Step runs one frame at the current time.
// Returns the number of callbacks that ran.
func (m *Manual) Step() int {
	batch := m.queue.drain()
	if len(batch) == 0 {
		return 0
	}

	m.mu.Lock()
	now := m.now
	m.frames++
	m.mu.Unlock()

	for _, fn := range batch {
		fn(now)
	}
	return len(batch)
}

// Advance moves the clock forward by d, then runs one frame.
func (m *Manual) Advance(d time.Duration) int {
	m.mu.Lock()
	m.now = m.now.Add(d)
	m.mu.Unlock()
	return m.Step()
}

// Drain advances by interval until no callbacks are pending or maxFrames
// frames have run. Returns the number of frames run.
func (m *Manual) Drain(interval time.Duration, maxFrames int) int {
	n := 0
	for n < maxFrames && m.Pending() > 0 {
		m.Advance(interval)
		n++
	}
	return n
}
