package frame

import (
	"context"
	"sync"
	"time"
)

// Callback receives the timestamp of the frame it runs in.
type Callback func(now time.Time)

// Scheduler is the capability animations need from their host.
type Scheduler interface {
	// Now reads the scheduler clock.
	Now() time.Time

	// RequestFrame runs fn once, on the next frame.
	RequestFrame(fn Callback)
}

// queue holds callbacks waiting for the next frame.
type queue struct {
	mu      sync.Mutex
	pending []Callback
}

func (q *queue) push(fn Callback) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.pending = append(q.pending, fn)
}

// drain takes every pending callback, leaving the queue empty.
func (q *queue) drain() []Callback {
	q.mu.Lock()
	defer q.mu.Unlock()
	batch := q.pending
	q.pending = nil
	return batch
}

func (q *queue) len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.pending)
}

var (
	defaultOnce   sync.Once
	defaultTicker *Ticker
)

// Default returns the process-wide ticker, starting it on first use.
// It runs for the life of the process at DefaultRate.
func Default() *Ticker {
	defaultOnce.Do(func() {
		defaultTicker = NewTicker()
		go func() {
			_ = defaultTicker.Run(context.Background())
		}()
	})
	return defaultTicker
}
