package frame

import (
	"context"
	"errors"
	"sync/atomic"
	"time"
)

// DefaultRate is the default frame rate in frames per second.
const DefaultRate = 60

// ErrTickerRunning is returned when Run is called on a running ticker.
var ErrTickerRunning = errors.New("frame ticker is already running")

// Ticker is a Scheduler backed by a real time.Ticker.
type Ticker struct {
	interval time.Duration
	hook     Callback

	queue   queue
	running atomic.Bool
	frames  atomic.Uint64
}

// TickerOption configures a Ticker.
type TickerOption func(*Ticker)

// WithRate sets the frame rate in frames per second.
// Values outside 1..1000 are ignored.
func WithRate(fps int) TickerOption {
	return func(t *Ticker) {
		if fps > 0 && fps <= 1000 {
			t.interval = time.Second / time.Duration(fps)
		}
	}
}

// WithFrameHook sets a callback that runs after every frame that ran at least
// one callback. Hosts use it to flush what the callbacks drew.
func WithFrameHook(fn Callback) TickerOption {
	return func(t *Ticker) {
		t.hook = fn
	}
}

// NewTicker creates a ticker. It does nothing until Run is called.
func NewTicker(opts ...TickerOption) *Ticker {
	t := &Ticker{
		interval: time.Second / DefaultRate,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Now returns the current time. The value carries a monotonic reading.
func (t *Ticker) Now() time.Time {
	return time.Now()
}

// RequestFrame queues fn for the next frame.
func (t *Ticker) RequestFrame(fn Callback) {
	if fn == nil {
		return
	}
	t.queue.push(fn)
}

// Interval returns the time between frames.
func (t *Ticker) Interval() time.Duration {
	return t.interval
}

// Frames returns the number of frames that ran callbacks.
func (t *Ticker) Frames() uint64 {
	return t.frames.Load()
}

// Pending returns the number of callbacks waiting for the next frame.
func (t *Ticker) Pending() int {
	return t.queue.len()
}

// Run drives frames until ctx is done. It returns nil on cancellation.
// Callbacks run on the goroutine that calls Run.
func (t *Ticker) Run(ctx context.Context) error {
	if !t.running.CompareAndSwap(false, true) {
		return ErrTickerRunning
	}
	defer t.running.Store(false)

	ticker := time.NewTicker(t.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case now := <-ticker.C:
			t.tick(now)
		}
	}
}

// tick runs one frame.
func (t *Ticker) tick(now time.Time) {
	batch := t.queue.drain()
	if len(batch) == 0 {
		return
	}
	for _, fn := range batch {
		fn(now)
	}
	t.frames.Add(1)
	if t.hook != nil {
		t.hook(now)
	}
}
