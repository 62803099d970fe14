package animation

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/dshills/crux/internal/a11y"
	"github.com/dshills/crux/internal/frame"
	"github.com/dshills/crux/internal/mathx"
)

// State is the lifecycle state of a transition.
type State int32

const (
	// StateRunning means frames are still being rendered.
	StateRunning State = iota

	// StateFinished means the transition rendered t = 1.
	StateFinished

	// StateCanceled means the transition stopped after Cancel.
	StateCanceled
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateRunning:
		return "running"
	case StateFinished:
		return "finished"
	case StateCanceled:
		return "canceled"
	default:
		return fmt.Sprintf("State(%d)", int32(s))
	}
}

// Options configures a transition.
type Options struct {
	// Render is called with the eased progress, rounded to 4 decimals.
	// Required.
	Render func(t float64)

	// Duration is the length of the transition. Must be positive.
	Duration time.Duration

	// Easing maps linear progress to eased progress. Required.
	Easing Easing

	// RespectReducedMotion skips straight to the final frame when Motion
	// reports a reduced-motion preference.
	RespectReducedMotion bool

	// OnCanceled is called when a canceled transition observes the cancel.
	OnCanceled func()

	// OnFinished is called after the final frame rendered.
	OnFinished func()

	// OnCompleted is called after OnCanceled or OnFinished.
	OnCompleted func()

	// Scheduler supplies frames. Defaults to frame.Default().
	Scheduler frame.Scheduler

	// Motion answers the reduced-motion query. Defaults to a11y.System().
	Motion a11y.Preference
}

func noop() {}

// validate checks required fields and fills in defaults.
func (o *Options) validate() error {
	if o.Render == nil {
		return fmt.Errorf("%w: render function is required", ErrInvalidArgument)
	}
	if o.Easing == nil {
		return fmt.Errorf("%w: easing is required", ErrInvalidArgument)
	}
	if o.Duration <= 0 {
		return fmt.Errorf("%w: duration must be positive, got %s", ErrInvalidArgument, o.Duration)
	}

	if o.OnCanceled == nil {
		o.OnCanceled = noop
	}
	if o.OnFinished == nil {
		o.OnFinished = noop
	}
	if o.OnCompleted == nil {
		o.OnCompleted = noop
	}
	if o.Motion == nil {
		o.Motion = a11y.System()
	}
	return nil
}

// Handle controls a started transition.
type Handle struct {
	id   string
	opts Options

	start    time.Time
	reduced  bool
	canceled atomic.Bool
	state    atomic.Int32

	doneOnce sync.Once
	done     chan struct{}
}

// Start begins a transition. The first frame is requested immediately;
// invalid options return an error wrapping ErrInvalidArgument and nothing
// runs.
//
// With RespectReducedMotion set and reduced motion preferred, Start renders
// t = 1, calls OnFinished and OnCompleted, and returns a handle that is
// already done.
func Start(opts Options) (*Handle, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}

	h := &Handle{
		id:   uuid.NewString(),
		opts: opts,
		done: make(chan struct{}),
	}

	if opts.RespectReducedMotion && opts.Motion.PrefersReducedMotion() {
		h.reduced = true
		opts.Render(1)
		opts.OnFinished()
		opts.OnCompleted()
		h.complete(StateFinished)
		return h, nil
	}

	if h.opts.Scheduler == nil {
		h.opts.Scheduler = frame.Default()
	}
	h.start = h.opts.Scheduler.Now()
	h.opts.Scheduler.RequestFrame(h.step)
	return h, nil
}

// ID returns a unique identifier for this run.
func (h *Handle) ID() string {
	return h.id
}

// Cancel asks the transition to stop. The next frame observes the request
// and calls OnCanceled then OnCompleted. Cancel after completion has no
// effect, except on a reduced-motion handle, where every call invokes
// OnCanceled directly.
func (h *Handle) Cancel() {
	if h.reduced {
		h.opts.OnCanceled()
		return
	}
	h.canceled.Store(true)
}

// Done returns a channel that is closed when the transition completes.
func (h *Handle) Done() <-chan struct{} {
	return h.done
}

// Wait blocks until the transition completes or ctx is done.
func (h *Handle) Wait(ctx context.Context) error {
	select {
	case <-h.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// State returns the current lifecycle state.
func (h *Handle) State() State {
	return State(h.state.Load())
}

// step renders one frame at now.
func (h *Handle) step(now time.Time) {
	if h.canceled.Load() {
		h.opts.OnCanceled()
		h.opts.OnCompleted()
		h.complete(StateCanceled)
		return
	}

	raw := mathx.ClampedInvLerp(float64(now.Sub(h.start)), 0, float64(h.opts.Duration))
	h.opts.Render(mathx.RoundPrecision(h.opts.Easing(raw), 4))

	if raw < 1 {
		h.opts.Scheduler.RequestFrame(h.step)
		return
	}

	h.opts.OnFinished()
	h.opts.OnCompleted()
	h.complete(StateFinished)
}

// complete records the terminal state and closes Done.
func (h *Handle) complete(state State) {
	h.doneOnce.Do(func() {
		h.state.Store(int32(state))
		close(h.done)
	})
}
