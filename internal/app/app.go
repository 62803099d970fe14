// Package app wires the crux packages into a terminal demo: a selectable
// list whose highlight bar slides and changes color as the cursor and the
// selection change.
//
// Everything that touches application state runs on the frame scheduler's
// goroutine. Input reaches it through Post, configuration reloads through
// ApplyConfig, and the host's frame hook calls Draw.
package app

import (
	"context"
	"fmt"
	"slices"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/dshills/crux/internal/a11y"
	"github.com/dshills/crux/internal/animation"
	"github.com/dshills/crux/internal/config"
	"github.com/dshills/crux/internal/event"
	"github.com/dshills/crux/internal/frame"
	"github.com/dshills/crux/internal/mathx/rect"
	"github.com/dshills/crux/internal/selection"
	"github.com/dshills/crux/internal/tween"
)

// Events published on the application bus.
const (
	// EventSelectionChange carries a selection.Change[string].
	EventSelectionChange = "selection.change"

	// EventCursorMove carries the new cursor row as an int.
	EventCursorMove = "cursor.move"

	// EventTransitionStart and EventTransitionEnd carry a Transition.
	EventTransitionStart = "transition.start"
	EventTransitionEnd   = "transition.end"

	// EventConfigApplied carries the applied *config.Config.
	EventConfigApplied = "config.applied"
)

// Commands the application listens for. Scripts emit these to drive the
// list; the payload is an item label.
const (
	CommandToggle = "command.toggle"
	CommandSelect = "command.select"
	CommandClear  = "command.clear"
)

// Transition describes one highlight animation.
type Transition struct {
	Seq     int
	From    int
	To      int
	State   string
	Reduced bool
}

// Screen is the part of tcell.Screen the application draws on.
type Screen interface {
	Size() (width, height int)
	SetContent(x, y int, primary rune, combining []rune, style tcell.Style)
	Clear()
	Show()
}

// Options configures the application.
type Options struct {
	// Config is the initial configuration. Defaults to config.Default().
	Config *config.Config

	// Screen receives the drawn frames. Required.
	Screen Screen

	// Scheduler drives transitions and serializes input.
	// Defaults to frame.Default().
	Scheduler frame.Scheduler

	// Motion is consulted when the configuration defers reduced motion
	// to the system. Defaults to a11y.System().
	Motion a11y.Preference

	// Bus is the application bus. Defaults to a new bus named "app".
	Bus *event.Bus[string, any]

	// Logger defaults to a NullLogger.
	Logger *Logger

	// Metrics defaults to a fresh tracker.
	Metrics *Metrics
}

// Application is the demo's state and coordinator.
type Application struct {
	cfg     *config.Config
	screen  Screen
	sched   frame.Scheduler
	bus     *event.Bus[string, any]
	model   *selection.Model[string, string]
	logger  *Logger
	metrics *Metrics

	systemMotion a11y.Preference
	reduced      atomic.Bool

	easing     animation.Easing
	highlight  colorful.Color
	idle       colorful.Color
	background colorful.Color

	items    []string
	cursor   int
	bar      rect.Rect
	barColor colorful.Color
	active   *animation.Handle
	seq      int
	status   string

	quitOnce sync.Once
	done     chan struct{}
}

// New creates an application and draws nothing until the first frame.
func New(opts Options) (*Application, error) {
	if opts.Screen == nil {
		return nil, ErrNoScreen
	}
	if opts.Config == nil {
		opts.Config = config.Default()
	}
	if opts.Scheduler == nil {
		opts.Scheduler = frame.Default()
	}
	if opts.Motion == nil {
		opts.Motion = a11y.System()
	}
	if opts.Bus == nil {
		opts.Bus = event.New[string, any](event.WithName("app"))
	}
	if opts.Logger == nil {
		opts.Logger = NullLogger()
	}
	if opts.Metrics == nil {
		opts.Metrics = NewMetrics()
	}

	a := &Application{
		screen:       opts.Screen,
		sched:        opts.Scheduler,
		bus:          opts.Bus,
		model:        selection.New[string](event.WithName("app-selection")),
		logger:       opts.Logger,
		metrics:      opts.Metrics,
		systemMotion: opts.Motion,
		done:         make(chan struct{}),
	}

	if err := a.applyConfig(opts.Config); err != nil {
		return nil, err
	}
	a.bar = a.rowRect(a.cursor)
	a.barColor = a.targetColor(a.cursor)

	listenerOpts := event.WithListenerOptions(event.ListenerOptions{Log: opts.Config.Events.LogListeners})
	a.model.OnFunc(selection.EventChange, a.onSelectionChange, listenerOpts)
	a.bus.OnFunc(CommandToggle, a.commandItem(a.model.Toggle), listenerOpts)
	a.bus.OnFunc(CommandSelect, a.commandItem(a.model.Select), listenerOpts)
	a.bus.OnFunc(CommandClear, func(any) error { return a.model.Clear() }, listenerOpts)

	return a, nil
}

// Bus returns the application bus.
func (a *Application) Bus() *event.Bus[string, any] {
	return a.bus
}

// Selection returns the selection model.
func (a *Application) Selection() *selection.Model[string, string] {
	return a.model
}

// Metrics returns the application's metrics.
func (a *Application) Metrics() *Metrics {
	return a.metrics
}

// Run waits until ctx is done or the user quits. Quitting returns ErrQuit.
// It schedules one frame so the host's frame hook draws the first screen.
func (a *Application) Run(ctx context.Context) error {
	a.sched.RequestFrame(func(time.Time) {})

	select {
	case <-ctx.Done():
		return nil
	case <-a.done:
		return ErrQuit
	}
}

// Quit makes Run return ErrQuit. Safe to call more than once.
func (a *Application) Quit() {
	a.quitOnce.Do(func() {
		close(a.done)
	})
}

// ApplyConfig schedules cfg to replace the current configuration.
func (a *Application) ApplyConfig(cfg *config.Config) {
	a.sched.RequestFrame(func(time.Time) {
		if err := a.applyConfig(cfg); err != nil {
			a.logger.WithComponent("config").Error("apply: %v", err)
			a.status = err.Error()
			return
		}
		a.status = "configuration reloaded"
		a.emit(EventConfigApplied, cfg)
		a.animateTo()
	})
}

// applyConfig installs cfg. Items that disappeared are deselected.
func (a *Application) applyConfig(cfg *config.Config) error {
	if len(cfg.Demo.Items) == 0 {
		return ErrNoItems
	}
	easing, err := cfg.Easing()
	if err != nil {
		return NewComponentError("config", "easing", err)
	}

	var colors [2]colorful.Color
	for i, hex := range []string{cfg.Demo.Highlight, cfg.Demo.Background} {
		if colors[i], err = tween.Hex(hex); err != nil {
			return NewComponentError("config", "colors", err)
		}
	}

	var gone []string
	for _, item := range a.items {
		if !slices.Contains(cfg.Demo.Items, item) {
			gone = append(gone, item)
		}
	}

	a.cfg = cfg.Clone()
	a.items = a.cfg.Demo.Items
	a.easing = easing
	a.highlight, a.background = colors[0], colors[1]
	a.idle = a.background.BlendLab(a.highlight, 0.35).Clamped()
	a.reduced.Store(a.cfg.Motion(a.systemMotion).PrefersReducedMotion())
	a.cursor = min(a.cursor, len(a.items)-1)

	if len(gone) > 0 {
		if err := a.model.DeselectMultiple(gone); err != nil {
			return NewComponentError("selection", "prune", err)
		}
	}
	return nil
}

// onSelectionChange republishes model changes and restyles the bar.
func (a *Application) onSelectionChange(change selection.Change[string]) error {
	a.logger.WithComponent("selection").Debug("added %v removed %v", change.Added, change.Removed)
	a.emit(EventSelectionChange, change)
	a.animateTo()
	return nil
}

// commandItem adapts a model operation to a bus command listener.
func (a *Application) commandItem(op func(string) error) func(any) error {
	return func(payload any) error {
		item, ok := payload.(string)
		if !ok || !slices.Contains(a.items, item) {
			return fmt.Errorf("%w: %v", ErrUnknownItem, payload)
		}
		return op(item)
	}
}

// moveCursor moves the cursor by delta rows, stopping at the ends.
func (a *Application) moveCursor(delta int) {
	a.moveTo(a.cursor + delta)
}

func (a *Application) moveTo(row int) {
	row = max(0, min(row, len(a.items)-1))
	if row == a.cursor {
		return
	}
	a.cursor = row
	a.emit(EventCursorMove, row)
	a.animateTo()
}

// toggleMotion flips the reduced-motion preference for this session.
func (a *Application) toggleMotion() {
	on := !a.reduced.Load()
	a.reduced.Store(on)
	a.status = "reduced motion " + onOff(on)
	a.logger.Info("reduced motion %s", onOff(on))
}

// animateTo moves the bar to the cursor row, canceling any running
// transition. The new one starts from wherever the bar is now.
func (a *Application) animateTo() {
	if a.active != nil && a.active.State() == animation.StateRunning {
		a.active.Cancel()
	}

	a.seq++
	info := Transition{
		Seq:     a.seq,
		From:    a.rowOf(a.bar) - listTop,
		To:      a.cursor,
		Reduced: a.cfg.Animation.RespectReducedMotion && a.reduced.Load(),
	}
	end := func(state animation.State) func() {
		return func() {
			a.metrics.RecordEnd(state)
			done := info
			done.State = state.String()
			a.emit(EventTransitionEnd, done)
		}
	}

	moveBar := tween.Rect(a.bar, a.rowRect(a.cursor), func(r rect.Rect) { a.bar = r })
	paint := tween.Color(a.barColor, a.targetColor(a.cursor), func(c colorful.Color) { a.barColor = c })

	info.State = animation.StateRunning.String()
	a.emit(EventTransitionStart, info)
	a.metrics.RecordStart(info.Reduced)

	h, err := animation.Start(animation.Options{
		Render: func(t float64) {
			moveBar(t)
			paint(t)
		},
		Duration:             a.cfg.Animation.Duration.Std(),
		Easing:               a.easing,
		RespectReducedMotion: a.cfg.Animation.RespectReducedMotion,
		Motion:               a11y.PreferenceFunc(a.reduced.Load),
		Scheduler:            a.sched,
		OnFinished:           end(animation.StateFinished),
		OnCanceled:           end(animation.StateCanceled),
	})
	if err != nil {
		a.logger.WithComponent("animation").Error("start: %v", err)
		a.snapBar()
		return
	}
	a.active = h
	a.logger.WithComponent("animation").WithField("id", h.ID()).Debug("transition %d to row %d", info.Seq, info.To)
}

// snapBar places the bar on the cursor row without animating.
func (a *Application) snapBar() {
	a.bar = a.rowRect(a.cursor)
	a.barColor = a.targetColor(a.cursor)
}

// targetColor is the bar color for row: the highlight when the row's
// item is selected, a muted blend otherwise.
func (a *Application) targetColor(row int) colorful.Color {
	if a.model.IsSelected(a.items[row]) {
		return a.highlight
	}
	return a.idle
}

// emit publishes on the application bus. Listener failures are logged
// and shown on the status line.
func (a *Application) emit(name string, payload any) {
	err := a.bus.Emit(name, payload)
	a.metrics.RecordEmit(err)
	if err != nil {
		a.logger.WithComponent("bus").Error("%v", err)
		a.status = err.Error()
	}
}

func onOff(on bool) string {
	if on {
		return "on"
	}
	return "off"
}
