package app

import (
	"sync/atomic"
	"time"

	"github.com/dshills/crux/internal/animation"
)

// Metrics counts draws, input and transition outcomes.
// All methods are safe for concurrent use.
type Metrics struct {
	// Draw timing
	drawCount   atomic.Uint64
	drawTotalNs atomic.Int64
	drawMaxNs   atomic.Int64
	lastDrawNs  atomic.Int64

	inputCount atomic.Uint64

	// Transitions by outcome
	started  atomic.Uint64
	finished atomic.Uint64
	canceled atomic.Uint64
	reduced  atomic.Uint64

	// Bus emits and failed listeners
	emits        atomic.Uint64
	listenerErrs atomic.Uint64
}

// NewMetrics creates a new metrics tracker.
func NewMetrics() *Metrics {
	return &Metrics{}
}

// RecordDraw records how long one draw took.
func (m *Metrics) RecordDraw(duration time.Duration) {
	ns := duration.Nanoseconds()

	m.drawCount.Add(1)
	m.drawTotalNs.Add(ns)
	m.lastDrawNs.Store(ns)

	for {
		old := m.drawMaxNs.Load()
		if ns <= old || m.drawMaxNs.CompareAndSwap(old, ns) {
			break
		}
	}
}

// RecordInput records one handled input event.
func (m *Metrics) RecordInput() {
	m.inputCount.Add(1)
}

// RecordStart records a started transition. Reduced-motion starts are
// counted separately since they complete immediately.
func (m *Metrics) RecordStart(reducedMotion bool) {
	m.started.Add(1)
	if reducedMotion {
		m.reduced.Add(1)
	}
}

// RecordEnd records how a transition ended.
func (m *Metrics) RecordEnd(state animation.State) {
	switch state {
	case animation.StateFinished:
		m.finished.Add(1)
	case animation.StateCanceled:
		m.canceled.Add(1)
	}
}

// RecordEmit records one bus emit and whether a listener failed.
func (m *Metrics) RecordEmit(err error) {
	m.emits.Add(1)
	if err != nil {
		m.listenerErrs.Add(1)
	}
}

// Snapshot returns a snapshot of current metrics.
func (m *Metrics) Snapshot() MetricsSnapshot {
	draws := m.drawCount.Load()

	var avg int64
	if draws > 0 {
		avg = m.drawTotalNs.Load() / int64(draws)
	}

	return MetricsSnapshot{
		DrawCount:      draws,
		AvgDrawNs:      avg,
		MaxDrawNs:      m.drawMaxNs.Load(),
		LastDrawNs:     m.lastDrawNs.Load(),
		InputCount:     m.inputCount.Load(),
		Started:        m.started.Load(),
		Finished:       m.finished.Load(),
		Canceled:       m.canceled.Load(),
		Reduced:        m.reduced.Load(),
		Emits:          m.emits.Load(),
		ListenerErrors: m.listenerErrs.Load(),
	}
}

// MetricsSnapshot is a point-in-time view of metrics.
type MetricsSnapshot struct {
	DrawCount      uint64
	AvgDrawNs      int64
	MaxDrawNs      int64
	LastDrawNs     int64
	InputCount     uint64
	Started        uint64
	Finished       uint64
	Canceled       uint64
	Reduced        uint64
	Emits          uint64
	ListenerErrors uint64
}

// Running returns the number of transitions that have not ended.
func (s MetricsSnapshot) Running() uint64 {
	return s.Started - s.Finished - s.Canceled
}

// AvgDraw returns the mean draw time.
func (s MetricsSnapshot) AvgDraw() time.Duration {
	return time.Duration(s.AvgDrawNs)
}
