package app

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/dshills/crux/internal/animation"
)

func TestMetrics_Draw(t *testing.T) {
	m := NewMetrics()
	assert.Zero(t, m.Snapshot().AvgDraw())

	m.RecordDraw(2 * time.Millisecond)
	m.RecordDraw(4 * time.Millisecond)
	m.RecordDraw(3 * time.Millisecond)

	s := m.Snapshot()
	assert.Equal(t, uint64(3), s.DrawCount)
	assert.Equal(t, 3*time.Millisecond, s.AvgDraw())
	assert.Equal(t, (4 * time.Millisecond).Nanoseconds(), s.MaxDrawNs)
	assert.Equal(t, (3 * time.Millisecond).Nanoseconds(), s.LastDrawNs)
}

func TestMetrics_Transitions(t *testing.T) {
	m := NewMetrics()

	m.RecordStart(false)
	m.RecordStart(false)
	m.RecordStart(true)
	m.RecordEnd(animation.StateFinished)
	m.RecordEnd(animation.StateCanceled)
	m.RecordEnd(animation.StateRunning)

	s := m.Snapshot()
	assert.Equal(t, uint64(3), s.Started)
	assert.Equal(t, uint64(1), s.Reduced)
	assert.Equal(t, uint64(1), s.Finished)
	assert.Equal(t, uint64(1), s.Canceled)
	assert.Equal(t, uint64(1), s.Running())
}

func TestMetrics_Emits(t *testing.T) {
	m := NewMetrics()

	m.RecordEmit(nil)
	m.RecordEmit(errors.New("boom"))
	m.RecordInput()

	s := m.Snapshot()
	assert.Equal(t, uint64(2), s.Emits)
	assert.Equal(t, uint64(1), s.ListenerErrors)
	assert.Equal(t, uint64(1), s.InputCount)
}
