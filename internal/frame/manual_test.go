package frame

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewManual_ZeroStart(t *testing.T) {
	m := NewManual(time.Time{})
	assert.Equal(t, time.Unix(0, 0), m.Now())
}

func TestManual_StepRunsPendingAtCurrentTime(t *testing.T) {
	start := time.Unix(100, 0)
	m := NewManual(start)

	var got []time.Time
	m.RequestFrame(func(now time.Time) { got = append(got, now) })
	m.RequestFrame(func(now time.Time) { got = append(got, now) })

	assert.Equal(t, 2, m.Pending())
	assert.Equal(t, 2, m.Step())
	assert.Equal(t, []time.Time{start, start}, got)
	assert.Equal(t, 0, m.Pending())
	assert.Equal(t, 1, m.Frames())
}

func TestManual_StepWithoutPending(t *testing.T) {
	m := NewManual(time.Time{})
	assert.Equal(t, 0, m.Step())
	assert.Equal(t, 0, m.Frames())
}

func TestManual_AdvanceMovesClock(t *testing.T) {
	m := NewManual(time.Unix(0, 0))

	var at time.Time
	m.RequestFrame(func(now time.Time) { at = now })
	m.Advance(16 * time.Millisecond)

	assert.Equal(t, time.Unix(0, 0).Add(16*time.Millisecond), at)
	assert.Equal(t, at, m.Now())
}

func TestManual_RequestDuringFrameWaitsForNext(t *testing.T) {
	m := NewManual(time.Time{})

	runs := 0
	var loop Callback
	loop = func(time.Time) {
		runs++
		m.RequestFrame(loop)
	}
	m.RequestFrame(loop)

	m.Step()
	assert.Equal(t, 1, runs)
	assert.Equal(t, 1, m.Pending())

	m.Step()
	assert.Equal(t, 2, runs)
}

func TestManual_Drain(t *testing.T) {
	m := NewManual(time.Time{})

	remaining := 3
	var loop Callback
	loop = func(time.Time) {
		remaining--
		if remaining > 0 {
			m.RequestFrame(loop)
		}
	}
	m.RequestFrame(loop)

	assert.Equal(t, 3, m.Drain(10*time.Millisecond, 100))
	assert.Equal(t, 0, remaining)
	assert.Equal(t, time.Unix(0, 0).Add(30*time.Millisecond), m.Now())
}

func TestManual_DrainStopsAtMax(t *testing.T) {
	m := NewManual(time.Time{})

	var loop Callback
	loop = func(time.Time) { m.RequestFrame(loop) }
	m.RequestFrame(loop)

	assert.Equal(t, 5, m.Drain(time.Millisecond, 5))
	assert.Equal(t, 1, m.Pending())
}

func TestManual_NilCallbackIgnored(t *testing.T) {
	m := NewManual(time.Time{})
	m.RequestFrame(nil)
	assert.Equal(t, 0, m.Pending())
}
