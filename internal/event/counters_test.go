package event_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dshills/crux/internal/event"
)

func TestSequence(t *testing.T) {
	seq := event.NewSequence(-1)

	assert.Equal(t, int64(0), seq.Next())
	assert.Equal(t, int64(1), seq.Next())
	assert.Equal(t, int64(1), seq.Current())

	seq.Reset()
	assert.Equal(t, int64(-1), seq.Current())
	assert.Equal(t, int64(0), seq.Next())
}

func TestCounters(t *testing.T) {
	c := event.NewCounters()

	assert.Equal(t, int64(1), c.NextBus())
	assert.Equal(t, event.ListenerID(0), c.NextListener())
	assert.Equal(t, event.ListenerID(1), c.NextListener())

	c.Reset()
	assert.Equal(t, int64(1), c.NextBus())
	assert.Equal(t, event.ListenerID(0), c.NextListener())
}

func TestDefaultCounters_Shared(t *testing.T) {
	assert.Same(t, event.DefaultCounters(), event.DefaultCounters())
}
