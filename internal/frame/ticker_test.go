package frame

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTicker_Defaults(t *testing.T) {
	tk := NewTicker()
	assert.Equal(t, time.Second/DefaultRate, tk.Interval())
}

func TestWithRate(t *testing.T) {
	tests := []struct {
		fps  int
		want time.Duration
	}{
		{30, time.Second / 30},
		{120, time.Second / 120},
		{0, time.Second / DefaultRate},
		{-5, time.Second / DefaultRate},
		{5000, time.Second / DefaultRate},
	}

	for _, tt := range tests {
		tk := NewTicker(WithRate(tt.fps))
		assert.Equal(t, tt.want, tk.Interval(), "fps %d", tt.fps)
	}
}

func TestTicker_TickRunsBatchAndHook(t *testing.T) {
	hooked := 0
	tk := NewTicker(WithFrameHook(func(time.Time) { hooked++ }))

	now := time.Unix(5, 0)
	var seen []time.Time
	tk.RequestFrame(func(t time.Time) { seen = append(seen, t) })
	tk.RequestFrame(func(t time.Time) { seen = append(seen, t) })

	tk.tick(now)

	assert.Equal(t, []time.Time{now, now}, seen)
	assert.Equal(t, 1, hooked)
	assert.Equal(t, uint64(1), tk.Frames())

	// Empty frames do not count and skip the hook.
	tk.tick(now)
	assert.Equal(t, 1, hooked)
	assert.Equal(t, uint64(1), tk.Frames())
}

func TestTicker_Run(t *testing.T) {
	tk := NewTicker(WithRate(200))

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- tk.Run(ctx) }()

	var ran atomic.Int32
	fired := make(chan struct{})
	tk.RequestFrame(func(time.Time) {
		ran.Add(1)
		close(fired)
	})

	select {
	case <-fired:
	case <-time.After(2 * time.Second):
		t.Fatal("frame callback did not run")
	}

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
	assert.Equal(t, int32(1), ran.Load())
}

func TestTicker_RunTwice(t *testing.T) {
	tk := NewTicker()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() { _ = tk.Run(ctx) }()

	require.Eventually(t, func() bool { return tk.running.Load() }, time.Second, time.Millisecond)
	assert.ErrorIs(t, tk.Run(ctx), ErrTickerRunning)
}

func TestDefault_IsShared(t *testing.T) {
	assert.Same(t, Default(), Default())
}
