package tween

import (
	"testing"
	"time"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dshills/crux/internal/a11y"
	"github.com/dshills/crux/internal/animation"
	"github.com/dshills/crux/internal/frame"
	"github.com/dshills/crux/internal/mathx/rect"
	"github.com/dshills/crux/internal/mathx/vec2"
)

func TestFloat(t *testing.T) {
	var got []float64
	Steps(4, Float(10, 20, func(v float64) { got = append(got, v) }))

	assert.Equal(t, []float64{10, 12.5, 15, 17.5, 20}, got)
}

func TestVec(t *testing.T) {
	var got vec2.Vec
	render := Vec(vec2.New(0, 0), vec2.New(4, -8), func(v vec2.Vec) { got = v })

	render(0.25)
	assert.Equal(t, vec2.New(1, -2), got)
}

func TestRect(t *testing.T) {
	var got rect.Rect
	render := Rect(rect.New(0, 0, 10, 1), rect.New(0, 4, 10, 1), func(r rect.Rect) { got = r })

	render(0.5)
	assert.Equal(t, rect.New(0, 2, 10, 1), got)
}

func TestColor_Endpoints(t *testing.T) {
	from := MustHex("#1e3a8a")
	to := MustHex("#f59e0b")

	var got colorful.Color
	render := Color(from, to, func(c colorful.Color) { got = c })

	render(0)
	assert.Equal(t, "#1e3a8a", got.Hex())
	render(1)
	assert.Equal(t, "#f59e0b", got.Hex())
}

func TestColor_BlendsInLab(t *testing.T) {
	var got colorful.Color
	render := Color(MustHex("#000000"), MustHex("#ffffff"), func(c colorful.Color) { got = c })

	render(0.5)
	l, _, _ := got.Lab()
	assert.InDelta(t, 0.5, l, 0.01)
	assert.InDelta(t, got.R, got.G, 1e-3)
	assert.InDelta(t, got.G, got.B, 1e-3)
	assert.True(t, got.IsValid())
}

func TestHex(t *testing.T) {
	c, err := Hex("#f0c")
	require.NoError(t, err)
	assert.Equal(t, "#ff00cc", c.Hex())

	_, err = Hex("red")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"red"`)

	assert.Panics(t, func() { MustHex("#12") })
}

func TestSteps_NonPositive(t *testing.T) {
	var got []float64
	Steps(0, func(t float64) { got = append(got, t) })
	assert.Equal(t, []float64{1}, got)
}

func TestWithTransition(t *testing.T) {
	sched := frame.NewManual(time.Time{})

	var pos float64
	h, err := animation.Start(animation.Options{
		Render:    Float(0, 100, func(v float64) { pos = v }),
		Duration:  time.Second,
		Easing:    animation.Linear,
		Scheduler: sched,
		Motion:    a11y.Static(false),
	})
	require.NoError(t, err)

	sched.Advance(250 * time.Millisecond)
	assert.Equal(t, 25.0, pos)

	sched.Advance(time.Second)
	assert.Equal(t, 100.0, pos)
	assert.Equal(t, animation.StateFinished, h.State())
}
