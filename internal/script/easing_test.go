package script

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dshills/crux/internal/animation"
)

func TestEasing(t *testing.T) {
	r := newRuntime(t)

	fn, err := r.Easing(`return function(t) return t * t end`)
	require.NoError(t, err)

	assert.Equal(t, 0.25, fn(0.5))
	assert.Equal(t, 1.0, fn(1))
}

func TestEasing_CompileErrors(t *testing.T) {
	r := newRuntime(t)

	_, err := r.Easing(`return function(t`)
	assert.Error(t, err)

	_, err = r.Easing(`return 42`)
	assert.ErrorIs(t, err, ErrNotFunction)

	_, err = r.Easing(`error("no")`)
	assert.Error(t, err)
}

func TestEasing_RuntimeErrorFallsBackToLinear(t *testing.T) {
	var reported []error
	r := newRuntime(t, WithErrorHandler(func(err error) { reported = append(reported, err) }))

	broken, err := r.Easing(`return function(t) error("bad curve") end`)
	require.NoError(t, err)
	assert.Equal(t, 0.3, broken(0.3))

	wrongType, err := r.Easing(`return function(t) return "fast" end`)
	require.NoError(t, err)
	assert.Equal(t, 0.7, wrongType(0.7))

	require.Len(t, reported, 2)
	assert.Contains(t, reported[0].Error(), "bad curve")
	assert.ErrorIs(t, reported[1], ErrNotNumber)
}

func TestBindEasings(t *testing.T) {
	r := newRuntime(t)
	require.NoError(t, r.BindEasings())

	require.NoError(t, r.DoString(`
		easing.register("script-half", function(t) return t / 2 end)
		known = easing.has("script-half")
		builtin = easing.has("linear")
		missing = easing.has("nope")
		count = #easing.names()
	`))

	assert.Equal(t, "true", r.Global("known").String())
	assert.Equal(t, "true", r.Global("builtin").String())
	assert.Equal(t, "false", r.Global("missing").String())

	fn, ok := animation.Lookup("script-half")
	require.True(t, ok)
	assert.Equal(t, 0.25, fn(0.5))
}

func TestBindEasings_RegisterRejectsEmptyName(t *testing.T) {
	r := newRuntime(t)
	require.NoError(t, r.BindEasings())

	assert.Error(t, r.DoString(`easing.register("", function(t) return t end)`))
}
