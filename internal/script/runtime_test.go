package script

import (
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	lua "github.com/yuin/gopher-lua"
)

func newRuntime(t *testing.T, opts ...Option) *Runtime {
	t.Helper()
	r := New(opts...)
	t.Cleanup(func() { _ = r.Close() })
	return r
}

func TestNew_SafeLibraries(t *testing.T) {
	r := newRuntime(t)

	require.NoError(t, r.DoString(`x = string.upper("ok") .. math.floor(2.7) .. #table.concat({"a"})`))
	assert.Equal(t, "OK21", r.Global("x").String())

	for _, name := range []string{"io", "os", "debug", "package", "dofile", "loadfile"} {
		assert.Equal(t, lua.LNil, r.Global(name), name)
	}
}

func TestDoString_Error(t *testing.T) {
	r := newRuntime(t)

	err := r.DoString(`error("boom")`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "boom")

	err = r.DoString(`this is not lua`)
	assert.Error(t, err)
}

func TestDoString_Timeout(t *testing.T) {
	r := newRuntime(t, WithTimeout(50*time.Millisecond))

	start := time.Now()
	err := r.DoString(`while true do end`)
	require.Error(t, err)
	assert.Less(t, time.Since(start), 5*time.Second)

	// The state stays usable after a timeout.
	require.NoError(t, r.DoString(`y = 1`))
}

func TestDoFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "init.lua")
	require.NoError(t, os.WriteFile(path, []byte(`loaded = true`), 0o644))

	r := newRuntime(t)
	require.NoError(t, r.DoFile(path))
	assert.Equal(t, lua.LTrue, r.Global("loaded"))

	assert.Error(t, r.DoFile(filepath.Join(t.TempDir(), "missing.lua")))
}

func TestClose(t *testing.T) {
	r := New()
	require.NoError(t, r.Close())
	require.NoError(t, r.Close())

	assert.True(t, errors.Is(r.DoString(`x = 1`), ErrClosed))
	assert.Equal(t, lua.LNil, r.Global("x"))

	_, err := r.Easing(`return function(t) return t end`)
	assert.ErrorIs(t, err, ErrClosed)
	assert.ErrorIs(t, r.BindEasings(), ErrClosed)
}

func TestClose_EasingFallsBackToLinear(t *testing.T) {
	var errs []error
	r := New(WithErrorHandler(func(err error) { errs = append(errs, err) }))

	ease, err := r.Easing(`return function(t) return t * t end`)
	require.NoError(t, err)
	assert.InDelta(t, 0.25, ease(0.5), 1e-9)

	require.NoError(t, r.Close())
	assert.Equal(t, 0.5, ease(0.5))
	require.Len(t, errs, 1)
	assert.ErrorIs(t, errs[0], ErrClosed)
}

func TestClose_Concurrent(t *testing.T) {
	r := New()

	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.NoError(t, r.Close())
		}()
	}
	wg.Wait()

	assert.ErrorIs(t, r.DoString(`x = 1`), ErrClosed)
}

func TestConvert_RoundTrip(t *testing.T) {
	r := newRuntime(t)

	type point struct {
		X     int
		Label string `lua:"text"`
		skip  bool
	}

	lv := r.toLua(map[string]any{
		"list":  []string{"a", "b"},
		"point": point{X: 3, Label: "p"},
		"ratio": 0.5,
		"ptr":   (*point)(nil),
	})

	got, ok := toGo(lv).(map[string]any)
	require.True(t, ok)
	assert.Equal(t, []any{"a", "b"}, got["list"])
	assert.Equal(t, map[string]any{"x": int64(3), "text": "p"}, got["point"])
	assert.Equal(t, 0.5, got["ratio"])
	assert.Nil(t, got["ptr"])
}

func TestConvert_CyclicTable(t *testing.T) {
	r := newRuntime(t)
	require.NoError(t, r.DoString(`cyc = {name = "loop"}; cyc.self = cyc`))

	got, ok := toGo(r.Global("cyc")).(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "loop", got["name"])
	assert.Nil(t, got["self"])
}

func TestConvert_SharedTable(t *testing.T) {
	r := newRuntime(t)
	require.NoError(t, r.DoString(`shared = {1, 2}; pair = {a = shared, b = shared, nested = {c = shared}}`))

	got, ok := toGo(r.Global("pair")).(map[string]any)
	require.True(t, ok)
	want := []any{int64(1), int64(2)}
	assert.Equal(t, want, got["a"])
	assert.Equal(t, want, got["b"])
	assert.Equal(t, map[string]any{"c": want}, got["nested"])
}
