package script

import (
	"fmt"

	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/crux/internal/animation"
)

// Easing compiles source, a chunk returning function(t), into an easing.
//
//	return function(t) return t * t end
//
// If the Lua function fails or returns a non-number at render time, the
// easing falls back to t and the error goes to the error handler.
func (r *Runtime) Easing(source string) (animation.Easing, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed.Load() {
		return nil, ErrClosed
	}

	chunk, err := r.L.LoadString(source)
	if err != nil {
		return nil, fmt.Errorf("compile easing: %w", err)
	}
	ret, err := r.call(chunk)
	if err != nil {
		return nil, fmt.Errorf("run easing chunk: %w", err)
	}

	fn, ok := ret.(*lua.LFunction)
	if !ok {
		return nil, fmt.Errorf("%w: easing chunk returned %s", ErrNotFunction, ret.Type())
	}
	return r.easing(fn), nil
}

func (r *Runtime) easing(fn *lua.LFunction) animation.Easing {
	return func(t float64) float64 {
		ret, err := r.call(fn, lua.LNumber(t))
		if err != nil {
			r.onError(fmt.Errorf("easing: %w", err))
			return t
		}
		n, ok := ret.(lua.LNumber)
		if !ok {
			r.onError(fmt.Errorf("%w: got %s", ErrNotNumber, ret.Type()))
			return t
		}
		return float64(n)
	}
}

// BindEasings installs a global "easing" table:
//
//	easing.register(name, fn)
//	easing.has(name) -> bool
//	easing.names() -> {name, ...}
//
// Registered curves join the animation easing registry.
func (r *Runtime) BindEasings() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed.Load() {
		return ErrClosed
	}

	mod := r.L.SetFuncs(r.L.NewTable(), map[string]lua.LGFunction{
		"register": func(L *lua.LState) int {
			name := L.CheckString(1)
			fn := L.CheckFunction(2)
			if err := animation.Register(name, r.easing(fn)); err != nil {
				L.ArgError(1, err.Error())
			}
			return 0
		},
		"has": func(L *lua.LState) int {
			_, ok := animation.Lookup(L.CheckString(1))
			L.Push(lua.LBool(ok))
			return 1
		},
		"names": func(L *lua.LState) int {
			t := L.NewTable()
			for _, name := range animation.EasingNames() {
				t.Append(lua.LString(name))
			}
			L.Push(t)
			return 1
		},
	})
	r.L.SetGlobal("easing", mod)
	return nil
}
