package script

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	lua "github.com/yuin/gopher-lua"
)

// DefaultTimeout bounds DoString and DoFile.
const DefaultTimeout = 5 * time.Second

// Runtime wraps a gopher-lua state with only the base, table, string and
// math libraries opened.
type Runtime struct {
	L *lua.LState

	mu      sync.Mutex
	timeout time.Duration
	onError func(error)
	closed  atomic.Bool
}

// Option configures a Runtime.
type Option func(*Runtime)

// WithTimeout bounds each DoString and DoFile call. Zero disables the bound.
func WithTimeout(d time.Duration) Option {
	return func(r *Runtime) {
		r.timeout = d
	}
}

// WithErrorHandler receives errors that cannot be returned to a caller,
// such as a failing Lua easing.
func WithErrorHandler(fn func(error)) Option {
	return func(r *Runtime) {
		r.onError = fn
	}
}

// New creates a sandboxed runtime.
func New(opts ...Option) *Runtime {
	r := &Runtime{
		timeout: DefaultTimeout,
		onError: func(error) {},
	}
	for _, opt := range opts {
		opt(r)
	}

	L := lua.NewState(lua.Options{SkipOpenLibs: true})
	openSafeLibraries(L)
	r.L = L
	return r
}

// openSafeLibraries opens the libraries that cannot reach the host.
// io, os, debug and package stay closed.
func openSafeLibraries(L *lua.LState) {
	for _, lib := range []struct {
		name string
		fn   lua.LGFunction
	}{
		{lua.BaseLibName, lua.OpenBase},
		{lua.TabLibName, lua.OpenTable},
		{lua.StringLibName, lua.OpenString},
		{lua.MathLibName, lua.OpenMath},
	} {
		L.Push(L.NewFunction(lib.fn))
		L.Push(lua.LString(lib.name))
		L.Call(1, 0)
	}

	// The base library exposes file loaders.
	for _, name := range []string{"dofile", "loadfile"} {
		L.SetGlobal(name, lua.LNil)
	}
}

// DoString executes a Lua chunk.
func (r *Runtime) DoString(code string) error {
	return r.do(func() error { return r.L.DoString(code) })
}

// DoFile executes a Lua file.
func (r *Runtime) DoFile(path string) error {
	return r.do(func() error { return r.L.DoFile(path) })
}

func (r *Runtime) do(fn func() error) (err error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed.Load() {
		return ErrClosed
	}

	if r.timeout > 0 {
		ctx, cancel := context.WithTimeout(context.Background(), r.timeout)
		defer cancel()
		r.L.SetContext(ctx)
		defer r.L.RemoveContext()
	}

	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("lua panic: %v", p)
		}
	}()
	return fn()
}

// call invokes fn with args and returns its first result.
// The caller must own the runtime goroutine.
func (r *Runtime) call(fn *lua.LFunction, args ...lua.LValue) (lua.LValue, error) {
	if r.closed.Load() {
		return lua.LNil, ErrClosed
	}

	if err := r.L.CallByParam(lua.P{Fn: fn, NRet: 1, Protect: true}, args...); err != nil {
		return lua.LNil, err
	}
	ret := r.L.Get(-1)
	r.L.Pop(1)
	return ret, nil
}

// Global returns a global variable.
func (r *Runtime) Global(name string) lua.LValue {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed.Load() {
		return lua.LNil
	}
	return r.L.GetGlobal(name)
}

// Close releases the Lua state. Further calls return ErrClosed.
// Easings and listeners bound to the runtime must have stopped running;
// hosts close it after the goroutine that drives them has exited.
func (r *Runtime) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.closed.CompareAndSwap(false, true) {
		return nil
	}
	r.L.Close()
	return nil
}
