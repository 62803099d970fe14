package script

import (
	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/crux/internal/event"
)

// luaListener adapts a Lua function to event.Listener.
// It is a comparable value, so Off with the same Lua function matches every
// record registered with it.
type luaListener struct {
	rt *Runtime
	fn *lua.LFunction
}

// HandleEvent implements the event.Listener interface.
func (l luaListener) HandleEvent(payload any) error {
	_, err := l.rt.call(l.fn, l.rt.toLua(payload))
	return err
}

// BindBus installs a global "bus" table bound to bus:
//
//	bus.on(name, fn [, {once = true, log = true}]) -> id
//	bus.off(name, fn_or_id) -> removed
//	bus.emit(name [, payload])
//	bus.clear()
//	bus.count(name) -> n
//	bus.name() -> string
//
// A listener error raised during bus.emit is raised again in the emitting
// script.
func (r *Runtime) BindBus(bus *event.Bus[string, any]) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed.Load() {
		return ErrClosed
	}

	mod := r.L.SetFuncs(r.L.NewTable(), map[string]lua.LGFunction{
		"on":    r.busOn(bus),
		"off":   r.busOff(bus),
		"emit":  r.busEmit(bus),
		"clear": r.busClear(bus),
		"count": r.busCount(bus),
		"name":  r.busName(bus),
	})
	r.L.SetGlobal("bus", mod)
	return nil
}

func (r *Runtime) busOn(bus *event.Bus[string, any]) lua.LGFunction {
	return func(L *lua.LState) int {
		name := L.CheckString(1)
		fn := L.CheckFunction(2)
		opts := L.OptTable(3, nil)

		var options []event.ListenerOption
		if opts != nil {
			options = append(options, event.WithListenerOptions(event.ListenerOptions{
				Once: lua.LVAsBool(opts.RawGetString("once")),
				Log:  lua.LVAsBool(opts.RawGetString("log")),
			}))
		}

		id := bus.On(name, luaListener{rt: r, fn: fn}, options...)
		L.Push(lua.LNumber(id))
		return 1
	}
}

func (r *Runtime) busOff(bus *event.Bus[string, any]) lua.LGFunction {
	return func(L *lua.LState) int {
		name := L.CheckString(1)

		var removed bool
		switch v := L.CheckAny(2).(type) {
		case lua.LNumber:
			removed = bus.OffID(name, event.ListenerID(v))
		case *lua.LFunction:
			removed = bus.Off(name, luaListener{rt: r, fn: v})
		default:
			L.ArgError(2, "listener id or function expected, got "+v.Type().String())
			return 0
		}

		L.Push(lua.LBool(removed))
		return 1
	}
}

func (r *Runtime) busEmit(bus *event.Bus[string, any]) lua.LGFunction {
	return func(L *lua.LState) int {
		name := L.CheckString(1)
		payload := toGo(L.Get(2))

		if err := bus.Emit(name, payload); err != nil {
			L.RaiseError("%s", err.Error())
		}
		return 0
	}
}

func (r *Runtime) busClear(bus *event.Bus[string, any]) lua.LGFunction {
	return func(L *lua.LState) int {
		bus.Clear()
		return 0
	}
}

func (r *Runtime) busCount(bus *event.Bus[string, any]) lua.LGFunction {
	return func(L *lua.LState) int {
		L.Push(lua.LNumber(bus.Len(L.CheckString(1))))
		return 1
	}
}

func (r *Runtime) busName(bus *event.Bus[string, any]) lua.LGFunction {
	return func(L *lua.LState) int {
		L.Push(lua.LString(bus.Name()))
		return 1
	}
}
