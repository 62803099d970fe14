// Package script embeds a sandboxed Lua runtime.
//
// Scripts can listen to and emit events on a bound event bus and define
// easing curves for transitions:
//
//	bus.on("selection.change", function(change)
//	    print(#change.added, "added")
//	end)
//
//	easing.register("snap", function(t)
//	    if t < 0.8 then return t * 0.2 end
//	    return 1 - (1 - t) * 4
//	end)
//
// gopher-lua states are not goroutine-safe. The mutex in Runtime guards Go
// callers of DoString, DoFile and Close; Lua listeners and Lua easings run
// on whatever goroutine emits or renders, so hosts must keep those on the
// goroutine that owns the runtime.
package script
