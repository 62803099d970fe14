// Package event provides a small named-event bus for decoupling producers and
// consumers inside one process.
//
// A Bus maps event names to ordered lists of listener records. Each record
// carries a process-unique id, the listener itself and its options. Buses are
// generic over the event name type and the payload type:
//
//	type SelectionEvent string
//
//	bus := event.New[SelectionEvent, Change](event.WithName("selection"))
//
//	id := bus.OnFunc("change", func(c Change) error {
//	    fmt.Println(c.Added)
//	    return nil
//	})
//
//	bus.Emit("change", Change{Added: []string{"a"}})
//	bus.OffID("change", id)
//
// # Listener Identity
//
// Every registration returns a ListenerID. Ids are handed out by a Counters
// value, by default the process-wide DefaultCounters, and are never reused
// while that source lives. Tests inject their own Counters with WithCounters.
//
// Listeners can be removed two ways:
//
//   - OffID removes exactly the record created with that id.
//   - Off removes every record under the name whose listener equals the given
//     reference. Go function values are not comparable, so a ListenerFunc can
//     only be removed by id. Wrap the function with Func to get a pointer
//     listener that compares by identity.
//
// Registering the same listener several times produces independent records,
// each invoked once per emit.
//
// # Delivery
//
// Emit invokes listeners synchronously, in registration order, on the calling
// goroutine. The first listener error aborts the remaining invocations and is
// returned as a *ListenerError. Panics are not recovered.
//
// Emit works on a snapshot of the records taken when it starts:
//
//   - records removed before iteration reaches them are skipped
//   - records added during an emit are not invoked by it
//   - a once listener is claimed before it runs, so nested or concurrent
//     emits never invoke it twice
//
// # Diagnostics
//
// Listeners registered WithLog write a Record (bus, event, payload) to the
// bus Sink each time they run. TableSink prints an aligned key/value table
// through a log.Logger; JSONSink writes one JSON object per line.
//
// # Thread Safety
//
// Bus methods are safe for concurrent use. Listeners run outside the bus lock
// and may register, remove or emit on the same bus.
package event
