package event_test

import (
	"fmt"

	"github.com/dshills/crux/internal/event"
)

type greeting struct {
	Name string
}

// Example_basicUsage demonstrates registering, emitting and removing listeners.
func Example_basicUsage() {
	bus := event.New[string, greeting](event.WithName("greetings"))

	// First listener, keeping the id for later removal.
	id := bus.OnFunc("hello", func(g greeting) error {
		fmt.Println("hello,", g.Name)
		return nil
	})

	// Second listener, kept by reference.
	loud := event.Func(func(g greeting) error {
		fmt.Println("HELLO,", g.Name)
		return nil
	})
	bus.On("hello", loud)

	_ = bus.Emit("hello", greeting{Name: "world"})

	bus.OffID("hello", id)
	bus.Off("hello", loud)

	_ = bus.Emit("hello", greeting{Name: "nobody"})

	// Output:
	// hello, world
	// HELLO, world
}

// Example_once shows a listener that removes itself after the first event.
func Example_once() {
	bus := event.New[string, int]()

	bus.OnFunc("tick", func(n int) error {
		fmt.Println("first tick:", n)
		return nil
	}, event.WithOnce())

	for i := 1; i <= 3; i++ {
		_ = bus.Emit("tick", i)
	}

	// Output: first tick: 1
}
