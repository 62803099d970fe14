package event

import "os"

// BusOption configures an event Bus.
type BusOption func(*busConfig)

// busConfig contains configuration for the event bus.
type busConfig struct {
	// name overrides the generated "event-bus-<n>" name.
	name string

	// counters supplies bus sequence numbers and listener ids.
	counters *Counters

	// sink receives records for listeners registered WithLog.
	sink Sink
}

// defaultBusConfig returns the default configuration.
// The default sink is created lazily so buses that never log stay cheap.
func defaultBusConfig() busConfig {
	return busConfig{
		counters: DefaultCounters(),
	}
}

// WithName sets the bus name used in diagnostics.
func WithName(name string) BusOption {
	return func(c *busConfig) {
		c.name = name
	}
}

// WithCounters sets the id source for the bus.
func WithCounters(counters *Counters) BusOption {
	return func(c *busConfig) {
		if counters != nil {
			c.counters = counters
		}
	}
}

// WithSink sets the diagnostics sink for the bus.
func WithSink(sink Sink) BusOption {
	return func(c *busConfig) {
		if sink != nil {
			c.sink = sink
		}
	}
}

// ListenerOptions contains per-listener configuration.
type ListenerOptions struct {
	// Once removes the listener right after its first invocation.
	Once bool

	// Log writes a diagnostic record on every invocation of the listener.
	Log bool
}

// ListenerOption is a function that configures a listener.
type ListenerOption func(*ListenerOptions)

// WithOnce makes the listener fire at most once.
func WithOnce() ListenerOption {
	return func(o *ListenerOptions) {
		o.Once = true
	}
}

// WithLog makes every invocation of the listener write to the bus sink.
func WithLog() ListenerOption {
	return func(o *ListenerOptions) {
		o.Log = true
	}
}

// WithListenerOptions applies a whole ListenerOptions value.
// Useful when options come from configuration rather than code.
func WithListenerOptions(opts ListenerOptions) ListenerOption {
	return func(o *ListenerOptions) {
		*o = opts
	}
}

func defaultSink() Sink {
	return NewTableSink(os.Stderr)
}
