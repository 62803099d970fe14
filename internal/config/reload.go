package config

import (
	"context"
	"fmt"
	"sync"

	"github.com/dshills/crux/internal/config/watcher"
	"github.com/dshills/crux/internal/event"
)

// EventChanged is emitted with the new configuration after a reload.
const EventChanged = "config.changed"

// Watcher reloads a configuration file whenever it changes and publishes
// each successfully loaded Config on a bus.
type Watcher struct {
	path   string
	loader *Loader
	bus    *event.Bus[string, *Config]
	fw     *watcher.Watcher

	mu      sync.RWMutex
	current *Config
	onError func(error)
}

// WatcherOption configures a Watcher.
type WatcherOption func(*watcherConfig)

type watcherConfig struct {
	loader  *Loader
	onError func(error)
	opts    []watcher.Option
}

// WithReloadLoader sets the loader used for reloads.
func WithReloadLoader(l *Loader) WatcherOption {
	return func(c *watcherConfig) {
		c.loader = l
	}
}

// WithReloadErrorHandler receives load and listener errors. A failed
// reload keeps the previous configuration.
func WithReloadErrorHandler(fn func(error)) WatcherOption {
	return func(c *watcherConfig) {
		c.onError = fn
	}
}

// WithFileWatcherOptions passes options to the underlying file watcher.
func WithFileWatcherOptions(opts ...watcher.Option) WatcherOption {
	return func(c *watcherConfig) {
		c.opts = append(c.opts, opts...)
	}
}

// NewWatcher watches path and publishes reloads on bus. initial is the
// configuration currently in effect.
func NewWatcher(path string, initial *Config, bus *event.Bus[string, *Config], opts ...WatcherOption) (*Watcher, error) {
	cfg := watcherConfig{onError: func(error) {}}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.loader == nil {
		cfg.loader = NewLoader()
	}
	if initial == nil {
		initial = Default()
	}

	fw, err := watcher.New(append(cfg.opts, watcher.WithErrorHandler(cfg.onError))...)
	if err != nil {
		return nil, err
	}
	if err := fw.Watch(path); err != nil {
		_ = fw.Close()
		return nil, fmt.Errorf("watching config: %w", err)
	}

	w := &Watcher{
		path:    path,
		loader:  cfg.loader,
		bus:     bus,
		fw:      fw,
		current: initial,
		onError: cfg.onError,
	}
	fw.OnChange(w.handle)
	return w, nil
}

// Current returns the most recently loaded configuration.
func (w *Watcher) Current() *Config {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.current
}

// Run reloads on change until ctx is done. Bus listeners run on the
// calling goroutine.
func (w *Watcher) Run(ctx context.Context) error {
	defer w.fw.Close()
	return w.fw.Run(ctx)
}

// Reload loads the file now and publishes the result.
func (w *Watcher) Reload() error {
	cfg, err := w.loader.Load(w.path)
	if err != nil {
		return fmt.Errorf("reloading %s: %w", w.path, err)
	}

	w.mu.Lock()
	w.current = cfg
	w.mu.Unlock()

	return w.bus.Emit(EventChanged, cfg.Clone())
}

func (w *Watcher) handle(watcher.Event) {
	// A removed file falls back to defaults through Load.
	if err := w.Reload(); err != nil {
		w.onError(err)
	}
}
