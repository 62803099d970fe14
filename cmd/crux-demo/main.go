// Package main is the entry point for the crux terminal demo.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/sync/errgroup"

	"github.com/dshills/crux/internal/app"
	"github.com/dshills/crux/internal/config"
	"github.com/dshills/crux/internal/event"
	"github.com/dshills/crux/internal/frame"
	"github.com/dshills/crux/internal/script"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

type options struct {
	ConfigPath string
	LogPath    string
	LogLevel   string
	ScriptPath string
}

func main() {
	os.Exit(run())
}

func run() int {
	opts := parseFlags()

	logOut := io.Discard
	if opts.LogPath != "" {
		f, err := os.OpenFile(opts.LogPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: failed to open log: %v\n", err)
			return 1
		}
		defer f.Close()
		logOut = f
	}
	level, _ := app.ParseLogLevel(opts.LogLevel)
	logger := app.NewLogger(app.LoggerConfig{Level: level, Output: logOut, Prefix: "crux"})

	// Validation waits until the script had a chance to register easings.
	cfg, err := config.NewLoader(config.WithoutValidation()).Load(opts.ConfigPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	bus := event.New[string, any](event.WithName("app"), event.WithSink(newSink(cfg, logger)))

	if opts.ScriptPath != "" {
		rt, err := loadScript(opts.ScriptPath, bus, logger)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
		defer rt.Close()
	}

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to create terminal: %v\n", err)
		return 1
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to initialize terminal: %v\n", err)
		return 1
	}
	var finiOnce sync.Once
	fini := func() { finiOnce.Do(screen.Fini) }
	defer fini()

	var application *app.Application
	ticker := frame.NewTicker(
		frame.WithRate(cfg.Animation.FrameRate),
		frame.WithFrameHook(func(now time.Time) { application.Draw(now) }),
	)

	application, err = app.New(app.Options{
		Config:    cfg,
		Screen:    screen,
		Scheduler: ticker,
		Bus:       bus,
		Logger:    logger,
	})
	if err != nil {
		fini()
		fmt.Fprintf(os.Stderr, "Error: failed to initialize: %v\n", err)
		return 1
	}

	var reload *config.Watcher
	if opts.ConfigPath != "" {
		reload, err = newConfigWatcher(opts.ConfigPath, cfg, application, logger)
		if err != nil {
			logger.WithComponent("config").Warn("hot reload disabled: %v", err)
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logger.Info("crux %s started (config %q, %d fps)", version, opts.ConfigPath, cfg.Animation.FrameRate)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error { return ticker.Run(ctx) })
	g.Go(func() error { return application.Run(ctx) })
	g.Go(func() error {
		<-ctx.Done()
		fini()
		return nil
	})
	g.Go(func() error {
		// PollEvent returns nil once the screen is finalized.
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return nil
			}
			application.Post(ev)
		}
	})
	if reload != nil {
		g.Go(func() error { return reload.Run(ctx) })
	}

	err = g.Wait()
	fini()

	s := application.Metrics().Snapshot()
	logger.Info("exiting after %d draws (avg %s), %d transitions", s.DrawCount, s.AvgDraw(), s.Started)

	if err != nil && !errors.Is(err, app.ErrQuit) {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

// newSink picks the diagnostics format for listeners registered with
// logging enabled. Records share the application log output.
func newSink(cfg *config.Config, logger *app.Logger) event.Sink {
	if cfg.Events.SinkFormat == config.SinkJSON {
		return event.NewJSONSink(logger.Writer())
	}
	return event.NewTableSinkWithLogger(log.New(logger.Writer(), "crux: ", log.LstdFlags|log.Lmicroseconds))
}

// loadScript runs a Lua file with the bus and easing registry bound.
func loadScript(path string, bus *event.Bus[string, any], logger *app.Logger) (*script.Runtime, error) {
	log := logger.WithComponent("script")
	rt := script.New(script.WithErrorHandler(func(err error) {
		log.Error("%v", err)
	}))

	if err := rt.BindBus(bus); err != nil {
		rt.Close()
		return nil, app.NewComponentError("script", "bind bus", err)
	}
	if err := rt.BindEasings(); err != nil {
		rt.Close()
		return nil, app.NewComponentError("script", "bind easings", err)
	}
	if err := rt.DoFile(path); err != nil {
		rt.Close()
		return nil, app.NewComponentError("script", "run "+path, err)
	}

	log.Info("loaded %s", path)
	return rt, nil
}

// newConfigWatcher forwards reloaded configurations to the application.
func newConfigWatcher(path string, current *config.Config, application *app.Application, logger *app.Logger) (*config.Watcher, error) {
	log := logger.WithComponent("config")

	bus := event.New[string, *config.Config](event.WithName("config"))
	bus.OnFunc(config.EventChanged, func(cfg *config.Config) error {
		if cfg.Animation.FrameRate != current.Animation.FrameRate {
			log.Warn("frame_rate change takes effect after restart")
		}
		log.Info("reloaded %s", path)
		application.ApplyConfig(cfg)
		return nil
	})

	return config.NewWatcher(path, current, bus,
		config.WithReloadErrorHandler(func(err error) {
			log.Error("%v", err)
		}),
	)
}

func parseFlags() options {
	var opts options
	var showVersion bool
	var showHelp bool

	flag.StringVar(&opts.ConfigPath, "config", "", "Path to configuration file (.toml, .yaml)")
	flag.StringVar(&opts.ConfigPath, "c", "", "Path to configuration file (shorthand)")
	flag.StringVar(&opts.LogPath, "log", "", "Write logs to this file")
	flag.StringVar(&opts.LogLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	flag.StringVar(&opts.ScriptPath, "script", "", "Lua script with bus listeners and easings")
	flag.StringVar(&opts.ScriptPath, "s", "", "Lua script (shorthand)")
	flag.BoolVar(&showVersion, "version", false, "Show version information")
	flag.BoolVar(&showVersion, "v", false, "Show version information (shorthand)")
	flag.BoolVar(&showHelp, "help", false, "Show help message")
	flag.BoolVar(&showHelp, "h", false, "Show help message (shorthand)")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "crux-demo - animated selection list\n\n")
		fmt.Fprintf(os.Stderr, "Usage: crux-demo [options]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nKeys:\n")
		fmt.Fprintf(os.Stderr, "  up/down, j/k   move\n")
		fmt.Fprintf(os.Stderr, "  space, enter   toggle selection\n")
		fmt.Fprintf(os.Stderr, "  a / c          select all / clear\n")
		fmt.Fprintf(os.Stderr, "  m              toggle reduced motion\n")
		fmt.Fprintf(os.Stderr, "  q, esc         quit\n")
		fmt.Fprintf(os.Stderr, "\nEnvironment:\n")
		fmt.Fprintf(os.Stderr, "  CRUX_<SECTION>_<KEY> overrides a setting, e.g. CRUX_ANIMATION_EASING=linear\n")
		fmt.Fprintf(os.Stderr, "  CRUX_REDUCED_MOTION=1 asks for reduced motion\n")
	}

	flag.Parse()

	if showHelp {
		flag.Usage()
		os.Exit(0)
	}

	if showVersion {
		fmt.Printf("crux-demo %s\n", version)
		fmt.Printf("Commit: %s\n", commit)
		fmt.Printf("Built: %s\n", date)
		os.Exit(0)
	}

	if _, ok := app.ParseLogLevel(opts.LogLevel); !ok {
		fmt.Fprintf(os.Stderr, "Error: invalid log level %q (must be debug, info, warn, or error)\n", opts.LogLevel)
		os.Exit(1)
	}

	return opts
}
