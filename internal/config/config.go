package config

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/dshills/crux/internal/a11y"
	"github.com/dshills/crux/internal/animation"
	"github.com/dshills/crux/internal/config/loader"
	"github.com/dshills/crux/internal/tween"
)

// EnvPrefix is the prefix of environment variables that override settings.
const EnvPrefix = "CRUX_"

// Frame rate bounds accepted by Validate.
const (
	MinFrameRate = 1
	MaxFrameRate = 240
)

// Reduced-motion modes for Accessibility.ReducedMotion.
const (
	MotionSystem = "system"
	MotionAlways = "always"
	MotionNever  = "never"
)

// Sink formats for Events.SinkFormat.
const (
	SinkTable = "table"
	SinkJSON  = "json"
)

// Config is the complete crux configuration.
type Config struct {
	Animation     Animation     `toml:"animation" yaml:"animation"`
	Accessibility Accessibility `toml:"accessibility" yaml:"accessibility"`
	Events        Events        `toml:"events" yaml:"events"`
	Demo          Demo          `toml:"demo" yaml:"demo"`
}

// Animation holds transition defaults.
type Animation struct {
	Duration             Duration `toml:"duration" yaml:"duration"`
	Easing               string   `toml:"easing" yaml:"easing"`
	RespectReducedMotion bool     `toml:"respect_reduced_motion" yaml:"respect_reduced_motion"`
	FrameRate            int      `toml:"frame_rate" yaml:"frame_rate"`
}

// Accessibility holds accessibility overrides.
type Accessibility struct {
	// ReducedMotion is "system", "always" or "never".
	ReducedMotion string `toml:"reduced_motion" yaml:"reduced_motion"`
}

// Events configures event bus diagnostics.
type Events struct {
	LogListeners bool   `toml:"log_listeners" yaml:"log_listeners"`
	SinkFormat   string `toml:"sink_format" yaml:"sink_format"`
}

// Demo configures the demo application.
type Demo struct {
	Title      string   `toml:"title" yaml:"title"`
	Items      []string `toml:"items" yaml:"items"`
	Highlight  string   `toml:"highlight" yaml:"highlight"`
	Background string   `toml:"background" yaml:"background"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Animation: Animation{
			Duration:             Duration(200 * time.Millisecond),
			Easing:               "ease-out-cubic",
			RespectReducedMotion: true,
			FrameRate:            60,
		},
		Accessibility: Accessibility{
			ReducedMotion: MotionSystem,
		},
		Events: Events{
			LogListeners: false,
			SinkFormat:   SinkTable,
		},
		Demo: Demo{
			Title:      "crux",
			Items:      []string{"Alpha", "Bravo", "Charlie", "Delta", "Echo", "Foxtrot"},
			Highlight:  "#3b82f6",
			Background: "#1f2937",
		},
	}
}

// Clone returns a deep copy of c.
func (c *Config) Clone() *Config {
	out := *c
	out.Demo.Items = slices.Clone(c.Demo.Items)
	return &out
}

// Validate checks every setting and reports all problems at once.
// The returned error matches ErrValidationFailed.
func (c *Config) Validate() error {
	verr := &ValidationError{}

	if c.Animation.Duration <= 0 {
		verr.add("animation.duration", "must be positive, got %s", c.Animation.Duration)
	}
	if _, ok := animation.Lookup(c.Animation.Easing); !ok {
		verr.add("animation.easing", "unknown easing %q (known: %s)",
			c.Animation.Easing, strings.Join(animation.EasingNames(), ", "))
	}
	if c.Animation.FrameRate < MinFrameRate || c.Animation.FrameRate > MaxFrameRate {
		verr.add("animation.frame_rate", "must be between %d and %d, got %d",
			MinFrameRate, MaxFrameRate, c.Animation.FrameRate)
	}

	switch c.Accessibility.ReducedMotion {
	case MotionSystem, MotionAlways, MotionNever:
	default:
		verr.add("accessibility.reduced_motion", "must be %q, %q or %q, got %q",
			MotionSystem, MotionAlways, MotionNever, c.Accessibility.ReducedMotion)
	}

	switch c.Events.SinkFormat {
	case SinkTable, SinkJSON:
	default:
		verr.add("events.sink_format", "must be %q or %q, got %q", SinkTable, SinkJSON, c.Events.SinkFormat)
	}

	if len(c.Demo.Items) == 0 {
		verr.add("demo.items", "must not be empty")
	}
	for _, field := range []struct{ path, value string }{
		{"demo.highlight", c.Demo.Highlight},
		{"demo.background", c.Demo.Background},
	} {
		if _, err := tween.Hex(field.value); err != nil {
			verr.add(field.path, "%v", err)
		}
	}

	if len(verr.Problems) > 0 {
		return verr
	}
	return nil
}

// Easing resolves the configured easing.
func (c *Config) Easing() (animation.Easing, error) {
	return animation.Resolve(c.Animation.Easing)
}

// Motion returns the reduced-motion preference the configuration selects.
// "system" defers to fallback, or a11y.System() when fallback is nil.
func (c *Config) Motion(fallback a11y.Preference) a11y.Preference {
	switch c.Accessibility.ReducedMotion {
	case MotionAlways:
		return a11y.Static(true)
	case MotionNever:
		return a11y.Static(false)
	}
	if fallback == nil {
		return a11y.System()
	}
	return fallback
}

// Set assigns a value by dotted path, converting from the loosely typed
// values produced by loader.ParseValue.
func (c *Config) Set(path string, value any) error {
	var err error
	switch path {
	case "animation.duration":
		var d time.Duration
		if d, err = toDuration(value); err == nil {
			c.Animation.Duration = Duration(d)
		}
	case "animation.easing":
		c.Animation.Easing, err = toString(value)
	case "animation.respect_reduced_motion":
		c.Animation.RespectReducedMotion, err = toBool(value)
	case "animation.frame_rate":
		c.Animation.FrameRate, err = toInt(value)
	case "accessibility.reduced_motion":
		if b, ok := value.(bool); ok {
			c.Accessibility.ReducedMotion = MotionNever
			if b {
				c.Accessibility.ReducedMotion = MotionAlways
			}
			return nil
		}
		c.Accessibility.ReducedMotion, err = toString(value)
	case "events.log_listeners":
		c.Events.LogListeners, err = toBool(value)
	case "events.sink_format":
		c.Events.SinkFormat, err = toString(value)
	case "demo.title":
		c.Demo.Title, err = toString(value)
	case "demo.items":
		c.Demo.Items, err = toStrings(value)
	case "demo.highlight":
		c.Demo.Highlight, err = toString(value)
	case "demo.background":
		c.Demo.Background, err = toString(value)
	default:
		return fmt.Errorf("%w: %s", ErrUnknownSetting, path)
	}

	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}

// Loader resolves a Config from defaults, a file and the environment.
type Loader struct {
	fs       loader.FileSystem
	dotenv   []string
	environ  func(dotenv map[string]string) func() []string
	validate bool
}

// LoaderOption configures a Loader.
type LoaderOption func(*Loader)

// WithFS sets the file system config files are read from.
func WithFS(fs loader.FileSystem) LoaderOption {
	return func(l *Loader) {
		l.fs = fs
	}
}

// WithDotEnv sets the .env files merged under the process environment.
func WithDotEnv(paths ...string) LoaderOption {
	return func(l *Loader) {
		l.dotenv = paths
	}
}

// WithEnviron replaces the process environment, for tests.
// Entries are KEY=VALUE; dotenv values are appended for unset keys.
func WithEnviron(env []string) LoaderOption {
	return func(l *Loader) {
		l.environ = func(dotenv map[string]string) func() []string {
			return func() []string {
				out := slices.Clone(env)
				for k, v := range dotenv {
					if !slices.ContainsFunc(env, func(e string) bool {
						return strings.HasPrefix(e, k+"=")
					}) {
						out = append(out, k+"="+v)
					}
				}
				return out
			}
		}
	}
}

// WithoutValidation skips Validate after loading.
func WithoutValidation() LoaderOption {
	return func(l *Loader) {
		l.validate = false
	}
}

// NewLoader creates a loader. By default it reads ".env" from the working
// directory and validates the result.
func NewLoader(opts ...LoaderOption) *Loader {
	l := &Loader{
		fs:       loader.DefaultFS(),
		dotenv:   []string{".env"},
		environ:  loader.Environ,
		validate: true,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Load resolves the configuration. An empty path, or a path that does not
// exist, leaves the defaults in place.
func (l *Loader) Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		dec, err := loader.ForPath(l.fs, path)
		if err != nil {
			return nil, err
		}
		if _, err := dec.Decode(path, cfg); err != nil {
			return nil, err
		}
	}

	dotenv, err := loader.ReadDotEnv(l.dotenv...)
	if err != nil {
		return nil, err
	}
	env, err := loader.NewEnvLoader(EnvPrefix).WithEnviron(l.environ(dotenv)).LoadRaw()
	if err != nil {
		return nil, err
	}
	if err := cfg.applyEnv(env); err != nil {
		return nil, err
	}

	if l.validate {
		if err := cfg.Validate(); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}

// Load resolves the configuration with the default loader.
func Load(path string) (*Config, error) {
	return NewLoader().Load(path)
}

// applyEnv sets every known path in env. Unknown CRUX_ variables are
// ignored; CRUX_REDUCED_MOTION, for one, belongs to the a11y package.
func (c *Config) applyEnv(env map[string]string) error {
	paths := make([]string, 0, len(env))
	for path := range env {
		paths = append(paths, path)
	}
	slices.Sort(paths)

	for _, path := range paths {
		err := c.Set(path, envValue(path, env[path]))
		if errors.Is(err, ErrUnknownSetting) {
			continue
		}
		if err != nil {
			return fmt.Errorf("environment: %w", err)
		}
	}
	return nil
}

// envValue converts environment text for path. Text settings keep the
// value as written, so CRUX_DEMO_TITLE=007 stays "007"; lists accept JSON
// arrays or comma separated text.
func envValue(path, raw string) any {
	switch path {
	case "animation.easing", "events.sink_format",
		"demo.title", "demo.highlight", "demo.background":
		return raw
	case "demo.items":
		if list, ok := loader.ParseValue(raw).([]any); ok {
			return list
		}
		return raw
	}
	return loader.ParseValue(raw)
}

func toString(v any) (string, error) {
	switch val := v.(type) {
	case string:
		return val, nil
	case fmt.Stringer:
		return val.String(), nil
	case int64, float64, bool:
		return fmt.Sprint(val), nil
	}
	return "", fmt.Errorf("%w: want string, got %T", ErrTypeMismatch, v)
}

func toBool(v any) (bool, error) {
	switch val := v.(type) {
	case bool:
		return val, nil
	case int64:
		return val != 0, nil
	}
	return false, fmt.Errorf("%w: want bool, got %T", ErrTypeMismatch, v)
}

func toInt(v any) (int, error) {
	switch val := v.(type) {
	case int:
		return val, nil
	case int64:
		return int(val), nil
	case float64:
		if val == float64(int(val)) {
			return int(val), nil
		}
	}
	return 0, fmt.Errorf("%w: want integer, got %T", ErrTypeMismatch, v)
}

// toDuration accepts a duration, a duration string, or an integer number
// of milliseconds.
func toDuration(v any) (time.Duration, error) {
	switch val := v.(type) {
	case time.Duration:
		return val, nil
	case int64:
		return time.Duration(val) * time.Millisecond, nil
	case string:
		return time.ParseDuration(val)
	}
	return 0, fmt.Errorf("%w: want duration, got %T", ErrTypeMismatch, v)
}

// toStrings accepts a list or a comma separated string.
func toStrings(v any) ([]string, error) {
	switch val := v.(type) {
	case []string:
		return slices.Clone(val), nil
	case []any:
		out := make([]string, 0, len(val))
		for _, item := range val {
			s, err := toString(item)
			if err != nil {
				return nil, err
			}
			out = append(out, s)
		}
		return out, nil
	case string:
		parts := strings.Split(val, ",")
		out := make([]string, 0, len(parts))
		for _, p := range parts {
			if p = strings.TrimSpace(p); p != "" {
				out = append(out, p)
			}
		}
		return out, nil
	}
	return nil, fmt.Errorf("%w: want list, got %T", ErrTypeMismatch, v)
}
