package animation

import (
	"fmt"
	"slices"
	"strings"
	"sync"
)

// Easing maps linear progress t in [0, 1] to eased progress.
type Easing func(t float64) float64

// Linear returns t unchanged.
func Linear(t float64) float64 { return t }

// EaseInQuad accelerates from zero velocity.
func EaseInQuad(t float64) float64 { return t * t }

// EaseOutQuad decelerates to zero velocity.
func EaseOutQuad(t float64) float64 { return t * (2 - t) }

// EaseInOutQuad accelerates until halfway, then decelerates.
func EaseInOutQuad(t float64) float64 {
	if t < 0.5 {
		return 2 * t * t
	}
	return -1 + (4-2*t)*t
}

// EaseInCubic accelerates from zero velocity.
func EaseInCubic(t float64) float64 { return t * t * t }

// EaseOutCubic decelerates to zero velocity.
func EaseOutCubic(t float64) float64 {
	u := t - 1
	return u*u*u + 1
}

// EaseInOutCubic accelerates until halfway, then decelerates.
func EaseInOutCubic(t float64) float64 {
	if t < 0.5 {
		return 4 * t * t * t
	}
	u := 2*t - 2
	return (t-1)*u*u + 1
}

var (
	easingsMu sync.RWMutex
	easings   = map[string]Easing{
		"linear":            Linear,
		"ease-in-quad":      EaseInQuad,
		"ease-out-quad":     EaseOutQuad,
		"ease-in-out-quad":  EaseInOutQuad,
		"ease-in-cubic":     EaseInCubic,
		"ease-out-cubic":    EaseOutCubic,
		"ease-in-out-cubic": EaseInOutCubic,
	}
)

// Lookup returns the easing registered under name. Names are case-insensitive.
func Lookup(name string) (Easing, bool) {
	easingsMu.RLock()
	defer easingsMu.RUnlock()
	fn, ok := easings[strings.ToLower(name)]
	return fn, ok
}

// Resolve is like Lookup but returns an error wrapping ErrUnknownEasing.
func Resolve(name string) (Easing, error) {
	fn, ok := Lookup(name)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownEasing, name)
	}
	return fn, nil
}

// Register adds or replaces a named easing.
func Register(name string, fn Easing) error {
	if name == "" {
		return fmt.Errorf("%w: empty easing name", ErrInvalidArgument)
	}
	if fn == nil {
		return fmt.Errorf("%w: nil easing %q", ErrInvalidArgument, name)
	}

	easingsMu.Lock()
	defer easingsMu.Unlock()
	easings[strings.ToLower(name)] = fn
	return nil
}

// EasingNames returns the registered easing names, sorted.
func EasingNames() []string {
	easingsMu.RLock()
	defer easingsMu.RUnlock()

	names := make([]string, 0, len(easings))
	for name := range easings {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
