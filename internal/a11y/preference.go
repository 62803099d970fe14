// Package a11y answers accessibility preference queries from the host.
package a11y

//go:generate mockgen -destination=mock/mock_preference.go -package=mocka11y -source=preference.go

import (
	"os"
	"strings"
)

// Preference reports whether the user asked for reduced motion.
type Preference interface {
	PrefersReducedMotion() bool
}

// PreferenceFunc is a function adapter for Preference.
type PreferenceFunc func() bool

// PrefersReducedMotion implements the Preference interface.
func (f PreferenceFunc) PrefersReducedMotion() bool {
	return f()
}

// Static is a constant preference.
type Static bool

// PrefersReducedMotion implements the Preference interface.
func (s Static) PrefersReducedMotion() bool {
	return bool(s)
}

// DefaultEnvVars are the variables Env consults, in order.
var DefaultEnvVars = []string{"CRUX_REDUCED_MOTION", "REDUCE_MOTION", "NO_MOTION"}

// Env reads the preference from environment variables.
// The first variable that is set decides.
type Env struct {
	Vars   []string
	Lookup func(key string) (string, bool)
}

// PrefersReducedMotion implements the Preference interface.
func (e Env) PrefersReducedMotion() bool {
	vars := e.Vars
	if len(vars) == 0 {
		vars = DefaultEnvVars
	}
	lookup := e.Lookup
	if lookup == nil {
		lookup = os.LookupEnv
	}

	for _, key := range vars {
		if val, ok := lookup(key); ok {
			return truthy(val)
		}
	}
	return false
}

// System returns the environment-backed preference.
func System() Preference {
	return Env{}
}

// truthy parses the usual spellings of an enabled flag.
// "reduce" matches the CSS media query value.
func truthy(val string) bool {
	switch strings.ToLower(strings.TrimSpace(val)) {
	case "1", "true", "yes", "on", "reduce":
		return true
	default:
		return false
	}
}
