package a11y

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatic(t *testing.T) {
	assert.True(t, Static(true).PrefersReducedMotion())
	assert.False(t, Static(false).PrefersReducedMotion())
}

func TestPreferenceFunc(t *testing.T) {
	calls := 0
	p := PreferenceFunc(func() bool {
		calls++
		return true
	})

	assert.True(t, p.PrefersReducedMotion())
	assert.Equal(t, 1, calls)
}

func TestEnv(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		want bool
	}{
		{"unset", map[string]string{}, false},
		{"one", map[string]string{"CRUX_REDUCED_MOTION": "1"}, true},
		{"true mixed case", map[string]string{"CRUX_REDUCED_MOTION": " True "}, true},
		{"reduce", map[string]string{"REDUCE_MOTION": "reduce"}, true},
		{"no-preference", map[string]string{"REDUCE_MOTION": "no-preference"}, false},
		{"first set wins", map[string]string{"CRUX_REDUCED_MOTION": "0", "NO_MOTION": "1"}, false},
		{"fallback var", map[string]string{"NO_MOTION": "yes"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := Env{Lookup: func(key string) (string, bool) {
				v, ok := tt.env[key]
				return v, ok
			}}
			assert.Equal(t, tt.want, e.PrefersReducedMotion())
		})
	}
}

func TestEnv_CustomVars(t *testing.T) {
	e := Env{
		Vars: []string{"MY_MOTION"},
		Lookup: func(key string) (string, bool) {
			if key == "MY_MOTION" {
				return "on", true
			}
			return "1", true
		},
	}
	assert.True(t, e.PrefersReducedMotion())
}

func TestSystem_ReadsProcessEnv(t *testing.T) {
	t.Setenv("CRUX_REDUCED_MOTION", "true")
	assert.True(t, System().PrefersReducedMotion())

	t.Setenv("CRUX_REDUCED_MOTION", "false")
	assert.False(t, System().PrefersReducedMotion())
}
