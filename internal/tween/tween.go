// Package tween adapts transition progress to concrete values.
//
// Each adapter returns a render function for animation.Options: it maps the
// progress t onto a value between from and to and hands the result to set.
package tween

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/dshills/crux/internal/mathx"
	"github.com/dshills/crux/internal/mathx/rect"
	"github.com/dshills/crux/internal/mathx/vec2"
)

// Float interpolates a scalar.
func Float(from, to float64, set func(float64)) func(t float64) {
	return func(t float64) {
		set(mathx.Lerp(t, from, to))
	}
}

// Vec interpolates a vector.
func Vec(from, to vec2.Vec, set func(vec2.Vec)) func(t float64) {
	return func(t float64) {
		set(vec2.Lerp(t, from, to))
	}
}

// Rect interpolates a rectangle.
func Rect(from, to rect.Rect, set func(rect.Rect)) func(t float64) {
	return func(t float64) {
		set(rect.Lerp(t, from, to))
	}
}

// Color blends two colors in CIE-L*a*b* space.
// The endpoints are passed through unchanged; the Lab round trip would
// otherwise drift them slightly.
func Color(from, to colorful.Color, set func(colorful.Color)) func(t float64) {
	return func(t float64) {
		switch {
		case t <= 0:
			set(from)
		case t >= 1:
			set(to)
		default:
			set(from.BlendLab(to, t).Clamped())
		}
	}
}

// Hex parses a "#rgb" or "#rrggbb" color.
func Hex(s string) (colorful.Color, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return colorful.Color{}, fmt.Errorf("parse color %q: %w", s, err)
	}
	return c, nil
}

// MustHex is like Hex but panics on error. For package-level palettes.
func MustHex(s string) colorful.Color {
	c, err := Hex(s)
	if err != nil {
		panic(err)
	}
	return c
}

// Steps samples render at n+1 evenly spaced progress values from 0 to 1.
// Useful for previewing an adapter without a scheduler.
func Steps(n int, render func(t float64)) {
	if n <= 0 {
		render(1)
		return
	}
	for i := 0; i <= n; i++ {
		render(float64(i) / float64(n))
	}
}
