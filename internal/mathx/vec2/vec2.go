// Package vec2 provides cartesian 2D vectors.
package vec2

import (
	"math"

	"github.com/dshills/crux/internal/mathx"
)

// Vec is a cartesian 2D vector.
type Vec struct {
	X, Y float64
}

// New creates a vector.
func New(x, y float64) Vec {
	return Vec{X: x, Y: y}
}

// Up returns a unit vector pointing up (positive Y).
func Up() Vec { return Vec{X: 0, Y: 1} }

// Down returns a unit vector pointing down.
func Down() Vec { return Vec{X: 0, Y: -1} }

// Left returns a unit vector pointing left.
func Left() Vec { return Vec{X: -1, Y: 0} }

// Right returns a unit vector pointing right.
func Right() Vec { return Vec{X: 1, Y: 0} }

// Add returns v + o.
func (v Vec) Add(o Vec) Vec {
	return Vec{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns v - o.
func (v Vec) Sub(o Vec) Vec {
	return Vec{X: v.X - o.X, Y: v.Y - o.Y}
}

// Scale returns v scaled by s.
func (v Vec) Scale(s float64) Vec {
	return Vec{X: v.X * s, Y: v.Y * s}
}

// Len returns the length of v.
func (v Vec) Len() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}

// Normalize returns v scaled to unit length.
// The zero vector normalizes to NaN components.
func (v Vec) Normalize() Vec {
	l := v.Len()
	return Vec{X: v.X / l, Y: v.Y / l}
}

// Dot returns the dot product of v and o.
func (v Vec) Dot(o Vec) float64 {
	return v.X*o.X + v.Y*o.Y
}

// Cross returns the z component of the 3D cross product of v and o.
func (v Vec) Cross(o Vec) float64 {
	return v.X*o.Y - v.Y*o.X
}

// Angle returns the unsigned angle between v and o in radians.
func (v Vec) Angle(o Vec) float64 {
	cos := v.Dot(o) / (v.Len() * o.Len())
	// Rounding can push parallel vectors just past ±1.
	return math.Acos(mathx.Clamp(cos, -1, 1))
}

// Rotate rotates v counter-clockwise by angle radians.
// Components are rounded to 10 decimal places so quarter turns land on
// exact values.
func (v Vec) Rotate(angle float64) Vec {
	sin, cos := math.Sincos(angle)
	return Vec{
		X: mathx.RoundPrecision(v.X*cos-v.Y*sin, 10),
		Y: mathx.RoundPrecision(v.X*sin+v.Y*cos, 10),
	}
}

// Lerp interpolates between a and b.
func Lerp(t float64, a, b Vec) Vec {
	return a.Scale(1 - t).Add(b.Scale(t))
}

// Distance returns the distance between v and o.
func (v Vec) Distance(o Vec) float64 {
	return v.Sub(o).Len()
}

// Equal reports whether v and o have identical components.
func (v Vec) Equal(o Vec) bool {
	return v.X == o.X && v.Y == o.Y
}
