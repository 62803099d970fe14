// Package rect provides axis-aligned rectangles in a Y-down coordinate
// space: Top is Y and Bottom is Y+H.
package rect

import (
	"math"

	"github.com/dshills/crux/internal/mathx"
	"github.com/dshills/crux/internal/mathx/vec2"
)

// Rect is an axis-aligned rectangle.
type Rect struct {
	X, Y float64
	W, H float64
}

// New creates a rectangle.
func New(x, y, w, h float64) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// FromEdges creates a rectangle from its edges.
func FromEdges(left, top, right, bottom float64) Rect {
	return Rect{X: left, Y: top, W: right - left, H: bottom - top}
}

// Area returns the area of the rectangle.
func (r Rect) Area() float64 { return r.W * r.H }

// Top returns the top edge.
func (r Rect) Top() float64 { return r.Y }

// Left returns the left edge.
func (r Rect) Left() float64 { return r.X }

// Right returns the right edge.
func (r Rect) Right() float64 { return r.X + r.W }

// Bottom returns the bottom edge.
func (r Rect) Bottom() float64 { return r.Y + r.H }

// Origin returns the top-left corner.
func (r Rect) Origin() vec2.Vec { return vec2.New(r.X, r.Y) }

// Center returns the center point.
func (r Rect) Center() vec2.Vec { return vec2.New(r.X+r.W/2, r.Y+r.H/2) }

// IsEmpty returns true if the rectangle has no area.
func (r Rect) IsEmpty() bool { return r.W <= 0 || r.H <= 0 }

// ContainsPoint returns true if p lies inside r. Edges are inclusive.
func (r Rect) ContainsPoint(p vec2.Vec) bool {
	return p.X >= r.Left() && p.X <= r.Right() &&
		p.Y >= r.Top() && p.Y <= r.Bottom()
}

// Contains returns true if other fits completely inside r.
func (r Rect) Contains(other Rect) bool {
	return r.Left() <= other.Left() &&
		r.Top() <= other.Top() &&
		r.Right() >= other.Right() &&
		r.Bottom() >= other.Bottom()
}

// Intersects returns true if r and other overlap.
// Rectangles that only share an edge do not intersect.
func (r Rect) Intersects(other Rect) bool {
	return r.Left() < other.Right() &&
		r.Right() > other.Left() &&
		r.Top() < other.Bottom() &&
		r.Bottom() > other.Top()
}

// Intersection returns the overlapping region of r and other.
// The second result is false if they do not intersect.
func (r Rect) Intersection(other Rect) (Rect, bool) {
	if !r.Intersects(other) {
		return Rect{}, false
	}
	return FromEdges(
		math.Max(r.Left(), other.Left()),
		math.Max(r.Top(), other.Top()),
		math.Min(r.Right(), other.Right()),
		math.Min(r.Bottom(), other.Bottom()),
	), true
}

// Union returns the smallest rectangle containing both r and other.
func (r Rect) Union(other Rect) Rect {
	return FromEdges(
		math.Min(r.Left(), other.Left()),
		math.Min(r.Top(), other.Top()),
		math.Max(r.Right(), other.Right()),
		math.Max(r.Bottom(), other.Bottom()),
	)
}

// Lerp interpolates each component between a and b.
func Lerp(t float64, a, b Rect) Rect {
	return Rect{
		X: mathx.Lerp(t, a.X, b.X),
		Y: mathx.Lerp(t, a.Y, b.Y),
		W: mathx.Lerp(t, a.W, b.W),
		H: mathx.Lerp(t, a.H, b.H),
	}
}
