package rect

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dshills/crux/internal/mathx/vec2"
)

func TestEdges(t *testing.T) {
	r := New(10, 20, 30, 40)

	assert.Equal(t, 1200.0, r.Area())
	assert.Equal(t, 20.0, r.Top())
	assert.Equal(t, 10.0, r.Left())
	assert.Equal(t, 40.0, r.Right())
	assert.Equal(t, 60.0, r.Bottom())
	assert.Equal(t, vec2.New(25, 40), r.Center())
	assert.Equal(t, r, FromEdges(10, 20, 40, 60))
}

func TestIsEmpty(t *testing.T) {
	assert.True(t, Rect{}.IsEmpty())
	assert.True(t, New(0, 0, 10, 0).IsEmpty())
	assert.False(t, New(0, 0, 1, 1).IsEmpty())
}

func TestContainsPoint(t *testing.T) {
	r := New(0, 0, 10, 10)

	tests := []struct {
		name string
		p    vec2.Vec
		want bool
	}{
		{"inside", vec2.New(5, 5), true},
		{"top left corner", vec2.New(0, 0), true},
		{"bottom right corner", vec2.New(10, 10), true},
		{"right edge", vec2.New(10, 3), true},
		{"left of", vec2.New(-0.1, 5), false},
		{"below", vec2.New(5, 10.1), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, r.ContainsPoint(tt.p))
		})
	}
}

func TestContains(t *testing.T) {
	outer := New(0, 0, 10, 10)

	assert.True(t, outer.Contains(New(2, 2, 5, 5)))
	assert.True(t, outer.Contains(outer))
	assert.False(t, outer.Contains(New(5, 5, 10, 10)))
	assert.False(t, New(2, 2, 5, 5).Contains(outer))
}

func TestIntersects(t *testing.T) {
	r := New(0, 0, 10, 10)

	tests := []struct {
		name  string
		other Rect
		want  bool
	}{
		{"overlap", New(5, 5, 10, 10), true},
		{"inside", New(2, 2, 2, 2), true},
		{"shared right edge", New(10, 0, 5, 5), false},
		{"shared bottom edge", New(0, 10, 5, 5), false},
		{"apart", New(20, 20, 5, 5), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, r.Intersects(tt.other))
			assert.Equal(t, tt.want, tt.other.Intersects(r))
		})
	}
}

func TestIntersection(t *testing.T) {
	got, ok := New(0, 0, 10, 10).Intersection(New(5, 5, 10, 10))
	assert.True(t, ok)
	assert.Equal(t, New(5, 5, 5, 5), got)

	got, ok = New(0, 0, 10, 10).Intersection(New(10, 0, 5, 5))
	assert.False(t, ok)
	assert.Equal(t, Rect{}, got)
}

func TestUnion(t *testing.T) {
	got := New(0, 0, 5, 5).Union(New(10, 10, 5, 5))
	assert.Equal(t, New(0, 0, 15, 15), got)
}

func TestLerp(t *testing.T) {
	a := New(0, 0, 10, 10)
	b := New(10, 20, 30, 50)

	assert.Equal(t, a, Lerp(0, a, b))
	assert.Equal(t, b, Lerp(1, a, b))
	assert.Equal(t, New(5, 10, 20, 30), Lerp(0.5, a, b))
}
