package geometry

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRectangleAccessors(t *testing.T) {
	r := Rectangle{X: 1, Y: 2, Width: 4, Height: 6}
	assert.Equal(t, 5.0, r.Right())
	assert.Equal(t, 8.0, r.Bottom())
	assert.Equal(t, Vector2{X: 3, Y: 5}, r.Center())
}

func TestRectangleCornersOrder(t *testing.T) {
	r := Rectangle{X: 0, Y: 0, Width: 2, Height: 4}
	want := [4]Vector2{
		{X: 2, Y: 0},
		{X: 0, Y: 0},
		{X: 0, Y: 4},
		{X: 2, Y: 4},
	}
	assert.Equal(t, want, r.Corners())
}

func TestRectangleIntersects(t *testing.T) {
	base := Rectangle{X: 0, Y: 0, Width: 2, Height: 2}

	tests := []struct {
		name  string
		other Rectangle
		want  bool
	}{
		{name: "overlapping", other: Rectangle{X: 1, Y: 1, Width: 2, Height: 2}, want: true},
		{name: "touching edge", other: Rectangle{X: 2, Y: 0, Width: 2, Height: 2}, want: true},
		{name: "separated on x", other: Rectangle{X: 3, Y: 0, Width: 2, Height: 2}, want: false},
		{name: "separated on y", other: Rectangle{X: 0, Y: -3, Width: 2, Height: 2}, want: false},
		{name: "contained", other: Rectangle{X: 0.5, Y: 0.5, Width: 1, Height: 1}, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, base.Intersects(tt.other))
			assert.Equal(t, tt.want, tt.other.Intersects(base), "intersection must be symmetric")
		})
	}
}

func TestRectangleContainsPoint(t *testing.T) {
	r := Rectangle{X: 0, Y: 0, Width: 2, Height: 2}
	assert.True(t, r.ContainsPoint(Vector2{X: 1, Y: 1}))
	assert.True(t, r.ContainsPoint(Vector2{X: 2, Y: 2}), "edges count as inside")
	assert.False(t, r.ContainsPoint(Vector2{X: 2.1, Y: 1}))
}

func TestRectangleUnion(t *testing.T) {
	a := Rectangle{X: 0, Y: 0, Width: 1, Height: 1}
	b := Rectangle{X: 2, Y: 3, Width: 1, Height: 1}
	assert.Equal(t, Rectangle{X: 0, Y: 0, Width: 3, Height: 4}, a.Union(b))
}

func TestRectangleTransform(t *testing.T) {
	// A quarter turn of a 4x2 rectangle yields a 2x4 bounding box.
	r := Rectangle{X: 0, Y: 0, Width: 4, Height: 2}
	got := r.Transform(Rotation(math.Pi / 2))

	assert.InDelta(t, -2.0, got.X, epsilon)
	assert.InDelta(t, 0.0, got.Y, epsilon)
	assert.InDelta(t, 2.0, got.Width, epsilon)
	assert.InDelta(t, 4.0, got.Height, epsilon)
}

func TestRectangleTransformIdentity(t *testing.T) {
	r := Rectangle{X: 1, Y: 2, Width: 3, Height: 4}
	assert.Equal(t, r, r.Transform(Identity()))
}
