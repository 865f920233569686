package geometry

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func identityBox(cx, cy, rx, ry float64) OrientedRectangle {
	return NewOrientedRectangle(
		Vector2{X: cx, Y: cy},
		Vector2{X: rx, Y: ry},
		Identity(),
	)
}

func TestPointsCountAndOrder(t *testing.T) {
	r := identityBox(0, 0, 2, 3)
	want := [4]Vector2{
		{X: 2, Y: -3},
		{X: -2, Y: -3},
		{X: -2, Y: 3},
		{X: 2, Y: 3},
	}
	assert.Equal(t, want, r.Points())
}

func TestPointsTranslated(t *testing.T) {
	r := identityBox(10, 20, 1, 1)
	want := [4]Vector2{
		{X: 11, Y: 19},
		{X: 9, Y: 19},
		{X: 9, Y: 21},
		{X: 11, Y: 21},
	}
	assert.Equal(t, want, r.Points())
}

func TestPointsRotated(t *testing.T) {
	// Quarter turn swaps the roles of the radii.
	r := NewOrientedRectangle(Vector2{}, Vector2{X: 2, Y: 1}, Rotation(math.Pi/2))
	points := r.Points()

	// Local right-top (+2,-1) maps to (1,2).
	assertVectorNear(t, Vector2{X: 1, Y: 2}, points[0])
	assertVectorNear(t, Vector2{X: 1, Y: -2}, points[1])
	assertVectorNear(t, Vector2{X: -1, Y: -2}, points[2])
	assertVectorNear(t, Vector2{X: -1, Y: 2}, points[3])
}

func TestOrientRectangle(t *testing.T) {
	r := OrientRectangle(Rectangle{X: 0, Y: 0, Width: 4, Height: 2})
	assert.Equal(t, Vector2{X: 2, Y: 1}, r.Center)
	assert.Equal(t, Vector2{X: 2, Y: 1}, r.Radii)
	assert.Equal(t, Identity(), r.Orientation)
}

func TestBoundingBoxRoundTrip(t *testing.T) {
	// Identity orientation only: converting to an oriented rectangle and
	// back yields the original position and size.
	original := Rectangle{X: 0, Y: 0, Width: 4, Height: 2}
	back := OrientRectangle(original).BoundingBox()
	assert.True(t, original.Equal(back), "round trip changed the rectangle: %+v", back)
}

func TestBoundingBoxRotated(t *testing.T) {
	// A unit square rotated 45 degrees has a bounding box of side 2*sqrt(2),
	// still centered on the rectangle's center.
	r := NewOrientedRectangle(Vector2{X: 5, Y: 5}, Vector2{X: 1, Y: 1}, Rotation(math.Pi/4))
	box := r.BoundingBox()

	side := 2 * math.Sqrt2
	assert.InDelta(t, side, box.Width, epsilon)
	assert.InDelta(t, side, box.Height, epsilon)
	assertVectorNear(t, Vector2{X: 5, Y: 5}, box.Center())
}

func TestBoundingBoxReflectsCurrentFields(t *testing.T) {
	r := identityBox(0, 0, 1, 1)
	before := r.BoundingBox()

	r.Center = Vector2{X: 10, Y: 0}
	after := r.BoundingBox()

	assert.False(t, before.Equal(after), "bounding box must be derived, not cached")
	assert.Equal(t, 9.0, after.X)
}

func TestTransformComposesOrientation(t *testing.T) {
	quarter := Rotation(math.Pi / 2)
	r := NewOrientedRectangle(Vector2{X: 1, Y: 0}, Vector2{X: 2, Y: 1}, quarter)

	got := r.Transform(quarter)

	assertVectorNear(t, Vector2{X: 0, Y: 1}, got.Center)
	assert.Equal(t, r.Radii, got.Radii, "radii are never scaled by Transform")

	// Composed orientation is a half turn.
	assertVectorNear(t, Vector2{X: -1, Y: 0}, got.Orientation.Apply(Vector2{X: 1, Y: 0}))
}

func TestTransformDoesNotMutate(t *testing.T) {
	r := identityBox(1, 2, 3, 4)
	copyOf := r
	_ = r.Transform(Rotation(0.5))
	assert.True(t, r.Equal(copyOf))
}

func TestIntersectsKnownScenarios(t *testing.T) {
	a := identityBox(0, 0, 1, 1)

	tests := []struct {
		name  string
		other OrientedRectangle
		want  bool
	}{
		{
			name:  "overlap by half a unit",
			other: identityBox(1.5, 0, 1, 1),
			want:  true,
		},
		{
			name:  "separated on x",
			other: identityBox(3, 0, 1, 1),
			want:  false,
		},
		{
			name:  "exact edge touch counts as overlap",
			other: identityBox(2, 0, 1, 1),
			want:  true,
		},
		{
			name:  "contained",
			other: identityBox(0, 0, 0.25, 0.25),
			want:  true,
		},
		{
			name:  "diagonal separation",
			other: identityBox(3, 3, 1, 1),
			want:  false,
		},
		{
			name: "rotated corner overlapping the edge",
			other: NewOrientedRectangle(
				Vector2{X: 1 + math.Sqrt2 - 1e-9, Y: 0},
				Vector2{X: 1, Y: 1},
				Rotation(math.Pi/4),
			),
			want: true,
		},
		{
			name: "rotated corner past the edge",
			other: NewOrientedRectangle(
				Vector2{X: 1 + math.Sqrt2 + 1e-9, Y: 0},
				Vector2{X: 1, Y: 1},
				Rotation(math.Pi/4),
			),
			want: false,
		},
		{
			name: "rotated but clearly overlapping",
			other: NewOrientedRectangle(
				Vector2{X: 1.5, Y: 0},
				Vector2{X: 1, Y: 1},
				Rotation(math.Pi/3),
			),
			want: true,
		},
		{
			name: "bounding boxes overlap but shapes do not",
			// Rotated 45 degrees, placed diagonally so the bounding boxes
			// meet near (1, 1) while the shapes themselves stay apart.
			other: NewOrientedRectangle(
				Vector2{X: 2.2, Y: 2.2},
				Vector2{X: 1, Y: 1},
				Rotation(math.Pi/4),
			),
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, a.Intersects(tt.other))
			assert.Equal(t, tt.want, tt.other.Intersects(a), "Intersects must be symmetric")
		})
	}
}

func TestIntersectsSelfOverlap(t *testing.T) {
	shapes := []OrientedRectangle{
		identityBox(0, 0, 1, 1),
		identityBox(-4, 7, 0.5, 3),
		NewOrientedRectangle(Vector2{X: 2, Y: 2}, Vector2{X: 1, Y: 2}, Rotation(1.1)),
	}
	for _, s := range shapes {
		assert.True(t, s.Intersects(s))
	}
}

func TestIntersectsTranslationInvariance(t *testing.T) {
	a := identityBox(0, 0, 1, 1)
	b := NewOrientedRectangle(Vector2{X: 1.8, Y: 0.4}, Vector2{X: 1, Y: 1}, Rotation(0.7))
	offset := Vector2{X: -123.5, Y: 77.25}

	before := a.Intersects(b)

	a.Center = a.Center.Add(offset)
	b.Center = b.Center.Add(offset)

	assert.Equal(t, before, a.Intersects(b))
}

func TestIntersectsSeparatedBoundingBoxes(t *testing.T) {
	// Disjoint bounding boxes guarantee disjoint shapes.
	a := NewOrientedRectangle(Vector2{}, Vector2{X: 1, Y: 2}, Rotation(0.3))
	b := NewOrientedRectangle(Vector2{X: 100, Y: 100}, Vector2{X: 1, Y: 2}, Rotation(2.1))

	require.False(t, a.BoundingBox().Intersects(b.BoundingBox()))
	assert.False(t, a.Intersects(b))
	assert.False(t, b.Intersects(a))
}

func TestIntersectsDegenerate(t *testing.T) {
	box := identityBox(0, 0, 1, 1)

	tests := []struct {
		name  string
		other OrientedRectangle
		want  bool
	}{
		{
			name:  "vertical segment inside the box",
			other: identityBox(0.5, 0, 0, 0.5),
			want:  true,
		},
		{
			name:  "vertical segment outside the box",
			other: identityBox(5, 0, 0, 0.5),
			want:  false,
		},
		{
			name:  "point inside the box",
			other: identityBox(0.5, 0.5, 0, 0),
			want:  true,
		},
		{
			name:  "point outside the box",
			other: identityBox(5, 5, 0, 0),
			want:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// The predicate must stay defined for degenerate shapes in
			// either argument position.
			assert.Equal(t, tt.want, box.Intersects(tt.other))
			assert.Equal(t, tt.want, tt.other.Intersects(box))
		})
	}
}

func TestEqual(t *testing.T) {
	a := NewOrientedRectangle(Vector2{X: 1, Y: 2}, Vector2{X: 3, Y: 4}, Rotation(0.5))
	b := NewOrientedRectangle(Vector2{X: 1, Y: 2}, Vector2{X: 3, Y: 4}, Rotation(0.5))
	assert.True(t, a.Equal(b))

	c := b
	c.Radii.X = math.Nextafter(c.Radii.X, 100)
	assert.False(t, a.Equal(c), "equality is exact, not approximate")
}

func TestHash(t *testing.T) {
	a := NewOrientedRectangle(Vector2{X: 1, Y: 2}, Vector2{X: 3, Y: 4}, Rotation(0.5))
	b := NewOrientedRectangle(Vector2{X: 1, Y: 2}, Vector2{X: 3, Y: 4}, Rotation(0.5))
	assert.Equal(t, a.Hash(), b.Hash(), "equal rectangles must hash equally")

	c := identityBox(0, 0, 1, 1)
	assert.NotEqual(t, a.Hash(), c.Hash())
}
