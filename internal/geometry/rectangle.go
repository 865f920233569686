package geometry

// Rectangle is an axis-aligned rectangle. X and Y are the top-left corner
// (Y grows downward, matching terminal coordinates).
type Rectangle struct {
	X, Y          float64
	Width, Height float64
}

// Right returns the X coordinate of the right edge.
func (r Rectangle) Right() float64 {
	return r.X + r.Width
}

// Bottom returns the Y coordinate of the bottom edge.
func (r Rectangle) Bottom() float64 {
	return r.Y + r.Height
}

// Center returns the geometric center of the rectangle.
func (r Rectangle) Center() Vector2 {
	return Vector2{X: r.X + r.Width/2, Y: r.Y + r.Height/2}
}

// Corners returns the four corners in the order right-top, left-top,
// left-bottom, right-bottom.
func (r Rectangle) Corners() [4]Vector2 {
	return [4]Vector2{
		{X: r.Right(), Y: r.Y},
		{X: r.X, Y: r.Y},
		{X: r.X, Y: r.Bottom()},
		{X: r.Right(), Y: r.Bottom()},
	}
}

// ContainsPoint reports whether p lies inside r. Edges count as inside.
func (r Rectangle) ContainsPoint(p Vector2) bool {
	return p.X >= r.X && p.X <= r.Right() && p.Y >= r.Y && p.Y <= r.Bottom()
}

// Intersects reports whether r and o overlap. Touching edges count as
// overlapping.
func (r Rectangle) Intersects(o Rectangle) bool {
	return r.X <= o.Right() && o.X <= r.Right() &&
		r.Y <= o.Bottom() && o.Y <= r.Bottom()
}

// Union returns the smallest rectangle containing both r and o.
func (r Rectangle) Union(o Rectangle) Rectangle {
	x := min(r.X, o.X)
	y := min(r.Y, o.Y)
	return Rectangle{
		X:      x,
		Y:      y,
		Width:  max(r.Right(), o.Right()) - x,
		Height: max(r.Bottom(), o.Bottom()) - y,
	}
}

// Transform applies a linear transform to the rectangle's corners (rotating
// or scaling about the origin) and returns the axis-aligned bounding box of
// the result. The operation is lossy for non-axis-aligned transforms.
func (r Rectangle) Transform(m Matrix2) Rectangle {
	corners := r.Corners()
	first := m.Apply(corners[0])
	minX, maxX := first.X, first.X
	minY, maxY := first.Y, first.Y
	for _, c := range corners[1:] {
		p := m.Apply(c)
		minX = min(minX, p.X)
		maxX = max(maxX, p.X)
		minY = min(minY, p.Y)
		maxY = max(maxY, p.Y)
	}
	return Rectangle{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}
}

// Equal reports whether r and o have exactly equal fields.
func (r Rectangle) Equal(o Rectangle) bool {
	return r.X == o.X && r.Y == o.Y && r.Width == o.Width && r.Height == o.Height
}
