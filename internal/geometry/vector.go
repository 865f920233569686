// Package geometry provides the 2D value types used for collision detection:
// vectors, 2x2 linear transforms, axis-aligned rectangles and oriented
// rectangles with a Separating Axis Theorem overlap test.
//
// All types are plain values. No operation mutates its receiver or arguments;
// everything returns new values, so instances can be shared across goroutines
// freely once constructed.
package geometry

import "math"

// Vector2 is a 2D point or direction.
type Vector2 struct {
	X, Y float64
}

// Add returns v + o.
func (v Vector2) Add(o Vector2) Vector2 {
	return Vector2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns v - o.
func (v Vector2) Sub(o Vector2) Vector2 {
	return Vector2{X: v.X - o.X, Y: v.Y - o.Y}
}

// Scale returns v scaled by s.
func (v Vector2) Scale(s float64) Vector2 {
	return Vector2{X: v.X * s, Y: v.Y * s}
}

// Dot returns the dot product of v and o.
func (v Vector2) Dot(o Vector2) float64 {
	return v.X*o.X + v.Y*o.Y
}

// LengthSquared returns the squared length of v.
// Use this when comparing lengths to avoid the sqrt cost.
func (v Vector2) LengthSquared() float64 {
	return v.X*v.X + v.Y*v.Y
}

// Length returns the Euclidean length of v.
func (v Vector2) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}

// Equal reports whether v and o have exactly equal components.
// No epsilon is applied; callers needing tolerance must bring their own.
func (v Vector2) Equal(o Vector2) bool {
	return v.X == o.X && v.Y == o.Y
}
