// Package physics provides broad- and narrow-phase collision detection for
// oriented rectangles, plus distance utilities for radial gameplay logic.
package physics

import "tankbox/internal/geometry"

// Overlap reports whether two oriented rectangles overlap. The axis-aligned
// bounding boxes are compared first to prune the common far-apart case
// before running the full separating-axis test.
func Overlap(a, b geometry.OrientedRectangle) bool {
	if !a.BoundingBox().Intersects(b.BoundingBox()) {
		return false
	}
	return a.Intersects(b)
}

// Distance calculates the Euclidean distance between two points.
func Distance(a, b geometry.Vector2) float64 {
	return b.Sub(a).Length()
}

// DistanceSquared calculates the squared distance between two points.
// Use this when comparing distances to avoid the sqrt cost.
func DistanceSquared(a, b geometry.Vector2) float64 {
	return b.Sub(a).LengthSquared()
}

// WithinRange checks if a point is within radius of a target position.
func WithinRange(a, b geometry.Vector2, radius float64) bool {
	return DistanceSquared(a, b) <= radius*radius
}
