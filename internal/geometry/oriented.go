package geometry

import (
	"encoding/binary"
	"math"

	"github.com/cespare/xxhash/v2"
)

// OrientedRectangle is a rectangle with an arbitrary rotation, described by
// its center, half-extents along its own local axes (Radii) and a 2x2
// linear transform mapping local offsets to world directions.
//
// The type does not restrict Orientation, but every operation below assumes
// it is orthonormal (a pure rotation). Supplying shear or non-uniform scale
// breaks the SAT overlap test.
type OrientedRectangle struct {
	Center      Vector2
	Radii       Vector2
	Orientation Matrix2
}

// NewOrientedRectangle builds an oriented rectangle from its raw fields.
// Radii components are expected to be non-negative.
func NewOrientedRectangle(center, radii Vector2, orientation Matrix2) OrientedRectangle {
	return OrientedRectangle{Center: center, Radii: radii, Orientation: orientation}
}

// OrientRectangle converts an axis-aligned rectangle to an identity-oriented
// OrientedRectangle: half the size becomes the radii and the geometric
// center becomes the center.
func OrientRectangle(r Rectangle) OrientedRectangle {
	return OrientedRectangle{
		Center:      r.Center(),
		Radii:       Vector2{X: r.Width / 2, Y: r.Height / 2},
		Orientation: Identity(),
	}
}

// Points returns the four corners in world space, always in the order
// right-top, left-top, left-bottom, right-bottom of the local frame
// (Y grows downward). Each corner is Orientation applied to the signed
// radii offset, translated by Center.
func (r OrientedRectangle) Points() [4]Vector2 {
	offsets := [4]Vector2{
		{X: +r.Radii.X, Y: -r.Radii.Y},
		{X: -r.Radii.X, Y: -r.Radii.Y},
		{X: -r.Radii.X, Y: +r.Radii.Y},
		{X: +r.Radii.X, Y: +r.Radii.Y},
	}
	var points [4]Vector2
	for i, off := range offsets {
		points[i] = r.Orientation.Apply(off).Add(r.Center)
	}
	return points
}

// BoundingBox returns the smallest axis-aligned rectangle enclosing the
// rectangle's corners. It is derived on demand and always reflects the
// current fields. Rotation is discarded; this is an enclosing-box query,
// not a shape-preserving conversion.
func (r OrientedRectangle) BoundingBox() Rectangle {
	points := r.Points()
	minX, maxX := points[0].X, points[0].X
	minY, maxY := points[0].Y, points[0].Y
	for _, p := range points[1:] {
		minX = min(minX, p.X)
		maxX = max(maxX, p.X)
		minY = min(minY, p.Y)
		maxY = max(maxY, p.Y)
	}
	return Rectangle{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}
}

// Transform returns a new rectangle with the center transformed by m and
// the orientation composed with m. Radii are left unchanged, so the result
// is only geometrically correct when m is a pure rotation; callers applying
// scale must adjust Radii themselves.
func (r OrientedRectangle) Transform(m Matrix2) OrientedRectangle {
	return OrientedRectangle{
		Center:      m.Apply(r.Center),
		Radii:       r.Radii,
		Orientation: m.Mul(r.Orientation),
	}
}

// Intersects reports whether the filled regions of r and o overlap, using
// the Separating Axis Theorem over both rectangles' edge directions.
// Touching edges count as overlapping.
//
// A degenerate rectangle (a zero radius collapses an edge to length zero)
// yields a zero-length candidate axis; such axes are skipped rather than
// divided by zero, so the result is a defined boolean for any input.
func (r OrientedRectangle) Intersects(o OrientedRectangle) bool {
	a := r.Points()
	b := o.Points()
	return !separatedOnEdges(&a, &b) && !separatedOnEdges(&b, &a)
}

// separatedOnEdges runs the one-directional SAT test: it derives the two
// edge directions of source and reports whether either one separates the
// target corners from the source rectangle.
//
// Each axis is divided by its own squared length, which reparameterizes the
// source's projected interval to exactly [origin, origin+1] with
// origin = dot(source[0], axis). The target corners then only need plain
// dot products.
func separatedOnEdges(source, target *[4]Vector2) bool {
	axes := [2]Vector2{
		source[1].Sub(source[0]),
		source[3].Sub(source[0]),
	}
	for _, axis := range axes {
		lenSq := axis.LengthSquared()
		if lenSq == 0 {
			// Degenerate edge: no direction, no separation evidence.
			continue
		}
		axis = axis.Scale(1 / lenSq)

		origin := source[0].Dot(axis)
		tMin := target[0].Dot(axis)
		tMax := tMin
		for _, p := range target[1:] {
			proj := p.Dot(axis)
			tMin = min(tMin, proj)
			tMax = max(tMax, proj)
		}

		// Strict comparisons: touching intervals still overlap.
		if tMin > origin+1 || tMax < origin {
			return true
		}
	}
	return false
}

// Equal reports whether r and o have exactly equal centers, radii and
// orientations. No tolerance is applied.
func (r OrientedRectangle) Equal(o OrientedRectangle) bool {
	return r.Center.Equal(o.Center) && r.Radii.Equal(o.Radii) && r.Orientation.Equal(o.Orientation)
}

// Hash returns a 64-bit hash of the rectangle's fields, suitable for
// de-duplicating shape definitions. Equal rectangles hash equally.
func (r OrientedRectangle) Hash() uint64 {
	var buf [64]byte
	fields := [8]float64{
		r.Center.X, r.Center.Y,
		r.Radii.X, r.Radii.Y,
		r.Orientation.A, r.Orientation.B,
		r.Orientation.C, r.Orientation.D,
	}
	for i, f := range fields {
		binary.LittleEndian.PutUint64(buf[i*8:], math.Float64bits(f))
	}
	return xxhash.Sum64(buf[:])
}
