package geometry

import "math"

// Matrix2 is a 2x2 linear transform stored row-major:
//
//	[A B]
//	[C D]
//
// It maps (x, y) to (A*x + B*y, C*x + D*y). There is no translation
// component; shapes carry their position separately.
type Matrix2 struct {
	A, B float64
	C, D float64
}

// Identity returns the identity transform.
func Identity() Matrix2 {
	return Matrix2{A: 1, D: 1}
}

// Rotation returns a counter-clockwise rotation by angle radians.
func Rotation(angle float64) Matrix2 {
	cos := math.Cos(angle)
	sin := math.Sin(angle)
	return Matrix2{A: cos, B: -sin, C: sin, D: cos}
}

// Scaling returns a transform scaling by sx along X and sy along Y.
func Scaling(sx, sy float64) Matrix2 {
	return Matrix2{A: sx, D: sy}
}

// Mul returns the composition m * o, the transform that applies o first
// and then m.
func (m Matrix2) Mul(o Matrix2) Matrix2 {
	return Matrix2{
		A: m.A*o.A + m.B*o.C,
		B: m.A*o.B + m.B*o.D,
		C: m.C*o.A + m.D*o.C,
		D: m.C*o.B + m.D*o.D,
	}
}

// Apply transforms the vector v by m.
func (m Matrix2) Apply(v Vector2) Vector2 {
	return Vector2{
		X: m.A*v.X + m.B*v.Y,
		Y: m.C*v.X + m.D*v.Y,
	}
}

// Determinant returns the determinant of m.
func (m Matrix2) Determinant() float64 {
	return m.A*m.D - m.B*m.C
}

// Inverse returns the inverse transform. A singular matrix has no inverse;
// the identity is returned in that case.
func (m Matrix2) Inverse() Matrix2 {
	det := m.Determinant()
	if det == 0 {
		return Identity()
	}
	return Matrix2{
		A: m.D / det,
		B: -m.B / det,
		C: -m.C / det,
		D: m.A / det,
	}
}

// Equal reports whether m and o have exactly equal components.
func (m Matrix2) Equal(o Matrix2) bool {
	return m.A == o.A && m.B == o.B && m.C == o.C && m.D == o.D
}
