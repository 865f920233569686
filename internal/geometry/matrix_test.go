package geometry

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const epsilon = 1e-12

func assertVectorNear(t *testing.T, want, got Vector2) {
	t.Helper()
	assert.InDelta(t, want.X, got.X, epsilon)
	assert.InDelta(t, want.Y, got.Y, epsilon)
}

func TestIdentityApply(t *testing.T) {
	v := Vector2{X: 7, Y: -3}
	assert.Equal(t, v, Identity().Apply(v))
}

func TestRotationApply(t *testing.T) {
	tests := []struct {
		name  string
		angle float64
		in    Vector2
		want  Vector2
	}{
		{name: "quarter turn", angle: math.Pi / 2, in: Vector2{X: 1, Y: 0}, want: Vector2{X: 0, Y: 1}},
		{name: "half turn", angle: math.Pi, in: Vector2{X: 1, Y: 2}, want: Vector2{X: -1, Y: -2}},
		{name: "full turn", angle: 2 * math.Pi, in: Vector2{X: 3, Y: 4}, want: Vector2{X: 3, Y: 4}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertVectorNear(t, tt.want, Rotation(tt.angle).Apply(tt.in))
		})
	}
}

func TestScalingApply(t *testing.T) {
	got := Scaling(2, 3).Apply(Vector2{X: 4, Y: -1})
	assert.Equal(t, Vector2{X: 8, Y: -3}, got)
}

func TestMulComposition(t *testing.T) {
	// Two quarter turns compose to a half turn.
	quarter := Rotation(math.Pi / 2)
	composed := quarter.Mul(quarter)
	assertVectorNear(t, Vector2{X: -1, Y: 0}, composed.Apply(Vector2{X: 1, Y: 0}))
}

func TestInverse(t *testing.T) {
	m := Rotation(0.37).Mul(Scaling(2, 5))
	require.NotZero(t, m.Determinant())

	inv := m.Inverse()
	v := Vector2{X: 3, Y: -8}
	assertVectorNear(t, v, inv.Apply(m.Apply(v)))
}

func TestInverseSingular(t *testing.T) {
	singular := Matrix2{A: 1, B: 2, C: 2, D: 4}
	require.Zero(t, singular.Determinant())
	assert.Equal(t, Identity(), singular.Inverse())
}

func TestRotationDeterminant(t *testing.T) {
	// Rotations preserve area.
	assert.InDelta(t, 1.0, Rotation(1.234).Determinant(), epsilon)
}
