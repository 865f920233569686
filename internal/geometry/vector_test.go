package geometry

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVector2Arithmetic(t *testing.T) {
	a := Vector2{X: 3, Y: -2}
	b := Vector2{X: 1, Y: 5}

	assert.Equal(t, Vector2{X: 4, Y: 3}, a.Add(b))
	assert.Equal(t, Vector2{X: 2, Y: -7}, a.Sub(b))
	assert.Equal(t, Vector2{X: 6, Y: -4}, a.Scale(2))
	assert.Equal(t, float64(-7), a.Dot(b))
}

func TestVector2Length(t *testing.T) {
	v := Vector2{X: 3, Y: 4}
	assert.Equal(t, 25.0, v.LengthSquared())
	assert.Equal(t, 5.0, v.Length())

	assert.Zero(t, Vector2{}.LengthSquared())
}

func TestVector2Equal(t *testing.T) {
	assert.True(t, Vector2{X: 1, Y: 2}.Equal(Vector2{X: 1, Y: 2}))
	assert.False(t, Vector2{X: 1, Y: 2}.Equal(Vector2{X: 1, Y: 2.0000001}))
}
