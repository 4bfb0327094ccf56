package vmath

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	n := Vec2{3, 4}.Normalize()
	assert.InDelta(t, 0.6, n.X, 1e-12)
	assert.InDelta(t, 0.8, n.Y, 1e-12)
	assert.InDelta(t, 1.0, n.Length(), 1e-12)

	assert.Equal(t, Zero, Zero.Normalize())
}

func TestAngleBetween(t *testing.T) {
	tests := []struct {
		name string
		a, b Vec2
		want float64
	}{
		{"same", East, East, 0},
		{"perpendicular", North, East, math.Pi / 2},
		{"opposite", West, East, math.Pi},
		{"diagonal", Vec2{1, 1}, East, math.Pi / 4},
		{"scaled", Vec2{10, 0}, Vec2{0, -0.5}, math.Pi / 2},
		{"zero", Zero, East, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, tt.a.AngleBetween(tt.b), 1e-9)
		})
	}
}

func TestArithmetic(t *testing.T) {
	v := Vec2{1, 2}.Add(Vec2{3, -1}).Scale(2)
	assert.Equal(t, Vec2{8, 2}, v)
	assert.Equal(t, Vec2{-2, 3}, Vec2{1, 2}.Sub(Vec2{3, -1}))
	assert.Equal(t, 11.0, Vec2{1, 2}.Dot(Vec2{3, 4}))
	assert.Equal(t, "x: 8, y: 2", v.String())
}
