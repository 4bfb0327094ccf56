// Package vmath holds the small amount of 2D vector math the game needs.
package vmath

import (
	"fmt"
	"math"
)

// Vec2 is a 2D vector in world units. Y grows upwards.
type Vec2 struct {
	X, Y float64
}

var (
	Zero  = Vec2{}
	North = Vec2{0, 1}
	East  = Vec2{1, 0}
	South = Vec2{0, -1}
	West  = Vec2{-1, 0}
)

func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{v.X + o.X, v.Y + o.Y}
}

func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{v.X - o.X, v.Y - o.Y}
}

func (v Vec2) Scale(f float64) Vec2 {
	return Vec2{v.X * f, v.Y * f}
}

func (v Vec2) Dot(o Vec2) float64 {
	return v.X*o.X + v.Y*o.Y
}

func (v Vec2) Length() float64 {
	return math.Hypot(v.X, v.Y)
}

// Normalize returns the unit vector in the direction of v. The zero vector stays zero.
func (v Vec2) Normalize() Vec2 {
	l := v.Length()
	if l == 0 {
		return Zero
	}
	return Vec2{v.X / l, v.Y / l}
}

// AngleBetween returns the unsigned angle between v and o in radians, in [0, pi].
// It is 0 when either vector has zero length.
func (v Vec2) AngleBetween(o Vec2) float64 {
	l := v.Length() * o.Length()
	if l == 0 {
		return 0
	}
	// Clamp against rounding outside [-1, 1].
	c := math.Max(-1, math.Min(1, v.Dot(o)/l))
	return math.Acos(c)
}

func (v Vec2) String() string {
	return fmt.Sprintf("x: %g, y: %g", v.X, v.Y)
}
