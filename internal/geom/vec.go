// Package geom provides the 2D primitives for the raycasting core: vectors,
// wall segments, and rays with their segment-intersection test.
package geom

import "math"

// Vec2 is a 2D point or direction. It has value semantics; operations return
// new vectors rather than mutating in place.
type Vec2 struct {
	X, Y float64
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{v.X + o.X, v.Y + o.Y}
}

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{v.X - o.X, v.Y - o.Y}
}

// Scale returns v with both components multiplied by k.
func (v Vec2) Scale(k float64) Vec2 {
	return Vec2{v.X * k, v.Y * k}
}

// Length returns the Euclidean norm of v.
func (v Vec2) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}

// Normalize returns v scaled to unit length. The caller must never pass a
// zero vector; the result would be NaN in both components.
func (v Vec2) Normalize() Vec2 {
	l := v.Length()
	return Vec2{v.X / l, v.Y / l}
}

// FromAngle returns the unit direction vector for the given angle in radians.
// The result of cos/sin is already unit length, but it is normalized anyway
// to absorb floating-point drift.
func FromAngle(radians float64) Vec2 {
	return Vec2{math.Cos(radians), math.Sin(radians)}.Normalize()
}
