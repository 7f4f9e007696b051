package geom

import "math"

// Vec2 is an immutable 2D vector. All operations return new values.
type Vec2 struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Add returns the component-wise sum of v and other.
func (v Vec2) Add(other Vec2) Vec2 {
	return Vec2{X: v.X + other.X, Y: v.Y + other.Y}
}

// Sub returns the component-wise difference v - other.
func (v Vec2) Sub(other Vec2) Vec2 {
	return Vec2{X: v.X - other.X, Y: v.Y - other.Y}
}

// Scale returns v multiplied by the scalar k.
func (v Vec2) Scale(k float64) Vec2 {
	return Vec2{X: v.X * k, Y: v.Y * k}
}

// Length returns the Euclidean magnitude of v.
func (v Vec2) Length() float64 {
	return math.Hypot(v.X, v.Y)
}

// Normalize returns a unit-length vector pointing the same way as v.
// The zero vector is returned unchanged so callers never divide by zero.
func (v Vec2) Normalize() Vec2 {
	length := v.Length()
	if length == 0 {
		return v
	}
	return Vec2{X: v.X / length, Y: v.Y / length}
}

// Distance returns the Euclidean distance between v and other.
func (v Vec2) Distance(other Vec2) float64 {
	return other.Sub(v).Length()
}
