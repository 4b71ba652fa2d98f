package sim

import "math"

// Vec2 represents a 2D vector in world coordinates (origin top-left, +Y down)
type Vec2 struct {
	X float64
	Y float64
}

// Add returns the component-wise sum of v and o
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns the component-wise difference v - o
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

// Scale returns v multiplied by the scalar s
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// Len returns the vector's magnitude
func (v Vec2) Len() float64 {
	return math.Hypot(v.X, v.Y)
}
