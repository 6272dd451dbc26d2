package math

import "math"

// Vec2 is a 2D vector. Horizontal terrain offsets use X for world X and Y for world Z.
type Vec2 struct {
	X, Y float32
}

// Sub returns v - other.
func (v Vec2) Sub(other Vec2) Vec2 {
	return Vec2{v.X - other.X, v.Y - other.Y}
}

// Length returns the magnitude.
func (v Vec2) Length() float32 {
	return float32(math.Sqrt(float64(v.X*v.X + v.Y*v.Y)))
}

// WithinBox reports whether both components are strictly inside (-half, half).
func (v Vec2) WithinBox(half float32) bool {
	return Abs(v.X) < half && Abs(v.Y) < half
}

// Abs returns |x|.
func Abs(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}
