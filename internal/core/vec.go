// Package core provides the math, input and screen primitives shared by the
// simulation and the terminal platform. It has no third-party dependencies
// so game logic stays pure and testable.
package core

import "math"

// Vec3 is a float64 3D vector. X is horizontal, Y is up and Z is depth.
type Vec3 struct {
	X, Y, Z float64
}

// V3 builds a vector.
func V3(x, y, z float64) Vec3 {
	return Vec3{X: x, Y: y, Z: z}
}

// Add returns v + o.
func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z}
}

// Sub returns v - o.
func (v Vec3) Sub(o Vec3) Vec3 {
	return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z}
}

// Scale returns v * s.
func (v Vec3) Scale(s float64) Vec3 {
	return Vec3{v.X * s, v.Y * s, v.Z * s}
}

// Dot returns the dot product.
func (v Vec3) Dot(o Vec3) float64 {
	return v.X*o.X + v.Y*o.Y + v.Z*o.Z
}

// LenSq returns the squared magnitude.
func (v Vec3) LenSq() float64 {
	return v.Dot(v)
}

// Len returns the magnitude.
func (v Vec3) Len() float64 {
	return math.Sqrt(v.LenSq())
}

// Normalize returns the unit vector, or the zero vector for zero input.
func (v Vec3) Normalize() Vec3 {
	l := v.Len()
	if l == 0 {
		return Vec3{}
	}
	return v.Scale(1 / l)
}

// Reflect mirrors v across the plane with unit normal n: v - 2(v·n)n.
func (v Vec3) Reflect(n Vec3) Vec3 {
	return v.Sub(n.Scale(2 * v.Dot(n)))
}

// RotateZ rotates v around the Z axis by rad radians (counter-clockwise in
// the X/Y plane).
func (v Vec3) RotateZ(rad float64) Vec3 {
	s, c := math.Sincos(rad)
	return Vec3{X: v.X*c - v.Y*s, Y: v.X*s + v.Y*c, Z: v.Z}
}

// Dist returns the distance between two points.
func (v Vec3) Dist(o Vec3) float64 {
	return v.Sub(o).Len()
}

// ApproxEqual reports whether every component differs by at most eps.
func (v Vec3) ApproxEqual(o Vec3, eps float64) bool {
	return math.Abs(v.X-o.X) <= eps && math.Abs(v.Y-o.Y) <= eps && math.Abs(v.Z-o.Z) <= eps
}

// Unit axis normals, used as collision normals.
var (
	AxisPosX = Vec3{X: 1}
	AxisNegX = Vec3{X: -1}
	AxisPosY = Vec3{Y: 1}
	AxisNegY = Vec3{Y: -1}
	AxisPosZ = Vec3{Z: 1}
	AxisNegZ = Vec3{Z: -1}
)
