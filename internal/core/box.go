package core

import "math"

// Box is an axis-aligned bounding box described by its centre and half
// extents.
type Box struct {
	Center Vec3
	Half   Vec3
}

// NewBox creates a box from a centre and full size.
func NewBox(center Vec3, w, h, d float64) Box {
	return Box{Center: center, Half: Vec3{w / 2, h / 2, d / 2}}
}

// Min returns the lowest corner.
func (b Box) Min() Vec3 {
	return b.Center.Sub(b.Half)
}

// Max returns the highest corner.
func (b Box) Max() Vec3 {
	return b.Center.Add(b.Half)
}

// Intersects reports whether two boxes overlap. Touching faces do not count.
func (b Box) Intersects(o Box) bool {
	if math.Abs(b.Center.X-o.Center.X) >= b.Half.X+o.Half.X {
		return false
	}
	if math.Abs(b.Center.Y-o.Center.Y) >= b.Half.Y+o.Half.Y {
		return false
	}
	if math.Abs(b.Center.Z-o.Center.Z) >= b.Half.Z+o.Half.Z {
		return false
	}
	return true
}

// ClosestPoint returns the point inside the box nearest to p.
func (b Box) ClosestPoint(p Vec3) Vec3 {
	lo, hi := b.Min(), b.Max()
	return Vec3{
		X: ClampF(p.X, lo.X, hi.X),
		Y: ClampF(p.Y, lo.Y, hi.Y),
		Z: ClampF(p.Z, lo.Z, hi.Z),
	}
}

// IntersectsSphere reports whether a sphere touches the box, using the
// closest-point test.
func (b Box) IntersectsSphere(c Vec3, r float64) bool {
	return b.ClosestPoint(c).Sub(c).LenSq() <= r*r
}

// SphereBox returns the AABB of a sphere.
func SphereBox(c Vec3, r float64) Box {
	return Box{Center: c, Half: Vec3{r, r, r}}
}

// NearestFaceNormal returns the outward normal of the face whose plane is
// closest to p. Ties resolve in the order -X, +X, -Y, +Y, -Z, +Z.
func (b Box) NearestFaceNormal(p Vec3) Vec3 {
	lo, hi := b.Min(), b.Max()
	faces := [6]struct {
		dist   float64
		normal Vec3
	}{
		{math.Abs(p.X - lo.X), AxisNegX},
		{math.Abs(p.X - hi.X), AxisPosX},
		{math.Abs(p.Y - lo.Y), AxisNegY},
		{math.Abs(p.Y - hi.Y), AxisPosY},
		{math.Abs(p.Z - lo.Z), AxisNegZ},
		{math.Abs(p.Z - hi.Z), AxisPosZ},
	}

	best := 0
	for i := 1; i < len(faces); i++ {
		if faces[i].dist < faces[best].dist {
			best = i
		}
	}
	return faces[best].normal
}

// Rect is a cell-space rectangle used by the screen buffer.
type Rect struct {
	X, Y int
	W, H int
}

// NewRect creates a rectangle.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the exclusive right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the exclusive bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Clamp restricts an int to [lo, hi].
func Clamp(val, lo, hi int) int {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}

// ClampF restricts a float64 to [lo, hi].
func ClampF(val, lo, hi float64) float64 {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}

// Sign returns -1 for negative values and 1 otherwise.
func Sign(v float64) float64 {
	if v < 0 {
		return -1
	}
	return 1
}
