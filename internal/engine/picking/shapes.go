package picking

import "github.com/Faultbox/rubikcube/pkg/math"

// Rect is a planar quadrilateral given by its corners in winding order.
type Rect struct {
	A, B, C, D math.Vec3
}

// Plane is the set of points p with Normal.Dot(p) + D == 0.
type Plane struct {
	Normal math.Vec3
	D      float32
}

// NewPlane returns the plane with the given normal passing through point.
func NewPlane(normal, point math.Vec3) Plane {
	return Plane{Normal: normal, D: -normal.Dot(point)}
}

// SignedDistance returns the signed distance of p from the plane, scaled by
// the length of the normal.
func (p Plane) SignedDistance(point math.Vec3) float32 {
	return p.Normal.Dot(point) + p.D
}

// Box is an axis-aligned box.
type Box struct {
	Min math.Vec3
	Max math.Vec3
}

// NewBox creates a box from two opposite corners in any order.
func NewBox(a, b math.Vec3) Box {
	return Box{Min: a.Min(b), Max: a.Max(b)}
}

// Corners returns the 8 corners of the box.
func (b Box) Corners() [8]math.Vec3 {
	lo, hi := b.Min, b.Max
	return [8]math.Vec3{
		{X: lo.X, Y: lo.Y, Z: lo.Z},
		{X: lo.X, Y: hi.Y, Z: lo.Z},
		{X: hi.X, Y: hi.Y, Z: lo.Z},
		{X: hi.X, Y: lo.Y, Z: lo.Z},
		{X: hi.X, Y: lo.Y, Z: hi.Z},
		{X: hi.X, Y: hi.Y, Z: hi.Z},
		{X: lo.X, Y: hi.Y, Z: hi.Z},
		{X: lo.X, Y: lo.Y, Z: hi.Z},
	}
}

// Center returns the centre point of the box.
func (b Box) Center() math.Vec3 {
	return b.Min.Add(b.Max).Scale(0.5)
}

// RayRectIntersection tests the ray against rect by splitting it into the
// triangles ABC and ACD. It returns the hit point of the first triangle hit.
func RayRectIntersection(ray Ray, rect Rect) (math.Vec3, bool) {
	if hit, _, ok := ray.IntersectTriangle(rect.A, rect.B, rect.C); ok {
		return hit, true
	}
	if hit, _, ok := ray.IntersectTriangle(rect.A, rect.C, rect.D); ok {
		return hit, true
	}
	return math.Vec3{}, false
}

// PlaneBoxIntersection reports whether the box has corners strictly on both
// sides of the plane.
func PlaneBoxIntersection(plane Plane, box Box) bool {
	var front, back bool
	for _, c := range box.Corners() {
		d := plane.SignedDistance(c)
		if d > 0 {
			front = true
		} else if d < 0 {
			back = true
		}
		if front && back {
			return true
		}
	}
	return false
}

// SquareDistance returns the squared distance between a and b. Callers only
// compare distances, so the square root is skipped.
func SquareDistance(a, b math.Vec3) float32 {
	return a.Sub(b).LengthSq()
}
