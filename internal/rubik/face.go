// Package rubik holds the logical 3x3x3 cube: its unit cells, the face
// picker, the drag gesture that turns a layer, and the quantizer that
// snaps every finished turn back onto the cell lattice.
package rubik

import (
	"github.com/Faultbox/rubikcube/internal/engine/picking"
	"github.com/Faultbox/rubikcube/pkg/math"
)

// Face names one side of the cube's outer shell.
type Face int

const (
	FaceFront Face = iota
	FaceBack
	FaceLeft
	FaceRight
	FaceTop
	FaceBottom
	FaceUnknown
)

// NumFaces is the number of real faces.
const NumFaces = 6

// pickEpsilon is the tolerance, in cube length units, for matching a hit
// point against the shell.
const pickEpsilon = 0.001

var faceNames = [...]string{"front", "back", "left", "right", "top", "bottom", "unknown"}

// String returns the face name.
func (f Face) String() string {
	if f < 0 || f > FaceUnknown {
		return "unknown"
	}
	return faceNames[f]
}

// Valid reports whether f is one of the six real faces.
func (f Face) Valid() bool {
	return f >= FaceFront && f < FaceUnknown
}

// NormalAxis returns the axis perpendicular to the face.
func (f Face) NormalAxis() math.Axis {
	switch f {
	case FaceFront, FaceBack:
		return math.AxisZ
	case FaceLeft, FaceRight:
		return math.AxisX
	case FaceTop, FaceBottom:
		return math.AxisY
	default:
		return math.AxisNone
	}
}

// Normal returns the outward unit normal. The front face looks down -Z.
func (f Face) Normal() math.Vec3 {
	switch f {
	case FaceFront:
		return math.Vec3{Z: -1}
	case FaceBack:
		return math.Vec3{Z: 1}
	case FaceLeft:
		return math.Vec3{X: -1}
	case FaceRight:
		return math.Vec3{X: 1}
	case FaceTop:
		return math.Vec3{Y: 1}
	case FaceBottom:
		return math.Vec3{Y: -1}
	default:
		return math.Vec3{}
	}
}

// PickFace maps a point on the shell of half side length half to the face
// it lies on. Front/Back are tested first, then Left/Right, then Top/Bottom.
func PickFace(hit math.Vec3, half float32) Face {
	near := func(v, want float32) bool {
		d := v - want
		return d > -pickEpsilon && d < pickEpsilon
	}

	switch {
	case near(hit.Z, -half):
		return FaceFront
	case near(hit.Z, half):
		return FaceBack
	case near(hit.X, -half):
		return FaceLeft
	case near(hit.X, half):
		return FaceRight
	case near(hit.Y, half):
		return FaceTop
	case near(hit.Y, -half):
		return FaceBottom
	default:
		return FaceUnknown
	}
}

// shellFaces builds the six face rectangles of a shell with the given half
// side length, indexed by Face.
func shellFaces(half float32) [NumFaces]picking.Rect {
	h := half
	a := math.Vec3{X: -h, Y: h, Z: -h}
	b := math.Vec3{X: h, Y: h, Z: -h}
	c := math.Vec3{X: h, Y: -h, Z: -h}
	d := math.Vec3{X: -h, Y: -h, Z: -h}
	e := math.Vec3{X: -h, Y: h, Z: h}
	f := math.Vec3{X: h, Y: h, Z: h}
	g := math.Vec3{X: h, Y: -h, Z: h}
	k := math.Vec3{X: -h, Y: -h, Z: h}

	var faces [NumFaces]picking.Rect
	faces[FaceFront] = picking.Rect{A: a, B: b, C: c, D: d}
	faces[FaceBack] = picking.Rect{A: e, B: f, C: g, D: k}
	faces[FaceLeft] = picking.Rect{A: e, B: a, C: d, D: k}
	faces[FaceRight] = picking.Rect{A: b, B: f, C: g, D: c}
	faces[FaceTop] = picking.Rect{A: e, B: f, C: b, D: a}
	faces[FaceBottom] = picking.Rect{A: g, B: k, C: d, D: c}
	return faces
}
