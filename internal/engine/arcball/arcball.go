// Package arcball maps mouse drags onto rotations of a virtual trackball.
package arcball

import (
	gomath "math"

	"github.com/Faultbox/rubikcube/pkg/math"
)

// DefaultRadius is the ball radius as a fraction of the half window size.
const DefaultRadius = 0.9

// ArcBall turns 2D mouse positions into rotations of a unit sphere centred
// in the window.
type ArcBall struct {
	width  float32 // window width in pixels
	height float32 // window height in pixels
	radius float32 // ball radius relative to the half window size

	dragging bool

	qDown     math.Quat // orientation when the drag began
	qNow      math.Quat // current orientation
	increment math.Quat // rotation since the previous OnMove

	downPt    math.Vec3 // ball point where the drag began
	oldPt     math.Vec3 // ball point at the previous OnMove
	currentPt math.Vec3 // ball point at the latest OnMove
}

// New creates an arc ball for a window of the given size.
func New(width, height float32) *ArcBall {
	a := &ArcBall{}
	a.Reset()
	a.SetWindow(width, height, DefaultRadius)
	return a
}

// Reset clears all accumulated rotation.
func (a *ArcBall) Reset() {
	a.dragging = false
	a.qDown = math.QuatIdentity()
	a.qNow = math.QuatIdentity()
	a.increment = math.QuatIdentity()
	a.downPt = math.Vec3{}
	a.oldPt = math.Vec3{}
	a.currentPt = math.Vec3{}
}

// SetWindow sets the window size and the ball radius.
func (a *ArcBall) SetWindow(width, height, radius float32) {
	a.width = width
	a.height = height
	a.radius = radius
}

// ScreenToVector maps a screen point onto the ball. X grows to the right, Y
// grows upwards and Z points out of the screen. Points outside the ball are
// projected onto its silhouette.
func (a *ArcBall) ScreenToVector(screenX, screenY float32) math.Vec3 {
	if a.width <= 0 || a.height <= 0 || a.radius <= 0 {
		return math.Vec3{Z: 1}
	}

	x := (screenX - a.width/2) / (a.radius * a.width / 2)
	y := -(screenY - a.height/2) / (a.radius * a.height / 2)

	disc := math.Vec2{X: x, Y: y}
	mag := disc.LengthSq()
	if mag > 1 {
		disc = disc.Scale(1 / float32(gomath.Sqrt(float64(mag))))
		return math.Vec3{X: disc.X, Y: disc.Y}
	}
	return math.Vec3{X: x, Y: y, Z: float32(gomath.Sqrt(float64(1 - mag)))}
}

// QuatFromBallPoints returns the quaternion taking ball point from onto to.
// Its rotation angle is twice the angle between the two points.
func QuatFromBallPoints(from, to math.Vec3) math.Quat {
	part := from.Cross(to)
	return math.Quat{X: part.X, Y: part.Y, Z: part.Z, W: from.Dot(to)}
}

// OnBegin starts a drag at the given screen point.
func (a *ArcBall) OnBegin(x, y int) {
	a.dragging = true
	a.qDown = a.qNow
	a.increment = math.QuatIdentity()
	a.downPt = a.ScreenToVector(float32(x), float32(y))
	a.oldPt = a.downPt
	a.currentPt = a.downPt
}

// OnMove updates the drag. It does nothing unless a drag is active.
func (a *ArcBall) OnMove(x, y int) {
	if !a.dragging {
		return
	}
	a.currentPt = a.ScreenToVector(float32(x), float32(y))
	a.increment = QuatFromBallPoints(a.oldPt, a.currentPt)
	a.oldPt = a.currentPt
	a.qNow = a.qDown.Mul(QuatFromBallPoints(a.downPt, a.currentPt))
}

// OnEnd finishes the drag.
func (a *ArcBall) OnEnd() {
	a.dragging = false
	a.increment = math.QuatIdentity()
}

// IsDragging reports whether a drag is active.
func (a *ArcBall) IsDragging() bool {
	return a.dragging
}

// RotationQuat returns the orientation accumulated over all drags.
func (a *ArcBall) RotationQuat() math.Quat {
	return a.qNow
}

// RotationQuatIncrement returns the rotation produced by the latest OnMove.
func (a *ArcBall) RotationQuatIncrement() math.Quat {
	return a.increment
}
