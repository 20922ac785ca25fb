// Package camera provides the orbit camera that frames the cube and the
// viewport that maps screen points into cube space.
package camera

import (
	gomath "math"

	"github.com/Faultbox/rubikcube/pkg/math"
)

// OrbitCamera orbits around a target point.
type OrbitCamera struct {
	Target math.Vec3

	// Spherical coordinates
	Distance float32
	Pitch    float32 // vertical angle, radians
	Yaw      float32 // horizontal angle, radians; pi looks along +Z

	// Constraints
	MinDistance float32
	MaxDistance float32
	MinPitch    float32
	MaxPitch    float32

	// Sensitivity
	DragSensitivity float32
	ZoomSensitivity float32

	homePitch, homeYaw, homeDistance float32
}

// NewOrbitCamera creates an orbit camera facing the cube's front face from
// slightly above and to the left.
func NewOrbitCamera() *OrbitCamera {
	c := &OrbitCamera{
		Distance:        90.0,
		Pitch:           0.45,
		Yaw:             gomath.Pi + 0.55,
		MinDistance:     40.0,
		MaxDistance:     300.0,
		MinPitch:        -1.4,
		MaxPitch:        1.4,
		DragSensitivity: 0.005,
		ZoomSensitivity: 0.1,
	}
	c.SaveHome()
	return c
}

// SaveHome records the current orientation as the one ResetView returns to.
func (c *OrbitCamera) SaveHome() {
	c.homePitch = c.Pitch
	c.homeYaw = c.Yaw
	c.homeDistance = c.Distance
}

// ResetView restores the orientation recorded by SaveHome.
func (c *OrbitCamera) ResetView() {
	c.Pitch = c.homePitch
	c.Yaw = c.homeYaw
	c.Distance = c.homeDistance
}

// Position returns the eye position in cube space.
func (c *OrbitCamera) Position() math.Vec3 {
	cp := gomath.Cos(float64(c.Pitch))
	return c.Target.Add(math.Vec3{
		X: c.Distance * float32(cp*gomath.Sin(float64(c.Yaw))),
		Y: c.Distance * float32(gomath.Sin(float64(c.Pitch))),
		Z: c.Distance * float32(cp*gomath.Cos(float64(c.Yaw))),
	})
}

// Forward returns the unit view direction.
func (c *OrbitCamera) Forward() math.Vec3 {
	return c.Target.Sub(c.Position()).Normalize()
}

// ViewMatrix returns the view matrix for this camera.
func (c *OrbitCamera) ViewMatrix() math.Mat4 {
	return math.LookAt(c.Position(), c.Target, math.Vec3{Y: 1})
}

// HandleDrag updates the orientation from a mouse drag delta in pixels.
func (c *OrbitCamera) HandleDrag(deltaX, deltaY float32) {
	c.Yaw += deltaX * c.DragSensitivity
	c.Pitch += deltaY * c.DragSensitivity
	c.clamp()
}

// SetView places the camera and records the result as its home view.
// Pitch and distance are clamped to the camera's limits; at a pitch of
// plus or minus pi/2 the screen axes would be undefined.
func (c *OrbitCamera) SetView(distance, pitch, yaw float32) {
	c.Distance = distance
	c.Pitch = pitch
	c.Yaw = yaw
	c.clamp()
	c.SaveHome()
}

func (c *OrbitCamera) clamp() {
	c.Pitch = max(c.MinPitch, min(c.Pitch, c.MaxPitch))
	c.Distance = max(c.MinDistance, min(c.Distance, c.MaxDistance))
}

// HandleZoom updates distance based on scroll wheel delta.
func (c *OrbitCamera) HandleZoom(delta float32) {
	c.Distance -= delta * c.Distance * c.ZoomSensitivity
	c.clamp()
}
