package camera

import (
	"github.com/Faultbox/rubikcube/internal/engine/picking"
	"github.com/Faultbox/rubikcube/pkg/math"
)

// Viewport couples a camera with the window size and projection.
//
// Cube space is left-handed: +X is the right face, +Y the top face and -Z
// the front face. The OpenGL view matrix is right-handed, so ViewProj
// mirrors X in clip space to keep +X on the right of the screen.
type Viewport struct {
	Camera *OrbitCamera

	Width, Height int
	FovY          float32 // radians
	Near, Far     float32

	// BallRadius scales the interaction disc relative to the half window
	// size, matching the rotation ball.
	BallRadius float32
}

// NewViewport creates a viewport for the given window size.
func NewViewport(cam *OrbitCamera, width, height int, fovY float32) *Viewport {
	return &Viewport{
		Camera:     cam,
		Width:      width,
		Height:     height,
		FovY:       fovY,
		Near:       1.0,
		Far:        1000.0,
		BallRadius: 0.9,
	}
}

// Resize updates the window size. Non-positive sizes are ignored.
func (v *Viewport) Resize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	v.Width = width
	v.Height = height
}

// Aspect returns width / height.
func (v *Viewport) Aspect() float32 {
	if v.Height == 0 {
		return 1
	}
	return float32(v.Width) / float32(v.Height)
}

// Projection returns the perspective projection matrix.
func (v *Viewport) Projection() math.Mat4 {
	return math.Perspective(v.FovY, v.Aspect(), v.Near, v.Far)
}

// ViewProj returns the combined matrix that takes cube space to clip space.
func (v *Viewport) ViewProj() math.Mat4 {
	return math.Scale(-1, 1, 1).Mul(v.Projection()).Mul(v.Camera.ViewMatrix())
}

// CastPickingRay returns the cube-space ray under a window pixel.
func (v *Viewport) CastPickingRay(x, y int) picking.Ray {
	return picking.ScreenToRay(float32(x), float32(y), float32(v.Width), float32(v.Height), v.ViewProj().Inverse())
}

// Right returns the cube-space direction that appears as screen right.
func (v *Viewport) Right() math.Vec3 {
	return math.Vec3{Y: 1}.Cross(v.Camera.Forward()).Normalize()
}

// Up returns the cube-space direction that appears as screen up.
func (v *Viewport) Up() math.Vec3 {
	return v.Camera.Forward().Cross(v.Right())
}

// ScreenToInteractionVector maps a window pixel onto the interaction disc
// and expresses it in cube space. X grows to the right, Y grows upwards,
// and one unit is BallRadius times the half window size.
func (v *Viewport) ScreenToInteractionVector(x, y int) math.Vec3 {
	if v.Width <= 0 || v.Height <= 0 {
		return math.Vec3{}
	}
	halfW := float32(v.Width) / 2
	halfH := float32(v.Height) / 2
	sx := (float32(x) - halfW) / (v.BallRadius * halfW)
	sy := -(float32(y) - halfH) / (v.BallRadius * halfH)
	return v.Right().Scale(sx).Add(v.Up().Scale(sy))
}
