package camera

import (
	gomath "math"
	"testing"

	"github.com/Faultbox/rubikcube/pkg/math"
)

func frontCamera() *OrbitCamera {
	c := NewOrbitCamera()
	c.Pitch = 0
	c.Yaw = gomath.Pi
	c.Distance = 100
	return c
}

func TestOrbitCameraPosition(t *testing.T) {
	c := frontCamera()
	got := c.Position()
	if !got.ApproxEqual(math.Vec3{Z: -100}, 1e-3) {
		t.Errorf("Position() = %v, want (0,0,-100)", got)
	}
	if f := c.Forward(); !f.ApproxEqual(math.Vec3{Z: 1}, 1e-5) {
		t.Errorf("Forward() = %v, want +Z", f)
	}
}

func TestOrbitCameraPitchClamp(t *testing.T) {
	c := NewOrbitCamera()
	c.HandleDrag(0, 1e6)
	if c.Pitch != c.MaxPitch {
		t.Errorf("Pitch = %v, want %v", c.Pitch, c.MaxPitch)
	}
	c.HandleDrag(0, -1e6)
	if c.Pitch != c.MinPitch {
		t.Errorf("Pitch = %v, want %v", c.Pitch, c.MinPitch)
	}
}

func TestOrbitCameraZoomClamp(t *testing.T) {
	c := NewOrbitCamera()
	for i := 0; i < 100; i++ {
		c.HandleZoom(1)
	}
	if c.Distance != c.MinDistance {
		t.Errorf("Distance = %v, want %v", c.Distance, c.MinDistance)
	}
}

func TestOrbitCameraSetViewClamps(t *testing.T) {
	c := NewOrbitCamera()
	c.SetView(1e4, gomath.Pi/2, 0.3)
	if c.Pitch != c.MaxPitch {
		t.Errorf("Pitch = %v, want %v", c.Pitch, c.MaxPitch)
	}
	if c.Distance != c.MaxDistance {
		t.Errorf("Distance = %v, want %v", c.Distance, c.MaxDistance)
	}
	if c.Yaw != 0.3 {
		t.Errorf("Yaw = %v, want 0.3", c.Yaw)
	}

	c.HandleDrag(40, 0)
	c.ResetView()
	if c.Pitch != c.MaxPitch || c.Yaw != 0.3 {
		t.Errorf("ResetView() = (%v, %v), want the SetView result", c.Pitch, c.Yaw)
	}
}

// A vertical pitch request must still leave usable screen axes.
func TestViewportAxesAtSteepPitch(t *testing.T) {
	c := NewOrbitCamera()
	c.SetView(90, -gomath.Pi/2, gomath.Pi)
	vp := NewViewport(c, 400, 400, gomath.Pi/4)

	if r := vp.Right(); r.Length() < 0.99 {
		t.Errorf("Right() = %v, want a unit vector", r)
	}
	if v := vp.ScreenToInteractionVector(300, 200); v.Length() < 1e-3 {
		t.Errorf("ScreenToInteractionVector() = %v, want non-zero", v)
	}
}

func TestOrbitCameraResetView(t *testing.T) {
	c := NewOrbitCamera()
	pitch, yaw := c.Pitch, c.Yaw
	c.HandleDrag(50, 20)
	c.ResetView()
	if c.Pitch != pitch || c.Yaw != yaw {
		t.Errorf("ResetView() = (%v, %v), want (%v, %v)", c.Pitch, c.Yaw, pitch, yaw)
	}
}

func TestViewportScreenAxes(t *testing.T) {
	vp := NewViewport(frontCamera(), 800, 600, gomath.Pi/4)

	if r := vp.Right(); !r.ApproxEqual(math.Vec3{X: 1}, 1e-5) {
		t.Errorf("Right() = %v, want +X", r)
	}
	if u := vp.Up(); !u.ApproxEqual(math.Vec3{Y: 1}, 1e-5) {
		t.Errorf("Up() = %v, want +Y", u)
	}
}

func TestViewportPickingRay(t *testing.T) {
	vp := NewViewport(frontCamera(), 800, 600, gomath.Pi/4)

	center := vp.CastPickingRay(400, 300)
	if !center.Direction.ApproxEqual(math.Vec3{Z: 1}, 1e-3) {
		t.Errorf("centre ray direction = %v, want +Z", center.Direction)
	}

	right := vp.CastPickingRay(700, 300)
	if right.Direction.X <= 0 {
		t.Errorf("ray right of centre = %v, want positive X", right.Direction)
	}

	top := vp.CastPickingRay(400, 50)
	if top.Direction.Y <= 0 {
		t.Errorf("ray above centre = %v, want positive Y", top.Direction)
	}
}

func TestViewportProjectsRightFaceToScreenRight(t *testing.T) {
	vp := NewViewport(frontCamera(), 800, 600, gomath.Pi/4)
	clip := vp.ViewProj().MulVec4(math.Vec4{10, 0, 0, 1})
	if clip[0]/clip[3] <= 0 {
		t.Errorf("+X projects to ndc x = %v, want positive", clip[0]/clip[3])
	}
}

func TestViewportInteractionVector(t *testing.T) {
	vp := NewViewport(frontCamera(), 800, 600, gomath.Pi/4)

	got := vp.ScreenToInteractionVector(400+360, 300)
	if !got.ApproxEqual(math.Vec3{X: 1}, 1e-4) {
		t.Errorf("interaction vector = %v, want (1,0,0)", got)
	}

	got = vp.ScreenToInteractionVector(400, 300-270)
	if !got.ApproxEqual(math.Vec3{Y: 1}, 1e-4) {
		t.Errorf("interaction vector = %v, want (0,1,0)", got)
	}
}

func TestViewportResizeIgnoresZero(t *testing.T) {
	vp := NewViewport(frontCamera(), 800, 600, gomath.Pi/4)
	vp.Resize(0, 100)
	if vp.Width != 800 || vp.Height != 600 {
		t.Errorf("size = %dx%d, want 800x600", vp.Width, vp.Height)
	}
	vp.Resize(1024, 768)
	if vp.Width != 1024 || vp.Height != 768 {
		t.Errorf("size = %dx%d, want 1024x768", vp.Width, vp.Height)
	}
}
