package picking

import (
	gomath "math"
	"testing"

	"github.com/Faultbox/rubikcube/pkg/math"
)

// unitSquare is the square z = -1 spanning [-1, 1] in X and Y.
var unitSquare = Rect{
	A: math.Vec3{X: -1, Y: 1, Z: -1},
	B: math.Vec3{X: 1, Y: 1, Z: -1},
	C: math.Vec3{X: 1, Y: -1, Z: -1},
	D: math.Vec3{X: -1, Y: -1, Z: -1},
}

func TestRayRectIntersection(t *testing.T) {
	tests := []struct {
		name    string
		ray     Ray
		wantHit bool
		want    math.Vec3
	}{
		{
			name:    "center",
			ray:     Ray{Origin: math.Vec3{Z: -10}, Direction: math.Vec3{Z: 1}},
			wantHit: true,
			want:    math.Vec3{Z: -1},
		},
		{
			name:    "first triangle",
			ray:     Ray{Origin: math.Vec3{X: 0.5, Y: 0.8, Z: -10}, Direction: math.Vec3{Z: 1}},
			wantHit: true,
			want:    math.Vec3{X: 0.5, Y: 0.8, Z: -1},
		},
		{
			name:    "second triangle",
			ray:     Ray{Origin: math.Vec3{X: -0.8, Y: -0.5, Z: -10}, Direction: math.Vec3{Z: 1}},
			wantHit: true,
			want:    math.Vec3{X: -0.8, Y: -0.5, Z: -1},
		},
		{
			name:    "outside",
			ray:     Ray{Origin: math.Vec3{X: 2, Z: -10}, Direction: math.Vec3{Z: 1}},
			wantHit: false,
		},
		{
			name:    "pointing away",
			ray:     Ray{Origin: math.Vec3{Z: -10}, Direction: math.Vec3{Z: -1}},
			wantHit: false,
		},
		{
			name:    "parallel",
			ray:     Ray{Origin: math.Vec3{Z: -10}, Direction: math.Vec3{X: 1}},
			wantHit: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hit, ok := RayRectIntersection(tt.ray, unitSquare)
			if ok != tt.wantHit {
				t.Fatalf("hit = %v, want %v", ok, tt.wantHit)
			}
			if ok && !hit.ApproxEqual(tt.want, 1e-5) {
				t.Errorf("hit point = %v, want %v", hit, tt.want)
			}
		})
	}
}

func TestPlaneBoxIntersection(t *testing.T) {
	box := NewBox(math.Vec3{X: 1, Y: 1, Z: 1}, math.Vec3{X: -1, Y: -1, Z: -1})

	tests := []struct {
		name  string
		plane Plane
		want  bool
	}{
		{"through center", NewPlane(math.Vec3{X: 1}, math.Vec3{}), true},
		{"oblique", NewPlane(math.Vec3{X: 1, Y: 1}.Normalize(), math.Vec3{X: 0.5}), true},
		{"outside", NewPlane(math.Vec3{Y: 1}, math.Vec3{Y: 2}), false},
		{"touching face", NewPlane(math.Vec3{Z: 1}, math.Vec3{Z: 1}), false},
		{"no normal", Plane{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PlaneBoxIntersection(tt.plane, box); got != tt.want {
				t.Errorf("PlaneBoxIntersection() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSquareDistance(t *testing.T) {
	got := SquareDistance(math.Vec3{X: 1, Y: 2, Z: 3}, math.Vec3{X: 4, Y: 6, Z: 3})
	if got != 25 {
		t.Errorf("SquareDistance = %v, want 25", got)
	}
}

func TestIntersectAABB(t *testing.T) {
	box := Box{Min: math.Vec3{X: -1, Y: -1, Z: -1}, Max: math.Vec3{X: 1, Y: 1, Z: 1}}

	ray := Ray{Origin: math.Vec3{Z: -5}, Direction: math.Vec3{Z: 1}}
	tHit, ok := ray.IntersectAABB(box)
	if !ok || gomath.Abs(float64(tHit-4)) > 1e-5 {
		t.Errorf("IntersectAABB = (%v, %v), want (4, true)", tHit, ok)
	}

	inside := Ray{Origin: math.Vec3{}, Direction: math.Vec3{X: 1}}
	tHit, ok = inside.IntersectAABB(box)
	if !ok || gomath.Abs(float64(tHit-1)) > 1e-5 {
		t.Errorf("IntersectAABB from inside = (%v, %v), want (1, true)", tHit, ok)
	}

	miss := Ray{Origin: math.Vec3{X: 3, Z: -5}, Direction: math.Vec3{Z: 1}}
	if _, ok := miss.IntersectAABB(box); ok {
		t.Error("expected miss")
	}
}

func TestScreenToRayIdentity(t *testing.T) {
	// With an identity view-projection, the screen centre maps to the Z axis.
	ray := ScreenToRay(50, 50, 100, 100, math.Identity())
	if !ray.Origin.ApproxEqual(math.Vec3{Z: -1}, 1e-5) {
		t.Errorf("origin = %v, want (0,0,-1)", ray.Origin)
	}
	if !ray.Direction.ApproxEqual(math.Vec3{Z: 1}, 1e-5) {
		t.Errorf("direction = %v, want (0,0,1)", ray.Direction)
	}

	// Top-left corner maps to NDC (-1, 1).
	corner := ScreenToRay(0, 0, 100, 100, math.Identity())
	if !corner.Origin.ApproxEqual(math.Vec3{X: -1, Y: 1, Z: -1}, 1e-5) {
		t.Errorf("corner origin = %v, want (-1,1,-1)", corner.Origin)
	}
}

func TestIntersectTriangle(t *testing.T) {
	a := math.Vec3{X: -1, Y: -1, Z: -1}
	b := math.Vec3{X: 1, Y: -1, Z: -1}
	c := math.Vec3{X: 0, Y: 1, Z: -1}

	tests := []struct {
		name   string
		ray    Ray
		wantOK bool
		wantT  float32
	}{
		{"through centre", Ray{Origin: math.Vec3{Z: -5}, Direction: math.Vec3{Z: 1}}, true, 4},
		{"outside edge", Ray{Origin: math.Vec3{X: 0.9, Y: 0.9, Z: -5}, Direction: math.Vec3{Z: 1}}, false, 0},
		{"pointing away", Ray{Origin: math.Vec3{Z: -5}, Direction: math.Vec3{Z: -1}}, false, 0},
		{"parallel", Ray{Origin: math.Vec3{Z: -5}, Direction: math.Vec3{X: 1}}, false, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hit, dist, ok := tt.ray.IntersectTriangle(a, b, c)
			if ok != tt.wantOK {
				t.Fatalf("ok = %v, want %v", ok, tt.wantOK)
			}
			if !ok {
				return
			}
			if gomath.Abs(float64(dist-tt.wantT)) > 1e-5 {
				t.Errorf("t = %v, want %v", dist, tt.wantT)
			}
			if gomath.Abs(float64(hit.Z+1)) > 1e-5 {
				t.Errorf("hit.Z = %v, want -1", hit.Z)
			}
		})
	}
}
