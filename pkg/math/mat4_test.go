package math

import (
	"math"
	"testing"
)

func TestIdentity(t *testing.T) {
	m := Identity()
	if m[0] != 1 || m[5] != 1 || m[10] != 1 || m[15] != 1 {
		t.Error("Identity diagonal should be 1")
	}
	if m[1] != 0 || m[4] != 0 {
		t.Error("Identity off-diagonal should be 0")
	}
}

func TestMulIdentity(t *testing.T) {
	m := RotateAxis(Vec3{0, 1, 0}, 0.3)
	result := m.Mul(Identity())

	for i := 0; i < 16; i++ {
		if result[i] != m[i] {
			t.Errorf("M * I should equal M, element %d: got %f, want %f", i, result[i], m[i])
		}
	}
}

func TestScale(t *testing.T) {
	m := Scale(2, 3, 4)
	got := m.TransformVec3(Vec3{1, 2, 3})
	want := Vec3{2, 6, 12}
	if got != want {
		t.Errorf("Scale: got %v, want %v", got, want)
	}
}

func TestRotateAxisY90(t *testing.T) {
	m := RotateAxis(Vec3{0, 1, 0}, float32(math.Pi/2))
	got := m.TransformVec3(Vec3{1, 0, 0})

	// (1,0,0) turns onto -Z
	if !got.ApproxEqual(Vec3{0, 0, -1}, 0.001) {
		t.Errorf("RotateAxis Y 90: got %v, want (0, 0, -1)", got)
	}
}

func TestQuarterTurnExact(t *testing.T) {
	tests := []struct {
		axis  Axis
		turns int
		in    Vec3
		want  Vec3
	}{
		{AxisX, 1, Vec3{0, 1, 0}, Vec3{0, 0, 1}},
		{AxisX, 2, Vec3{0, 1, 0}, Vec3{0, -1, 0}},
		{AxisY, 1, Vec3{1, 0, 0}, Vec3{0, 0, -1}},
		{AxisY, 3, Vec3{1, 0, 0}, Vec3{0, 0, 1}},
		{AxisY, -1, Vec3{1, 0, 0}, Vec3{0, 0, 1}},
		{AxisZ, 1, Vec3{1, 0, 0}, Vec3{0, 1, 0}},
		{AxisZ, 4, Vec3{15.3, -5, 2}, Vec3{15.3, -5, 2}},
	}

	for _, tt := range tests {
		got := QuarterTurn(tt.axis, tt.turns).TransformVec3(tt.in)
		// Exact comparison: quarter turns must not introduce rounding.
		if got.X != tt.want.X || got.Y != tt.want.Y || got.Z != tt.want.Z {
			t.Errorf("QuarterTurn(%v, %d) * %v = %v, want %v", tt.axis, tt.turns, tt.in, got, tt.want)
		}
	}
}

func TestQuarterTurnMatchesRotateAxis(t *testing.T) {
	for _, axis := range []Axis{AxisX, AxisY, AxisZ} {
		for turns := 0; turns < 4; turns++ {
			exact := QuarterTurn(axis, turns)
			approx := RotateAxis(axis.Unit(), float32(turns)*float32(math.Pi/2))
			if !exact.ApproxEqual(approx, 1e-5) {
				t.Errorf("axis %v turns %d: QuarterTurn %v != RotateAxis %v", axis, turns, exact, approx)
			}
		}
	}
}

func TestInverse(t *testing.T) {
	m := RotateAxis(Vec3{0, 0, 1}, 0.7).Mul(Scale(2, 3, 4))
	if !m.Mul(m.Inverse()).ApproxEqual(Identity(), 1e-5) {
		t.Error("M * M^-1 should be identity")
	}
}

func TestPerspective(t *testing.T) {
	m := Perspective(float32(math.Pi/4), 1.0, 0.1, 100.0)

	if m[0] == 0 || m[5] == 0 {
		t.Error("Perspective should have non-zero elements")
	}
	if m[15] != 0 {
		t.Errorf("Perspective [15] should be 0, got %f", m[15])
	}
	if m[11] != -1 {
		t.Errorf("Perspective [11] should be -1, got %f", m[11])
	}
}

func TestLookAt(t *testing.T) {
	eye := Vec3{0, 0, 5}
	m := LookAt(eye, Vec3{}, Vec3{0, 1, 0})

	// The eye maps to the view-space origin.
	got := m.TransformVec3(eye)
	if !got.ApproxEqual(Vec3{}, 1e-5) {
		t.Errorf("LookAt(eye) = %v, want origin", got)
	}
	if m[15] != 1 {
		t.Errorf("LookAt [15] should be 1, got %f", m[15])
	}
}
