package rubik

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Faultbox/rubikcube/pkg/math"
)

func TestPickFace(t *testing.T) {
	const h = 15.15
	tests := []struct {
		name string
		hit  math.Vec3
		want Face
	}{
		{"front centre", math.Vec3{Z: -h}, FaceFront},
		{"back centre", math.Vec3{Z: h}, FaceBack},
		{"left centre", math.Vec3{X: -h}, FaceLeft},
		{"right centre", math.Vec3{X: h}, FaceRight},
		{"top centre", math.Vec3{Y: h}, FaceTop},
		{"bottom centre", math.Vec3{Y: -h}, FaceBottom},
		{"within tolerance", math.Vec3{X: 3, Y: 2, Z: -h + 0.0005}, FaceFront},
		{"front wins on front-left edge", math.Vec3{X: -h, Y: 0, Z: -h}, FaceFront},
		{"left wins on left-top edge", math.Vec3{X: -h, Y: h, Z: 0}, FaceLeft},
		{"inside the cube", math.Vec3{X: 1, Y: 2, Z: 3}, FaceUnknown},
		{"just outside tolerance", math.Vec3{Z: -h + 0.01}, FaceUnknown},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, PickFace(tt.hit, h))
		})
	}
}

func TestShellFacesLieOnTheirFace(t *testing.T) {
	const h = 15.15
	faces := shellFaces(h)
	for f := FaceFront; f < FaceUnknown; f++ {
		r := faces[f]
		centre := r.A.Add(r.B).Add(r.C).Add(r.D).Scale(0.25)
		assert.Equal(t, f, PickFace(centre, h), "centre of %v rect", f)
		assert.InDelta(t, h, centre.Dot(f.Normal()), 1e-4, "%v rect offset", f)
	}
}

func TestFaceNormalAxis(t *testing.T) {
	assert.Equal(t, math.AxisZ, FaceFront.NormalAxis())
	assert.Equal(t, math.AxisX, FaceRight.NormalAxis())
	assert.Equal(t, math.AxisY, FaceBottom.NormalAxis())
	assert.Equal(t, math.AxisNone, FaceUnknown.NormalAxis())
	assert.False(t, FaceUnknown.Valid())
	assert.Equal(t, "top", FaceTop.String())
}
