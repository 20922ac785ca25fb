package rubik

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Faultbox/rubikcube/pkg/math"
)

func TestDirectionTableTotality(t *testing.T) {
	axes := []math.Axis{math.AxisX, math.AxisY, math.AxisZ}
	defined := 0

	for f := FaceFront; f <= FaceUnknown; f++ {
		for _, axis := range axes {
			for _, positive := range []bool{true, false} {
				d, ok := directionTable[directionKey{f, axis, positive}]
				valid := f.Valid() && axis != f.NormalAxis()
				if valid {
					assert.True(t, ok, "missing entry %v/%v/%v", f, axis, positive)
					assert.NotEqual(t, DirectionUnknown, d)
					defined++
				} else {
					assert.False(t, ok, "unexpected entry %v/%v/%v", f, axis, positive)
				}
			}
		}
	}
	assert.Equal(t, 24, defined)
	assert.Len(t, directionTable, 24)
}

func TestDirectionSignsAreOpposite(t *testing.T) {
	for k, d := range directionTable {
		other := directionTable[directionKey{k.face, k.axis, !k.positive}]
		assert.NotEqual(t, d, other, "%v/%v both signs give %v", k.face, k.axis, d)
	}
}

func TestDeltaAxis(t *testing.T) {
	tests := []struct {
		face Face
		axis math.Axis
		want math.Axis
	}{
		{FaceFront, math.AxisX, math.AxisY},
		{FaceFront, math.AxisY, math.AxisX},
		{FaceFront, math.AxisZ, math.AxisNone},
		{FaceLeft, math.AxisY, math.AxisZ},
		{FaceLeft, math.AxisZ, math.AxisY},
		{FaceTop, math.AxisX, math.AxisZ},
		{FaceTop, math.AxisZ, math.AxisX},
		{FaceTop, math.AxisY, math.AxisNone},
		{FaceUnknown, math.AxisX, math.AxisNone},
		{FaceFront, math.AxisNone, math.AxisNone},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, DeltaAxis(tt.face, tt.axis), "%v/%v", tt.face, tt.axis)
	}
}

func TestRotateDirection(t *testing.T) {
	origin := math.Vec3{}
	tests := []struct {
		name string
		face Face
		axis math.Axis
		cur  math.Vec3
		want Direction
	}{
		// Dragging right on the front face turns its row counter-clockwise
		// around +Y, which carries the front stickers towards +X.
		{"front drag right", FaceFront, math.AxisY, math.Vec3{X: 0.3}, CounterClockwise},
		{"front drag left", FaceFront, math.AxisY, math.Vec3{X: -0.3}, Clockwise},
		{"front drag up", FaceFront, math.AxisX, math.Vec3{Y: 0.3}, Clockwise},
		{"back drag up", FaceBack, math.AxisX, math.Vec3{Y: 0.3}, CounterClockwise},
		{"top drag away", FaceTop, math.AxisX, math.Vec3{Z: 0.3}, Clockwise},
		{"top drag right", FaceTop, math.AxisZ, math.Vec3{X: 0.3}, CounterClockwise},
		{"bottom drag right", FaceBottom, math.AxisZ, math.Vec3{X: 0.3}, Clockwise},
		{"left drag up", FaceLeft, math.AxisZ, math.Vec3{Y: 0.3}, CounterClockwise},
		{"right drag up", FaceRight, math.AxisZ, math.Vec3{Y: 0.3}, Clockwise},
		{"right drag back", FaceRight, math.AxisY, math.Vec3{Z: 0.3}, CounterClockwise},
		{"no movement", FaceLeft, math.AxisY, origin, Clockwise},
		{"axis along normal", FaceFront, math.AxisZ, math.Vec3{X: 1}, DirectionUnknown},
		{"unknown face", FaceUnknown, math.AxisX, math.Vec3{Y: 1}, DirectionUnknown},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RotateDirection(tt.face, tt.axis, origin, tt.cur))
		})
	}
}

// A sticker at the centre of the dragged face must move the same way as
// the drag along the delta axis.
func TestDirectionMovesStickerWithDrag(t *testing.T) {
	for k := range directionTable {
		da := DeltaAxis(k.face, k.axis)
		drag := float32(1)
		if k.positive {
			drag = -1
		}
		cur := da.Unit().Scale(drag)

		angle := float32(0.1)
		if RotateDirection(k.face, k.axis, math.Vec3{}, cur) == CounterClockwise {
			angle = -angle
		}

		p := k.face.Normal().Scale(15)
		moved := math.RotateAxis(k.axis.Unit(), angle).TransformVec3(p).Sub(p)
		assert.Equal(t, drag > 0, moved.Component(da) > 0,
			"%v around %v: drag %v moved sticker by %v", k.face, k.axis, drag, moved)
	}
}
