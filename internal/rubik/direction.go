package rubik

import "github.com/Faultbox/rubikcube/pkg/math"

// Direction is the sense of a layer turn. A clockwise turn is positive
// around the rotation axis.
type Direction int

const (
	Clockwise Direction = iota
	CounterClockwise
	DirectionUnknown
)

// String returns the direction name.
func (d Direction) String() string {
	switch d {
	case Clockwise:
		return "clockwise"
	case CounterClockwise:
		return "counter-clockwise"
	default:
		return "unknown"
	}
}

type directionKey struct {
	face     Face
	axis     math.Axis
	positive bool // sign of previous minus current interaction vector
}

// directionTable lists, for every face and in-face rotation axis, which
// sign of the drag delta turns the layer counter-clockwise.
var directionTable = buildDirectionTable()

func buildDirectionTable() map[directionKey]Direction {
	ccwWhenPositive := []struct {
		face Face
		axis math.Axis
		ccw  bool
	}{
		{FaceFront, math.AxisX, true},
		{FaceFront, math.AxisY, false},
		{FaceBack, math.AxisX, false},
		{FaceBack, math.AxisY, true},
		{FaceLeft, math.AxisY, true},
		{FaceLeft, math.AxisZ, false},
		{FaceRight, math.AxisY, false},
		{FaceRight, math.AxisZ, true},
		{FaceTop, math.AxisX, true},
		{FaceTop, math.AxisZ, false},
		{FaceBottom, math.AxisX, false},
		{FaceBottom, math.AxisZ, true},
	}

	table := make(map[directionKey]Direction, 2*len(ccwWhenPositive))
	for _, e := range ccwWhenPositive {
		pos, neg := Clockwise, CounterClockwise
		if e.ccw {
			pos, neg = CounterClockwise, Clockwise
		}
		table[directionKey{e.face, e.axis, true}] = pos
		table[directionKey{e.face, e.axis, false}] = neg
	}
	return table
}

// DeltaAxis returns the interaction vector component that decides the
// direction for a face and rotation axis: the one that is neither the
// rotation axis nor the face normal. It returns AxisNone when the pair is
// invalid.
func DeltaAxis(face Face, axis math.Axis) math.Axis {
	normal := face.NormalAxis()
	if normal == math.AxisNone || axis == math.AxisNone || axis == normal {
		return math.AxisNone
	}
	return 3 - normal - axis
}

// RotateDirection returns the turn direction for a drag on face around
// axis, where prev and cur are the interaction vectors of the previous
// and current mouse positions. A zero delta reads as clockwise.
func RotateDirection(face Face, axis math.Axis, prev, cur math.Vec3) Direction {
	da := DeltaAxis(face, axis)
	if da == math.AxisNone {
		return DirectionUnknown
	}
	delta := prev.Sub(cur).Component(da)
	if delta == 0 {
		return Clockwise
	}
	return directionTable[directionKey{face, axis, delta > 0}]
}
