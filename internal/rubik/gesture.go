package rubik

import (
	gomath "math"

	"github.com/Faultbox/rubikcube/internal/engine/picking"
	"github.com/Faultbox/rubikcube/pkg/math"
)

// GestureSession is the state of one press-drag-release interaction. It is
// created by Cube.Begin and consumed by Cube.End.
type GestureSession struct {
	Face Face

	StartHit   math.Vec3 // hit point on Face at Begin
	CurrentHit math.Vec3 // latest hit point on Face

	StartVector   math.Vec3 // interaction vector at Begin
	CurrentVector math.Vec3 // interaction vector at the latest Update

	// Axis and Plane are fixed by the first Update that moves the hit
	// point. Until then Axis is AxisNone and no cell is selected.
	Axis  math.Axis
	Plane picking.Plane

	Direction Direction
	Angle     float32 // accumulated turn angle, radians

	prevVector math.Vec3
}

// HasLayer reports whether the session has chosen its axis and layer.
func (s *GestureSession) HasLayer() bool {
	return s.Axis != math.AxisNone
}

// Result describes a finished turn.
type Result struct {
	Face       Face
	Axis       math.Axis
	Angle      float32 // accumulated angle before snapping
	Turns      int     // quarter turns in [0, 4)
	Correction float32 // final incremental rotation applied at release
	Cells      int     // number of cells turned
}

// chooseAxis picks the rotation axis for a drag on face from the start
// and current hit points. The in-face direction that moved further is the
// drag direction and the other in-face axis is the rotation axis.
func chooseAxis(face Face, start, cur math.Vec3) math.Axis {
	d := cur.Sub(start).Abs()
	switch face {
	case FaceFront, FaceBack:
		if d.X < d.Y {
			return math.AxisX
		}
		return math.AxisY
	case FaceLeft, FaceRight:
		if d.Y < d.Z {
			return math.AxisY
		}
		return math.AxisZ
	case FaceTop, FaceBottom:
		if d.X < d.Z {
			return math.AxisX
		}
		return math.AxisZ
	default:
		return math.AxisNone
	}
}

// layerPlane returns the plane through the centre of the lattice layer
// nearest to point along axis. Anchoring at the layer centre keeps a hit
// in the gap between two layers from selecting a partial layer.
func layerPlane(axis math.Axis, point math.Vec3, step float32) picking.Plane {
	layer := LayerIndex(point.Component(axis), step)
	return layerCenterPlane(axis, layer, step)
}

// layerCenterPlane returns the plane through the centre of layer 0, 1 or
// 2 along axis.
func layerCenterPlane(axis math.Axis, layer int, step float32) picking.Plane {
	n := axis.Unit()
	return picking.NewPlane(n, n.Scale(float32(layer-1)*step))
}

// LayerIndex returns the layer 0, 1 or 2 whose centre is nearest to the
// coordinate v, for lattice spacing step.
func LayerIndex(v, step float32) int {
	if step <= 0 {
		return 1
	}
	l := int(gomath.Round(float64(v/step))) + 1
	return max(0, min(2, l))
}
