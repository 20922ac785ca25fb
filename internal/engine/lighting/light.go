// Package lighting provides lighting utilities for 3D rendering.
package lighting

import (
	gomath "math"

	"github.com/Faultbox/rubikcube/pkg/math"
)

// Default key light, from the upper left in front of the cube.
const (
	DefaultAzimuth   = 215.0
	DefaultElevation = 50.0
)

// Direction converts azimuth and elevation angles, in degrees, to a unit
// vector pointing towards the light. Azimuth is measured around +Y from
// +Z, elevation from the horizontal plane.
func Direction(azimuth, elevation float32) math.Vec3 {
	az := float64(azimuth) * gomath.Pi / 180
	el := float64(elevation) * gomath.Pi / 180

	return math.Vec3{
		X: float32(gomath.Cos(el) * gomath.Sin(az)),
		Y: float32(gomath.Sin(el)),
		Z: float32(gomath.Cos(el) * gomath.Cos(az)),
	}
}

// DefaultDirection returns the default key light direction.
func DefaultDirection() math.Vec3 {
	return Direction(DefaultAzimuth, DefaultElevation)
}
