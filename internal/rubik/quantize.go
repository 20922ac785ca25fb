package rubik

import gomath "math"

const (
	quarterTurn = gomath.Pi / 2
	eighthTurn  = gomath.Pi / 4

	// snapEpsilon absorbs float32 rounding of the input angle, so that a
	// remainder of exactly 45 degrees rounds back.
	snapEpsilon = 1e-6
)

// Quantize snaps an accumulated turn angle, in radians, to whole quarter
// turns. It returns the number of quarter turns normalized into [0, 4) and
// the correction angle that carries the layer from angle to that boundary.
// Non-finite angles quantize to no turn.
func Quantize(angle float32) (turns int, correction float32) {
	a := float64(angle)
	if gomath.IsNaN(a) || gomath.IsInf(a, 0) {
		return 0, 0
	}

	// Whole quarter turns first; same result as subtracting one quarter
	// turn at a time while the magnitude is at least a quarter turn.
	n := gomath.Trunc(a / quarterTurn)
	rem := a - n*quarterTurn
	for rem >= quarterTurn {
		rem -= quarterTurn
		n++
	}
	for rem <= -quarterTurn {
		rem += quarterTurn
		n--
	}

	var corr float64
	if gomath.Abs(rem) <= eighthTurn+snapEpsilon {
		corr = -rem
	} else {
		sign := 1.0
		if rem < 0 {
			sign = -1.0
		}
		n += sign
		corr = sign*quarterTurn - rem
	}

	t := int(gomath.Mod(n, 4))
	if t < 0 {
		t += 4
	}
	return t, float32(corr)
}
