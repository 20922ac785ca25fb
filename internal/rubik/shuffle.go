package rubik

import (
	gomath "math"

	"go.uber.org/zap"

	"github.com/Faultbox/rubikcube/internal/logger"
	"github.com/Faultbox/rubikcube/pkg/math"
)

// Move is one quarter-turn move of a whole layer.
type Move struct {
	Axis  math.Axis
	Layer int // 0, 1 or 2 along Axis, from the negative side
	Turns int // quarter turns, 1 to 3
}

// angle returns the signed angle a move is animated through. Three
// quarter turns animate as one quarter turn the other way.
func (m Move) angle() float32 {
	t := m.Turns % 4
	if t < 0 {
		t += 4
	}
	if t == 3 {
		return -quarterTurn
	}
	return float32(t) * quarterTurn
}

type shuffleState struct {
	queue    []Move
	current  *Move
	progress float32 // angle already applied to the current move
}

func (s *shuffleState) active() bool {
	return s.current != nil || len(s.queue) > 0
}

// RandomMove draws a move with a random axis, layer and turn count.
func (c *Cube) RandomMove() Move {
	return Move{
		Axis:  math.Axis(c.rng.IntN(3)),
		Layer: c.rng.IntN(3),
		Turns: 1 + c.rng.IntN(3),
	}
}

// Shuffle queues n random moves. They are played back by Advance, one
// after another, and block gestures until the last one is baked. It
// returns false when the cube is busy.
func (c *Cube) Shuffle(n int) bool {
	if c.Busy() || n <= 0 {
		return false
	}
	moves := make([]Move, n)
	for i := range moves {
		moves[i] = c.RandomMove()
	}
	c.shuffle.queue = moves
	logger.Info("shuffle started", zap.Int("moves", n))

	if c.opts.ShuffleSpeed <= 0 {
		c.Advance(0)
	}
	return true
}

// PendingMoves returns the number of shuffle moves not yet baked.
func (c *Cube) PendingMoves() int {
	n := len(c.shuffle.queue)
	if c.shuffle.current != nil {
		n++
	}
	return n
}

// Advance plays back queued shuffle moves for dt seconds. With a
// non-positive shuffle speed every queued move is applied at once.
func (c *Cube) Advance(dt float32) {
	if !c.shuffle.active() {
		return
	}

	if c.opts.ShuffleSpeed <= 0 {
		for _, m := range c.shuffle.queue {
			c.ApplyMove(m)
		}
		c.shuffle.queue = nil
		logger.Info("shuffle finished")
		return
	}

	budget := c.opts.ShuffleSpeed * dt
	for budget > 0 && c.shuffle.active() {
		if c.shuffle.current == nil {
			m := c.shuffle.queue[0]
			c.shuffle.queue = c.shuffle.queue[1:]
			c.shuffle.current = &m
			c.shuffle.progress = 0
			c.markLayer(layerCenterPlane(m.Axis, m.Layer, c.step))
		}

		m := c.shuffle.current
		target := m.angle()
		remaining := float32(gomath.Abs(float64(target - c.shuffle.progress)))
		stepAngle := min(budget, remaining)
		budget -= stepAngle
		done := stepAngle >= remaining

		if target < 0 {
			stepAngle = -stepAngle
		}
		c.shuffle.progress += stepAngle
		c.rotateSelected(m.Axis, stepAngle)

		if done {
			c.finishMove(*m)
			c.shuffle.current = nil
			if !c.shuffle.active() {
				logger.Info("shuffle finished")
			}
		}
	}
}

// ApplyMove turns a layer immediately. It must not be called while a
// gesture is active.
func (c *Cube) ApplyMove(m Move) {
	c.markLayer(layerCenterPlane(m.Axis, m.Layer, c.step))
	c.finishMove(m)
}

// finishMove bakes a move into the currently selected cells.
func (c *Cube) finishMove(m Move) {
	turns := ((m.Turns % 4) + 4) % 4
	n := c.bakeSelected(m.Axis, turns)
	c.clearSelection()

	logger.Debug("move applied",
		zap.Stringer("axis", m.Axis),
		zap.Int("layer", m.Layer),
		zap.Int("turns", turns))

	if c.onSettle != nil {
		c.onSettle(Result{Face: FaceUnknown, Axis: m.Axis, Turns: turns, Cells: n})
	}
}
