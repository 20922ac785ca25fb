package rubik

import (
	gomath "math"
	"math/rand/v2"

	"go.uber.org/zap"

	"github.com/Faultbox/rubikcube/internal/engine/arcball"
	"github.com/Faultbox/rubikcube/internal/engine/picking"
	"github.com/Faultbox/rubikcube/internal/logger"
	"github.com/Faultbox/rubikcube/pkg/math"
)

// Projector maps window pixels into cube space. It is the part of the
// renderer the cube needs for picking.
type Projector interface {
	CastPickingRay(x, y int) picking.Ray
	ScreenToInteractionVector(x, y int) math.Vec3
}

// Options configures a Cube.
type Options struct {
	CubeLength   float32 // side length of one unit cell
	Gap          float32 // spacing between neighbouring cells
	RotateSpeed  float32 // multiplier from rotation-ball angle to turn angle
	ShuffleSpeed float32 // radians per second for shuffle moves; <= 0 is instant
}

// DefaultOptions returns the standard cube proportions.
func DefaultOptions() Options {
	return Options{
		CubeLength:   10.0,
		Gap:          0.15,
		RotateSpeed:  1.5,
		ShuffleSpeed: 3 * gomath.Pi,
	}
}

// Cube owns the 27 unit cells and the six faces and turns layers in
// response to press, drag and release events.
type Cube struct {
	opts  Options
	half  float32
	step  float32
	cells [NumCells]UnitCell
	faces [NumFaces]picking.Rect
	shell picking.Box

	proj Projector
	ball *arcball.ArcBall

	session *GestureSession
	shuffle shuffleState
	rng     *rand.Rand

	onSettle func(Result)
}

// New creates a solved cube. The window size is used by the rotation ball
// and can be changed with Resize.
func New(opts Options, proj Projector, width, height int) *Cube {
	half := halfExtent(opts.CubeLength, opts.Gap)
	c := &Cube{
		opts:  opts,
		half:  half,
		step:  opts.CubeLength + opts.Gap,
		cells: buildCells(opts.CubeLength, opts.Gap),
		faces: shellFaces(half),
		shell: picking.Box{
			Min: math.Vec3{X: -half, Y: -half, Z: -half},
			Max: math.Vec3{X: half, Y: half, Z: half},
		},
		proj: proj,
		ball: arcball.New(float32(width), float32(height)),
		rng:  rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
	}
	return c
}

// Resize updates the rotation ball for a new window size.
func (c *Cube) Resize(width, height int) {
	c.ball.SetWindow(float32(width), float32(height), arcball.DefaultRadius)
}

// SetRand replaces the random source used by Shuffle.
func (c *Cube) SetRand(r *rand.Rand) {
	c.rng = r
}

// OnSettle registers a callback run after each turn is baked, for
// gestures and shuffle moves alike.
func (c *Cube) OnSettle(fn func(Result)) {
	c.onSettle = fn
}

// Options returns the cube's options.
func (c *Cube) Options() Options {
	return c.opts
}

// HalfExtent returns half the side length of the whole cube.
func (c *Cube) HalfExtent() float32 {
	return c.half
}

// Step returns the distance between neighbouring lattice positions.
func (c *Cube) Step() float32 {
	return c.step
}

// Cells returns the unit cells. The returned array is owned by the cube.
func (c *Cube) Cells() *[NumCells]UnitCell {
	return &c.cells
}

// Faces returns the shell rectangles indexed by Face.
func (c *Cube) Faces() [NumFaces]picking.Rect {
	return c.faces
}

// Session returns the active gesture, or nil.
func (c *Cube) Session() *GestureSession {
	return c.session
}

// Busy reports whether a gesture or a shuffle is in progress.
func (c *Cube) Busy() bool {
	return c.session != nil || c.shuffle.active()
}

// SelectedCount returns the number of selected cells.
func (c *Cube) SelectedCount() int {
	n := 0
	for i := range c.cells {
		if c.cells[i].Selected {
			n++
		}
	}
	return n
}

// Pick casts a ray through a window pixel and returns the face nearest to
// the camera that it hits, with the hit point.
func (c *Cube) Pick(x, y int) (Face, math.Vec3, bool) {
	ray := c.proj.CastPickingRay(x, y)
	if _, ok := ray.IntersectAABB(c.shell); !ok {
		return FaceUnknown, math.Vec3{}, false
	}

	var (
		best    math.Vec3
		bestD   = float32(gomath.MaxFloat32)
		hitSome bool
	)
	for i := range c.faces {
		hit, ok := picking.RayRectIntersection(ray, c.faces[i])
		if !ok {
			continue
		}
		if d := picking.SquareDistance(ray.Origin, hit); d < bestD {
			bestD = d
			best = hit
			hitSome = true
		}
	}
	if !hitSome {
		return FaceUnknown, math.Vec3{}, false
	}

	face := PickFace(best, c.half)
	if face == FaceUnknown {
		return FaceUnknown, math.Vec3{}, false
	}
	return face, best, true
}

// Begin starts a gesture at a window pixel. It returns false, and starts
// nothing, when the pixel misses the cube or the cube is busy.
func (c *Cube) Begin(x, y int) bool {
	if c.Busy() {
		return false
	}

	face, hit, ok := c.Pick(x, y)
	if !ok {
		return false
	}

	v := c.proj.ScreenToInteractionVector(x, y)
	c.session = &GestureSession{
		Face:          face,
		StartHit:      hit,
		CurrentHit:    hit,
		StartVector:   v,
		CurrentVector: v,
		Axis:          math.AxisNone,
		Direction:     DirectionUnknown,
		prevVector:    v,
	}
	c.ball.OnBegin(x, y)

	logger.Debug("gesture begin",
		zap.Stringer("face", face),
		zap.Float32("x", hit.X), zap.Float32("y", hit.Y), zap.Float32("z", hit.Z))
	return true
}

// Update continues the active gesture with the mouse at a window pixel.
func (c *Cube) Update(x, y int) {
	s := c.session
	if s == nil {
		return
	}

	c.ball.OnMove(x, y)
	s.CurrentVector = c.proj.ScreenToInteractionVector(x, y)

	if !s.HasLayer() {
		ray := c.proj.CastPickingRay(x, y)
		hit, ok := picking.RayRectIntersection(ray, c.faces[s.Face])
		if !ok || hit == s.StartHit {
			s.prevVector = s.CurrentVector
			return
		}
		s.CurrentHit = hit
		s.Axis = chooseAxis(s.Face, s.StartHit, hit)
		s.Plane = layerPlane(s.Axis, s.StartHit, c.step)
		n := c.markLayer(s.Plane)

		logger.Debug("layer selected",
			zap.Stringer("face", s.Face),
			zap.Stringer("axis", s.Axis),
			zap.Float32("plane", -s.Plane.D),
			zap.Int("cells", n))
	}

	s.Direction = RotateDirection(s.Face, s.Axis, s.prevVector, s.CurrentVector)
	s.prevVector = s.CurrentVector

	angle := c.ball.RotationQuatIncrement().Angle() * c.opts.RotateSpeed
	if s.Direction == CounterClockwise {
		angle = -angle
	}
	s.Angle += angle
	c.rotateSelected(s.Axis, angle)
}

// End finishes the active gesture: it snaps the turn to whole quarter
// turns and bakes it into the selected cells. It returns false when no
// gesture was active.
func (c *Cube) End() (Result, bool) {
	s := c.session
	if s == nil {
		return Result{}, false
	}
	c.session = nil
	c.ball.OnEnd()

	res := Result{Face: s.Face, Axis: s.Axis, Angle: s.Angle}
	if s.HasLayer() {
		res.Turns, res.Correction = Quantize(s.Angle)
		c.rotateSelected(s.Axis, res.Correction)
		res.Cells = c.bakeSelected(s.Axis, res.Turns)
	}
	c.clearSelection()

	logger.Debug("gesture end",
		zap.Stringer("face", res.Face),
		zap.Stringer("axis", res.Axis),
		zap.Int("turns", res.Turns),
		zap.Float32("correction", res.Correction))

	if res.Cells > 0 && c.onSettle != nil {
		c.onSettle(res)
	}
	return res, true
}

// Restore puts every cell back in its solved position. It is ignored, and
// returns false, while a gesture or shuffle is in progress.
func (c *Cube) Restore() bool {
	if c.Busy() {
		return false
	}
	for i := range c.cells {
		c.cells[i].reset()
	}
	logger.Info("cube restored")
	return true
}

// IsSolved reports whether every face shows a single color. Turning the
// whole cube keeps it solved.
func (c *Cube) IsSolved() bool {
	ref := c.cells[0].Orientation
	for i := range c.cells {
		cell := &c.cells[i]
		if cell.Orientation != ref {
			return false
		}
		a := ref.TransformVec3(cell.home.Min)
		b := ref.TransformVec3(cell.home.Max)
		if a.Min(b) != cell.Min || a.Max(b) != cell.Max {
			return false
		}
	}
	return true
}

// markLayer selects every cell whose box straddles plane.
func (c *Cube) markLayer(plane picking.Plane) int {
	n := 0
	for i := range c.cells {
		sel := picking.PlaneBoxIntersection(plane, c.cells[i].Box())
		c.cells[i].Selected = sel
		if sel {
			n++
		}
	}
	return n
}

func (c *Cube) clearSelection() {
	for i := range c.cells {
		c.cells[i].Selected = false
	}
}

func (c *Cube) rotateSelected(axis math.Axis, angle float32) {
	if angle == 0 || axis == math.AxisNone {
		return
	}
	for i := range c.cells {
		if c.cells[i].Selected {
			c.cells[i].Rotate(axis, angle)
		}
	}
}

func (c *Cube) bakeSelected(axis math.Axis, turns int) int {
	n := 0
	for i := range c.cells {
		if c.cells[i].Selected {
			c.cells[i].bake(axis, turns)
			n++
		}
	}
	return n
}
