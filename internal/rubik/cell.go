package rubik

import (
	"github.com/Faultbox/rubikcube/internal/engine/picking"
	"github.com/Faultbox/rubikcube/pkg/math"
)

// NumCells is the number of unit cells in the cube.
const NumCells = 27

// Color is an RGB sticker color.
type Color [3]float32

// Sticker colors of the solved cube.
var (
	ColorWhite  = Color{1.0, 1.0, 1.0}
	ColorYellow = Color{1.0, 0.85, 0.0}
	ColorRed    = Color{0.8, 0.05, 0.05}
	ColorOrange = Color{1.0, 0.45, 0.0}
	ColorGreen  = Color{0.0, 0.6, 0.2}
	ColorBlue   = Color{0.0, 0.25, 0.8}
	ColorInner  = Color{0.08, 0.08, 0.08}
)

// UnitCell is one of the 27 small cubes.
//
// Min and Max locate the cell on the lattice and change only when a turn
// is baked. Orientation is the exact product of all baked quarter turns,
// and RotationTransform holds the in-progress turn of the current gesture.
// The cell is drawn by applying Transform to its solved geometry.
type UnitCell struct {
	Min, Max math.Vec3

	Orientation       math.Mat4
	RotationTransform math.Mat4

	// FaceColors is indexed by Face in the cell's solved orientation.
	FaceColors [NumFaces]Color

	Selected bool

	home picking.Box
}

// newUnitCell creates a cell at its solved position.
func newUnitCell(lo, hi math.Vec3, colors [NumFaces]Color) UnitCell {
	return UnitCell{
		Min:               lo,
		Max:               hi,
		Orientation:       math.Identity(),
		RotationTransform: math.Identity(),
		FaceColors:        colors,
		home:              picking.Box{Min: lo, Max: hi},
	}
}

// Box returns the cell's current lattice box.
func (c *UnitCell) Box() picking.Box {
	return picking.Box{Min: c.Min, Max: c.Max}
}

// Home returns the cell's box in the solved cube.
func (c *UnitCell) Home() picking.Box {
	return c.home
}

// Transform returns the model matrix that takes the solved geometry to
// where the cell is drawn this frame.
func (c *UnitCell) Transform() math.Mat4 {
	return c.RotationTransform.Mul(c.Orientation)
}

// Rotate adds an incremental rotation around a coordinate axis to the
// in-progress turn. The lattice box is not touched.
func (c *UnitCell) Rotate(axis math.Axis, angle float32) {
	c.RotationTransform = math.RotateAxis(axis.Unit(), angle).Mul(c.RotationTransform)
}

// bake commits turns quarter turns around axis to the lattice box and the
// orientation, and clears the in-progress turn.
func (c *UnitCell) bake(axis math.Axis, turns int) {
	q := math.QuarterTurn(axis, turns)
	a := q.TransformVec3(c.Min)
	b := q.TransformVec3(c.Max)
	c.Min = a.Min(b)
	c.Max = a.Max(b)
	c.Orientation = q.Mul(c.Orientation)
	c.RotationTransform = math.Identity()
}

// reset puts the cell back in its solved position.
func (c *UnitCell) reset() {
	c.Min = c.home.Min
	c.Max = c.home.Max
	c.Orientation = math.Identity()
	c.RotationTransform = math.Identity()
	c.Selected = false
}

// cellColors assigns sticker colors from the cell's grid position. Only
// outward faces of the solved cube get a sticker.
func cellColors(layer, row, col int) [NumFaces]Color {
	var colors [NumFaces]Color
	for i := range colors {
		colors[i] = ColorInner
	}
	if layer == 0 {
		colors[FaceFront] = ColorWhite
	}
	if layer == 2 {
		colors[FaceBack] = ColorYellow
	}
	if col == 0 {
		colors[FaceLeft] = ColorRed
	}
	if col == 2 {
		colors[FaceRight] = ColorOrange
	}
	if row == 0 {
		colors[FaceTop] = ColorGreen
	}
	if row == 2 {
		colors[FaceBottom] = ColorBlue
	}
	return colors
}

// cellGrid returns the grid position of cell i. Cells are numbered front
// to back, then top to bottom, then left to right.
func cellGrid(i int) (layer, row, col int) {
	return i / 9, (i % 9) / 3, i % 3
}

// buildCells lays out the 27 cells of a solved cube with cells of side
// length length separated by gap.
func buildCells(length, gap float32) [NumCells]UnitCell {
	half := halfExtent(length, gap)
	step := length + gap

	var cells [NumCells]UnitCell
	for i := range cells {
		layer, row, col := cellGrid(i)
		lo := math.Vec3{
			X: -half + float32(col)*step,
			Y: half - float32(row+1)*length - float32(row)*gap,
			Z: -half + float32(layer)*step,
		}
		hi := lo.Add(math.Vec3{X: length, Y: length, Z: length})
		cells[i] = newUnitCell(lo, hi, cellColors(layer, row, col))
	}
	return cells
}

// halfExtent returns half the side length of the whole cube.
func halfExtent(length, gap float32) float32 {
	return 1.5*length + gap
}
