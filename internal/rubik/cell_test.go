package rubik

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faultbox/rubikcube/pkg/math"
)

func TestBuildCellsLayout(t *testing.T) {
	cells := buildCells(10, 0.15)
	half := halfExtent(10, 0.15)

	// Cell 0 is front, top, left.
	assert.InDelta(t, -half, cells[0].Min.X, 1e-5)
	assert.InDelta(t, half, cells[0].Max.Y, 1e-5)
	assert.InDelta(t, -half, cells[0].Min.Z, 1e-5)

	// Cell 26 is back, bottom, right.
	assert.InDelta(t, half, cells[26].Max.X, 1e-5)
	assert.InDelta(t, -half, cells[26].Min.Y, 1e-5)
	assert.InDelta(t, half, cells[26].Max.Z, 1e-5)

	// Cell 13 sits on the origin.
	c := cells[13].Box().Center()
	assert.True(t, c.ApproxEqual(math.Vec3{}, 1e-5), "centre cell at %v", c)

	for i := range cells {
		size := cells[i].Max.Sub(cells[i].Min)
		assert.True(t, size.ApproxEqual(math.Vec3{X: 10, Y: 10, Z: 10}, 1e-4), "cell %d size %v", i, size)
		assert.Equal(t, cells[i].Box(), cells[i].Home())
	}
}

func TestCellColors(t *testing.T) {
	cells := buildCells(10, 0.15)

	c0 := cells[0].FaceColors
	assert.Equal(t, ColorWhite, c0[FaceFront])
	assert.Equal(t, ColorRed, c0[FaceLeft])
	assert.Equal(t, ColorGreen, c0[FaceTop])
	assert.Equal(t, ColorInner, c0[FaceBack])
	assert.Equal(t, ColorInner, c0[FaceRight])
	assert.Equal(t, ColorInner, c0[FaceBottom])

	for f := FaceFront; f < FaceUnknown; f++ {
		assert.Equal(t, ColorInner, cells[13].FaceColors[f], "centre cell %v", f)
	}

	c26 := cells[26].FaceColors
	assert.Equal(t, ColorYellow, c26[FaceBack])
	assert.Equal(t, ColorOrange, c26[FaceRight])
	assert.Equal(t, ColorBlue, c26[FaceBottom])

	// Every face of the solved cube shows nine stickers of its color.
	counts := map[Color]int{}
	for i := range cells {
		for _, col := range cells[i].FaceColors {
			counts[col]++
		}
	}
	for _, col := range []Color{ColorWhite, ColorYellow, ColorRed, ColorOrange, ColorGreen, ColorBlue} {
		assert.Equal(t, 9, counts[col], "color %v", col)
	}
}

func TestCellBakeQuarterTurn(t *testing.T) {
	cells := buildCells(10, 0.15)
	cell := cells[3] // front layer, middle row, left column

	cell.Rotate(math.AxisY, -0.7)
	require.NotEqual(t, math.Identity(), cell.RotationTransform)

	cell.bake(math.AxisY, 3)

	// Three quarter turns around +Y carry the front-left cell to front-right.
	assert.True(t, cell.Min.ApproxEqual(cells[5].Min, 1e-4), "min %v want %v", cell.Min, cells[5].Min)
	assert.True(t, cell.Max.ApproxEqual(cells[5].Max, 1e-4), "max %v want %v", cell.Max, cells[5].Max)
	assert.Equal(t, math.Identity(), cell.RotationTransform)
	assert.Equal(t, math.QuarterTurn(math.AxisY, 3), cell.Orientation)

	// The drawn geometry matches the lattice box.
	a := cell.Transform().TransformVec3(cell.Home().Min)
	b := cell.Transform().TransformVec3(cell.Home().Max)
	assert.True(t, a.Min(b).ApproxEqual(cell.Min, 1e-4))
	assert.True(t, a.Max(b).ApproxEqual(cell.Max, 1e-4))
}

func TestCellReset(t *testing.T) {
	cells := buildCells(10, 0.15)
	cell := cells[0]
	cell.Selected = true
	cell.Rotate(math.AxisX, 0.3)
	cell.bake(math.AxisX, 1)

	cell.reset()
	assert.Equal(t, cells[0].Box(), cell.Box())
	assert.Equal(t, math.Identity(), cell.Orientation)
	assert.Equal(t, math.Identity(), cell.RotationTransform)
	assert.False(t, cell.Selected)
}

func TestCellGrid(t *testing.T) {
	layer, row, col := cellGrid(14)
	assert.Equal(t, []int{1, 1, 2}, []int{layer, row, col})
	layer, row, col = cellGrid(18)
	assert.Equal(t, []int{2, 0, 0}, []int{layer, row, col})
}
