package renderer

import (
	"github.com/Faultbox/rubikcube/internal/engine/picking"
	"github.com/Faultbox/rubikcube/internal/rubik"
	"github.com/Faultbox/rubikcube/pkg/math"
)

// CellVertices builds the triangle list for a cell in its solved position.
// Each vertex is position, normal and color; every face takes its color
// from the cell's FaceColors.
func CellVertices(c *rubik.UnitCell) []float32 {
	box := c.Home()
	verts := make([]float32, 0, cellVertexCount*cellVertexStride)

	for f := rubik.FaceFront; f < rubik.FaceUnknown; f++ {
		q := faceQuad(box, f)
		n := f.Normal()
		col := c.FaceColors[f]
		for _, k := range [6]int{0, 1, 2, 0, 2, 3} {
			p := q[k]
			verts = append(verts,
				p.X, p.Y, p.Z,
				n.X, n.Y, n.Z,
				col[0], col[1], col[2],
			)
		}
	}
	return verts
}

// faceQuad returns the four corners of one side of box, in order around
// the side.
func faceQuad(box picking.Box, f rubik.Face) [4]math.Vec3 {
	axis := f.NormalAxis()
	fixed := box.Min.Component(axis)
	if f.Normal().Component(axis) > 0 {
		fixed = box.Max.Component(axis)
	}
	u := (axis + 1) % 3
	v := (axis + 2) % 3

	at := func(uu, vv float32) math.Vec3 {
		var p math.Vec3
		set(&p, axis, fixed)
		set(&p, u, uu)
		set(&p, v, vv)
		return p
	}

	u0, u1 := box.Min.Component(u), box.Max.Component(u)
	v0, v1 := box.Min.Component(v), box.Max.Component(v)
	return [4]math.Vec3{at(u0, v0), at(u1, v0), at(u1, v1), at(u0, v1)}
}

func set(p *math.Vec3, a math.Axis, f float32) {
	switch a {
	case math.AxisX:
		p.X = f
	case math.AxisY:
		p.Y = f
	case math.AxisZ:
		p.Z = f
	}
}
