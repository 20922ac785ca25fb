// Package debug provides debug visualization utilities.
package debug

import (
	"github.com/Faultbox/rubikcube/internal/engine/picking"
	"github.com/Faultbox/rubikcube/pkg/math"
)

// BBoxWireframeVertexCount is the number of vertices for a bbox wireframe (12 edges × 2).
const BBoxWireframeVertexCount = 24

// DefaultBBoxPadding is the padding around outlined cells, in cube units.
const DefaultBBoxPadding = 0.2

// boxEdges lists the 12 edges of a box as pairs of Box.Corners indices.
var boxEdges = [12][2]int{
	{0, 1}, {1, 2}, {2, 3}, {3, 0}, // min Z face
	{4, 5}, {5, 6}, {6, 7}, {7, 4}, // max Z face
	{0, 7}, {1, 6}, {2, 5}, {3, 4},
}

// BoxWireframeVertices returns line vertices, [x, y, z] per vertex, for the
// edges of a box grown by padding on every side.
func BoxWireframeVertices(box picking.Box, padding float32) []float32 {
	pad := math.Vec3{X: padding, Y: padding, Z: padding}
	grown := picking.Box{Min: box.Min.Sub(pad), Max: box.Max.Add(pad)}
	corners := grown.Corners()

	verts := make([]float32, 0, BBoxWireframeVertexCount*3)
	for _, e := range boxEdges {
		a, b := corners[e[0]], corners[e[1]]
		verts = append(verts, a.X, a.Y, a.Z, b.X, b.Y, b.Z)
	}
	return verts
}

// LayerWireframeVertices outlines every box in boxes, transformed by
// transforms[i] when transforms is non-nil.
func LayerWireframeVertices(boxes []picking.Box, transforms []math.Mat4, padding float32) []float32 {
	verts := make([]float32, 0, len(boxes)*BBoxWireframeVertexCount*3)
	for i, b := range boxes {
		v := BoxWireframeVertices(b, padding)
		if transforms != nil {
			m := transforms[i]
			for j := 0; j < len(v); j += 3 {
				p := m.TransformVec3(math.Vec3{X: v[j], Y: v[j+1], Z: v[j+2]})
				v[j], v[j+1], v[j+2] = p.X, p.Y, p.Z
			}
		}
		verts = append(verts, v...)
	}
	return verts
}
