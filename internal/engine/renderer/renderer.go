// Package renderer provides OpenGL rendering functionality.
package renderer

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/rubikcube/internal/engine/debug"
	"github.com/Faultbox/rubikcube/internal/engine/lighting"
	"github.com/Faultbox/rubikcube/internal/engine/picking"
	"github.com/Faultbox/rubikcube/internal/engine/shader"
	"github.com/Faultbox/rubikcube/internal/logger"
	"github.com/Faultbox/rubikcube/internal/rubik"
	"github.com/Faultbox/rubikcube/pkg/math"
)

// Floats per cell vertex: position, normal, color.
const cellVertexStride = 9

// Vertices per cell: six faces of two triangles.
const cellVertexCount = rubik.NumFaces * 6

// selectionHighlight is how far selected cells are blended towards white.
const selectionHighlight = 0.18

// Config holds renderer configuration.
type Config struct {
	Width  int
	Height int

	// ShowSelection outlines the cells of the layer being turned.
	ShowSelection bool
}

// Renderer draws the cube.
type Renderer struct {
	config Config

	cellProgram *shader.Program
	lineProgram *shader.Program

	cellVAOs [rubik.NumCells]uint32
	cellVBOs [rubik.NumCells]uint32

	lightDir math.Vec3

	lineVAO uint32
	lineVBO uint32

	// scratch slices reused every frame
	boxes      []picking.Box
	transforms []math.Mat4
}

// New creates a new renderer.
// IMPORTANT: Must be called AFTER OpenGL context is created!
func New(cfg Config) (*Renderer, error) {
	r := &Renderer{
		config:   cfg,
		lightDir: lighting.DefaultDirection(),
	}

	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	version := gl.GoStr(gl.GetString(gl.VERSION))
	rendererName := gl.GoStr(gl.GetString(gl.RENDERER))
	logger.Info("OpenGL initialized",
		zap.String("version", version),
		zap.String("renderer", rendererName),
	)

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
	gl.Enable(gl.MULTISAMPLE)
	// The view-projection mirrors X, which flips winding.
	gl.Disable(gl.CULL_FACE)
	gl.ClearColor(0.1, 0.1, 0.15, 1.0)
	gl.Viewport(0, 0, int32(cfg.Width), int32(cfg.Height))

	var err error
	r.cellProgram, err = shader.NewProgram(cellVertexShader, cellFragmentShader)
	if err != nil {
		return nil, fmt.Errorf("cell shader: %w", err)
	}
	r.lineProgram, err = shader.NewProgram(lineVertexShader, lineFragmentShader)
	if err != nil {
		r.cellProgram.Delete()
		return nil, fmt.Errorf("line shader: %w", err)
	}

	r.createLineBuffer()

	return r, nil
}

// LoadCells uploads the solved geometry and sticker colors of every cell.
// Cells are drawn later with their current transforms, so this is needed
// only once per cube.
func (r *Renderer) LoadCells(cells *[rubik.NumCells]rubik.UnitCell) {
	r.deleteCells()

	gl.GenVertexArrays(rubik.NumCells, &r.cellVAOs[0])
	gl.GenBuffers(rubik.NumCells, &r.cellVBOs[0])

	for i := range cells {
		verts := CellVertices(&cells[i])

		gl.BindVertexArray(r.cellVAOs[i])
		gl.BindBuffer(gl.ARRAY_BUFFER, r.cellVBOs[i])
		gl.BufferData(gl.ARRAY_BUFFER, len(verts)*4, gl.Ptr(verts), gl.STATIC_DRAW)

		stride := int32(cellVertexStride * 4)
		gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, stride, 0)
		gl.EnableVertexAttribArray(0)
		gl.VertexAttribPointerWithOffset(1, 3, gl.FLOAT, false, stride, 3*4)
		gl.EnableVertexAttribArray(1)
		gl.VertexAttribPointerWithOffset(2, 3, gl.FLOAT, false, stride, 6*4)
		gl.EnableVertexAttribArray(2)
	}
	gl.BindVertexArray(0)

	logger.Debug("cell meshes uploaded", zap.Int("cells", rubik.NumCells))
}

// Close cleans up renderer resources.
func (r *Renderer) Close() {
	logger.Info("closing renderer")
	r.deleteCells()
	if r.lineVAO != 0 {
		gl.DeleteVertexArrays(1, &r.lineVAO)
	}
	if r.lineVBO != 0 {
		gl.DeleteBuffers(1, &r.lineVBO)
	}
	if r.cellProgram != nil {
		r.cellProgram.Delete()
	}
	if r.lineProgram != nil {
		r.lineProgram.Delete()
	}
}

// Resize handles window resize. Sizes are in drawable pixels.
func (r *Renderer) Resize(width, height int) {
	r.config.Width = width
	r.config.Height = height
	gl.Viewport(0, 0, int32(width), int32(height))
	logger.Debug("renderer resized",
		zap.Int("width", width),
		zap.Int("height", height),
	)
}

// SetShowSelection toggles the selected layer outline.
func (r *Renderer) SetShowSelection(show bool) {
	r.config.ShowSelection = show
}

// Begin starts a new frame.
func (r *Renderer) Begin() {
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

// DrawCube draws every cell with its current transform.
func (r *Renderer) DrawCube(viewProj math.Mat4, cells *[rubik.NumCells]rubik.UnitCell) {
	r.cellProgram.Use()
	r.cellProgram.SetMat4("uViewProj", viewProj)
	r.cellProgram.SetVec3("uLightDir", r.lightDir)

	r.boxes = r.boxes[:0]
	r.transforms = r.transforms[:0]

	for i := range cells {
		c := &cells[i]
		highlight := float32(0)
		if c.Selected && r.config.ShowSelection {
			highlight = selectionHighlight
			r.boxes = append(r.boxes, c.Home())
			r.transforms = append(r.transforms, c.Transform())
		}
		r.cellProgram.SetMat4("uModel", c.Transform())
		r.cellProgram.SetFloat("uHighlight", highlight)

		gl.BindVertexArray(r.cellVAOs[i])
		gl.DrawArrays(gl.TRIANGLES, 0, cellVertexCount)
	}
	gl.BindVertexArray(0)

	if len(r.boxes) > 0 {
		r.drawSelection(viewProj)
	}
}

// drawSelection outlines the selected cells.
func (r *Renderer) drawSelection(viewProj math.Mat4) {
	verts := debug.LayerWireframeVertices(r.boxes, r.transforms, debug.DefaultBBoxPadding)

	r.lineProgram.Use()
	r.lineProgram.SetMat4("uViewProj", viewProj)
	r.lineProgram.SetVec3("uColor", math.Vec3{X: 1, Y: 1, Z: 0.3})

	gl.BindVertexArray(r.lineVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.lineVBO)
	gl.BufferData(gl.ARRAY_BUFFER, len(verts)*4, gl.Ptr(verts), gl.DYNAMIC_DRAW)
	gl.DrawArrays(gl.LINES, 0, int32(len(verts)/3))
	gl.BindVertexArray(0)
}

// ReadPixels reads back the current framebuffer as RGBA rows, bottom row
// first.
func (r *Renderer) ReadPixels() ([]byte, int, int) {
	w, h := r.config.Width, r.config.Height
	pixels := make([]byte, w*h*4)
	if len(pixels) == 0 {
		return pixels, w, h
	}
	gl.PixelStorei(gl.PACK_ALIGNMENT, 1)
	gl.ReadPixels(0, 0, int32(w), int32(h), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pixels))
	return pixels, w, h
}

func (r *Renderer) createLineBuffer() {
	gl.GenVertexArrays(1, &r.lineVAO)
	gl.GenBuffers(1, &r.lineVBO)

	gl.BindVertexArray(r.lineVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.lineVBO)
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, 3*4, 0)
	gl.EnableVertexAttribArray(0)
	gl.BindVertexArray(0)
}

func (r *Renderer) deleteCells() {
	if r.cellVAOs[0] != 0 {
		gl.DeleteVertexArrays(rubik.NumCells, &r.cellVAOs[0])
		gl.DeleteBuffers(rubik.NumCells, &r.cellVBOs[0])
		r.cellVAOs = [rubik.NumCells]uint32{}
		r.cellVBOs = [rubik.NumCells]uint32{}
	}
}
