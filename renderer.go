package main

import (
	"fmt"

	"voxelcube/config"
	"voxelcube/cube"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

// renderer draws a Memory with one vertex buffer and one draw call per cube.
type renderer struct {
	program uint32
	vao     uint32
	vbo     uint32

	coords []cube.Coord

	projection    mgl32.Mat4
	projectionLoc int32
	modelLoc      int32
}

func newRenderer(memory *cube.Memory) (*renderer, error) {
	prog, err := newProgram(config.VertexShaderPath, config.FragmentShaderPath)
	if err != nil {
		return nil, fmt.Errorf("cube program: %w", err)
	}

	r := &renderer{
		program:       prog,
		projection:    projectionMatrix(config.ViewExtent),
		projectionLoc: uniformLocation(prog, "projection"),
		modelLoc:      uniformLocation(prog, "model"),
	}

	for _, c := range memory.Cubes() {
		r.coords = append(r.coords, c.Coord())
	}
	r.vao, r.vbo = createCubeVAO(memory.Vertices())

	logger().Info("world uploaded", "cubes", len(r.coords), "vertices", len(r.coords)*cube.VertexCount)
	return r, nil
}

func createCubeVAO(verts []float32) (uint32, uint32) {
	var vao uint32
	gl.GenVertexArrays(1, &vao)
	gl.BindVertexArray(vao)

	var vbo uint32
	gl.GenBuffers(1, &vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, vbo)
	if len(verts) > 0 {
		gl.BufferData(gl.ARRAY_BUFFER, 4*len(verts), gl.Ptr(verts), gl.STATIC_DRAW)
	}

	for _, attr := range cubeAttributes() {
		gl.EnableVertexAttribArray(attr.location)
		gl.VertexAttribPointerWithOffset(attr.location, attr.size, gl.FLOAT, false, cube.StrideBytes, attr.offset)
	}

	gl.BindVertexArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	return vao, vbo
}

func (r *renderer) draw() {
	gl.Enable(gl.DEPTH_TEST)
	// Remapped faces are not wound consistently, so every side is drawn.
	gl.Disable(gl.CULL_FACE)

	gl.UseProgram(r.program)
	gl.UniformMatrix4fv(r.projectionLoc, 1, false, &r.projection[0])

	gl.BindVertexArray(r.vao)
	for i, coord := range r.coords {
		model := modelMatrix(coord)
		gl.UniformMatrix4fv(r.modelLoc, 1, false, &model[0])
		gl.DrawArrays(gl.TRIANGLES, int32(i*cube.VertexCount), cube.VertexCount)
	}
	gl.BindVertexArray(0)
}

func (r *renderer) vertexCount() int {
	return len(r.coords) * cube.VertexCount
}

func (r *renderer) delete() {
	gl.DeleteVertexArrays(1, &r.vao)
	gl.DeleteBuffers(1, &r.vbo)
	gl.DeleteProgram(r.program)
}
