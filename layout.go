package main

import (
	"voxelcube/cube"

	"github.com/go-gl/mathgl/mgl32"
)

// vertexAttribute describes one float attribute inside the cube buffer stride.
type vertexAttribute struct {
	location uint32
	size     int32
	offset   uintptr // bytes
}

// cubeAttributes mirrors the cube buffer: position then uv. The reserved
// floats have no attribute yet.
func cubeAttributes() []vertexAttribute {
	return []vertexAttribute{
		{location: 0, size: cube.PositionFloats, offset: cube.PositionOffset * 4},
		{location: 1, size: cube.UVFloats, offset: cube.UVOffset * 4},
	}
}

// modelMatrix places a cube at its grid coordinate. ToVertex never applies
// the coordinate, so this per-draw transform is where world placement happens.
func modelMatrix(coord cube.Coord) mgl32.Mat4 {
	return mgl32.Translate3D(float32(coord[0]), float32(coord[1]), float32(coord[2]))
}

// projectionMatrix is a fixed orthographic volume of half-size extent.
func projectionMatrix(extent float32) mgl32.Mat4 {
	return mgl32.Ortho(-extent, extent, -extent, extent, -extent, extent)
}
