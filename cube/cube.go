// Package cube builds the vertex data of a single grid-aligned voxel.
//
// A Cube owns six faces derived from a fixed template table and flattens
// them into an interleaved float32 buffer laid out as
//
//	[px, py, pz, u, v, r0, r1, r2] × 6 vertices × 6 faces
//
// where r0..r2 are reserved and always zero. The buffer does not depend on
// the cube's coordinate; callers place a cube in the world with a per-draw
// transform built from Coord.
//
// Everything in this package is pure and safe for concurrent use.
package cube

// Coord is a position in voxel-grid units. Any value is valid.
type Coord [3]int32

// Cube is a unit cube at a grid coordinate.
type Cube struct {
	coord Coord
	faces [FaceCount]Face
}

// New returns a cube at coord holding its own copy of every face template.
func New(coord Coord) Cube {
	return Cube{
		coord: coord,
		faces: faceTemplates,
	}
}

func (c Cube) Coord() Coord {
	return c.coord
}

// Faces returns a copy of the cube's faces in Direction order.
func (c Cube) Faces() [FaceCount]Face {
	return c.faces
}

// Face returns the side facing d. It panics if d is not one of the six
// directions.
func (c Cube) Face(d Direction) Face {
	return c.faces[d]
}

// ToVertex flattens the cube into a renderer-ready buffer, face-major then
// vertex-major. The reserved floats of every vertex are left at zero.
func (c Cube) ToVertex() [BufferLen]float32 {
	var result [BufferLen]float32

	for faceIndex, f := range c.faces {
		base := faceIndex * FloatsPerFace
		for i := 0; i < VerticesPerFace; i++ {
			pos, uv := f.Vertexes[i], f.UV[i]
			combined := [AttributeFloats]float32{pos[0], pos[1], pos[2], uv[0], uv[1]}

			slot := base + i*FloatsPerVertex
			copy(result[slot:slot+AttributeFloats], combined[:])
		}
	}

	return result
}
