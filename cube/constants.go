package cube

import "github.com/go-gl/mathgl/mgl32"

// BasicVertexes is the canonical +Z quad as a non-indexed triangle list.
// Entries 2 and 3 repeat the shared corner, 5 closes the second triangle on 0.
var BasicVertexes = [VerticesPerFace]mgl32.Vec3{
	{-0.5, -0.5, 0.5}, // Bottom-left
	{-0.5, 0.5, 0.5},  // Top-left
	{0.5, 0.5, 0.5},   // Top-right
	{0.5, 0.5, 0.5},   // Top-right
	{0.5, -0.5, 0.5},  // Bottom-right
	{-0.5, -0.5, 0.5}, // Bottom-left
}

// BasicFractions are the atlas boundaries every face UV is sliced from.
var BasicFractions = [5]float32{
	1.0 / 2.0,
	1.0 / 3.0,
	2.0 / 3.0,
	1.0 / 4.0,
	3.0 / 4.0,
}

// Vertex buffer layout shared with the renderer's attribute descriptors.
const (
	FaceCount       = 6
	VerticesPerFace = 6
	VertexCount     = FaceCount * VerticesPerFace

	PositionFloats  = 3
	UVFloats        = 2
	AttributeFloats = PositionFloats + UVFloats
	ReservedFloats  = 3
	FloatsPerVertex = AttributeFloats + ReservedFloats

	PositionOffset = 0
	UVOffset       = PositionOffset + PositionFloats
	ReservedOffset = UVOffset + UVFloats

	FloatsPerFace = VerticesPerFace * FloatsPerVertex
	BufferLen     = FaceCount * FloatsPerFace

	// StrideBytes is the byte distance between two vertices of a float32 buffer.
	StrideBytes = FloatsPerVertex * 4
)
