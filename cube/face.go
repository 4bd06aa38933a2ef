package cube

import "github.com/go-gl/mathgl/mgl32"

// Direction identifies one side of a cube. The order is the face order of
// every vertex buffer produced by this package.
type Direction uint8

const (
	PosZ Direction = iota
	NegZ
	PosX
	NegX
	PosY
	NegY
)

var directionNames = [FaceCount]string{"+Z", "-Z", "+X", "-X", "+Y", "-Y"}

func (d Direction) String() string {
	if int(d) >= len(directionNames) {
		return "invalid"
	}
	return directionNames[d]
}

// Normal returns the outward unit vector of the side. It panics if d is not
// one of the six directions, like indexing the face array would.
func (d Direction) Normal() [3]int8 {
	return faceTemplates[d].Normal
}

// Directions lists every side in buffer order.
func Directions() [FaceCount]Direction {
	return [FaceCount]Direction{PosZ, NegZ, PosX, NegX, PosY, NegY}
}

// Face is one side of a cube: two triangles with matching atlas coordinates.
type Face struct {
	UV       [VerticesPerFace]mgl32.Vec2
	Normal   [3]int8
	Vertexes [VerticesPerFace]mgl32.Vec3

	// Obfuscated marks a face hidden by a neighbour. Nothing sets it yet;
	// it is kept for visibility culling.
	Obfuscated bool
}

// remap rotates a canonical +Z corner onto another side.
type remap func(v mgl32.Vec3) mgl32.Vec3

func remapQuad(fn remap) [VerticesPerFace]mgl32.Vec3 {
	var out [VerticesPerFace]mgl32.Vec3
	for i, v := range BasicVertexes {
		out[i] = fn(v)
	}
	return out
}

// quadUV expands the two corners of an atlas region into the six entries of
// a quad, in the same BL, TL, TR, TR, BR, BL order as BasicVertexes.
func quadUV(left, bottom, right, top float32) [VerticesPerFace]mgl32.Vec2 {
	return [VerticesPerFace]mgl32.Vec2{
		{left, bottom},
		{left, top},
		{right, top},
		{right, top},
		{right, bottom},
		{left, bottom},
	}
}

var faceTemplates = buildTemplates()

func buildTemplates() [FaceCount]Face {
	f := BasicFractions
	return [FaceCount]Face{
		PosZ: {
			UV:     quadUV(f[4], f[2], f[0], f[1]),
			Normal: [3]int8{0, 0, 1},
			Vertexes: remapQuad(func(v mgl32.Vec3) mgl32.Vec3 {
				return mgl32.Vec3{-v.X(), v.Y(), v.Z()}
			}),
		},
		NegZ: {
			UV:     quadUV(f[3], 1, f[0], f[2]),
			Normal: [3]int8{0, 0, -1},
			Vertexes: remapQuad(func(v mgl32.Vec3) mgl32.Vec3 {
				return mgl32.Vec3{v.X(), -v.Z(), -v.Y()}
			}),
		},
		PosX: {
			UV:     quadUV(f[0], f[2], f[4], f[1]),
			Normal: [3]int8{1, 0, 0},
			Vertexes: remapQuad(func(v mgl32.Vec3) mgl32.Vec3 {
				return mgl32.Vec3{v.Z(), v.Y(), v.X()}
			}),
		},
		NegX: {
			UV:     quadUV(0, f[2], f[3], f[1]),
			Normal: [3]int8{-1, 0, 0},
			Vertexes: remapQuad(func(v mgl32.Vec3) mgl32.Vec3 {
				return mgl32.Vec3{-v.Z(), v.Y(), -v.X()}
			}),
		},
		PosY: {
			UV:     quadUV(f[3], f[1], f[0], 0),
			Normal: [3]int8{0, 1, 0},
			Vertexes: remapQuad(func(v mgl32.Vec3) mgl32.Vec3 {
				return mgl32.Vec3{v.X(), v.Z(), v.Y()}
			}),
		},
		NegY: {
			UV:     quadUV(f[4], f[2], 1, f[1]),
			Normal: [3]int8{0, -1, 0},
			Vertexes: remapQuad(func(v mgl32.Vec3) mgl32.Vec3 {
				return mgl32.Vec3{v.X(), v.Y(), -v.Z()}
			}),
		},
	}
}

// Templates returns a copy of the six canonical faces in Direction order.
func Templates() [FaceCount]Face {
	return faceTemplates
}

// Template returns the canonical face for d. It panics if d is out of range.
func Template(d Direction) Face {
	return faceTemplates[d]
}
