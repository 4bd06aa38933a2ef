package cube

// Memory is the ordered set of placed cubes.
type Memory struct {
	cubes []Cube
}

// NewMemory returns a world holding one cube at the origin.
func NewMemory() *Memory {
	return &Memory{cubes: []Cube{New(Coord{0, 0, 0})}}
}

// NewEmptyMemory returns a world with no cubes.
func NewEmptyMemory() *Memory {
	return &Memory{}
}

func (m *Memory) Add(c Cube) {
	m.cubes = append(m.cubes, c)
}

func (m *Memory) Len() int {
	return len(m.cubes)
}

// Cubes returns the cubes in insertion order. The slice is a copy.
func (m *Memory) Cubes() []Cube {
	out := make([]Cube, len(m.cubes))
	copy(out, m.cubes)
	return out
}

// Vertices concatenates the buffers of every cube in insertion order.
// Cube i occupies floats [i*BufferLen, (i+1)*BufferLen).
func (m *Memory) Vertices() []float32 {
	verts := make([]float32, 0, len(m.cubes)*BufferLen)
	for _, c := range m.cubes {
		buf := c.ToVertex()
		verts = append(verts, buf[:]...)
	}
	return verts
}
