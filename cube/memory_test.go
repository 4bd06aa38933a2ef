package cube

import "testing"

func TestNewMemoryHoldsOriginCube(t *testing.T) {
	m := NewMemory()
	if m.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", m.Len())
	}
	if got := m.Cubes()[0].Coord(); got != (Coord{0, 0, 0}) {
		t.Errorf("first cube at %v, want origin", got)
	}
}

func TestMemoryAddKeepsOrder(t *testing.T) {
	m := NewEmptyMemory()
	coords := []Coord{{2, 0, 0}, {-1, 4, 2}, {0, 0, -9}}
	for _, c := range coords {
		m.Add(New(c))
	}

	cubes := m.Cubes()
	if len(cubes) != len(coords) {
		t.Fatalf("got %d cubes, want %d", len(cubes), len(coords))
	}
	for i, c := range cubes {
		if c.Coord() != coords[i] {
			t.Errorf("cube %d at %v, want %v", i, c.Coord(), coords[i])
		}
	}

	cubes[0] = New(Coord{100, 100, 100})
	if m.Cubes()[0].Coord() != coords[0] {
		t.Error("mutating Cubes() result changed the memory")
	}
}

func TestMemoryVertices(t *testing.T) {
	tests := []struct {
		name  string
		cubes int
	}{
		{"empty", 0},
		{"single", 1},
		{"several", 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewEmptyMemory()
			for i := 0; i < tt.cubes; i++ {
				m.Add(New(Coord{int32(i), 0, 0}))
			}

			verts := m.Vertices()
			if len(verts) != tt.cubes*BufferLen {
				t.Fatalf("len = %d, want %d", len(verts), tt.cubes*BufferLen)
			}

			want := New(Coord{}).ToVertex()
			for i := 0; i < tt.cubes; i++ {
				chunk := verts[i*BufferLen : (i+1)*BufferLen]
				for j := range chunk {
					if chunk[j] != want[j] {
						t.Fatalf("cube %d float %d = %f, want %f", i, j, chunk[j], want[j])
					}
				}
			}
		})
	}
}
