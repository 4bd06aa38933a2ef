package cube

import (
	"sync"

	"github.com/ojrac/opensimplex-go"
)

// TerrainOptions controls GenerateTerrain.
type TerrainOptions struct {
	Seed int64
	// Radius is the half-width of the square of columns around the origin.
	// Zero generates the single origin column.
	Radius int32
	// Floor is the lowest layer filled in every column.
	Floor int32

	Amplitude   float32
	Scale       float32
	Octaves     int
	Lacunarity  float32
	Persistence float32
}

// DefaultTerrainOptions mirrors the heightmap settings the world has always used.
func DefaultTerrainOptions() TerrainOptions {
	return TerrainOptions{
		Seed:        12,
		Radius:      0,
		Floor:       0,
		Amplitude:   30,
		Scale:       100,
		Octaves:     4,
		Lacunarity:  1.5,
		Persistence: 0.5,
	}
}

const (
	minHeight = -128
	maxHeight = 128
)

// fractalNoise sums octaves of 2D simplex noise and clamps the result to
// [minHeight, maxHeight]. The sum stays in float32 until after the clamp so
// large amplitudes cannot wrap.
func fractalNoise(noise opensimplex.Noise32, x, z int32, opts TerrainOptions) int32 {
	val := float32(0)
	x1 := float32(x)
	z1 := float32(z)
	amplitude := opts.Amplitude

	for i := 0; i < opts.Octaves; i++ {
		val += noise.Eval2(x1/opts.Scale, z1/opts.Scale) * amplitude
		z1 *= opts.Lacunarity
		x1 *= opts.Lacunarity
		amplitude *= opts.Persistence
	}
	// NaN from an infinite amplitude fails both comparisons; treat it as flat.
	if val != val {
		return 0
	}
	if val < minHeight {
		return minHeight
	}
	if val > maxHeight {
		return maxHeight
	}
	return int32(val)
}

// GenerateTerrain fills a square of columns whose heights follow a noise
// heightmap. Rows are computed concurrently; the resulting order is x-major,
// then z, then y ascending, and is identical for identical options.
// A negative Radius is treated as zero.
func GenerateTerrain(opts TerrainOptions) *Memory {
	if opts.Radius < 0 {
		opts.Radius = 0
	}
	if opts.Scale == 0 {
		opts.Scale = 1
	}
	noise := opensimplex.New32(opts.Seed)

	side := int(opts.Radius)*2 + 1
	rows := make([][]Cube, side)

	var wg sync.WaitGroup
	for row := 0; row < side; row++ {
		wg.Add(1)
		go func(row int) {
			defer wg.Done()
			x := int32(row) - opts.Radius
			var cubes []Cube
			for z := -opts.Radius; z <= opts.Radius; z++ {
				height := fractalNoise(noise, x, z, opts)
				for y := opts.Floor; y <= height; y++ {
					cubes = append(cubes, New(Coord{x, y, z}))
				}
			}
			rows[row] = cubes
		}(row)
	}
	wg.Wait()

	m := NewEmptyMemory()
	for _, cubes := range rows {
		m.cubes = append(m.cubes, cubes...)
	}
	return m
}
