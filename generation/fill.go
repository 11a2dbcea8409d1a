package generation

import (
	"hash/fnv"
	"math/rand"
	"sort"

	"github.com/aquilax/go-perlin"
)

// Perlin parameters, matching the terrain generators this mode was tuned against
const (
	noiseAlpha   = 2
	noiseBeta    = 2
	noiseOctaves = 3
)

// HashSeed turns a seed string into the int64 the random stream is seeded with
func HashSeed(seed string) int64 {
	h := fnv.New64a()
	h.Write([]byte(seed))
	return int64(h.Sum64())
}

// isBorder reports whether (x, y) is on the outer ring of a width x height grid
func isBorder(x, y, width, height int) bool {
	return x == 0 || x == width-1 || y == 0 || y == height-1
}

// randomFill seeds the grid from rng. Cells are visited x outer, y inner and
// only interior cells draw from the stream.
func randomFill(grid *Grid, rng *rand.Rand, fillPercent int) {
	for x := 0; x < grid.Width; x++ {
		for y := 0; y < grid.Height; y++ {
			if isBorder(x, y, grid.Width, grid.Height) {
				grid.Tiles[y][x] = TileWall
				continue
			}

			if rng.Intn(100) < fillPercent {
				grid.Tiles[y][x] = TileWall
			} else {
				grid.Tiles[y][x] = TileFloor
			}
		}
	}
}

// noiseFill thresholds a Perlin field so that fillPercent of the interior
// cells start as walls.
func noiseFill(grid *Grid, seed int64, fillPercent int, scale float64) {
	if scale == 0 {
		scale = DefaultNoiseScale
	}
	p := perlin.NewPerlin(noiseAlpha, noiseBeta, noiseOctaves, seed)

	field := make([][]float64, grid.Height)
	samples := make([]float64, 0, grid.Width*grid.Height)
	for y := 0; y < grid.Height; y++ {
		field[y] = make([]float64, grid.Width)
		for x := 0; x < grid.Width; x++ {
			field[y][x] = p.Noise2D(float64(x)*scale, float64(y)*scale)
			if !isBorder(x, y, grid.Width, grid.Height) {
				samples = append(samples, field[y][x])
			}
		}
	}

	sort.Float64s(samples)
	wallCount := len(samples) * fillPercent / 100

	for x := 0; x < grid.Width; x++ {
		for y := 0; y < grid.Height; y++ {
			switch {
			case isBorder(x, y, grid.Width, grid.Height):
				grid.Tiles[y][x] = TileWall
			case wallCount > 0 && field[y][x] <= samples[wallCount-1]:
				grid.Tiles[y][x] = TileWall
			default:
				grid.Tiles[y][x] = TileFloor
			}
		}
	}
}
