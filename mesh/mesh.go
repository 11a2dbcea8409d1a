// Package mesh turns an occupancy grid into a marching-squares surface, its
// boundary outlines and an extruded wall skirt.
package mesh

// TextureTileAmount is how many times the cave texture repeats across the map
const TextureTileAmount = 10

// CaveMesh is everything a renderer needs to draw a generated cave
type CaveMesh struct {
	Vertices  []Vec3
	Triangles []int
	UVs       []Vec2
	Outlines  [][]int
	Walls     WallMesh
}

// Collider returns the solid collaborators should attach for wall collisions
func (m *CaveMesh) Collider() WallMesh {
	return m.Walls
}

// TriangleCount returns the number of surface triangles
func (m *CaveMesh) TriangleCount() int {
	return len(m.Triangles) / 3
}

// Generate triangulates the map, traces its outlines and builds the walls
func Generate(m OccupancyMap, squareSize, wallHeight float64) *CaveMesh {
	squareGrid := NewSquareGrid(m, squareSize)

	triangulator := NewTriangulator()
	triangulator.TriangulateGrid(squareGrid)

	vertices := triangulator.Vertices()
	outlines := triangulator.CalculateOutlines()

	width, height := m.Size()
	return &CaveMesh{
		Vertices:  vertices,
		Triangles: triangulator.Triangles(),
		UVs:       caveUVs(vertices, width, height, squareSize),
		Outlines:  outlines,
		Walls:     BuildWallMesh(vertices, outlines, wallHeight),
	}
}

// caveUVs maps vertex X and Z across the map extent into the texture repeat range
func caveUVs(vertices []Vec3, width, height int, squareSize float64) []Vec2 {
	halfWidth := float64(width) / 2 * squareSize
	halfHeight := float64(height) / 2 * squareSize

	uvs := make([]Vec2, len(vertices))
	for i, v := range vertices {
		uvs[i] = Vec2{
			U: inverseLerp(-halfWidth, halfWidth, v.X) * TextureTileAmount,
			V: inverseLerp(-halfHeight, halfHeight, v.Z) * TextureTileAmount,
		}
	}
	return uvs
}

// inverseLerp returns where v sits between a and b, clamped to [0, 1]
func inverseLerp(a, b, v float64) float64 {
	if a == b {
		return 0
	}
	t := (v - a) / (b - a)
	return max(0, min(1, t))
}
