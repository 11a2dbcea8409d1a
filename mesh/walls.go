package mesh

// WallMesh is the vertical skirt hung from the cave outlines. It doubles as
// the collision solid handed to physics collaborators.
type WallMesh struct {
	Vertices  []Vec3
	Triangles []int
}

// BuildWallMesh extrudes every outline segment down by wallHeight as a quad
func BuildWallMesh(vertices []Vec3, outlines [][]int, wallHeight float64) WallMesh {
	var walls WallMesh
	drop := up.Scale(wallHeight)

	for _, outline := range outlines {
		for i := 0; i < len(outline)-1; i++ {
			start := len(walls.Vertices)
			left := vertices[outline[i]]
			right := vertices[outline[i+1]]

			walls.Vertices = append(walls.Vertices,
				left,
				right,
				left.Sub(drop),
				right.Sub(drop),
			)
			walls.Triangles = append(walls.Triangles,
				start+0, start+2, start+3,
				start+3, start+1, start+0,
			)
		}
	}
	return walls
}
