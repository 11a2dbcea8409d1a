package mesh

import (
	"fmt"

	"github.com/zyedidia/generic/mapset"
)

// Triangle holds three vertex indices
type Triangle struct {
	A, B, C int
}

// At returns the vertex in slot i (0, 1 or 2)
func (t Triangle) At(i int) int {
	switch i {
	case 0:
		return t.A
	case 1:
		return t.B
	default:
		return t.C
	}
}

// Contains reports whether the triangle uses the vertex
func (t Triangle) Contains(vertex int) bool {
	return t.A == vertex || t.B == vertex || t.C == vertex
}

// Square node slots used by the configuration table
const (
	slotTopLeft = iota
	slotTopRight
	slotBottomRight
	slotBottomLeft
	slotCentreTop
	slotCentreRight
	slotCentreBottom
	slotCentreLeft
)

// configurationNodes maps a square configuration to the polygon emitted for
// it, in winding order
var configurationNodes = [16][]int{
	0: nil,

	// 1 active corner
	1: {slotCentreLeft, slotCentreBottom, slotBottomLeft},
	2: {slotBottomRight, slotCentreBottom, slotCentreRight},
	4: {slotTopRight, slotCentreRight, slotCentreTop},
	8: {slotTopLeft, slotCentreTop, slotCentreLeft},

	// 2 active corners
	3:  {slotCentreRight, slotBottomRight, slotBottomLeft, slotCentreLeft},
	6:  {slotCentreTop, slotTopRight, slotBottomRight, slotCentreBottom},
	9:  {slotTopLeft, slotCentreTop, slotCentreBottom, slotBottomLeft},
	12: {slotTopLeft, slotTopRight, slotCentreRight, slotCentreLeft},
	5:  {slotCentreTop, slotTopRight, slotCentreRight, slotCentreBottom, slotBottomLeft, slotCentreLeft},
	10: {slotTopLeft, slotCentreTop, slotCentreRight, slotBottomRight, slotCentreBottom, slotCentreLeft},

	// 3 active corners
	7:  {slotCentreTop, slotTopRight, slotBottomRight, slotBottomLeft, slotCentreLeft},
	11: {slotTopLeft, slotCentreTop, slotCentreRight, slotBottomRight, slotBottomLeft},
	13: {slotTopLeft, slotTopRight, slotCentreRight, slotCentreBottom, slotBottomLeft},
	14: {slotTopLeft, slotTopRight, slotBottomRight, slotCentreBottom, slotCentreLeft},

	// 4 active corners
	15: {slotTopLeft, slotTopRight, slotBottomRight, slotBottomLeft},
}

// node returns the square's node in the given slot
func (s *Square) node(slot int) *Node {
	switch slot {
	case slotTopLeft:
		return &s.TopLeft.Node
	case slotTopRight:
		return &s.TopRight.Node
	case slotBottomRight:
		return &s.BottomRight.Node
	case slotBottomLeft:
		return &s.BottomLeft.Node
	case slotCentreTop:
		return s.CentreTop
	case slotCentreRight:
		return s.CentreRight
	case slotCentreBottom:
		return s.CentreBottom
	default:
		return s.CentreLeft
	}
}

// Triangulator accumulates the cave surface square by square
type Triangulator struct {
	vertices  []Vec3
	triangles []int
	// triangles touching each vertex, indexed by vertex
	adjacency [][]Triangle
	// vertices that can never lie on an outline, or already do
	checked mapset.Set[int]
}

// NewTriangulator creates an empty triangulator
func NewTriangulator() *Triangulator {
	return &Triangulator{
		checked: mapset.New[int](),
	}
}

// Vertices returns the vertex positions
func (t *Triangulator) Vertices() []Vec3 {
	return t.vertices
}

// Triangles returns the flat triangle index list
func (t *Triangulator) Triangles() []int {
	return t.triangles
}

// TrianglesContaining returns the triangles that use the vertex. Every vertex
// is created by a triangle, so a vertex without any means the mesh is broken.
func (t *Triangulator) TrianglesContaining(vertex int) []Triangle {
	if vertex < 0 || vertex >= len(t.adjacency) || len(t.adjacency[vertex]) == 0 {
		panic(fmt.Sprintf("mesh: vertex %d is not referenced by any triangle", vertex))
	}
	return t.adjacency[vertex]
}

// TriangulateGrid triangulates every square, x outer, y inner
func (t *Triangulator) TriangulateGrid(grid *SquareGrid) {
	for x := range grid.Squares {
		for y := range grid.Squares[x] {
			t.TriangulateSquare(grid.Squares[x][y])
		}
	}
}

// TriangulateSquare emits the triangle fan for one square
func (t *Triangulator) TriangulateSquare(square *Square) {
	slots := configurationNodes[square.Configuration]
	if len(slots) == 0 {
		return
	}

	points := make([]*Node, len(slots))
	for i, slot := range slots {
		points[i] = square.node(slot)
	}
	t.meshFromPoints(points)

	// A solid square is interior; none of its corners can be on an outline
	if square.Configuration == 15 {
		t.checked.Put(square.TopLeft.vertexIndex)
		t.checked.Put(square.TopRight.vertexIndex)
		t.checked.Put(square.BottomRight.vertexIndex)
		t.checked.Put(square.BottomLeft.vertexIndex)
	}
}

// meshFromPoints fans triangles out from the first point
func (t *Triangulator) meshFromPoints(points []*Node) {
	t.assignVertices(points)

	for i := 2; i < len(points); i++ {
		t.createTriangle(points[0], points[i-1], points[i])
	}
}

// assignVertices gives each node a vertex index the first time it is used
func (t *Triangulator) assignVertices(points []*Node) {
	for _, p := range points {
		if p.vertexIndex == -1 {
			p.vertexIndex = len(t.vertices)
			t.vertices = append(t.vertices, p.Position)
			t.adjacency = append(t.adjacency, nil)
		}
	}
}

func (t *Triangulator) createTriangle(a, b, c *Node) {
	t.triangles = append(t.triangles, a.vertexIndex, b.vertexIndex, c.vertexIndex)

	triangle := Triangle{A: a.vertexIndex, B: b.vertexIndex, C: c.vertexIndex}
	t.adjacency[triangle.A] = append(t.adjacency[triangle.A], triangle)
	t.adjacency[triangle.B] = append(t.adjacency[triangle.B], triangle)
	t.adjacency[triangle.C] = append(t.adjacency[triangle.C], triangle)
}
