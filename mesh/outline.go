package mesh

// CalculateOutlines walks the boundary edges of the surface into closed
// loops. Each loop repeats its first vertex at the end.
func (t *Triangulator) CalculateOutlines() [][]int {
	var outlines [][]int

	for vertex := range t.vertices {
		if t.checked.Has(vertex) {
			continue
		}

		next := t.connectedOutlineVertex(vertex)
		if next == -1 {
			continue
		}
		t.checked.Put(vertex)

		outline := []int{vertex}
		for next != -1 {
			outline = append(outline, next)
			t.checked.Put(next)
			next = t.connectedOutlineVertex(next)
		}
		outline = append(outline, vertex)
		outlines = append(outlines, outline)
	}
	return outlines
}

// connectedOutlineVertex returns an unchecked vertex sharing an outline edge
// with the given one, or -1
func (t *Triangulator) connectedOutlineVertex(vertex int) int {
	for _, triangle := range t.TrianglesContaining(vertex) {
		for j := 0; j < 3; j++ {
			vertexB := triangle.At(j)
			if vertexB == vertex || t.checked.Has(vertexB) {
				continue
			}
			if t.isOutlineEdge(vertex, vertexB) {
				return vertexB
			}
		}
	}
	return -1
}

// isOutlineEdge reports whether exactly one triangle uses the edge a-b
func (t *Triangulator) isOutlineEdge(vertexA, vertexB int) bool {
	shared := 0
	for _, triangle := range t.TrianglesContaining(vertexA) {
		if triangle.Contains(vertexB) {
			shared++
			if shared > 1 {
				break
			}
		}
	}
	return shared == 1
}
