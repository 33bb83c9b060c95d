package internal

// Slow reference answers, for checking the walk.

// Whether p is inside or on the boundary of triangle t.
func TriangleContains(mesh *Mesh, t int, p Point) bool {
	for _, e := range EdgesOfTriangle(t) {
		if !mesh.IsLeftOfEdge(e, p) {
			return false
		}
	}
	return true
}

// The lowest numbered triangle containing p, or Outside. O(triangles).
func BruteForceLocate(mesh *Mesh, p Point) int {
	for t := 0; t < mesh.NumTriangles(); t++ {
		if TriangleContains(mesh, t, p) {
			return t
		}
	}
	return Outside
}
