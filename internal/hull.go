package internal

import "github.com/twpayne/go-geom/xy/orientation"

// Whether p is inside or on the boundary of the mesh's convex hull. This never
// looks at the triangles, so it is a useful independent check on Locate: the
// two must always agree on what is outside.
func IsInside(mesh *Mesh, p Point) bool {
	hull := mesh.Hull
	if len(hull) == 0 {
		return false
	}

	prev := mesh.Vertex(hull[len(hull)-1])
	for _, id := range hull {
		cur := mesh.Vertex(id)
		if Orient(prev, cur, p) == orientation.Clockwise {
			return false
		}
		prev = cur
	}
	return true
}
