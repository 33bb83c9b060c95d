package internal

import (
	"github.com/pkg/errors"
	"github.com/twpayne/go-geom/xy/orientation"
)

// FromTriangles indexes an explicit list of triangles into a Mesh. It does not
// triangulate anything: the triangles must already tile a convex region, with
// neighbors sharing whole edges.
//
// Triangle k of the input becomes triangle k of the mesh, with its first vertex
// as the origin of half-edge 3k. Clockwise triangles have their last two
// vertices swapped so that they wind counterclockwise.
func FromTriangles(points []Point, triangles [][3]int) (*Mesh, error) {
	mesh := &Mesh{
		Coords:    make([]float64, 0, 2*len(points)),
		Triangles: make([]int, 0, 3*len(triangles)),
		Halfedges: make([]int, 3*len(triangles)),
	}
	for _, p := range points {
		mesh.Coords = append(mesh.Coords, p.X, p.Y)
	}

	for k, tri := range triangles {
		for _, v := range tri {
			if v < 0 || v >= len(points) {
				return nil, errors.Errorf("triangle %d refers to vertex %d, but there are %d points", k, v, len(points))
			}
		}
		switch Orient(points[tri[0]], points[tri[1]], points[tri[2]]) {
		case orientation.Collinear:
			return nil, errors.Errorf("triangle %d (%v) is degenerate", k, tri)
		case orientation.Clockwise:
			tri[1], tri[2] = tri[2], tri[1]
		}
		mesh.Triangles = append(mesh.Triangles, tri[0], tri[1], tri[2])
	}

	// Pair up twins by their endpoints
	edges := make(map[[2]int]int, len(mesh.Triangles))
	for e, origin := range mesh.Triangles {
		key := [2]int{origin, mesh.Triangles[NextEdge(e)]}
		if other, ok := edges[key]; ok {
			return nil, errors.Errorf("half-edges %d and %d both run %d->%d", other, e, key[0], key[1])
		}
		edges[key] = e
	}
	for e, origin := range mesh.Triangles {
		twin, ok := edges[[2]int{mesh.Triangles[NextEdge(e)], origin}]
		if !ok {
			twin = NoNeighbor
		}
		mesh.Halfedges[e] = twin
	}

	hull, err := traceHull(mesh)
	if err != nil {
		return nil, err
	}
	mesh.Hull = hull
	return mesh, nil
}

// Follow the boundary half-edges around the mesh. Interior triangles are
// counterclockwise, so the boundary comes out counterclockwise too.
func traceHull(mesh *Mesh) ([]int, error) {
	// Boundary edges by origin vertex
	outgoing := make(map[int]int)
	var starts []int
	for e, twin := range mesh.Halfedges {
		if twin != NoNeighbor {
			continue
		}
		origin := mesh.Triangles[e]
		if other, ok := outgoing[origin]; ok {
			return nil, errors.Errorf("vertex %d starts two boundary half-edges (%d and %d)", origin, other, e)
		}
		outgoing[origin] = e
		starts = append(starts, e)
	}
	// starts is in id order, so the ring begins at the lowest boundary half-edge
	if len(starts) == 0 {
		return nil, nil
	}

	hull := make([]int, 0, len(starts))
	e := starts[0]
	for {
		hull = append(hull, mesh.Triangles[e])
		next, ok := outgoing[mesh.Triangles[NextEdge(e)]]
		if !ok {
			return nil, errors.Errorf("boundary breaks off after half-edge %d", e)
		}
		if next == starts[0] {
			break
		}
		if len(hull) == len(starts) {
			return nil, errors.Errorf("boundary is not a single ring")
		}
		e = next
	}
	if len(hull) != len(starts) {
		return nil, errors.Errorf("boundary is not a single ring (%d of %d boundary half-edges traced)", len(hull), len(starts))
	}
	return hull, nil
}
