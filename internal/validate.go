package internal

import (
	"math"

	"github.com/pkg/errors"
	"github.com/twpayne/go-geom/xy/orientation"
)

// Validate checks everything the walk assumes about a mesh, and reports the
// first problem it finds. Meshes from a real triangulator never fail this; it
// exists for meshes loaded from files or assembled by hand.
func (m *Mesh) Validate() error {
	if len(m.Coords)%2 != 0 {
		return errors.Wrapf(ErrInvalidMesh, "odd number of coordinates (%d)", len(m.Coords))
	}
	for i, c := range m.Coords {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return errors.Wrapf(ErrInvalidMesh, "vertex %d has non-finite coordinate %v", i/2, c)
		}
	}
	if len(m.Triangles)%3 != 0 {
		return errors.Wrapf(ErrInvalidMesh, "triangles length %d is not a multiple of 3", len(m.Triangles))
	}
	if len(m.Halfedges) != len(m.Triangles) {
		return errors.Wrapf(ErrInvalidMesh, "%d halfedges for %d half-edge origins", len(m.Halfedges), len(m.Triangles))
	}

	numVertices := m.NumVertices()
	for e, v := range m.Triangles {
		if v < 0 || v >= numVertices {
			return errors.Wrapf(ErrInvalidMesh, "half-edge %d starts at vertex %d, but there are %d vertices", e, v, numVertices)
		}
	}

	for t := 0; t < m.NumTriangles(); t++ {
		points := m.TrianglePoints(t)
		if Orient(points[0], points[1], points[2]) != orientation.CounterClockwise {
			return errors.Wrapf(ErrInvalidMesh, "triangle %d is not strictly counterclockwise", t)
		}
	}

	boundary := make(map[[2]int]struct{})
	for e, twin := range m.Halfedges {
		if twin == NoNeighbor {
			boundary[[2]int{m.Triangles[e], m.Triangles[NextEdge(e)]}] = struct{}{}
			continue
		}
		if twin < 0 || twin >= len(m.Halfedges) {
			return errors.Wrapf(ErrInvalidMesh, "half-edge %d has out of range twin %d", e, twin)
		}
		if m.Halfedges[twin] != e {
			return errors.Wrapf(ErrInvalidMesh, "half-edge %d has twin %d, whose twin is %d", e, twin, m.Halfedges[twin])
		}
		if m.Triangles[twin] != m.Triangles[NextEdge(e)] || m.Triangles[NextEdge(twin)] != m.Triangles[e] {
			return errors.Wrapf(ErrInvalidMesh, "half-edges %d and %d are twins but do not share endpoints", e, twin)
		}
	}

	if m.NumTriangles() == 0 {
		return nil
	}
	return m.validateHull(boundary)
}

func (m *Mesh) validateHull(boundary map[[2]int]struct{}) error {
	hull := m.Hull
	if len(hull) < 3 {
		return errors.Wrapf(ErrInvalidMesh, "hull has only %d vertices", len(hull))
	}

	seen := make(map[int]struct{}, len(hull))
	for _, id := range hull {
		if id < 0 || id >= m.NumVertices() {
			return errors.Wrapf(ErrInvalidMesh, "hull vertex %d out of range", id)
		}
		if _, ok := seen[id]; ok {
			return errors.Wrapf(ErrInvalidMesh, "hull vertex %d repeated", id)
		}
		seen[id] = struct{}{}
	}

	if len(boundary) != len(hull) {
		return errors.Wrapf(ErrInvalidMesh, "%d boundary half-edges, but %d hull edges", len(boundary), len(hull))
	}
	for i, cur := range hull {
		prev := hull[CircularIndex(i-1, len(hull))]
		next := hull[CircularIndex(i+1, len(hull))]
		if _, ok := boundary[[2]int{prev, cur}]; !ok {
			return errors.Wrapf(ErrInvalidMesh, "hull edge %d->%d is not a boundary half-edge", prev, cur)
		}
		// Collinear runs are fine, reflex corners are not
		if Orient(m.Vertex(prev), m.Vertex(cur), m.Vertex(next)) == orientation.Clockwise {
			return errors.Wrapf(ErrInvalidMesh, "hull turns clockwise at vertex %d", cur)
		}
	}
	return nil
}

// Wrap an index into [0, length). Works for negative indices too.
func CircularIndex(i, length int) int {
	return ((i % length) + length) % length
}
