package internal

import (
	"github.com/golang/geo/r2"
)

// A Mesh is a half-edge triangulation in the layout produced by Delaunator and
// friends. Nothing here ever modifies one, so any number of concurrent
// queries can share a mesh.
//
//	Coords:    x0, y0, x1, y1, ...
//	Triangles: origin vertex of each half-edge; triangle k owns 3k, 3k+1, 3k+2
//	Halfedges: twin of each half-edge, or NoNeighbor on the boundary
//	Hull:      vertex ids of the convex hull, counterclockwise
type Mesh struct {
	Coords    []float64 `yaml:"coords"`
	Triangles []int     `yaml:"triangles"`
	Halfedges []int     `yaml:"halfedges"`
	Hull      []int     `yaml:"hull"`
}

type Point = r2.Point

// Sentinel for a boundary half-edge's missing twin.
const NoNeighbor = -1

// Result of a walk that ran off the mesh.
const Outside = -1

func (m *Mesh) NumVertices() int {
	return len(m.Coords) / 2
}

func (m *Mesh) NumTriangles() int {
	return len(m.Triangles) / 3
}

func (m *Mesh) Vertex(i int) Point {
	return Point{X: m.Coords[2*i], Y: m.Coords[2*i+1]}
}

// Origin point of half-edge e
func (m *Mesh) EdgeOrigin(e int) Point {
	return m.Vertex(m.Triangles[e])
}

// Destination point of half-edge e, which is the origin of the next half-edge
// around the triangle.
func (m *Mesh) EdgeDest(e int) Point {
	return m.Vertex(m.Triangles[NextEdge(e)])
}

func (m *Mesh) Twin(e int) int {
	return m.Halfedges[e]
}

// The three corners of triangle t, counterclockwise.
func (m *Mesh) TrianglePoints(t int) [3]Point {
	edges := EdgesOfTriangle(t)
	return [3]Point{m.EdgeOrigin(edges[0]), m.EdgeOrigin(edges[1]), m.EdgeOrigin(edges[2])}
}

// Bounding rectangle of the hull, which is also the bounding rectangle of the
// whole mesh.
func (m *Mesh) Bounds() r2.Rect {
	rect := r2.EmptyRect()
	for _, id := range m.Hull {
		rect = rect.AddPoint(m.Vertex(id))
	}
	return rect
}
