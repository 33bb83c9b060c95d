// Point location in triangle meshes for Go.
//
// Given a triangulation in the half-edge layout used by Delaunator (and most of
// its ports), this package finds the triangle containing a point by walking
// across the mesh from triangle to triangle, or reports that the point is
// outside the mesh's convex hull. Every side-of-line decision uses an adaptive
// orientation predicate: a float64 filter, with an exact fallback whenever the
// filter can't be sure. Points on or very near edges and vertices are handled
// correctly.
//
// Meshes are only ever read, so any number of goroutines may query the same
// mesh at once. See the advanced package for tracing, batch queries and mesh
// validation.
package trilocate

import (
	"io"

	"github.com/osuushi/trilocate/advanced"
)

type Mesh = advanced.Mesh
type Point = advanced.Point

// Locate's result for a point outside the mesh.
const Outside = advanced.Outside

// Wrapped by every error caused by a mesh that is too broken to walk.
var ErrInvalidMesh = advanced.ErrInvalidMesh

// Find the id of the triangle containing (x, y), or Outside if the point is
// outside the mesh's hull. A point on an edge or vertex shared by several
// triangles may be reported in any one of them.
//
// Locate does not validate the mesh up front, but a mesh that sends the walk
// off the end of its arrays or around in circles produces an error wrapping
// ErrInvalidMesh rather than a hang.
func Locate(mesh *Mesh, x, y float64) (int, error) {
	return (&advanced.Walker{}).Locate(mesh, Point{X: x, Y: y})
}

// Whether (x, y) is inside or on the mesh's convex hull. This only looks at the
// hull, and agrees with Locate about which points are outside.
func IsInside(mesh *Mesh, x, y float64) bool {
	return advanced.IsInside(mesh, Point{X: x, Y: y})
}

// Build a mesh from points and counterclockwise triangles given as indices into
// points. The hull and adjacency are derived from the triangles.
func FromTriangles(points []Point, triangles [][3]int) (*Mesh, error) {
	return advanced.FromTriangles(points, triangles)
}

// Read a mesh drawn as SVG circles (vertices) and three point polygons
// (triangles).
func LoadSVG(r io.Reader) (*Mesh, error) {
	return advanced.LoadSVG(r)
}

// Read a mesh from a JSON or YAML document with "coords", "triangles",
// "halfedges" and "hull" keys, as Delaunator lays them out.
func LoadDocument(r io.Reader) (*Mesh, error) {
	return advanced.LoadDocument(r)
}
