// Package advanced exposes the parts of the point locator that most callers
// don't need: a configurable Walker with tracing, batch location, mesh
// assembly and validation, and the slow reference implementations used to
// check results.
package advanced

import (
	"io"

	"github.com/osuushi/trilocate/internal"
	"github.com/twpayne/go-geom/xy/orientation"
)

type Mesh = internal.Mesh
type Point = internal.Point
type Walker = internal.Walker
type Visit = internal.Visit
type Step = internal.Step

const (
	Found           = internal.Found
	StepViaPrevEdge = internal.StepViaPrevEdge
	StepViaNextEdge = internal.StepViaNextEdge
	Tiebreak        = internal.Tiebreak
)

const (
	Outside    = internal.Outside
	NoNeighbor = internal.NoNeighbor
)

var ErrInvalidMesh = internal.ErrInvalidMesh

func FromTriangles(points []Point, triangles [][3]int) (*Mesh, error) {
	return internal.FromTriangles(points, triangles)
}

func LoadSVG(r io.Reader) (*Mesh, error) {
	return internal.LoadSVG(r)
}

func LoadDocument(r io.Reader) (*Mesh, error) {
	return internal.LoadDocument(r)
}

func IsInside(mesh *Mesh, p Point) bool {
	return internal.IsInside(mesh, p)
}

// Orientation of p against the directed line a->b. A float filter settles
// clear cases, and anything close to the line is decided exactly.
func Orient(a, b, p Point) orientation.Type {
	return internal.Orient(a, b, p)
}

func NextEdge(e int) int           { return internal.NextEdge(e) }
func PrevEdge(e int) int           { return internal.PrevEdge(e) }
func TriangleOf(e int) int         { return internal.TriangleOf(e) }
func EdgesOfTriangle(t int) [3]int { return internal.EdgesOfTriangle(t) }

// Whether p is inside or on the boundary of triangle t.
func TriangleContains(mesh *Mesh, t int, p Point) bool {
	return internal.TriangleContains(mesh, t, p)
}

// Locate by testing every triangle. Only useful for checking Locate.
func BruteForceLocate(mesh *Mesh, p Point) int {
	return internal.BruteForceLocate(mesh, p)
}

func DbgCat(path string) error {
	return internal.DbgCat(path)
}

// One colored line describing a pass of the walk, for printing traces.
func FormatVisit(v Visit) string {
	return v.DbgString()
}
