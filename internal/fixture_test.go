package internal

import (
	"embed"
	"log"
	"math"
	"math/rand"
	"testing"

	"github.com/golang/geo/r2"
	"github.com/stretchr/testify/require"
)

// Fixtures are SVG drawings of meshes, available by name in the fixtures/
// directory, sans extension. See LoadSVG for the format. If anything goes
// wrong loading one, the test binary dies.
//
//   example: nine points, triangulated with 5-8 as a constrained edge
//   diamond: four points, split along the short diagonal
//   scatter: 24 random points, with 0-1 and 2-3 constrained

//go:embed fixtures
var fixtures embed.FS

func LoadFixture(name string) *Mesh {
	fixture, err := fixtures.Open("fixtures/" + name + ".svg")
	if err != nil {
		log.Fatalf("Could not load fixture %q: %v", name, err)
	}
	defer fixture.Close()

	mesh, err := LoadSVG(fixture)
	if err != nil {
		log.Fatalf("Failed to parse fixture %q: %v", name, err)
	}
	if err := mesh.Validate(); err != nil {
		log.Fatalf("Fixture %q is not a valid mesh: %v", name, err)
	}
	return mesh
}

// A rectangular grid of cols x rows cells, each split along a random
// diagonal. Vertex (i, j) is at (i*cellWidth, j*cellHeight) and has id
// j*(cols+1)+i.
func GridMesh(rng *rand.Rand, cols, rows int, cellWidth, cellHeight float64) *Mesh {
	var points []Point
	for j := 0; j <= rows; j++ {
		for i := 0; i <= cols; i++ {
			points = append(points, Point{X: float64(i) * cellWidth, Y: float64(j) * cellHeight})
		}
	}

	id := func(i, j int) int { return j*(cols+1) + i }
	var triangles [][3]int
	for j := 0; j < rows; j++ {
		for i := 0; i < cols; i++ {
			a, b, c, d := id(i, j), id(i+1, j), id(i+1, j+1), id(i, j+1)
			if rng.Intn(2) == 0 {
				triangles = append(triangles, [3]int{a, b, c}, [3]int{a, c, d})
			} else {
				triangles = append(triangles, [3]int{a, b, d}, [3]int{b, c, d})
			}
		}
	}

	mesh, err := FromTriangles(points, triangles)
	if err != nil {
		log.Fatalf("Could not build grid mesh: %v", err)
	}
	return mesh
}

// Flip the diagonal shared by half-edge e and its twin, the way a constrained
// triangulator does when it forces an edge through a quad. The triangle owning
// e keeps e's origin:
//
//	   c                c
//	  / \              /|\
//	 / e \            / | \
//	a --- b    ->    a  |  b
//	 \   /            \ | /
//	  \ /              \|/
//	   d                d
//
// (a, b, c) + (b, a, d) becomes (a, d, c) + (b, c, d).
func flipDiagonal(mesh *Mesh, e int) {
	f := mesh.Halfedges[e]
	nextE, prevE := NextEdge(e), PrevEdge(e)
	nextF, prevF := NextEdge(f), PrevEdge(f)
	c := mesh.Triangles[prevE]
	d := mesh.Triangles[prevF]
	outerE := mesh.Halfedges[nextE] // b->c
	outerF := mesh.Halfedges[nextF] // a->d

	mesh.Triangles[nextE] = d
	mesh.Triangles[nextF] = c

	// e is now a->d, f is b->c, and the new diagonal is nextE/nextF
	mesh.Halfedges[e] = outerF
	mesh.Halfedges[f] = outerE
	mesh.Halfedges[nextE] = nextF
	mesh.Halfedges[nextF] = nextE
	if outerF != NoNeighbor {
		mesh.Halfedges[outerF] = e
	}
	if outerE != NoNeighbor {
		mesh.Halfedges[outerE] = f
	}
}

// Random points across the mesh's bounds, padded by 10% on each side so that
// plenty land outside the hull. Every other point is snapped to whole numbers,
// which lands a lot of them exactly on vertices and edges of the fixtures.
func samplePoints(rng *rand.Rand, bounds r2.Rect, n int) []Point {
	bounds = bounds.ExpandedByMargin(0.1 * math.Max(bounds.Size().X, bounds.Size().Y))
	points := make([]Point, n)
	for i := range points {
		x := bounds.X.Lo + rng.Float64()*bounds.X.Length()
		y := bounds.Y.Lo + rng.Float64()*bounds.Y.Length()
		if i%2 == 1 {
			x, y = math.Round(x), math.Round(y)
		}
		points[i] = Point{X: x, Y: y}
	}
	return points
}

// Locate p, and check the answer against the brute force scan and the hull
// test.
func validateLocate(t *testing.T, mesh *Mesh, p Point) int {
	t.Helper()
	triangle, err := Locate(mesh, p)
	require.NoError(t, err, "locating %v", p)
	if triangle == Outside {
		require.Equal(t, Outside, BruteForceLocate(mesh, p), "%v not found, but is in the mesh", p)
		require.False(t, IsInside(mesh, p), "%v not found, but hull test says inside", p)
	} else {
		require.True(t, TriangleContains(mesh, triangle, p), "%v found in %d, but is not inside it", p, triangle)
		require.True(t, IsInside(mesh, p), "%v found in %d, but hull test says outside", p, triangle)
	}
	return triangle
}
