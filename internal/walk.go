package internal

import (
	"fmt"

	"github.com/twpayne/go-geom/xy/orientation"
)

// Point location by walking the triangulation, after "A Robust Efficient
// Algorithm for Point Location in Triangulations" (Brown & Faigle).
//
// The walk's only state is a cursor half-edge e. Each pass looks at the
// triangle owning e, and tests the query point against the two edges other
// than e:
//
//              C
//             / \
//      prev  /   \  next
//           /     \
//          A ----- B
//              e
//
// If neither edge rejects the point (the point is not strictly to its right),
// the point is in the triangle. If one edge rejects it, the walk crosses that
// edge into the neighbor. If both do, the point is somewhere past the corner at
// C, and the walk stays in this triangle but re-anchors on one of the two
// edges, using the distance to each edge as a tie breaker.
//
// Walking off a boundary edge means the point is outside the hull.

type Step int

const (
	Found Step = iota
	StepViaPrevEdge
	StepViaNextEdge
	Tiebreak
)

var stepNames = [...]string{"Found", "StepViaPrevEdge", "StepViaNextEdge", "Tiebreak"}

func (s Step) String() string {
	if s < 0 || int(s) >= len(stepNames) {
		return fmt.Sprintf("Step(%d)", int(s))
	}
	return stepNames[s]
}

// One pass of the walk, as reported to Walker.Trace.
type Visit struct {
	Edge     int
	Triangle int
	Step     Step
	// The pass ended because the point sits exactly on one of e's endpoints.
	Vertex bool
}

// Everything a pass needs to know. It's passed by value and never modified.
type query struct {
	mesh *Mesh
	p    Point
}

// Whether the point is exactly on e's origin or destination.
func (q query) coincident(e int) bool {
	return SqDist(q.mesh.EdgeOrigin(e), q.p) == 0 || SqDist(q.mesh.EdgeDest(e), q.p) == 0
}

func (q query) classify(e int) Step {
	rightOfPrev := !q.mesh.IsLeftOfEdge(PrevEdge(e), q.p)
	rightOfNext := !q.mesh.IsLeftOfEdge(NextEdge(e), q.p)
	switch {
	case rightOfPrev && rightOfNext:
		return Tiebreak
	case rightOfPrev:
		return StepViaPrevEdge
	case rightOfNext:
		return StepViaNextEdge
	}
	return Found
}

// Pick the edge the walk continues from when both of e's neighbors reject the
// point. Note that the cursor lands on the edge *farther* from the point, which
// leaves the nearer one as one of the two edges tested on the next pass. Ties go
// to the next edge.
func (q query) tiebreak(e int) int {
	m := q.mesh
	next, prev := NextEdge(e), PrevEdge(e)
	nextDist := SqDistPointSegment(m.EdgeOrigin(next), m.EdgeDest(next), q.p)
	prevDist := SqDistPointSegment(m.EdgeOrigin(prev), m.EdgeDest(prev), q.p)
	if nextDist < prevDist {
		return prev
	}
	return next
}

// A Walker locates points in a mesh. The zero value is ready to use.
type Walker struct {
	// Maximum number of passes before the mesh is declared invalid. Zero means
	// one more than the number of half-edges, which is more than any walk over a
	// valid mesh can take, since each pass is fully determined by the cursor.
	MaxSteps int
	// Called once per pass, if set. A panic in Trace propagates out of Locate
	// unchanged.
	Trace func(Visit)
}

// Find the triangle containing p, or Outside. The only error is one wrapping
// ErrInvalidMesh, when the mesh is too broken to walk.
func (w *Walker) Locate(mesh *Mesh, p Point) (triangle int, err error) {
	defer func() {
		recoveredErr := HandleLocatePanicRecover(recover())
		if recoveredErr != nil {
			triangle = Outside
			err = recoveredErr
		}
	}()
	return w.walk(query{mesh: mesh, p: p}), nil
}

func (w *Walker) maxSteps(mesh *Mesh) int {
	if w.MaxSteps > 0 {
		return w.MaxSteps
	}
	return len(mesh.Triangles) + 1
}

func (w *Walker) visit(v Visit) {
	if w.Trace == nil {
		return
	}
	defer func() {
		if r := recover(); r != nil {
			panic(callerPanic{r})
		}
	}()
	w.Trace(v)
}

func (w *Walker) walk(q query) int {
	m := q.mesh
	if len(m.Triangles) == 0 {
		return Outside
	}

	// Start on the side of edge 0 that faces the point
	e := 0
	if m.EdgeOrient(e, q.p) == orientation.Clockwise {
		e = m.Twin(e)
	}

	limit := w.maxSteps(m)
	for steps := 0; e != NoNeighbor; steps++ {
		if steps == limit {
			fatalf("walk toward %v did not settle after %d steps", q.p, steps)
		}

		if q.coincident(e) {
			w.visit(Visit{Edge: e, Triangle: TriangleOf(e), Step: Found, Vertex: true})
			return TriangleOf(e)
		}

		step := q.classify(e)
		w.visit(Visit{Edge: e, Triangle: TriangleOf(e), Step: step})
		switch step {
		case Found:
			return TriangleOf(e)
		case StepViaPrevEdge:
			e = m.Twin(PrevEdge(e))
		case StepViaNextEdge:
			e = m.Twin(NextEdge(e))
		case Tiebreak:
			e = q.tiebreak(e)
		}
	}
	return Outside
}

// Locate with a default Walker.
func Locate(mesh *Mesh, p Point) (int, error) {
	return (&Walker{}).Locate(mesh, p)
}
