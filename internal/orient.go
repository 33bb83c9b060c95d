package internal

import (
	"math"
	"math/big"

	"github.com/twpayne/go-geom/xy/orientation"
)

// Everything that decides topology goes through Orient. Plain float
// subtraction gets the sign wrong for nearly collinear points, and a walk that
// gets the sign wrong can bounce between two triangles forever, or find a point
// that is really outside the hull.
//
// The determinant is first computed in float64. Shewchuk's error bound says
// how far that can be from the true value, and when the float result is
// farther from zero than that, its sign is right. Otherwise the determinant is
// recomputed exactly with big floats. For random input the fallback almost
// never runs.

const (
	// Half an ulp of 1.
	epsilon = 0x1p-53
	// Bound on the relative error of the float determinant, from Shewchuk's
	// orient2d.
	orientErrorBound = (3 + 16*epsilon) * epsilon
	// Below this the products may have lost bits to underflow, and the relative
	// bound no longer holds.
	orientFilterFloor = 0x1p-960
)

// Which side of the directed line a->b the point p is on. CounterClockwise means
// strictly left, Clockwise strictly right. Coordinates must be finite.
func Orient(a, b, p Point) orientation.Type {
	left := (a.X - p.X) * (b.Y - p.Y)
	right := (a.Y - p.Y) * (b.X - p.X)
	det := left - right

	sum := math.Abs(left) + math.Abs(right)
	if sum >= orientFilterFloor {
		bound := orientErrorBound * sum
		if det > bound {
			return orientation.CounterClockwise
		}
		if -det > bound {
			return orientation.Clockwise
		}
	}
	return exactOrient(a, b, p)
}

// newBigFloat constructs a big.Float with enough precision that sums and
// products of float64 values are never rounded.
func newBigFloat() *big.Float { return new(big.Float).SetPrec(big.MaxPrec) }

func exactOrient(a, b, p Point) orientation.Type {
	for _, v := range [...]float64{a.X, a.Y, b.X, b.Y, p.X, p.Y} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return orientation.Collinear
		}
	}
	diff := func(u, v float64) *big.Float {
		return newBigFloat().Sub(newBigFloat().SetFloat64(u), newBigFloat().SetFloat64(v))
	}
	left := newBigFloat().Mul(diff(a.X, p.X), diff(b.Y, p.Y))
	right := newBigFloat().Mul(diff(a.Y, p.Y), diff(b.X, p.X))

	switch left.Cmp(right) {
	case 1:
		return orientation.CounterClockwise
	case -1:
		return orientation.Clockwise
	}
	return orientation.Collinear
}

// Orientation of p against half-edge e, origin to destination.
func (m *Mesh) EdgeOrient(e int, p Point) orientation.Type {
	return Orient(m.EdgeOrigin(e), m.EdgeDest(e), p)
}

// Left of or exactly on the half-edge. Every triangle is counterclockwise, so
// this is the "not rejected by this edge" test.
func (m *Mesh) IsLeftOfEdge(e int, p Point) bool {
	return m.EdgeOrient(e, p) != orientation.Clockwise
}
