package internal

import (
	"fmt"
	"math"
	"math/big"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/twpayne/go-geom/xy/orientation"
)

func TestOrient(t *testing.T) {
	a := Point{X: 0, Y: 0}
	b := Point{X: 4, Y: 0}
	assert.Equal(t, orientation.CounterClockwise, Orient(a, b, Point{X: 1, Y: 1}))
	assert.Equal(t, orientation.Clockwise, Orient(a, b, Point{X: 1, Y: -1}))
	assert.Equal(t, orientation.Collinear, Orient(a, b, Point{X: 9, Y: 0}))
	assert.Equal(t, orientation.Collinear, Orient(a, b, a))

	// Swapping the direction of the line swaps the answer
	assert.Equal(t, orientation.Clockwise, Orient(b, a, Point{X: 1, Y: 1}))
}

func TestOrient_NearlyCollinear(t *testing.T) {
	// Points within an ulp of the line y = x
	a := Point{X: 0.1, Y: 0.1}
	b := Point{X: 0.3, Y: 0.3}
	onLine := Point{X: 0.5, Y: 0.5}
	above := Point{X: 0.5, Y: 0.5000000000000001}
	below := Point{X: 0.5, Y: 0.49999999999999994}

	assert.Equal(t, orientation.CounterClockwise, Orient(a, b, above))
	assert.Equal(t, orientation.Clockwise, Orient(a, b, below))
	// 0.1, 0.3 and 0.5 are not exactly representable, but the three points are
	// still exactly on y = x
	assert.Equal(t, orientation.Collinear, Orient(a, b, onLine))
}

// Orientation from a rational determinant, which is exact for any finite
// float64 input.
func ratOrient(a, b, p Point) orientation.Type {
	r := func(v float64) *big.Rat { return new(big.Rat).SetFloat64(v) }
	sub := func(u, v float64) *big.Rat { return new(big.Rat).Sub(r(u), r(v)) }
	left := new(big.Rat).Mul(sub(a.X, p.X), sub(b.Y, p.Y))
	right := new(big.Rat).Mul(sub(a.Y, p.Y), sub(b.X, p.X))
	return orientation.Type(left.Cmp(right))
}

func TestOrient_AgreesWithRationals(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	randomPoint := func() Point {
		return Point{X: rng.Float64() * 1000, Y: rng.Float64() * 1000}
	}

	for i := 0; i < 100000; i++ {
		a, b := randomPoint(), randomPoint()
		var p Point
		switch i % 4 {
		case 0:
			// Rounded onto the line, so usually just off it
			frac := rng.Float64()
			p = Point{X: a.X + frac*(b.X-a.X), Y: a.Y + frac*(b.Y-a.Y)}
		case 1:
			// Same, then nudged by an ulp
			frac := rng.Float64()
			p = Point{X: a.X + frac*(b.X-a.X), Y: math.Nextafter(a.Y+frac*(b.Y-a.Y), math.Inf(1))}
		case 2:
			// Exactly on the line, with integer steps along it
			step := Point{X: float64(rng.Intn(2001) - 1000), Y: float64(rng.Intn(2001) - 1000)}
			a = Point{X: float64(rng.Intn(1000)), Y: float64(rng.Intn(1000))}
			b = a.Add(step)
			p = a.Add(step.Mul(float64(rng.Intn(9) - 4)))
		case 3:
			// Tiny and huge coordinates, far from the float filter's comfort zone
			scale := math.Ldexp(1, rng.Intn(1000)-700)
			a, b = a.Mul(scale), b.Mul(scale)
			frac := rng.Float64()
			p = Point{X: a.X + frac*(b.X-a.X), Y: a.Y + frac*(b.Y-a.Y)}
		}
		expected := ratOrient(a, b, p)
		if actual := Orient(a, b, p); actual != expected {
			require.Failf(t, "wrong orientation", "Orient(%v, %v, %v) = %v, want %v", a, b, p, actual, expected)
		}
	}
}

func TestOrient_Regressions(t *testing.T) {
	cases := []struct {
		a, b, p  Point
		expected orientation.Type
	}{
		// Rounds to collinear in plain float64
		{
			Point{X: 942.3045323077699, Y: 137.84371749345823},
			Point{X: 554.7684886267264, Y: 162.29800387598235},
			Point{X: 812.7484540034449, Y: 146.01896078530086},
			orientation.Clockwise,
		},
		// Products underflow to zero
		{
			Point{X: 0, Y: 0},
			Point{X: 1e-200, Y: 1e-200},
			Point{X: 1e-200, Y: 2e-200},
			orientation.CounterClockwise,
		},
		// The float determinant overflows to infinity
		{
			Point{X: -1e308, Y: 0},
			Point{X: 1e308, Y: 0},
			Point{X: 0, Y: -1},
			orientation.Clockwise,
		},
	}
	for i, c := range cases {
		t.Run(fmt.Sprint(i), func(t *testing.T) {
			assert.Equal(t, c.expected, ratOrient(c.a, c.b, c.p))
			assert.Equal(t, c.expected, Orient(c.a, c.b, c.p))
		})
	}
}

func TestMesh_IsLeftOfEdge(t *testing.T) {
	mesh := LoadFixture("diamond")
	// Edge 0 runs from (150, 50) to (250, 200)
	assert.True(t, mesh.IsLeftOfEdge(0, Point{X: 150, Y: 200}))
	assert.True(t, mesh.IsLeftOfEdge(0, Point{X: 200, Y: 125})) // on it
	assert.False(t, mesh.IsLeftOfEdge(0, Point{X: 250, Y: 50}))
}
