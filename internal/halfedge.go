package internal

// Half-edges are not stored anywhere. They are just ids, and all of the
// topology within a triangle falls out of arithmetic on those ids:
//
//              C
//             / ^
//     3k+2   /   \  3k+1
//           v     \
//          A ----> B
//             3k
//
// Triangle k owns the half-edges 3k (A->B), 3k+1 (B->C) and 3k+2 (C->A). The
// only thing that needs the mesh is crossing to the twin in the neighboring
// triangle.

// The next half-edge counterclockwise around e's triangle.
func NextEdge(e int) int {
	if e%3 == 2 {
		return e - 2
	}
	return e + 1
}

// The previous half-edge around e's triangle, i.e. the one ending where e
// starts.
func PrevEdge(e int) int {
	if e%3 == 0 {
		return e + 2
	}
	return e - 1
}

func TriangleOf(e int) int {
	return e / 3
}

func EdgesOfTriangle(t int) [3]int {
	return [3]int{3 * t, 3*t + 1, 3*t + 2}
}
