package internal

// These only ever break ties in the walk. Topology is always decided by
// Orient.

func SqDist(p, q Point) float64 {
	d := q.Sub(p)
	return d.Dot(d)
}

// Squared distance from p to the closest point on the segment a-b. A
// degenerate segment is treated as the point a.
func SqDistPointSegment(a, b, p Point) float64 {
	ab := b.Sub(a)
	lengthSq := ab.Dot(ab)
	if lengthSq == 0 {
		return SqDist(a, p)
	}

	t := p.Sub(a).Dot(ab) / lengthSq
	switch {
	case t < 0:
		return SqDist(a, p)
	case t > 1:
		return SqDist(b, p)
	}
	return SqDist(a.Add(ab.Mul(t)), p)
}
