package geodesy

import (
	"fmt"
	"math"
)

// EnclosedBy reports whether p lies inside the convex spherical polygon
// with the given vertices, in order. The polygon is implicitly closed; a
// first vertex repeated at the end is dropped. A point on an edge counts
// as enclosed. Vertex sequences whose turn direction flips, or with a
// degenerate vertex triple, report ErrNonConvex.
func (p Point) EnclosedBy(polygon []Point) (bool, error) {
	n := len(polygon)
	if n > 1 && polygon[0] == polygon[n-1] {
		polygon = polygon[:n-1]
		n--
	}
	if n < 3 {
		return false, fmt.Errorf("polygon has %d distinct vertices, need 3: %w", n, ErrInvalidArgument)
	}
	vs := make([]Vector, n)
	for i, q := range polygon {
		vs[i] = q.Vector()
	}
	// Convex iff every vertex lies on the same side of the great circle
	// through the two before it.
	turn := 0.0
	for i := range vs {
		d := vs[i].Cross(vs[(i+1)%n]).Dot(vs[(i+2)%n])
		if math.Abs(d) < zeroTol {
			return false, fmt.Errorf("degenerate vertex triple at %d: %w", i, ErrNonConvex)
		}
		if turn == 0 {
			turn = d
		} else if (d < 0) != (turn < 0) {
			return false, fmt.Errorf("turn direction flips at vertex %d: %w", (i+2)%n, ErrNonConvex)
		}
	}
	// Enclosed iff p is on the same side of every edge (i, i+1 mod n).
	vp := p.Vector()
	side := 0.0
	for i := range vs {
		d := vs[i].Cross(vs[(i+1)%n]).Dot(vp)
		if math.Abs(d) < zeroTol {
			continue // on the edge's great circle
		}
		if side == 0 {
			side = d
		} else if (d < 0) != (side < 0) {
			return false, nil
		}
	}
	return true, nil
}

// MeanOf returns the geographic centre of the points: the direction of
// the sum of their n-vectors, on a sphere of EarthRadius. The mean is
// undefined when the vectors cancel out, as with an empty list or a
// perfectly antipodal pair; that reports ErrDegenerate.
func MeanOf(points []Point) (Point, error) {
	var sum Vector
	for _, p := range points {
		sum = sum.Add(p.Vector())
	}
	if sum.Length() < zeroTol {
		return Point{}, fmt.Errorf("mean of %d points has no direction: %w", len(points), ErrDegenerate)
	}
	return PointFromVector(sum.Unit()), nil
}
