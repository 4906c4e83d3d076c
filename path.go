package geodesy

import (
	"fmt"
	"math"
)

// PathSpec designates a great-circle path from some start point, either
// by a second point on the path or by an initial compass bearing. The
// two forms are resolved into a plane normal once, at the operation
// boundary.
type PathSpec struct {
	end       Point
	bearing   float64
	byBearing bool
}

// PathTo specifies a path by a point it passes through.
func PathTo(end Point) PathSpec {
	return PathSpec{end: end}
}

// PathOnBearing specifies a path by its initial compass bearing.
func PathOnBearing(bearing float64) PathSpec {
	return PathSpec{bearing: bearing, byBearing: true}
}

// normal resolves the path leaving start into the unit normal of its
// great-circle plane.
func (s PathSpec) normal(start Point) (Vector, error) {
	if s.byBearing {
		if !isFinite(s.bearing) {
			return Vector{}, fmt.Errorf("bearing %v: %w", s.bearing, ErrInvalidArgument)
		}
		return start.GreatCircle(s.bearing), nil
	}
	c := start.Vector().Cross(s.end.Vector())
	if c.Length() < zeroTol {
		return Vector{}, fmt.Errorf("path endpoints coincident or antipodal: %w", ErrDegenerate)
	}
	return c.Unit(), nil
}

// Intersection returns a point where the two great-circle paths cross.
// Two distinct great circles cross at two antipodal points; of those the
// one nearer the mean direction of the two start points comes back.
// Coincident or anti-parallel planes report ErrDegenerate.
func Intersection(p1 Point, path1 PathSpec, p2 Point, path2 PathSpec) (Point, error) {
	c1, err := path1.normal(p1)
	if err != nil {
		return Point{}, err
	}
	c2, err := path2.normal(p2)
	if err != nil {
		return Point{}, err
	}
	i := c1.Cross(c2)
	if i.Length() < zeroTol {
		return Point{}, fmt.Errorf("great circles do not cross at a unique point: %w", ErrDegenerate)
	}
	ref := p1.Vector().Add(p2.Vector())
	if ref.Dot(i) < 0 {
		i = i.MulScalar(-1)
	}
	return PointFromVector(i), nil
}

// CrossTrackDistanceTo returns the signed distance from p to the
// great-circle path leaving start, in the unit of p's radius. The sign
// says which side of the path p lies on: positive to the left of the
// direction of travel, negative to the right.
func (p Point) CrossTrackDistanceTo(start Point, path PathSpec) (float64, error) {
	gc, err := path.normal(start)
	if err != nil {
		return 0, err
	}
	alpha := math.Pi/2 - p.Vector().AngleTo(gc)
	return alpha * p.Radius, nil
}
