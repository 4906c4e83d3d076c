package geodesy

import (
	"fmt"
	"math"
)

// EarthRadius is the mean radius of the Earth in kilometres. Distances
// come back in the same unit as the radius of the point they start from.
const EarthRadius = 6371.0

var northPole = Vector{0, 0, 1}

// Point is a geographic location: latitude and longitude in degrees on a
// sphere of the given radius. Points compare equal only when all three
// fields match exactly; coordinates are not normalized first, so 180°E
// and 180°W are distinct values for the same meridian.
type Point struct {
	Lat, Lon float64
	Radius   float64
}

// LatLon returns the point at lat, lon on a sphere of EarthRadius.
func LatLon(lat, lon float64) (Point, error) {
	return LatLonR(lat, lon, EarthRadius)
}

// LatLonR returns the point at lat, lon on a sphere of the given radius.
// Non-finite coordinates and non-positive radii are rejected.
func LatLonR(lat, lon, radius float64) (Point, error) {
	if !isFinite(lat) || !isFinite(lon) {
		return Point{}, fmt.Errorf("latitude %v, longitude %v: %w", lat, lon, ErrInvalidArgument)
	}
	if !isFinite(radius) || radius <= 0 {
		return Point{}, fmt.Errorf("radius %v: %w", radius, ErrInvalidArgument)
	}
	return Point{lat, lon, radius}, nil
}

// Vector returns the n-vector of p: the unit normal to the sphere at p,
// in a right-handed frame where X points at 0°N 0°E, Y at 0°N 90°E and
// Z at the north pole.
func (p Point) Vector() Vector {
	phi := Radians(p.Lat)
	lambda := Radians(p.Lon)
	return Vector{
		math.Cos(phi) * math.Cos(lambda),
		math.Cos(phi) * math.Sin(lambda),
		math.Sin(phi),
	}
}

// PointFromVector returns the point in the direction of v on a sphere of
// EarthRadius. v need not be unit length. At the poles, where longitude
// is undefined, the longitude comes out 0.
func PointFromVector(v Vector) Point {
	return pointFromVector(v, EarthRadius)
}

func pointFromVector(v Vector, radius float64) Point {
	lat := math.Atan2(v.Z, math.Hypot(v.X, v.Y))
	lon := math.Atan2(v.Y, v.X)
	return Point{Degrees(lat), Degrees(lon), radius}
}

// DistanceTo returns the great-circle distance from p to q, in the unit
// of p's radius.
func (p Point) DistanceTo(q Point) float64 {
	return p.Vector().AngleTo(q.Vector()) * p.Radius
}

// BearingTo returns the initial compass bearing from p to q in [0, 360).
// The bearing is undefined when p and q coincide or when p is a pole;
// both report ErrDegenerate.
func (p Point) BearingTo(q Point) (float64, error) {
	v1 := p.Vector()
	v2 := q.Vector()
	// c1 is the great circle through p and q, c2 the one through p and
	// the pole.
	c1 := v1.Cross(v2)
	c2 := v1.Cross(northPole)
	if c1.Length() < zeroTol {
		return 0, fmt.Errorf("bearing between coincident or antipodal points: %w", ErrDegenerate)
	}
	if c2.Length() < zeroTol {
		return 0, fmt.Errorf("bearing at a pole: %w", ErrDegenerate)
	}
	c := c1.Cross(c2)
	sin := c.Length() * math.Copysign(1, c.Dot(v1))
	cos := c1.Dot(c2)
	return wrap360(Degrees(math.Atan2(sin, cos))), nil
}

// MidpointTo returns the point halfway along the great circle from p to
// q, on p's sphere. Antipodal endpoints have no unique midpoint and
// report ErrDegenerate.
func (p Point) MidpointTo(q Point) (Point, error) {
	m := p.Vector().Add(q.Vector())
	if m.Length() < zeroTol {
		return Point{}, fmt.Errorf("midpoint of antipodal points: %w", ErrDegenerate)
	}
	return pointFromVector(m.Unit(), p.Radius), nil
}

// Destination returns the point reached by travelling the given distance
// from p on the given initial bearing, on p's sphere.
func (p Point) Destination(bearing, distance float64) (Point, error) {
	if !isFinite(bearing) {
		return Point{}, fmt.Errorf("bearing %v: %w", bearing, ErrInvalidArgument)
	}
	if !isFinite(distance) {
		return Point{}, fmt.Errorf("distance %v: %w", distance, ErrInvalidArgument)
	}
	v1 := p.Vector()
	delta := distance / p.Radius
	gc := p.GreatCircle(bearing)
	// Decompose the target into components along v1 and along the
	// direction of travel within the great-circle plane.
	x := v1.MulScalar(math.Cos(delta))
	y := gc.Cross(v1).MulScalar(math.Sin(delta))
	return pointFromVector(x.Add(y).Unit(), p.Radius), nil
}

// GreatCircle returns the unit normal of the great-circle plane that
// leaves p on the given compass bearing, by the right-hand rule.
func (p Point) GreatCircle(bearing float64) Vector {
	phi := Radians(p.Lat)
	lambda := Radians(p.Lon)
	theta := Radians(bearing)
	return Vector{
		math.Sin(lambda)*math.Cos(theta) - math.Sin(phi)*math.Cos(lambda)*math.Sin(theta),
		-math.Cos(lambda)*math.Cos(theta) - math.Sin(phi)*math.Sin(lambda)*math.Sin(theta),
		math.Cos(phi) * math.Sin(theta),
	}
}

// String renders p as "lat, lon" in degrees-minutes-seconds.
func (p Point) String() string {
	lat, err1 := FormatLat(p.Lat, FormatDMS, 0)
	lon, err2 := FormatLon(p.Lon, FormatDMS, 0)
	if err1 != nil || err2 != nil {
		return fmt.Sprintf("%v, %v", p.Lat, p.Lon)
	}
	return lat + ", " + lon
}
