package geodesy

import (
	"math"
)

// Vector is a 3-D Cartesian vector. It plays two roles: a unit vector
// from the sphere's centre to a surface point (an "n-vector"), or the
// normal to a great-circle plane.
type Vector struct {
	X, Y, Z float64
}

func (a Vector) Add(b Vector) Vector {
	return Vector{a.X + b.X, a.Y + b.Y, a.Z + b.Z}
}

func (a Vector) Sub(b Vector) Vector {
	return Vector{a.X - b.X, a.Y - b.Y, a.Z - b.Z}
}

func (a Vector) MulScalar(b float64) Vector {
	return Vector{a.X * b, a.Y * b, a.Z * b}
}

func (a Vector) Dot(b Vector) float64 {
	return a.X*b.X + a.Y*b.Y + a.Z*b.Z
}

func (a Vector) Cross(b Vector) Vector {
	x := a.Y*b.Z - a.Z*b.Y
	y := a.Z*b.X - a.X*b.Z
	z := a.X*b.Y - a.Y*b.X
	return Vector{x, y, z}
}

func (a Vector) Length() float64 {
	return math.Sqrt(a.X*a.X + a.Y*a.Y + a.Z*a.Z)
}

// Unit returns a scaled to unit length. The result is undefined for the
// zero vector; callers that may hold one must check Length first.
func (a Vector) Unit() Vector {
	r := 1 / a.Length()
	return Vector{a.X * r, a.Y * r, a.Z * r}
}

// AngleTo returns the angle between a and b in [0, π]. The atan2 form
// stays accurate near 0 and π, where acos of the dot product does not.
func (a Vector) AngleTo(b Vector) float64 {
	return math.Atan2(a.Cross(b).Length(), a.Dot(b))
}
