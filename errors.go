package geodesy

import (
	"errors"
	"math"
)

// zeroTol is the vector magnitude below which a direction is treated as
// degenerate instead of being normalized.
const zeroTol = 1e-12

var (
	// ErrDegenerate reports vector algebra that yields a zero-length
	// vector where a unit direction is required: the midpoint of
	// antipodal points, the bearing at a pole, coincident great circles.
	ErrDegenerate = errors.New("degenerate geometry")

	// ErrNonConvex reports an enclosure test on a polygon whose turn
	// direction is not consistent at every vertex.
	ErrNonConvex = errors.New("polygon is not convex")

	// ErrInvalidArgument reports a non-finite or out-of-domain numeric
	// input, rejected before any vector math runs.
	ErrInvalidArgument = errors.New("invalid argument")
)

func isFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
