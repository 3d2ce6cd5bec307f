package domain

import "math"

// Planar position (x, y). Distances between positions are flat Cartesian,
// not geodesic.
type Position struct {
	X float64
	Y float64
}

// Validate rejects positions whose coordinates are NaN or infinite.
func (p Position) Validate() error {
	if !p.IsFinite() {
		return NewError(KindInvalidArgument, "non-numeric input")
	}
	return nil
}

// IsFinite reports whether both coordinates are finite numbers.
func (p Position) IsFinite() bool {
	return isFinite(p.X) && isFinite(p.Y)
}

// SquaredDistance is monotonic with Distance and is what ranking compares.
func SquaredDistance(a, b Position) float64 {
	dx := a.X - b.X
	dy := a.Y - b.Y
	return dx*dx + dy*dy
}

// Euclidean distance between two positions.
func Distance(a, b Position) float64 {
	return math.Sqrt(SquaredDistance(a, b))
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
