package gamemath

import "math"

// Clamp01 clamps t to the [0, 1] range.
func Clamp01(t float64) float64 {
	if t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}

// Lerp blends a toward b by t. t is expected to be in [0, 1].
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// Axis identifies the dominant axis of a movement delta.
type Axis int

const (
	AxisNone Axis = iota
	AxisHorizontal
	AxisVertical
)

// DominantAxis returns which axis dominates the delta (dx, dy).
// Ties go to the horizontal axis so a perfect diagonal keeps a stable facing.
func DominantAxis(dx, dy float64) Axis {
	ax, ay := math.Abs(dx), math.Abs(dy)
	if ax == 0 && ay == 0 {
		return AxisNone
	}
	if ay > ax {
		return AxisVertical
	}
	return AxisHorizontal
}

// Distance returns the euclidean distance between two points.
func Distance(x1, y1, x2, y2 float64) float64 {
	dx := x2 - x1
	dy := y2 - y1
	return math.Sqrt(dx*dx + dy*dy)
}
