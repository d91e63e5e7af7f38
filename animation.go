package evergreen

import (
	"math"

	"github.com/tanema/gween/ease"
)

// EaseFunc maps a normalized input in [0, 1] to an eased output.
type EaseFunc func(t float64) float64

// Linear returns t unchanged.
func Linear(t float64) float64 {
	return t
}

// BackOut overshoots past 1 before settling, giving ornaments a "pop" as
// they appear. BackOut(0) = 0 and BackOut(1) = 1. Inputs are expected in
// [0, 1].
var BackOut = FromTween(ease.OutBack)

// FromTween adapts a gween easing function to an EaseFunc over [0, 1].
func FromTween(fn ease.TweenFunc) EaseFunc {
	return func(t float64) float64 {
		return float64(fn(float32(t), 0, 1, 1))
	}
}

// Smoothstep is the Hermite interpolation of x between edge0 and edge1:
// 0 at or below edge0, 1 at or above edge1.
func Smoothstep(x, edge0, edge1 float64) float64 {
	if x <= edge0 {
		return 0
	}
	if x >= edge1 {
		return 1
	}
	x = (x - edge0) / (edge1 - edge0)
	return x * x * (3 - 2*x)
}

// Damp moves current toward target by exponential smoothing at rate lambda
// per second. The result does not depend on how dt is split across frames.
func Damp(current, target, lambda, dt float64) float64 {
	if !(dt > 0) {
		return current
	}
	return current + (target-current)*(1-math.Exp(-lambda*dt))
}
