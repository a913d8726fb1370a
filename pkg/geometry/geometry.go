// Package geometry provides 3D vector algebra, line and plane primitives,
// intersection, distance and projection algorithms, a least-squares
// multi-line intersector and quaternion spherical interpolation.
//
// All computation is float64 and every zero, parallel, perpendicular and
// singularity decision uses the shared Epsilon tolerance. Values are
// immutable and functions hold no state, so everything here is safe for
// concurrent use.
package geometry

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Epsilon is the tolerance used for all zero, parallel, perpendicular,
// singularity and on-object decisions.
const Epsilon = 1e-10

// SlerpLinearThreshold is the |dot| above which Slerp falls back to
// normalized linear interpolation.
const SlerpLinearThreshold = 0.9995

// clampedAcos returns acos(c) with c clamped to [-1, 1].
func clampedAcos(c float64) float64 {
	return math.Acos(mgl64.Clamp(c, -1, 1))
}

// Degrees converts radians to degrees.
func Degrees(rad float64) float64 {
	return rad * 180 / math.Pi
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
