// SPDX-License-Identifier: EPL-2.0

package utils

import "math"

// CubicInterpolate performs cubic interpolation
// x is the fractional position between y1 and y2 (0 <= x <= 1)
// y0, y1, y2, y3 are four consecutive samples
func CubicInterpolate(y0, y1, y2, y3, x float64) float64 {
	// Catmull-Rom spline interpolation
	a0 := -0.5*y0 + 1.5*y1 - 1.5*y2 + 0.5*y3
	a1 := y0 - 2.5*y1 + 2*y2 - 0.5*y3
	a2 := -0.5*y0 + 0.5*y2
	a3 := y1

	return a0*x*x*x + a1*x*x + a2*x + a3
}

// LinearInterpolate blends y0 and y1 by frac, where frac is in [0, 1].
func LinearInterpolate(y0, y1, frac float64) float64 {
	return y0*(1-frac) + y1*frac
}

// ReadFractional returns buf sampled at a fractional index using linear
// interpolation between floor(pos) and floor(pos)+1. Positions outside the
// buffer read as silence.
func ReadFractional(buf []float64, pos float64) float64 {
	if pos < 0 {
		return 0
	}

	i0 := int(math.Floor(pos))
	if i0 >= len(buf) {
		return 0
	}
	frac := pos - float64(i0)

	var y1 float64
	if i0+1 < len(buf) {
		y1 = buf[i0+1]
	}

	return LinearInterpolate(buf[i0], y1, frac)
}
