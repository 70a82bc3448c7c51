// SPDX-License-Identifier: EPL-2.0

package effects

import "math"

// Peak returns the largest absolute sample value of x.
func Peak(x []float64) float64 {
	var peak float64
	for _, v := range x {
		peak = max(peak, math.Abs(v))
	}

	return peak
}

// Normalize scales x so its peak magnitude is 1. Silence is returned as is.
func Normalize(x []float64) []float64 {
	out := make([]float64, len(x))
	copy(out, x)

	peak := Peak(x)
	if peak == 0 {
		return out
	}

	for i := range out {
		out[i] /= peak
	}

	return out
}
