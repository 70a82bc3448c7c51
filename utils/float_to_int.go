// SPDX-License-Identifier: EPL-2.0

package utils

// ClampUnit limits x to [-1, 1].
func ClampUnit(x float64) float64 {
	if x > 1 {
		return 1
	}
	if x < -1 {
		return -1
	}
	return x
}

// Float64ToInt16 clamps x to [-1, 1] and scales it to the signed 16-bit
// range. Negative values scale by 32768 so -1 maps to math.MinInt16.
func Float64ToInt16(x float64) int16 {
	x = ClampUnit(x)
	if x < 0 {
		return int16(x * 32768.0)
	}

	return int16(x * 32767.0)
}

// Float64ToPCM clamps x to [-1, 1] and scales it to a signed integer of the
// given bit depth (8, 16, 24 or 32).
func Float64ToPCM(x float64, bitDepth int) int {
	x = ClampUnit(x)
	full := float64(int64(1) << (bitDepth - 1))
	if x < 0 {
		return int(x * full)
	}

	return int(x * (full - 1))
}

// Float64SliceToInt16 converts a whole slice with Float64ToInt16.
func Float64SliceToInt16(src []float64) []int16 {
	out := make([]int16, len(src))
	for i, x := range src {
		out[i] = Float64ToInt16(x)
	}

	return out
}
