// SPDX-License-Identifier: EPL-2.0

package audiotest

import "math"

// Sine returns n samples of a unit sine at freq Hz.
func Sine(n, sampleRate int, freq float64) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = math.Sin(2 * math.Pi * freq * float64(i) / float64(sampleRate))
	}
	return out
}

// Impulse returns n samples with a single 1.0 at index at.
func Impulse(n, at int) []float64 {
	out := make([]float64, n)
	if at >= 0 && at < n {
		out[at] = 1
	}
	return out
}

// Ramp returns n samples rising linearly from -1 towards 1.
func Ramp(n int) []float64 {
	out := make([]float64, n)
	if n == 1 {
		return out
	}
	for i := range out {
		out[i] = -1 + 2*float64(i)/float64(n-1)
	}
	return out
}

// Peak returns the largest absolute value in x.
func Peak(x []float64) float64 {
	var p float64
	for _, v := range x {
		p = max(p, math.Abs(v))
	}
	return p
}

// RMS returns the root mean square of x.
func RMS(x []float64) float64 {
	if len(x) == 0 {
		return 0
	}
	var sum float64
	for _, v := range x {
		sum += v * v
	}
	return math.Sqrt(sum / float64(len(x)))
}

// AlmostEqual reports whether a and b have the same length and differ by at
// most tol at every index. It returns the first mismatching index or -1.
func AlmostEqual(a, b []float64, tol float64) (bool, int) {
	if len(a) != len(b) {
		return false, -1
	}
	for i := range a {
		if math.Abs(a[i]-b[i]) > tol {
			return false, i
		}
	}
	return true, -1
}
