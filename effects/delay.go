// SPDX-License-Identifier: EPL-2.0

package effects

import "math"

// DelaySamples converts a delay in seconds to a whole number of samples,
// rounding to the nearest sample.
func DelaySamples(delayTime float64, sampleRate int) int {
	n := math.Round(delayTime * float64(sampleRate))
	if n < 0 || math.IsNaN(n) {
		return 0
	}

	return int(n)
}

// Delay adds one copy of x, shifted by delayTime and scaled by feedback, on
// top of the dry signal. The result is longer than x by the delay.
func Delay(x []float64, sampleRate int, delayTime, feedback float64) []float64 {
	return Echo(x, sampleRate, delayTime, feedback, 1)
}

// Echo superimposes repetitions copies of x; copy n is shifted by n delays
// and scaled by feedback^n.
func Echo(x []float64, sampleRate int, delayTime, feedback float64, repetitions int) []float64 {
	d := DelaySamples(delayTime, sampleRate)
	repetitions = max(repetitions, 1)

	out := make([]float64, len(x)+repetitions*d)
	copy(out, x)

	gain := 1.0
	for n := 1; n <= repetitions; n++ {
		gain *= feedback
		seg := out[n*d : n*d+len(x)]
		for i, v := range x {
			seg[i] += v * gain
		}
	}

	return out
}
