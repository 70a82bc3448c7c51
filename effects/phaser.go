// SPDX-License-Identifier: EPL-2.0

package effects

import "math"

const (
	phaserMinFreq = 200.0
	phaserMaxFreq = 2000.0
)

// phaserSweep returns the allpass break frequency for every sample.
func phaserSweep(n, sampleRate int, rate, depth float64) []float64 {
	sweep := make([]float64, n)
	for i := range sweep {
		f := phaserMinFreq + (phaserMaxFreq-phaserMinFreq)*depth*lfo(i, rate, sampleRate, 0)
		sweep[i] = nyquistClamp(f, sampleRate)
	}

	return sweep
}

func allpassCoefficient(freq float64, sampleRate int) float64 {
	t := math.Tan(math.Pi * freq / float64(sampleRate))
	return (t - 1) / (t + 1)
}

// Phaser runs x through a cascade of first order allpass filters whose
// break frequency follows a sine LFO.
func Phaser(x []float64, sampleRate int, rate, depth float64, stages int, feedback, mix float64) []float64 {
	sweep := phaserSweep(len(x), sampleRate, rate, depth)
	coeff := make([]float64, len(x))
	for i, f := range sweep {
		coeff[i] = allpassCoefficient(f, sampleRate)
	}

	wet := make([]float64, len(x))
	copy(wet, x)

	for range max(stages, 1) {
		var x1, y1 float64
		for i, in := range wet {
			a := coeff[i]
			y := a*in + x1 - a*y1
			x1, y1 = in, y
			wet[i] = y
		}
	}

	for i, v := range x {
		wet[i] += feedback * v
	}

	return mixInto(wet, x, mix)
}
