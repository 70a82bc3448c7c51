// SPDX-License-Identifier: EPL-2.0

package effects

import "math"

// mixInto blends dry into wet in place: wet = (1-mix)*dry + mix*wet.
// dry may be shorter than wet; missing dry samples count as silence.
func mixInto(wet, dry []float64, mix float64) []float64 {
	for i := range wet {
		var d float64
		if i < len(dry) {
			d = dry[i]
		}
		wet[i] = d*(1-mix) + wet[i]*mix
	}

	return wet
}

// lfo is a unipolar sine oscillator in [0, 1].
func lfo(i int, rate float64, sampleRate int, phase float64) float64 {
	return (1 + math.Sin(2*math.Pi*rate*float64(i)/float64(sampleRate)+phase)) / 2
}

// nyquistClamp keeps freq strictly below the Nyquist frequency.
func nyquistClamp(freq float64, sampleRate int) float64 {
	return min(freq, float64(sampleRate)/2-1)
}
