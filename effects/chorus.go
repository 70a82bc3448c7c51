// SPDX-License-Identifier: EPL-2.0

package effects

import (
	"math"

	"github.com/ik5/audfx/utils"
)

// Chorus sums voices copies of x, each read through its own modulated delay
// line, and mixes their average with the dry signal.
func Chorus(x []float64, sampleRate int, voices int, rate, depth, mix float64) []float64 {
	voices = max(voices, 1)
	maxDelay := depth * float64(sampleRate)

	wet := make([]float64, len(x))
	for v := range voices {
		vrate := rate * (1 + 0.1*float64(v))
		phase := float64(v) * 2 * math.Pi / float64(voices)

		for i := range wet {
			pos := float64(i) - maxDelay*lfo(i, vrate, sampleRate, phase)
			wet[i] += utils.ReadFractional(x, pos)
		}
	}

	for i := range wet {
		wet[i] /= float64(voices)
	}

	return mixInto(wet, x, mix)
}
