// SPDX-License-Identifier: EPL-2.0

package effects

import (
	"math"

	"github.com/ik5/audfx/utils"
)

// Flanger mixes x with a copy read through a sine modulated delay of up to
// depth seconds. Delayed samples are fed back into the delay line.
func Flanger(x []float64, sampleRate int, rate, depth, feedback, mix float64) []float64 {
	maxDelay := depth * float64(sampleRate)

	line := make([]float64, len(x)+int(math.Ceil(maxDelay))+1)
	copy(line, x)

	wet := make([]float64, len(x))
	for i := range wet {
		pos := float64(i) - maxDelay*lfo(i, rate, sampleRate, 0)
		if pos < 0 {
			continue
		}

		i0 := int(pos)
		delayed := utils.LinearInterpolate(line[i0], line[i0+1], pos-float64(i0))
		wet[i] = delayed
		line[i] += delayed * feedback
	}

	return mixInto(wet, x, mix)
}
