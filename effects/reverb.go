// SPDX-License-Identifier: EPL-2.0

package effects

import (
	"fmt"

	"github.com/ik5/audfx/internal/conv"
)

// Reverb convolves x with impulse and blends the result with the dry
// signal padded to the same length. Both must share a sample rate.
func Reverb(x []float64, sampleRate int, impulse []float64, impulseRate int, mix float64) ([]float64, error) {
	if sampleRate != impulseRate {
		return nil, &SampleRateMismatchError{Input: sampleRate, ImpulseResponse: impulseRate}
	}

	if len(impulse) == 0 {
		return nil, ErrEmptyImpulseResponse
	}

	if len(x) == 0 {
		return []float64{}, nil
	}

	wet, err := conv.Convolve(x, impulse)
	if err != nil {
		return nil, fmt.Errorf("convolving impulse response: %w", err)
	}

	return mixInto(wet, x, mix), nil
}
