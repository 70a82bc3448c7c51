// SPDX-License-Identifier: EPL-2.0

package effects

import "github.com/ik5/audfx/internal/biquad"

const (
	filterOrder = 4

	// Highpass cutoffs at or below this are treated as "off".
	minHighpass = 20.0

	// Lowpass cutoffs within this distance of Nyquist are treated as "off".
	nyquistMargin = 100.0
)

func clampCutoffs(sampleRate int, lowpass, highpass float64) (float64, float64) {
	top := float64(sampleRate)/2 - 1
	return min(max(lowpass, 1), top), min(max(highpass, 1), top)
}

// FilterConfigValid reports whether Filter would pass any signal for these
// cutoffs. It is false when the clamped highpass is not below the lowpass.
func FilterConfigValid(sampleRate int, lowpass, highpass float64) bool {
	lp, hp := clampCutoffs(sampleRate, lowpass, highpass)
	return hp < lp
}

// Filter applies a 4th order Butterworth highpass followed by a 4th order
// lowpass. An invalid cutoff pair yields silence of the same length.
func Filter(x []float64, sampleRate int, lowpass, highpass float64) []float64 {
	out := make([]float64, len(x))
	if !FilterConfigValid(sampleRate, lowpass, highpass) {
		return out
	}

	lp, hp := clampCutoffs(sampleRate, lowpass, highpass)
	sr := float64(sampleRate)
	copy(out, x)

	if hp > minHighpass {
		biquad.NewChain(biquad.ButterworthHP(hp, filterOrder, sr)).ProcessBlock(out)
	}

	if lp < sr/2-nyquistMargin {
		biquad.NewChain(biquad.ButterworthLP(lp, filterOrder, sr)).ProcessBlock(out)
	}

	return out
}
