// SPDX-License-Identifier: EPL-2.0

package effects

import (
	"math"

	"github.com/ik5/audfx/internal/biquad"
)

const (
	toneMinCutoff = 500.0
	toneMaxCutoff = 5000.0
)

// ToneCutoff maps tone in [0, 1] onto the overdrive's lowpass cutoff.
func ToneCutoff(tone float64, sampleRate int) float64 {
	f := toneMinCutoff + tone*(toneMaxCutoff-toneMinCutoff)
	return nyquistClamp(f, sampleRate)
}

// Overdrive soft clips x*drive through tanh. Below full tone a second order
// lowpass darkens the result.
func Overdrive(x []float64, sampleRate int, drive, tone float64) []float64 {
	out := make([]float64, len(x))
	for i, v := range x {
		out[i] = math.Tanh(v * drive)
	}

	if tone < 1 {
		c := biquad.Lowpass(ToneCutoff(tone, sampleRate), biquad.ButterworthQ, float64(sampleRate))
		biquad.NewSection(c).ProcessBlock(out)
	}

	return out
}
