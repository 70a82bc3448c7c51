// SPDX-License-Identifier: EPL-2.0

// Package effects implements the offline effect engine: pure functions that
// turn a mono waveform into a new one, the parameter schema each effect
// accepts and a Dispatcher that routes a Request to the right function.
//
// Every effect takes its input as a []float64 plus a sample rate and returns
// a freshly allocated slice. Nothing is clipped; amplitude may exceed 1 until
// the caller quantizes the result.
//
// # Effects
//
//   - Reverse: sample order reversed
//   - Delay, Echo: one or several attenuated repeats, output grows by the delay
//   - Reverb: full convolution with an impulse response, wet/dry mixed
//   - Filter: 4th order Butterworth highpass then lowpass
//   - Overdrive: tanh soft clip with a tone lowpass
//   - Phaser: LFO swept cascade of first order allpass stages
//   - Flanger: modulated short delay with feedback
//   - Chorus: several modulated delay voices, averaged
//
// Normalize is a separate pass that scales a waveform to unit peak.
//
// # Dispatching
//
//	d := effects.NewDispatcher(effects.WithImpulseLoader(loader))
//	out, err := d.Apply(buf, effects.Request{
//		Effect: effects.EffectEcho,
//		Params: effects.Params{"delay_time": 0.25, "repetitions": 4},
//	})
//
// Unknown effects and unknown parameter names are errors. Out of range values
// are clamped and logged. A filter whose highpass is not below its lowpass
// returns silence rather than failing; FilterConfigValid detects that case.
package effects
