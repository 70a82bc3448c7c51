// SPDX-License-Identifier: EPL-2.0

// Package audfx applies offline effects to audio files.
//
// The pipeline is: decode a file into an audio.Source, reduce it to a mono
// audio.Buffer, hand it to an effects.Dispatcher and optionally quantize or
// write the result as WAV.
//
// # Supported Formats
//
// DefaultRegistry knows these extensions:
//   - wav: 8/16/24/32-bit PCM via formats/wav
//   - aif, aiff: PCM via formats/aiff
//   - mp3 via formats/mp3
//   - ogg (Vorbis) via formats/vorbis
//   - flac via formats/flac
//
// # Quick Start
//
//	src, err := audfx.Open(audfx.DefaultRegistry(), "voice.flac")
//	if err != nil {
//		return err
//	}
//	defer src.Close()
//
//	d := effects.NewDispatcher(effects.WithImpulseLoader(ir.NewLoader("")))
//	out, err := audfx.Process(src, d, effects.Request{
//		Effect:    effects.EffectChorus,
//		Params:    effects.Params{"voices": 4},
//		Normalize: true,
//	})
//	if err != nil {
//		return err
//	}
//
//	return audfx.SaveWAV("voice-chorus.wav", out, 16)
//
// Effects never resample. Reverb requires the impulse response to share the
// input's rate; use Load with a target rate to bring the input in line
// first.
//
// See the effects package for the list of effects and their parameters.
package audfx
