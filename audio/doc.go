// SPDX-License-Identifier: EPL-2.0

// Package audio provides the sample containers and streaming primitives the
// effect engine is fed from.
//
//   - Buffer: a mono waveform plus its sample rate, the unit every effect
//     consumes and produces
//   - Source: a streaming, interleaved PCM reader returned by the decoders
//   - MonoMixer: reduces a multi-channel Source to mono by averaging
//   - Resampler: explicit sample-rate conversion with cubic interpolation
//   - Registry: decoders keyed by format name
//
// # From file to Buffer
//
// Decoders hand back a Source. ReadAll drains it through a MonoMixer:
//
//	src, _ := wav.Decoder{}.Decode(file)
//	buf, err := audio.ReadAll(src, 4096)
//	// buf.Samples is mono, buf.SampleRate is the file's native rate
//
// # Sample Format
//
// Samples are float64. Decoders produce values in [-1.0, 1.0]; effects may
// push them outside that range and only the final encoder clamps.
//
// # Resampling
//
// Nothing in this module resamples implicitly. When a caller wants a
// different rate it wraps the source itself:
//
//	mono := audio.NewMonoMixer(audio.NewResampler(src, 16000))
//
// # Error Handling
//
// Sources return io.EOF when no more data is available:
//
//	for {
//	    n, err := source.ReadSamples(buf)
//	    if err == io.EOF {
//	        break
//	    }
//	    if err != nil {
//	        return err
//	    }
//	}
package audio
