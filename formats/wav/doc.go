// SPDX-License-Identifier: EPL-2.0

// Package wav reads and writes WAV files through github.com/go-audio/wav.
//
// The Decoder accepts integer PCM at 8, 16, 24 or 32 bits, any channel
// count and any sample rate, skipping unknown RIFF chunks. 8-bit data is
// treated as unsigned, as the format specifies.
//
//	src, err := wav.Decoder{}.Decode(file)
//	if errors.Is(err, wav.ErrNotWavFile) {
//	    // not RIFF/WAVE
//	}
//
// Encode writes a mono audio.Buffer as 16 or 24-bit PCM, clamping samples
// to [-1, 1]. The writer must be seekable so the RIFF sizes can be patched
// once all data is written:
//
//	out, _ := os.Create("out.wav")
//	defer out.Close()
//	err := wav.Encode(out, buf, 16)
package wav
