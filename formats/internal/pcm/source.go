// SPDX-License-Identifier: EPL-2.0

// Package pcm adapts go-audio integer PCM readers to audio.Source.
package pcm

import (
	"io"

	goaudio "github.com/go-audio/audio"
)

// IntReader is the part of the go-audio wav/aiff decoders we read from.
type IntReader interface {
	PCMBuffer(buf *goaudio.IntBuffer) (int, error)
}

// Source converts integer PCM from an IntReader into float64 samples.
type Source struct {
	dec        IntReader
	closer     io.Closer
	sampleRate int
	channels   int
	scale      float64
	offset     int
	intBuf     *goaudio.IntBuffer
}

// NewSource wraps dec. Unsigned marks 8-bit WAV style data centred on 128.
func NewSource(dec IntReader, sampleRate, channels, bitDepth int, unsigned bool) *Source {
	s := &Source{
		dec:        dec,
		sampleRate: sampleRate,
		channels:   channels,
		scale:      Scale(bitDepth),
	}
	if unsigned && bitDepth == 8 {
		s.offset = 128
	}

	return s
}

// WithCloser makes Close also close c.
func (s *Source) WithCloser(c io.Closer) *Source {
	s.closer = c
	return s
}

// Scale returns the divisor that maps a signed integer sample of bitDepth
// bits into [-1, 1].
func Scale(bitDepth int) float64 {
	if bitDepth < 1 || bitDepth > 32 {
		bitDepth = 16
	}

	return float64(int64(1) << (bitDepth - 1))
}

func (s *Source) SampleRate() int { return s.sampleRate }
func (s *Source) Channels() int   { return s.channels }

func (s *Source) Close() error {
	if s.closer != nil {
		return s.closer.Close()
	}
	return nil
}

func (s *Source) ReadSamples(dst []float64) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}

	if s.intBuf == nil || cap(s.intBuf.Data) < len(dst) {
		s.intBuf = &goaudio.IntBuffer{
			Data:   make([]int, len(dst)),
			Format: &goaudio.Format{NumChannels: s.channels, SampleRate: s.sampleRate},
		}
	} else {
		s.intBuf.Data = s.intBuf.Data[:len(dst)]
	}

	n, err := s.dec.PCMBuffer(s.intBuf)
	if n == 0 {
		if err != nil && err != io.EOF {
			return 0, err
		}
		return 0, io.EOF
	}

	for i := range n {
		dst[i] = float64(s.intBuf.Data[i]-s.offset) / s.scale
	}

	if n < len(dst) && err == nil {
		return n, io.EOF
	}

	return n, err
}
