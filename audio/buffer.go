// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"io"
	"time"
)

// maxEmptyReads bounds how many consecutive (0, nil) reads ReadAll tolerates
// before giving up on a source.
const maxEmptyReads = 100

// Buffer is a mono waveform together with its sample rate.
//
// Samples are unbounded floating point values while an effect chain runs;
// only the final encoder clamps them to an integer range.
type Buffer struct {
	Samples    []float64
	SampleRate int
}

// NewBuffer wraps samples without copying them.
func NewBuffer(samples []float64, sampleRate int) (*Buffer, error) {
	b := &Buffer{Samples: samples, SampleRate: sampleRate}
	if err := b.Validate(); err != nil {
		return nil, err
	}

	return b, nil
}

// Validate reports whether the buffer carries a usable sample rate.
func (b *Buffer) Validate() error {
	if b.SampleRate <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidSampleRate, b.SampleRate)
	}

	return nil
}

// Len returns the number of samples.
func (b *Buffer) Len() int { return len(b.Samples) }

// Duration returns the playback length at the buffer's sample rate.
func (b *Buffer) Duration() time.Duration {
	if b.SampleRate <= 0 {
		return 0
	}

	return time.Duration(float64(len(b.Samples)) / float64(b.SampleRate) * float64(time.Second))
}

// Clone returns a deep copy.
func (b *Buffer) Clone() *Buffer {
	out := make([]float64, len(b.Samples))
	copy(out, b.Samples)

	return &Buffer{Samples: out, SampleRate: b.SampleRate}
}

// ReadAll drains src into a mono Buffer. Multi-channel sources are reduced
// by averaging channels. bufSize is the per-read chunk in frames; values
// below 1 fall back to 4096.
func ReadAll(src Source, bufSize int) (*Buffer, error) {
	if src.SampleRate() <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSampleRate, src.SampleRate())
	}
	if bufSize < 1 {
		bufSize = 4096
	}

	mono := NewMonoMixer(src)
	samples := make([]float64, 0, bufSize)
	chunk := make([]float64, bufSize)
	empty := 0

	for {
		n, err := mono.ReadSamples(chunk)
		if n > 0 {
			samples = append(samples, chunk[:n]...)
			empty = 0
		} else if err == nil {
			empty++
			if empty >= maxEmptyReads {
				return nil, fmt.Errorf("reading samples: %w", io.ErrNoProgress)
			}
		}

		if err == io.EOF {
			break
		}

		if err != nil {
			return nil, fmt.Errorf("reading samples: %w", err)
		}
	}

	return &Buffer{Samples: samples, SampleRate: src.SampleRate()}, nil
}

// sliceSource streams a Buffer back out as a mono Source.
type sliceSource struct {
	buf *Buffer
	pos int
}

// NewBufferSource returns a mono Source reading from b.
func NewBufferSource(b *Buffer) Source {
	return &sliceSource{buf: b}
}

func (s *sliceSource) SampleRate() int { return s.buf.SampleRate }
func (s *sliceSource) Channels() int   { return 1 }
func (s *sliceSource) Close() error    { return nil }

func (s *sliceSource) ReadSamples(dst []float64) (int, error) {
	if s.pos >= len(s.buf.Samples) {
		return 0, io.EOF
	}

	n := copy(dst, s.buf.Samples[s.pos:])
	s.pos += n

	if s.pos >= len(s.buf.Samples) {
		return n, io.EOF
	}

	return n, nil
}
