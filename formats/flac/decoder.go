// SPDX-License-Identifier: EPL-2.0

package flac

import (
	"errors"
	"fmt"
	"io"

	"github.com/ik5/audfx/audio"
	"github.com/ik5/audfx/formats/internal/pcm"
	"github.com/mewkiz/flac"
)

// frameReader yields one decoded frame at a time as per-channel samples.
type frameReader interface {
	next() (channels [][]int32, bitsPerSample int, err error)
	close() error
}

type streamReader struct {
	stream *flac.Stream
}

func (r streamReader) next() ([][]int32, int, error) {
	frame, err := r.stream.ParseNext()
	if err != nil {
		return nil, 0, err
	}

	channels := make([][]int32, len(frame.Subframes))
	for i, sub := range frame.Subframes {
		channels[i] = sub.Samples
	}

	return channels, int(frame.BitsPerSample), nil
}

func (r streamReader) close() error { return r.stream.Close() }

type source struct {
	frames     frameReader
	closer     io.Closer
	sampleRate int
	channels   int
	bitDepth   int

	// pending holds the interleaved remainder of the current frame.
	pending []float64
	err     error
}

func (s *source) SampleRate() int { return s.sampleRate }
func (s *source) Channels() int   { return s.channels }

func (s *source) Close() error {
	err := s.frames.close()
	if s.closer != nil {
		if cerr := s.closer.Close(); err == nil {
			err = cerr
		}
	}

	return err
}

func (s *source) fill() {
	chans, bits, err := s.frames.next()
	if err != nil {
		s.err = err
		return
	}

	if len(chans) != s.channels {
		s.err = fmt.Errorf("%w: got %d, want %d", ErrChannelMismatch, len(chans), s.channels)
		return
	}

	if bits == 0 {
		bits = s.bitDepth
	}
	scale := pcm.Scale(bits)

	frames := len(chans[0])
	s.pending = s.pending[:0]
	for i := range frames {
		for _, ch := range chans {
			s.pending = append(s.pending, float64(ch[i])/scale)
		}
	}
}

func (s *source) ReadSamples(dst []float64) (int, error) {
	n := 0
	for n < len(dst) {
		if len(s.pending) == 0 {
			if s.err != nil {
				break
			}
			s.fill()
			continue
		}

		c := copy(dst[n:], s.pending)
		s.pending = s.pending[c:]
		n += c
	}

	if n == 0 && s.err != nil {
		return 0, s.err
	}

	return n, nil
}

type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	stream, err := flac.New(r)
	if err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return nil, fmt.Errorf("%w: truncated stream", ErrUnsupportedFlacLayout)
		}
		return nil, fmt.Errorf("flac: %w", err)
	}

	info := stream.Info
	if info == nil || info.SampleRate == 0 || info.NChannels == 0 {
		_ = stream.Close()
		return nil, ErrUnsupportedFlacLayout
	}

	s := &source{
		frames:     streamReader{stream: stream},
		sampleRate: int(info.SampleRate),
		channels:   int(info.NChannels),
		bitDepth:   int(info.BitsPerSample),
	}
	if c, ok := r.(io.Closer); ok {
		s.closer = c
	}

	return s, nil
}
