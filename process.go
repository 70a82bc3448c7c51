// SPDX-License-Identifier: EPL-2.0

package audfx

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ik5/audfx/audio"
	"github.com/ik5/audfx/effects"
	"github.com/ik5/audfx/formats/aiff"
	"github.com/ik5/audfx/formats/flac"
	"github.com/ik5/audfx/formats/mp3"
	"github.com/ik5/audfx/formats/vorbis"
	"github.com/ik5/audfx/formats/wav"
	"github.com/ik5/audfx/internal/config"
	"github.com/ik5/audfx/utils"
)

var ErrUnknownFormat = errors.New("no decoder registered for format")

// DefaultRegistry returns a registry with every bundled decoder, keyed by
// lower case file extension without the dot.
func DefaultRegistry() *audio.Registry {
	r := audio.NewRegistry()
	r.Register("wav", wav.Decoder{})
	r.Register("aiff", aiff.Decoder{})
	r.Register("aif", aiff.Decoder{})
	r.Register("mp3", mp3.Decoder{})
	r.Register("ogg", vorbis.Decoder{})
	r.Register("flac", flac.Decoder{})

	return r
}

// FormatOf returns the registry key for path.
func FormatOf(path string) string {
	return strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
}

// Open decodes the file at path with the decoder registered for its
// extension. The returned Source owns the file.
func Open(reg *audio.Registry, path string) (audio.Source, error) {
	format := FormatOf(path)
	dec, ok := reg.Get(format)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}

	src, err := dec.Decode(f)
	if err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}

	return &fileSource{Source: src, f: f}, nil
}

// fileSource closes the underlying file even when the decoder does not.
type fileSource struct {
	audio.Source
	f *os.File
}

func (s *fileSource) Close() error {
	err := s.Source.Close()
	if cerr := s.f.Close(); cerr != nil && err == nil && !errors.Is(cerr, os.ErrClosed) {
		err = cerr
	}

	return err
}

// Load drains src into a mono Buffer. A positive targetRate different from
// the source rate resamples on the way in; zero keeps the native rate.
func Load(src audio.Source, targetRate, bufferSize int) (*audio.Buffer, error) {
	if bufferSize <= 0 {
		bufferSize = config.ReadBufferSize
	}

	if targetRate > 0 && targetRate != src.SampleRate() {
		src = audio.NewResampler(src, targetRate)
	}

	return audio.ReadAll(src, bufferSize)
}

// Process reads src, converts it to mono and runs req through d.
func Process(src audio.Source, d *effects.Dispatcher, req effects.Request) (*audio.Buffer, error) {
	in, err := Load(src, 0, config.ReadBufferSize)
	if err != nil {
		return nil, err
	}

	return d.Apply(in, req)
}

// ProcessToMono16 is Process followed by clamping to 16-bit PCM.
func ProcessToMono16(src audio.Source, d *effects.Dispatcher, req effects.Request) ([]int16, int, error) {
	out, err := Process(src, d, req)
	if err != nil {
		return nil, 0, err
	}

	return utils.Float64SliceToInt16(out.Samples), out.SampleRate, nil
}

// SaveWAV writes buf to path as a mono PCM WAV file.
func SaveWAV(path string, buf *audio.Buffer, bitDepth int) error {
	if bitDepth == 0 {
		bitDepth = config.OutputBitDepth
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}

	if err := wav.Encode(f, buf, bitDepth); err != nil {
		_ = f.Close()
		return err
	}

	return f.Close()
}
