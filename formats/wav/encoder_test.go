// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"bytes"
	"errors"
	"testing"

	"github.com/ik5/audfx/audio"
	"github.com/ik5/audfx/internal/audiotest"
)

func TestEncode_RoundTrip(t *testing.T) {
	t.Parallel()

	for _, bitDepth := range []int{16, 24} {
		in := &audio.Buffer{Samples: []float64{0, 0.5, -0.5, 0.25, 1, -1}, SampleRate: 22050}

		w := &audiotest.WriteSeeker{}
		if err := Encode(w, in, bitDepth); err != nil {
			t.Fatalf("Encode(%d) error = %v", bitDepth, err)
		}

		src, err := Decoder{}.Decode(bytes.NewReader(w.Bytes()))
		if err != nil {
			t.Fatalf("Decode() error = %v", err)
		}

		out, err := audio.ReadAll(src, 4)
		if err != nil {
			t.Fatalf("ReadAll() error = %v", err)
		}

		if out.SampleRate != 22050 {
			t.Errorf("SampleRate = %d, want 22050", out.SampleRate)
		}
		if ok, idx := audiotest.AlmostEqual(in.Samples, out.Samples, 1e-4); !ok {
			t.Errorf("%d-bit round trip differs at %d: got %v", bitDepth, idx, out.Samples)
		}
	}
}

func TestEncode_ClampsOutOfRange(t *testing.T) {
	t.Parallel()

	in := &audio.Buffer{Samples: []float64{3, -3}, SampleRate: 8000}

	w := &audiotest.WriteSeeker{}
	if err := Encode(w, in, 16); err != nil {
		t.Fatalf("Encode() error = %v", err)
	}

	src, err := Decoder{}.Decode(bytes.NewReader(w.Bytes()))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	out, err := audio.ReadAll(src, 4)
	if err != nil {
		t.Fatalf("ReadAll() error = %v", err)
	}

	if ok, _ := audiotest.AlmostEqual(out.Samples, []float64{32767.0 / 32768.0, -1}, 1e-9); !ok {
		t.Errorf("clamped samples = %v", out.Samples)
	}
}

func TestEncode_Rejects(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		buf      *audio.Buffer
		bitDepth int
		want     error
	}{
		{"8-bit output", &audio.Buffer{Samples: []float64{0}, SampleRate: 8000}, 8, ErrUnsupportedBitDepth},
		{"zero sample rate", &audio.Buffer{Samples: []float64{0}}, 16, audio.ErrInvalidSampleRate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if err := Encode(&audiotest.WriteSeeker{}, tt.buf, tt.bitDepth); !errors.Is(err, tt.want) {
				t.Errorf("Encode() error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestEncodeInt16_RoundTrip(t *testing.T) {
	t.Parallel()

	w := &audiotest.WriteSeeker{}
	if err := EncodeInt16(w, 8000, []int16{0, 16384, -32768}); err != nil {
		t.Fatalf("EncodeInt16() error = %v", err)
	}

	src, err := Decoder{}.Decode(bytes.NewReader(w.Bytes()))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	out, err := audio.ReadAll(src, 8)
	if err != nil {
		t.Fatalf("ReadAll() error = %v", err)
	}

	if ok, idx := audiotest.AlmostEqual(out.Samples, []float64{0, 0.5, -1}, 1e-9); !ok {
		t.Errorf("mismatch at %d: %v", idx, out.Samples)
	}
}
