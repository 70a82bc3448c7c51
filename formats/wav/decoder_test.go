// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"bytes"
	"encoding/binary"
	"errors"
	"io"
	"math"
	"testing"

	"github.com/ik5/audfx/audio"
	"github.com/ik5/audfx/internal/audiotest"
)

func TestDecoder_ValidWAVFile(t *testing.T) {
	t.Parallel()

	wavData := audiotest.WAV(8000, 1, []int16{0, 100, 200, -100, -200, 0})

	src, err := Decoder{}.Decode(bytes.NewReader(wavData))
	if err != nil {
		t.Fatalf("Decode() error = %v, want nil", err)
	}

	if src.SampleRate() != 8000 {
		t.Errorf("SampleRate() = %d, want 8000", src.SampleRate())
	}
	if src.Channels() != 1 {
		t.Errorf("Channels() = %d, want 1", src.Channels())
	}
}

func TestDecoder_StereoWAVFile(t *testing.T) {
	t.Parallel()

	wavData := audiotest.WAV(44100, 2, []int16{100, 200, 300, 400, 500, 600})

	src, err := Decoder{}.Decode(bytes.NewReader(wavData))
	if err != nil {
		t.Fatalf("Decode() error = %v, want nil", err)
	}

	if src.Channels() != 2 {
		t.Errorf("Channels() = %d, want 2", src.Channels())
	}
}

func TestDecoder_NotWAVFile(t *testing.T) {
	t.Parallel()

	_, err := Decoder{}.Decode(bytes.NewReader([]byte("NOT A WAV FILE DATA")))
	if !errors.Is(err, ErrNotWavFile) {
		t.Errorf("Decode() error = %v, want ErrNotWavFile", err)
	}
}

func TestDecoder_NonSeekableReader(t *testing.T) {
	t.Parallel()

	wavData := audiotest.WAV(8000, 1, []int16{16384, -16384})

	// io.MultiReader hides the Seek method.
	src, err := Decoder{}.Decode(io.MultiReader(bytes.NewReader(wavData)))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}

	buf, err := audio.ReadAll(src, 16)
	if err != nil {
		t.Fatalf("ReadAll() error = %v", err)
	}
	if buf.Len() != 2 {
		t.Errorf("Len() = %d, want 2", buf.Len())
	}
}

func TestDecoder_NonPCMFormat(t *testing.T) {
	t.Parallel()

	buf := new(bytes.Buffer)
	buf.WriteString("RIFF")
	_ = binary.Write(buf, binary.LittleEndian, uint32(44))
	buf.WriteString("WAVE")
	buf.WriteString("fmt ")
	_ = binary.Write(buf, binary.LittleEndian, uint32(16))
	_ = binary.Write(buf, binary.LittleEndian, uint16(3)) // IEEE float
	_ = binary.Write(buf, binary.LittleEndian, uint16(1))
	_ = binary.Write(buf, binary.LittleEndian, uint32(8000))
	_ = binary.Write(buf, binary.LittleEndian, uint32(32000))
	_ = binary.Write(buf, binary.LittleEndian, uint16(4))
	_ = binary.Write(buf, binary.LittleEndian, uint16(32))
	buf.WriteString("data")
	_ = binary.Write(buf, binary.LittleEndian, uint32(8))
	_ = binary.Write(buf, binary.LittleEndian, float32(0.5))
	_ = binary.Write(buf, binary.LittleEndian, float32(-0.5))

	if _, err := (Decoder{}).Decode(bytes.NewReader(buf.Bytes())); err == nil {
		t.Error("Decode() error = nil, want error for float WAV")
	}
}

func TestSource_ReadSamples(t *testing.T) {
	t.Parallel()

	wavData := audiotest.WAV(8000, 1, []int16{0, 16384, 32767, -16384, -32768})

	src, err := Decoder{}.Decode(bytes.NewReader(wavData))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}

	buf, err := audio.ReadAll(src, 2)
	if err != nil {
		t.Fatalf("ReadAll() error = %v", err)
	}

	want := []float64{0.0, 0.5, 1.0, -0.5, -1.0}
	if buf.Len() != len(want) {
		t.Fatalf("Len() = %d, want %d", buf.Len(), len(want))
	}
	for i := range want {
		if math.Abs(buf.Samples[i]-want[i]) > 0.001 {
			t.Errorf("Samples[%d] = %v, want ~%v", i, buf.Samples[i], want[i])
		}
	}
}

func TestSource_StereoDownmix(t *testing.T) {
	t.Parallel()

	wavData := audiotest.WAV(8000, 2, []int16{16384, 0, 16384, 0, -16384, -16384})

	src, err := Decoder{}.Decode(bytes.NewReader(wavData))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}

	buf, err := audio.ReadAll(src, 64)
	if err != nil {
		t.Fatalf("ReadAll() error = %v", err)
	}

	want := []float64{0.25, 0.25, -0.5}
	if ok, idx := audiotest.AlmostEqual(buf.Samples, want, 1e-9); !ok {
		t.Errorf("downmix mismatch at %d: got %v, want %v", idx, buf.Samples, want)
	}
}
