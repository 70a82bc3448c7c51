// SPDX-License-Identifier: EPL-2.0

package pcm

import (
	"errors"
	"io"
	"math"
	"testing"

	goaudio "github.com/go-audio/audio"
)

type mockIntReader struct {
	data   []int
	offset int
	err    error
}

func (m *mockIntReader) PCMBuffer(buf *goaudio.IntBuffer) (int, error) {
	if m.err != nil {
		return 0, m.err
	}
	n := copy(buf.Data, m.data[m.offset:])
	m.offset += n
	return n, nil
}

func TestScale(t *testing.T) {
	t.Parallel()

	tests := []struct {
		bits int
		want float64
	}{
		{8, 128},
		{16, 32768},
		{24, 8388608},
		{32, 2147483648},
		{0, 32768},
	}

	for _, tt := range tests {
		if got := Scale(tt.bits); got != tt.want {
			t.Errorf("Scale(%d) = %v, want %v", tt.bits, got, tt.want)
		}
	}
}

func TestSource_ReadSamples(t *testing.T) {
	t.Parallel()

	src := NewSource(&mockIntReader{data: []int{0, 16384, -32768, 32767}}, 8000, 1, 16, false)

	dst := make([]float64, 8)
	n, err := src.ReadSamples(dst)
	if err != io.EOF {
		t.Fatalf("ReadSamples() error = %v, want io.EOF on short read", err)
	}
	if n != 4 {
		t.Fatalf("ReadSamples() n = %d, want 4", n)
	}

	want := []float64{0, 0.5, -1, 32767.0 / 32768.0}
	for i := range want {
		if math.Abs(dst[i]-want[i]) > 1e-12 {
			t.Errorf("dst[%d] = %v, want %v", i, dst[i], want[i])
		}
	}

	n, err = src.ReadSamples(dst)
	if n != 0 || err != io.EOF {
		t.Errorf("ReadSamples() after end = (%d, %v), want (0, io.EOF)", n, err)
	}
}

func TestSource_Unsigned8Bit(t *testing.T) {
	t.Parallel()

	src := NewSource(&mockIntReader{data: []int{128, 0, 192}}, 8000, 1, 8, true)

	dst := make([]float64, 3)
	if _, err := src.ReadSamples(dst); err != nil && err != io.EOF {
		t.Fatalf("ReadSamples() error = %v", err)
	}

	want := []float64{0, -1, 0.5}
	for i := range want {
		if dst[i] != want[i] {
			t.Errorf("dst[%d] = %v, want %v", i, dst[i], want[i])
		}
	}
}

func TestSource_PropagatesError(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")
	src := NewSource(&mockIntReader{err: boom}, 8000, 1, 16, false)

	if _, err := src.ReadSamples(make([]float64, 4)); !errors.Is(err, boom) {
		t.Errorf("ReadSamples() error = %v, want %v", err, boom)
	}
}

type closeCounter struct{ n int }

func (c *closeCounter) Close() error {
	c.n++
	return nil
}

func TestSource_Close(t *testing.T) {
	t.Parallel()

	c := &closeCounter{}
	src := NewSource(&mockIntReader{}, 8000, 1, 16, false).WithCloser(c)

	if err := src.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
	if c.n != 1 {
		t.Errorf("closer called %d times, want 1", c.n)
	}
}
