// SPDX-License-Identifier: EPL-2.0

package biquad

import (
	"math"
	"testing"
)

func TestSection_Identity(t *testing.T) {
	t.Parallel()

	s := NewSection(Coefficients{B0: 1})
	for _, x := range []float64{0, 1, -0.5, 0.25} {
		if y := s.ProcessSample(x); y != x {
			t.Errorf("ProcessSample(%v) = %v, want %v", x, y, x)
		}
	}
}

func TestSection_ProcessBlockMatchesSample(t *testing.T) {
	t.Parallel()

	c := Lowpass(1000, ButterworthQ, 44100)
	a := NewSection(c)
	b := NewSection(c)

	buf := make([]float64, 64)
	for i := range buf {
		buf[i] = math.Sin(float64(i) * 0.3)
	}
	want := make([]float64, len(buf))
	for i, x := range buf {
		want[i] = a.ProcessSample(x)
	}

	b.ProcessBlock(buf)
	for i := range buf {
		if math.Abs(buf[i]-want[i]) > 1e-12 {
			t.Fatalf("buf[%d] = %v, want %v", i, buf[i], want[i])
		}
	}
}

func TestSection_Reset(t *testing.T) {
	t.Parallel()

	s := NewSection(Lowpass(500, ButterworthQ, 8000))
	first := s.ProcessSample(1)
	s.ProcessSample(0.5)
	s.Reset()

	if got := s.ProcessSample(1); got != first {
		t.Errorf("after Reset ProcessSample(1) = %v, want %v", got, first)
	}
}

func TestDesign_Response(t *testing.T) {
	t.Parallel()

	const sr = 44100.0

	tests := []struct {
		name     string
		sections []Coefficients
		freq     float64
		want     float64
		tol      float64
	}{
		{"lp dc", []Coefficients{Lowpass(1000, ButterworthQ, sr)}, 1, 1, 1e-3},
		{"lp cutoff", []Coefficients{Lowpass(1000, ButterworthQ, sr)}, 1000, 1 / math.Sqrt2, 1e-3},
		{"hp cutoff", []Coefficients{Highpass(1000, ButterworthQ, sr)}, 1000, 1 / math.Sqrt2, 1e-3},
		{"hp nyquist", []Coefficients{Highpass(1000, ButterworthQ, sr)}, sr/2 - 1, 1, 1e-3},
		{"lp4 cutoff", ButterworthLP(2000, 4, sr), 2000, 1 / math.Sqrt2, 1e-3},
		{"hp4 cutoff", ButterworthHP(2000, 4, sr), 2000, 1 / math.Sqrt2, 1e-3},
		{"lp3 cutoff", ButterworthLP(2000, 3, sr), 2000, 1 / math.Sqrt2, 1e-3},
		{"lp4 stopband", ButterworthLP(1000, 4, sr), 10000, 0, 1e-3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := Magnitude(tt.sections, tt.freq, sr)
			if math.Abs(got-tt.want) > tt.tol {
				t.Errorf("|H(%v)| = %v, want %v", tt.freq, got, tt.want)
			}
		})
	}
}

func TestDesign_OutOfRangeIsPassThrough(t *testing.T) {
	t.Parallel()

	for _, freq := range []float64{0, -10, 22050, 30000} {
		if c := Lowpass(freq, ButterworthQ, 44100); c != identity {
			t.Errorf("Lowpass(%v) = %+v, want identity", freq, c)
		}
		if c := Highpass(freq, ButterworthQ, 44100); c != identity {
			t.Errorf("Highpass(%v) = %+v, want identity", freq, c)
		}
	}
}

func TestButterworth_SectionCount(t *testing.T) {
	t.Parallel()

	tests := []struct {
		order int
		want  int
	}{
		{0, 0}, {1, 1}, {2, 1}, {3, 2}, {4, 2}, {8, 4},
	}

	for _, tt := range tests {
		if got := len(ButterworthLP(1000, tt.order, 44100)); got != tt.want {
			t.Errorf("ButterworthLP(order %d) sections = %d, want %d", tt.order, got, tt.want)
		}
	}
}

func TestChain_ProcessBlock(t *testing.T) {
	t.Parallel()

	c := NewChain(ButterworthLP(200, 4, 8000))
	if c.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", c.Len())
	}

	// Steady DC passes a lowpass at unity gain.
	buf := make([]float64, 8000)
	for i := range buf {
		buf[i] = 1
	}
	c.ProcessBlock(buf)

	if math.Abs(buf[len(buf)-1]-1) > 1e-6 {
		t.Errorf("settled DC = %v, want 1", buf[len(buf)-1])
	}
}
