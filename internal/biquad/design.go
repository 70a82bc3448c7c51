// SPDX-License-Identifier: EPL-2.0

package biquad

import "math"

// ButterworthQ is the Q of a single second-order section of a Butterworth
// filter.
const ButterworthQ = 1 / math.Sqrt2

func normalizedW0(freq, sampleRate float64) (float64, bool) {
	if sampleRate <= 0 || freq <= 0 || freq >= sampleRate/2 {
		return 0, false
	}

	return 2 * math.Pi * freq / sampleRate, true
}

func normalize(b0, b1, b2, a0, a1, a2 float64) Coefficients {
	return Coefficients{
		B0: b0 / a0,
		B1: b1 / a0,
		B2: b2 / a0,
		A1: a1 / a0,
		A2: a2 / a0,
	}
}

// identity passes the signal through unchanged.
var identity = Coefficients{B0: 1}

// Lowpass designs an RBJ cookbook lowpass section. Frequencies outside
// (0, nyquist) yield a pass-through section.
func Lowpass(freq, q, sampleRate float64) Coefficients {
	w0, ok := normalizedW0(freq, sampleRate)
	if !ok {
		return identity
	}
	if q <= 0 {
		q = ButterworthQ
	}

	cw := math.Cos(w0)
	alpha := math.Sin(w0) / (2 * q)

	return normalize(
		(1-cw)/2, 1-cw, (1-cw)/2,
		1+alpha, -2*cw, 1-alpha,
	)
}

// Highpass designs an RBJ cookbook highpass section.
func Highpass(freq, q, sampleRate float64) Coefficients {
	w0, ok := normalizedW0(freq, sampleRate)
	if !ok {
		return identity
	}
	if q <= 0 {
		q = ButterworthQ
	}

	cw := math.Cos(w0)
	alpha := math.Sin(w0) / (2 * q)

	return normalize(
		(1+cw)/2, -(1+cw), (1+cw)/2,
		1+alpha, -2*cw, 1-alpha,
	)
}

// sectionQ returns the Q of the index-th pole pair of an order-n Butterworth.
func sectionQ(order, index int) float64 {
	theta := math.Pi * float64(2*index+1) / (2 * float64(order))

	s := math.Sin(theta)
	if s == 0 {
		return ButterworthQ
	}

	return 1 / (2 * s)
}

func firstOrderLP(freq, sampleRate float64) Coefficients {
	if _, ok := normalizedW0(freq, sampleRate); !ok {
		return identity
	}

	k := math.Tan(math.Pi * freq / sampleRate)
	norm := 1 / (1 + k)

	return Coefficients{B0: k * norm, B1: k * norm, A1: (k - 1) * norm}
}

func firstOrderHP(freq, sampleRate float64) Coefficients {
	if _, ok := normalizedW0(freq, sampleRate); !ok {
		return identity
	}

	k := math.Tan(math.Pi * freq / sampleRate)
	norm := 1 / (1 + k)

	return Coefficients{B0: norm, B1: -norm, A1: (k - 1) * norm}
}

// ButterworthLP designs an order-n lowpass cascade. Odd orders end with a
// first-order section.
func ButterworthLP(freq float64, order int, sampleRate float64) []Coefficients {
	return butterworth(freq, order, sampleRate, Lowpass, firstOrderLP)
}

// ButterworthHP designs an order-n highpass cascade.
func ButterworthHP(freq float64, order int, sampleRate float64) []Coefficients {
	return butterworth(freq, order, sampleRate, Highpass, firstOrderHP)
}

func butterworth(
	freq float64, order int, sampleRate float64,
	second func(freq, q, sampleRate float64) Coefficients,
	first func(freq, sampleRate float64) Coefficients,
) []Coefficients {
	if order <= 0 {
		return nil
	}

	sections := make([]Coefficients, 0, (order+1)/2)
	for i := order/2 - 1; i >= 0; i-- {
		sections = append(sections, second(freq, sectionQ(order, i), sampleRate))
	}
	if order%2 != 0 {
		sections = append(sections, first(freq, sampleRate))
	}

	return sections
}
