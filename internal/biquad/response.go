// SPDX-License-Identifier: EPL-2.0

package biquad

import (
	"math"
	"math/cmplx"
)

// Response returns the complex frequency response of c at freq.
func (c Coefficients) Response(freq, sampleRate float64) complex128 {
	w := 2 * math.Pi * freq / sampleRate
	z1 := cmplx.Exp(complex(0, -w))
	z2 := z1 * z1

	num := complex(c.B0, 0) + complex(c.B1, 0)*z1 + complex(c.B2, 0)*z2
	den := 1 + complex(c.A1, 0)*z1 + complex(c.A2, 0)*z2

	return num / den
}

// Magnitude returns |H(f)| of a cascade.
func Magnitude(sections []Coefficients, freq, sampleRate float64) float64 {
	m := 1.0
	for _, c := range sections {
		m *= cmplx.Abs(c.Response(freq, sampleRate))
	}

	return m
}
