// SPDX-License-Identifier: EPL-2.0

// Package biquad implements second-order IIR sections and the RBJ cookbook
// low/high-pass designs used to build Butterworth cascades.
package biquad

// Coefficients of one second-order section with a0 normalized to 1.
//
//	y  = B0*x + d0
//	d0 = B1*x - A1*y + d1
//	d1 = B2*x - A2*y
type Coefficients struct {
	B0, B1, B2 float64
	A1, A2     float64
}

// Section is a Direct Form II Transposed biquad with its own state.
type Section struct {
	Coefficients

	d0, d1 float64
}

func NewSection(c Coefficients) *Section {
	return &Section{Coefficients: c}
}

func (s *Section) ProcessSample(x float64) float64 {
	y := s.B0*x + s.d0
	s.d0 = s.B1*x - s.A1*y + s.d1
	s.d1 = s.B2*x - s.A2*y

	return y
}

// ProcessBlock filters buf in place.
func (s *Section) ProcessBlock(buf []float64) {
	b0, b1, b2 := s.B0, s.B1, s.B2
	a1, a2 := s.A1, s.A2
	d0, d1 := s.d0, s.d1

	for i, x := range buf {
		y := b0*x + d0
		d0 = b1*x - a1*y + d1
		d1 = b2*x - a2*y
		buf[i] = y
	}

	s.d0, s.d1 = d0, d1
}

func (s *Section) Reset() {
	s.d0, s.d1 = 0, 0
}

// Chain runs samples through several sections in series.
type Chain struct {
	sections []*Section
}

func NewChain(coeffs []Coefficients) *Chain {
	c := &Chain{sections: make([]*Section, len(coeffs))}
	for i, cf := range coeffs {
		c.sections[i] = NewSection(cf)
	}

	return c
}

func (c *Chain) Len() int { return len(c.sections) }

func (c *Chain) ProcessBlock(buf []float64) {
	for _, s := range c.sections {
		s.ProcessBlock(buf)
	}
}

func (c *Chain) Reset() {
	for _, s := range c.sections {
		s.Reset()
	}
}
