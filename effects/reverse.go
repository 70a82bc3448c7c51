// SPDX-License-Identifier: EPL-2.0

package effects

// Reverse returns x in reverse order.
func Reverse(x []float64) []float64 {
	out := make([]float64, len(x))
	for i, v := range x {
		out[len(x)-1-i] = v
	}

	return out
}
