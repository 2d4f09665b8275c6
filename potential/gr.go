// SPDX-License-Identifier: MIT

package potential

// GRCoeff returns the Geman–Reynolds coefficient φ'(u)/u of p at u.
//
// Implementation:
//   - Stage 1: delegate to p.GRCoeff when p implements GRCoeffer.
//   - Stage 2: otherwise return p.Inf() at u == 0 and Gradient(u)/u elsewhere.
//
// The zero test masks the singular point before dividing, so no 0/0 is
// ever evaluated.
func GRCoeff(p Potential, u float64) float64 {
	if g, ok := p.(GRCoeffer); ok {
		return g.GRCoeff(u)
	}
	if u == 0 {
		return p.Inf()
	}

	return p.Gradient(u) / u
}

// Values stores φ(u[i]) into dst (reallocated when too short) and returns it.
func Values(p Potential, dst, u []float64) []float64 {
	dst = reuse(dst, len(u))
	for i, v := range u {
		dst[i] = p.Value(v)
	}

	return dst
}

// Sum returns Σᵢ φ(u[i]) without allocating.
func Sum(p Potential, u []float64) float64 {
	var s float64
	for _, v := range u {
		s += p.Value(v)
	}

	return s
}

// Gradients stores φ'(u[i]) into dst (reallocated when too short) and
// returns it. dst may alias u.
func Gradients(p Potential, dst, u []float64) []float64 {
	dst = reuse(dst, len(u))
	for i, v := range u {
		dst[i] = p.Gradient(v)
	}

	return dst
}

// GRCoeffs stores GRCoeff(p, u[i]) into dst (reallocated when too short)
// and returns it. dst may alias u.
func GRCoeffs(p Potential, dst, u []float64) []float64 {
	dst = reuse(dst, len(u))
	if g, ok := p.(GRCoeffer); ok {
		for i, v := range u {
			dst[i] = g.GRCoeff(v)
		}

		return dst
	}
	inf := p.Inf()
	for i, v := range u {
		if v == 0 {
			dst[i] = inf
			continue
		}
		dst[i] = p.Gradient(v) / v
	}

	return dst
}

func reuse(v []float64, n int) []float64 {
	if cap(v) < n {
		return make([]float64, n)
	}

	return v[:n]
}
