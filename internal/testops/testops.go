// SPDX-License-Identifier: MIT

// Package testops provides small linear operators used as fixtures by the
// tests of criterion and mm. Operators are not part of the public API.
package testops

import (
	"math/cmplx"

	"gonum.org/v1/gonum/dsp/fourier"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/mmq/criterion"
	"github.com/katalvlaran/mmq/ndarray"
)

// Diff1D returns the first-difference operator on vectors:
// (V·x)[i] = x[i+1] − x[i], of length n−1.
func Diff1D() criterion.Linear {
	return criterion.Linear{
		Fwd: func(x ndarray.Array) ndarray.Array {
			n := x.Size()
			out := make([]float64, n-1)
			for i := range out {
				out[i] = x.Data[i+1] - x.Data[i]
			}
			return ndarray.Vector(out)
		},
		Adj: func(e ndarray.Array) ndarray.Array {
			m := e.Size()
			out := make([]float64, m+1)
			for j := range out {
				var prev, cur float64
				if j > 0 {
					prev = e.Data[j-1]
				}
				if j < m {
					cur = e.Data[j]
				}
				out[j] = prev - cur
			}
			return ndarray.Vector(out)
		},
	}
}

// Grad2D returns the two-channel difference operator on r×c images:
// channel 0 differences along rows, shape (r−1)×c; channel 1 along
// columns, shape r×(c−1).
func Grad2D() criterion.Stacked {
	return criterion.Stacked{
		Fwd: func(x ndarray.Array) []ndarray.Array {
			r, c := x.Shape[0], x.Shape[1]
			dr := ndarray.New(r-1, c)
			for i := 0; i < r-1; i++ {
				for j := 0; j < c; j++ {
					dr.Data[i*c+j] = x.Data[(i+1)*c+j] - x.Data[i*c+j]
				}
			}
			dc := ndarray.New(r, c-1)
			for i := 0; i < r; i++ {
				for j := 0; j < c-1; j++ {
					dc.Data[i*(c-1)+j] = x.Data[i*c+j+1] - x.Data[i*c+j]
				}
			}
			return []ndarray.Array{dr, dc}
		},
		Adj: func(e []ndarray.Array) ndarray.Array {
			dr, dc := e[0], e[1]
			r, c := dr.Shape[0]+1, dr.Shape[1]
			out := ndarray.New(r, c)
			for i := 0; i < r-1; i++ {
				for j := 0; j < c; j++ {
					v := dr.Data[i*c+j]
					out.Data[(i+1)*c+j] += v
					out.Data[i*c+j] -= v
				}
			}
			for i := 0; i < r; i++ {
				for j := 0; j < c-1; j++ {
					v := dc.Data[i*(c-1)+j]
					out.Data[i*c+j+1] += v
					out.Data[i*c+j] -= v
				}
			}
			return out
		},
	}
}

// Matrix returns the operator x ↦ A·x for a dense A, with VᵗV·x computed
// as Aᵗ(A·x).
func Matrix(a *mat.Dense) criterion.Linear {
	fwd := func(x ndarray.Array) ndarray.Array {
		var y mat.VecDense
		y.MulVec(a, mat.NewVecDense(x.Size(), x.Data))
		return ndarray.Vector(y.RawVector().Data)
	}
	adj := func(e ndarray.Array) ndarray.Array {
		var y mat.VecDense
		y.MulVec(a.T(), mat.NewVecDense(e.Size(), e.Data))
		return ndarray.Vector(y.RawVector().Data)
	}

	return criterion.Linear{Fwd: fwd, Adj: adj}
}

// CircConv returns the circular convolution by the kernel h (zero padded
// to n), diagonalized by the real FFT: forward multiplies the spectrum by
// H, adjoint by conj(H), the normal map by |H|².
func CircConv(h []float64, n int) criterion.Linear {
	fft := fourier.NewFFT(n)
	padded := make([]float64, n)
	copy(padded, h)
	spectrum := fft.Coefficients(nil, padded)

	filter := func(x ndarray.Array, gain func(complex128) complex128) ndarray.Array {
		c := fft.Coefficients(nil, x.Data)
		for k := range c {
			c[k] *= gain(spectrum[k])
		}
		out := fft.Sequence(nil, c)
		floats.Scale(1/float64(n), out)
		return ndarray.Vector(out)
	}

	return criterion.Linear{
		Fwd: func(x ndarray.Array) ndarray.Array {
			return filter(x, func(h complex128) complex128 { return h })
		},
		Adj: func(e ndarray.Array) ndarray.Array {
			return filter(e, cmplx.Conj)
		},
		Fwback: func(x ndarray.Array) ndarray.Array {
			return filter(x, func(h complex128) complex128 {
				a := cmplx.Abs(h)
				return complex(a*a, 0)
			})
		},
	}
}
