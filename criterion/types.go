// SPDX-License-Identifier: MIT

package criterion

import (
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/mmq/ndarray"
)

// Term is what the solvers in package mm need from a criterion.
// Criterion and QuadCriterion implement it; callers may supply their own.
//
// Vectors exchanged with the solver are packed column vectors: Apply
// returns V·x stacked over all output channels, and Adjoint, GRCoeffs and
// the rows of NormMatMajor's W follow the same packing.
type Term interface {
	// Apply returns V·x, packed.
	Apply(x ndarray.Array) ([]float64, error)
	// Adjoint returns Vᵗ·e for a packed e.
	Adjoint(e []float64) (ndarray.Array, error)
	// Value returns the criterion value at x.
	Value(x ndarray.Array) (float64, error)
	// Gradient returns the gradient at x, shaped like x.
	Gradient(x ndarray.Array) (ndarray.Array, error)
	// GRCoeffs returns the packed Geman–Reynolds coefficients at x.
	GRCoeffs(x ndarray.Array) ([]float64, error)
	// NormMatMajor returns the k×k majorant Hessian on the subspace whose
	// operator image is the M×k matrix w, at point x.
	NormMatMajor(w *mat.Dense, x ndarray.Array) (*mat.SymDense, error)
}

var (
	_ Term = (*Criterion)(nil)
	_ Term = (*QuadCriterion)(nil)
)
