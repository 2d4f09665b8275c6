// SPDX-License-Identifier: MIT

package mm

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// rcond is the relative cut below which singular values of the subspace
// majorant are treated as zero.
const rcond = 1e-15

// pinvSolve writes the minimum-norm least-squares solution of a·x = b
// into dst, i.e. x = pinv(a)·b. A zero (rank 0) matrix gives x = 0.
// It reports false when the SVD fails or a is not finite.
func pinvSolve(dst []float64, a *mat.SymDense, b []float64) bool {
	if !finiteSym(a) {
		return false
	}
	var svd mat.SVD
	if !svd.Factorize(a, mat.SVDThin) {
		return false
	}
	rank := svd.Rank(rcond)
	if rank == 0 {
		for i := range dst {
			dst[i] = 0
		}
		return true
	}
	var x mat.VecDense
	svd.SolveVecTo(&x, mat.NewVecDense(len(b), b), rank)
	copy(dst, x.RawVector().Data)

	return true
}

func finiteSym(a *mat.SymDense) bool {
	n := a.SymmetricDim()
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			v := a.At(i, j)
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return false
			}
		}
	}

	return true
}
