// SPDX-License-Identifier: MIT

package mm

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/mmq/criterion"
	"github.com/katalvlaran/mmq/ndarray"
)

// MMCG minimizes Σₖ Jₖ with the majorize-minimize nonlinear conjugate
// gradient, starting from init and updating init.Data in place.
//
// Implementation:
//   - Setup: r = −∇J(x); record ‖r‖; stop if ‖r‖ < N·tol. Otherwise
//     z = M⁻¹r, d = z, δ = rᵗz.
//   - Per iteration:
//   - Stage 1: c = Σₖ NormMatMajor(Vₖ·d, x), the majorant curvature on d.
//   - Stage 2: α = dᵗr / c; x ← x + α·d.
//   - Stage 3: r = −∇J(x); record ‖r‖; stop if ‖r‖ < N·tol.
//   - Stage 4: δ_old = δ, δ_mid = rᵗz_old, z = M⁻¹r, δ = rᵗz,
//     β = (δ − δ_mid)/δ_old; d = z + β·d if β ≥ 0, else d = z.
//
// Returns:
//   - Result with the residual-norm trace, initial residual first (at most
//     max_iter+1 values).
//
// Errors:
//   - ErrNoTerms, ErrNilTerm, ErrEmptyPoint on bad input.
//   - ErrCurvature when c ≤ 0 or c is not finite. The iterate is left at
//     its last valid value and returned alongside.
//   - ErrNonFinite when ‖r‖ is not finite.
//   - errors from the terms, wrapped.
//
// Non-convergence is not an error: check Result.Converged.
func MMCG(terms []criterion.Term, init ndarray.Array, opts ...Option) (Result, error) {
	o := gatherOptions(opts...)
	s, err := newSolver(opMMCG, terms, init, o)
	if err != nil {
		return Result{}, err
	}

	n := s.size()
	x := s.point.Data
	res := make([]float64, n)
	sec := make([]float64, n)
	dir := make([]float64, n)

	if err = s.residual(res); err != nil {
		return s.result(), err
	}
	if err = s.record(floats.Norm(res, 2)); err != nil || s.converged() {
		return s.result(), err
	}
	s.precond(sec, res)
	copy(dir, sec)
	delta := floats.Dot(res, sec)

	for it := 0; it < o.maxIter; it++ {
		c, err := s.curvature(dir)
		if err != nil {
			return s.result(), err
		}
		if !(c > 0) || math.IsInf(c, 0) {
			o.logger.Warn("mm curvature failure", "solver", s.tag, "iter", it, "curvature", c)
			return s.result(), mmErrorf(opMMCG,
				fmt.Errorf("%w: c = %v at iteration %d", ErrCurvature, c, it))
		}
		floats.AddScaled(x, floats.Dot(dir, res)/c, dir)
		s.stats.Iterations++

		if err = s.residual(res); err != nil {
			return s.result(), err
		}
		if err = s.record(floats.Norm(res, 2)); err != nil {
			return s.result(), err
		}
		if s.converged() {
			break
		}

		// Conjugate direction, no periodic restart.
		deltaOld := delta
		deltaMid := floats.Dot(res, sec)
		s.precond(sec, res)
		delta = floats.Dot(res, sec)
		if beta := (delta - deltaMid) / deltaOld; beta >= 0 {
			for i := range dir {
				dir[i] = sec[i] + beta*dir[i]
			}
		} else {
			copy(dir, sec)
		}
	}

	return s.result(), nil
}

// residual writes r = −∇J(x) into dst.
func (s *solver) residual(dst []float64) error {
	if err := s.gradient(dst); err != nil {
		return err
	}
	floats.Scale(-1, dst)

	return nil
}

// precond writes M⁻¹·r into dst.
func (s *solver) precond(dst, r []float64) {
	s.o.precond(dst, r)
	s.stats.PrecondCalls++
}

// curvature returns Σₖ (Vₖ·d)ᵗ·diag(bₖ)·(Vₖ·d), the scalar majorant
// curvature along d.
func (s *solver) curvature(d []float64) (float64, error) {
	var c float64
	for _, t := range s.terms {
		vd, err := s.apply(t, d)
		if err != nil {
			return 0, err
		}
		if len(vd) == 0 {
			continue
		}
		a, err := t.NormMatMajor(mat.NewDense(len(vd), 1, vd), s.point)
		if err != nil {
			return 0, mmErrorf(s.tag, err)
		}
		c += a.At(0, 0)
	}

	return c, nil
}
