// SPDX-License-Identifier: MIT

package mm

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/mmq/criterion"
	"github.com/katalvlaran/mmq/ndarray"
)

// MMMG minimizes Σₖ Jₖ with the majorize-minimize memory-gradient (3MG)
// algorithm, starting from init and updating init.Data in place.
//
// Implementation, per iteration:
//   - Stage 1: g = ∇J(x); record ‖g‖; stop if ‖g‖ < N·tol.
//   - Stage 2: D = [−g, m] with m the previous move (0 at first).
//   - Stage 3: per term, Wₖ = Vₖ·D. The first column is Vₖ·(−g); the second
//     is recombined from the previous Wₖ and step, never re-applied.
//   - Stage 4: A = Σₖ NormMatMajor(Wₖ, x); s = −pinv(A)·Dᵗg.
//   - Stage 5: m = D·s; x ← x + m.
//
// Returns:
//   - Result with the gradient-norm trace (at most max_iter values).
//
// Errors:
//   - ErrNoTerms, ErrNilTerm, ErrEmptyPoint on bad input.
//   - ErrNonFinite when ‖g‖ or A is not finite; the current iterate is
//     returned alongside.
//   - errors from the terms (shape mismatches, ...), wrapped.
//
// Non-convergence is not an error: check Result.Converged.
//
// Complexity:
//   - per iteration, one gradient and one operator application per term,
//     plus O(N + Σₖ Mₖ) work; memory O(N + Σₖ Mₖ), independent of the
//     iteration count.
func MMMG(terms []criterion.Term, init ndarray.Array, opts ...Option) (Result, error) {
	o := gatherOptions(opts...)
	s, err := newSolver(opMMMG, terms, init, o)
	if err != nil {
		return Result{}, err
	}

	n := s.size()
	x := s.point.Data
	grad := make([]float64, n)
	negGrad := make([]float64, n)
	move := make([]float64, n)
	applied := make([]*mat.Dense, len(terms)) // Vₖ·D, Mₖ×2
	step := make([]float64, 2)
	rhs := make([]float64, 2)

	for it := 0; it < o.maxIter; it++ {
		if err = s.gradient(grad); err != nil {
			return s.result(), err
		}
		if err = s.record(floats.Norm(grad, 2)); err != nil {
			return s.result(), err
		}
		if s.converged() {
			break
		}
		floats.ScaleTo(negGrad, -1, grad)

		major := mat.NewSymDense(2, nil)
		for k, t := range terms {
			w, err := s.updateApplied(t, applied[k], negGrad, step)
			if err != nil {
				return s.result(), err
			}
			applied[k] = w
			if w == nil {
				continue
			}
			a, err := t.NormMatMajor(w, s.point)
			if err != nil {
				return s.result(), mmErrorf(opMMMG, err)
			}
			major.AddSym(major, a)
		}

		rhs[0] = -floats.Dot(grad, grad)
		rhs[1] = floats.Dot(move, grad)
		if !pinvSolve(step, major, rhs) {
			return s.result(), mmErrorf(opMMMG,
				fmt.Errorf("%w: subspace majorant at iteration %d", ErrNonFinite, it))
		}
		floats.Scale(-1, step)

		for i := range move {
			move[i] = negGrad[i]*step[0] + move[i]*step[1]
		}
		floats.Add(x, move)
		s.stats.Iterations++
	}

	return s.result(), nil
}

// updateApplied turns prev = Vₖ·[−g_old, m_old] into Vₖ·[−g, m] in place:
// the new second column is prev·step (= Vₖ·m) and the first Vₖ·(−g).
// A term with an empty output gets nil and is skipped.
func (s *solver) updateApplied(t criterion.Term, prev *mat.Dense, negGrad, step []float64) (*mat.Dense, error) {
	vg, err := s.apply(t, negGrad)
	if err != nil {
		return nil, err
	}
	if len(vg) == 0 {
		return nil, nil
	}
	if prev == nil {
		// First iteration: m = 0, so Vₖ·m = 0.
		w := mat.NewDense(len(vg), 2, nil)
		w.SetCol(0, vg)
		return w, nil
	}
	if r, _ := prev.Dims(); r != len(vg) {
		return nil, mmErrorf(s.tag, fmt.Errorf("%w: operator output changed from %d to %d elements",
			criterion.ErrShapeMismatch, r, len(vg)))
	}
	for i, v := range vg {
		prev.Set(i, 1, prev.At(i, 0)*step[0]+prev.At(i, 1)*step[1])
		prev.Set(i, 0, v)
	}

	return prev, nil
}
