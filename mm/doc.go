// SPDX-License-Identifier: MIT

// Package mm minimizes sums of criteria
//
//	J(x) = Σₖ μₖ·Σφₖ(Vₖ·x − ωₖ)
//
// with two majorize-minimize (MM) algorithms whose step is given in closed
// form by the quadratic majorant of J, so no line search and no step
// tuning is needed.
//
// 🚀 Solvers:
//
//   - MMMG, the 3MG subspace memory-gradient method. Each iteration
//     minimizes the majorant over span{−∇J(x), previous move}. The 2×2
//     subspace system is solved by pseudo-inverse: a singular system yields
//     the minimum-norm step, never an error.
//   - MMCG, the MM nonlinear conjugate gradient with an optional
//     preconditioner M⁻¹. The scalar step is (dᵗr)/c with c the majorant
//     curvature along d; c must stay strictly positive, which holds as soon
//     as one term has a strictly convex potential with positive curvature.
//     A non-positive c is reported as ErrCurvature.
//
// ⚙️ Usage:
//
//	terms := []criterion.Term{data, reg}
//	res, err := mm.MMMG(terms, init, mm.WithTolerance(1e-5))
//	if err != nil { ... }
//	if !res.Converged { ... } // res.Norms holds the per-iteration trace
//
// The iterate is init itself: its Data is updated in place and returned
// as Result.X with init's shape. Copy init first to keep it.
//
// Stopping: a solve stops when ‖∇J(x)‖ < N·tol (N = init.Size()) or after
// WithMaxIter iterations. Running out of iterations is not an error.
//
// Concurrency: a solve is synchronous and owns its iterate. Independent
// solves may run concurrently when their terms' operators are reentrant.
package mm
