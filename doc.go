// SPDX-License-Identifier: MIT

// Package mmq minimizes penalized least-squares objectives
//
//	J(x) = Σₖ μₖ·Σφₖ(Vₖ·x − ωₖ)
//
// with majorize-minimize quadratic (MMQ) algorithms: at each iterate the
// objective is bounded by a quadratic that touches it there, and the step
// minimizing that bound is computed in closed form. There is no line search
// and no step parameter to tune.
//
// 🚀 What is in mmq?
//
//	• potential  — the penalty functions φ (Square, Huber, Hyperbolic,
//	               GemanMcClure, ...) with their Geman–Reynolds coefficients
//	• criterion  — a term μ·Σφ(V·x − ω): operator, potential, weight, mean
//	• mm         — the solvers MMMG (3MG memory gradient) and MMCG
//	               (MM nonlinear conjugate gradient)
//	• ndarray    — shape-tagged buffers and the pack/unpack glue between
//	               native shapes and the flat vectors the solvers work on
//
// ✨ Why MM?
//
//   - Convergence without line search, for convex and non-convex φ alike.
//   - Any linear operator works: supply V and its exact adjoint Vᵗ.
//   - Multi-channel operators (e.g. an image gradient) are first class.
//
// Quick example, 1-D denoising with an edge-preserving penalty:
//
//	data, _ := criterion.NewQuad(criterion.Identity{}, criterion.WithMean(noisy))
//	reg, _ := criterion.New(diff, potential.NewHuber(1), criterion.WithHyper(0.1))
//	res, err := mm.MMMG([]criterion.Term{data, reg}, ndarray.New(noisy.Shape...))
//
// The library ships no concrete operators (convolutions, finite
// differences): callers provide them through criterion.Operator.
//
//	go get github.com/katalvlaran/mmq
package mmq
