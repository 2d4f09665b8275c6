// SPDX-License-Identifier: MIT

// Package potential provides the scalar penalty functions φ used by
// majorize-minimize criteria μ·Σφ(V·x − ω).
//
// 🚀 What is a potential?
//
//	An elementwise function φ(u) applied to the residual u = V·x − ω. Each
//	potential exposes its value, its derivative φ'(u) and its Geman–Reynolds
//	coefficient φ'(u)/u, the curvature of the tangent quadratic majorant at
//	u. At u = 0 the coefficient is the analytic limit Inf(), never 0/0.
//
// ✨ Variants:
//
//	Square             u²/2                      convex, coercive
//	VminProj(m)        ½·max(m−u, 0)²            convex, coercive
//	VmaxProj(M)        ½·max(u−M, 0)²            convex, coercive
//	Huber(δ)           u² / 2δ|u|−δ²             convex, coercive
//	Hyperbolic(δ)      √(1+u²/δ²) − 1            convex, coercive
//	GemanMcClure(δ)    u²/(2δ²+u²)               non-convex, non-coercive
//	SquareTruncApprox  1 − exp(−u²/2δ²)          non-convex, non-coercive
//	HerbertLeahy(δ)    log(1+u²/δ²)              non-convex, coercive
//
// Convex and Coercive are metadata only; nothing enforces them.
//
// ⚙️ Usage:
//
//	p := potential.NewHuber(1)
//	b := potential.GRCoeffs(p, nil, residual) // φ'(u)/u, elementwise
package potential
