// SPDX-License-Identifier: MIT

// Package criterion binds a penalty potential to a linear operator: the
// building block μ·Σφ(V·x − ω) of the objectives minimized by package mm.
//
// 🚀 What is a criterion?
//
//	A Criterion holds an operator V with its exact adjoint Vᵗ, a potential
//	φ, a hyperparameter μ ≥ 0 and a mean ω. It answers the four questions
//	a majorize-minimize solver asks at a point x:
//	  • Value(x)            μ·Σφ(V·x − ω)
//	  • Gradient(x)         μ·Vᵗ·φ'(V·x − ω)
//	  • GRCoeffs(x)         b = φ'(u)/u at u = V·x − ω
//	  • NormMatMajor(W, x)  μ·Wᵗ·diag(b)·W, for W = V·S
//
//	The last one is the Hessian, restricted to the subspace spanned by S,
//	of the quadratic majorant of the criterion at x. It is what lets the
//	solvers compute their step in closed form.
//
// ✨ Multi-channel means:
//
//	ω may be a single array or a list of arrays (e.g. horizontal and
//	vertical differences of an image). Lists are stacked into one column
//	vector through an index-offset table computed once at construction;
//	operator outputs are packed the same way and adjoint inputs unpacked.
//	Output shapes are checked on every call and never broadcast.
//
// ⚙️ Usage:
//
//	data, _ := criterion.NewQuad(blur, criterion.WithMean(observed))
//	reg, _ := criterion.New(grad2d, potential.NewHuber(1), criterion.WithHyper(0.1))
//	res, err := mm.MMMG([]criterion.Term{data, reg}, init)
//
// QuadCriterion is the φ = u²/2 specialization: it uses the operator's
// normal map VᵗV and a precomputed Vᵗω, and its majorant is exact.
package criterion
