// SPDX-License-Identifier: MIT

package potential

import "math"

// Square is φ(u) = u²/2. Its GR coefficient is exactly 1 everywhere.
type Square struct{}

// NewSquare returns the quadratic potential.
func NewSquare() Square { return Square{} }

func (Square) Value(u float64) float64    { return u * u / 2 }
func (Square) Gradient(u float64) float64 { return u }
func (Square) GRCoeff(float64) float64    { return 1 }
func (Square) Inf() float64               { return 1 }
func (Square) Convex() bool               { return true }
func (Square) Coercive() bool             { return true }
func (Square) Name() string               { return "Square" }

// VminProj is φ(u) = ½·max(vmin − u, 0)², the one-sided penalty that pushes
// u above vmin (a soft lower box constraint).
//
// φ' is 1-Lipschitz, so the majorant curvature is the constant 1. The ratio
// φ'(u)/u is not a valid curvature here: it is negative for u between 0 and
// a positive vmin, and it is not 1 at 0 unless vmin is 0.
type VminProj struct {
	Vmin float64
}

// NewVminProj returns the lower-bound projection potential.
// It panics if vmin is not finite.
func NewVminProj(vmin float64) VminProj {
	checkBound(vmin)

	return VminProj{Vmin: vmin}
}

func (p VminProj) Value(u float64) float64 {
	if u >= p.Vmin {
		return 0
	}
	d := p.Vmin - u

	return d * d / 2
}

func (p VminProj) Gradient(u float64) float64 {
	if u > p.Vmin {
		return 0
	}

	return u - p.Vmin
}

// GRCoeff returns the Lipschitz curvature 1 for every u.
func (VminProj) GRCoeff(float64) float64 { return 1 }

func (VminProj) Inf() float64   { return 1 }
func (VminProj) Convex() bool   { return true }
func (VminProj) Coercive() bool { return true }
func (VminProj) Name() string   { return "VminProj" }

// VmaxProj is φ(u) = ½·max(u − vmax, 0)², the upper-bound counterpart of
// VminProj. Its majorant curvature is also the constant 1.
type VmaxProj struct {
	Vmax float64
}

// NewVmaxProj returns the upper-bound projection potential.
// It panics if vmax is not finite.
func NewVmaxProj(vmax float64) VmaxProj {
	checkBound(vmax)

	return VmaxProj{Vmax: vmax}
}

func (p VmaxProj) Value(u float64) float64 {
	if u <= p.Vmax {
		return 0
	}
	d := u - p.Vmax

	return d * d / 2
}

func (p VmaxProj) Gradient(u float64) float64 {
	if u < p.Vmax {
		return 0
	}

	return u - p.Vmax
}

// GRCoeff returns the Lipschitz curvature 1 for every u.
func (VmaxProj) GRCoeff(float64) float64 { return 1 }

func (VmaxProj) Inf() float64   { return 1 }
func (VmaxProj) Convex() bool   { return true }
func (VmaxProj) Coercive() bool { return true }
func (VmaxProj) Name() string   { return "VmaxProj" }

// Huber is φ(u) = u² for |u| ≤ δ and 2δ|u| − δ² beyond: quadratic near
// zero, linear in the tails, C¹ at ±δ.
type Huber struct {
	Delta float64
}

// NewHuber returns the Huber potential. It panics unless delta is finite
// and positive.
func NewHuber(delta float64) Huber {
	checkDelta(delta)

	return Huber{Delta: delta}
}

func (p Huber) Value(u float64) float64 {
	a := math.Abs(u)
	if a <= p.Delta {
		return u * u
	}

	return 2*p.Delta*a - p.Delta*p.Delta
}

func (p Huber) Gradient(u float64) float64 {
	if math.Abs(u) <= p.Delta {
		return 2 * u
	}

	return 2 * p.Delta * sign(u)
}

func (p Huber) GRCoeff(u float64) float64 {
	a := math.Abs(u)
	if a <= p.Delta {
		return 2
	}

	return 2 * p.Delta / a
}

func (Huber) Inf() float64   { return 2 }
func (Huber) Convex() bool   { return true }
func (Huber) Coercive() bool { return true }
func (Huber) Name() string   { return "Huber" }

// Hyperbolic is φ(u) = √(1 + u²/δ²) − 1, a smooth surrogate of |u|/δ.
type Hyperbolic struct {
	Delta float64
}

// NewHyperbolic returns the hyperbolic potential. It panics unless delta
// is finite and positive.
func NewHyperbolic(delta float64) Hyperbolic {
	checkDelta(delta)

	return Hyperbolic{Delta: delta}
}

// Value uses t/(√(1+t)+1) instead of √(1+t)−1 to keep precision for small u.
func (p Hyperbolic) Value(u float64) float64 {
	t := u * u / (p.Delta * p.Delta)

	return t / (math.Sqrt(1+t) + 1)
}

func (p Hyperbolic) Gradient(u float64) float64 {
	return u * p.GRCoeff(u)
}

func (p Hyperbolic) GRCoeff(u float64) float64 {
	d2 := p.Delta * p.Delta

	return 1 / (d2 * math.Sqrt(1+u*u/d2))
}

func (p Hyperbolic) Inf() float64 { return 1 / (p.Delta * p.Delta) }
func (Hyperbolic) Convex() bool   { return true }
func (Hyperbolic) Coercive() bool { return true }
func (Hyperbolic) Name() string   { return "Hyperbolic" }

// GemanMcClure is φ(u) = u²/(2δ² + u²), bounded and redescending.
type GemanMcClure struct {
	Delta float64
}

// NewGemanMcClure returns the Geman & McClure potential. It panics unless
// delta is finite and positive.
func NewGemanMcClure(delta float64) GemanMcClure {
	checkDelta(delta)

	return GemanMcClure{Delta: delta}
}

func (p GemanMcClure) Value(u float64) float64 {
	u2 := u * u

	return u2 / (2*p.Delta*p.Delta + u2)
}

func (p GemanMcClure) Gradient(u float64) float64 {
	return u * p.GRCoeff(u)
}

func (p GemanMcClure) GRCoeff(u float64) float64 {
	d2 := p.Delta * p.Delta
	den := 2*d2 + u*u

	return 4 * d2 / (den * den)
}

func (p GemanMcClure) Inf() float64 { return 1 / (p.Delta * p.Delta) }
func (GemanMcClure) Convex() bool   { return false }
func (GemanMcClure) Coercive() bool { return false }
func (GemanMcClure) Name() string   { return "GemanMcClure" }

// SquareTruncApprox is φ(u) = 1 − exp(−u²/2δ²), a smooth truncated square.
type SquareTruncApprox struct {
	Delta float64
}

// NewSquareTruncApprox returns the truncated-square approximation. It
// panics unless delta is finite and positive.
func NewSquareTruncApprox(delta float64) SquareTruncApprox {
	checkDelta(delta)

	return SquareTruncApprox{Delta: delta}
}

func (p SquareTruncApprox) Value(u float64) float64 {
	return -math.Expm1(-u * u / (2 * p.Delta * p.Delta))
}

func (p SquareTruncApprox) Gradient(u float64) float64 {
	return u * p.GRCoeff(u)
}

func (p SquareTruncApprox) GRCoeff(u float64) float64 {
	d2 := p.Delta * p.Delta

	return math.Exp(-u*u/(2*d2)) / d2
}

func (p SquareTruncApprox) Inf() float64 { return 1 / (p.Delta * p.Delta) }
func (SquareTruncApprox) Convex() bool   { return false }
func (SquareTruncApprox) Coercive() bool { return false }
func (SquareTruncApprox) Name() string   { return "SquareTruncApprox" }

// HerbertLeahy is φ(u) = log(1 + u²/δ²).
type HerbertLeahy struct {
	Delta float64
}

// NewHerbertLeahy returns the Herbert & Leahy potential. It panics unless
// delta is finite and positive.
func NewHerbertLeahy(delta float64) HerbertLeahy {
	checkDelta(delta)

	return HerbertLeahy{Delta: delta}
}

func (p HerbertLeahy) Value(u float64) float64 {
	return math.Log1p(u * u / (p.Delta * p.Delta))
}

func (p HerbertLeahy) Gradient(u float64) float64 {
	return u * p.GRCoeff(u)
}

func (p HerbertLeahy) GRCoeff(u float64) float64 {
	return 2 / (p.Delta*p.Delta + u*u)
}

// Inf is the analytic limit 2/δ² of 2/(δ²+u²). A +Inf curvature would turn
// every zero-residual entry of the majorant into Inf·0 = NaN.
func (p HerbertLeahy) Inf() float64 { return 2 / (p.Delta * p.Delta) }
func (HerbertLeahy) Convex() bool   { return false }
func (HerbertLeahy) Coercive() bool { return true }
func (HerbertLeahy) Name() string   { return "HerbertLeahy" }

func sign(u float64) float64 {
	switch {
	case u > 0:
		return 1
	case u < 0:
		return -1
	default:
		return 0
	}
}

// Compile-time checks.
var (
	_ Potential = Square{}
	_ Potential = VminProj{}
	_ Potential = VmaxProj{}
	_ Potential = Huber{}
	_ Potential = Hyperbolic{}
	_ Potential = GemanMcClure{}
	_ Potential = SquareTruncApprox{}
	_ Potential = HerbertLeahy{}

	_ GRCoeffer = Square{}
	_ GRCoeffer = VminProj{}
	_ GRCoeffer = VmaxProj{}
	_ GRCoeffer = Huber{}
	_ GRCoeffer = Hyperbolic{}
	_ GRCoeffer = GemanMcClure{}
	_ GRCoeffer = SquareTruncApprox{}
	_ GRCoeffer = HerbertLeahy{}
)
