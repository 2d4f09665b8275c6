// SPDX-License-Identifier: MIT

package potential

import (
	"errors"
	"fmt"
	"math"
)

// Potential is the contract of a scalar penalty φ.
//
// Implementations must be stateless and safe for concurrent use. Inf must
// return lim_{u→0} φ'(u)/u exactly: it is the curvature of the majorant
// wherever the residual vanishes.
type Potential interface {
	// Value returns φ(u).
	Value(u float64) float64
	// Gradient returns φ'(u).
	Gradient(u float64) float64
	// Inf returns lim_{u→0} φ'(u)/u.
	Inf() float64
	// Convex reports whether φ is convex (informational).
	Convex() bool
	// Coercive reports whether φ(u) → ∞ as |u| → ∞ (informational).
	Coercive() bool
	// Name returns a short human-readable name.
	Name() string
}

// GRCoeffer is implemented by potentials with a closed-form φ'(u)/u that
// is cheaper or more accurate than the generic division, and by potentials
// whose ratio φ'(u)/u is not a valid majorant curvature (the projections
// return their Lipschitz constant instead). GRCoeff(0) must equal Inf().
type GRCoeffer interface {
	GRCoeff(u float64) float64
}

// ErrSingularLimit is returned by Validate when a potential does not
// supply a usable limit of φ'(u)/u at u = 0.
var ErrSingularLimit = errors.New("potential: undefined limit of φ'(u)/u at 0")

// ErrNilPotential is returned by Validate for a nil potential.
var ErrNilPotential = errors.New("potential: nil potential")

// Validate checks the construction-time contract of p: non-nil and Inf()
// not NaN. A NaN limit would silently poison every majorant built at a
// zero residual.
func Validate(p Potential) error {
	if p == nil {
		return ErrNilPotential
	}
	if math.IsNaN(p.Inf()) {
		return fmt.Errorf("%w: %s", ErrSingularLimit, p.Name())
	}

	return nil
}

// Panic messages for invalid constructor parameters.
const (
	panicDeltaInvalid = "potential: delta must be finite and > 0"
	panicBoundInvalid = "potential: bound must be finite"
)

func checkDelta(delta float64) {
	if math.IsNaN(delta) || math.IsInf(delta, 0) || delta <= 0 {
		panic(panicDeltaInvalid)
	}
}

func checkBound(v float64) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		panic(panicBoundInvalid)
	}
}
