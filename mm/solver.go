// SPDX-License-Identifier: MIT

package mm

import (
	"fmt"
	"math"
	"time"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/mmq/criterion"
	"github.com/katalvlaran/mmq/ndarray"
)

// solver is the state shared by MMMG and MMCG for one solve.
type solver struct {
	tag   string
	terms []criterion.Term
	point ndarray.Array // the iterate; Data aliases init.Data
	o     options

	norms []float64
	stats Stats
}

// newSolver validates the inputs and returns the solve state.
//
// Errors:
//   - ErrNoTerms, ErrNilTerm for a bad term list.
//   - ErrEmptyPoint for a zero-size init.
//   - ndarray.ErrBadShape when init.Data does not match init.Shape.
func newSolver(tag string, terms []criterion.Term, init ndarray.Array, o options) (*solver, error) {
	if err := checkTerms(tag, terms); err != nil {
		return nil, err
	}
	if init.Size() == 0 {
		return nil, mmErrorf(tag, ErrEmptyPoint)
	}
	point, err := ndarray.FromSlice(init.Data, init.Shape...)
	if err != nil {
		return nil, mmErrorf(tag, err)
	}

	return &solver{
		tag:   tag,
		terms: terms,
		point: point,
		o:     o,
		stats: Stats{StartTime: time.Now()},
	}, nil
}

// size returns N, the number of unknowns.
func (s *solver) size() int { return s.point.Size() }

// threshold returns the absolute stopping threshold N·tol.
func (s *solver) threshold() float64 { return float64(s.size()) * s.o.tol }

// gradient writes Σₖ ∇Jₖ(x) into dst.
func (s *solver) gradient(dst []float64) error {
	for i := range dst {
		dst[i] = 0
	}
	for _, t := range s.terms {
		g, err := vectGradient(t, s.point.Data, s.point.Shape)
		s.stats.GradientCalls++
		if err != nil {
			return mmErrorf(s.tag, err)
		}
		floats.Add(dst, g)
	}

	return nil
}

// apply returns Vₖ·d, packed, for a flat direction d.
func (s *solver) apply(t criterion.Term, d []float64) ([]float64, error) {
	v, err := vectApply(t, d, s.point.Shape)
	s.stats.OperatorCalls++
	if err != nil {
		return nil, mmErrorf(s.tag, err)
	}

	return v, nil
}

// record appends norm to the trace, then logs it and calls the hook.
// It reports ErrNonFinite for a NaN or infinite norm.
func (s *solver) record(norm float64) error {
	idx := len(s.norms)
	s.norms = append(s.norms, norm)
	s.o.logger.Debug("mm iteration", "solver", s.tag, "iter", idx, "norm", norm)
	if s.o.onIter != nil {
		s.o.onIter(Iteration{Index: idx, Norm: norm, X: s.point})
	}
	if math.IsNaN(norm) || math.IsInf(norm, 0) {
		return mmErrorf(s.tag, fmt.Errorf("%w: norm %v at iteration %d", ErrNonFinite, norm, idx))
	}

	return nil
}

// converged reports whether the last recorded norm is below N·tol.
func (s *solver) converged() bool {
	return len(s.norms) > 0 && s.norms[len(s.norms)-1] < s.threshold()
}

// result closes the stats and builds the Result.
func (s *solver) result() Result {
	s.stats.Runtime = time.Since(s.stats.StartTime)
	conv := s.converged()
	s.o.logger.Debug("mm stop",
		"solver", s.tag,
		"iterations", s.stats.Iterations,
		"converged", conv,
		"runtime", s.stats.Runtime,
	)

	return Result{X: s.point, Norms: s.norms, Converged: conv, Stats: s.stats}
}
