// SPDX-License-Identifier: MIT

package mm

import (
	"fmt"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/mmq/criterion"
	"github.com/katalvlaran/mmq/ndarray"
)

// Gradient returns ∇J(x) = Σₖ ∇Jₖ(x), shaped like x.
//
// Errors:
//   - ErrNoTerms for an empty list, ErrNilTerm for a nil entry.
//   - ndarray.ErrBadShape when x.Data does not match x.Shape.
//   - criterion.ErrShapeMismatch when a term's gradient is not sized like x.
//   - everything the terms return, wrapped.
func Gradient(terms []criterion.Term, x ndarray.Array) (ndarray.Array, error) {
	if err := checkTerms(opGradient, terms); err != nil {
		return ndarray.Array{}, err
	}
	sum := make([]float64, x.Size())
	for _, t := range terms {
		g, err := vectGradient(t, x.Data, x.Shape)
		if err != nil {
			return ndarray.Array{}, mmErrorf(opGradient, err)
		}
		floats.Add(sum, g)
	}

	return ndarray.FromSlice(sum, x.Shape...)
}

// Value returns J(x) = Σₖ Jₖ(x).
//
// Errors: as Gradient.
func Value(terms []criterion.Term, x ndarray.Array) (float64, error) {
	if err := checkTerms(opValue, terms); err != nil {
		return 0, err
	}
	var sum float64
	for _, t := range terms {
		v, err := t.Value(x)
		if err != nil {
			return 0, mmErrorf(opValue, err)
		}
		sum += v
	}

	return sum, nil
}

func checkTerms(tag string, terms []criterion.Term) error {
	if len(terms) == 0 {
		return mmErrorf(tag, ErrNoTerms)
	}
	for i, t := range terms {
		if t == nil {
			return mmErrorf(tag, fmt.Errorf("%w: index %d", ErrNilTerm, i))
		}
	}

	return nil
}

// vectGradient returns the gradient of t at the flat point viewed with the
// native shape, as a fresh flat vector.
func vectGradient(t criterion.Term, point []float64, shape []int) ([]float64, error) {
	var termErr error
	g, err := ndarray.Vect(func(x ndarray.Array) ndarray.Array {
		out, err := t.Gradient(x)
		termErr = err
		return out
	}, point, shape)
	if err != nil {
		return nil, err
	}
	if termErr != nil {
		return nil, termErr
	}
	if len(g) != len(point) {
		return nil, fmt.Errorf("%w: gradient has %d elements for %d unknowns",
			criterion.ErrShapeMismatch, len(g), len(point))
	}

	return g, nil
}

// vectApply returns t.Apply on the flat direction d viewed with the native
// shape, as a fresh packed vector.
func vectApply(t criterion.Term, d []float64, shape []int) ([]float64, error) {
	var termErr error
	v, err := ndarray.Vect(func(x ndarray.Array) ndarray.Array {
		out, err := t.Apply(x)
		termErr = err
		return ndarray.Vector(out)
	}, d, shape)
	if err != nil {
		return nil, err
	}
	if termErr != nil {
		return nil, termErr
	}

	return v, nil
}
