// SPDX-License-Identifier: MIT

package criterion

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/mmq/ndarray"
	"github.com/katalvlaran/mmq/potential"
)

// QuadCriterion is the quadratic term μ·‖V·x − ω‖²/2.
//
// Its gradient is μ·(VᵗV·x − Vᵗω), computed with the operator's normal map
// when it implements Normaler and with Vᵗω precomputed once; its majorant
// is the criterion itself, so NormMatMajor does not depend on x.
type QuadCriterion struct {
	*Criterion

	normal func(ndarray.Array) ndarray.Array
	meanT  []float64 // Vᵗω; nil for the zero mean
}

// NewQuad builds μ·‖V·x − ω‖²/2. Options and errors are those of New.
func NewQuad(op Operator, opts ...Option) (*QuadCriterion, error) {
	c, err := newCriterion(opNewQuad, op, potential.NewSquare(), opts...)
	if err != nil {
		return nil, err
	}
	q := &QuadCriterion{Criterion: c}
	if n, ok := op.(Normaler); ok {
		q.normal = n.Normal
	} else {
		q.normal = func(x ndarray.Array) ndarray.Array { return op.Adjoint(op.Forward(x)) }
	}
	if c.mean != nil {
		mt, err := c.Adjoint(c.mean)
		if err != nil {
			return nil, err
		}
		q.meanT = make([]float64, len(mt.Data))
		copy(q.meanT, mt.Data)
	}

	return q, nil
}

// Gradient returns μ·(VᵗV·x − Vᵗω), shaped like x.
func (q *QuadCriterion) Gradient(x ndarray.Array) (ndarray.Array, error) {
	nx := q.normal(x)
	g, err := scaledLike(opGradient, q.hyper, nx.Data, x)
	if err != nil {
		return ndarray.Array{}, err
	}
	if q.meanT != nil {
		if len(q.meanT) != len(g.Data) {
			return ndarray.Array{}, criterionErrorf(opGradient,
				fmt.Errorf("%w: Vᵗω has %d elements for a point of shape %v", ErrShapeMismatch, len(q.meanT), x.Shape))
		}
		floats.AddScaled(g.Data, -q.hyper, q.meanT)
	}

	return g, nil
}

// GRCoeffs returns ones: the quadratic majorant has unit curvature.
// It only evaluates V·x to size the result.
func (q *QuadCriterion) GRCoeffs(x ndarray.Array) ([]float64, error) {
	u, err := q.Apply(x)
	if err != nil {
		return nil, err
	}
	for i := range u {
		u[i] = 1
	}

	return u, nil
}

// NormMatMajor returns μ·WᵗW; x is unused.
//
// Errors:
//   - ErrShapeMismatch when the output layout is known and w's row count
//     differs from it.
func (q *QuadCriterion) NormMatMajor(w *mat.Dense, _ ndarray.Array) (*mat.SymDense, error) {
	r, k := w.Dims()
	if lay := q.layout.Load(); lay != nil && r != lay.Size() {
		return nil, criterionErrorf(opNormMatMajor,
			fmt.Errorf("%w: W has %d rows, output size %d", ErrShapeMismatch, r, lay.Size()))
	}
	if r == 0 {
		return mat.NewSymDense(k, nil), nil
	}
	var s mat.SymDense
	s.SymOuterK(q.hyper, w.T())

	return &s, nil
}
