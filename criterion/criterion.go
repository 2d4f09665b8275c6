// SPDX-License-Identifier: MIT

package criterion

import (
	"errors"
	"fmt"
	"sync/atomic"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/mmq/ndarray"
	"github.com/katalvlaran/mmq/potential"
)

// Criterion is the term μ·Σφ(V·x − ω).
//
// A Criterion is read-only after construction and safe to share between
// concurrent solves, provided its operator is. The output layout (channel
// shapes and offsets) is fixed by the mean at construction, or by the
// first operator output when the mean is zero.
type Criterion struct {
	op    Operator
	pot   potential.Potential
	hyper float64

	mean   []float64 // packed ω; nil for the zero mean
	layout atomic.Pointer[ndarray.Layout]
}

// New builds the criterion μ·Σφ(V·x − ω) from an operator and a potential.
//
// Implementation:
//   - Stage 1: validate op and pot (pot must supply a non-NaN limit at 0).
//   - Stage 2: resolve options (μ, ω).
//   - Stage 3: when ω is given, build its offset table once and pack it.
//
// Errors:
//   - ErrNilOperator, ErrNilPotential for nil arguments.
//   - ErrSingularLimit when pot.Inf() is NaN.
//   - ErrShapeMismatch when a mean array has an invalid shape.
func New(op Operator, pot potential.Potential, opts ...Option) (*Criterion, error) {
	return newCriterion(opNew, op, pot, opts...)
}

func newCriterion(tag string, op Operator, pot potential.Potential, opts ...Option) (*Criterion, error) {
	if op == nil {
		return nil, criterionErrorf(tag, ErrNilOperator)
	}
	if pot == nil {
		return nil, criterionErrorf(tag, ErrNilPotential)
	}
	if err := potential.Validate(pot); err != nil {
		return nil, criterionErrorf(tag, fmt.Errorf("%w: %w", ErrSingularLimit, err))
	}

	o := gatherOptions(opts...)
	c := &Criterion{op: op, pot: pot, hyper: o.hyper}
	if len(o.mean) > 0 {
		lay, err := ndarray.NewLayout(o.mean...)
		if err != nil {
			return nil, criterionErrorf(tag, wrapShape(err))
		}
		mean, err := lay.Pack(nil, o.mean)
		if err != nil {
			return nil, criterionErrorf(tag, wrapShape(err))
		}
		c.mean = mean
		c.layout.Store(&lay)
	}

	return c, nil
}

// Hyper returns μ.
func (c *Criterion) Hyper() float64 { return c.hyper }

// Potential returns φ.
func (c *Criterion) Potential() potential.Potential { return c.pot }

// Operator returns V.
func (c *Criterion) Operator() Operator { return c.op }

// Apply returns V·x packed into a column vector.
//
// Errors:
//   - ErrChannelMismatch when the operator returns a different number of
//     arrays than the mean holds.
//   - ErrShapeMismatch when an output shape differs from its mean (or from
//     the first output seen, for the zero mean).
func (c *Criterion) Apply(x ndarray.Array) ([]float64, error) {
	outs := c.op.Forward(x)
	lay := c.layout.Load()
	if lay == nil {
		fresh, err := ndarray.NewLayout(outs...)
		if err != nil {
			return nil, criterionErrorf(opApply, wrapShape(err))
		}
		c.layout.CompareAndSwap(nil, &fresh)
		lay = c.layout.Load()
	}
	v, err := lay.Pack(nil, outs)
	if err != nil {
		return nil, criterionErrorf(opApply, wrapShape(err))
	}

	return v, nil
}

// Adjoint returns Vᵗ·e for a packed e.
//
// Errors:
//   - ErrShapeMismatch when len(e) differs from the packed output size, or
//     when the output layout is still unknown (zero mean, no Apply yet).
func (c *Criterion) Adjoint(e []float64) (ndarray.Array, error) {
	lay := c.layout.Load()
	if lay == nil {
		return ndarray.Array{}, criterionErrorf(opAdjoint,
			fmt.Errorf("%w: output layout unknown before the first Apply", ErrShapeMismatch))
	}
	if len(e) != lay.Size() {
		return ndarray.Array{}, criterionErrorf(opAdjoint,
			fmt.Errorf("%w: vector of length %d, output size %d", ErrShapeMismatch, len(e), lay.Size()))
	}

	return c.op.Adjoint(lay.Unpack(e)), nil
}

// residual returns u = V·x − ω in a fresh vector.
func (c *Criterion) residual(x ndarray.Array) ([]float64, error) {
	u, err := c.Apply(x)
	if err != nil {
		return nil, err
	}
	if c.mean != nil {
		floats.Sub(u, c.mean)
	}

	return u, nil
}

// Value returns μ·Σφ(V·x − ω).
func (c *Criterion) Value(x ndarray.Array) (float64, error) {
	u, err := c.residual(x)
	if err != nil {
		return 0, err
	}

	return c.hyper * potential.Sum(c.pot, u), nil
}

// Gradient returns μ·Vᵗ·φ'(V·x − ω), shaped like x.
//
// Errors:
//   - everything Apply returns.
//   - ErrShapeMismatch when the adjoint does not return x.Size() elements.
func (c *Criterion) Gradient(x ndarray.Array) (ndarray.Array, error) {
	u, err := c.residual(x)
	if err != nil {
		return ndarray.Array{}, err
	}
	potential.Gradients(c.pot, u, u)
	adj, err := c.Adjoint(u)
	if err != nil {
		return ndarray.Array{}, err
	}

	return scaledLike(opGradient, c.hyper, adj.Data, x)
}

// GRCoeffs returns b = φ'(u)/u at u = V·x − ω, packed, with b = φ.Inf()
// wherever u = 0.
func (c *Criterion) GRCoeffs(x ndarray.Array) ([]float64, error) {
	u, err := c.residual(x)
	if err != nil {
		return nil, err
	}

	return potential.GRCoeffs(c.pot, u, u), nil
}

// NormMatMajor returns μ·Wᵗ·diag(b)·W, b = GRCoeffs(x).
//
// Implementation:
//   - Stage 1: b ← GRCoeffs(x); check W has len(b) rows.
//   - Stage 2: scale the rows of W by b, multiply by Wᵗ.
//   - Stage 3: symmetrize and scale by μ.
//
// Inputs:
//   - w: M×k matrix V·S, M the packed output size, k the subspace dimension.
//   - x: point where the majorant is tangent.
//
// Returns:
//   - k×k symmetric matrix; 1×1 for a single direction.
//
// Errors:
//   - everything Apply returns.
//   - ErrShapeMismatch when w does not have M rows.
//
// Complexity:
//   - Time O(cost(V) + M·k²), Space O(M·k).
func (c *Criterion) NormMatMajor(w *mat.Dense, x ndarray.Array) (*mat.SymDense, error) {
	b, err := c.GRCoeffs(x)
	if err != nil {
		return nil, err
	}
	r, k := w.Dims()
	if r != len(b) {
		return nil, criterionErrorf(opNormMatMajor,
			fmt.Errorf("%w: W has %d rows, output size %d", ErrShapeMismatch, r, len(b)))
	}
	if r == 0 {
		return mat.NewSymDense(k, nil), nil
	}

	bw := mat.NewDense(r, k, nil)
	bw.Apply(func(i, _ int, v float64) float64 { return b[i] * v }, w)
	var a mat.Dense
	a.Mul(w.T(), bw)

	return symmetrize(&a, c.hyper), nil
}

// symmetrize returns scale·(a + aᵗ)/2 as a SymDense.
func symmetrize(a *mat.Dense, scale float64) *mat.SymDense {
	k, _ := a.Dims()
	s := mat.NewSymDense(k, nil)
	for i := 0; i < k; i++ {
		for j := i; j < k; j++ {
			s.SetSym(i, j, scale*(a.At(i, j)+a.At(j, i))/2)
		}
	}

	return s
}

// scaledLike returns scale·data shaped like x, in a fresh buffer.
func scaledLike(tag string, scale float64, data []float64, x ndarray.Array) (ndarray.Array, error) {
	if len(data) != x.Size() {
		return ndarray.Array{}, criterionErrorf(tag,
			fmt.Errorf("%w: adjoint returned %d elements for a point of shape %v", ErrShapeMismatch, len(data), x.Shape))
	}
	out := make([]float64, len(data))
	floats.ScaleTo(out, scale, data)
	shape := make([]int, len(x.Shape))
	copy(shape, x.Shape)

	return ndarray.Array{Shape: shape, Data: out}, nil
}

// wrapShape maps an ndarray layout error onto the criterion sentinels,
// keeping both matchable.
func wrapShape(err error) error {
	if errors.Is(err, ndarray.ErrChannelMismatch) {
		return fmt.Errorf("%w: %w", ErrChannelMismatch, err)
	}

	return fmt.Errorf("%w: %w", ErrShapeMismatch, err)
}
