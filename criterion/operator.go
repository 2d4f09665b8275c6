// SPDX-License-Identifier: MIT

package criterion

import "github.com/katalvlaran/mmq/ndarray"

// Operator is a linear map V together with its adjoint Vᵗ.
//
// Forward returns V·x as one array per output channel (a single-output
// operator returns a slice of length one). Adjoint maps the same list
// back to the space of x. Adjoint must be the exact mathematical adjoint
// of Forward, ⟨V·x, e⟩ = ⟨x, Vᵗ·e⟩, or the majorization guarantees are lost.
//
// Implementations must be pure with respect to the call: no mutation of
// their arguments, no hidden state. Both methods may be called
// concurrently from independent solves.
type Operator interface {
	Forward(x ndarray.Array) []ndarray.Array
	Adjoint(e []ndarray.Array) ndarray.Array
}

// Normaler is implemented by operators providing VᵗV·x directly, usually
// cheaper than Adjoint(Forward(x)) (a product of spectra for convolutions).
type Normaler interface {
	Normal(x ndarray.Array) ndarray.Array
}

// Linear adapts a single-output operator given as plain functions.
//
// Fwd and Adj are required. Fwback, when set, computes VᵗV·x.
type Linear struct {
	Fwd    func(x ndarray.Array) ndarray.Array
	Adj    func(e ndarray.Array) ndarray.Array
	Fwback func(x ndarray.Array) ndarray.Array
}

// Forward implements Operator.
func (l Linear) Forward(x ndarray.Array) []ndarray.Array {
	return []ndarray.Array{l.Fwd(x)}
}

// Adjoint implements Operator. It panics unless e has exactly one channel.
func (l Linear) Adjoint(e []ndarray.Array) ndarray.Array {
	if len(e) != 1 {
		panic("criterion: Linear.Adjoint: single-output operator given several channels")
	}

	return l.Adj(e[0])
}

// Normal implements Normaler, falling back to Adj(Fwd(x)).
func (l Linear) Normal(x ndarray.Array) ndarray.Array {
	if l.Fwback != nil {
		return l.Fwback(x)
	}

	return l.Adj(l.Fwd(x))
}

// Stacked adapts a multi-channel operator given as plain functions.
type Stacked struct {
	Fwd func(x ndarray.Array) []ndarray.Array
	Adj func(e []ndarray.Array) ndarray.Array
}

// Forward implements Operator.
func (s Stacked) Forward(x ndarray.Array) []ndarray.Array { return s.Fwd(x) }

// Adjoint implements Operator.
func (s Stacked) Adjoint(e []ndarray.Array) ndarray.Array { return s.Adj(e) }

// Identity is the identity operator. It copies so that callers never
// alias the iterate.
type Identity struct{}

// Forward implements Operator.
func (Identity) Forward(x ndarray.Array) []ndarray.Array {
	return []ndarray.Array{x.Clone()}
}

// Adjoint implements Operator.
func (Identity) Adjoint(e []ndarray.Array) ndarray.Array {
	if len(e) != 1 {
		panic("criterion: Identity.Adjoint: expects a single channel")
	}

	return e[0].Clone()
}

// Normal implements Normaler.
func (Identity) Normal(x ndarray.Array) ndarray.Array { return x.Clone() }

var (
	_ Operator = Linear{}
	_ Operator = Stacked{}
	_ Operator = Identity{}
	_ Normaler = Linear{}
	_ Normaler = Identity{}
)
