// SPDX-License-Identifier: MIT

package criterion

import (
	"math"

	"github.com/katalvlaran/mmq/ndarray"
)

// DefaultHyper is the weight μ of a criterion built without WithHyper.
const DefaultHyper = 1.0

// Option configures a criterion at construction. Constructors panic only
// on nonsensical values (programmer error).
type Option func(*options)

type options struct {
	hyper float64         // μ ≥ 0; DefaultHyper
	mean  []ndarray.Array // ω; nil means the zero mean
}

// WithHyper sets the weight μ. It panics if mu is negative, NaN or infinite.
func WithHyper(mu float64) Option {
	if math.IsNaN(mu) || math.IsInf(mu, 0) || mu < 0 {
		panic(panicHyperInvalid)
	}

	return func(o *options) { o.hyper = mu }
}

// WithMean sets the mean ω. One array gives a single-output criterion;
// several arrays give a multi-channel criterion whose operator must return
// the same number of arrays, with the same shapes, in the same order.
// The arrays are copied at construction.
func WithMean(arrays ...ndarray.Array) Option {
	return func(o *options) { o.mean = arrays }
}

func gatherOptions(user ...Option) options {
	o := options{hyper: DefaultHyper}
	for _, set := range user {
		set(&o) // last-writer-wins
	}

	return o
}
