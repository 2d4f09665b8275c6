// SPDX-License-Identifier: MIT

package mm

import (
	"io"
	"log/slog"
	"math"

	"github.com/katalvlaran/mmq/ndarray"
)

// Defaults.
const (
	// DefaultTolerance is the relative stopping threshold: a solve stops
	// when the gradient norm falls below N·DefaultTolerance.
	DefaultTolerance = 1e-4

	// DefaultMaxIter bounds the number of iterations.
	DefaultMaxIter = 500
)

// Preconditioner writes M⁻¹·r into dst. dst and r have the same length
// and never alias. It must be linear, symmetric and positive definite.
type Preconditioner func(dst, r []float64)

// Iteration is passed to the WithOnIteration hook each time a solver
// records a norm. X is a view of the live iterate: read it, do not keep
// or modify it.
type Iteration struct {
	Index int     // position of Norm in Result.Norms
	Norm  float64 // gradient (MMMG) or residual (MMCG) norm
	X     ndarray.Array
}

// Option configures a solve. WithX constructors panic only on nonsensical
// values (programmer error).
type Option func(*options)

type options struct {
	tol     float64
	maxIter int
	precond Preconditioner
	logger  *slog.Logger
	onIter  func(Iteration)
}

// WithTolerance sets the relative stopping threshold.
// It panics unless tol is finite and strictly positive.
func WithTolerance(tol float64) Option {
	if math.IsNaN(tol) || math.IsInf(tol, 0) || tol <= 0 {
		panic(panicToleranceInvalid)
	}

	return func(o *options) { o.tol = tol }
}

// WithMaxIter sets the iteration budget. Zero is allowed: MMMG then
// returns init untouched, MMCG only records the initial residual.
func WithMaxIter(n int) Option {
	if n < 0 {
		panic(panicMaxIterNegative)
	}

	return func(o *options) { o.maxIter = n }
}

// WithPreconditioner sets M⁻¹ for MMCG. MMMG ignores it. A nil p restores
// the identity.
func WithPreconditioner(p Preconditioner) Option {
	return func(o *options) { o.precond = p }
}

// WithLogger sets the structured logger. Iterations are logged at Debug,
// curvature failures at Warn. A nil logger discards everything.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) { o.logger = l }
}

// WithOnIteration registers a hook called after each recorded norm, before
// the stopping test.
func WithOnIteration(fn func(Iteration)) Option {
	return func(o *options) { o.onIter = fn }
}

func gatherOptions(user ...Option) options {
	o := options{tol: DefaultTolerance, maxIter: DefaultMaxIter}
	for _, set := range user {
		set(&o)
	}
	if o.precond == nil {
		o.precond = identity
	}
	if o.logger == nil {
		o.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	return o
}

func identity(dst, r []float64) { copy(dst, r) }
