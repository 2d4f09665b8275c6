// SPDX-License-Identifier: MIT

package mm

import (
	"time"

	"github.com/katalvlaran/mmq/ndarray"
)

// Result is the outcome of a solve.
type Result struct {
	// X is the last iterate, with the shape of init and sharing its Data.
	X ndarray.Array
	// Norms is the per-iteration trace: gradient norms for MMMG (at most
	// max_iter values), residual norms for MMCG (initial residual first,
	// at most max_iter+1 values).
	Norms []float64
	// Converged reports whether the last norm fell below N·tol.
	Converged bool
	// Stats holds the counters of the solve.
	Stats Stats
}

// Stats holds statistics about a solve.
type Stats struct {
	// Iterations is the number of updates applied to the iterate.
	Iterations int
	// OperatorCalls counts Term.Apply calls on search directions.
	OperatorCalls int
	// GradientCalls counts Term.Gradient calls.
	GradientCalls int
	// PrecondCalls counts preconditioner applications (MMCG).
	PrecondCalls int
	// StartTime is the time the solve started.
	StartTime time.Time
	// Runtime is the duration of the solve.
	Runtime time.Duration
}
