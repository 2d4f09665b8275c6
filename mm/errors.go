// SPDX-License-Identifier: MIT

package mm

import (
	"errors"
	"fmt"
)

// Sentinel errors, prefixed "mm: ...". Errors returned by the terms are
// wrapped with the solver tag and stay matchable with errors.Is.
var (
	// ErrNoTerms is returned when a solve gets an empty term list.
	ErrNoTerms = errors.New("mm: no terms")

	// ErrNilTerm is returned when the term list holds a nil term.
	ErrNilTerm = errors.New("mm: nil term")

	// ErrEmptyPoint is returned when the initial point has no element.
	ErrEmptyPoint = errors.New("mm: empty initial point")

	// ErrCurvature is returned by MMCG when the majorant curvature along
	// the search direction is not strictly positive or not finite.
	ErrCurvature = errors.New("mm: non-positive majorant curvature")

	// ErrNonFinite is returned when the gradient norm or the subspace
	// majorant becomes NaN or infinite.
	ErrNonFinite = errors.New("mm: non-finite value")
)

// Operation tags used by mmErrorf.
const (
	opMMMG     = "MMMG"
	opMMCG     = "MMCG"
	opGradient = "Gradient"
	opValue    = "Value"
)

// Panic messages for invalid options.
const (
	panicToleranceInvalid = "mm: WithTolerance: tol must be finite and > 0"
	panicMaxIterNegative  = "mm: WithMaxIter: n must be >= 0"
)

// mmErrorf wraps err with an operation tag. Call only with err != nil.
func mmErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
