// SPDX-License-Identifier: MIT

package criterion

import (
	"errors"
	"fmt"
)

// Sentinel errors, prefixed "criterion: ...". Errors coming from package
// ndarray are wrapped so that both sentinels match with errors.Is.
var (
	// ErrNilOperator is returned when a criterion is built without operator.
	ErrNilOperator = errors.New("criterion: nil operator")

	// ErrNilPotential is returned when a criterion is built without potential.
	ErrNilPotential = errors.New("criterion: nil potential")

	// ErrShapeMismatch is returned when an operator output, an adjoint output
	// or a subspace matrix does not have the shape fixed by the mean.
	ErrShapeMismatch = errors.New("criterion: shape mismatch")

	// ErrChannelMismatch is returned when the operator returns a number of
	// arrays different from the number of mean arrays.
	ErrChannelMismatch = errors.New("criterion: channel count mismatch")

	// ErrSingularLimit is returned at construction when the potential has
	// no usable limit of φ'(u)/u at 0.
	ErrSingularLimit = errors.New("criterion: potential limit at 0 is undefined")
)

// Operation tags used by criterionErrorf.
const (
	opNew          = "New"
	opNewQuad      = "NewQuad"
	opApply        = "Apply"
	opAdjoint      = "Adjoint"
	opGradient     = "Gradient"
	opNormMatMajor = "NormMatMajor"
)

// Panic messages for invalid options.
const (
	panicHyperInvalid = "criterion: WithHyper: mu must be finite and >= 0"
)

// criterionErrorf wraps err with an operation tag. Call only with err != nil.
func criterionErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
