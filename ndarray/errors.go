// SPDX-License-Identifier: MIT

package ndarray

import (
	"errors"
	"fmt"
)

// Sentinel errors. Every message is prefixed with "ndarray: ..."; callers
// match them with errors.Is, wrappers add context with %w.
var (
	// ErrBadShape is returned when a shape has a non-positive dimension or
	// does not describe the number of elements it is paired with.
	ErrBadShape = errors.New("ndarray: invalid shape")

	// ErrShapeMismatch is returned when an array does not have the shape a
	// layout slot expects.
	ErrShapeMismatch = errors.New("ndarray: shape mismatch")

	// ErrChannelMismatch is returned when the number of arrays differs from
	// the number of layout slots.
	ErrChannelMismatch = errors.New("ndarray: channel count mismatch")
)

// Operation tags used by ndarrayErrorf.
const (
	opFromSlice = "FromSlice"
	opReshape   = "Reshape"
	opLayout    = "Layout"
	opPack      = "Pack"
	opVect      = "Vect"
)

// ndarrayErrorf wraps err with an operation tag, keeping it matchable with
// errors.Is. Call only with a non-nil err.
func ndarrayErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
