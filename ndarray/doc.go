// SPDX-License-Identifier: MIT

// Package ndarray holds the shape-tagged buffers the solvers iterate on and
// the glue that turns them into column vectors and back.
//
// What is here?
//
//	The solvers in package mm treat the unknown as a flat vector of length N
//	whatever its native dimensionality (a 1-D signal, a 2-D image, a stack
//	of channels). Array carries the native shape next to a row-major buffer,
//	so reshaping is free: Flat and Reshape return views over the same Data.
//
// Key pieces:
//   - Array    — row-major float64 buffer with its shape.
//   - Vect     — call a shape-aware function on a flat point, get a flat copy back.
//   - Layout   — index-offset table packing a list of arrays into one vector
//     (multi-channel operator outputs) and unpacking views back.
//
// Usage:
//
//	img := ndarray.New(64, 64)
//	flat := img.Flat()          // shape [4096], same Data
//	lay, _ := ndarray.NewLayout(dx, dy)
//	v, err := lay.Pack(nil, []ndarray.Array{dx, dy})
//	parts := lay.Unpack(v)      // views into v with dx/dy shapes
package ndarray
