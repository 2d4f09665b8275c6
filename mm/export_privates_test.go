// SPDX-License-Identifier: MIT

package mm

// Test bridge: exposes the subspace pseudo-inverse solve to mm_test only.
// The file ends in _test.go, so it never reaches production builds.

// PinvSolve_TestOnly wraps pinvSolve.
var PinvSolve_TestOnly = pinvSolve
