// SPDX-License-Identifier: MIT
package potential_test

import (
	"testing"

	"github.com/katalvlaran/mmq/potential"
)

// benchmarkGRCoeffs measures the elementwise coefficient kernel over n residuals.
func benchmarkGRCoeffs(b *testing.B, p potential.Potential, n int) {
	u := linspace(-5, 5, n)
	dst := make([]float64, n)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		dst = potential.GRCoeffs(p, dst, u)
	}
}

// BenchmarkGRCoeffs_Huber uses the closed-form override.
func BenchmarkGRCoeffs_Huber(b *testing.B) {
	benchmarkGRCoeffs(b, potential.NewHuber(1), 1<<16)
}

// divideOnly hides the GRCoeff override of the wrapped potential.
type divideOnly struct{ potential.Potential }

// BenchmarkGRCoeffs_Division uses the generic φ'(u)/u path.
func BenchmarkGRCoeffs_Division(b *testing.B) {
	benchmarkGRCoeffs(b, divideOnly{potential.NewHuber(1)}, 1<<16)
}
