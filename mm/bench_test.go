// SPDX-License-Identifier: MIT
package mm_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/mmq/criterion"
	"github.com/katalvlaran/mmq/internal/testops"
	"github.com/katalvlaran/mmq/mm"
	"github.com/katalvlaran/mmq/ndarray"
	"github.com/katalvlaran/mmq/potential"
)

func denoiseTerms(b *testing.B, n int) []criterion.Term {
	b.Helper()
	y := piecewise(rand.New(rand.NewSource(42)), n)
	data, err := criterion.NewQuad(criterion.Identity{}, criterion.WithMean(y))
	if err != nil {
		b.Fatal(err)
	}
	reg, err := criterion.New(testops.Diff1D(), potential.NewHuber(1), criterion.WithHyper(0.1))
	if err != nil {
		b.Fatal(err)
	}
	return []criterion.Term{data, reg}
}

func benchmarkSolve(b *testing.B, solve solveFunc, n int) {
	terms := denoiseTerms(b, n)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := solve(terms, ndarray.New(n)); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkMMMG_Denoise1k(b *testing.B)  { benchmarkSolve(b, mm.MMMG, 1000) }
func BenchmarkMMCG_Denoise1k(b *testing.B)  { benchmarkSolve(b, mm.MMCG, 1000) }
func BenchmarkMMMG_Denoise10k(b *testing.B) { benchmarkSolve(b, mm.MMMG, 10000) }
