// SPDX-License-Identifier: MIT
package testops_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/mmq/criterion"
	"github.com/katalvlaran/mmq/internal/testops"
	"github.com/katalvlaran/mmq/ndarray"
)

func randArray(rnd *rand.Rand, shape ...int) ndarray.Array {
	a := ndarray.New(shape...)
	for i := range a.Data {
		a.Data[i] = rnd.NormFloat64()
	}
	return a
}

// dotAdjoint returns ⟨V·x, e⟩ and ⟨x, Vᵗ·e⟩ for random x and e.
func dotAdjoint(t *testing.T, rnd *rand.Rand, op criterion.Operator, shape ...int) (float64, float64) {
	t.Helper()
	x := randArray(rnd, shape...)
	vx := op.Forward(x)
	e := make([]ndarray.Array, len(vx))
	var lhs float64
	for i, out := range vx {
		e[i] = randArray(rnd, out.Shape...)
		lhs += floats.Dot(out.Data, e[i].Data)
	}
	vte := op.Adjoint(e)
	require.Equal(t, x.Size(), vte.Size())

	return lhs, floats.Dot(x.Data, vte.Data)
}

// TestOperators_Adjoint checks ⟨V·x, e⟩ = ⟨x, Vᵗ·e⟩ for every fixture.
func TestOperators_Adjoint(t *testing.T) {
	rnd := rand.New(rand.NewSource(1))

	a := mat.NewDense(7, 5, nil)
	for i := 0; i < 7; i++ {
		for j := 0; j < 5; j++ {
			a.Set(i, j, rnd.NormFloat64())
		}
	}

	cases := []struct {
		name  string
		op    criterion.Operator
		shape []int
	}{
		{"Identity", criterion.Identity{}, []int{9}},
		{"Diff1D", testops.Diff1D(), []int{12}},
		{"Grad2D", testops.Grad2D(), []int{6, 4}},
		{"Matrix", testops.Matrix(a), []int{5}},
		{"CircConv", testops.CircConv([]float64{0.5, 0.3, 0.2}, 16), []int{16}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			lhs, rhs := dotAdjoint(t, rnd, tc.op, tc.shape...)
			assert.InDelta(t, lhs, rhs, 1e-10)
		})
	}
}

// TestOperators_Normal checks the Fwback shortcuts against Adj∘Fwd.
func TestOperators_Normal(t *testing.T) {
	rnd := rand.New(rand.NewSource(2))
	conv := testops.CircConv([]float64{1, -0.4, 0.1}, 32)
	x := randArray(rnd, 32)

	got := conv.Normal(x)
	want := conv.Adj(conv.Fwd(x))
	assert.InDeltaSlice(t, want.Data, got.Data, 1e-10)

	d := testops.Diff1D()
	y := randArray(rnd, 8)
	assert.InDeltaSlice(t, d.Adj(d.Fwd(y)).Data, d.Normal(y).Data, 0)
}

// TestCircConv_Impulse checks that convolving a unit impulse returns the kernel.
func TestCircConv_Impulse(t *testing.T) {
	conv := testops.CircConv([]float64{0.5, 0.3, 0.2}, 8)
	delta := ndarray.New(8)
	delta.Data[0] = 1
	out := conv.Fwd(delta)
	assert.InDeltaSlice(t, []float64{0.5, 0.3, 0.2, 0, 0, 0, 0, 0}, out.Data, 1e-12)
}
