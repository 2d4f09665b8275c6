// SPDX-License-Identifier: MIT
package ndarray_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mmq/ndarray"
)

// TestFromSlice_Shapes covers valid wraps and the ErrBadShape cases.
func TestFromSlice_Shapes(t *testing.T) {
	data := []float64{1, 2, 3, 4, 5, 6}

	a, err := ndarray.FromSlice(data, 2, 3)
	require.NoError(t, err)
	assert.Equal(t, []int{2, 3}, a.Shape)
	assert.Equal(t, 6, a.Size())
	assert.Equal(t, 2, a.Dims())

	v, err := ndarray.FromSlice(data)
	require.NoError(t, err)
	assert.Equal(t, []int{6}, v.Shape, "no shape means vector")

	_, err = ndarray.FromSlice(data, 4, 2)
	assert.ErrorIs(t, err, ndarray.ErrBadShape)

	_, err = ndarray.FromSlice(data, 0, 6)
	assert.ErrorIs(t, err, ndarray.ErrBadShape)
}

// TestReshape_IsView checks that Reshape and Flat share Data with the source.
func TestReshape_IsView(t *testing.T) {
	a := ndarray.New(2, 3)
	b, err := a.Reshape(3, 2)
	require.NoError(t, err)
	b.Data[4] = 7
	assert.Equal(t, 7.0, a.Data[4])

	f := a.Flat()
	assert.Equal(t, []int{6}, f.Shape)
	f.Data[0] = -1
	assert.Equal(t, -1.0, a.Data[0])

	_, err = a.Reshape(5)
	assert.ErrorIs(t, err, ndarray.ErrBadShape)
}

// TestClone_Independent checks deep copy semantics.
func TestClone_Independent(t *testing.T) {
	a := ndarray.New(3)
	c := a.Clone()
	c.Data[0] = 1
	c.Shape[0] = 9
	assert.Equal(t, 0.0, a.Data[0])
	assert.Equal(t, 3, a.Shape[0])
	assert.True(t, a.SameShape(ndarray.New(3)))
	assert.False(t, a.SameShape(ndarray.New(1, 3)))
}

// TestNew_PanicsOnBadShape documents the programmer-error policy.
func TestNew_PanicsOnBadShape(t *testing.T) {
	assert.Panics(t, func() { ndarray.New(2, -1) })
	assert.Panics(t, func() { ndarray.New() })
}

// TestVect_Idempotent calls Vect twice with the same pure function and point
// and requires bit-identical, non-aliased results.
func TestVect_Idempotent(t *testing.T) {
	transpose := func(x ndarray.Array) ndarray.Array {
		r, c := x.Shape[0], x.Shape[1]
		out := ndarray.New(c, r)
		for i := 0; i < r; i++ {
			for j := 0; j < c; j++ {
				out.Data[j*r+i] = x.Data[i*c+j]
			}
		}
		return out
	}
	point := []float64{0.1, 0.2, 0.3, 1e-17, -4, 5.5}

	v1, err := ndarray.Vect(transpose, point, []int{2, 3})
	require.NoError(t, err)
	v2, err := ndarray.Vect(transpose, point, []int{2, 3})
	require.NoError(t, err)

	assert.Equal(t, v1, v2)
	assert.Equal(t, []float64{0.1, 1e-17, 0.2, -4, 0.3, 5.5}, v1)

	v1[0] = 42
	assert.NotEqual(t, v1[0], v2[0], "outputs must not alias")
	assert.Equal(t, 0.1, point[0], "input untouched")
}

// TestVect_BadShape rejects a point that does not fit the native shape.
func TestVect_BadShape(t *testing.T) {
	id := func(x ndarray.Array) ndarray.Array { return x }
	_, err := ndarray.Vect(id, []float64{1, 2, 3}, []int{2, 2})
	assert.ErrorIs(t, err, ndarray.ErrBadShape)
}

// TestLayout_RoundTrip packs two channels and unpacks views with the
// input shapes and values.
func TestLayout_RoundTrip(t *testing.T) {
	dx, err := ndarray.FromSlice([]float64{1, 2, 3, 4, 5, 6}, 3, 2)
	require.NoError(t, err)
	dy, err := ndarray.FromSlice([]float64{7, 8, 9, 10}, 2, 2)
	require.NoError(t, err)

	lay, err := ndarray.NewLayout(dx, dy)
	require.NoError(t, err)
	assert.Equal(t, 2, lay.Len())
	assert.Equal(t, 10, lay.Size())
	assert.Equal(t, []int{2, 2}, lay.Shape(1))

	v, err := lay.Pack(nil, []ndarray.Array{dx, dy})
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}, v)

	parts := lay.Unpack(v)
	require.Len(t, parts, 2)
	assert.Equal(t, dx.Shape, parts[0].Shape)
	assert.Equal(t, dx.Data, parts[0].Data)
	assert.Equal(t, dy.Shape, parts[1].Shape)
	assert.Equal(t, dy.Data, parts[1].Data)

	// Views: writing through a part lands in v.
	parts[1].Data[0] = -7
	assert.Equal(t, -7.0, v[6])

	// dst reuse.
	buf := make([]float64, 0, 16)
	v2, err := lay.Pack(buf, []ndarray.Array{dx, dy})
	require.NoError(t, err)
	assert.Equal(t, 10, len(v2))
}

// TestLayout_Mismatch covers the channel-count and shape checks.
func TestLayout_Mismatch(t *testing.T) {
	lay, err := ndarray.LayoutOf([]int{2}, []int{3})
	require.NoError(t, err)

	_, err = lay.Pack(nil, []ndarray.Array{ndarray.New(2)})
	assert.ErrorIs(t, err, ndarray.ErrChannelMismatch)

	_, err = lay.Pack(nil, []ndarray.Array{ndarray.New(2), ndarray.New(4)})
	assert.ErrorIs(t, err, ndarray.ErrShapeMismatch)

	_, err = lay.Pack(nil, []ndarray.Array{ndarray.New(2), ndarray.New(3, 1)})
	assert.ErrorIs(t, err, ndarray.ErrShapeMismatch)

	assert.Panics(t, func() { lay.Unpack(make([]float64, 4)) })

	_, err = ndarray.LayoutOf([]int{2}, []int{0, 3})
	assert.ErrorIs(t, err, ndarray.ErrBadShape)

	_, err = ndarray.NewLayout(ndarray.Array{Shape: []int{3}, Data: make([]float64, 2)})
	assert.ErrorIs(t, err, ndarray.ErrBadShape)
}
