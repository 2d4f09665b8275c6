// SPDX-License-Identifier: MIT

package ndarray

import "fmt"

// Vect calls f on point viewed with the given native shape and returns the
// output flattened into a fresh column vector.
//
// Implementation:
//   - Stage 1: view point as shape (no copy).
//   - Stage 2: call f.
//   - Stage 3: copy f's output Data into a new slice.
//
// Inputs:
//   - f: a pure, shape-aware function (an operator, a gradient, ...).
//   - point: the flat unknown, len(point) == prod(shape).
//   - shape: the caller's native shape.
//
// Returns:
//   - []float64: vectorized output, never aliasing f's output or point.
//
// Errors:
//   - ErrBadShape if point cannot be viewed as shape.
//
// Determinism:
//   - Two calls with the same pure f and point are bit-identical.
//
// Complexity:
//   - Time O(cost(f) + M), Space O(M) for M output elements.
func Vect(f func(Array) Array, point []float64, shape []int) ([]float64, error) {
	in, err := Vector(point).Reshape(shape...)
	if err != nil {
		return nil, ndarrayErrorf(opVect, err)
	}
	out := f(in)
	vec := make([]float64, len(out.Data))
	copy(vec, out.Data)

	return vec, nil
}

// Layout is the index-offset table that stacks a list of arrays into one
// column vector. It is computed once from the channel shapes and never
// changes; Pack and Unpack only read it, so a Layout may be shared.
type Layout struct {
	shapes  [][]int
	offsets []int // len(shapes)+1, offsets[0] == 0
}

// NewLayout records the shapes of arrays.
//
// Errors:
//   - ErrBadShape if an array has an invalid shape or its Data does not
//     match it.
func NewLayout(arrays ...Array) (Layout, error) {
	shapes := make([][]int, len(arrays))
	for i, a := range arrays {
		n, err := shapeSize(a.Shape)
		if err != nil {
			return Layout{}, ndarrayErrorf(opLayout, fmt.Errorf("channel %d: %w", i, err))
		}
		if n != len(a.Data) {
			return Layout{}, ndarrayErrorf(opLayout,
				fmt.Errorf("%w: channel %d holds %d elements for shape %v", ErrBadShape, i, len(a.Data), a.Shape))
		}
		shapes[i] = a.Shape
	}

	return LayoutOf(shapes...)
}

// LayoutOf builds a layout from explicit channel shapes.
//
// Errors:
//   - ErrBadShape if a shape is empty or has a non-positive dimension.
func LayoutOf(shapes ...[]int) (Layout, error) {
	l := Layout{
		shapes:  make([][]int, len(shapes)),
		offsets: make([]int, len(shapes)+1),
	}
	for i, s := range shapes {
		n, err := shapeSize(s)
		if err != nil {
			return Layout{}, ndarrayErrorf(opLayout, fmt.Errorf("channel %d: %w", i, err))
		}
		l.shapes[i] = cloneShape(s)
		l.offsets[i+1] = l.offsets[i] + n
	}

	return l, nil
}

// Len returns the number of channels.
func (l Layout) Len() int { return len(l.shapes) }

// Size returns the length of the stacked vector.
func (l Layout) Size() int {
	if len(l.offsets) == 0 {
		return 0
	}

	return l.offsets[len(l.offsets)-1]
}

// Shape returns the shape of channel i.
func (l Layout) Shape(i int) []int { return cloneShape(l.shapes[i]) }

// Pack stacks arrays into dst (reallocated when too short) following the
// layout order and returns it.
//
// Errors:
//   - ErrChannelMismatch if len(arrays) != Len().
//   - ErrShapeMismatch if any array's shape differs from its slot.
func (l Layout) Pack(dst []float64, arrays []Array) ([]float64, error) {
	if len(arrays) != len(l.shapes) {
		return nil, ndarrayErrorf(opPack,
			fmt.Errorf("%w: got %d arrays, want %d", ErrChannelMismatch, len(arrays), len(l.shapes)))
	}
	for i, a := range arrays {
		if !equalShape(a.Shape, l.shapes[i]) || len(a.Data) != l.offsets[i+1]-l.offsets[i] {
			return nil, ndarrayErrorf(opPack,
				fmt.Errorf("%w: channel %d has shape %v, want %v", ErrShapeMismatch, i, a.Shape, l.shapes[i]))
		}
	}
	dst = reuse(dst, l.Size())
	for i, a := range arrays {
		copy(dst[l.offsets[i]:l.offsets[i+1]], a.Data)
	}

	return dst, nil
}

// Unpack returns views of v, one per channel, with the recorded shapes.
// It panics if len(v) != Size() (programmer error).
func (l Layout) Unpack(v []float64) []Array {
	if len(v) != l.Size() {
		panic(fmt.Sprintf("ndarray: Unpack: vector of length %d, layout size %d", len(v), l.Size()))
	}
	out := make([]Array, len(l.shapes))
	for i, s := range l.shapes {
		out[i] = Array{Shape: s, Data: v[l.offsets[i]:l.offsets[i+1]:l.offsets[i+1]]}
	}

	return out
}

func reuse(v []float64, n int) []float64 {
	if cap(v) < n {
		return make([]float64, n)
	}

	return v[:n]
}
