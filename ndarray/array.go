// SPDX-License-Identifier: MIT

package ndarray

import "fmt"

// Array is a dense row-major buffer tagged with its native shape.
//
// The zero value is an empty array. Data is exported on purpose: solvers
// update iterates in place through it, and operators read it directly.
// len(Data) must always equal the product of Shape.
type Array struct {
	Shape []int
	Data  []float64
}

// New returns a zero-filled array of the given shape.
// It panics on a non-positive dimension (programmer error).
func New(shape ...int) Array {
	n, err := shapeSize(shape)
	if err != nil {
		panic(fmt.Sprintf("ndarray: New%v: %v", shape, err))
	}

	return Array{Shape: cloneShape(shape), Data: make([]float64, n)}
}

// FromSlice wraps data (without copying) as an array of the given shape.
// With no shape, data is taken as a vector.
//
// Errors:
//   - ErrBadShape if a dimension is non-positive or the sizes disagree.
func FromSlice(data []float64, shape ...int) (Array, error) {
	if len(shape) == 0 {
		return Vector(data), nil
	}
	n, err := shapeSize(shape)
	if err != nil {
		return Array{}, ndarrayErrorf(opFromSlice, err)
	}
	if n != len(data) {
		return Array{}, ndarrayErrorf(opFromSlice,
			fmt.Errorf("%w: %d elements for shape %v", ErrBadShape, len(data), shape))
	}

	return Array{Shape: cloneShape(shape), Data: data}, nil
}

// Vector wraps data (without copying) as a 1-D array.
func Vector(data []float64) Array {
	return Array{Shape: []int{len(data)}, Data: data}
}

// Size returns the number of elements.
func (a Array) Size() int { return len(a.Data) }

// Dims returns the number of dimensions.
func (a Array) Dims() int { return len(a.Shape) }

// Clone returns a deep copy.
func (a Array) Clone() Array {
	data := make([]float64, len(a.Data))
	copy(data, a.Data)

	return Array{Shape: cloneShape(a.Shape), Data: data}
}

// Reshape returns a view with a new shape over the same Data.
//
// Errors:
//   - ErrBadShape if the new shape does not hold exactly Size() elements.
func (a Array) Reshape(shape ...int) (Array, error) {
	n, err := shapeSize(shape)
	if err != nil {
		return Array{}, ndarrayErrorf(opReshape, err)
	}
	if n != len(a.Data) {
		return Array{}, ndarrayErrorf(opReshape,
			fmt.Errorf("%w: cannot view %v as %v", ErrBadShape, a.Shape, shape))
	}

	return Array{Shape: cloneShape(shape), Data: a.Data}, nil
}

// Flat returns the column-vector view of a: shape [Size()], same Data.
func (a Array) Flat() Array {
	return Array{Shape: []int{len(a.Data)}, Data: a.Data}
}

// SameShape reports whether a and b have identical shapes.
func (a Array) SameShape(b Array) bool {
	return equalShape(a.Shape, b.Shape)
}

// String formats the shape and the leading elements, for debugging.
func (a Array) String() string {
	const head = 6
	if len(a.Data) <= head {
		return fmt.Sprintf("Array%v%v", a.Shape, a.Data)
	}

	return fmt.Sprintf("Array%v%v...", a.Shape, a.Data[:head])
}

// shapeSize validates shape and returns the element count it describes.
func shapeSize(shape []int) (int, error) {
	if len(shape) == 0 {
		return 0, fmt.Errorf("%w: empty shape", ErrBadShape)
	}
	n := 1
	for _, d := range shape {
		if d <= 0 {
			return 0, fmt.Errorf("%w: dimension %d in %v", ErrBadShape, d, shape)
		}
		n *= d
	}

	return n, nil
}

func equalShape(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}

func cloneShape(shape []int) []int {
	out := make([]int, len(shape))
	copy(out, shape)

	return out
}
