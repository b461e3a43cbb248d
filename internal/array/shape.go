package array

import (
	"github.com/pkg/errors"
)

// Shape represents the dimensions of an array. A rank-0 shape denotes
// a scalar; zero-size dimensions are legal and yield empty arrays.
type Shape []int

// NumElements returns the total number of elements.
func (s Shape) NumElements() int {
	n := 1
	for _, dim := range s {
		n *= dim
	}
	return n
}

// Rank returns the number of dimensions.
func (s Shape) Rank() int {
	return len(s)
}

// Validate checks that every dimension is non-negative.
func (s Shape) Validate() error {
	for i, dim := range s {
		if dim < 0 {
			return errors.Wrapf(ErrShapeMismatch, "negative dimension at axis %d in shape %v", i, s)
		}
	}
	return nil
}

// Equal checks if two shapes are equal.
func (s Shape) Equal(other Shape) bool {
	if len(s) != len(other) {
		return false
	}
	for i := range s {
		if s[i] != other[i] {
			return false
		}
	}
	return true
}

// Clone returns a copy of the shape.
func (s Shape) Clone() Shape {
	clone := make(Shape, len(s))
	copy(clone, s)
	return clone
}

// ComputeStrides calculates row-major strides for the shape.
// Strides define memory layout: stride[i] = product of all dimensions after i.
func (s Shape) ComputeStrides() []int {
	strides := make([]int, len(s))
	if len(s) == 0 {
		return strides
	}

	strides[len(s)-1] = 1
	for i := len(s) - 2; i >= 0; i-- {
		strides[i] = strides[i+1] * s[i+1]
	}
	return strides
}

// BroadcastShapes combines two shapes under NumPy broadcasting rules.
//
// Aligning from the trailing dimension, each dimension pair must be
// equal or contain a 1; missing leading dimensions count as 1. Fails
// with ErrShapeMismatch naming the offending dimension pair.
func BroadcastShapes(a, b Shape) (Shape, error) {
	maxLen := max(len(a), len(b))
	result := make(Shape, maxLen)

	for i := 0; i < maxLen; i++ {
		aIdx := len(a) - 1 - i
		bIdx := len(b) - 1 - i

		aDim := 1
		if aIdx >= 0 {
			aDim = a[aIdx]
		}

		bDim := 1
		if bIdx >= 0 {
			bDim = b[bIdx]
		}

		switch {
		case aDim == bDim:
			result[maxLen-1-i] = aDim
		case aDim == 1:
			result[maxLen-1-i] = bDim
		case bDim == 1:
			result[maxLen-1-i] = aDim
		default:
			return nil, errors.Wrapf(ErrShapeMismatch,
				"cannot broadcast %v with %v (dimension %d: %d vs %d)",
				a, b, maxLen-1-i, aDim, bDim)
		}
	}

	return result, nil
}

// ValidateReshape checks that newShape holds exactly as many elements
// as oldShape.
func ValidateReshape(oldShape, newShape Shape) error {
	if err := newShape.Validate(); err != nil {
		return err
	}
	if oldShape.NumElements() != newShape.NumElements() {
		return errors.Wrapf(ErrReshape, "cannot reshape %v (%d elements) into %v (%d elements)",
			oldShape, oldShape.NumElements(), newShape, newShape.NumElements())
	}
	return nil
}

// normalizeAxis resolves a possibly-negative axis index against rank.
func normalizeAxis(axis, rank int) (int, error) {
	if axis < -rank || axis >= rank {
		return 0, errors.Wrapf(ErrAxis, "axis %d out of range for rank %d", axis, rank)
	}
	if axis < 0 {
		axis += rank
	}
	return axis, nil
}
