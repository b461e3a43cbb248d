package array

import (
	"fmt"
)

// Array is an immutable n-dimensional value: a shape, an element kind,
// and an exclusively owned contiguous row-major buffer. Operations
// never mutate an input array; they allocate fresh results, and no
// aliasing between distinct arrays is observable through the public
// surface. Construct through the factory functions; the zero Array is
// not usable.
type Array struct {
	shape Shape
	dtype Dtype
	data  []byte
}

// newDense allocates a zero-filled array of the given shape and dtype.
func newDense(shape Shape, dtype Dtype) (*Array, error) {
	if err := shape.Validate(); err != nil {
		return nil, err
	}
	return &Array{
		shape: shape.Clone(),
		dtype: dtype,
		data:  make([]byte, shape.NumElements()*dtype.Size()),
	}, nil
}

// Shape returns a copy of the array's shape.
func (a *Array) Shape() Shape {
	return a.shape.Clone()
}

// Dtype returns the array's element kind.
func (a *Array) Dtype() Dtype {
	return a.dtype
}

// Rank returns the number of dimensions.
func (a *Array) Rank() int {
	return len(a.shape)
}

// NumElements returns the total number of elements.
func (a *Array) NumElements() int {
	return a.shape.NumElements()
}

// ByteSize returns the buffer size in bytes.
func (a *Array) ByteSize() int {
	return len(a.data)
}

// Dim returns the size of one dimension, counting negative axes from
// the end.
func (a *Array) Dim(axis int) (int, error) {
	ax, err := normalizeAxis(axis, len(a.shape))
	if err != nil {
		return 0, err
	}
	return a.shape[ax], nil
}

// Clone returns a deep copy: fresh shape and fresh buffer.
func (a *Array) Clone() *Array {
	data := make([]byte, len(a.data))
	copy(data, a.data)
	return &Array{
		shape: a.shape.Clone(),
		dtype: a.dtype,
		data:  data,
	}
}

// String returns a compact description without element values.
func (a *Array) String() string {
	return fmt.Sprintf("array(shape=%v, dtype=%s)", []int(a.shape), a.dtype)
}

// withShape returns a view-free copy of the buffer under a new shape.
// The caller guarantees matching element counts.
func (a *Array) withShape(shape Shape) *Array {
	out := a.Clone()
	out.shape = shape.Clone()
	return out
}

// copyElem copies element si of src into element di of dst. Both
// arrays must share a dtype.
func copyElem(dst *Array, di int, src *Array, si int) {
	size := dst.dtype.Size()
	copy(dst.data[di*size:(di+1)*size], src.data[si*size:(si+1)*size])
}
