package array

import "github.com/MLXPorts/mlx-go/internal/stream"

// Add performs element-wise addition with broadcasting. The other
// operand may be an *Array or a host scalar.
//
// Example:
//
//	a, _ := array.Ones(array.Shape{3, 1})
//	b, _ := array.Ones(array.Shape{3, 5})
//	c, _ := a.Add(b) // shape [3, 5] (broadcasted)
func (a *Array) Add(other any, s ...*stream.Stream) (*Array, error) {
	return Add(a, other, s...)
}

// Sub performs element-wise subtraction with broadcasting.
func (a *Array) Sub(other any, s ...*stream.Stream) (*Array, error) {
	return Subtract(a, other, s...)
}

// Mul performs element-wise multiplication with broadcasting.
func (a *Array) Mul(other any, s ...*stream.Stream) (*Array, error) {
	return Multiply(a, other, s...)
}

// Div performs element-wise division with broadcasting.
func (a *Array) Div(other any, s ...*stream.Stream) (*Array, error) {
	return Divide(a, other, s...)
}

// Eq performs an element-wise equality comparison yielding a bool array.
func (a *Array) Eq(other any, s ...*stream.Stream) (*Array, error) {
	return Equal(a, other, s...)
}

// AsType returns a copy of the array converted to dtype.
func (a *Array) AsType(dtype Dtype, s ...*stream.Stream) (*Array, error) {
	return AsType(a, dtype, s...)
}

// Reshape returns a copy with the same data under a new shape.
// The new shape must have the same number of elements.
//
// Example:
//
//	t, _ := array.Arange(0, 12, 1) // shape [12]
//	m, _ := t.Reshape(3, 4)        // shape [3, 4]
func (a *Array) Reshape(dims ...int) (*Array, error) {
	return Reshape(a, Shape(dims))
}

// Transpose returns a copy with its dimensions permuted.
//
// If axes is empty, reverses all dimensions (for 2D, this is the
// standard transpose). Otherwise axes specifies the permutation.
func (a *Array) Transpose(axes ...int) (*Array, error) {
	if len(axes) == 0 {
		return Transpose(a, nil)
	}
	return Transpose(a, axes)
}

// T is a shortcut for Transpose with reversed dimension order.
func (a *Array) T() (*Array, error) {
	return Transpose(a, nil)
}

// Flatten returns a rank-1 copy in row-major order.
func (a *Array) Flatten() (*Array, error) {
	return Flatten(a)
}
