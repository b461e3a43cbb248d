// Copyright 2026 The MLX-Go Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package array

import (
	"github.com/MLXPorts/mlx-go/internal/array"
	"github.com/MLXPorts/mlx-go/internal/stream"
)

// Element-wise binary operations.
//
// Operands may be *Array values or host scalars and broadcast
// together. The optional trailing argument selects the stream the
// operation runs on.

// Add performs element-wise addition.
//
// Example:
//
//	a, _ := array.Ones(array.Shape{3, 1})
//	b, _ := array.Ones(array.Shape{3, 5})
//	c, _ := array.Add(a, b) // shape [3, 5] (broadcasted)
func Add(a, b any, s ...*stream.Stream) (*Array, error) {
	return array.Add(a, b, s...)
}

// Subtract performs element-wise subtraction.
func Subtract(a, b any, s ...*stream.Stream) (*Array, error) {
	return array.Subtract(a, b, s...)
}

// Multiply performs element-wise multiplication.
func Multiply(a, b any, s ...*stream.Stream) (*Array, error) {
	return array.Multiply(a, b, s...)
}

// Divide performs element-wise division. Integer operands divide as
// integers, truncating toward zero; division by integer zero yields
// zero.
func Divide(a, b any, s ...*stream.Stream) (*Array, error) {
	return array.Divide(a, b, s...)
}

// Power raises a to the power b element-wise.
func Power(a, b any, s ...*stream.Stream) (*Array, error) {
	return array.Power(a, b, s...)
}

// Maximum takes the element-wise larger operand. Not defined for
// complex64.
func Maximum(a, b any, s ...*stream.Stream) (*Array, error) {
	return array.Maximum(a, b, s...)
}

// Minimum takes the element-wise smaller operand. Not defined for
// complex64.
func Minimum(a, b any, s ...*stream.Stream) (*Array, error) {
	return array.Minimum(a, b, s...)
}

// Arctan2 computes atan(y/x) element-wise, using operand signs to pick
// the quadrant.
func Arctan2(y, x any, s ...*stream.Stream) (*Array, error) {
	return array.Arctan2(y, x, s...)
}

// Comparisons. Each returns a Bool array of the broadcast shape.

// Equal compares element-wise for equality.
func Equal(a, b any, s ...*stream.Stream) (*Array, error) {
	return array.Equal(a, b, s...)
}

// NotEqual compares element-wise for inequality.
func NotEqual(a, b any, s ...*stream.Stream) (*Array, error) {
	return array.NotEqual(a, b, s...)
}

// Less compares a < b element-wise. Ordering comparisons are not
// defined for complex64.
func Less(a, b any, s ...*stream.Stream) (*Array, error) {
	return array.Less(a, b, s...)
}

// LessEqual compares a <= b element-wise.
func LessEqual(a, b any, s ...*stream.Stream) (*Array, error) {
	return array.LessEqual(a, b, s...)
}

// Greater compares a > b element-wise.
func Greater(a, b any, s ...*stream.Stream) (*Array, error) {
	return array.Greater(a, b, s...)
}

// GreaterEqual compares a >= b element-wise.
func GreaterEqual(a, b any, s ...*stream.Stream) (*Array, error) {
	return array.GreaterEqual(a, b, s...)
}

// Element-wise unary operations. The transcendental functions promote
// integer and bool inputs to Float32.

// Sin computes the sine of each element.
func Sin(v any, s ...*stream.Stream) (*Array, error) {
	return array.Sin(v, s...)
}

// Cos computes the cosine of each element.
func Cos(v any, s ...*stream.Stream) (*Array, error) {
	return array.Cos(v, s...)
}

// Tan computes the tangent of each element.
func Tan(v any, s ...*stream.Stream) (*Array, error) {
	return array.Tan(v, s...)
}

// Arcsin computes the inverse sine of each element.
func Arcsin(v any, s ...*stream.Stream) (*Array, error) {
	return array.Arcsin(v, s...)
}

// Arccos computes the inverse cosine of each element.
func Arccos(v any, s ...*stream.Stream) (*Array, error) {
	return array.Arccos(v, s...)
}

// Arctan computes the inverse tangent of each element.
func Arctan(v any, s ...*stream.Stream) (*Array, error) {
	return array.Arctan(v, s...)
}

// Exp computes e raised to each element.
func Exp(v any, s ...*stream.Stream) (*Array, error) {
	return array.Exp(v, s...)
}

// Log computes the natural logarithm of each element.
func Log(v any, s ...*stream.Stream) (*Array, error) {
	return array.Log(v, s...)
}

// Sqrt computes the square root of each element.
func Sqrt(v any, s ...*stream.Stream) (*Array, error) {
	return array.Sqrt(v, s...)
}

// Rsqrt computes the reciprocal square root of each element.
func Rsqrt(v any, s ...*stream.Stream) (*Array, error) {
	return array.Rsqrt(v, s...)
}

// Square computes each element times itself, keeping the dtype.
func Square(v any, s ...*stream.Stream) (*Array, error) {
	return array.Square(v, s...)
}

// Abs computes the absolute value. For complex64 the result is the
// Float32 magnitude.
func Abs(v any, s ...*stream.Stream) (*Array, error) {
	return array.Abs(v, s...)
}

// Sign computes -1, 0, or 1 by element sign, keeping the dtype. NaN
// passes through for floating inputs.
func Sign(v any, s ...*stream.Stream) (*Array, error) {
	return array.Sign(v, s...)
}

// Negative computes the element-wise negation.
func Negative(v any, s ...*stream.Stream) (*Array, error) {
	return array.Negative(v, s...)
}

// Structural operations.

// AsType returns a copy of the operand converted to dtype.
func AsType(a *Array, dtype Dtype, s ...*stream.Stream) (*Array, error) {
	return array.AsType(a, dtype, s...)
}

// Reshape returns a copy of a under newShape; element counts must
// match, else ErrReshape.
func Reshape(a *Array, newShape Shape, s ...*stream.Stream) (*Array, error) {
	return array.Reshape(a, newShape, s...)
}

// Flatten returns a rank-1 copy in row-major order.
func Flatten(a *Array, s ...*stream.Stream) (*Array, error) {
	return array.Flatten(a, s...)
}

// Transpose returns a copy with dimensions permuted. Nil axes reverses
// the dimension order.
//
// Example:
//
//	t, _ := array.Zeros(array.Shape{2, 3, 4})
//	p, _ := array.Transpose(t, []int{2, 0, 1}) // shape [4, 2, 3]
func Transpose(a *Array, axes []int, s ...*stream.Stream) (*Array, error) {
	return array.Transpose(a, axes, s...)
}

// Moveaxis moves one dimension to a new position.
func Moveaxis(a *Array, source, destination int, s ...*stream.Stream) (*Array, error) {
	return array.Moveaxis(a, source, destination, s...)
}

// Swapaxes exchanges two dimensions.
func Swapaxes(a *Array, axis1, axis2 int, s ...*stream.Stream) (*Array, error) {
	return array.Swapaxes(a, axis1, axis2, s...)
}

// ExpandDims inserts a size-1 dimension at axis.
func ExpandDims(a *Array, axis int, s ...*stream.Stream) (*Array, error) {
	return array.ExpandDims(a, axis, s...)
}

// Squeeze removes size-1 dimensions; nil axes removes them all.
func Squeeze(a *Array, axes []int, s ...*stream.Stream) (*Array, error) {
	return array.Squeeze(a, axes, s...)
}

// Where selects from x where condition is nonzero, else from y.
//
// Example:
//
//	mask, _ := array.Greater(scores, 0.5)
//	kept, _ := array.Where(mask, scores, 0)
func Where(condition, x, y any, s ...*stream.Stream) (*Array, error) {
	return array.Where(condition, x, y, s...)
}
