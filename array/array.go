// Copyright 2026 The MLX-Go Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package array

import (
	"github.com/x448/float16"

	"github.com/MLXPorts/mlx-go/internal/array"
)

// Type aliases for public API

// Dtype identifies the element type of an array.
type Dtype = array.Dtype

// Dtype constants, in promotion order.
const (
	Bool      Dtype = array.Bool
	Uint8     Dtype = array.Uint8
	Uint16    Dtype = array.Uint16
	Uint32    Dtype = array.Uint32
	Uint64    Dtype = array.Uint64
	Int8      Dtype = array.Int8
	Int16     Dtype = array.Int16
	Int32     Dtype = array.Int32
	Int64     Dtype = array.Int64
	Float16   Dtype = array.Float16
	BFloat16  Dtype = array.BFloat16
	Float32   Dtype = array.Float32
	Float64   Dtype = array.Float64
	Complex64 Dtype = array.Complex64
)

// Category is a node in the dtype hierarchy used by IsSubDtype.
type Category = array.Category

// Category constants.
const (
	Generic         Category = array.Generic
	Number          Category = array.Number
	Integer         Category = array.Integer
	SignedInteger   Category = array.SignedInteger
	UnsignedInteger Category = array.UnsignedInteger
	Inexact         Category = array.Inexact
	Floating        Category = array.Floating
	ComplexFloating Category = array.ComplexFloating
	Boolean         Category = array.Boolean
)

// DtypeOrCategory is either a Dtype or a Category; both sides of
// IsSubDtype accept it.
type DtypeOrCategory = array.DtypeOrCategory

// Shape represents the dimensions of an array.
// Example: Shape{2, 3, 4} represents a 3D array with dimensions 2×3×4.
type Shape = array.Shape

// Array is an immutable dense n-dimensional array.
//
// Values are stored row-major in a private buffer; all operations
// return fresh arrays. A zero-rank Array holds a single scalar.
type Array = array.Array

// Element enumerates the Go types FromSlice accepts.
type Element = array.Element

// Sentinel errors. Test with errors.Is; every failure returned by this
// package wraps exactly one of them.
var (
	ErrUnknownDtype    = array.ErrUnknownDtype
	ErrShapeMismatch   = array.ErrShapeMismatch
	ErrReshape         = array.ErrReshape
	ErrAxis            = array.ErrAxis
	ErrInvalidArgument = array.ErrInvalidArgument
	ErrNotImplemented  = array.ErrNotImplemented
)

// DtypeFromString resolves a canonical dtype name such as "float32".
func DtypeFromString(name string) (Dtype, error) {
	return array.DtypeFromString(name)
}

// IsSubDtype reports whether a lies under b in the dtype hierarchy.
// Both arguments may be a Dtype or a Category.
//
// Example:
//
//	array.IsSubDtype(array.Int32, array.Integer)   // true
//	array.IsSubDtype(array.Float16, array.Inexact) // true
//	array.IsSubDtype(array.Bool, array.Number)     // false
func IsSubDtype(a, b DtypeOrCategory) bool {
	return array.IsSubDtype(a, b)
}

// Promote returns the smallest dtype both operands convert to.
func Promote(a, b Dtype) Dtype {
	return array.Promote(a, b)
}

// BroadcastShapes combines two shapes under NumPy broadcasting rules,
// or fails with ErrShapeMismatch.
func BroadcastShapes(a, b Shape) (Shape, error) {
	return array.BroadcastShapes(a, b)
}

// Creation functions

// FromSlice creates an array from a Go slice. The slice length must
// match the shape's element count.
//
// Example:
//
//	x, err := array.FromSlice([]float32{1, 2, 3, 4, 5, 6}, array.Shape{2, 3})
func FromSlice[T Element](data []T, shape Shape) (*Array, error) {
	return array.FromSlice(data, shape)
}

// FromFloat16Slice creates a Float16 array from IEEE half values.
func FromFloat16Slice(data []float16.Float16, shape Shape) (*Array, error) {
	return array.FromFloat16Slice(data, shape)
}

// FromBFloat16Slice creates a BFloat16 array from raw bfloat16 bits.
func FromBFloat16Slice(bits []uint16, shape Shape) (*Array, error) {
	return array.FromBFloat16Slice(bits, shape)
}

// FromBytes creates an array by copying a raw row-major buffer.
func FromBytes(raw []byte, shape Shape, dtype Dtype) (*Array, error) {
	return array.FromBytes(raw, shape, dtype)
}

// FromScalar creates a rank-0 array from a host scalar. Without an
// explicit dtype the scalar's natural default applies (Bool, Int32,
// Float32, or Complex64).
func FromScalar(v any, dtype ...Dtype) (*Array, error) {
	return array.FromScalar(v, dtype...)
}

// Zeros creates an array filled with zeros. Dtype defaults to Float32.
//
// Example:
//
//	x, err := array.Zeros(array.Shape{2, 3})
//	y, err := array.Zeros(array.Shape{4}, array.Int64)
func Zeros(shape Shape, dtype ...Dtype) (*Array, error) {
	return array.Zeros(shape, dtype...)
}

// Ones creates an array filled with ones. Dtype defaults to Float32.
func Ones(shape Shape, dtype ...Dtype) (*Array, error) {
	return array.Ones(shape, dtype...)
}

// ZerosLike creates a zero-filled array with a's shape and dtype.
func ZerosLike(a *Array) (*Array, error) {
	return array.ZerosLike(a)
}

// OnesLike creates a one-filled array with a's shape and dtype.
func OnesLike(a *Array) (*Array, error) {
	return array.OnesLike(a)
}

// Full creates an array of the given shape filled with value, which
// may be a host scalar or an *Array broadcastable to shape.
//
// Example:
//
//	x, err := array.Full(array.Shape{2, 3}, 3.14)
func Full(shape Shape, value any, dtype ...Dtype) (*Array, error) {
	return array.Full(shape, value, dtype...)
}

// Eye creates an n×n identity matrix. Dtype defaults to Float32.
func Eye(n int, dtype ...Dtype) (*Array, error) {
	return array.Eye(n, dtype...)
}

// Arange creates a 1D array of evenly spaced values in [start, stop).
// Dtype defaults to Int32 when start, stop, and step are all integral,
// else Float32.
//
// Example:
//
//	x, err := array.Arange(0, 10, 1)    // [0 1 2 ... 9], int32
//	y, err := array.Arange(0, 1, 0.25)  // [0 0.25 0.5 0.75], float32
func Arange(start, stop, step float64, dtype ...Dtype) (*Array, error) {
	return array.Arange(start, stop, step, dtype...)
}

// ArangeTo is Arange with start 0 and step 1.
func ArangeTo(stop float64, dtype ...Dtype) (*Array, error) {
	return array.ArangeTo(stop, dtype...)
}

// Linspace creates num evenly spaced values from start to stop
// inclusive. Dtype defaults to Float32.
func Linspace(start, stop float64, num int, dtype ...Dtype) (*Array, error) {
	return array.Linspace(start, stop, num, dtype...)
}
