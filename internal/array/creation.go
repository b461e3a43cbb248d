package array

import (
	"math"

	"github.com/pkg/errors"
	"github.com/x448/float16"

	"github.com/MLXPorts/mlx-go/internal/stream"
)

// Element is the constraint for Go element types FromSlice accepts.
// The 16-bit float kinds have no native Go representation and enter
// through FromFloat16Slice and FromBFloat16Slice instead.
type Element interface {
	~bool | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64 | ~complex64
}

// FromSlice creates an array holding a copy of data, with the dtype
// inferred from the element type.
func FromSlice[T Element](data []T, shape Shape) (*Array, error) {
	if shape.NumElements() != len(data) {
		return nil, errors.Wrapf(ErrShapeMismatch, "shape %v requires %d elements, got %d",
			shape, shape.NumElements(), len(data))
	}

	var dummy T
	var dt Dtype
	switch any(dummy).(type) {
	case bool:
		dt = Bool
	case int8:
		dt = Int8
	case int16:
		dt = Int16
	case int32:
		dt = Int32
	case int64:
		dt = Int64
	case uint8:
		dt = Uint8
	case uint16:
		dt = Uint16
	case uint32:
		dt = Uint32
	case uint64:
		dt = Uint64
	case float32:
		dt = Float32
	case float64:
		dt = Float64
	case complex64:
		dt = Complex64
	default:
		return nil, errors.Wrapf(ErrInvalidArgument, "unsupported element type %T", dummy)
	}

	a, err := newDense(shape, dt)
	if err != nil {
		return nil, err
	}
	switch src := any(data).(type) {
	case []bool:
		copy(a.asBool(), src)
	case []int8:
		copy(a.asInt8(), src)
	case []int16:
		copy(a.asInt16(), src)
	case []int32:
		copy(a.asInt32(), src)
	case []int64:
		copy(a.asInt64(), src)
	case []uint8:
		copy(a.asUint8(), src)
	case []uint16:
		copy(a.asUint16(), src)
	case []uint32:
		copy(a.asUint32(), src)
	case []uint64:
		copy(a.asUint64(), src)
	case []float32:
		copy(a.asFloat32(), src)
	case []float64:
		copy(a.asFloat64(), src)
	case []complex64:
		copy(a.asComplex64(), src)
	}
	return a, nil
}

// FromFloat16Slice creates a float16 array from IEEE half values.
func FromFloat16Slice(data []float16.Float16, shape Shape) (*Array, error) {
	if shape.NumElements() != len(data) {
		return nil, errors.Wrapf(ErrShapeMismatch, "shape %v requires %d elements, got %d",
			shape, shape.NumElements(), len(data))
	}
	a, err := newDense(shape, Float16)
	if err != nil {
		return nil, err
	}
	bits := a.asUint16()
	for i, v := range data {
		bits[i] = v.Bits()
	}
	return a, nil
}

// FromBFloat16Slice creates a bfloat16 array from raw storage bits.
func FromBFloat16Slice(bits []uint16, shape Shape) (*Array, error) {
	if shape.NumElements() != len(bits) {
		return nil, errors.Wrapf(ErrShapeMismatch, "shape %v requires %d elements, got %d",
			shape, shape.NumElements(), len(bits))
	}
	a, err := newDense(shape, BFloat16)
	if err != nil {
		return nil, err
	}
	copy(a.asUint16(), bits)
	return a, nil
}

// FromBytes creates an array over a copy of a flat row-major buffer.
// Bool buffers are normalized so any nonzero byte stores as true.
func FromBytes(raw []byte, shape Shape, dtype Dtype) (*Array, error) {
	want := shape.NumElements() * dtype.Size()
	if len(raw) != want {
		return nil, errors.Wrapf(ErrShapeMismatch, "shape %v with dtype %s requires %d bytes, got %d",
			shape, dtype, want, len(raw))
	}
	a, err := newDense(shape, dtype)
	if err != nil {
		return nil, err
	}
	copy(a.data, raw)
	if dtype == Bool {
		for i, b := range a.data {
			if b != 0 {
				a.data[i] = 1
			}
		}
	}
	return a, nil
}

// FromScalar creates a rank-0 array from a host scalar. Without an
// explicit dtype, real floats infer float32, integers int32, booleans
// bool, and complex values complex64.
func FromScalar(v any, dtype ...Dtype) (*Array, error) {
	op, err := toOperand(v)
	if err != nil {
		return nil, err
	}
	if !op.isScal {
		return nil, errors.Wrap(ErrInvalidArgument, "FromScalar requires a host scalar, not an array")
	}
	dt := op.defaultDtype()
	if len(dtype) > 0 {
		dt = dtype[0]
	}
	return op.materialize(dt)
}

// resolveDtype applies the variadic-optional dtype idiom.
func resolveDtype(def Dtype, dtype []Dtype) Dtype {
	if len(dtype) > 0 {
		return dtype[0]
	}
	return def
}

// Zeros creates a zero-filled array. The dtype defaults to float32.
func Zeros(shape Shape, dtype ...Dtype) (*Array, error) {
	return newDense(shape, resolveDtype(Float32, dtype))
}

// Ones creates a one-filled array. The dtype defaults to float32.
func Ones(shape Shape, dtype ...Dtype) (*Array, error) {
	return Full(shape, 1, resolveDtype(Float32, dtype))
}

// ZerosLike creates a zero-filled array with a's shape and dtype.
func ZerosLike(a *Array) (*Array, error) {
	return newDense(a.shape, a.dtype)
}

// OnesLike creates a one-filled array with a's shape and dtype.
func OnesLike(a *Array) (*Array, error) {
	return Full(a.shape, 1, a.dtype)
}

// Full creates an array of the given shape filled from value. A
// scalar value is cast to the target dtype (inferred per FromScalar
// when absent) and replicated; an *Array value is broadcast to exactly
// the given shape, failing with ErrShapeMismatch when it cannot be.
func Full(shape Shape, value any, dtype ...Dtype) (*Array, error) {
	op, err := toOperand(value)
	if err != nil {
		return nil, err
	}

	if op.isScal {
		dt := resolveDtype(op.defaultDtype(), dtype)
		fill, err := op.materialize(dt)
		if err != nil {
			return nil, err
		}
		return broadcastTo(fill, shape)
	}

	src := op.arr
	if len(dtype) > 0 && dtype[0] != src.dtype {
		if src, err = castTo(src, dtype[0]); err != nil {
			return nil, err
		}
	}
	return broadcastTo(src, shape)
}

// Eye creates an n-by-n identity matrix. The dtype defaults to
// float32.
func Eye(n int, dtype ...Dtype) (*Array, error) {
	if n < 0 {
		return nil, errors.Wrapf(ErrInvalidArgument, "eye size must be non-negative, got %d", n)
	}
	dt := resolveDtype(Float32, dtype)
	out, err := newDense(Shape{n, n}, dt)
	if err != nil {
		return nil, err
	}
	one, err := Full(Shape{}, 1, dt)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		copyElem(out, i*n+i, one, 0)
	}
	return out, nil
}

// Arange creates a 1-D array of evenly spaced values in [start, stop)
// with the given step. The length is max(0, ceil((stop-start)/step)),
// so a step pointing away from stop yields an empty array. The dtype
// defaults to int32 when start, stop, and step are all integral, else
// float32. A zero step fails with ErrInvalidArgument.
func Arange(start, stop, step float64, dtype ...Dtype) (*Array, error) {
	if step == 0 {
		return nil, errors.Wrap(ErrInvalidArgument, "arange step must be nonzero")
	}

	def := Int32
	if start != math.Trunc(start) || stop != math.Trunc(stop) || step != math.Trunc(step) {
		def = Float32
	}
	dt := resolveDtype(def, dtype)

	n := int(math.Ceil((stop - start) / step))
	if n < 0 {
		n = 0
	}
	out, err := newDense(Shape{n}, dt)
	if err != nil {
		return nil, err
	}
	stream.Resolve().Do(func() {
		w := rangeWriter(out)
		for i := 0; i < n; i++ {
			w(i, start+float64(i)*step)
		}
	})
	return out, nil
}

// ArangeTo is the single-argument arange form: start 0, step 1.
func ArangeTo(stop float64, dtype ...Dtype) (*Array, error) {
	return Arange(0, stop, 1, dtype...)
}

// Linspace creates num evenly spaced values from start to stop,
// endpoints included. The dtype defaults to float32.
func Linspace(start, stop float64, num int, dtype ...Dtype) (*Array, error) {
	if num < 0 {
		return nil, errors.Wrapf(ErrInvalidArgument, "linspace count must be non-negative, got %d", num)
	}
	dt := resolveDtype(Float32, dtype)
	out, err := newDense(Shape{num}, dt)
	if err != nil {
		return nil, err
	}
	step := 0.0
	if num > 1 {
		step = (stop - start) / float64(num-1)
	}
	stream.Resolve().Do(func() {
		w := rangeWriter(out)
		for i := 0; i < num; i++ {
			w(i, start+float64(i)*step)
		}
	})
	return out, nil
}

// rangeWriter stores float64 range values into any dtype, including
// complex64 with a zero imaginary part.
func rangeWriter(a *Array) func(i int, v float64) {
	if a.dtype == Complex64 {
		w := complexWriter(a)
		return func(i int, v float64) { w(i, complex(v, 0)) }
	}
	return floatWriter(a)
}
