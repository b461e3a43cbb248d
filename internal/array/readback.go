package array

import (
	"github.com/pkg/errors"
	"github.com/x448/float16"
)

// Read-back surface. Every accessor returns fresh copies, never an
// alias of the internal buffer, and none of them mutates the array,
// so repeated reads are idempotent.

// elem returns element i as its native Go value. The 16-bit float
// kinds widen to float32.
func (a *Array) elem(i int) any {
	switch a.dtype {
	case Bool:
		return a.asBool()[i]
	case Uint8:
		return a.asUint8()[i]
	case Uint16:
		return a.asUint16()[i]
	case Uint32:
		return a.asUint32()[i]
	case Uint64:
		return a.asUint64()[i]
	case Int8:
		return a.asInt8()[i]
	case Int16:
		return a.asInt16()[i]
	case Int32:
		return a.asInt32()[i]
	case Int64:
		return a.asInt64()[i]
	case Float16:
		return float16.Frombits(a.asUint16()[i]).Float32()
	case BFloat16:
		return bfloat16Float32(a.asUint16()[i])
	case Float32:
		return a.asFloat32()[i]
	case Float64:
		return a.asFloat64()[i]
	case Complex64:
		return a.asComplex64()[i]
	default:
		panic("unknown dtype")
	}
}

// ToNested renders the array as a nested sequence whose depth equals
// the rank: a rank-0 array yields its bare scalar, higher ranks yield
// []any nesting down to native element values.
func (a *Array) ToNested() any {
	if a.Rank() == 0 {
		return a.elem(0)
	}
	return a.nested(0, a.shape, a.shape.ComputeStrides())
}

func (a *Array) nested(offset int, dims Shape, strides []int) any {
	if len(dims) == 0 {
		return a.elem(offset)
	}
	out := make([]any, dims[0])
	for i := range out {
		out[i] = a.nested(offset+i*strides[0], dims[1:], strides[1:])
	}
	return out
}

// Item returns the value of a rank-0 array.
func (a *Array) Item() (any, error) {
	if a.Rank() != 0 {
		return nil, errors.Wrapf(ErrInvalidArgument, "item requires a rank-0 array, have shape %v", a.shape)
	}
	return a.elem(0), nil
}

// Bytes returns a copy of the raw row-major buffer.
func (a *Array) Bytes() []byte {
	out := make([]byte, len(a.data))
	copy(out, a.data)
	return out
}

func (a *Array) requireDtype(dt Dtype) error {
	if a.dtype != dt {
		return errors.Wrapf(ErrInvalidArgument, "array holds %s, not %s", a.dtype, dt)
	}
	return nil
}

// Bools returns a copy of a bool array's elements.
func (a *Array) Bools() ([]bool, error) {
	if err := a.requireDtype(Bool); err != nil {
		return nil, err
	}
	return append([]bool(nil), a.asBool()...), nil
}

// Int8s returns a copy of an int8 array's elements.
func (a *Array) Int8s() ([]int8, error) {
	if err := a.requireDtype(Int8); err != nil {
		return nil, err
	}
	return append([]int8(nil), a.asInt8()...), nil
}

// Int16s returns a copy of an int16 array's elements.
func (a *Array) Int16s() ([]int16, error) {
	if err := a.requireDtype(Int16); err != nil {
		return nil, err
	}
	return append([]int16(nil), a.asInt16()...), nil
}

// Int32s returns a copy of an int32 array's elements.
func (a *Array) Int32s() ([]int32, error) {
	if err := a.requireDtype(Int32); err != nil {
		return nil, err
	}
	return append([]int32(nil), a.asInt32()...), nil
}

// Int64s returns a copy of an int64 array's elements.
func (a *Array) Int64s() ([]int64, error) {
	if err := a.requireDtype(Int64); err != nil {
		return nil, err
	}
	return append([]int64(nil), a.asInt64()...), nil
}

// Uint8s returns a copy of a uint8 array's elements.
func (a *Array) Uint8s() ([]uint8, error) {
	if err := a.requireDtype(Uint8); err != nil {
		return nil, err
	}
	return append([]uint8(nil), a.asUint8()...), nil
}

// Uint16s returns a copy of a uint16 array's elements.
func (a *Array) Uint16s() ([]uint16, error) {
	if err := a.requireDtype(Uint16); err != nil {
		return nil, err
	}
	return append([]uint16(nil), a.asUint16()...), nil
}

// Uint32s returns a copy of a uint32 array's elements.
func (a *Array) Uint32s() ([]uint32, error) {
	if err := a.requireDtype(Uint32); err != nil {
		return nil, err
	}
	return append([]uint32(nil), a.asUint32()...), nil
}

// Uint64s returns a copy of a uint64 array's elements.
func (a *Array) Uint64s() ([]uint64, error) {
	if err := a.requireDtype(Uint64); err != nil {
		return nil, err
	}
	return append([]uint64(nil), a.asUint64()...), nil
}

// Float32s returns a copy of a float32 array's elements.
func (a *Array) Float32s() ([]float32, error) {
	if err := a.requireDtype(Float32); err != nil {
		return nil, err
	}
	return append([]float32(nil), a.asFloat32()...), nil
}

// Float64s returns a copy of a float64 array's elements.
func (a *Array) Float64s() ([]float64, error) {
	if err := a.requireDtype(Float64); err != nil {
		return nil, err
	}
	return append([]float64(nil), a.asFloat64()...), nil
}

// Complex64s returns a copy of a complex64 array's elements.
func (a *Array) Complex64s() ([]complex64, error) {
	if err := a.requireDtype(Complex64); err != nil {
		return nil, err
	}
	return append([]complex64(nil), a.asComplex64()...), nil
}

// Float16s returns a float16 array's elements as IEEE half values.
func (a *Array) Float16s() ([]float16.Float16, error) {
	if err := a.requireDtype(Float16); err != nil {
		return nil, err
	}
	bits := a.asUint16()
	out := make([]float16.Float16, len(bits))
	for i, b := range bits {
		out[i] = float16.Frombits(b)
	}
	return out, nil
}

// BFloat16s returns a bfloat16 array's raw storage bits.
func (a *Array) BFloat16s() ([]uint16, error) {
	if err := a.requireDtype(BFloat16); err != nil {
		return nil, err
	}
	return append([]uint16(nil), a.asUint16()...), nil
}
