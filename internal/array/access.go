package array

import (
	"fmt"
	"math"
	"unsafe"

	"github.com/x448/float16"
)

// Compute lanes. Every kernel loop runs in the widest type of its
// lane; the readers and writers below translate between storage and
// lane representation once per operation, not once per element.
type lane int

const (
	laneInt     lane = iota // bool and the signed kinds, computed in int64
	laneUint                // unsigned kinds, computed in uint64
	laneFloat               // floating kinds, computed in float64
	laneComplex             // complex64, computed in complex128
)

func laneOf(dt Dtype) lane {
	switch dt {
	case Bool, Int8, Int16, Int32, Int64:
		return laneInt
	case Uint8, Uint16, Uint32, Uint64:
		return laneUint
	case Float16, BFloat16, Float32, Float64:
		return laneFloat
	case Complex64:
		return laneComplex
	default:
		panic("unknown dtype")
	}
}

// Typed views over the raw buffer, in the manner of unsafe.Slice.
// Views are internal: the dispatch layer guarantees the dtype, and the
// public surface only ever hands out copies.

func (a *Array) asBool() []bool {
	if len(a.data) == 0 {
		return nil
	}
	return unsafe.Slice((*bool)(unsafe.Pointer(&a.data[0])), a.NumElements())
}

func (a *Array) asInt8() []int8 {
	if len(a.data) == 0 {
		return nil
	}
	return unsafe.Slice((*int8)(unsafe.Pointer(&a.data[0])), a.NumElements())
}

func (a *Array) asInt16() []int16 {
	if len(a.data) == 0 {
		return nil
	}
	return unsafe.Slice((*int16)(unsafe.Pointer(&a.data[0])), a.NumElements())
}

func (a *Array) asInt32() []int32 {
	if len(a.data) == 0 {
		return nil
	}
	return unsafe.Slice((*int32)(unsafe.Pointer(&a.data[0])), a.NumElements())
}

func (a *Array) asInt64() []int64 {
	if len(a.data) == 0 {
		return nil
	}
	return unsafe.Slice((*int64)(unsafe.Pointer(&a.data[0])), a.NumElements())
}

func (a *Array) asUint8() []uint8 {
	return a.data
}

// asUint16 exposes the raw 16-bit storage shared by uint16, float16,
// and bfloat16.
func (a *Array) asUint16() []uint16 {
	if len(a.data) == 0 {
		return nil
	}
	return unsafe.Slice((*uint16)(unsafe.Pointer(&a.data[0])), a.NumElements())
}

func (a *Array) asUint32() []uint32 {
	if len(a.data) == 0 {
		return nil
	}
	return unsafe.Slice((*uint32)(unsafe.Pointer(&a.data[0])), a.NumElements())
}

func (a *Array) asUint64() []uint64 {
	if len(a.data) == 0 {
		return nil
	}
	return unsafe.Slice((*uint64)(unsafe.Pointer(&a.data[0])), a.NumElements())
}

func (a *Array) asFloat32() []float32 {
	if len(a.data) == 0 {
		return nil
	}
	return unsafe.Slice((*float32)(unsafe.Pointer(&a.data[0])), a.NumElements())
}

func (a *Array) asFloat64() []float64 {
	if len(a.data) == 0 {
		return nil
	}
	return unsafe.Slice((*float64)(unsafe.Pointer(&a.data[0])), a.NumElements())
}

func (a *Array) asComplex64() []complex64 {
	if len(a.data) == 0 {
		return nil
	}
	return unsafe.Slice((*complex64)(unsafe.Pointer(&a.data[0])), a.NumElements())
}

// bfloat16Bits truncates a float32 to bfloat16 storage with
// round-to-nearest-even.
func bfloat16Bits(f float32) uint16 {
	u := math.Float32bits(f)
	if f != f {
		return uint16(u>>16) | 0x0040 // quiet the NaN, keep sign and payload
	}
	u += 0x7fff + (u>>16)&1
	return uint16(u >> 16)
}

// bfloat16Float32 widens bfloat16 storage bits back to float32.
func bfloat16Float32(bits uint16) float32 {
	return math.Float32frombits(uint32(bits) << 16)
}

// floatReader returns an accessor yielding element i as float64.
// Valid for every real kind; the dispatch layer keeps complex out.
func floatReader(a *Array) func(i int) float64 {
	switch a.dtype {
	case Bool:
		v := a.asBool()
		return func(i int) float64 {
			if v[i] {
				return 1
			}
			return 0
		}
	case Uint8:
		v := a.asUint8()
		return func(i int) float64 { return float64(v[i]) }
	case Uint16:
		v := a.asUint16()
		return func(i int) float64 { return float64(v[i]) }
	case Uint32:
		v := a.asUint32()
		return func(i int) float64 { return float64(v[i]) }
	case Uint64:
		v := a.asUint64()
		return func(i int) float64 { return float64(v[i]) }
	case Int8:
		v := a.asInt8()
		return func(i int) float64 { return float64(v[i]) }
	case Int16:
		v := a.asInt16()
		return func(i int) float64 { return float64(v[i]) }
	case Int32:
		v := a.asInt32()
		return func(i int) float64 { return float64(v[i]) }
	case Int64:
		v := a.asInt64()
		return func(i int) float64 { return float64(v[i]) }
	case Float16:
		v := a.asUint16()
		return func(i int) float64 { return float64(float16.Frombits(v[i]).Float32()) }
	case BFloat16:
		v := a.asUint16()
		return func(i int) float64 { return float64(bfloat16Float32(v[i])) }
	case Float32:
		v := a.asFloat32()
		return func(i int) float64 { return float64(v[i]) }
	case Float64:
		v := a.asFloat64()
		return func(i int) float64 { return v[i] }
	default:
		panic(fmt.Sprintf("floatReader: dtype %s has no real representation", a.dtype))
	}
}

// floatWriter returns an accessor storing a float64 into element i.
// Integer kinds truncate toward zero; bool stores nonzero as true.
func floatWriter(a *Array) func(i int, v float64) {
	switch a.dtype {
	case Bool:
		w := a.asBool()
		return func(i int, v float64) { w[i] = v != 0 }
	case Uint8:
		w := a.asUint8()
		return func(i int, v float64) { w[i] = uint8(int64(v)) }
	case Uint16:
		w := a.asUint16()
		return func(i int, v float64) { w[i] = uint16(int64(v)) }
	case Uint32:
		w := a.asUint32()
		return func(i int, v float64) { w[i] = uint32(int64(v)) }
	case Uint64:
		w := a.asUint64()
		return func(i int, v float64) { w[i] = uint64(int64(v)) }
	case Int8:
		w := a.asInt8()
		return func(i int, v float64) { w[i] = int8(int64(v)) }
	case Int16:
		w := a.asInt16()
		return func(i int, v float64) { w[i] = int16(int64(v)) }
	case Int32:
		w := a.asInt32()
		return func(i int, v float64) { w[i] = int32(int64(v)) }
	case Int64:
		w := a.asInt64()
		return func(i int, v float64) { w[i] = int64(v) }
	case Float16:
		w := a.asUint16()
		return func(i int, v float64) { w[i] = float16.Fromfloat32(float32(v)).Bits() }
	case BFloat16:
		w := a.asUint16()
		return func(i int, v float64) { w[i] = bfloat16Bits(float32(v)) }
	case Float32:
		w := a.asFloat32()
		return func(i int, v float64) { w[i] = float32(v) }
	case Float64:
		w := a.asFloat64()
		return func(i int, v float64) { w[i] = v }
	default:
		panic(fmt.Sprintf("floatWriter: dtype %s has no real representation", a.dtype))
	}
}

// intReader returns an accessor yielding element i sign-extended to
// int64. Valid for bool and the signed kinds.
func intReader(a *Array) func(i int) int64 {
	switch a.dtype {
	case Bool:
		v := a.asBool()
		return func(i int) int64 {
			if v[i] {
				return 1
			}
			return 0
		}
	case Int8:
		v := a.asInt8()
		return func(i int) int64 { return int64(v[i]) }
	case Int16:
		v := a.asInt16()
		return func(i int) int64 { return int64(v[i]) }
	case Int32:
		v := a.asInt32()
		return func(i int) int64 { return int64(v[i]) }
	case Int64:
		v := a.asInt64()
		return func(i int) int64 { return v[i] }
	default:
		panic(fmt.Sprintf("intReader: dtype %s is not in the signed lane", a.dtype))
	}
}

// intWriter returns an accessor storing an int64 into element i with
// wrapping narrowing. Valid for bool and the signed kinds.
func intWriter(a *Array) func(i int, v int64) {
	switch a.dtype {
	case Bool:
		w := a.asBool()
		return func(i int, v int64) { w[i] = v != 0 }
	case Int8:
		w := a.asInt8()
		return func(i int, v int64) { w[i] = int8(v) }
	case Int16:
		w := a.asInt16()
		return func(i int, v int64) { w[i] = int16(v) }
	case Int32:
		w := a.asInt32()
		return func(i int, v int64) { w[i] = int32(v) }
	case Int64:
		w := a.asInt64()
		return func(i int, v int64) { w[i] = v }
	default:
		panic(fmt.Sprintf("intWriter: dtype %s is not in the signed lane", a.dtype))
	}
}

// uintReader returns an accessor yielding element i zero-extended to
// uint64. Valid for bool and the unsigned kinds.
func uintReader(a *Array) func(i int) uint64 {
	switch a.dtype {
	case Bool:
		v := a.asBool()
		return func(i int) uint64 {
			if v[i] {
				return 1
			}
			return 0
		}
	case Uint8:
		v := a.asUint8()
		return func(i int) uint64 { return uint64(v[i]) }
	case Uint16:
		v := a.asUint16()
		return func(i int) uint64 { return uint64(v[i]) }
	case Uint32:
		v := a.asUint32()
		return func(i int) uint64 { return uint64(v[i]) }
	case Uint64:
		v := a.asUint64()
		return func(i int) uint64 { return v[i] }
	default:
		panic(fmt.Sprintf("uintReader: dtype %s is not in the unsigned lane", a.dtype))
	}
}

// uintWriter returns an accessor storing a uint64 into element i with
// wrapping narrowing. Valid for bool and the unsigned kinds.
func uintWriter(a *Array) func(i int, v uint64) {
	switch a.dtype {
	case Bool:
		w := a.asBool()
		return func(i int, v uint64) { w[i] = v != 0 }
	case Uint8:
		w := a.asUint8()
		return func(i int, v uint64) { w[i] = uint8(v) }
	case Uint16:
		w := a.asUint16()
		return func(i int, v uint64) { w[i] = uint16(v) }
	case Uint32:
		w := a.asUint32()
		return func(i int, v uint64) { w[i] = uint32(v) }
	case Uint64:
		w := a.asUint64()
		return func(i int, v uint64) { w[i] = v }
	default:
		panic(fmt.Sprintf("uintWriter: dtype %s is not in the unsigned lane", a.dtype))
	}
}

// complexReader returns an accessor yielding element i as complex128.
// Real kinds read as (value, 0i), so it is valid for every dtype.
func complexReader(a *Array) func(i int) complex128 {
	if a.dtype == Complex64 {
		v := a.asComplex64()
		return func(i int) complex128 { return complex128(v[i]) }
	}
	r := floatReader(a)
	return func(i int) complex128 { return complex(r(i), 0) }
}

// complexWriter returns an accessor storing a complex128 into element
// i. Valid only for complex64 storage.
func complexWriter(a *Array) func(i int, v complex128) {
	if a.dtype != Complex64 {
		panic(fmt.Sprintf("complexWriter: dtype %s is not complex", a.dtype))
	}
	w := a.asComplex64()
	return func(i int, v complex128) { w[i] = complex64(v) }
}

// truthyReader returns an accessor reporting whether element i is
// nonzero, for any dtype.
func truthyReader(a *Array) func(i int) bool {
	switch a.dtype {
	case Bool:
		v := a.asBool()
		return func(i int) bool { return v[i] }
	case Complex64:
		v := a.asComplex64()
		return func(i int) bool { return v[i] != 0 }
	default:
		r := floatReader(a)
		return func(i int) bool { return r(i) != 0 }
	}
}
