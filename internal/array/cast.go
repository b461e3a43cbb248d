package array

import (
	"github.com/MLXPorts/mlx-go/internal/stream"
)

// AsType returns a copy of a converted to dtype. Float sources
// truncate toward zero into integer kinds; integer-to-integer
// conversion wraps like a C cast; real targets take the real part of
// complex sources; bool stores nonzero as true.
func AsType(a *Array, dtype Dtype, s ...*stream.Stream) (*Array, error) {
	op, err := toOperand(a)
	if err != nil {
		return nil, err
	}
	var out *Array
	stream.Resolve(s...).Do(func() {
		out, err = castTo(op.arr, dtype)
	})
	return out, err
}

// castTo is the stream-free cast used internally by promotion.
func castTo(a *Array, dtype Dtype) (*Array, error) {
	if a.dtype == dtype {
		return a.Clone(), nil
	}
	out, err := newDense(a.shape, dtype)
	if err != nil {
		return nil, err
	}
	n := a.NumElements()

	switch {
	case dtype == Complex64:
		r := complexReader(a)
		w := complexWriter(out)
		parallelFor(n, func(i int) { w(i, r(i)) })
	case a.dtype == Complex64:
		v := a.asComplex64()
		w := floatWriter(out)
		parallelFor(n, func(i int) { w(i, float64(real(v[i]))) })
	case integerLike(a.dtype) && integerLike(dtype):
		// Bit-exact narrowing/widening between the integer kinds;
		// signedness changes reinterpret two's complement.
		r := bitsReader(a)
		w := bitsWriter(out)
		parallelFor(n, func(i int) { w(i, r(i)) })
	default:
		r := floatReader(a)
		w := floatWriter(out)
		parallelFor(n, func(i int) { w(i, r(i)) })
	}
	return out, nil
}

// integerLike reports membership in the wrap-carrying cast path.
func integerLike(dt Dtype) bool {
	switch laneOf(dt) {
	case laneInt, laneUint:
		return true
	default:
		return false
	}
}

// bitsReader reads any integer-family element as its two's-complement
// uint64 image.
func bitsReader(a *Array) func(i int) uint64 {
	if laneOf(a.dtype) == laneUint {
		return uintReader(a)
	}
	r := intReader(a)
	return func(i int) uint64 { return uint64(r(i)) }
}

// bitsWriter stores a uint64 image into any integer-family element.
func bitsWriter(a *Array) func(i int, v uint64) {
	if laneOf(a.dtype) == laneUint {
		return uintWriter(a)
	}
	w := intWriter(a)
	return func(i int, v uint64) { w(i, int64(v)) }
}
