package array

import (
	"math"
	"math/cmplx"

	"github.com/pkg/errors"

	"github.com/MLXPorts/mlx-go/internal/stream"
)

// A unaryKernel is one elementwise function per compute lane. When
// promote is set the operand is first lifted into its float compute
// dtype (integers and bool to float32), so only floatFn and cplxFn
// apply; otherwise the operand keeps its dtype and every lane needs a
// function. cplxToReal marks kernels that map complex64 into float32
// (abs).
type unaryKernel struct {
	name       string
	promote    bool
	intFn      func(x int64) int64
	uintFn     func(x uint64) uint64
	floatFn    func(x float64) float64
	cplxFn     func(x complex128) complex128
	cplxToReal func(x complex128) float64
}

// unaryOp normalizes the operand, settles the compute dtype, and runs
// one kernel pass on the resolved stream.
func unaryOp(k unaryKernel, v any, s []*stream.Stream) (*Array, error) {
	op, err := toOperand(v)
	if err != nil {
		return nil, errors.Wrap(err, k.name)
	}

	dt := op.defaultDtype()
	if k.promote {
		dt = floatDtype(dt)
	}
	if dt == Complex64 && k.cplxFn == nil && k.cplxToReal == nil {
		return nil, errors.Wrapf(ErrInvalidArgument, "%s is not defined for complex64", k.name)
	}

	x, err := op.materialize(dt)
	if err != nil {
		return nil, errors.Wrap(err, k.name)
	}

	outDtype := dt
	if dt == Complex64 && k.cplxToReal != nil {
		outDtype = Float32
	}
	out, err := newDense(x.shape, outDtype)
	if err != nil {
		return nil, errors.Wrap(err, k.name)
	}

	n := out.NumElements()
	stream.Resolve(s...).Do(func() {
		switch {
		case dt == Complex64 && k.cplxToReal != nil:
			r := complexReader(x)
			w := floatWriter(out)
			fn := k.cplxToReal
			parallelFor(n, func(i int) { w(i, fn(r(i))) })
		case dt == Complex64:
			r := complexReader(x)
			w := complexWriter(out)
			fn := k.cplxFn
			parallelFor(n, func(i int) { w(i, fn(r(i))) })
		case laneOf(dt) == laneInt:
			r := intReader(x)
			w := intWriter(out)
			fn := k.intFn
			parallelFor(n, func(i int) { w(i, fn(r(i))) })
		case laneOf(dt) == laneUint:
			r := uintReader(x)
			w := uintWriter(out)
			fn := k.uintFn
			parallelFor(n, func(i int) { w(i, fn(r(i))) })
		default:
			r := floatReader(x)
			w := floatWriter(out)
			fn := k.floatFn
			parallelFor(n, func(i int) { w(i, fn(r(i))) })
		}
	})
	return out, nil
}

var sinKernel = unaryKernel{name: "sin", promote: true, floatFn: math.Sin, cplxFn: cmplx.Sin}
var cosKernel = unaryKernel{name: "cos", promote: true, floatFn: math.Cos, cplxFn: cmplx.Cos}
var tanKernel = unaryKernel{name: "tan", promote: true, floatFn: math.Tan, cplxFn: cmplx.Tan}
var arcsinKernel = unaryKernel{name: "arcsin", promote: true, floatFn: math.Asin, cplxFn: cmplx.Asin}
var arccosKernel = unaryKernel{name: "arccos", promote: true, floatFn: math.Acos, cplxFn: cmplx.Acos}
var arctanKernel = unaryKernel{name: "arctan", promote: true, floatFn: math.Atan, cplxFn: cmplx.Atan}
var expKernel = unaryKernel{name: "exp", promote: true, floatFn: math.Exp, cplxFn: cmplx.Exp}
var logKernel = unaryKernel{name: "log", promote: true, floatFn: math.Log, cplxFn: cmplx.Log}
var sqrtKernel = unaryKernel{name: "sqrt", promote: true, floatFn: math.Sqrt, cplxFn: cmplx.Sqrt}

var rsqrtKernel = unaryKernel{
	name:    "rsqrt",
	promote: true,
	floatFn: func(x float64) float64 { return 1 / math.Sqrt(x) },
	cplxFn:  func(x complex128) complex128 { return 1 / cmplx.Sqrt(x) },
}

var squareKernel = unaryKernel{
	name:    "square",
	intFn:   func(x int64) int64 { return x * x },
	uintFn:  func(x uint64) uint64 { return x * x },
	floatFn: func(x float64) float64 { return x * x },
	cplxFn:  func(x complex128) complex128 { return x * x },
}

var absKernel = unaryKernel{
	name: "abs",
	intFn: func(x int64) int64 {
		if x < 0 {
			return -x
		}
		return x
	},
	uintFn:     func(x uint64) uint64 { return x },
	floatFn:    math.Abs,
	cplxToReal: cmplx.Abs,
}

var signKernel = unaryKernel{
	name: "sign",
	intFn: func(x int64) int64 {
		switch {
		case x > 0:
			return 1
		case x < 0:
			return -1
		default:
			return 0
		}
	},
	uintFn: func(x uint64) uint64 {
		if x > 0 {
			return 1
		}
		return 0
	},
	floatFn: func(x float64) float64 {
		switch {
		case math.IsNaN(x):
			return x
		case x > 0:
			return 1
		case x < 0:
			return -1
		default:
			return 0
		}
	},
	cplxFn: func(x complex128) complex128 {
		if x == 0 {
			return 0
		}
		return x / complex(cmplx.Abs(x), 0)
	},
}

var negativeKernel = unaryKernel{
	name:    "negative",
	intFn:   func(x int64) int64 { return -x },
	uintFn:  func(x uint64) uint64 { return -x },
	floatFn: func(x float64) float64 { return -x },
	cplxFn:  func(x complex128) complex128 { return -x },
}

// Sin returns the elementwise sine. Integer and bool inputs compute in
// float32.
func Sin(v any, s ...*stream.Stream) (*Array, error) {
	return unaryOp(sinKernel, v, s)
}

// Cos returns the elementwise cosine.
func Cos(v any, s ...*stream.Stream) (*Array, error) {
	return unaryOp(cosKernel, v, s)
}

// Tan returns the elementwise tangent.
func Tan(v any, s ...*stream.Stream) (*Array, error) {
	return unaryOp(tanKernel, v, s)
}

// Arcsin returns the elementwise inverse sine. Inputs outside [-1, 1]
// yield NaN.
func Arcsin(v any, s ...*stream.Stream) (*Array, error) {
	return unaryOp(arcsinKernel, v, s)
}

// Arccos returns the elementwise inverse cosine.
func Arccos(v any, s ...*stream.Stream) (*Array, error) {
	return unaryOp(arccosKernel, v, s)
}

// Arctan returns the elementwise inverse tangent.
func Arctan(v any, s ...*stream.Stream) (*Array, error) {
	return unaryOp(arctanKernel, v, s)
}

// Exp returns the elementwise natural exponential.
func Exp(v any, s ...*stream.Stream) (*Array, error) {
	return unaryOp(expKernel, v, s)
}

// Log returns the elementwise natural logarithm. Zero and negative
// inputs yield -Inf and NaN per IEEE; nothing is detected.
func Log(v any, s ...*stream.Stream) (*Array, error) {
	return unaryOp(logKernel, v, s)
}

// Sqrt returns the elementwise square root. Negative real inputs
// yield NaN.
func Sqrt(v any, s ...*stream.Stream) (*Array, error) {
	return unaryOp(sqrtKernel, v, s)
}

// Rsqrt returns the elementwise reciprocal square root.
func Rsqrt(v any, s ...*stream.Stream) (*Array, error) {
	return unaryOp(rsqrtKernel, v, s)
}

// Square returns the elementwise square, preserving dtype.
func Square(v any, s ...*stream.Stream) (*Array, error) {
	return unaryOp(squareKernel, v, s)
}

// Abs returns the elementwise absolute value, preserving dtype;
// complex64 inputs yield their float32 modulus.
func Abs(v any, s ...*stream.Stream) (*Array, error) {
	return unaryOp(absKernel, v, s)
}

// Sign returns -1, 0, or 1 per element in the input's dtype family.
// Complex inputs yield x/|x| and 0 at the origin.
func Sign(v any, s ...*stream.Stream) (*Array, error) {
	return unaryOp(signKernel, v, s)
}

// Negative returns the elementwise negation, preserving dtype;
// unsigned kinds wrap.
func Negative(v any, s ...*stream.Stream) (*Array, error) {
	return unaryOp(negativeKernel, v, s)
}
