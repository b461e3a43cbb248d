package array

import (
	"math"
	"math/cmplx"

	"github.com/pkg/errors"

	"github.com/MLXPorts/mlx-go/internal/stream"
)

// A binKernel is one arithmetic operation expressed per compute lane.
// A nil cplxFn marks the operation undefined over complex64, which
// surfaces as ErrInvalidArgument instead of a kernel dispatch. The
// floatOnly flag forces integer and bool operands into float32 before
// computing (arctan2).
type binKernel struct {
	name      string
	intFn     func(x, y int64) int64
	uintFn    func(x, y uint64) uint64
	floatFn   func(x, y float64) float64
	cplxFn    func(x, y complex128) complex128
	floatOnly bool
}

// binaryOp is the shared entry for the arithmetic binary ops: operand
// normalization, weak dtype promotion, broadcasting, then one kernel
// pass on the resolved stream.
func binaryOp(k binKernel, a, b any, s []*stream.Stream) (*Array, error) {
	oa, err := toOperand(a)
	if err != nil {
		return nil, errors.Wrap(err, k.name)
	}
	ob, err := toOperand(b)
	if err != nil {
		return nil, errors.Wrap(err, k.name)
	}

	dt := computeDtype(oa, ob)
	if k.floatOnly {
		if dt == Complex64 {
			return nil, errors.Wrapf(ErrInvalidArgument, "%s is not defined for complex64", k.name)
		}
		dt = floatDtype(dt)
	}
	if dt == Complex64 && k.cplxFn == nil {
		return nil, errors.Wrapf(ErrInvalidArgument, "%s is not defined for complex64", k.name)
	}

	outShape, err := BroadcastShapes(oa.shape(), ob.shape())
	if err != nil {
		return nil, errors.Wrap(err, k.name)
	}

	x, err := oa.materialize(dt)
	if err != nil {
		return nil, errors.Wrap(err, k.name)
	}
	y, err := ob.materialize(dt)
	if err != nil {
		return nil, errors.Wrap(err, k.name)
	}

	out, err := newDense(outShape, dt)
	if err != nil {
		return nil, errors.Wrap(err, k.name)
	}

	stream.Resolve(s...).Do(func() {
		switch laneOf(dt) {
		case laneInt:
			rx, ry := intReader(x), intReader(y)
			w := intWriter(out)
			fn := k.intFn
			eachBinary(out, x, y, func(dst, xi, yi int) { w(dst, fn(rx(xi), ry(yi))) })
		case laneUint:
			rx, ry := uintReader(x), uintReader(y)
			w := uintWriter(out)
			fn := k.uintFn
			eachBinary(out, x, y, func(dst, xi, yi int) { w(dst, fn(rx(xi), ry(yi))) })
		case laneFloat:
			rx, ry := floatReader(x), floatReader(y)
			w := floatWriter(out)
			fn := k.floatFn
			eachBinary(out, x, y, func(dst, xi, yi int) { w(dst, fn(rx(xi), ry(yi))) })
		case laneComplex:
			rx, ry := complexReader(x), complexReader(y)
			w := complexWriter(out)
			fn := k.cplxFn
			eachBinary(out, x, y, func(dst, xi, yi int) { w(dst, fn(rx(xi), ry(yi))) })
		}
	})
	return out, nil
}

// A cmpKernel is one comparison predicate per compute lane. Ordering
// comparisons leave cplxFn nil; complex64 supports only equality.
type cmpKernel struct {
	name    string
	intFn   func(x, y int64) bool
	uintFn  func(x, y uint64) bool
	floatFn func(x, y float64) bool
	cplxFn  func(x, y complex128) bool
}

// compareOp shares binaryOp's normalization but always produces a bool
// array; operands are compared in their promoted common dtype.
func compareOp(k cmpKernel, a, b any, s []*stream.Stream) (*Array, error) {
	oa, err := toOperand(a)
	if err != nil {
		return nil, errors.Wrap(err, k.name)
	}
	ob, err := toOperand(b)
	if err != nil {
		return nil, errors.Wrap(err, k.name)
	}

	dt := computeDtype(oa, ob)
	if dt == Complex64 && k.cplxFn == nil {
		return nil, errors.Wrapf(ErrInvalidArgument, "%s is not defined for complex64", k.name)
	}

	outShape, err := BroadcastShapes(oa.shape(), ob.shape())
	if err != nil {
		return nil, errors.Wrap(err, k.name)
	}

	x, err := oa.materialize(dt)
	if err != nil {
		return nil, errors.Wrap(err, k.name)
	}
	y, err := ob.materialize(dt)
	if err != nil {
		return nil, errors.Wrap(err, k.name)
	}

	out, err := newDense(outShape, Bool)
	if err != nil {
		return nil, errors.Wrap(err, k.name)
	}

	stream.Resolve(s...).Do(func() {
		w := out.asBool()
		switch laneOf(dt) {
		case laneInt:
			rx, ry := intReader(x), intReader(y)
			fn := k.intFn
			eachBinary(out, x, y, func(dst, xi, yi int) { w[dst] = fn(rx(xi), ry(yi)) })
		case laneUint:
			rx, ry := uintReader(x), uintReader(y)
			fn := k.uintFn
			eachBinary(out, x, y, func(dst, xi, yi int) { w[dst] = fn(rx(xi), ry(yi)) })
		case laneFloat:
			rx, ry := floatReader(x), floatReader(y)
			fn := k.floatFn
			eachBinary(out, x, y, func(dst, xi, yi int) { w[dst] = fn(rx(xi), ry(yi)) })
		case laneComplex:
			rx, ry := complexReader(x), complexReader(y)
			fn := k.cplxFn
			eachBinary(out, x, y, func(dst, xi, yi int) { w[dst] = fn(rx(xi), ry(yi)) })
		}
	})
	return out, nil
}

// ipow computes integer exponentiation by squaring, wrapping on
// overflow. Negative exponents compute in float and truncate, which
// collapses to 0 for any |base| > 1.
func ipow(base, exp int64) int64 {
	if exp < 0 {
		f := math.Pow(float64(base), float64(exp))
		if math.IsInf(f, 0) || math.IsNaN(f) {
			return 0
		}
		return int64(f)
	}
	r := int64(1)
	for exp > 0 {
		if exp&1 == 1 {
			r *= base
		}
		base *= base
		exp >>= 1
	}
	return r
}

// upow is ipow over the unsigned lane.
func upow(base, exp uint64) uint64 {
	r := uint64(1)
	for exp > 0 {
		if exp&1 == 1 {
			r *= base
		}
		base *= base
		exp >>= 1
	}
	return r
}

var addKernel = binKernel{
	name:    "add",
	intFn:   func(x, y int64) int64 { return x + y },
	uintFn:  func(x, y uint64) uint64 { return x + y },
	floatFn: func(x, y float64) float64 { return x + y },
	cplxFn:  func(x, y complex128) complex128 { return x + y },
}

var subtractKernel = binKernel{
	name:    "subtract",
	intFn:   func(x, y int64) int64 { return x - y },
	uintFn:  func(x, y uint64) uint64 { return x - y },
	floatFn: func(x, y float64) float64 { return x - y },
	cplxFn:  func(x, y complex128) complex128 { return x - y },
}

var multiplyKernel = binKernel{
	name:    "multiply",
	intFn:   func(x, y int64) int64 { return x * y },
	uintFn:  func(x, y uint64) uint64 { return x * y },
	floatFn: func(x, y float64) float64 { return x * y },
	cplxFn:  func(x, y complex128) complex128 { return x * y },
}

// Integer division truncates toward zero and defines division by zero
// as 0; the float lanes follow IEEE and produce ±Inf or NaN instead.
var divideKernel = binKernel{
	name: "divide",
	intFn: func(x, y int64) int64 {
		if y == 0 {
			return 0
		}
		return x / y
	},
	uintFn: func(x, y uint64) uint64 {
		if y == 0 {
			return 0
		}
		return x / y
	},
	floatFn: func(x, y float64) float64 { return x / y },
	cplxFn:  func(x, y complex128) complex128 { return x / y },
}

var powerKernel = binKernel{
	name:    "power",
	intFn:   ipow,
	uintFn:  upow,
	floatFn: math.Pow,
	cplxFn:  cmplx.Pow,
}

var maximumKernel = binKernel{
	name:    "maximum",
	intFn:   func(x, y int64) int64 { return max(x, y) },
	uintFn:  func(x, y uint64) uint64 { return max(x, y) },
	floatFn: math.Max,
}

var minimumKernel = binKernel{
	name:    "minimum",
	intFn:   func(x, y int64) int64 { return min(x, y) },
	uintFn:  func(x, y uint64) uint64 { return min(x, y) },
	floatFn: math.Min,
}

var arctan2Kernel = binKernel{
	name:      "arctan2",
	floatFn:   math.Atan2,
	floatOnly: true,
}

// Add returns the elementwise sum of a and b.
func Add(a, b any, s ...*stream.Stream) (*Array, error) {
	return binaryOp(addKernel, a, b, s)
}

// Subtract returns the elementwise difference a - b.
func Subtract(a, b any, s ...*stream.Stream) (*Array, error) {
	return binaryOp(subtractKernel, a, b, s)
}

// Multiply returns the elementwise product of a and b.
func Multiply(a, b any, s ...*stream.Stream) (*Array, error) {
	return binaryOp(multiplyKernel, a, b, s)
}

// Divide returns the elementwise quotient a / b. Integer operands
// divide with truncation toward zero; dividing by integer zero yields
// zero.
func Divide(a, b any, s ...*stream.Stream) (*Array, error) {
	return binaryOp(divideKernel, a, b, s)
}

// Power returns a raised elementwise to the power b. Integer bases
// with non-negative integer exponents compute exactly, wrapping on
// overflow.
func Power(a, b any, s ...*stream.Stream) (*Array, error) {
	return binaryOp(powerKernel, a, b, s)
}

// Maximum returns the elementwise larger of a and b. Not defined for
// complex64.
func Maximum(a, b any, s ...*stream.Stream) (*Array, error) {
	return binaryOp(maximumKernel, a, b, s)
}

// Minimum returns the elementwise smaller of a and b. Not defined for
// complex64.
func Minimum(a, b any, s ...*stream.Stream) (*Array, error) {
	return binaryOp(minimumKernel, a, b, s)
}

// Arctan2 returns the elementwise two-argument arctangent of y and x.
// Integer and bool operands compute in float32.
func Arctan2(y, x any, s ...*stream.Stream) (*Array, error) {
	return binaryOp(arctan2Kernel, y, x, s)
}

var equalKernel = cmpKernel{
	name:    "equal",
	intFn:   func(x, y int64) bool { return x == y },
	uintFn:  func(x, y uint64) bool { return x == y },
	floatFn: func(x, y float64) bool { return x == y },
	cplxFn:  func(x, y complex128) bool { return x == y },
}

var notEqualKernel = cmpKernel{
	name:    "not_equal",
	intFn:   func(x, y int64) bool { return x != y },
	uintFn:  func(x, y uint64) bool { return x != y },
	floatFn: func(x, y float64) bool { return x != y },
	cplxFn:  func(x, y complex128) bool { return x != y },
}

var lessKernel = cmpKernel{
	name:    "less",
	intFn:   func(x, y int64) bool { return x < y },
	uintFn:  func(x, y uint64) bool { return x < y },
	floatFn: func(x, y float64) bool { return x < y },
}

var lessEqualKernel = cmpKernel{
	name:    "less_equal",
	intFn:   func(x, y int64) bool { return x <= y },
	uintFn:  func(x, y uint64) bool { return x <= y },
	floatFn: func(x, y float64) bool { return x <= y },
}

var greaterKernel = cmpKernel{
	name:    "greater",
	intFn:   func(x, y int64) bool { return x > y },
	uintFn:  func(x, y uint64) bool { return x > y },
	floatFn: func(x, y float64) bool { return x > y },
}

var greaterEqualKernel = cmpKernel{
	name:    "greater_equal",
	intFn:   func(x, y int64) bool { return x >= y },
	uintFn:  func(x, y uint64) bool { return x >= y },
	floatFn: func(x, y float64) bool { return x >= y },
}

// Equal returns the elementwise equality of a and b as a bool array.
func Equal(a, b any, s ...*stream.Stream) (*Array, error) {
	return compareOp(equalKernel, a, b, s)
}

// NotEqual returns the elementwise inequality of a and b as a bool
// array.
func NotEqual(a, b any, s ...*stream.Stream) (*Array, error) {
	return compareOp(notEqualKernel, a, b, s)
}

// Less returns the elementwise a < b as a bool array. Not defined for
// complex64.
func Less(a, b any, s ...*stream.Stream) (*Array, error) {
	return compareOp(lessKernel, a, b, s)
}

// LessEqual returns the elementwise a <= b as a bool array. Not
// defined for complex64.
func LessEqual(a, b any, s ...*stream.Stream) (*Array, error) {
	return compareOp(lessEqualKernel, a, b, s)
}

// Greater returns the elementwise a > b as a bool array. Not defined
// for complex64.
func Greater(a, b any, s ...*stream.Stream) (*Array, error) {
	return compareOp(greaterKernel, a, b, s)
}

// GreaterEqual returns the elementwise a >= b as a bool array. Not
// defined for complex64.
func GreaterEqual(a, b any, s ...*stream.Stream) (*Array, error) {
	return compareOp(greaterEqualKernel, a, b, s)
}
