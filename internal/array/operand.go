package array

import (
	"github.com/pkg/errors"
)

// Operands of elementwise operations are a closed sum: an *Array or a
// host scalar. Scalars promote weakly: they adopt the array operand's
// dtype where that loses nothing, instead of dragging every mixed
// expression up to the scalar's default kind.

type scalarKind int

const (
	scalarBool scalarKind = iota
	scalarInt
	scalarFloat
	scalarComplex
)

type operand struct {
	arr    *Array
	isScal bool
	kind   scalarKind
	b      bool
	i      int64
	f      float64
	c      complex128
}

// toOperand normalizes an op argument: an *Array passes through, a
// host scalar is classified, anything else is rejected.
func toOperand(v any) (operand, error) {
	switch x := v.(type) {
	case *Array:
		if x == nil {
			return operand{}, errors.Wrap(ErrInvalidArgument, "nil array operand")
		}
		return operand{arr: x}, nil
	case bool:
		return operand{isScal: true, kind: scalarBool, b: x}, nil
	case int:
		return operand{isScal: true, kind: scalarInt, i: int64(x)}, nil
	case int8:
		return operand{isScal: true, kind: scalarInt, i: int64(x)}, nil
	case int16:
		return operand{isScal: true, kind: scalarInt, i: int64(x)}, nil
	case int32:
		return operand{isScal: true, kind: scalarInt, i: int64(x)}, nil
	case int64:
		return operand{isScal: true, kind: scalarInt, i: x}, nil
	case uint:
		return operand{isScal: true, kind: scalarInt, i: int64(x)}, nil
	case uint8:
		return operand{isScal: true, kind: scalarInt, i: int64(x)}, nil
	case uint16:
		return operand{isScal: true, kind: scalarInt, i: int64(x)}, nil
	case uint32:
		return operand{isScal: true, kind: scalarInt, i: int64(x)}, nil
	case uint64:
		return operand{isScal: true, kind: scalarInt, i: int64(x)}, nil
	case float32:
		return operand{isScal: true, kind: scalarFloat, f: float64(x)}, nil
	case float64:
		return operand{isScal: true, kind: scalarFloat, f: x}, nil
	case complex64:
		return operand{isScal: true, kind: scalarComplex, c: complex128(x)}, nil
	case complex128:
		return operand{isScal: true, kind: scalarComplex, c: x}, nil
	default:
		return operand{}, errors.Wrapf(ErrInvalidArgument, "operand must be *Array or a host scalar, got %T", v)
	}
}

// defaultDtype is the kind a bare scalar infers with no array operand
// to borrow from.
func (o operand) defaultDtype() Dtype {
	if !o.isScal {
		return o.arr.dtype
	}
	switch o.kind {
	case scalarBool:
		return Bool
	case scalarInt:
		return Int32
	case scalarFloat:
		return Float32
	default:
		return Complex64
	}
}

// weakDtype is the kind a scalar adopts against an array of dtype dt.
func (o operand) weakDtype(dt Dtype) Dtype {
	switch o.kind {
	case scalarBool:
		return dt
	case scalarInt:
		if IsSubDtype(dt, Number) {
			return dt
		}
		return Int32
	case scalarFloat:
		if IsSubDtype(dt, Inexact) {
			return dt
		}
		return Float32
	default:
		return Complex64
	}
}

// computeDtype resolves the common dtype of a binary operation's
// operands under weak scalar promotion.
func computeDtype(a, b operand) Dtype {
	switch {
	case !a.isScal && !b.isScal:
		return Promote(a.arr.dtype, b.arr.dtype)
	case a.isScal && !b.isScal:
		return Promote(a.weakDtype(b.arr.dtype), b.arr.dtype)
	case !a.isScal && b.isScal:
		return Promote(a.arr.dtype, b.weakDtype(a.arr.dtype))
	default:
		return Promote(a.defaultDtype(), b.defaultDtype())
	}
}

// materialize yields the operand as an array of dtype dt: arrays cast,
// scalars become rank-0 values. Matching-dtype arrays pass through
// uncloned; callers only read them.
func (o operand) materialize(dt Dtype) (*Array, error) {
	if !o.isScal {
		if o.arr.dtype == dt {
			return o.arr, nil
		}
		return castTo(o.arr, dt)
	}

	out, err := newDense(Shape{}, dt)
	if err != nil {
		return nil, err
	}
	switch {
	case dt == Complex64:
		complexWriter(out)(0, o.scalarComplex())
	case o.kind == scalarInt && laneOf(dt) == laneInt:
		intWriter(out)(0, o.i)
	case o.kind == scalarInt && laneOf(dt) == laneUint:
		uintWriter(out)(0, uint64(o.i))
	default:
		floatWriter(out)(0, o.scalarFloat())
	}
	return out, nil
}

// scalarFloat renders the scalar payload as float64.
func (o operand) scalarFloat() float64 {
	switch o.kind {
	case scalarBool:
		if o.b {
			return 1
		}
		return 0
	case scalarInt:
		return float64(o.i)
	case scalarFloat:
		return o.f
	default:
		return real(o.c)
	}
}

// scalarComplex renders the scalar payload as complex128.
func (o operand) scalarComplex() complex128 {
	if o.kind == scalarComplex {
		return o.c
	}
	return complex(o.scalarFloat(), 0)
}

// shape returns the operand's shape; scalars are rank 0.
func (o operand) shape() Shape {
	if o.isScal {
		return Shape{}
	}
	return o.arr.shape
}
