package array

import (
	"github.com/pkg/errors"

	"github.com/MLXPorts/mlx-go/internal/stream"
)

// Reshape returns a copy of a laid out under newShape. The flat
// row-major element order is preserved; element counts must match.
func Reshape(a *Array, newShape Shape, s ...*stream.Stream) (*Array, error) {
	if err := ValidateReshape(a.shape, newShape); err != nil {
		return nil, err
	}
	var out *Array
	stream.Resolve(s...).Do(func() {
		out = a.withShape(newShape)
	})
	return out, nil
}

// Flatten returns a rank-1 copy of a in row-major order.
func Flatten(a *Array, s ...*stream.Stream) (*Array, error) {
	return Reshape(a, Shape{a.NumElements()}, s...)
}

// Transpose returns a copy of a with its dimensions permuted. A nil
// axes slice reverses the dimension order; an explicit axes slice must
// be a permutation of [0, rank) after resolving negative entries.
func Transpose(a *Array, axes []int, s ...*stream.Stream) (*Array, error) {
	rank := a.Rank()
	perm := make([]int, rank)

	if axes == nil {
		for i := range perm {
			perm[i] = rank - 1 - i
		}
	} else {
		if len(axes) != rank {
			return nil, errors.Wrapf(ErrAxis, "transpose needs %d axes, got %d", rank, len(axes))
		}
		seen := make([]bool, rank)
		for i, ax := range axes {
			n, err := normalizeAxis(ax, rank)
			if err != nil {
				return nil, err
			}
			if seen[n] {
				return nil, errors.Wrapf(ErrAxis, "transpose axes %v repeat axis %d", axes, n)
			}
			seen[n] = true
			perm[i] = n
		}
	}

	var out *Array
	var err error
	stream.Resolve(s...).Do(func() {
		out, err = transposeByPerm(a, perm)
	})
	return out, err
}

// transposeByPerm materializes the permuted copy.
func transposeByPerm(a *Array, perm []int) (*Array, error) {
	rank := len(a.shape)
	outShape := make(Shape, rank)
	for k, ax := range perm {
		outShape[k] = a.shape[ax]
	}
	out, err := newDense(outShape, a.dtype)
	if err != nil {
		return nil, err
	}

	inStrides := a.shape.ComputeStrides()
	permStrides := make([]int, rank)
	for k, ax := range perm {
		permStrides[k] = inStrides[ax]
	}
	outStrides := outShape.ComputeStrides()
	parallelFor(out.NumElements(), func(i int) {
		copyElem(out, i, a, flatIndex(i, outStrides, permStrides))
	})
	return out, nil
}

// Moveaxis returns a copy of a with the source dimension moved to the
// destination position, other dimensions keeping their order.
func Moveaxis(a *Array, source, destination int, s ...*stream.Stream) (*Array, error) {
	rank := a.Rank()
	src, err := normalizeAxis(source, rank)
	if err != nil {
		return nil, err
	}
	dst, err := normalizeAxis(destination, rank)
	if err != nil {
		return nil, err
	}

	perm := make([]int, 0, rank)
	for i := 0; i < rank; i++ {
		if i != src {
			perm = append(perm, i)
		}
	}
	perm = append(perm[:dst], append([]int{src}, perm[dst:]...)...)

	var out *Array
	stream.Resolve(s...).Do(func() {
		out, err = transposeByPerm(a, perm)
	})
	return out, err
}

// Swapaxes returns a copy of a with two dimensions exchanged.
func Swapaxes(a *Array, axis1, axis2 int, s ...*stream.Stream) (*Array, error) {
	rank := a.Rank()
	a1, err := normalizeAxis(axis1, rank)
	if err != nil {
		return nil, err
	}
	a2, err := normalizeAxis(axis2, rank)
	if err != nil {
		return nil, err
	}

	perm := make([]int, rank)
	for i := range perm {
		perm[i] = i
	}
	perm[a1], perm[a2] = perm[a2], perm[a1]

	var out *Array
	stream.Resolve(s...).Do(func() {
		out, err = transposeByPerm(a, perm)
	})
	return out, err
}

// ExpandDims returns a copy of a with a size-1 dimension inserted at
// axis. Axis resolves against the result rank, so -1 appends.
func ExpandDims(a *Array, axis int, s ...*stream.Stream) (*Array, error) {
	rank := a.Rank()
	ax, err := normalizeAxis(axis, rank+1)
	if err != nil {
		return nil, err
	}

	newShape := make(Shape, 0, rank+1)
	newShape = append(newShape, a.shape[:ax]...)
	newShape = append(newShape, 1)
	newShape = append(newShape, a.shape[ax:]...)

	var out *Array
	stream.Resolve(s...).Do(func() {
		out = a.withShape(newShape)
	})
	return out, nil
}

// Squeeze returns a copy of a with size-1 dimensions removed. A nil
// axes slice removes them all; explicit axes must name size-1
// dimensions, else ErrInvalidArgument.
func Squeeze(a *Array, axes []int, s ...*stream.Stream) (*Array, error) {
	rank := a.Rank()
	drop := make([]bool, rank)

	if axes == nil {
		for i, dim := range a.shape {
			if dim == 1 {
				drop[i] = true
			}
		}
	} else {
		for _, ax := range axes {
			n, err := normalizeAxis(ax, rank)
			if err != nil {
				return nil, err
			}
			if a.shape[n] != 1 {
				return nil, errors.Wrapf(ErrInvalidArgument,
					"cannot squeeze axis %d of shape %v: size %d != 1", n, a.shape, a.shape[n])
			}
			drop[n] = true
		}
	}

	newShape := make(Shape, 0, rank)
	for i, dim := range a.shape {
		if !drop[i] {
			newShape = append(newShape, dim)
		}
	}

	var out *Array
	stream.Resolve(s...).Do(func() {
		out = a.withShape(newShape)
	})
	return out, nil
}

// Where selects elements from x where condition is nonzero and from y
// elsewhere. All three operands broadcast together; the result dtype
// is the promotion of x and y.
func Where(condition, x, y any, s ...*stream.Stream) (*Array, error) {
	oc, err := toOperand(condition)
	if err != nil {
		return nil, errors.Wrap(err, "where")
	}
	ox, err := toOperand(x)
	if err != nil {
		return nil, errors.Wrap(err, "where")
	}
	oy, err := toOperand(y)
	if err != nil {
		return nil, errors.Wrap(err, "where")
	}

	dt := computeDtype(ox, oy)

	partial, err := BroadcastShapes(oc.shape(), ox.shape())
	if err != nil {
		return nil, errors.Wrap(err, "where")
	}
	outShape, err := BroadcastShapes(partial, oy.shape())
	if err != nil {
		return nil, errors.Wrap(err, "where")
	}

	c, err := oc.materialize(oc.defaultDtype())
	if err != nil {
		return nil, errors.Wrap(err, "where")
	}
	xa, err := ox.materialize(dt)
	if err != nil {
		return nil, errors.Wrap(err, "where")
	}
	ya, err := oy.materialize(dt)
	if err != nil {
		return nil, errors.Wrap(err, "where")
	}

	out, err := newDense(outShape, dt)
	if err != nil {
		return nil, errors.Wrap(err, "where")
	}

	stream.Resolve(s...).Do(func() {
		truthy := truthyReader(c)
		eachTernary(out, c, xa, ya, func(dst, ci, xi, yi int) {
			if truthy(ci) {
				copyElem(out, dst, xa, xi)
			} else {
				copyElem(out, dst, ya, yi)
			}
		})
	})
	return out, nil
}
