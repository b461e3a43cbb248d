package array

import (
	"github.com/pkg/errors"

	"github.com/MLXPorts/mlx-go/internal/parallel"
)

// parCfg drives the chunked elementwise loops. Shared process-wide;
// kernels only ever write disjoint output indices.
var parCfg = parallel.DefaultConfig()

// parallelFor runs fn over [0, n) under the shared loop config.
func parallelFor(n int, fn func(i int)) {
	parallel.For(n, fn, parCfg)
}

// broadcastStrides computes strides for walking inShape as if it had
// outShape. Dimensions of size 1 and implicit leading dimensions get
// stride 0, so repeated reads of the same source element fall out of
// the flat-index arithmetic.
func broadcastStrides(inShape, outShape Shape) []int {
	outDim := len(outShape)
	strides := make([]int, outDim)

	inDim := len(inShape)
	offset := outDim - inDim

	origStrides := inShape.ComputeStrides()

	for i := 0; i < outDim; i++ {
		inIdx := i - offset
		switch {
		case inIdx < 0:
			strides[i] = 0
		case inShape[inIdx] == 1:
			strides[i] = 0
		default:
			strides[i] = origStrides[inIdx]
		}
	}

	return strides
}

// flatIndex maps a flat output index to the flat source index under
// broadcast-adjusted strides.
func flatIndex(outIdx int, outStrides, inStrides []int) int {
	flatIdx := 0
	for i := range outStrides {
		coord := outIdx / outStrides[i]
		outIdx %= outStrides[i]
		flatIdx += coord * inStrides[i]
	}
	return flatIdx
}

// eachBinary invokes fn(dst, xi, yi) for every output element, with xi
// and yi the broadcast-resolved source indices. Both inputs must
// already be broadcastable to out's shape.
func eachBinary(out, x, y *Array, fn func(dst, xi, yi int)) {
	n := out.NumElements()
	if x.shape.Equal(out.shape) && y.shape.Equal(out.shape) {
		parallelFor(n, func(i int) { fn(i, i, i) })
		return
	}

	outStrides := out.shape.ComputeStrides()
	xStrides := broadcastStrides(x.shape, out.shape)
	yStrides := broadcastStrides(y.shape, out.shape)
	parallelFor(n, func(i int) {
		fn(i, flatIndex(i, outStrides, xStrides), flatIndex(i, outStrides, yStrides))
	})
}

// eachTernary is eachBinary for three broadcast inputs (where).
func eachTernary(out, c, x, y *Array, fn func(dst, ci, xi, yi int)) {
	n := out.NumElements()
	if c.shape.Equal(out.shape) && x.shape.Equal(out.shape) && y.shape.Equal(out.shape) {
		parallelFor(n, func(i int) { fn(i, i, i, i) })
		return
	}

	outStrides := out.shape.ComputeStrides()
	cStrides := broadcastStrides(c.shape, out.shape)
	xStrides := broadcastStrides(x.shape, out.shape)
	yStrides := broadcastStrides(y.shape, out.shape)
	parallelFor(n, func(i int) {
		fn(i,
			flatIndex(i, outStrides, cStrides),
			flatIndex(i, outStrides, xStrides),
			flatIndex(i, outStrides, yStrides))
	})
}

// broadcastTo materializes a copy of a with the given shape, which
// must be reachable from a's shape under the broadcasting rules.
func broadcastTo(a *Array, shape Shape) (*Array, error) {
	combined, err := BroadcastShapes(a.shape, shape)
	if err != nil {
		return nil, err
	}
	if !combined.Equal(shape) {
		return nil, errors.Wrapf(ErrShapeMismatch, "cannot broadcast %v to %v", a.shape, shape)
	}
	if a.shape.Equal(shape) {
		return a.Clone(), nil
	}

	out, err := newDense(shape, a.dtype)
	if err != nil {
		return nil, err
	}
	outStrides := out.shape.ComputeStrides()
	inStrides := broadcastStrides(a.shape, out.shape)
	n := out.NumElements()
	parallelFor(n, func(i int) {
		copyElem(out, i, a, flatIndex(i, outStrides, inStrides))
	})
	return out, nil
}
