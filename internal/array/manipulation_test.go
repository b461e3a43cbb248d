package array

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReshape(t *testing.T) {
	a := mustFromSlice(t, []int32{1, 2, 3, 4, 5, 6}, Shape{2, 3})

	b, err := Reshape(a, Shape{3, 2})
	require.NoError(t, err)
	assert.True(t, b.Shape().Equal(Shape{3, 2}))
	got, err := b.Int32s()
	require.NoError(t, err)
	assert.Equal(t, []int32{1, 2, 3, 4, 5, 6}, got, "flat order is preserved")

	back, err := Reshape(b, Shape{2, 3})
	require.NoError(t, err)
	assert.Equal(t, a.Bytes(), back.Bytes())

	_, err = Reshape(a, Shape{4, 2})
	assert.ErrorIs(t, err, ErrReshape)
}

func TestReshapeScalarAndBack(t *testing.T) {
	s, err := FromScalar(7)
	require.NoError(t, err)

	up, err := Reshape(s, Shape{1, 1})
	require.NoError(t, err)
	assert.True(t, up.Shape().Equal(Shape{1, 1}))

	down, err := Reshape(up, Shape{})
	require.NoError(t, err)
	assert.Equal(t, 0, down.Rank())
	v, err := down.Item()
	require.NoError(t, err)
	assert.Equal(t, int32(7), v)
}

func TestFlatten(t *testing.T) {
	a := mustFromSlice(t, []float32{1, 2, 3, 4}, Shape{2, 2})
	f, err := Flatten(a)
	require.NoError(t, err)
	assert.True(t, f.Shape().Equal(Shape{4}))
	got, err := f.Float32s()
	require.NoError(t, err)
	assert.Equal(t, []float32{1, 2, 3, 4}, got)
}

func TestTransposeReverse(t *testing.T) {
	a := mustFromSlice(t, []int32{1, 2, 3, 4, 5, 6}, Shape{2, 3})

	tr, err := Transpose(a, nil)
	require.NoError(t, err)
	assert.True(t, tr.Shape().Equal(Shape{3, 2}))
	got, err := tr.Int32s()
	require.NoError(t, err)
	assert.Equal(t, []int32{1, 4, 2, 5, 3, 6}, got)

	// Transposing twice restores the original.
	back, err := Transpose(tr, nil)
	require.NoError(t, err)
	assert.True(t, back.Shape().Equal(a.Shape()))
	assert.Equal(t, a.Bytes(), back.Bytes())
}

func TestTransposeExplicitPerm(t *testing.T) {
	a := mustFromSlice(t, []int32{0, 1, 2, 3, 4, 5, 6, 7}, Shape{2, 2, 2})

	tr, err := Transpose(a, []int{1, 2, 0})
	require.NoError(t, err)
	assert.True(t, tr.Shape().Equal(Shape{2, 2, 2}))
	got, err := tr.Int32s()
	require.NoError(t, err)
	// out[i][j][k] = a[k][i][j]
	assert.Equal(t, []int32{0, 4, 1, 5, 2, 6, 3, 7}, got)

	// Negative axes resolve from the end.
	same, err := Transpose(a, []int{-3, -2, -1})
	require.NoError(t, err)
	assert.Equal(t, a.Bytes(), same.Bytes())
}

func TestTransposeBadAxes(t *testing.T) {
	a, err := Zeros(Shape{2, 3})
	require.NoError(t, err)

	_, err = Transpose(a, []int{0})
	assert.ErrorIs(t, err, ErrAxis, "wrong axis count")

	_, err = Transpose(a, []int{0, 0})
	assert.ErrorIs(t, err, ErrAxis, "repeated axis")

	_, err = Transpose(a, []int{0, 2})
	assert.ErrorIs(t, err, ErrAxis, "out-of-range axis")
}

func TestMoveaxis(t *testing.T) {
	a, err := Zeros(Shape{2, 3, 4})
	require.NoError(t, err)

	m, err := Moveaxis(a, 0, 2)
	require.NoError(t, err)
	assert.True(t, m.Shape().Equal(Shape{3, 4, 2}))

	m, err = Moveaxis(a, -1, 0)
	require.NoError(t, err)
	assert.True(t, m.Shape().Equal(Shape{4, 2, 3}))

	_, err = Moveaxis(a, 5, 0)
	assert.ErrorIs(t, err, ErrAxis)
}

func TestMoveaxisValues(t *testing.T) {
	a := mustFromSlice(t, []int32{1, 2, 3, 4, 5, 6}, Shape{2, 3})

	m, err := Moveaxis(a, 0, 1)
	require.NoError(t, err)
	assert.True(t, m.Shape().Equal(Shape{3, 2}))
	got, err := m.Int32s()
	require.NoError(t, err)
	assert.Equal(t, []int32{1, 4, 2, 5, 3, 6}, got)
}

func TestSwapaxes(t *testing.T) {
	a, err := Zeros(Shape{2, 3, 4})
	require.NoError(t, err)

	s, err := Swapaxes(a, 0, 2)
	require.NoError(t, err)
	assert.True(t, s.Shape().Equal(Shape{4, 3, 2}))

	s, err = Swapaxes(a, -1, -2)
	require.NoError(t, err)
	assert.True(t, s.Shape().Equal(Shape{2, 4, 3}))
}

func TestExpandDims(t *testing.T) {
	a, err := Zeros(Shape{2, 3})
	require.NoError(t, err)

	e, err := ExpandDims(a, 0)
	require.NoError(t, err)
	assert.True(t, e.Shape().Equal(Shape{1, 2, 3}))

	e, err = ExpandDims(a, -1)
	require.NoError(t, err)
	assert.True(t, e.Shape().Equal(Shape{2, 3, 1}))

	e, err = ExpandDims(a, 1)
	require.NoError(t, err)
	assert.True(t, e.Shape().Equal(Shape{2, 1, 3}))

	_, err = ExpandDims(a, 4)
	assert.ErrorIs(t, err, ErrAxis)
}

func TestSqueeze(t *testing.T) {
	a, err := Zeros(Shape{1, 2, 1, 3})
	require.NoError(t, err)

	all, err := Squeeze(a, nil)
	require.NoError(t, err)
	assert.True(t, all.Shape().Equal(Shape{2, 3}))

	one, err := Squeeze(a, []int{0})
	require.NoError(t, err)
	assert.True(t, one.Shape().Equal(Shape{2, 1, 3}))

	neg, err := Squeeze(a, []int{-2})
	require.NoError(t, err)
	assert.True(t, neg.Shape().Equal(Shape{1, 2, 3}))

	_, err = Squeeze(a, []int{1})
	assert.ErrorIs(t, err, ErrInvalidArgument, "axis 1 has size 2")
}

func TestWhere(t *testing.T) {
	cond := mustFromSlice(t, []bool{true, false, true}, Shape{3})
	x := mustFromSlice(t, []float32{1, 2, 3}, Shape{3})
	y := mustFromSlice(t, []float32{10, 20, 30}, Shape{3})

	out, err := Where(cond, x, y)
	require.NoError(t, err)
	got, err := out.Float32s()
	require.NoError(t, err)
	assert.Equal(t, []float32{1, 20, 3}, got)
}

func TestWhereBroadcastsAllThree(t *testing.T) {
	cond := mustFromSlice(t, []bool{true, false}, Shape{2, 1})
	x := mustFromSlice(t, []int32{1, 2, 3}, Shape{3})

	out, err := Where(cond, x, 0)
	require.NoError(t, err)
	assert.True(t, out.Shape().Equal(Shape{2, 3}))
	got, err := out.Int32s()
	require.NoError(t, err)
	assert.Equal(t, []int32{1, 2, 3, 0, 0, 0}, got)
}

func TestWherePromotesBranches(t *testing.T) {
	cond := mustFromSlice(t, []bool{true, false}, Shape{2})
	x := mustFromSlice(t, []int32{1, 2}, Shape{2})
	y := mustFromSlice(t, []float64{0.5, 0.5}, Shape{2})

	out, err := Where(cond, x, y)
	require.NoError(t, err)
	assert.Equal(t, Float64, out.Dtype())
	got, err := out.Float64s()
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 0.5}, got)
}

func TestWhereNumericCondition(t *testing.T) {
	cond := mustFromSlice(t, []float32{2.5, 0, -1}, Shape{3})

	out, err := Where(cond, 1, 2)
	require.NoError(t, err)
	got, err := out.Int32s()
	require.NoError(t, err)
	assert.Equal(t, []int32{1, 2, 1}, got, "any nonzero condition selects x")
}

func TestWhereShapeMismatch(t *testing.T) {
	cond := mustFromSlice(t, []bool{true, false}, Shape{2})
	x := mustFromSlice(t, []int32{1, 2, 3}, Shape{3})

	_, err := Where(cond, x, 0)
	assert.ErrorIs(t, err, ErrShapeMismatch)
}
