package array

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCloneIsDeep(t *testing.T) {
	a, err := FromSlice([]float32{1, 2, 3}, Shape{3})
	require.NoError(t, err)

	b := a.Clone()
	assert.NotSame(t, a, b)
	assert.Equal(t, a.Bytes(), b.Bytes())
	assert.True(t, a.Shape().Equal(b.Shape()))

	// The clone owns its buffer: scribbling on one read-back copy
	// never shows up in another.
	raw := b.Bytes()
	for i := range raw {
		raw[i] = 0xff
	}
	assert.Equal(t, a.Bytes(), b.Bytes())
}

func TestShapeIsDefensiveCopy(t *testing.T) {
	a, err := Zeros(Shape{2, 3})
	require.NoError(t, err)

	sh := a.Shape()
	sh[0] = 99
	assert.True(t, a.Shape().Equal(Shape{2, 3}))
}

func TestDim(t *testing.T) {
	a, err := Zeros(Shape{2, 3, 4})
	require.NoError(t, err)

	d, err := a.Dim(1)
	require.NoError(t, err)
	assert.Equal(t, 3, d)

	d, err = a.Dim(-1)
	require.NoError(t, err)
	assert.Equal(t, 4, d)

	_, err = a.Dim(3)
	assert.ErrorIs(t, err, ErrAxis)
}

func TestItem(t *testing.T) {
	a, err := FromScalar(2.5)
	require.NoError(t, err)
	v, err := a.Item()
	require.NoError(t, err)
	assert.Equal(t, float32(2.5), v)

	b, err := FromSlice([]int32{1}, Shape{1})
	require.NoError(t, err)
	_, err = b.Item()
	assert.ErrorIs(t, err, ErrInvalidArgument, "item is rank-0 only, even for one element")
}

func TestToNested(t *testing.T) {
	a, err := FromSlice([]int32{1, 2, 3, 4, 5, 6}, Shape{2, 3})
	require.NoError(t, err)

	want := []any{
		[]any{int32(1), int32(2), int32(3)},
		[]any{int32(4), int32(5), int32(6)},
	}
	assert.Equal(t, want, a.ToNested())

	s, err := FromScalar(true)
	require.NoError(t, err)
	assert.Equal(t, true, s.ToNested())
}

func TestString(t *testing.T) {
	a, err := Zeros(Shape{2, 3}, Int64)
	require.NoError(t, err)
	assert.Equal(t, "array(shape=[2 3], dtype=int64)", a.String())
}

func TestBytesRoundTrip(t *testing.T) {
	a, err := FromSlice([]float64{1.5, -2.25, 1e300}, Shape{3})
	require.NoError(t, err)
	assert.Equal(t, 24, a.ByteSize())

	b, err := FromBytes(a.Bytes(), a.Shape(), a.Dtype())
	require.NoError(t, err)
	got, err := b.Float64s()
	require.NoError(t, err)
	assert.Equal(t, []float64{1.5, -2.25, 1e300}, got)
}

func TestReadbackDtypeMismatch(t *testing.T) {
	a, err := FromSlice([]int32{1, 2}, Shape{2})
	require.NoError(t, err)

	_, err = a.Float32s()
	assert.ErrorIs(t, err, ErrInvalidArgument)
	_, err = a.Bools()
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestAsTypeTruncatesTowardZero(t *testing.T) {
	a, err := FromSlice([]float32{2.7, -2.7, 0.5}, Shape{3})
	require.NoError(t, err)

	b, err := AsType(a, Int32)
	require.NoError(t, err)
	got, err := b.Int32s()
	require.NoError(t, err)
	assert.Equal(t, []int32{2, -2, 0}, got)
}

func TestAsTypeIntegerWrap(t *testing.T) {
	a, err := FromSlice([]int16{300, -1}, Shape{2})
	require.NoError(t, err)

	b, err := AsType(a, Uint8)
	require.NoError(t, err)
	got, err := b.Uint8s()
	require.NoError(t, err)
	assert.Equal(t, []uint8{44, 255}, got, "narrowing keeps the low bits")
}

func TestAsTypeComplex(t *testing.T) {
	c, err := FromSlice([]complex64{3 + 4i, -1 - 2i}, Shape{2})
	require.NoError(t, err)

	re, err := AsType(c, Float32)
	require.NoError(t, err)
	got, err := re.Float32s()
	require.NoError(t, err)
	assert.Equal(t, []float32{3, -1}, got, "real target keeps the real part")

	f, err := FromSlice([]float32{2.5}, Shape{1})
	require.NoError(t, err)
	up, err := AsType(f, Complex64)
	require.NoError(t, err)
	cs, err := up.Complex64s()
	require.NoError(t, err)
	assert.Equal(t, []complex64{2.5 + 0i}, cs)
}

func TestAsTypeBool(t *testing.T) {
	a, err := FromSlice([]float32{0, 1, -3.5}, Shape{3})
	require.NoError(t, err)

	b, err := AsType(a, Bool)
	require.NoError(t, err)
	got, err := b.Bools()
	require.NoError(t, err)
	assert.Equal(t, []bool{false, true, true}, got)
}

func TestAsTypeHalfRoundTrip(t *testing.T) {
	a, err := FromSlice([]float32{1.5, -0.125, 2048}, Shape{3})
	require.NoError(t, err)

	half, err := AsType(a, Float16)
	require.NoError(t, err)
	back, err := AsType(half, Float32)
	require.NoError(t, err)
	got, err := back.Float32s()
	require.NoError(t, err)
	assert.Equal(t, []float32{1.5, -0.125, 2048}, got, "these values are exact in half precision")

	bf, err := AsType(a, BFloat16)
	require.NoError(t, err)
	bits, err := bf.BFloat16s()
	require.NoError(t, err)
	assert.Equal(t, []uint16{0x3fc0, 0xbe00, 0x4500}, bits)
}

func TestAsTypeSameDtypeCopies(t *testing.T) {
	a, err := FromSlice([]int64{7}, Shape{1})
	require.NoError(t, err)

	b, err := AsType(a, Int64)
	require.NoError(t, err)
	assert.NotSame(t, a, b)
	got, err := b.Int64s()
	require.NoError(t, err)
	assert.Equal(t, []int64{7}, got)
}
