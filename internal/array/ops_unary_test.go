package array

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTrigonometry(t *testing.T) {
	x := mustFromSlice(t, []float64{0, math.Pi / 2, math.Pi}, Shape{3})

	s, err := Sin(x)
	require.NoError(t, err)
	sv, err := s.Float64s()
	require.NoError(t, err)
	assert.InDelta(t, 0, sv[0], 1e-15)
	assert.InDelta(t, 1, sv[1], 1e-15)
	assert.InDelta(t, 0, sv[2], 1e-15)

	c, err := Cos(x)
	require.NoError(t, err)
	cv, err := c.Float64s()
	require.NoError(t, err)
	assert.InDelta(t, 1, cv[0], 1e-15)
	assert.InDelta(t, 0, cv[1], 1e-15)
	assert.InDelta(t, -1, cv[2], 1e-15)

	u := mustFromSlice(t, []float64{0, 0.5, 1}, Shape{3})
	as, err := Arcsin(u)
	require.NoError(t, err)
	av, err := as.Float64s()
	require.NoError(t, err)
	assert.InDelta(t, 0, av[0], 1e-15)
	assert.InDelta(t, math.Asin(0.5), av[1], 1e-15)
	assert.InDelta(t, math.Pi/2, av[2], 1e-15)

	ta, err := Tan(mustFromSlice(t, []float64{math.Pi / 4}, Shape{1}))
	require.NoError(t, err)
	tv, err := ta.Float64s()
	require.NoError(t, err)
	assert.InDelta(t, 1, tv[0], 1e-15)

	at, err := Arctan(mustFromSlice(t, []float64{1}, Shape{1}))
	require.NoError(t, err)
	atv, err := at.Float64s()
	require.NoError(t, err)
	assert.InDelta(t, math.Pi/4, atv[0], 1e-15)

	ac, err := Arccos(mustFromSlice(t, []float64{-1}, Shape{1}))
	require.NoError(t, err)
	acv, err := ac.Float64s()
	require.NoError(t, err)
	assert.InDelta(t, math.Pi, acv[0], 1e-15)
}

func TestExpLog(t *testing.T) {
	x := mustFromSlice(t, []float64{0, 1, 2}, Shape{3})

	e, err := Exp(x)
	require.NoError(t, err)
	ev, err := e.Float64s()
	require.NoError(t, err)
	assert.InDelta(t, 1, ev[0], 1e-15)
	assert.InDelta(t, math.E, ev[1], 1e-15)

	back, err := Log(e)
	require.NoError(t, err)
	bv, err := back.Float64s()
	require.NoError(t, err)
	assert.InDelta(t, 0, bv[0], 1e-12)
	assert.InDelta(t, 1, bv[1], 1e-12)
	assert.InDelta(t, 2, bv[2], 1e-12)

	edge, err := Log(mustFromSlice(t, []float64{0, -1}, Shape{2}))
	require.NoError(t, err)
	edgev, err := edge.Float64s()
	require.NoError(t, err)
	assert.True(t, math.IsInf(edgev[0], -1))
	assert.True(t, math.IsNaN(edgev[1]))
}

func TestSqrtRsqrt(t *testing.T) {
	x := mustFromSlice(t, []float64{4, 9, 0.25}, Shape{3})

	r, err := Sqrt(x)
	require.NoError(t, err)
	rv, err := r.Float64s()
	require.NoError(t, err)
	assert.Equal(t, []float64{2, 3, 0.5}, rv)

	neg, err := Sqrt(mustFromSlice(t, []float64{-1}, Shape{1}))
	require.NoError(t, err)
	nv, err := neg.Float64s()
	require.NoError(t, err)
	assert.True(t, math.IsNaN(nv[0]))

	rs, err := Rsqrt(x)
	require.NoError(t, err)
	rsv, err := rs.Float64s()
	require.NoError(t, err)
	assert.Equal(t, []float64{0.5, 1.0 / 3.0, 2}, rsv)
}

func TestTranscendentalsPromoteIntegers(t *testing.T) {
	x := mustFromSlice(t, []int32{0, 1}, Shape{2})

	e, err := Exp(x)
	require.NoError(t, err)
	assert.Equal(t, Float32, e.Dtype())

	s, err := Sqrt(mustFromSlice(t, []int64{16}, Shape{1}))
	require.NoError(t, err)
	assert.Equal(t, Float32, s.Dtype())
	sv, err := s.Float32s()
	require.NoError(t, err)
	assert.Equal(t, []float32{4}, sv)

	// Float64 stays float64.
	d, err := Sin(mustFromSlice(t, []float64{0}, Shape{1}))
	require.NoError(t, err)
	assert.Equal(t, Float64, d.Dtype())
}

func TestSquarePreservesDtype(t *testing.T) {
	x := mustFromSlice(t, []int32{-3, 4}, Shape{2})

	sq, err := Square(x)
	require.NoError(t, err)
	assert.Equal(t, Int32, sq.Dtype())
	got, err := sq.Int32s()
	require.NoError(t, err)
	assert.Equal(t, []int32{9, 16}, got)
}

func TestAbs(t *testing.T) {
	x := mustFromSlice(t, []int32{-3, 0, 5}, Shape{3})
	a, err := Abs(x)
	require.NoError(t, err)
	assert.Equal(t, Int32, a.Dtype())
	got, err := a.Int32s()
	require.NoError(t, err)
	assert.Equal(t, []int32{3, 0, 5}, got)

	f, err := Abs(mustFromSlice(t, []float32{-2.5}, Shape{1}))
	require.NoError(t, err)
	fv, err := f.Float32s()
	require.NoError(t, err)
	assert.Equal(t, []float32{2.5}, fv)

	// Complex magnitude comes back real.
	c, err := Abs(mustFromSlice(t, []complex64{3 + 4i}, Shape{1}))
	require.NoError(t, err)
	assert.Equal(t, Float32, c.Dtype())
	cv, err := c.Float32s()
	require.NoError(t, err)
	assert.Equal(t, []float32{5}, cv)
}

func TestSign(t *testing.T) {
	x := mustFromSlice(t, []float32{-7, 0, 0.5, float32(math.NaN())}, Shape{4})

	s, err := Sign(x)
	require.NoError(t, err)
	got, err := s.Float32s()
	require.NoError(t, err)
	assert.Equal(t, float32(-1), got[0])
	assert.Equal(t, float32(0), got[1])
	assert.Equal(t, float32(1), got[2])
	assert.True(t, math.IsNaN(float64(got[3])), "sign passes NaN through")

	i, err := Sign(mustFromSlice(t, []int64{-9, 0, 9}, Shape{3}))
	require.NoError(t, err)
	assert.Equal(t, Int64, i.Dtype())
	iv, err := i.Int64s()
	require.NoError(t, err)
	assert.Equal(t, []int64{-1, 0, 1}, iv)

	c, err := Sign(mustFromSlice(t, []complex64{3 + 4i, 0}, Shape{2}))
	require.NoError(t, err)
	cv, err := c.Complex64s()
	require.NoError(t, err)
	assert.InDelta(t, 0.6, float64(real(cv[0])), 1e-6)
	assert.InDelta(t, 0.8, float64(imag(cv[0])), 1e-6)
	assert.Equal(t, complex64(0), cv[1])
}

func TestNegative(t *testing.T) {
	x := mustFromSlice(t, []float32{1.5, -2, 0}, Shape{3})
	n, err := Negative(x)
	require.NoError(t, err)
	got, err := n.Float32s()
	require.NoError(t, err)
	assert.Equal(t, []float32{-1.5, 2, 0}, got)

	u, err := Negative(mustFromSlice(t, []uint8{1}, Shape{1}))
	require.NoError(t, err)
	uv, err := u.Uint8s()
	require.NoError(t, err)
	assert.Equal(t, []uint8{255}, uv, "unsigned negation wraps")
}

func TestUnaryOnScalar(t *testing.T) {
	e, err := Exp(1.0)
	require.NoError(t, err)
	assert.Equal(t, Float32, e.Dtype())
	assert.Equal(t, 0, e.Rank())
	v, err := e.Item()
	require.NoError(t, err)
	assert.InDelta(t, math.E, float64(v.(float32)), 1e-6)
}
