package array

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMethodForms(t *testing.T) {
	a := mustFromSlice(t, []float32{1, 2, 3, 4}, Shape{2, 2})

	sum, err := a.Add(1)
	require.NoError(t, err)
	sv, err := sum.Float32s()
	require.NoError(t, err)
	assert.Equal(t, []float32{2, 3, 4, 5}, sv)

	diff, err := a.Sub(a)
	require.NoError(t, err)
	dv, err := diff.Float32s()
	require.NoError(t, err)
	assert.Equal(t, []float32{0, 0, 0, 0}, dv)

	prod, err := a.Mul(2)
	require.NoError(t, err)
	pv, err := prod.Float32s()
	require.NoError(t, err)
	assert.Equal(t, []float32{2, 4, 6, 8}, pv)

	quot, err := a.Div(2)
	require.NoError(t, err)
	qv, err := quot.Float32s()
	require.NoError(t, err)
	assert.Equal(t, []float32{0.5, 1, 1.5, 2}, qv)

	eq, err := a.Eq(2)
	require.NoError(t, err)
	assert.Equal(t, Bool, eq.Dtype())
	ev, err := eq.Bools()
	require.NoError(t, err)
	assert.Equal(t, []bool{false, true, false, false}, ev)
}

func TestMethodReshapeTranspose(t *testing.T) {
	a, err := ArangeTo(12)
	require.NoError(t, err)

	m, err := a.Reshape(3, 4)
	require.NoError(t, err)
	assert.True(t, m.Shape().Equal(Shape{3, 4}))

	tr, err := m.T()
	require.NoError(t, err)
	assert.True(t, tr.Shape().Equal(Shape{4, 3}))

	perm, err := m.Transpose(1, 0)
	require.NoError(t, err)
	assert.Equal(t, tr.Bytes(), perm.Bytes())

	flat, err := tr.Flatten()
	require.NoError(t, err)
	assert.True(t, flat.Shape().Equal(Shape{12}))

	f, err := m.AsType(Float32)
	require.NoError(t, err)
	assert.Equal(t, Float32, f.Dtype())
}
