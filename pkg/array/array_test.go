package array

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestZerosAndOnes(t *testing.T) {
	assert.Equal(t, []float64{0, 0, 0}, Zeros(3))
	assert.Equal(t, []float64{1, 1, 1, 1}, Ones(4))
	assert.Empty(t, Zeros(0))
}

func TestARange(t *testing.T) {
	got, err := ARange(0, 10, 2)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 2, 4, 6, 8}, got)

	_, err = ARange(0, 10, 0)
	require.Error(t, err)
}

func TestLinspace(t *testing.T) {
	got, err := Linspace(0, 1, 5)
	require.NoError(t, err)

	require.Len(t, got, 5)
	assert.InDelta(t, 0.0, got[0], 1e-12)
	assert.InDelta(t, 0.25, got[1], 1e-12)
	assert.InDelta(t, 1.0, got[4], 1e-12)

	_, err = Linspace(0, 1, 1)
	require.Error(t, err)
}

func TestElementwiseOps(t *testing.T) {
	a := []float64{1, 2, 3}
	b := []float64{4, 5, 6}

	sum, err := Add(a, b)
	require.NoError(t, err)
	assert.Equal(t, []float64{5, 7, 9}, sum)

	diff, err := Sub(a, b)
	require.NoError(t, err)
	assert.Equal(t, []float64{-3, -3, -3}, diff)

	prod, err := Mul(a, b)
	require.NoError(t, err)
	assert.Equal(t, []float64{4, 10, 18}, prod)

	quot, err := Div(a, b)
	require.NoError(t, err)
	assert.InDelta(t, 0.25, quot[0], 1e-12)
	assert.InDelta(t, 0.4, quot[1], 1e-12)
	assert.InDelta(t, 0.5, quot[2], 1e-12)

	// Inputs are untouched
	assert.Equal(t, []float64{1, 2, 3}, a)
}

func TestLengthMismatch(t *testing.T) {
	_, err := Add([]float64{1}, []float64{1, 2})
	require.Error(t, err)
}

func TestScale(t *testing.T) {
	a := []float64{1, 2, 3}
	assert.Equal(t, []float64{2, 4, 6}, Scale(2, a))
	assert.Equal(t, []float64{1, 2, 3}, a)
}

func TestDot(t *testing.T) {
	got, err := Dot([]float64{1, 2, 3}, []float64{4, 5, 6})
	require.NoError(t, err)
	assert.InDelta(t, 32.0, got, 1e-12)
}

func TestMatMul(t *testing.T) {
	a := [][]float64{{1, 2}, {3, 4}}
	b := [][]float64{{5, 6}, {7, 8}}

	got, err := MatMul(a, b)
	require.NoError(t, err)

	assert.Equal(t, [][]float64{{19, 22}, {43, 50}}, got)
}

func TestMatMulShapeMismatch(t *testing.T) {
	_, err := MatMul([][]float64{{1, 2, 3}}, [][]float64{{1, 2}})
	require.Error(t, err)
}
