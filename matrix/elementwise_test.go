// SPDX-License-Identifier: MIT
package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/surus/matrix"
	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/mat"
)

func TestSoftThreshold(t *testing.T) {
	cases := []struct {
		x, penalty, want float64
	}{
		{3, 1, 2},
		{-3, 1, -2},
		{0.5, 1, 0},
		{-0.5, 1, 0},
		{1, 1, 0},
		{0, 0, 0},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, matrix.SoftThreshold(tc.x, tc.penalty), "x=%v penalty=%v", tc.x, tc.penalty)
	}
}

func TestShrink_Entrywise(t *testing.T) {
	x := mat.NewDense(2, 2, []float64{2, -0.1, -4, 0.3})
	got := matrix.Shrink(x, 0.5)
	want := mat.NewDense(2, 2, []float64{1.5, 0, -3.5, 0})
	assert.True(t, mat.Equal(want, got))
	// the input is left untouched
	assert.Equal(t, 2.0, x.At(0, 0))
}

func TestNorms(t *testing.T) {
	x := mat.NewDense(2, 3, []float64{1, -2, 3, -4, 0, 0.5})
	assert.Equal(t, 10.5, matrix.L1Norm(x))
	assert.Equal(t, 4.0, matrix.MaxAbs(x))
	assert.False(t, matrix.IsZero(x))
	assert.True(t, matrix.IsZero(mat.NewDense(3, 2, nil)))
}

func TestValidateFinite(t *testing.T) {
	assert.NoError(t, matrix.ValidateFinite([]float64{1, -2, 0}))
	assert.ErrorIs(t, matrix.ValidateFinite([]float64{1, math.Inf(1)}), matrix.ErrNaNInf)
	assert.ErrorIs(t, matrix.ValidateFinite([]float64{math.NaN()}), matrix.ErrNaNInf)
}
