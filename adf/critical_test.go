// SPDX-License-Identifier: MIT
package adf_test

import (
	"testing"

	"github.com/katalvlaran/surus/adf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCriticalValue_Tabulated(t *testing.T) {
	cases := []struct {
		reg  adf.Regression
		lvl  adf.Level
		n    int
		want float64
	}{
		{adf.Constant, adf.Level5, 100, -2.89},
		{adf.Constant, adf.Level1, 25, -3.75},
		{adf.ConstantTrend, adf.Level10, 250, -3.13},
		{adf.NoConstant, adf.Level2_5, 50, -2.25},
		{adf.Constant, adf.Level5, 500, -2.87},
	}
	for _, tc := range cases {
		got, err := adf.CriticalValue(tc.reg, tc.lvl, tc.n)
		require.NoError(t, err)
		assert.InDelta(t, tc.want, got, 1e-12, "%v %v n=%d", tc.reg, tc.lvl, tc.n)
	}
}

func TestCriticalValue_Interpolation(t *testing.T) {
	// below the table: clamp to n=25
	got, err := adf.CriticalValue(adf.Constant, adf.Level5, 10)
	require.NoError(t, err)
	assert.InDelta(t, -3.00, got, 1e-12)

	// between 50 and 100 the value stays between the two rows
	got, err = adf.CriticalValue(adf.Constant, adf.Level5, 63)
	require.NoError(t, err)
	assert.Less(t, got, -2.89)
	assert.Greater(t, got, -2.93)

	// halfway in 1/n between 50 (0.02) and 100 (0.01) is n = 1/0.015
	got, err = adf.CriticalValue(adf.Constant, adf.Level5, 66)
	require.NoError(t, err)
	assert.InDelta(t, -2.89+(1.0/66-0.01)/0.01*(-0.04), got, 1e-12)

	// large samples approach the asymptotic row
	got, err = adf.CriticalValue(adf.Constant, adf.Level5, 1_000_000)
	require.NoError(t, err)
	assert.InDelta(t, -2.86, got, 1e-4)
}

func TestCriticalValue_Invalid(t *testing.T) {
	_, err := adf.CriticalValue(adf.Regression(7), adf.Level5, 100)
	assert.ErrorIs(t, err, adf.ErrInvalidOption)
	_, err = adf.CriticalValue(adf.Constant, adf.Level(-1), 100)
	assert.ErrorIs(t, err, adf.ErrInvalidOption)
	_, err = adf.CriticalValue(adf.Constant, adf.Level5, 0)
	assert.ErrorIs(t, err, adf.ErrInvalidOption)
}
