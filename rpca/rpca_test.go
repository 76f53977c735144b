// SPDX-License-Identifier: MIT
package rpca_test

import (
	"math"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/surus/internal/fixture"
	"github.com/katalvlaran/surus/matrix"
	"github.com/katalvlaran/surus/rpca"
	"github.com/katalvlaran/surus/standardize"
)

// weeklyMatrix standardizes the reference window and lays it out as 7 rows (weekdays) by
// 9 columns (weeks).
func weeklyMatrix(t *testing.T) *mat.Dense {
	t.Helper()
	z, _, err := standardize.FitTransform(fixture.Weekly)
	require.NoError(t, err)
	m, err := matrix.FromSeries(z, fixture.WeeklyRows, fixture.WeeklyCols)
	require.NoError(t, err)

	return m
}

// lowRankWithSpikes returns a rank-1 12x10 matrix with three ±8 spikes.
func lowRankWithSpikes() (*mat.Dense, map[[2]int]float64) {
	m := mat.NewDense(12, 10, nil)
	for i := 0; i < 12; i++ {
		for j := 0; j < 10; j++ {
			m.Set(i, j, (1+float64(i)/12)*(2+math.Cos(float64(j))))
		}
	}
	spikes := map[[2]int]float64{{2, 3}: 8, {7, 8}: -8, {10, 1}: 8}
	for ij, v := range spikes {
		m.Set(ij[0], ij[1], m.At(ij[0], ij[1])+v)
	}

	return m, spikes
}

// assertReconstructs checks L + S + E == M entrywise.
func assertReconstructs(t *testing.T, m mat.Matrix, res *rpca.Result) {
	t.Helper()
	var sum mat.Dense
	sum.Add(res.L, res.S)
	sum.Add(&sum, res.E)
	assert.True(t, mat.EqualApprox(&sum, m, 1e-12), "L+S+E must equal M")
}

// nonZeroIndices lists the column-major indices of the non-zero entries of s.
func nonZeroIndices(s mat.Matrix) []int {
	var out []int
	for n, v := range matrix.ToSeries(s) {
		if v != 0 {
			out = append(out, n)
		}
	}
	sort.Ints(out)

	return out
}

func TestDecompose_WeeklySeriesFindsAnomalies(t *testing.T) {
	m := weeklyMatrix(t)
	res, err := rpca.Decompose(m)
	require.NoError(t, err)

	assert.Equal(t, []int{46, 53, 54}, nonZeroIndices(res.S))
	assert.Equal(t, rpca.DynamicMu, res.Method)
	assert.Equal(t, rpca.DefaultLPenalty, res.LPenalty)
	assert.InDelta(t, 1.4/3, res.SPenalty, 1e-15)
	assert.Greater(t, res.Iterations, 1)
	assert.Less(t, res.Iterations, rpca.DefaultMaxIterations)
	assertReconstructs(t, m, res)

	// Signs follow the injected dips and the spike.
	assert.Less(t, matrix.ValueAt(res.S, 53), 0.0)
	assert.Greater(t, matrix.ValueAt(res.S, 54), 0.0)
}

func TestDecompose_Deterministic(t *testing.T) {
	m := weeklyMatrix(t)
	a, err := rpca.Decompose(m)
	require.NoError(t, err)
	b, err := rpca.Decompose(m)
	require.NoError(t, err)

	assert.True(t, mat.Equal(a.L, b.L))
	assert.True(t, mat.Equal(a.S, b.S))
	assert.True(t, mat.Equal(a.E, b.E))
	assert.Equal(t, a.Iterations, b.Iterations)
}

func TestDecompose_InputUntouched(t *testing.T) {
	m := weeklyMatrix(t)
	before := mat.DenseCopyOf(m)
	_, err := rpca.Decompose(m)
	require.NoError(t, err)
	assert.True(t, mat.Equal(before, m))
}

func TestDecompose_InexactALMRecoversSpikes(t *testing.T) {
	m, spikes := lowRankWithSpikes()
	res, err := rpca.Decompose(m, rpca.WithMethod(rpca.InexactALM))
	require.NoError(t, err)
	assert.Equal(t, rpca.InexactALM, res.Method)

	for ij, v := range spikes {
		assert.InDelta(t, v, res.S.At(ij[0], ij[1]), 1e-4, "spike at %v", ij)
	}
	rows, cols := m.Dims()
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			if _, ok := spikes[[2]int{i, j}]; ok {
				continue
			}
			assert.InDelta(t, 0, res.S.At(i, j), 1e-4, "S[%d,%d]", i, j)
		}
	}

	// Residual is below the stopping tolerance relative to ‖M‖_F.
	assert.Less(t, mat.Norm(res.E, 2)/mat.Norm(m, 2), rpca.DefaultALMTolerance)
	assertReconstructs(t, m, res)
}

func TestDecompose_ZeroMatrix(t *testing.T) {
	for _, method := range []rpca.Method{rpca.DynamicMu, rpca.InexactALM} {
		res, err := rpca.Decompose(mat.NewDense(3, 4, nil), rpca.WithMethod(method))
		require.NoError(t, err)
		assert.True(t, matrix.IsZero(res.L))
		assert.True(t, matrix.IsZero(res.S))
		assert.True(t, matrix.IsZero(res.E))
		assert.Zero(t, res.Iterations)
		assert.Equal(t, method, res.Method)
	}
}

func TestDecompose_InvalidInput(t *testing.T) {
	_, err := rpca.Decompose(nil)
	assert.ErrorIs(t, err, rpca.ErrNilMatrix)

	var typedNil *mat.Dense
	_, err = rpca.Decompose(typedNil)
	assert.ErrorIs(t, err, rpca.ErrNilMatrix)

	_, err = rpca.Decompose(mat.NewDense(1, 5, nil))
	assert.ErrorIs(t, err, rpca.ErrShape)

	_, err = rpca.Decompose(mat.NewDense(5, 1, nil))
	assert.ErrorIs(t, err, rpca.ErrShape)

	m := mat.NewDense(2, 2, []float64{1, 2, math.NaN(), 4})
	_, err = rpca.Decompose(m)
	assert.ErrorIs(t, err, rpca.ErrNaNInf)
}

func TestDecompose_NotConverged(t *testing.T) {
	_, err := rpca.Decompose(weeklyMatrix(t), rpca.WithMaxIterations(1))
	require.Error(t, err)
	assert.ErrorIs(t, err, rpca.ErrNotConverged)
	assert.ErrorIs(t, err, rpca.ErrNumerical)
}

// The mu floor is absolute, so DynamicMu needs standardized input: a raw
// ramp spanning -31..31 exhausts the default budget, the same ramp scaled to
// unit variance converges.
func TestDecompose_DynamicMuExpectsStandardizedInput(t *testing.T) {
	ramp := make([]float64, 63)
	for n := range ramp {
		ramp[n] = float64(n - 31)
	}
	raw, err := matrix.FromSeries(ramp, 7, 9)
	require.NoError(t, err)

	_, err = rpca.Decompose(raw)
	assert.ErrorIs(t, err, rpca.ErrNotConverged)

	z, _, err := standardize.FitTransform(ramp)
	require.NoError(t, err)
	scaled, err := matrix.FromSeries(z, 7, 9)
	require.NoError(t, err)

	res, err := rpca.Decompose(scaled)
	require.NoError(t, err)
	assert.Less(t, res.Iterations, rpca.DefaultMaxIterations)
	assertReconstructs(t, scaled, res)
}

func TestDecompose_ExplicitPenalties(t *testing.T) {
	m := weeklyMatrix(t)
	res, err := rpca.Decompose(m, rpca.WithLPenalty(2), rpca.WithSPenalty(0.9))
	require.NoError(t, err)
	assert.Equal(t, 2.0, res.LPenalty)
	assert.Equal(t, 0.9, res.SPenalty)
	assertReconstructs(t, m, res)

	// A huge sparsity weight leaves nothing in S.
	res, err = rpca.Decompose(m, rpca.WithSPenalty(1e6))
	require.NoError(t, err)
	assert.True(t, matrix.IsZero(res.S))
}

func TestOptions_Invalid(t *testing.T) {
	m := weeklyMatrix(t)
	cases := map[string]rpca.Option{
		"lpenalty zero":  rpca.WithLPenalty(0),
		"lpenalty nan":   rpca.WithLPenalty(math.NaN()),
		"spenalty neg":   rpca.WithSPenalty(-1),
		"method":         rpca.WithMethod(rpca.Method(7)),
		"tolerance inf":  rpca.WithTolerance(math.Inf(1)),
		"max iterations": rpca.WithMaxIterations(0),
	}
	for name, opt := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := rpca.Decompose(m, opt)
			assert.ErrorIs(t, err, rpca.ErrInvalidOption)
		})
	}
}

func TestDefaultSPenalty(t *testing.T) {
	assert.InDelta(t, 1.4/3, rpca.DefaultSPenalty(7, 9), 1e-15)
	assert.InDelta(t, 1.4/3, rpca.DefaultSPenalty(9, 7), 1e-15)
	assert.InDelta(t, 0.7, rpca.DefaultSPenalty(4, 4), 1e-15)
}

func TestMethod_StringAndParse(t *testing.T) {
	for _, m := range []rpca.Method{rpca.DynamicMu, rpca.InexactALM} {
		got, err := rpca.ParseMethod(m.String())
		require.NoError(t, err)
		assert.Equal(t, m, got)
	}
	got, err := rpca.ParseMethod("")
	require.NoError(t, err)
	assert.Equal(t, rpca.DynamicMu, got)

	_, err = rpca.ParseMethod("pcp")
	assert.ErrorIs(t, err, rpca.ErrInvalidOption)
	assert.Equal(t, "unknown", rpca.Method(9).String())
}
