// SPDX-License-Identifier: MIT

package adf

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/surus/matrix"
)

// Operation name constants for unified error wrapping.
const (
	opNew = "New"
)

// Test is a fitted Augmented Dickey–Fuller test. It is immutable after New
// and safe for concurrent reads.
type Test struct {
	series     []float64 // private copy of the input
	lag        int
	regression Regression
	level      Level
	statistic  float64
	critical   float64
	needsDiff  bool
}

// New fits the unit-root regression on x and evaluates the verdict.
// Implementation:
//   - Stage 1: validate x and resolve options (lag defaults to ⌊∛(n-1)⌋).
//   - Stage 2: build the design matrix [x_{t-1}, det. terms, Δx_{t-1..t-p}].
//   - Stage 3: solve the ridge-stabilised normal equations via Cholesky.
//   - Stage 4: τ = β̂₀ / se(β̂₀); compare with the critical value for n.
//
// Errors:
//   - ErrNaNInf for non-finite input.
//   - ErrInsufficientData when n < 3 or no residual degrees of freedom remain.
//   - ErrSingular when the normal equations are not positive definite.
//   - ErrInvalidOption from option setters.
//
// Complexity: O(n·k²) with k = p + 1 + deterministic terms.
func New(x []float64, opts ...Option) (*Test, error) {
	// Stage 1: validate.
	o, err := gatherOptions(opts...)
	if err != nil {
		return nil, err
	}
	if matrix.ValidateFinite(x) != nil {
		return nil, adfErrorf(opNew, ErrNaNInf)
	}
	n := len(x)
	if n < 3 {
		return nil, adfErrorf(opNew, ErrInsufficientData)
	}
	lag := o.lag
	if lag == autoLag {
		lag = DefaultLag(n)
	}
	k := 1 + o.regression.deterministicTerms() + lag // regressors
	nobs := n - 1 - lag                              // usable rows
	if nobs-k < 1 {
		return nil, adfErrorf(opNew, ErrInsufficientData)
	}

	t := &Test{
		series:     append([]float64(nil), x...),
		lag:        lag,
		regression: o.regression,
		level:      o.level,
	}

	// Stage 2: design matrix and response.
	design, response := t.design(nobs, k)

	// Stage 3 + 4: fit and evaluate.
	stat, err := tStatistic(design, response, o.ridge)
	if err != nil {
		return nil, adfErrorf(opNew, err)
	}
	crit, err := CriticalValue(o.regression, o.level, n)
	if err != nil {
		return nil, adfErrorf(opNew, err)
	}
	t.statistic = stat
	t.critical = crit
	// A non-finite statistic (perfect fit) gives no evidence against the unit root.
	t.needsDiff = math.IsNaN(stat) || math.IsInf(stat, 0) || stat > crit

	return t, nil
}

// DefaultLag returns the Said–Dickey lag order ⌊∛(n-1)⌋ for a series of
// length n (0 for n < 2).
func DefaultLag(n int) int {
	if n < 2 {
		return 0
	}

	return int(math.Floor(math.Cbrt(float64(n - 1))))
}

// design builds the regression rows for t = lag..n-2 over the differences
// d[t] = x[t+1] - x[t]:
//
//	y   = d[t]
//	row = [x[t], 1?, (t+1)?, d[t-1], …, d[t-lag]]
func (t *Test) design(nobs, k int) (*mat.Dense, *mat.VecDense) {
	d := diff(t.series)
	X := mat.NewDense(nobs, k, nil)
	y := mat.NewVecDense(nobs, nil)

	var col int
	for r := 0; r < nobs; r++ {
		tt := r + t.lag // index into d
		y.SetVec(r, d[tt])

		X.Set(r, 0, t.series[tt])
		col = 1
		switch t.regression {
		case Constant:
			X.Set(r, col, 1)
			col++
		case ConstantTrend:
			X.Set(r, col, 1)
			X.Set(r, col+1, float64(tt+1))
			col += 2
		}
		for i := 1; i <= t.lag; i++ {
			X.Set(r, col, d[tt-i])
			col++
		}
	}

	return X, y
}

// tStatistic solves (XᵀX + λI)β = Xᵀy and returns β₀ / se(β₀) with
// se² = s²·[(XᵀX + λI)⁻¹]₀₀ and s² = RSS / (nobs - k).
func tStatistic(X *mat.Dense, y *mat.VecDense, ridge float64) (float64, error) {
	nobs, k := X.Dims()

	// Normal equations.
	var gram mat.SymDense
	gram.SymOuterK(1, X.T())
	for i := 0; i < k; i++ {
		gram.SetSym(i, i, gram.At(i, i)+ridge)
	}
	var xty mat.VecDense
	xty.MulVec(X.T(), y)

	var chol mat.Cholesky
	if ok := chol.Factorize(&gram); !ok {
		return 0, ErrSingular
	}
	var beta mat.VecDense
	if err := chol.SolveVecTo(&beta, &xty); err != nil {
		return 0, ErrSingular
	}
	var inv mat.SymDense
	if err := chol.InverseTo(&inv); err != nil {
		return 0, ErrSingular
	}

	// Residual variance.
	var fit, resid mat.VecDense
	fit.MulVec(X, &beta)
	resid.SubVec(y, &fit)
	s2 := mat.Dot(&resid, &resid) / float64(nobs-k)

	se := math.Sqrt(s2 * inv.At(0, 0))

	return beta.AtVec(0) / se, nil
}

// NeedsDiff reports whether the unit root could not be rejected, i.e. the
// series should be differenced.
func (t *Test) NeedsDiff() bool { return t.needsDiff }

// Statistic returns the τ statistic.
func (t *Test) Statistic() float64 { return t.statistic }

// CriticalValue returns the critical value the statistic was compared with.
func (t *Test) CriticalValue() float64 { return t.critical }

// Lag returns the number of lagged differences used.
func (t *Test) Lag() int { return t.lag }

// Regression returns the deterministic-term variant used.
func (t *Test) Regression() Regression { return t.regression }

// ZeroPaddedDiff returns the first difference of the tested series, padded
// with a leading zero so its length equals the input length.
func (t *Test) ZeroPaddedDiff() []float64 {
	return ZeroPaddedDiff(t.series)
}

// ZeroPaddedDiff returns [0, x1-x0, …, x_{n-1}-x_{n-2}]. An empty input
// yields an empty slice.
// Complexity: O(n).
func ZeroPaddedDiff(x []float64) []float64 {
	out := make([]float64, len(x))
	for i := 1; i < len(x); i++ {
		out[i] = x[i] - x[i-1]
	}

	return out
}

// diff returns the plain first difference (length n-1).
func diff(x []float64) []float64 {
	if len(x) < 2 {
		return nil
	}

	return ZeroPaddedDiff(x)[1:]
}
