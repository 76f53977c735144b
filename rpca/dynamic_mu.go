// SPDX-License-Identifier: MIT

package rpca

import (
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/surus/matrix"
)

// decomposeDynamicMu runs the proximal alternation
//
//	S ← shrink(M - L, λ_S·μ)
//	L ← SVT(M - S, λ_L·μ)
//	E ← M - L - S
//
// minimising ½‖E‖²_F + λ_L·μ·‖L‖_* + λ_S·μ·‖S‖₁. After every sweep μ is
// re-estimated from the spread of E, so the thresholds follow the noise level.
//
// Stage 1 (Init):
//   - μ₀ = rows·cols / (4·‖M‖₁), obj₀ = ½‖M‖²_F, tol = o.tol·obj₀.
//
// Stage 2 (Iterate):
//   - One S-step, one L-step, objective, μ update; stop once the absolute
//     objective change is at most tol.
//
// Complexity: O(iter · min(r,c)·r·c) dominated by the thin SVD.
func decomposeDynamicMu(m *mat.Dense, o Options) (*Result, error) {
	rows, cols := m.Dims()

	mu := float64(rows*cols) / (4 * matrix.L1Norm(m))
	objPrev := 0.5 * frobenius2(m)
	tol := o.tol * objPrev

	l := mat.NewDense(rows, cols, nil)
	var (
		s    *mat.Dense
		e    *mat.Dense
		diff mat.Dense
	)
	for iter := 1; iter <= o.maxIter; iter++ {
		// S-step on M - L.
		diff.Sub(m, l)
		sPen := o.spenalty * mu
		s = matrix.Shrink(&diff, sPen)

		// L-step on M - S.
		diff.Sub(m, s)
		lPen := o.lpenalty * mu
		var (
			nuclear float64
			err     error
		)
		l, nuclear, err = svt(&diff, lPen)
		if err != nil {
			return nil, rpcaErrorf("decomposeDynamicMu", err)
		}

		e = residual(m, l, s)
		obj := 0.5*frobenius2(e) + lPen*nuclear + sPen*matrix.L1Norm(s)
		if math.IsNaN(obj) || math.IsInf(obj, 0) {
			return nil, rpcaErrorf("decomposeDynamicMu", ErrNumerical)
		}

		change := math.Abs(objPrev - obj)
		objPrev = obj
		mu = dynamicMu(e)

		if change <= tol {
			return &Result{L: l, S: s, E: e, Iterations: iter}, nil
		}
	}

	return nil, rpcaErrorf("decomposeDynamicMu", ErrNotConverged)
}

// dynamicMu returns max(0.01, sd(E)·sqrt(2·max(rows, cols))) where sd is the
// sample standard deviation over all entries of E.
func dynamicMu(e *mat.Dense) float64 {
	rows, cols := e.Dims()
	sd := stat.StdDev(matrix.ToSeries(e), nil)
	mu := sd * math.Sqrt(float64(2*max(rows, cols)))
	if mu < minDynamicMu || math.IsNaN(mu) {
		return minDynamicMu
	}

	return mu
}
