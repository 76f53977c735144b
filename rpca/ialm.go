// SPDX-License-Identifier: MIT

package rpca

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/surus/matrix"
)

// decomposeALM runs the inexact augmented Lagrange multiplier iteration for
//
//	min λ_L·‖L‖_* + λ_S·‖S‖₁  s.t.  M = L + S.
//
// Stage 1 (Init):
//   - Y = M / max(‖M‖₂, ‖M‖_∞/λ_S), μ = 1.25/‖M‖₂, μ_max = μ·1e7.
//
// Stage 2 (Iterate):
//   - L ← SVT(M - S + Y/μ, λ_L/μ)
//   - S ← shrink(M - L + Y/μ, λ_S/μ)
//   - Y ← Y + μ·(M - L - S), μ ← min(1.5·μ, μ_max)
//   - stop once ‖M - L - S‖_F / ‖M‖_F < tol.
//
// E is the remaining residual M - L - S, small but not exactly zero.
func decomposeALM(m *mat.Dense, o Options) (*Result, error) {
	rows, cols := m.Dims()

	norm2, err := spectralNorm(m)
	if err != nil {
		return nil, rpcaErrorf("decomposeALM", err)
	}
	normF := mat.Norm(m, 2)
	dual := math.Max(norm2, matrix.MaxAbs(m)/o.spenalty)

	var y mat.Dense
	y.Scale(1/dual, m)
	mu := almMuScale / norm2
	muMax := mu * almMuCap

	s := mat.NewDense(rows, cols, nil)
	var (
		l    *mat.Dense
		work mat.Dense
	)
	for iter := 1; iter <= o.maxIter; iter++ {
		// work = M - S + Y/μ
		work.Scale(1/mu, &y)
		work.Add(&work, m)
		work.Sub(&work, s)
		l, _, err = svt(&work, o.lpenalty/mu)
		if err != nil {
			return nil, rpcaErrorf("decomposeALM", err)
		}

		// work = M - L + Y/μ
		work.Scale(1/mu, &y)
		work.Add(&work, m)
		work.Sub(&work, l)
		s = matrix.Shrink(&work, o.spenalty/mu)

		e := residual(m, l, s)
		rel := mat.Norm(e, 2) / normF
		if math.IsNaN(rel) || math.IsInf(rel, 0) {
			return nil, rpcaErrorf("decomposeALM", ErrNumerical)
		}
		if rel < o.tol {
			return &Result{L: l, S: s, E: e, Iterations: iter}, nil
		}

		work.Scale(mu, e)
		y.Add(&y, &work)
		mu = math.Min(mu*almRho, muMax)
	}

	return nil, rpcaErrorf("decomposeALM", ErrNotConverged)
}
