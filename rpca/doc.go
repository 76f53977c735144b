// SPDX-License-Identifier: MIT

// Package rpca decomposes a real matrix M into a low-rank part L, a sparse
// part S and a dense residual E with M = L + S + E (Robust Principal
// Component Analysis).
//
// 🚀 What is RPCA?
//
//	RPCA looks for L and S minimising
//
//	  ‖L‖_* + λ_S·‖S‖₁   subject to   L + S ≈ M
//
//	where ‖·‖_* is the nuclear norm (sum of singular values, a convex proxy
//	for rank) and ‖·‖₁ the entrywise L1 norm. Applied to a seasonal series
//	folded into a matrix (one column per period), L is the smooth baseline,
//	S the anomalies and E the noise.
//
// ✨ Methods:
//   - DynamicMu (default): proximal alternation with a penalty scale mu
//     re-estimated from the residual spread every iteration. It stops when
//     the objective ½‖E‖²_F + λ_L·mu·‖L‖_* + λ_S·mu·‖S‖₁ changes by no more
//     than tol·½‖M‖²_F. E keeps the unexplained noise.
//   - InexactALM: the augmented Lagrange multiplier iteration of Lin, Chen &
//     Ma (2010). It enforces L + S = M, so E shrinks to the stopping
//     tolerance.
//
// Both loops are deterministic (no randomness anywhere), bounded by a fixed
// iteration budget, and fail with ErrNotConverged rather than return an
// unconverged result.
//
// ⚙️ Usage:
//
//	res, err := rpca.Decompose(m,
//	  rpca.WithLPenalty(1),
//	  rpca.WithSPenalty(1.4/3),
//	)
//	if err != nil {
//	  // ErrShape, ErrNotConverged, ErrNumerical, ErrNaNInf
//	}
//	_ = res.L; _ = res.S; _ = res.E
//
// Complexity: one thin SVD per iteration, O(min(r,c)·r·c).
package rpca
