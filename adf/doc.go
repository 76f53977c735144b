// SPDX-License-Identifier: MIT

// Package adf implements the Augmented Dickey–Fuller unit-root test used to
// decide whether a series should be differenced before decomposition.
//
// 🚀 What does it test?
//
//	The regression
//
//	  Δx_t = β·x_{t-1} [+ α] [+ γ·t] + Σ_{i=1..p} δ_i·Δx_{t-i} + ε_t
//
//	is fitted by least squares and τ = β̂ / se(β̂) is compared against the
//	Dickey–Fuller critical value for the sample size. When τ is not below
//	the critical value the unit root cannot be rejected and the series is
//	reported as needing a first difference.
//
// ✨ Key choices:
//   - lag order p = ⌊∛(n-1)⌋ (Said–Dickey rule), overridable with WithLag;
//   - deterministic terms: NoConstant, Constant (default) or ConstantTrend;
//   - critical values from Fuller (1976), Table 8.5.2, interpolated
//     linearly in 1/n between the tabulated sample sizes;
//   - a tiny ridge term (λ = 1e-4) keeps the normal equations solvable for
//     perfectly collinear inputs such as exact linear ramps.
//
// ⚙️ Usage:
//
//	t, err := adf.New(x)
//	if err != nil {
//	  // ErrInsufficientData, ErrNaNInf, ErrSingular
//	}
//	if t.NeedsDiff() {
//	  x = t.ZeroPaddedDiff()
//	}
package adf
