// SPDX-License-Identifier: MIT
// Package rpca: functional options.
// Option setters validate their argument and return ErrInvalidOption.
// Decompose resolves them once; penalties left unset are derived from the
// matrix shape.

package rpca

import "math"

// Defaults (single source of truth).
const (
	// DefaultLPenalty is the nuclear-norm weight.
	DefaultLPenalty = 1.0

	// DefaultSPenaltyScale is c in λ_S = c / sqrt(max(rows, cols)).
	DefaultSPenaltyScale = 1.4

	// DefaultMaxIterations bounds both loops.
	DefaultMaxIterations = 1000

	// DefaultDynamicMuTolerance is the relative objective-change tolerance:
	// stop when |obj_prev - obj| ≤ tol · ½‖M‖²_F.
	DefaultDynamicMuTolerance = 1e-8

	// DefaultALMTolerance is the relative residual tolerance:
	// stop when ‖M - L - S‖_F / ‖M‖_F < tol.
	DefaultALMTolerance = 1e-7

	// minDynamicMu floors the residual-driven penalty scale.
	minDynamicMu = 0.01

	// ALM schedule: mu₀ = almMuScale/‖M‖₂, mu ← min(rho·mu, mu₀·almMuCap).
	almMuScale = 1.25
	almRho     = 1.5
	almMuCap   = 1e7
)

// DefaultSPenalty returns 1.4 / sqrt(max(rows, cols)).
func DefaultSPenalty(rows, cols int) float64 {
	return DefaultSPenaltyScale / math.Sqrt(float64(max(rows, cols)))
}

// Option mutates options during Decompose.
type Option func(*Options) error

// Options is the effective configuration of one decomposition. Zero
// penalties and tolerance mean "derive the default".
type Options struct {
	lpenalty float64
	spenalty float64
	method   Method
	tol      float64
	maxIter  int
}

// gatherOptions applies opts over the defaults and fills shape-derived values.
func gatherOptions(rows, cols int, opts ...Option) (Options, error) {
	o := Options{
		lpenalty: DefaultLPenalty,
		method:   DynamicMu,
		maxIter:  DefaultMaxIterations,
	}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(&o); err != nil {
			return Options{}, err
		}
	}
	if o.spenalty == 0 {
		o.spenalty = DefaultSPenalty(rows, cols)
	}
	if o.tol == 0 {
		if o.method == InexactALM {
			o.tol = DefaultALMTolerance
		} else {
			o.tol = DefaultDynamicMuTolerance
		}
	}

	return o, nil
}

// positiveFinite reports v > 0 and finite.
func positiveFinite(v float64) bool {
	return v > 0 && !math.IsInf(v, 0) && !math.IsNaN(v)
}

// WithLPenalty sets the nuclear-norm weight λ_L > 0.
func WithLPenalty(v float64) Option {
	return func(o *Options) error {
		if !positiveFinite(v) {
			return rpcaErrorf("WithLPenalty", ErrInvalidOption)
		}
		o.lpenalty = v

		return nil
	}
}

// WithSPenalty sets the sparsity weight λ_S > 0.
func WithSPenalty(v float64) Option {
	return func(o *Options) error {
		if !positiveFinite(v) {
			return rpcaErrorf("WithSPenalty", ErrInvalidOption)
		}
		o.spenalty = v

		return nil
	}
}

// WithMethod selects the iteration.
func WithMethod(m Method) Option {
	return func(o *Options) error {
		if m != DynamicMu && m != InexactALM {
			return rpcaErrorf("WithMethod", ErrInvalidOption)
		}
		o.method = m

		return nil
	}
}

// WithTolerance overrides the stopping tolerance of the selected method.
func WithTolerance(tol float64) Option {
	return func(o *Options) error {
		if !positiveFinite(tol) {
			return rpcaErrorf("WithTolerance", ErrInvalidOption)
		}
		o.tol = tol

		return nil
	}
}

// WithMaxIterations sets the iteration budget (≥ 1).
func WithMaxIterations(n int) Option {
	return func(o *Options) error {
		if n < 1 {
			return rpcaErrorf("WithMaxIterations", ErrInvalidOption)
		}
		o.maxIter = n

		return nil
	}
}
