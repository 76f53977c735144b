// SPDX-License-Identifier: MIT
// Package adf: functional options.
// Option setters validate their argument and return ErrInvalidOption;
// New resolves them once into an immutable options value.

package adf

import "math"

// Defaults (single source of truth).
const (
	// DefaultRegression is the deterministic-term variant used by New.
	DefaultRegression = Constant

	// DefaultLevel is the significance level used by New.
	DefaultLevel = Level5

	// DefaultRidge is the ridge term added to the normal equations.
	DefaultRidge = 1e-4

	// autoLag marks "derive the lag order from the series length".
	autoLag = -1
)

// Option mutates options during New.
type Option func(*options) error

// options is the resolved configuration of one test.
type options struct {
	lag        int
	regression Regression
	level      Level
	ridge      float64
}

// defaultOptions returns the documented defaults.
func defaultOptions() options {
	return options{
		lag:        autoLag,
		regression: DefaultRegression,
		level:      DefaultLevel,
		ridge:      DefaultRidge,
	}
}

// gatherOptions applies opts over the defaults, stopping at the first error.
func gatherOptions(opts ...Option) (options, error) {
	o := defaultOptions()
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(&o); err != nil {
			return options{}, err
		}
	}

	return o, nil
}

// WithLag fixes the number of lagged differences p (p ≥ 0).
func WithLag(p int) Option {
	return func(o *options) error {
		if p < 0 {
			return adfErrorf("WithLag", ErrInvalidOption)
		}
		o.lag = p

		return nil
	}
}

// WithRegression selects the deterministic terms.
func WithRegression(r Regression) Option {
	return func(o *options) error {
		if r < NoConstant || r > ConstantTrend {
			return adfErrorf("WithRegression", ErrInvalidOption)
		}
		o.regression = r

		return nil
	}
}

// WithSignificance selects the level whose critical value decides the verdict.
func WithSignificance(l Level) Option {
	return func(o *options) error {
		if l < Level1 || l > Level10 {
			return adfErrorf("WithSignificance", ErrInvalidOption)
		}
		o.level = l

		return nil
	}
}

// WithRidge sets the ridge term λ ≥ 0. λ = 0 gives plain least squares and
// turns collinear designs into ErrSingular.
func WithRidge(lambda float64) Option {
	return func(o *options) error {
		if lambda < 0 || math.IsNaN(lambda) || math.IsInf(lambda, 0) {
			return adfErrorf("WithRidge", ErrInvalidOption)
		}
		o.ridge = lambda

		return nil
	}
}
