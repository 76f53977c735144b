// SPDX-License-Identifier: MIT

package rad

import (
	"math"

	"github.com/katalvlaran/surus/adf"
	"github.com/katalvlaran/surus/matrix"
	"github.com/katalvlaran/surus/rpca"
)

const (
	// eps is the magnitude above which a value counts as non-negligible.
	eps = 1e-12

	// minRecordsPerRow scales rows into the gating threshold.
	minRecordsPerRow = 2
)

// Config is the immutable, fully resolved configuration of a Detector.
// Build it with NewConfig; the zero value is not usable.
type Config struct {
	column       string
	rows, cols   int
	diff         DiffMode
	lpenalty     float64
	spenalty     float64
	method       rpca.Method
	significance adf.Level
}

// ConfigOption adjusts a Config under construction.
type ConfigOption func(*Config) error

// NewConfig validates the arguments and resolves every default once:
// lpenalty = 1 and spenalty = 1.4/sqrt(max(rows, cols)) unless overridden,
// differencing decided by the ADF test unless forced.
//
// Returns ErrConfiguration for an empty column, non-positive dimensions or
// an invalid option value.
func NewConfig(column string, rows, cols int, opts ...ConfigOption) (Config, error) {
	if column == "" {
		return Config{}, radErrorf("NewConfig: column", ErrConfiguration)
	}
	if _, err := matrix.SeriesLen(rows, cols); err != nil {
		return Config{}, radErrorf("NewConfig: dimensions", ErrConfiguration)
	}

	cfg := Config{
		column:       column,
		rows:         rows,
		cols:         cols,
		diff:         DiffAuto,
		lpenalty:     rpca.DefaultLPenalty,
		spenalty:     rpca.DefaultSPenalty(rows, cols),
		method:       rpca.DynamicMu,
		significance: adf.DefaultLevel,
	}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(&cfg); err != nil {
			return Config{}, err
		}
	}

	return cfg, nil
}

func validPenalty(v float64) bool {
	return v > 0 && !math.IsInf(v, 0) && !math.IsNaN(v)
}

// WithForceDiff forces differencing on (true) or off (false).
func WithForceDiff(force bool) ConfigOption {
	return func(c *Config) error {
		if force {
			c.diff = DiffAlways
		} else {
			c.diff = DiffNever
		}

		return nil
	}
}

// WithDiffMode sets the tri-state differencing policy directly.
func WithDiffMode(m DiffMode) ConfigOption {
	return func(c *Config) error {
		if m != DiffAuto && m != DiffAlways && m != DiffNever {
			return radErrorf("WithDiffMode", ErrConfiguration)
		}
		c.diff = m

		return nil
	}
}

// WithLPenalty overrides the nuclear-norm weight.
func WithLPenalty(v float64) ConfigOption {
	return func(c *Config) error {
		if !validPenalty(v) {
			return radErrorf("WithLPenalty", ErrConfiguration)
		}
		c.lpenalty = v

		return nil
	}
}

// WithSPenalty overrides the sparsity weight.
func WithSPenalty(v float64) ConfigOption {
	return func(c *Config) error {
		if !validPenalty(v) {
			return radErrorf("WithSPenalty", ErrConfiguration)
		}
		c.spenalty = v

		return nil
	}
}

// WithMethod selects the decomposition iteration.
func WithMethod(m rpca.Method) ConfigOption {
	return func(c *Config) error {
		if m != rpca.DynamicMu && m != rpca.InexactALM {
			return radErrorf("WithMethod", ErrConfiguration)
		}
		c.method = m

		return nil
	}
}

// WithSignificance sets the ADF significance level used in DiffAuto mode.
func WithSignificance(l adf.Level) ConfigOption {
	return func(c *Config) error {
		if l < adf.Level1 || l > adf.Level10 {
			return radErrorf("WithSignificance", ErrConfiguration)
		}
		c.significance = l

		return nil
	}
}

// Column returns the name of the metric field.
func (c Config) Column() string { return c.column }

// Rows returns the number of matrix rows (samples per period).
func (c Config) Rows() int { return c.rows }

// Cols returns the number of matrix columns (periods).
func (c Config) Cols() int { return c.cols }

// WindowSize returns rows·cols, the required record count.
func (c Config) WindowSize() int { return c.rows * c.cols }

// MinRecords returns the gating threshold 2·rows.
func (c Config) MinRecords() int { return minRecordsPerRow * c.rows }

// DiffMode returns the differencing policy.
func (c Config) DiffMode() DiffMode { return c.diff }

// LPenalty returns the effective nuclear-norm weight.
func (c Config) LPenalty() float64 { return c.lpenalty }

// SPenalty returns the effective sparsity weight.
func (c Config) SPenalty() float64 { return c.spenalty }

// Method returns the decomposition iteration.
func (c Config) Method() rpca.Method { return c.method }

// Significance returns the ADF significance level.
func (c Config) Significance() adf.Level { return c.significance }
