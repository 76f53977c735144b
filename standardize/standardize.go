// SPDX-License-Identifier: MIT

package standardize

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Normalization is the {mean, stdev} pair fitted once per window.
// The zero value is not usable; build it with Fit.
type Normalization struct {
	Mean   float64
	StdDev float64 // sample standard deviation, always > 0
}

// Fit computes the sample mean and standard deviation of x.
//
// Errors:
//   - ErrTooShort when len(x) < 2.
//   - ErrNaNInf when x holds a non-finite value.
//   - ErrDegenerateSeries when all values are equal (stdev == 0).
//
// Complexity: O(len(x)).
func Fit(x []float64) (Normalization, error) {
	if len(x) < 2 {
		return Normalization{}, fmt.Errorf("Fit: len=%d: %w", len(x), ErrTooShort)
	}
	for _, v := range x {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return Normalization{}, fmt.Errorf("Fit: %w", ErrNaNInf)
		}
	}
	// Equal extremes catch constant series whose rounded mean would
	// otherwise leave a tiny non-zero spread.
	if floats.Max(x) == floats.Min(x) {
		return Normalization{}, fmt.Errorf("Fit: %w", ErrDegenerateSeries)
	}

	mean, sd := stat.MeanStdDev(x, nil)
	if sd == 0 || math.IsNaN(sd) {
		return Normalization{}, fmt.Errorf("Fit: %w", ErrDegenerateSeries)
	}

	return Normalization{Mean: mean, StdDev: sd}, nil
}

// FitTransform fits a Normalization to x and returns the standardized copy.
func FitTransform(x []float64) ([]float64, Normalization, error) {
	n, err := Fit(x)
	if err != nil {
		return nil, Normalization{}, err
	}

	return n.Transform(x), n, nil
}

// TransformValue returns (v-mean)/stdev.
func (n Normalization) TransformValue(v float64) float64 {
	return (v - n.Mean) / n.StdDev
}

// Transform standardizes every element of x into a new slice.
func (n Normalization) Transform(x []float64) []float64 {
	out := make([]float64, len(x))
	for i, v := range x {
		out[i] = n.TransformValue(v)
	}

	return out
}

// InverseLevel maps a standardized level (e.g. a baseline) back to
// original units: v·stdev + mean.
func (n Normalization) InverseLevel(v float64) float64 {
	return v*n.StdDev + n.Mean
}

// InverseOffset maps a standardized deviation (sparse or residual value)
// back to original units without the mean shift: v·stdev.
func (n Normalization) InverseOffset(v float64) float64 {
	return v * n.StdDev
}
