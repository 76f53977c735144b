// SPDX-License-Identifier: MIT

package standardize

import "errors"

var (
	// ErrTooShort is returned when fewer than two values are supplied;
	// the sample standard deviation is undefined below that.
	ErrTooShort = errors.New("standardize: series needs at least 2 values")

	// ErrDegenerateSeries is returned when the series has zero variance.
	ErrDegenerateSeries = errors.New("standardize: series has zero variance")

	// ErrNaNInf is returned when the series holds NaN or ±Inf.
	ErrNaNInf = errors.New("standardize: NaN or Inf encountered")
)
