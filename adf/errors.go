// SPDX-License-Identifier: MIT

package adf

import (
	"errors"
	"fmt"
)

var (
	// ErrInsufficientData is returned when the series is too short to leave
	// any residual degrees of freedom in the test regression.
	ErrInsufficientData = errors.New("adf: series too short for the unit-root regression")

	// ErrNaNInf is returned when the series holds NaN or ±Inf.
	ErrNaNInf = errors.New("adf: NaN or Inf encountered")

	// ErrSingular is returned when the normal equations cannot be factorised.
	ErrSingular = errors.New("adf: singular design matrix")

	// ErrInvalidOption is returned by option setters on nonsensical values.
	ErrInvalidOption = errors.New("adf: invalid option")
)

// adfErrorf wraps err with the operation name.
func adfErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
