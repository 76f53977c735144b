// SPDX-License-Identifier: MIT

package rad

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/surus/adf"
	"github.com/katalvlaran/surus/rpca"
	"github.com/katalvlaran/surus/standardize"
)

var (
	// ErrConfiguration is returned for bad constructor arguments and for a
	// window whose record count differs from rows·cols.
	ErrConfiguration = errors.New("rad: invalid configuration")

	// ErrSchema is returned when the column is missing or has an unsupported
	// kind, and when a record holds a value of the wrong Go type or a NaN/Inf.
	ErrSchema = errors.New("rad: schema mismatch")
)

// Errors raised by the stages a window passes through, re-exported so
// callers can match every failure against this package.
var (
	ErrDegenerateSeries = standardize.ErrDegenerateSeries
	ErrInsufficientData = adf.ErrInsufficientData
	ErrShape            = rpca.ErrShape
	ErrNumerical        = rpca.ErrNumerical
	ErrNotConverged     = rpca.ErrNotConverged
)

// radErrorf wraps err with the operation name.
func radErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}

// schemaErrorf adds detail to ErrSchema.
func schemaErrorf(op, format string, args ...any) error {
	return fmt.Errorf("%s: %w: %s", op, ErrSchema, fmt.Sprintf(format, args...))
}
