// SPDX-License-Identifier: MIT
// Package rpca: sentinel error set. Every message is prefixed with "rpca:".

package rpca

import (
	"errors"
	"fmt"
)

var (
	// ErrShape is returned when the matrix has fewer than 2 rows or columns;
	// the decomposition is undefined there.
	ErrShape = errors.New("rpca: matrix must be at least 2x2")

	// ErrNilMatrix indicates a nil input matrix.
	ErrNilMatrix = errors.New("rpca: nil matrix")

	// ErrNaNInf signals a non-finite entry in the input matrix.
	ErrNaNInf = errors.New("rpca: NaN or Inf encountered")

	// ErrNumerical is returned when a factorisation inside the loop fails.
	ErrNumerical = errors.New("rpca: numerical failure")

	// ErrNotConverged is returned when the iteration budget is exhausted
	// before the stopping rule holds. It wraps ErrNumerical.
	ErrNotConverged = fmt.Errorf("%w: did not converge", ErrNumerical)

	// ErrInvalidOption is returned by option setters on nonsensical values.
	ErrInvalidOption = errors.New("rpca: invalid option")
)

// rpcaErrorf wraps err with the operation name.
func rpcaErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
