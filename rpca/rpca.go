// SPDX-License-Identifier: MIT

package rpca

import (
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/surus/matrix"
)

// Decompose splits m into a low-rank part L, a sparse part S and a residual
// E with m = L + S + E.
//
// Contract:
//   - m must be non-nil, finite and at least 2x2 (ErrNilMatrix, ErrNaNInf,
//     ErrShape).
//   - An all-zero m returns three zero matrices and Iterations == 0.
//   - The input is never modified; the result is deterministic for a given
//     m and option set.
//   - Exhausting the iteration budget returns ErrNotConverged (wrapping
//     ErrNumerical) and no partial result.
//   - DynamicMu expects standardized input (zero mean, unit variance): its
//     mu floor of 0.01 is absolute, so raw data on a large scale may need
//     many more iterations or fail with ErrNotConverged. Standardize first,
//     or use InexactALM, whose parameters scale with m.
//
// Complexity: O(iter · min(r,c)·r·c).
func Decompose(m mat.Matrix, opts ...Option) (*Result, error) {
	if err := matrix.ValidateNotNil(m); err != nil {
		return nil, rpcaErrorf("Decompose", ErrNilMatrix)
	}
	rows, cols := m.Dims()
	if rows < 2 || cols < 2 {
		return nil, rpcaErrorf("Decompose", ErrShape)
	}
	if err := matrix.ValidateFinite(matrix.ToSeries(m)); err != nil {
		return nil, rpcaErrorf("Decompose", ErrNaNInf)
	}

	o, err := gatherOptions(rows, cols, opts...)
	if err != nil {
		return nil, err
	}

	var res *Result
	switch {
	case matrix.IsZero(m):
		res = &Result{
			L: mat.NewDense(rows, cols, nil),
			S: mat.NewDense(rows, cols, nil),
			E: mat.NewDense(rows, cols, nil),
		}
	default:
		x := mat.DenseCopyOf(m)
		if o.method == InexactALM {
			res, err = decomposeALM(x, o)
		} else {
			res, err = decomposeDynamicMu(x, o)
		}
		if err != nil {
			return nil, err
		}
	}
	res.Method = o.method
	res.LPenalty = o.lpenalty
	res.SPenalty = o.spenalty

	return res, nil
}
