// SPDX-License-Identifier: MIT

// Package matrix maps flat, equally spaced series onto dense matrices and
// back, and carries the small entrywise kernels shared by the decomposition
// packages.
//
// 🚀 What is in here?
//
//	• Column-major reshaping: flat index n ↔ (i, j) with i = n mod rows,
//	  j = ⌊n / rows⌋. A window of rows·cols observations becomes a
//	  rows×cols matrix whose columns are consecutive periods.
//	• Entrywise kernels over gonum matrices: L1 norm, max-abs, zero test,
//	  soft-thresholding (shrinkage) and tolerance comparison.
//	• Validators returning the package sentinels (ErrBadShape,
//	  ErrDimensionMismatch, ErrNaNInf, ErrNilMatrix).
//
// ⚙️ Usage:
//
//	m, err := matrix.FromSeries(x, 7, 9) // 63 values → 7×9
//	if err != nil {
//	  // handle ErrBadShape / ErrDimensionMismatch
//	}
//	i, j := matrix.Coord(10, 7) // (3, 1)
//	back := matrix.ToSeries(m)  // x again
//
// Matrices are gonum *mat.Dense values; this package never keeps state.
package matrix
