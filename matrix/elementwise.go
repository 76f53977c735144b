// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Entrywise kernels the robust decomposition loop runs every iteration:
//     scalar and matrix soft-thresholding, entrywise L1 norm, max-abs,
//     an all-zero test and a tolerance comparison.
//   - Keep the tight loops in one place with a fixed i→j traversal.
//
// Determinism & Performance:
//   - Fixed loop order, no hidden allocations beyond the returned matrix.

package matrix

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// SoftThreshold shrinks x toward zero by penalty, clamping at zero:
// sign(x)·max(|x|-penalty, 0).
// Complexity: O(1).
func SoftThreshold(x, penalty float64) float64 {
	penalized := math.Abs(x) - penalty
	if penalized < 0 {
		return 0
	}
	if x > 0 {
		return penalized
	}

	return -penalized
}

// Shrink applies SoftThreshold to every entry of x and returns a new matrix.
// Complexity: O(r*c).
func Shrink(x mat.Matrix, penalty float64) *mat.Dense {
	r, c := x.Dims()
	out := mat.NewDense(r, c, nil)
	out.Apply(func(i, j int, v float64) float64 {
		return SoftThreshold(v, penalty)
	}, x)

	return out
}

// L1Norm returns the entrywise L1 norm Σ|x_ij| (not the induced 1-norm).
// Complexity: O(r*c).
func L1Norm(x mat.Matrix) float64 {
	r, c := x.Dims()
	var sum float64
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			sum += math.Abs(x.At(i, j))
		}
	}

	return sum
}

// MaxAbs returns max|x_ij|, the entrywise infinity norm.
// Complexity: O(r*c).
func MaxAbs(x mat.Matrix) float64 {
	r, c := x.Dims()
	var best float64
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			if a := math.Abs(x.At(i, j)); a > best {
				best = a
			}
		}
	}

	return best
}

// IsZero reports whether every entry of x is exactly zero.
// Complexity: O(r*c) worst case, early exit on the first non-zero.
func IsZero(x mat.Matrix) bool {
	r, c := x.Dims()
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			if x.At(i, j) != 0 {
				return false
			}
		}
	}

	return true
}
