// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Column-major reshaping between a flat series and a rows×cols matrix.
//   - The same mapping is used to build the input matrix and to read the
//     decomposition back in record order, so both directions live here.
//
// Convention:
//   - n ↦ (i, j) with i = n mod rows, j = ⌊n / rows⌋.
//   - (i, j) ↦ n = j*rows + i.

package matrix

import "gonum.org/v1/gonum/mat"

// Operation name constants for unified error wrapping.
const (
	opFromSeries = "FromSeries"
	opSeriesLen  = "SeriesLen"
)

// Coord returns the matrix coordinates of flat index n for a matrix with
// the given number of rows.
// The caller guarantees rows > 0 and 0 ≤ n.
// Complexity: O(1).
func Coord(n, rows int) (i, j int) {
	return n % rows, n / rows
}

// Index is the inverse of Coord.
// Complexity: O(1).
func Index(i, j, rows int) int {
	return j*rows + i
}

// FromSeries fills a new rows×cols matrix from x in column-major order.
// Stage 1 (Validate): positive shape, len(x) == rows*cols.
// Stage 2 (Execute): scatter x[n] into (n mod rows, n / rows).
//
// Errors:
//   - ErrBadShape when rows<=0 or cols<=0.
//   - ErrDimensionMismatch when len(x) != rows*cols.
//
// Complexity: O(rows*cols) time and memory.
func FromSeries(x []float64, rows, cols int) (*mat.Dense, error) {
	// Stage 1: validate shape and length.
	if err := ValidateShape(rows, cols); err != nil {
		return nil, matrixErrorf(opFromSeries, err)
	}
	if err := ValidateVecLen(x, rows*cols); err != nil {
		return nil, matrixErrorf(opFromSeries, err)
	}

	// Stage 2: gonum stores row-major, so transpose the index on the way in.
	out := mat.NewDense(rows, cols, nil)
	var i, j int
	for n, v := range x {
		i, j = Coord(n, rows)
		out.Set(i, j, v)
	}

	return out, nil
}

// ToSeries flattens m back into a series in column-major order, so that
// ToSeries(FromSeries(x, r, c)) == x.
// A nil matrix yields a nil slice.
// Complexity: O(rows*cols).
func ToSeries(m mat.Matrix) []float64 {
	if ValidateNotNil(m) != nil {
		return nil
	}
	rows, cols := m.Dims()
	out := make([]float64, rows*cols)
	for j := 0; j < cols; j++ {
		for i := 0; i < rows; i++ {
			out[Index(i, j, rows)] = m.At(i, j)
		}
	}

	return out
}

// ValueAt reads the element of m that corresponds to flat index n.
// Complexity: O(1).
func ValueAt(m mat.Matrix, n int) float64 {
	rows, _ := m.Dims()
	i, j := Coord(n, rows)

	return m.At(i, j)
}

// SeriesLen returns rows*cols, validating the shape first.
// Complexity: O(1).
func SeriesLen(rows, cols int) (int, error) {
	if err := ValidateShape(rows, cols); err != nil {
		return 0, matrixErrorf(opSeriesLen, err)
	}

	return rows * cols, nil
}
