// SPDX-License-Identifier: MIT
// Package: adf
//
// Purpose:
//   - Dickey–Fuller critical values, Fuller (1976) Table 8.5.2 (reproduced
//     in Hamilton 1994, Table B.6), for the three regression variants.
//   - The table is built once at package initialisation and never mutated;
//     CriticalValue only reads it, so concurrent use is safe.
//
// Interpolation:
//   - Rows are indexed by x = 1/n with the asymptotic row at x = 0.
//   - Values are linearly interpolated in x; n below the smallest tabulated
//     size uses that row unchanged.

package adf

// criticalRow holds the critical values at one sample size, ordered by Level.
type criticalRow struct {
	n      float64 // sample size; 0 marks the asymptotic row
	values [4]float64
}

// criticalTable maps each regression variant to its rows, ordered by
// increasing sample size with the asymptotic row last.
var criticalTable = map[Regression][]criticalRow{
	NoConstant: {
		{25, [4]float64{-2.66, -2.26, -1.95, -1.60}},
		{50, [4]float64{-2.62, -2.25, -1.95, -1.61}},
		{100, [4]float64{-2.60, -2.24, -1.95, -1.61}},
		{250, [4]float64{-2.58, -2.23, -1.95, -1.62}},
		{500, [4]float64{-2.58, -2.23, -1.95, -1.62}},
		{0, [4]float64{-2.58, -2.23, -1.95, -1.62}},
	},
	Constant: {
		{25, [4]float64{-3.75, -3.33, -3.00, -2.63}},
		{50, [4]float64{-3.58, -3.22, -2.93, -2.60}},
		{100, [4]float64{-3.51, -3.17, -2.89, -2.58}},
		{250, [4]float64{-3.46, -3.14, -2.88, -2.57}},
		{500, [4]float64{-3.44, -3.13, -2.87, -2.57}},
		{0, [4]float64{-3.43, -3.12, -2.86, -2.57}},
	},
	ConstantTrend: {
		{25, [4]float64{-4.38, -3.95, -3.60, -3.24}},
		{50, [4]float64{-4.15, -3.80, -3.50, -3.18}},
		{100, [4]float64{-4.04, -3.73, -3.45, -3.15}},
		{250, [4]float64{-3.99, -3.69, -3.43, -3.13}},
		{500, [4]float64{-3.98, -3.68, -3.42, -3.13}},
		{0, [4]float64{-3.96, -3.66, -3.41, -3.12}},
	},
}

// inverseSize returns 1/n, with the asymptotic marker mapped to 0.
func (r criticalRow) inverseSize() float64 {
	if r.n == 0 {
		return 0
	}

	return 1 / r.n
}

// CriticalValue returns the Dickey–Fuller critical value for regression
// reg at significance level lvl and sample size n.
//
// Errors:
//   - ErrInvalidOption for an unknown regression or level, or n < 1.
//
// Complexity: O(rows) with six rows per variant.
func CriticalValue(reg Regression, lvl Level, n int) (float64, error) {
	rows, ok := criticalTable[reg]
	if !ok || lvl < Level1 || lvl > Level10 || n < 1 {
		return 0, adfErrorf("CriticalValue", ErrInvalidOption)
	}

	x := 1 / float64(n)
	// Below the smallest tabulated size: clamp to the first row.
	if x >= rows[0].inverseSize() {
		return rows[0].values[lvl], nil
	}

	// Rows run from large 1/n to 0; find the bracketing pair.
	var hi, lo criticalRow
	for k := 1; k < len(rows); k++ {
		hi, lo = rows[k-1], rows[k]
		if x >= lo.inverseSize() {
			xh, xl := hi.inverseSize(), lo.inverseSize()
			w := (x - xl) / (xh - xl)
			return lo.values[lvl] + w*(hi.values[lvl]-lo.values[lvl]), nil
		}
	}

	// x == 0 is covered by the last row; unreachable for finite n.
	return rows[len(rows)-1].values[lvl], nil
}
