// SPDX-License-Identifier: MIT

// Package standardize rescales a series to zero mean and unit variance and
// maps derived values back to the original units.
//
// The fitted Normalization holds the sample mean and the sample standard
// deviation (L-1 denominator). Two inverses exist because the decomposition
// produces two kinds of values:
//
//	InverseLevel(v)  = v·stdev + mean   // baselines: absolute levels
//	InverseOffset(v) = v·stdev          // anomalies, residuals: offsets
//
// A constant series has no scale and is rejected with ErrDegenerateSeries.
package standardize
