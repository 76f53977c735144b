// Package surus is robust anomaly detection for fixed windows of a
// periodic metric: split the window into a smooth low-rank baseline, a
// sparse set of anomalies and residual noise.
//
// What is in the box?
//
//	A small, deterministic, pure-Go stack built on gonum:
//		• Reshaping: a series laid out column-major, one period per column
//		• Standardization: zero mean, unit variance, exact inverses
//		• Stationarity: augmented Dickey–Fuller test + zero-padded differencing
//		• Robust PCA: dynamic-mu proximal solver and inexact ALM
//		• Orchestration: schema checks, gating, record assembly, parallel windows
//
// Packages:
//
//	matrix/      column-major reshaping and the entrywise kernels of the solver
//	standardize/ SeriesStandardizer (Normalization, Fit, inverses)
//	adf/         StationarityTester (ADF regression, Fuller critical values)
//	rpca/        RobustDecomposer (L + S + E = M)
//	rad/         BatchOrchestrator over records (Config, Detector, ProcessAll)
//	cmd/surus    JSON-lines command line front end
//
// Quick picture of a 7×3 window (days × weeks):
//
//	      w0  w1  w2
//	Mon   x0  x7  x14
//	Tue   x1  x8  x15
//	...
//	Sun   x6  x13 x20
//
// A weekly pattern is low rank across columns; a one-off spike is sparse.
//
//	go get github.com/katalvlaran/surus
package surus
