// SPDX-License-Identifier: MIT
// Package rad runs robust anomaly detection over fixed-size windows of
// records.
//
// A window is an ordered batch of exactly rows·cols records that share a
// schema. One field of the schema (the column) carries the metric. For each
// window the Detector:
//
//  1. checks the record count and the column type;
//  2. returns the records unchanged when fewer than 2·rows values are
//     non-negligible (|x| > 1e-12);
//  3. decides differencing (ADF test, forced on, or forced off);
//  4. standardizes the series and lays it out column-major as a
//     rows×cols matrix (each column one period);
//  5. decomposes it into low-rank, sparse and residual parts;
//  6. appends x_transform, rsvd_l, rsvd_s and rsvd_e to every record in
//     input order.
//
// Config is built once by NewConfig and never changes afterwards, so a
// Detector may serve many goroutines. ProcessAll fans independent windows
// out over a bounded worker pool.
//
// Example:
//
//	cfg, err := rad.NewConfig("metric", 7, 9, rad.WithForceDiff(false))
//	if err != nil { ... }
//	det := rad.New(cfg, rad.WithLogger(log))
//	out, err := det.Process(schema, records)
//
// All errors are fatal to the window being processed: there is no partial
// output. Match them with errors.Is against the sentinels in errors.go.
package rad
