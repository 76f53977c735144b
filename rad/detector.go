// SPDX-License-Identifier: MIT

package rad

import (
	"math"
	"runtime"
	"time"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/surus/adf"
	"github.com/katalvlaran/surus/matrix"
	"github.com/katalvlaran/surus/rpca"
	"github.com/katalvlaran/surus/standardize"
)

// Detector applies one Config to windows of records. It holds no mutable
// state and is safe for concurrent use.
type Detector struct {
	cfg         Config
	log         zerolog.Logger
	observer    Observer
	concurrency int
}

// Option configures a Detector.
type Option func(*Detector)

// WithLogger sets the logger used for per-window debug events.
func WithLogger(l zerolog.Logger) Option {
	return func(d *Detector) { d.log = l }
}

// WithObserver registers an Observer; nil restores the no-op observer.
func WithObserver(o Observer) Option {
	return func(d *Detector) {
		if o == nil {
			o = nopObserver{}
		}
		d.observer = o
	}
}

// WithConcurrency bounds the number of windows ProcessAll runs at once.
// Values below 1 select GOMAXPROCS.
func WithConcurrency(n int) Option {
	return func(d *Detector) {
		if n < 1 {
			n = runtime.GOMAXPROCS(0)
		}
		d.concurrency = n
	}
}

// New returns a Detector for cfg.
func New(cfg Config, opts ...Option) *Detector {
	d := &Detector{
		cfg:         cfg,
		log:         zerolog.Nop(),
		observer:    nopObserver{},
		concurrency: runtime.GOMAXPROCS(0),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(d)
		}
	}

	return d
}

// Config returns the configuration the Detector was built with.
func (d *Detector) Config() Config { return d.cfg }

// OutputSchema returns in followed by the four Double fields x_transform,
// rsvd_l, rsvd_s and rsvd_e. The column must exist and be numeric.
func (d *Detector) OutputSchema(in Schema) (Schema, error) {
	if _, err := d.columnIndex(in); err != nil {
		return nil, err
	}
	out := make(Schema, 0, len(in)+4)
	out = append(out, in...)
	for _, name := range []string{FieldTransform, FieldBaseline, FieldSparse, FieldResidual} {
		out = append(out, Field{Name: name, Kind: Double})
	}

	return out, nil
}

// Process runs one window. The result has one record per input record, in
// input order; records are copied, never modified in place.
//
// Stage 1 (Validate):
//   - len(records) must equal rows·cols (ErrConfiguration).
//   - The column must be numeric and every value of its declared Go type
//     (ErrSchema).
//
// Stage 2 (Gate):
//   - Fewer than 2·rows values with |x| > 1e-12: return copies unchanged.
//
// Stage 3 (Transform):
//   - Optional zero-padded differencing, then standardization.
//
// Stage 4 (Decompose & assemble):
//   - Column-major reshape, robust decomposition, then each record gains
//     [x_transform, L·sd+mean, S·sd, E·sd].
func (d *Detector) Process(schema Schema, records []Record) ([]Record, error) {
	return d.process(d.log, schema, records)
}

func (d *Detector) process(log zerolog.Logger, schema Schema, records []Record) ([]Record, error) {
	start := time.Now()
	report := Report{Outcome: Failed}
	defer func() {
		report.Elapsed = time.Since(start)
		d.observer.ObserveWindow(report)
	}()

	series, err := d.extract(schema, records)
	if err != nil {
		return nil, err
	}

	if nonZero := countNonNegligible(series); nonZero < d.cfg.MinRecords() {
		log.Debug().
			Int("non_negligible", nonZero).
			Int("min_records", d.cfg.MinRecords()).
			Msg("window skipped")
		report.Outcome = Skipped

		return copyRecords(records, 0), nil
	}

	transformed, differenced, err := d.transform(log, series)
	if err != nil {
		return nil, err
	}
	report.Differenced = differenced

	z, norm, err := standardize.FitTransform(transformed)
	if err != nil {
		return nil, radErrorf("Process", err)
	}
	m, err := matrix.FromSeries(z, d.cfg.rows, d.cfg.cols)
	if err != nil {
		return nil, radErrorf("Process", err)
	}
	res, err := rpca.Decompose(m,
		rpca.WithLPenalty(d.cfg.lpenalty),
		rpca.WithSPenalty(d.cfg.spenalty),
		rpca.WithMethod(d.cfg.method),
	)
	if err != nil {
		return nil, radErrorf("Process", err)
	}
	log.Debug().
		Stringer("method", res.Method).
		Int("iterations", res.Iterations).
		Float64("mean", norm.Mean).
		Float64("stddev", norm.StdDev).
		Msg("window decomposed")

	out := copyRecords(records, 4)
	for n := range out {
		out[n] = append(out[n],
			z[n],
			norm.InverseLevel(matrix.ValueAt(res.L, n)),
			norm.InverseOffset(matrix.ValueAt(res.S, n)),
			norm.InverseOffset(matrix.ValueAt(res.E, n)),
		)
	}
	report.Outcome = Decomposed
	report.Iterations = res.Iterations

	return out, nil
}

// transform applies the differencing policy to the raw series.
func (d *Detector) transform(log zerolog.Logger, series []float64) ([]float64, bool, error) {
	switch d.cfg.diff {
	case DiffAlways:
		return adf.ZeroPaddedDiff(series), true, nil
	case DiffNever:
		return series, false, nil
	}

	test, err := adf.New(series, adf.WithSignificance(d.cfg.significance))
	if err != nil {
		return nil, false, radErrorf("Process: stationarity", err)
	}
	log.Debug().
		Float64("statistic", test.Statistic()).
		Float64("critical", test.CriticalValue()).
		Int("lag", test.Lag()).
		Bool("needs_diff", test.NeedsDiff()).
		Msg("stationarity test")
	if test.NeedsDiff() {
		return test.ZeroPaddedDiff(), true, nil
	}

	return series, false, nil
}

// columnIndex locates the configured column and checks its kind.
func (d *Detector) columnIndex(schema Schema) (int, error) {
	idx := schema.Index(d.cfg.column)
	if idx < 0 {
		return -1, schemaErrorf("column", "%q not in schema", d.cfg.column)
	}
	if k := schema[idx].Kind; !k.Numeric() {
		return -1, schemaErrorf("column", "%q has unsupported kind %s", d.cfg.column, k)
	}

	return idx, nil
}

// extract validates the window and returns the column as float64.
func (d *Detector) extract(schema Schema, records []Record) ([]float64, error) {
	if len(records) != d.cfg.WindowSize() {
		return nil, radErrorf("Process: record count", ErrConfiguration)
	}
	idx, err := d.columnIndex(schema)
	if err != nil {
		return nil, err
	}
	kind := schema[idx].Kind

	series := make([]float64, len(records))
	for n, rec := range records {
		if idx >= len(rec) {
			return nil, schemaErrorf("record", "record %d has %d fields", n, len(rec))
		}
		v, ok := numericValue(kind, rec[idx])
		if !ok {
			return nil, schemaErrorf("record", "record %d: %T is not %s", n, rec[idx], kind)
		}
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, schemaErrorf("record", "record %d: non-finite value %v", n, v)
		}
		series[n] = v
	}

	return series, nil
}

// numericValue converts v according to the declared kind.
func numericValue(kind Kind, v any) (float64, bool) {
	switch kind {
	case Int:
		switch x := v.(type) {
		case int32:
			return float64(x), true
		case int:
			return float64(x), true
		}
	case Long:
		if x, ok := v.(int64); ok {
			return float64(x), true
		}
	case Float:
		if x, ok := v.(float32); ok {
			return float64(x), true
		}
	case Double:
		if x, ok := v.(float64); ok {
			return x, true
		}
	}

	return 0, false
}

func countNonNegligible(x []float64) int {
	n := 0
	for _, v := range x {
		if math.Abs(v) > eps {
			n++
		}
	}

	return n
}

// copyRecords clones every record with spare capacity for extra fields.
func copyRecords(records []Record, extra int) []Record {
	out := make([]Record, len(records))
	for n, rec := range records {
		cp := make(Record, len(rec), len(rec)+extra)
		copy(cp, rec)
		out[n] = cp
	}

	return out
}
