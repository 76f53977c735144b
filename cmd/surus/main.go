// SPDX-License-Identifier: MIT

// Command surus runs robust anomaly detection over JSON-lines records.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"runtime"
	"runtime/debug"
	"strings"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	pflag "github.com/spf13/pflag"

	"github.com/katalvlaran/surus/internal/cliconfig"
	"github.com/katalvlaran/surus/internal/jsonl"
	"github.com/katalvlaran/surus/internal/metrics"
	"github.com/katalvlaran/surus/rad"
)

const longHelp = `Decompose fixed windows of a metric into a low-rank baseline, sparse
anomalies and residual noise.

Records are read as JSON lines, cut into windows of rows*cols records (or
grouped by --group-by), and written back with x_transform, rsvd_l, rsvd_s
and rsvd_e appended. Windows with too few non-zero values pass through
unchanged.

Configuration is layered: $HOME/.surus/config.toml, then SURUS_* variables,
then flags.`

var exampleUsage = strings.TrimSpace(`
  surus --column metric --rows 7 --cols 9 --force-diff false < daily.jsonl
  surus --column latency --rows 24 --cols 7 --group-by host --metrics-addr :9090 --input hourly.jsonl
`)

func getVersion() string {
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		return info.Main.Version
	}

	return "dev"
}

func main() {
	cfg := cliconfig.DefaultConfig()
	var cfgPath string

	root := &cobra.Command{
		Use:           "surus",
		Short:         "Robust anomaly detection over fixed windows of JSON-lines records",
		Long:          longHelp,
		Example:       exampleUsage,
		Version:       fmt.Sprintf("%s %s/%s", getVersion(), runtime.GOOS, runtime.GOARCH),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfgFile := cfgPath
			if cfgFile == "" {
				cfgFile = cliconfig.DefaultConfigPath()
			}

			changed := map[string]bool{}
			cmd.Flags().Visit(func(f *pflag.Flag) { changed[f.Name] = true })

			if cfgFile != "" && cliconfig.FileExists(cfgFile) {
				fc, err := cliconfig.LoadFileConfig(cfgFile)
				if err != nil {
					return fmt.Errorf("load config: %w", err)
				}
				cliconfig.ApplyFileConfig(&cfg, fc, changed)
			}
			if err := cliconfig.ApplyEnvConfig(&cfg, changed); err != nil {
				return err
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			log := cliconfig.Logger(cfg.LogLevel)
			log.Debug().Interface("config", cfg).Msg("configuration")

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			return run(ctx, cfg, log)
		},
	}

	root.Flags().StringVar(&cfgPath, "config", "", "path to config file (default: $HOME/.surus/config.toml)")
	root.Flags().StringVar(&cfg.Column, "column", cfg.Column, "name of the numeric field to decompose")
	root.Flags().IntVar(&cfg.Rows, "rows", cfg.Rows, "matrix rows: samples per period")
	root.Flags().IntVar(&cfg.Cols, "cols", cfg.Cols, "matrix columns: periods per window")
	root.Flags().StringVar(&cfg.ForceDiff, "force-diff", cfg.ForceDiff, "difference the series: auto, true or false")
	root.Flags().Float64Var(&cfg.LPenalty, "lpenalty", cfg.LPenalty, "nuclear-norm weight")
	root.Flags().Float64Var(&cfg.SPenalty, "spenalty", cfg.SPenalty, "sparsity weight (0: 1.4/sqrt(max(rows, cols)))")
	root.Flags().StringVar(&cfg.Method, "method", cfg.Method, "solver: dynamic-mu or ialm")
	root.Flags().StringVar(&cfg.Significance, "significance", cfg.Significance, "ADF significance level: 1%, 2.5%, 5% or 10%")
	root.Flags().StringVar(&cfg.GroupBy, "group-by", cfg.GroupBy, "field whose value selects the window of each record")
	root.Flags().IntVar(&cfg.Workers, "workers", cfg.Workers, "windows processed in parallel (0: GOMAXPROCS)")
	root.Flags().StringVar(&cfg.Input, "input", cfg.Input, "input file, - for stdin")
	root.Flags().StringVar(&cfg.Output, "output", cfg.Output, "output file, - for stdout")
	root.Flags().StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level: debug, info, warn, error")
	root.Flags().StringVar(&cfg.MetricsAddr, "metrics-addr", cfg.MetricsAddr, "serve Prometheus metrics on this address while running")

	if err := root.Execute(); err != nil {
		log := cliconfig.Logger(zerolog.ErrorLevel.String())
		log.Error().Err(err).Msg("surus")
		os.Exit(1)
	}
}

// run reads the input, processes every window and writes the result.
func run(ctx context.Context, cfg cliconfig.Config, log zerolog.Logger) error {
	detCfg, err := cfg.DetectorConfig()
	if err != nil {
		return err
	}

	opts := []rad.Option{
		rad.WithLogger(log),
		rad.WithConcurrency(cfg.Workers),
	}
	if cfg.MetricsAddr != "" {
		reg := prometheus.NewRegistry()
		rec, err := metrics.NewRecorder(reg)
		if err != nil {
			return fmt.Errorf("metrics: %w", err)
		}
		opts = append(opts, rad.WithObserver(rec))
		shutdown := serveMetrics(cfg.MetricsAddr, reg, log)
		defer shutdown()
	}
	det := rad.New(detCfg, opts...)

	in, closeIn, err := openInput(cfg.Input)
	if err != nil {
		return err
	}
	defer closeIn()

	objs, err := jsonl.ReadAll(in)
	if err != nil {
		return err
	}
	schema, records := jsonl.Records(objs)

	var windows [][]rad.Record
	if cfg.GroupBy != "" {
		windows, err = jsonl.GroupBy(schema, records, cfg.GroupBy)
	} else {
		windows, err = jsonl.Chunk(records, detCfg.WindowSize())
	}
	if err != nil {
		return err
	}
	outSchema, err := det.OutputSchema(schema)
	if err != nil {
		return err
	}
	log.Info().
		Int("records", len(records)).
		Int("windows", len(windows)).
		Str("column", detCfg.Column()).
		Msg("processing")

	start := time.Now()
	results, err := det.ProcessAll(ctx, schema, windows)
	if err != nil {
		return err
	}
	log.Info().Dur("elapsed", time.Since(start)).Msg("done")

	out, closeOut, err := openOutput(cfg.Output)
	if err != nil {
		return err
	}
	w := jsonl.NewWriter(out)
	for _, recs := range results {
		if err := w.Write(outSchema, recs); err != nil {
			closeOut()
			return err
		}
	}
	if err := w.Flush(); err != nil {
		closeOut()
		return err
	}

	return closeOut()
}

// serveMetrics exposes reg on addr until the returned function is called.
func serveMetrics(addr string, reg *prometheus.Registry, log zerolog.Logger) func() {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	srv := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error().Err(err).Str("addr", addr).Msg("metrics server")
		}
	}()
	log.Info().Str("addr", addr).Msg("serving metrics")

	return func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(ctx)
	}
}

func openInput(path string) (io.Reader, func(), error) {
	if path == "-" {
		return os.Stdin, func() {}, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}

	return f, func() { _ = f.Close() }, nil
}

func openOutput(path string) (io.Writer, func() error, error) {
	if path == "-" {
		return os.Stdout, func() error { return nil }, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, err
	}

	return f, f.Close, nil
}
