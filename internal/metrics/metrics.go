// SPDX-License-Identifier: MIT

// Package metrics exports per-window detector statistics to Prometheus.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/katalvlaran/surus/rad"
)

const namespace = "surus"

// Recorder is a rad.Observer backed by Prometheus collectors.
type Recorder struct {
	windows     *prometheus.CounterVec
	differenced prometheus.Counter
	iterations  prometheus.Histogram
	duration    *prometheus.HistogramVec
}

// NewRecorder creates the collectors and registers them with reg.
func NewRecorder(reg prometheus.Registerer) (*Recorder, error) {
	r := &Recorder{
		windows: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "windows_total",
			Help:      "Windows processed, by outcome.",
		}, []string{"outcome"}),
		differenced: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "windows_differenced_total",
			Help:      "Windows whose series was differenced before decomposition.",
		}),
		iterations: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "solver_iterations",
			Help:      "Solver iterations per decomposed window.",
			Buckets:   prometheus.ExponentialBuckets(1, 2, 11),
		}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "window_duration_seconds",
			Help:      "Wall time spent processing one window.",
			Buckets:   prometheus.ExponentialBuckets(0.0005, 2, 14),
		}, []string{"outcome"}),
	}
	for _, c := range []prometheus.Collector{r.windows, r.differenced, r.iterations, r.duration} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}

	return r, nil
}

// ObserveWindow implements rad.Observer.
func (r *Recorder) ObserveWindow(rep rad.Report) {
	outcome := rep.Outcome.String()
	r.windows.WithLabelValues(outcome).Inc()
	r.duration.WithLabelValues(outcome).Observe(rep.Elapsed.Seconds())
	if rep.Differenced {
		r.differenced.Inc()
	}
	if rep.Outcome == rad.Decomposed {
		r.iterations.Observe(float64(rep.Iterations))
	}
}

var _ rad.Observer = (*Recorder)(nil)
