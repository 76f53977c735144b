// SPDX-License-Identifier: MIT
package metrics_test

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/surus/internal/metrics"
	"github.com/katalvlaran/surus/rad"
)

func TestRecorder_ObserveWindow(t *testing.T) {
	reg := prometheus.NewRegistry()
	rec, err := metrics.NewRecorder(reg)
	require.NoError(t, err)

	rec.ObserveWindow(rad.Report{Outcome: rad.Decomposed, Differenced: true, Iterations: 55, Elapsed: time.Millisecond})
	rec.ObserveWindow(rad.Report{Outcome: rad.Decomposed, Iterations: 40, Elapsed: time.Millisecond})
	rec.ObserveWindow(rad.Report{Outcome: rad.Skipped})
	rec.ObserveWindow(rad.Report{Outcome: rad.Failed})

	families, err := reg.Gather()
	require.NoError(t, err)
	byName := map[string]float64{}
	for _, f := range families {
		switch f.GetName() {
		case "surus_windows_total":
			for _, m := range f.GetMetric() {
				byName["windows_"+m.GetLabel()[0].GetValue()] = m.GetCounter().GetValue()
			}
		case "surus_windows_differenced_total":
			byName["differenced"] = f.GetMetric()[0].GetCounter().GetValue()
		case "surus_solver_iterations":
			h := f.GetMetric()[0].GetHistogram()
			byName["iterations_count"] = float64(h.GetSampleCount())
			byName["iterations_sum"] = h.GetSampleSum()
		}
	}

	assert.Equal(t, 2.0, byName["windows_decomposed"])
	assert.Equal(t, 1.0, byName["windows_skipped"])
	assert.Equal(t, 1.0, byName["windows_failed"])
	assert.Equal(t, 1.0, byName["differenced"])
	assert.Equal(t, 2.0, byName["iterations_count"])
	assert.Equal(t, 95.0, byName["iterations_sum"])

	// One duration series per outcome seen.
	n, err := testutil.GatherAndCount(reg, "surus_window_duration_seconds")
	require.NoError(t, err)
	assert.Equal(t, 3, n)
}

func TestNewRecorder_DuplicateRegistration(t *testing.T) {
	reg := prometheus.NewRegistry()
	_, err := metrics.NewRecorder(reg)
	require.NoError(t, err)
	_, err = metrics.NewRecorder(reg)
	assert.Error(t, err)
}
