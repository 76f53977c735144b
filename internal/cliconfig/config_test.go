// SPDX-License-Identifier: MIT
package cliconfig

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/surus/adf"
	"github.com/katalvlaran/surus/rad"
	"github.com/katalvlaran/surus/rpca"
)

func validConfig() Config {
	cfg := DefaultConfig()
	cfg.Column = "metric"
	cfg.Rows = 7
	cfg.Cols = 9

	return cfg
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, "auto", cfg.ForceDiff)
	assert.Equal(t, 1.0, cfg.LPenalty)
	assert.Zero(t, cfg.SPenalty)
	assert.Equal(t, "dynamic-mu", cfg.Method)
	assert.Equal(t, "5%", cfg.Significance)
	assert.Equal(t, "-", cfg.Input)
	assert.Equal(t, "-", cfg.Output)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"valid", func(*Config) {}, false},
		{"missing column", func(c *Config) { c.Column = "" }, true},
		{"zero rows", func(c *Config) { c.Rows = 0 }, true},
		{"bad force-diff", func(c *Config) { c.ForceDiff = "maybe" }, true},
		{"bad method", func(c *Config) { c.Method = "svd" }, true},
		{"bad significance", func(c *Config) { c.Significance = "3%" }, true},
		{"negative spenalty", func(c *Config) { c.SPenalty = -1 }, true},
		{"negative workers", func(c *Config) { c.Workers = -2 }, true},
		{"bad log level", func(c *Config) { c.LogLevel = "loud" }, true},
		{"empty io defaults to stdio", func(c *Config) { c.Input, c.Output = "", "" }, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "-", cfg.Input)
			assert.Equal(t, "-", cfg.Output)
		})
	}
}

func TestDetectorConfig(t *testing.T) {
	cfg := validConfig()
	dc, err := cfg.DetectorConfig()
	require.NoError(t, err)
	assert.Equal(t, "metric", dc.Column())
	assert.Equal(t, rad.DiffAuto, dc.DiffMode())
	assert.InDelta(t, 1.4/3, dc.SPenalty(), 1e-15)
	assert.Equal(t, rpca.DynamicMu, dc.Method())

	cfg.ForceDiff = "false"
	cfg.Method = "ialm"
	cfg.Significance = "1%"
	cfg.LPenalty = 2
	cfg.SPenalty = 0.25
	dc, err = cfg.DetectorConfig()
	require.NoError(t, err)
	assert.Equal(t, rad.DiffNever, dc.DiffMode())
	assert.Equal(t, rpca.InexactALM, dc.Method())
	assert.Equal(t, adf.Level1, dc.Significance())
	assert.Equal(t, 2.0, dc.LPenalty())
	assert.Equal(t, 0.25, dc.SPenalty())
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	log := newLogger(&buf, "warn")
	log.Info().Msg("hidden")
	log.Warn().Msg("shown")
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")

	buf.Reset()
	log = newLogger(&buf, "nonsense")
	log.Debug().Msg("hidden")
	log.Info().Msg("fallback")
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "fallback")
}
