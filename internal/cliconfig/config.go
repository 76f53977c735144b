// SPDX-License-Identifier: MIT

// Package cliconfig holds the layered configuration of the surus command:
// defaults, then the TOML file, then SURUS_* environment variables, then
// flags that were set explicitly.
package cliconfig

import (
	"fmt"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/surus/adf"
	"github.com/katalvlaran/surus/rad"
	"github.com/katalvlaran/surus/rpca"
)

// Config holds CLI configuration for surus.
type Config struct {
	Column string
	Rows   int
	Cols   int

	ForceDiff    string // auto, true or false
	LPenalty     float64
	SPenalty     float64 // 0 derives 1.4/sqrt(max(rows, cols))
	Method       string
	Significance string

	GroupBy string
	Workers int

	Input  string
	Output string

	LogLevel    string
	MetricsAddr string
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() Config {
	return Config{
		ForceDiff:    rad.DiffAuto.String(),
		LPenalty:     rpca.DefaultLPenalty,
		Method:       rpca.DynamicMu.String(),
		Significance: adf.DefaultLevel.String(),
		Input:        "-",
		Output:       "-",
		LogLevel:     zerolog.InfoLevel.String(),
	}
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	if c.Column == "" {
		return fmt.Errorf("column is required")
	}
	if c.Rows <= 0 || c.Cols <= 0 {
		return fmt.Errorf("rows and cols must be positive")
	}
	if _, err := rad.ParseDiffMode(c.ForceDiff); err != nil {
		return err
	}
	if _, err := rpca.ParseMethod(c.Method); err != nil {
		return fmt.Errorf("method %q: %w", c.Method, err)
	}
	if _, err := parseLevel(c.Significance); err != nil {
		return err
	}
	if c.LPenalty < 0 || c.SPenalty < 0 {
		return fmt.Errorf("penalties must not be negative")
	}
	if c.Workers < 0 {
		return fmt.Errorf("workers must not be negative")
	}
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("log-level: %w", err)
	}
	if c.Input == "" {
		c.Input = "-"
	}
	if c.Output == "" {
		c.Output = "-"
	}

	return nil
}

// DetectorConfig converts a validated Config into a rad.Config.
func (c *Config) DetectorConfig() (rad.Config, error) {
	mode, err := rad.ParseDiffMode(c.ForceDiff)
	if err != nil {
		return rad.Config{}, err
	}
	method, err := rpca.ParseMethod(c.Method)
	if err != nil {
		return rad.Config{}, err
	}
	level, err := parseLevel(c.Significance)
	if err != nil {
		return rad.Config{}, err
	}

	opts := []rad.ConfigOption{
		rad.WithDiffMode(mode),
		rad.WithMethod(method),
		rad.WithSignificance(level),
	}
	if c.LPenalty > 0 {
		opts = append(opts, rad.WithLPenalty(c.LPenalty))
	}
	if c.SPenalty > 0 {
		opts = append(opts, rad.WithSPenalty(c.SPenalty))
	}

	return rad.NewConfig(c.Column, c.Rows, c.Cols, opts...)
}

// parseLevel maps "1%", "2.5%", "5%" and "10%" to an adf.Level.
func parseLevel(s string) (adf.Level, error) {
	if s == "" {
		return adf.DefaultLevel, nil
	}
	for _, l := range []adf.Level{adf.Level1, adf.Level2_5, adf.Level5, adf.Level10} {
		if l.String() == s {
			return l, nil
		}
	}

	return 0, fmt.Errorf("significance %q: want 1%%, 2.5%%, 5%% or 10%%", s)
}

// configSetter applies configuration values while respecting flag precedence.
// It only applies values if the corresponding flag hasn't been explicitly set.
type configSetter struct {
	changed map[string]bool
}

func newConfigSetter(changed map[string]bool) *configSetter {
	return &configSetter{changed: changed}
}

// setString sets a string value if not empty and flag not changed.
func (s *configSetter) setString(flag, value string, dst *string) {
	if value == "" || s.changed[flag] {
		return
	}
	*dst = value
}

// setInt sets an int value if positive and flag not changed.
func (s *configSetter) setInt(flag string, value int, dst *int) {
	if value <= 0 || s.changed[flag] {
		return
	}
	*dst = value
}

// setFloat sets a float64 value if positive and flag not changed.
func (s *configSetter) setFloat(flag string, value float64, dst *float64) {
	if value <= 0 || s.changed[flag] {
		return
	}
	*dst = value
}

// setIntFromString parses an environment string as a positive int.
func (s *configSetter) setIntFromString(flag, value string, dst *int) error {
	if value == "" || s.changed[flag] {
		return nil
	}
	i, err := strconv.Atoi(value)
	if err != nil {
		return fmt.Errorf("parse %s: %w", flag, err)
	}
	if i <= 0 {
		return nil
	}
	*dst = i

	return nil
}

// setFloatFromString parses an environment string as a positive float64.
func (s *configSetter) setFloatFromString(flag, value string, dst *float64) error {
	if value == "" || s.changed[flag] {
		return nil
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return fmt.Errorf("parse %s: %w", flag, err)
	}
	if f <= 0 {
		return nil
	}
	*dst = f

	return nil
}
