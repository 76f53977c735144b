// SPDX-License-Identifier: MIT

package cliconfig

import "os"

// ApplyEnvConfig applies configuration from environment variables (SURUS_*),
// skipping flags that were set explicitly. It fails on malformed numbers.
func ApplyEnvConfig(cfg *Config, changed map[string]bool) error {
	s := newConfigSetter(changed)

	s.setString("column", os.Getenv("SURUS_COLUMN"), &cfg.Column)
	s.setString("force-diff", os.Getenv("SURUS_FORCE_DIFF"), &cfg.ForceDiff)
	s.setString("method", os.Getenv("SURUS_METHOD"), &cfg.Method)
	s.setString("significance", os.Getenv("SURUS_SIGNIFICANCE"), &cfg.Significance)
	s.setString("group-by", os.Getenv("SURUS_GROUP_BY"), &cfg.GroupBy)
	s.setString("input", os.Getenv("SURUS_INPUT"), &cfg.Input)
	s.setString("output", os.Getenv("SURUS_OUTPUT"), &cfg.Output)
	s.setString("log-level", os.Getenv("SURUS_LOG_LEVEL"), &cfg.LogLevel)
	s.setString("metrics-addr", os.Getenv("SURUS_METRICS_ADDR"), &cfg.MetricsAddr)

	if err := s.setIntFromString("rows", os.Getenv("SURUS_ROWS"), &cfg.Rows); err != nil {
		return err
	}
	if err := s.setIntFromString("cols", os.Getenv("SURUS_COLS"), &cfg.Cols); err != nil {
		return err
	}
	if err := s.setIntFromString("workers", os.Getenv("SURUS_WORKERS"), &cfg.Workers); err != nil {
		return err
	}
	if err := s.setFloatFromString("lpenalty", os.Getenv("SURUS_LPENALTY"), &cfg.LPenalty); err != nil {
		return err
	}
	if err := s.setFloatFromString("spenalty", os.Getenv("SURUS_SPENALTY"), &cfg.SPenalty); err != nil {
		return err
	}

	return nil
}
