// SPDX-License-Identifier: MIT

package cliconfig

import (
	"os"
	"path/filepath"

	toml "github.com/pelletier/go-toml/v2"
)

// FileConfig mirrors Config with TOML keys.
type FileConfig struct {
	Column       string  `toml:"column"`
	Rows         int     `toml:"rows"`
	Cols         int     `toml:"cols"`
	ForceDiff    string  `toml:"force_diff"`
	LPenalty     float64 `toml:"lpenalty"`
	SPenalty     float64 `toml:"spenalty"`
	Method       string  `toml:"method"`
	Significance string  `toml:"significance"`
	GroupBy      string  `toml:"group_by"`
	Workers      int     `toml:"workers"`
	Input        string  `toml:"input"`
	Output       string  `toml:"output"`
	LogLevel     string  `toml:"log_level"`
	MetricsAddr  string  `toml:"metrics_addr"`
}

// LoadFileConfig reads and parses a TOML config file from the given path.
func LoadFileConfig(path string) (FileConfig, error) {
	var fc FileConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return fc, err
	}
	if err := toml.Unmarshal(b, &fc); err != nil {
		return fc, err
	}

	return fc, nil
}

// DefaultConfigPath returns ~/.surus/config.toml, or "" without a home
// directory.
func DefaultConfigPath() string {
	if h, err := os.UserHomeDir(); err == nil {
		return filepath.Join(h, ".surus", "config.toml")
	}

	return ""
}

// ApplyFileConfig applies configuration from a file to cfg, skipping
// flags that were set explicitly.
func ApplyFileConfig(cfg *Config, fc FileConfig, changed map[string]bool) {
	s := newConfigSetter(changed)

	s.setString("column", fc.Column, &cfg.Column)
	s.setString("force-diff", fc.ForceDiff, &cfg.ForceDiff)
	s.setString("method", fc.Method, &cfg.Method)
	s.setString("significance", fc.Significance, &cfg.Significance)
	s.setString("group-by", fc.GroupBy, &cfg.GroupBy)
	s.setString("input", fc.Input, &cfg.Input)
	s.setString("output", fc.Output, &cfg.Output)
	s.setString("log-level", fc.LogLevel, &cfg.LogLevel)
	s.setString("metrics-addr", fc.MetricsAddr, &cfg.MetricsAddr)

	s.setInt("rows", fc.Rows, &cfg.Rows)
	s.setInt("cols", fc.Cols, &cfg.Cols)
	s.setInt("workers", fc.Workers, &cfg.Workers)

	s.setFloat("lpenalty", fc.LPenalty, &cfg.LPenalty)
	s.setFloat("spenalty", fc.SPenalty, &cfg.SPenalty)
}

// FileExists checks if a file exists at the given path.
func FileExists(p string) bool {
	_, err := os.Stat(p)

	return err == nil
}
