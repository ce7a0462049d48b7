// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config provides configuration structures and defaults for splaybench.
package config

import (
	"errors"
	"log/slog"
	"strings"
)

const (
	defaultLogLevel = "info"

	defaultGenSets    = 2
	defaultGenFiles   = 3
	defaultGenCount   = 10000
	defaultGenMax     = 1_000_000
	defaultGenPerLine = 20
)

// ErrNoDataset is returned by Validate when neither a data directory
// nor an explicit insert/search/delete triple was given.
var ErrNoDataset = errors.New("either a data directory or insert, search and delete files must be set")

// ErrPartialDataset is returned by Validate when some but not all
// of the insert, search and delete files were given.
var ErrPartialDataset = errors.New("insert, search and delete files must be set together")

// Config holds the parameters of a benchmark run.
type Config struct {
	// DataDir holds insert/, search/ and delete/ trees of dataset files.
	DataDir string

	// InsertPath, SearchPath and DeletePath select a single dataset
	// and take precedence over DataDir when all three are set.
	InsertPath string
	SearchPath string
	DeletePath string

	// MetricsAddr is the listen address for the Prometheus endpoint.
	// Empty disables it.
	MetricsAddr string

	LogLevel string
	LogJSON  bool
}

// DefaultConfig returns a Config struct populated with default values.
func DefaultConfig() *Config {
	return &Config{
		LogLevel: defaultLogLevel,
	}
}

// FillDefaults sets any zero-value fields in the Config to their default values.
func (c *Config) FillDefaults() {
	def := DefaultConfig()
	if c.LogLevel == "" {
		c.LogLevel = def.LogLevel
	}
}

// Explicit reports whether a single insert/search/delete triple was given.
func (c *Config) Explicit() bool {
	return c.InsertPath != "" && c.SearchPath != "" && c.DeletePath != ""
}

// Validate checks that the Config names a dataset and a known log level.
// An explicit triple must be complete even when DataDir is set.
func (c *Config) Validate() error {
	set := 0
	for _, p := range []string{c.InsertPath, c.SearchPath, c.DeletePath} {
		if p != "" {
			set++
		}
	}
	if set > 0 && set < 3 {
		return ErrPartialDataset
	}
	if !c.Explicit() && c.DataDir == "" {
		return ErrNoDataset
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

// Level parses LogLevel.
func (c *Config) Level() (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.TrimSpace(c.LogLevel))); err != nil {
		return 0, err
	}
	return lvl, nil
}

// GenConfig holds the parameters for generating random datasets.
type GenConfig struct {
	OutDir string
	// Sets and Files give the number of set directories
	// and the number of dataset files in each.
	Sets  int
	Files int
	// Count is the number of integers per file, drawn from [0, Max).
	Count int
	Max   int64
	// PerLine is the number of comma-separated values per line.
	PerLine int
	Seed    uint64
}

// DefaultGenConfig returns a GenConfig struct populated with default values.
func DefaultGenConfig() *GenConfig {
	return &GenConfig{
		Sets:    defaultGenSets,
		Files:   defaultGenFiles,
		Count:   defaultGenCount,
		Max:     defaultGenMax,
		PerLine: defaultGenPerLine,
	}
}

// FillDefaults sets any zero-value fields in the GenConfig to their default values.
func (c *GenConfig) FillDefaults() {
	def := DefaultGenConfig()
	if c.Sets == 0 {
		c.Sets = def.Sets
	}
	if c.Files == 0 {
		c.Files = def.Files
	}
	if c.Count == 0 {
		c.Count = def.Count
	}
	if c.Max == 0 {
		c.Max = def.Max
	}
	if c.PerLine == 0 {
		c.PerLine = def.PerLine
	}
}

// Validate checks the GenConfig after FillDefaults.
func (c *GenConfig) Validate() error {
	switch {
	case c.OutDir == "":
		return errors.New("output directory must be set")
	case c.Sets < 0 || c.Files < 0 || c.Count < 0 || c.PerLine < 0:
		return errors.New("sets, files, count and per-line must not be negative")
	case c.Max <= 0:
		return errors.New("max must be positive")
	}
	return nil
}
