// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config_test

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rsc.io/splay/internal/config"
)

func TestConfig_FillDefaults(t *testing.T) {
	c := &config.Config{DataDir: "data"}
	c.FillDefaults()
	assert.Equal(t, "info", c.LogLevel)
	require.NoError(t, c.Validate())

	lvl, err := c.Level()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelInfo, lvl)
}

func TestConfig_Validate(t *testing.T) {
	c := config.DefaultConfig()
	assert.ErrorIs(t, c.Validate(), config.ErrNoDataset)

	c.InsertPath = "i.txt"
	c.SearchPath = "s.txt"
	assert.ErrorIs(t, c.Validate(), config.ErrPartialDataset)
	c.DataDir = "data"
	assert.ErrorIs(t, c.Validate(), config.ErrPartialDataset, "data dir does not excuse a partial triple")
	c.DataDir = ""

	c.DeletePath = "d.txt"
	assert.True(t, c.Explicit())
	assert.NoError(t, c.Validate())

	c.LogLevel = "loud"
	assert.Error(t, c.Validate())

	c.LogLevel = "DEBUG"
	lvl, err := c.Level()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, lvl)
}

func TestGenConfig_FillDefaults(t *testing.T) {
	c := &config.GenConfig{OutDir: "out", Count: 5}
	c.FillDefaults()
	def := config.DefaultGenConfig()

	assert.Equal(t, 5, c.Count, "set fields are kept")
	assert.Equal(t, def.Sets, c.Sets)
	assert.Equal(t, def.Files, c.Files)
	assert.Equal(t, def.Max, c.Max)
	assert.Equal(t, def.PerLine, c.PerLine)
	require.NoError(t, c.Validate())

	c.OutDir = ""
	assert.Error(t, c.Validate())
	c.OutDir = "out"
	c.Max = -1
	assert.Error(t, c.Validate())
}
