// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"net"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rsc.io/splay/internal/config"
)

func TestGenThenRun(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, run([]string{"splaybench", "gen", "--out", dir, "--sets", "1", "--files", "2", "--count", "100", "--seed", "7", "--log-level", "warn"}))

	for _, p := range []string{"insert", "search", "delete"} {
		_, err := os.Stat(filepath.Join(dir, p, "set1", "data_2.txt"))
		require.NoError(t, err)
	}

	require.NoError(t, run([]string{"splaybench", "run", "--data-dir", dir, "--log-level", "warn"}))

	ins := filepath.Join(dir, "insert", "set1", "data_1.txt")
	require.NoError(t, run([]string{"splaybench", "run", "--insert", ins, "--search", ins, "--delete", ins, "--log-level", "warn"}))
}

func TestRunErrors(t *testing.T) {
	assert.Error(t, run([]string{"splaybench", "run", "--log-level", "warn"}), "no dataset given")
	assert.Error(t, run([]string{"splaybench", "run", "--data-dir", t.TempDir(), "--log-level", "warn"}), "empty data dir")
	assert.Error(t, run([]string{"splaybench", "run", "--data-dir", t.TempDir(), "--log-level", "loud"}), "bad log level")
	assert.ErrorIs(t, run([]string{"splaybench", "run", "--data-dir", t.TempDir(), "--insert", "i.txt", "--log-level", "warn"}), config.ErrPartialDataset)
}

func genData(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, run([]string{"splaybench", "gen", "--out", dir, "--sets", "1", "--files", "1", "--count", "50", "--seed", "3"}))
	return dir
}

func TestRunReportWriter(t *testing.T) {
	dir := genData(t)

	var out bytes.Buffer
	app := newApp()
	app.Writer = &out
	require.NoError(t, app.Run([]string{"splaybench", "run", "--data-dir", dir, "--log-level", "warn"}))

	report := out.String()
	assert.Contains(t, report, "set1/data_1\n-------------\n")
	assert.Contains(t, report, "insert time in microseconds: ")
	assert.Contains(t, report, "search time in microseconds: ")
	assert.Contains(t, report, "delete time in microseconds: ")
}

func TestRunMetricsAddrInUse(t *testing.T) {
	dir := genData(t)

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer ln.Close()

	app := newApp()
	app.Writer = &bytes.Buffer{}
	err = app.Run([]string{"splaybench", "run", "--data-dir", dir, "--metrics-addr", ln.Addr().String(), "--log-level", "error"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "metrics server")
}

func TestTree(t *testing.T) {
	require.NoError(t, run([]string{"splaybench", "tree", "--keys", "5,3,8,1", "--get", "3", "--delete", "5"}))
	assert.Error(t, run([]string{"splaybench", "tree", "--keys", "5,x"}))
}
