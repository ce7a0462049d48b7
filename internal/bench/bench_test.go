// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bench

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rsc.io/splay/internal/dataset"
)

func newTestRunner(t *testing.T) *Runner {
	t.Helper()
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewRunner(log, prometheus.NewRegistry())
}

func testData() *dataset.Data {
	return &dataset.Data{
		Triple: dataset.Triple{Name: "set1/data_1"},
		Insert: []int64{5, 3, 8, 1, 3},
		Search: []int64{3, 42, 8},
		Delete: []int64{5, 5, 99},
	}
}

func TestRunner_Run(t *testing.T) {
	r := newTestRunner(t)

	res, err := r.Run(context.Background(), testData())
	require.NoError(t, err)
	assert.Equal(t, "set1/data_1", res.Name)

	assert.Equal(t, PhaseResult{Phase: PhaseInsert, Ops: 5, Hits: 1, Elapsed: res.Insert.Elapsed, Size: 4, Height: res.Insert.Height}, res.Insert)
	assert.Equal(t, 2, res.Search.Hits)
	assert.Equal(t, 3, res.Search.Ops)
	assert.Equal(t, 4, res.Search.Size)
	assert.Equal(t, 1, res.Delete.Hits)
	assert.Equal(t, 3, res.Delete.Size)
	assert.GreaterOrEqual(t, res.Delete.Height, 1)

	assert.Equal(t, float64(2), testutil.ToFloat64(r.metrics.ops.WithLabelValues(PhaseSearch, "hit")))
	assert.Equal(t, float64(1), testutil.ToFloat64(r.metrics.ops.WithLabelValues(PhaseSearch, "miss")))
	assert.Equal(t, float64(2), testutil.ToFloat64(r.metrics.ops.WithLabelValues(PhaseDelete, "miss")))
	assert.Equal(t, float64(3), testutil.ToFloat64(r.metrics.size.WithLabelValues("set1/data_1", PhaseDelete)))
	assert.Equal(t, 3, testutil.CollectAndCount(r.metrics.phaseDuration))
}

func TestRunner_FreshMapPerDataset(t *testing.T) {
	r := newTestRunner(t)
	for range 2 {
		res, err := r.Run(context.Background(), testData())
		require.NoError(t, err)
		assert.Equal(t, 4, res.Insert.Size)
	}
}

func TestRunner_Canceled(t *testing.T) {
	r := newTestRunner(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := r.Run(ctx, testData())
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRunner_RunAll(t *testing.T) {
	dir := t.TempDir()
	write := func(name, body string) string {
		p := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(p, []byte(body), 0o644))
		return p
	}
	tr := dataset.Triple{
		Name:   "set1/data_1",
		Insert: write("i.txt", "5,3\n8,1\n"),
		Search: write("s.txt", "3,42\n"),
		Delete: write("d.txt", "5\n"),
	}

	var buf bytes.Buffer
	results, err := newTestRunner(t).RunAll(context.Background(), []dataset.Triple{tr}, &buf)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, 3, results[0].Delete.Size)

	out := buf.String()
	assert.Contains(t, out, "set1/data_1\n-------------\n")
	assert.Contains(t, out, "insert time in microseconds: ")
	assert.Contains(t, out, "search time in microseconds: ")
	assert.Contains(t, out, "delete time in microseconds: ")

	tr.Search = filepath.Join(dir, "missing.txt")
	_, err = newTestRunner(t).RunAll(context.Background(), []dataset.Triple{tr}, io.Discard)
	assert.ErrorIs(t, err, os.ErrNotExist)
}
