// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package bench times insert, search and delete phases against a splay map.
//
// Each dataset runs against a fresh map: every insert key is Set,
// every search key is tested with Contains, and every delete key is
// Deleted, in file order. Search and delete keys need not have been
// inserted; misses are part of the workload.
package bench

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"rsc.io/splay"
	"rsc.io/splay/internal/dataset"
)

// Phase names.
const (
	PhaseInsert = "insert"
	PhaseSearch = "search"
	PhaseDelete = "delete"
)

// A Mapper is the part of the map API the runner exercises.
type Mapper interface {
	Set(key int64, val int)
	Contains(key int64) bool
	Delete(key int64)
	Len() int
	Height() int
}

// PhaseResult describes one timed phase.
type PhaseResult struct {
	Phase   string
	Ops     int
	Hits    int // keys that were present when the operation ran
	Elapsed time.Duration
	Size    int // map size after the phase
	Height  int // tree height after the phase
}

// Result holds the three phases of one dataset.
type Result struct {
	Name   string
	Insert PhaseResult
	Search PhaseResult
	Delete PhaseResult
}

// Phases returns the phase results in run order.
func (r *Result) Phases() []PhaseResult {
	return []PhaseResult{r.Insert, r.Search, r.Delete}
}

type Runner struct {
	// NewMap returns the map to run a dataset against.
	NewMap func() Mapper

	log     *slog.Logger
	metrics *metrics
}

// NewRunner returns a Runner using splay.Map.
// Metrics are registered with reg, which may be nil.
func NewRunner(log *slog.Logger, reg prometheus.Registerer) *Runner {
	if log == nil {
		log = slog.Default()
	}
	return &Runner{
		NewMap:  func() Mapper { return new(splay.Map[int64, int]) },
		log:     log.With("system", "bench"),
		metrics: newMetrics(reg),
	}
}

// Run runs d against a fresh map.
// The context is checked between phases.
func (r *Runner) Run(ctx context.Context, d *dataset.Data) (*Result, error) {
	m := r.NewMap()
	res := &Result{Name: d.Name}
	log := r.log.With("dataset", d.Name)

	phases := []struct {
		out  *PhaseResult
		name string
		keys []int64
		op   func(Mapper, int64) bool
	}{
		// Insert and delete hits come from the change in size.
		{&res.Insert, PhaseInsert, d.Insert, func(m Mapper, k int64) bool {
			m.Set(k, 1)
			return false
		}},
		{&res.Search, PhaseSearch, d.Search, Mapper.Contains},
		{&res.Delete, PhaseDelete, d.Delete, func(m Mapper, k int64) bool {
			m.Delete(k)
			return false
		}},
	}

	for _, p := range phases {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		before := m.Len()

		hits := 0
		start := time.Now()
		for _, k := range p.keys {
			if p.op(m, k) {
				hits++
			}
		}
		elapsed := time.Since(start)

		size := m.Len()
		switch p.name {
		case PhaseInsert:
			hits = len(p.keys) - (size - before)
		case PhaseDelete:
			hits = before - size
		}
		*p.out = PhaseResult{
			Phase:   p.name,
			Ops:     len(p.keys),
			Hits:    hits,
			Elapsed: elapsed,
			Size:    size,
			Height:  m.Height(),
		}
		r.record(d.Name, *p.out)
		log.Debug("phase done", "phase", p.name, "ops", p.out.Ops, "hits", hits, "elapsed", elapsed, "size", size, "height", p.out.Height)
	}

	log.Info("dataset done",
		"insert_us", res.Insert.Elapsed.Microseconds(),
		"search_us", res.Search.Elapsed.Microseconds(),
		"delete_us", res.Delete.Elapsed.Microseconds(),
		"size", res.Delete.Size)
	return res, nil
}

func (r *Runner) record(name string, p PhaseResult) {
	r.metrics.phaseDuration.WithLabelValues(name, p.Phase).Observe(p.Elapsed.Seconds())
	r.metrics.ops.WithLabelValues(p.Phase, "hit").Add(float64(p.Hits))
	r.metrics.ops.WithLabelValues(p.Phase, "miss").Add(float64(p.Ops - p.Hits))
	r.metrics.size.WithLabelValues(name, p.Phase).Set(float64(p.Size))
	r.metrics.height.WithLabelValues(name, p.Phase).Set(float64(p.Height))
}

// RunAll loads and runs each triple in order, writing a report for each to w.
// It stops at the first error.
func (r *Runner) RunAll(ctx context.Context, triples []dataset.Triple, w io.Writer) ([]*Result, error) {
	var results []*Result
	for _, t := range triples {
		d, err := dataset.Load(ctx, t)
		if err != nil {
			return results, err
		}
		res, err := r.Run(ctx, d)
		if err != nil {
			return results, fmt.Errorf("running %s: %w", t.Name, err)
		}
		if err := Report(w, res); err != nil {
			return results, err
		}
		results = append(results, res)
	}
	return results, nil
}

// Report writes res to w in microseconds.
func Report(w io.Writer, res *Result) error {
	_, err := fmt.Fprintf(w, "%s\n-------------\n", res.Name)
	if err != nil {
		return err
	}
	for _, p := range res.Phases() {
		_, err := fmt.Fprintf(w, "%s time in microseconds: %d (%d ops, %d hits, size %d, height %d)\n",
			p.Phase, p.Elapsed.Microseconds(), p.Ops, p.Hits, p.Size, p.Height)
		if err != nil {
			return err
		}
	}
	_, err = fmt.Fprintln(w)
	return err
}
