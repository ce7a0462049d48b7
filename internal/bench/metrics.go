// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bench

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type metrics struct {
	phaseDuration *prometheus.HistogramVec
	ops           *prometheus.CounterVec
	size          *prometheus.GaugeVec
	height        *prometheus.GaugeVec
}

func newMetrics(reg prometheus.Registerer) *metrics {
	f := promauto.With(reg)
	return &metrics{
		phaseDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "splaybench_phase_duration_seconds",
			Help:    "Time to run one phase of a dataset against the map",
			Buckets: prometheus.ExponentialBucketsRange(0.00001, 60, 20),
		}, []string{"dataset", "phase"}),
		ops: f.NewCounterVec(prometheus.CounterOpts{
			Name: "splaybench_ops_total",
			Help: "Map operations by phase and whether the key was present",
		}, []string{"phase", "result"}),
		size: f.NewGaugeVec(prometheus.GaugeOpts{
			Name: "splaybench_map_size",
			Help: "Number of keys in the map after each phase",
		}, []string{"dataset", "phase"}),
		height: f.NewGaugeVec(prometheus.GaugeOpts{
			Name: "splaybench_map_height",
			Help: "Height of the splay tree after each phase",
		}, []string{"dataset", "phase"}),
	}
}
