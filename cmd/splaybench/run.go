// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/urfave/cli/v2"

	"rsc.io/splay/internal/bench"
	"rsc.io/splay/internal/config"
	"rsc.io/splay/internal/dataset"
)

var cmdRun = &cli.Command{
	Name:      "run",
	Usage:     "run dataset triples against a fresh map each and print phase timings",
	ArgsUsage: " ",
	Flags: append([]cli.Flag{
		&cli.StringFlag{
			Name:    "data-dir",
			Aliases: []string{"d"},
			Usage:   "directory holding insert/, search/ and delete/ dataset trees",
			EnvVars: []string{"SPLAYBENCH_DATA_DIR"},
		},
		&cli.StringFlag{
			Name:  "insert",
			Usage: "single insert dataset file (requires --search and --delete)",
		},
		&cli.StringFlag{
			Name:  "search",
			Usage: "single search dataset file",
		},
		&cli.StringFlag{
			Name:  "delete",
			Usage: "single delete dataset file",
		},
		&cli.StringFlag{
			Name:    "metrics-addr",
			Usage:   "serve Prometheus metrics on this address until interrupted",
			EnvVars: []string{"SPLAYBENCH_METRICS_ADDR"},
		},
	}, logFlags...),
	Action: runBench,
}

func runBench(cctx *cli.Context) error {
	cfg := &config.Config{
		DataDir:     cctx.String("data-dir"),
		InsertPath:  cctx.String("insert"),
		SearchPath:  cctx.String("search"),
		DeletePath:  cctx.String("delete"),
		MetricsAddr: cctx.String("metrics-addr"),
		LogLevel:    cctx.String("log-level"),
		LogJSON:     cctx.Bool("log-json"),
	}
	cfg.FillDefaults()
	if err := cfg.Validate(); err != nil {
		return err
	}
	level, _ := cfg.Level()
	logger := configLogger(level, cfg.LogJSON)

	ctx, stop := signal.NotifyContext(cctx.Context, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var triples []dataset.Triple
	if cfg.Explicit() {
		triples = []dataset.Triple{{
			Name:   "custom",
			Insert: cfg.InsertPath,
			Search: cfg.SearchPath,
			Delete: cfg.DeletePath,
		}}
	} else {
		var err error
		triples, err = dataset.Discover(cfg.DataDir)
		if err != nil {
			return err
		}
		if len(triples) == 0 {
			return fmt.Errorf("no datasets found under %s", cfg.DataDir)
		}
	}
	logger.Info("starting", "datasets", len(triples))

	reg := prometheus.NewRegistry()
	var srv *http.Server
	srvErr := make(chan error, 1)
	if cfg.MetricsAddr != "" {
		srv = &http.Server{
			Addr:    cfg.MetricsAddr,
			Handler: promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg}),
		}
		go func() {
			logger.Info("serving metrics", "addr", cfg.MetricsAddr)
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				logger.Error("metrics server failed", "err", err)
				srvErr <- fmt.Errorf("metrics server: %w", err)
			}
		}()
	}

	runner := bench.NewRunner(logger, reg)
	if _, err := runner.RunAll(ctx, triples, cctx.App.Writer); err != nil {
		return err
	}

	if srv != nil {
		logger.Info("benchmarks done, serving metrics until interrupted")
		select {
		case err := <-srvErr:
			return err
		case <-ctx.Done():
		}
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
	return nil
}
