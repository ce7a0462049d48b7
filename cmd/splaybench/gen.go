// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"rsc.io/splay/internal/config"
	"rsc.io/splay/internal/dataset"
)

var cmdGen = &cli.Command{
	Name:      "gen",
	Usage:     "write random insert/search/delete datasets",
	ArgsUsage: " ",
	Flags: append([]cli.Flag{
		&cli.StringFlag{
			Name:     "out",
			Aliases:  []string{"o"},
			Usage:    "output data directory",
			Required: true,
		},
		&cli.IntFlag{
			Name:  "sets",
			Usage: "number of set directories",
			Value: config.DefaultGenConfig().Sets,
		},
		&cli.IntFlag{
			Name:  "files",
			Usage: "number of dataset files per set",
			Value: config.DefaultGenConfig().Files,
		},
		&cli.IntFlag{
			Name:  "count",
			Usage: "integers per file",
			Value: config.DefaultGenConfig().Count,
		},
		&cli.Int64Flag{
			Name:  "max",
			Usage: "values are drawn from [0, max)",
			Value: config.DefaultGenConfig().Max,
		},
		&cli.IntFlag{
			Name:  "per-line",
			Usage: "comma-separated values per line",
			Value: config.DefaultGenConfig().PerLine,
		},
		&cli.Uint64Flag{
			Name:  "seed",
			Usage: "random seed",
		},
	}, logFlags...),
	Action: runGen,
}

func runGen(cctx *cli.Context) error {
	cfg := &config.GenConfig{
		OutDir:  cctx.String("out"),
		Sets:    cctx.Int("sets"),
		Files:   cctx.Int("files"),
		Count:   cctx.Int("count"),
		Max:     cctx.Int64("max"),
		PerLine: cctx.Int("per-line"),
		Seed:    cctx.Uint64("seed"),
	}
	cfg.FillDefaults()
	if err := cfg.Validate(); err != nil {
		return err
	}
	runCfg := &config.Config{LogLevel: cctx.String("log-level")}
	runCfg.FillDefaults()
	level, err := runCfg.Level()
	if err != nil {
		return err
	}
	logger := configLogger(level, cctx.Bool("log-json"))

	triples, err := dataset.WriteTree(cfg)
	if err != nil {
		return err
	}
	for _, t := range triples {
		logger.Debug("wrote dataset", "name", t.Name, "insert", t.Insert)
	}
	logger.Info("datasets written", "dir", cfg.OutDir, "count", len(triples))
	fmt.Fprintf(cctx.App.Writer, "wrote %d datasets to %s\n", len(triples), cfg.OutDir)
	return nil
}
