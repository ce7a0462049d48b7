// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"strings"

	"github.com/urfave/cli/v2"

	"rsc.io/splay"
	"rsc.io/splay/internal/dataset"
)

var cmdTree = &cli.Command{
	Name:      "tree",
	Usage:     "apply operations to an empty map and draw the resulting tree",
	ArgsUsage: " ",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:     "keys",
			Usage:    "comma-separated keys to insert, in order",
			Required: true,
		},
		&cli.StringFlag{
			Name:  "get",
			Usage: "comma-separated keys to look up after inserting",
		},
		&cli.StringFlag{
			Name:  "delete",
			Usage: "comma-separated keys to delete last",
		},
	},
	Action: runTree,
}

func runTree(cctx *cli.Context) error {
	var m splay.Map[int64, int]

	ops := []struct {
		flag string
		op   func(i int, k int64)
	}{
		{"keys", func(i int, k int64) { m.Set(k, i) }},
		{"get", func(_ int, k int64) { m.Get(k) }},
		{"delete", func(_ int, k int64) { m.Delete(k) }},
	}
	for _, o := range ops {
		keys, err := dataset.Parse(strings.NewReader(cctx.String(o.flag)), "--"+o.flag)
		if err != nil {
			return err
		}
		for i, k := range keys {
			o.op(i, k)
		}
	}

	w := cctx.App.Writer
	fmt.Fprint(w, m.String())
	fmt.Fprintf(w, "size %d, height %d\n", m.Len(), m.Height())
	return nil
}
