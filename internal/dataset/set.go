// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dataset

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"math/rand/v2"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/sync/errgroup"

	"rsc.io/splay/internal/config"
)

// Phase directory names under a data directory.
const (
	InsertDir = "insert"
	SearchDir = "search"
	DeleteDir = "delete"
)

// ErrIncomplete is returned by Discover when an insert file
// has no matching search or delete file.
var ErrIncomplete = errors.New("incomplete dataset")

// A Triple names the three files of one benchmark run.
type Triple struct {
	Name   string
	Insert string
	Search string
	Delete string
}

// Data is a loaded Triple.
type Data struct {
	Triple
	Insert []int64
	Search []int64
	Delete []int64
}

// Discover finds the triples under dir. Every file
// dir/insert/<set>/<file> must have a matching dir/search/<set>/<file>
// and dir/delete/<set>/<file>. Triples are returned sorted by set, then file.
func Discover(dir string) ([]Triple, error) {
	sets, err := os.ReadDir(filepath.Join(dir, InsertDir))
	if err != nil {
		return nil, fmt.Errorf("listing datasets: %w", err)
	}

	var out []Triple
	for _, set := range sets {
		if !set.IsDir() {
			continue
		}
		files, err := os.ReadDir(filepath.Join(dir, InsertDir, set.Name()))
		if err != nil {
			return nil, fmt.Errorf("listing datasets: %w", err)
		}
		for _, f := range files {
			if f.IsDir() || strings.HasPrefix(f.Name(), ".") {
				continue
			}
			t := Triple{
				Name:   set.Name() + "/" + strings.TrimSuffix(f.Name(), filepath.Ext(f.Name())),
				Insert: filepath.Join(dir, InsertDir, set.Name(), f.Name()),
				Search: filepath.Join(dir, SearchDir, set.Name(), f.Name()),
				Delete: filepath.Join(dir, DeleteDir, set.Name(), f.Name()),
			}
			for _, p := range []string{t.Search, t.Delete} {
				if _, err := os.Stat(p); err != nil {
					if errors.Is(err, fs.ErrNotExist) {
						return nil, fmt.Errorf("%w: %s: missing %s", ErrIncomplete, t.Name, p)
					}
					return nil, err
				}
			}
			out = append(out, t)
		}
	}
	return out, nil
}

// Load reads the three files of t concurrently.
func Load(ctx context.Context, t Triple) (*Data, error) {
	d := &Data{Triple: t}
	eg, ctx := errgroup.WithContext(ctx)
	for _, f := range []struct {
		path string
		dst  *[]int64
	}{
		{t.Insert, &d.Insert},
		{t.Search, &d.Search},
		{t.Delete, &d.Delete},
	} {
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			vals, err := Read(f.path)
			if err != nil {
				return err
			}
			*f.dst = vals
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, fmt.Errorf("loading %s: %w", t.Name, err)
	}
	return d, nil
}

// Generate returns count integers drawn uniformly from [0, max).
func Generate(r *rand.Rand, count int, max int64) []int64 {
	vals := make([]int64, count)
	for i := range vals {
		vals[i] = r.Int64N(max)
	}
	return vals
}

// sample returns count integers, about half taken from vals
// and the rest drawn from [0, max), so that searches and deletes
// hit both present and absent keys.
func sample(r *rand.Rand, vals []int64, count int, max int64) []int64 {
	out := make([]int64, count)
	for i := range out {
		if len(vals) > 0 && r.IntN(2) == 0 {
			out[i] = vals[r.IntN(len(vals))]
		} else {
			out[i] = r.Int64N(max)
		}
	}
	return out
}

// WriteTree generates cfg.Sets × cfg.Files random triples under cfg.OutDir
// in the layout Discover expects.
func WriteTree(cfg *config.GenConfig) ([]Triple, error) {
	r := rand.New(rand.NewPCG(cfg.Seed, cfg.Seed))
	var out []Triple
	for s := 1; s <= cfg.Sets; s++ {
		set := fmt.Sprintf("set%d", s)
		for _, phase := range []string{InsertDir, SearchDir, DeleteDir} {
			if err := os.MkdirAll(filepath.Join(cfg.OutDir, phase, set), 0o755); err != nil {
				return nil, fmt.Errorf("creating dataset directory: %w", err)
			}
		}
		for f := 1; f <= cfg.Files; f++ {
			file := fmt.Sprintf("data_%d.txt", f)
			t := Triple{
				Name:   set + "/" + strings.TrimSuffix(file, ".txt"),
				Insert: filepath.Join(cfg.OutDir, InsertDir, set, file),
				Search: filepath.Join(cfg.OutDir, SearchDir, set, file),
				Delete: filepath.Join(cfg.OutDir, DeleteDir, set, file),
			}
			ins := Generate(r, cfg.Count, cfg.Max)
			for _, w := range []struct {
				path string
				vals []int64
			}{
				{t.Insert, ins},
				{t.Search, sample(r, ins, cfg.Count, cfg.Max)},
				{t.Delete, sample(r, ins, cfg.Count, cfg.Max)},
			} {
				if err := writeFile(w.path, w.vals, cfg.PerLine); err != nil {
					return nil, err
				}
			}
			out = append(out, t)
		}
	}
	return out, nil
}

func writeFile(path string, vals []int64, perLine int) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating dataset: %w", err)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = cerr
		}
	}()
	if err := Write(f, vals, perLine); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
