// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package splay

import (
	"cmp"
	"math/rand/v2"
	"testing"
)

type Mapper[K, V any] interface {
	Get(K) (V, bool)
	Set(K, V)
	Delete(K)
	Height() int
}

var maps = []struct {
	name string
	new  func() Mapper[int, int]
}{
	{"Map", func() Mapper[int, int] { return new(Map[int, int]) }},
	{"MapFunc", func() Mapper[int, int] { return NewMapFunc[int, int](cmp.Compare[int]) }},
}

func benchMaps(b *testing.B, bench func(b *testing.B, newMap func() Mapper[int, int])) {
	for _, m := range maps {
		b.Run(m.name, func(b *testing.B) { bench(b, m.new) })
	}
}

func BenchmarkGetRandRand(b *testing.B) {
	benchMaps(b, func(b *testing.B, newMap func() Mapper[int, int]) {
		const N = 100000
		m := newMap()
		rand := rand.New(rand.NewPCG(1, 1))
		for _, v := range rand.Perm(N) {
			m.Set(v, v)
		}
		//b.Logf("height=%v", m.Height())
		perm := rand.Perm(N)
		b.ResetTimer()
		n := 0
		for range b.N {
			m.Get(perm[n])
			n++
			if n == N {
				n = 0
			}
		}
	})
}

func BenchmarkGetSeqRand(b *testing.B) {
	benchMaps(b, func(b *testing.B, newMap func() Mapper[int, int]) {
		const N = 100000
		rand := rand.New(rand.NewPCG(1, 1))
		m := newMap()
		for v := range N {
			m.Set(v, v)
		}
		perm := rand.Perm(N)
		b.ResetTimer()
		n := 0
		for range b.N {
			m.Get(perm[n])
			n++
			if n == N {
				n = 0
			}
		}
	})
}

// BenchmarkGetHot repeatedly reads a small working set,
// which a splay tree keeps near the root.
func BenchmarkGetHot(b *testing.B) {
	benchMaps(b, func(b *testing.B, newMap func() Mapper[int, int]) {
		const N = 100000
		const Hot = 16
		rand := rand.New(rand.NewPCG(1, 1))
		m := newMap()
		for _, v := range rand.Perm(N) {
			m.Set(v, v)
		}
		hot := rand.Perm(N)[:Hot]
		b.ResetTimer()
		for i := range b.N {
			m.Get(hot[i%Hot])
		}
	})
}

func BenchmarkSetDelete(b *testing.B) {
	benchMaps(b, func(b *testing.B, newMap func() Mapper[int, int]) {
		const N = 100000
		perm := rand.Perm(N)
		perm2 := rand.Perm(N)
		m := newMap()
		b.ResetTimer()
		n := 0
		for range b.N {
			if n < N {
				m.Set(perm[n], perm[n])
			} else {
				m.Delete(perm2[n-N])
			}
			n++
			if n == 2*N {
				n = 0
			}
		}
	})
}
