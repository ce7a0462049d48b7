// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package splay implements in-memory ordered maps backed by splay trees.
// [Map][K, V] is suitable for ordered types K,
// while [MapFunc][K, V] supports arbitrary keys and comparison functions.
//
// Every access restructures the tree so that the accessed key,
// or the last key on its search path if it is missing, moves to the root.
// A single operation may take time linear in the size of the map,
// but any sequence of m operations on a map of at most n keys
// takes O(m log n) time.
//
// Maps are not safe for concurrent use, not even for concurrent reads:
// Get and Contains modify the tree.
package splay

// The implementation is a top-down recursive splay tree. See:
// https://en.wikipedia.org/wiki/Splay_tree
// https://www.cs.cmu.edu/~sleator/papers/self-adjusting.pdf

import (
	"cmp"
	"iter"
)

// A Map is a map[K]V ordered according to K's standard Go ordering.
// The zero value of a Map is an empty Map ready to use.
type Map[K cmp.Ordered, V any] struct {
	tree[K, V]
}

// Get returns m[key] and reports whether the key was present.
// Get splays the tree even when key is missing.
func (m *Map[K, V]) Get(key K) (val V, ok bool) {
	if m == nil {
		return
	}
	x := m.get(key, cmp.Compare[K])
	if x == nil {
		return
	}
	return x.val, true
}

// Contains reports whether key is present in m.
func (m *Map[K, V]) Contains(key K) bool {
	_, ok := m.Get(key)
	return ok
}

// Set sets m[key] = val. The key ends up at the root of the tree.
func (m *Map[K, V]) Set(key K, val V) {
	if m == nil {
		panic("Set of nil Map")
	}
	m.set(key, val, cmp.Compare[K])
}

// Delete deletes m[key]. Deleting a missing key is a no-op
// apart from the restructuring done by the search.
func (m *Map[K, V]) Delete(key K) {
	if m == nil {
		panic("Delete of nil Map")
	}
	m.delete(key, cmp.Compare[K])
}

// Len returns the number of keys in m.
func (m *Map[K, V]) Len() int {
	if m == nil {
		return 0
	}
	return m.root.size()
}

// Height returns the height of the tree:
// -1 for an empty map and 0 for a map with a single key.
func (m *Map[K, V]) Height() int {
	if m == nil {
		return -1
	}
	return m.root.height()
}

// Min returns the smallest key in m and its value,
// splaying that key to the root.
func (m *Map[K, V]) Min() (key K, val V, ok bool) {
	if m == nil {
		return
	}
	return m.extreme(m.root.min(), cmp.Compare[K])
}

// Max returns the largest key in m and its value,
// splaying that key to the root.
func (m *Map[K, V]) Max() (key K, val V, ok bool) {
	if m == nil {
		return
	}
	return m.extreme(m.root.max(), cmp.Compare[K])
}

// Scan returns an iterator over the map m
// limited to keys k satisfying lo ≤ k ≤ hi.
// Scan does not restructure the tree.
// If m is modified during the iteration, the results are unspecified.
func (m *Map[K, V]) Scan(lo, hi K) iter.Seq2[K, V] {
	if m == nil {
		return func(func(K, V) bool) {}
	}
	return m.scan(lo, hi, cmp.Compare[K])
}

// A MapFunc is a map[K]V ordered according to an arbitrary comparison function.
// The zero value of a MapFunc is not meaningful; use [NewMapFunc] instead.
type MapFunc[K, V any] struct {
	tree[K, V]
	cmp func(K, K) int
}

// NewMapFunc returns an empty MapFunc using cmp to order keys.
// cmp(a, b) must return a negative number when a < b,
// a positive number when a > b, and zero when a == b,
// and it must define a total order.
func NewMapFunc[K, V any](cmp func(K, K) int) *MapFunc[K, V] {
	m := new(MapFunc[K, V])
	m.cmp = cmp
	return m
}

// Get returns m[key] and reports whether the key was present.
// Get splays the tree even when key is missing.
func (m *MapFunc[K, V]) Get(key K) (val V, ok bool) {
	if m == nil {
		return
	}
	x := m.get(key, m.cmp)
	if x == nil {
		return
	}
	return x.val, true
}

// Contains reports whether key is present in m.
func (m *MapFunc[K, V]) Contains(key K) bool {
	_, ok := m.Get(key)
	return ok
}

// Set sets m[key] = val. The key ends up at the root of the tree.
func (m *MapFunc[K, V]) Set(key K, val V) {
	if m == nil {
		panic("Set of nil MapFunc")
	}
	m.set(key, val, m.cmp)
}

// Delete deletes m[key].
func (m *MapFunc[K, V]) Delete(key K) {
	if m == nil {
		panic("Delete of nil MapFunc")
	}
	m.delete(key, m.cmp)
}

// Len returns the number of keys in m.
func (m *MapFunc[K, V]) Len() int {
	if m == nil {
		return 0
	}
	return m.root.size()
}

// Height returns the height of the tree:
// -1 for an empty map and 0 for a map with a single key.
func (m *MapFunc[K, V]) Height() int {
	if m == nil {
		return -1
	}
	return m.root.height()
}

// Min returns the smallest key in m and its value,
// splaying that key to the root.
func (m *MapFunc[K, V]) Min() (key K, val V, ok bool) {
	if m == nil {
		return
	}
	return m.extreme(m.root.min(), m.cmp)
}

// Max returns the largest key in m and its value,
// splaying that key to the root.
func (m *MapFunc[K, V]) Max() (key K, val V, ok bool) {
	if m == nil {
		return
	}
	return m.extreme(m.root.max(), m.cmp)
}

// Scan returns an iterator over the map m
// limited to keys k satisfying lo ≤ k ≤ hi.
// Scan does not restructure the tree.
// If m is modified during the iteration, the results are unspecified.
func (m *MapFunc[K, V]) Scan(lo, hi K) iter.Seq2[K, V] {
	if m == nil {
		return func(func(K, V) bool) {}
	}
	return m.scan(lo, hi, m.cmp)
}

// Split removes the keys greater than key from m and returns them in a new Map.
// Split also removes key itself, returning its value and whether it was present.
func (m *Map[K, V]) Split(key K) (val V, ok bool, more *Map[K, V]) {
	if m == nil {
		return val, false, new(Map[K, V])
	}
	x, after := m.split(key, cmp.Compare[K])
	if x != nil {
		val, ok = x.val, true
	}
	return val, ok, &Map[K, V]{after}
}

// Join moves all the keys in more to m, leaving more empty.
// Every key in m must be less than every key in more.
func (m *Map[K, V]) Join(more *Map[K, V]) {
	if more == nil {
		return
	}
	if m == nil {
		panic("Join of nil Map")
	}
	m.join(more.tree, cmp.Compare[K])
	more.root = nil
}

// DeleteRange deletes the keys k satisfying lo ≤ k ≤ hi.
func (m *Map[K, V]) DeleteRange(lo, hi K) {
	if m == nil {
		panic("nil DeleteRange")
	}
	m.deleteRange(lo, hi, cmp.Compare[K])
}

// Split removes the keys greater than key from m and returns them in a new MapFunc.
// Split also removes key itself, returning its value and whether it was present.
func (m *MapFunc[K, V]) Split(key K) (val V, ok bool, more *MapFunc[K, V]) {
	if m == nil {
		return val, false, &MapFunc[K, V]{}
	}
	x, after := m.split(key, m.cmp)
	if x != nil {
		val, ok = x.val, true
	}
	return val, ok, &MapFunc[K, V]{after, m.cmp}
}

// Join moves all the keys in more to m, leaving more empty.
// Every key in m must be less than every key in more.
func (m *MapFunc[K, V]) Join(more *MapFunc[K, V]) {
	if more == nil {
		return
	}
	if m == nil {
		panic("Join of nil MapFunc")
	}
	m.join(more.tree, m.cmp)
	more.root = nil
}

// DeleteRange deletes the keys k satisfying lo ≤ k ≤ hi.
func (m *MapFunc[K, V]) DeleteRange(lo, hi K) {
	if m == nil {
		panic("nil DeleteRange")
	}
	m.deleteRange(lo, hi, m.cmp)
}

// All returns an iterator over m in ascending key order.
// All does not restructure the tree.
func (m *Map[K, V]) All() iter.Seq2[K, V] {
	if m == nil {
		return func(func(K, V) bool) {}
	}
	return m.tree.All()
}

// Root returns the key at the root of the tree.
func (m *Map[K, V]) Root() (key K, ok bool) {
	if m == nil {
		return
	}
	return m.tree.Root()
}

// Clear deletes all keys.
func (m *Map[K, V]) Clear() {
	if m == nil {
		panic("Clear of nil Map")
	}
	m.tree.Clear()
}

func (m *Map[K, V]) Dump() string {
	if m == nil {
		return "nil"
	}
	return m.tree.Dump()
}

func (m *Map[K, V]) String() string {
	if m == nil {
		return "<empty>\n"
	}
	return m.tree.String()
}

// All returns an iterator over m in ascending key order.
// All does not restructure the tree.
func (m *MapFunc[K, V]) All() iter.Seq2[K, V] {
	if m == nil {
		return func(func(K, V) bool) {}
	}
	return m.tree.All()
}

// Root returns the key at the root of the tree.
func (m *MapFunc[K, V]) Root() (key K, ok bool) {
	if m == nil {
		return
	}
	return m.tree.Root()
}

// Clear deletes all keys.
func (m *MapFunc[K, V]) Clear() {
	if m == nil {
		panic("Clear of nil MapFunc")
	}
	m.tree.Clear()
}

func (m *MapFunc[K, V]) Dump() string {
	if m == nil {
		return "nil"
	}
	return m.tree.Dump()
}

func (m *MapFunc[K, V]) String() string {
	if m == nil {
		return "<empty>\n"
	}
	return m.tree.String()
}
